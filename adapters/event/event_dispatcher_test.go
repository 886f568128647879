package event_test

import (
	"errors"
	"testing"

	"github.com/jobeserver/demo/adapters/event"
	"github.com/jobeserver/demo/domain"

	"github.com/stretchr/testify/assert"
)

type testEvent struct{ name string }

func (e testEvent) EventName() string { return e.name }

func TestEventDispatcher(t *testing.T) {
	t.Run("it should call listeners on every dispatch", func(t *testing.T) {
		d := event.NewEventDispatcher()

		var calls []string
		d.Register("a", func(domain.BaseDomainEvent) error { calls = append(calls, "first"); return nil })
		d.Register("a", func(domain.BaseDomainEvent) error { calls = append(calls, "second"); return nil })
		d.Register("b", func(domain.BaseDomainEvent) error { calls = append(calls, "other"); return nil })

		assert.NoError(t, d.Dispatch(testEvent{"a"}))
		assert.NoError(t, d.Dispatch(testEvent{"a"}))
		assert.Equal(t, []string{"first", "second", "first", "second"}, calls)
	})

	t.Run("it should ignore events without listeners", func(t *testing.T) {
		d := event.NewEventDispatcher()

		assert.NoError(t, d.Dispatch(testEvent{"nobody"}))
	})

	t.Run("it should stop at the first error", func(t *testing.T) {
		d := event.NewEventDispatcher()
		boom := errors.New("boom")

		called := false
		d.Register("a", func(domain.BaseDomainEvent) error { return boom })
		d.Register("a", func(domain.BaseDomainEvent) error { called = true; return nil })

		assert.ErrorIs(t, d.Dispatch(testEvent{"a"}), boom)
		assert.False(t, called)
	})
}
