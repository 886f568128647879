package event

import (
	"sync"

	"github.com/jobeserver/demo/domain"
)

type eventDispatcher struct {
	listeners map[string][]func(event domain.BaseDomainEvent) error
	mutex     sync.RWMutex
}

func NewEventDispatcher() *eventDispatcher {
	return &eventDispatcher{
		listeners: make(map[string][]func(event domain.BaseDomainEvent) error),
	}
}

// Dispatch runs the listeners of the event in registration order and stops
// at the first error. Listeners run outside the lock, so they may dispatch.
func (ed *eventDispatcher) Dispatch(event domain.BaseDomainEvent) error {
	ed.mutex.RLock()
	listeners := ed.listeners[event.EventName()]
	ed.mutex.RUnlock()

	for _, listener := range listeners {
		if err := listener(event); err != nil {
			return err
		}
	}

	return nil
}

func (ed *eventDispatcher) Register(eventName string, listener func(event domain.BaseDomainEvent) error) {
	ed.mutex.Lock()
	defer ed.mutex.Unlock()

	// copy so a Dispatch holding the old slice is unaffected
	current := ed.listeners[eventName]
	next := make([]func(event domain.BaseDomainEvent) error, len(current), len(current)+1)
	copy(next, current)
	ed.listeners[eventName] = append(next, listener)
}
