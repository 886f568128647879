package listeners

import "github.com/jobeserver/demo/domain"

type EventListener interface {
	EventHandler(event domain.BaseDomainEvent) error
}

// RegisterAll wires every listener of the service into d.
func RegisterAll(d domain.EventDispatcher, listeners map[string]EventListener) {
	for name, l := range listeners {
		d.Register(name, l.EventHandler)
	}
}
