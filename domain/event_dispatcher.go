package domain

type BaseDomainEvent interface {
	EventName() string
}

type EventDispatcher interface {
	Dispatch(event BaseDomainEvent) error
	Register(eventName string, listener func(event BaseDomainEvent) error)
}
