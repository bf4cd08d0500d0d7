package elevevent

import (
	"github.com/masterden/elevator-bank/internal/elevconsts"
)

type CarEvent struct {
	//Golang doesnt support union types,
	//so we have to pass any of the below
	//structs
	Value any
}

// ArrivalEvent is emitted once every time a car stops at a floor.
type ArrivalEvent struct {
	CarID     int
	Floor     int
	Direction elevconsts.Direction
}

func (ae ArrivalEvent) Wrap() CarEvent {
	return CarEvent{Value: ae}
}

// TraversalEvent is emitted once for every floor a car passes between two
// stops, in traversal order. The destination floor itself gets an
// ArrivalEvent instead.
type TraversalEvent struct {
	CarID int
	Floor int
}

func (te TraversalEvent) Wrap() CarEvent {
	return CarEvent{Value: te}
}

func (e *CarEvent) EventType() string {
	switch e.Value.(type) {
	case ArrivalEvent:
		return "ArrivalEvent"
	case TraversalEvent:
		return "TraversalEvent"
	default:
		return "UnknownEvent"
	}
}

// CarListener receives a car's events synchronously, in registration order.
type CarListener interface {
	OnCarEvent(event CarEvent)
}
