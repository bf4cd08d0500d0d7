package elevcall

import (
	"github.com/masterden/elevator-bank/internal/elevconsts"
)

// BankCall is one input to the bank: a hall call raised from a floor panel,
// a cabin call raised inside a car, or a request to run a processing cycle.
type BankCall struct {
	//Golang doesnt support union types,
	//so we have to pass any of the below
	//structs
	Value any
}

type HallCall struct {
	Floor     int
	Direction elevconsts.Direction
}

func (hc HallCall) Wrap() BankCall {
	return BankCall{Value: hc}
}

type CabinCall struct {
	CarID int
	Floor int
}

func (cc CabinCall) Wrap() BankCall {
	return BankCall{Value: cc}
}

// ProcessCall runs one full processing cycle over every car.
type ProcessCall struct {
}

func (pc ProcessCall) Wrap() BankCall {
	return BankCall{Value: pc}
}

func (c *BankCall) CallType() string {
	switch c.Value.(type) {
	case HallCall:
		return "HallCall"
	case CabinCall:
		return "CabinCall"
	case ProcessCall:
		return "ProcessCall"
	default:
		return "UnknownCall"
	}
}
