package elevdispatch

import (
	"github.com/masterden/elevator-bank/internal/elevconsts"
	"github.com/masterden/elevator-bank/internal/logger"
)

var Log = logger.For("elevdispatch")

// AssignmentPolicy decides whether a hall call belongs to a car. Policies are
// pure: they look at the call, never at car state.
type AssignmentPolicy interface {
	Assign(floor int, direction elevconsts.Direction) (carID int, ok bool)
}

// ParityOdd claims hall calls from odd floors for its car.
type ParityOdd struct {
	CarID int
}

func (p ParityOdd) Assign(floor int, direction elevconsts.Direction) (int, bool) {
	if floor%2 == 1 {
		return p.CarID, true
	}
	return 0, false
}

// ParityEven claims hall calls from even floors for its car.
type ParityEven struct {
	CarID int
}

func (p ParityEven) Assign(floor int, direction elevconsts.Direction) (int, bool) {
	if floor%2 == 0 {
		return p.CarID, true
	}
	return 0, false
}

// FixedSet claims hall calls from a configured set of floors for its car.
type FixedSet struct {
	CarID  int
	floors map[int]bool
}

func NewFixedSet(carID int, floors []int) FixedSet {
	set := make(map[int]bool, len(floors))
	for _, floor := range floors {
		set[floor] = true
	}
	return FixedSet{CarID: carID, floors: set}
}

func (p FixedSet) Assign(floor int, direction elevconsts.Direction) (int, bool) {
	if p.floors[floor] {
		return p.CarID, true
	}
	return 0, false
}

// HallCallSink is the per-car enqueue surface the router fans out to.
type HallCallSink interface {
	AddHallCall(floor int, direction elevconsts.Direction)
}

// Router applies every policy, in order, to each hall call. Policies do not
// suppress each other: a call matching several policies is enqueued on
// several cars. A policy targeting a car that does not exist is skipped.
type Router struct {
	policies []AssignmentPolicy
	cars     map[int]HallCallSink
}

func NewRouter(cars map[int]HallCallSink, policies ...AssignmentPolicy) *Router {
	return &Router{
		policies: policies,
		cars:     cars,
	}
}

func (r *Router) HandleHallCall(floor int, direction elevconsts.Direction) {
	for _, policy := range r.policies {
		carID, ok := policy.Assign(floor, direction)
		if !ok {
			continue
		}
		car, exists := r.cars[carID]
		if !exists {
			Log.Debug().Msgf("Policy matched hall call (%d, %s) but car %d is not configured", floor, direction.String(), carID)
			continue
		}
		car.AddHallCall(floor, direction)
	}
}
