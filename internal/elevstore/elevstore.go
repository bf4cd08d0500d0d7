package elevstore

import (
	"github.com/masterden/elevator-bank/internal/elevconsts"
)

// RequestStore holds one car's pending requests for the current processing
// cycle: cabin calls (a target floor) and hall call assignments (a floor with
// the requested travel direction). The scheduler drains it once per cycle and
// clears it afterwards.
type RequestStore struct {
	cabin map[int]struct{}
	hall  map[int]elevconsts.Direction
}

func NewRequestStore() *RequestStore {
	return &RequestStore{
		cabin: make(map[int]struct{}),
		hall:  make(map[int]elevconsts.Direction),
	}
}

// AddCabinRequest registers a cabin call. Pressing the same button twice
// before a cycle runs leaves exactly one pending request.
func (rs *RequestStore) AddCabinRequest(floor int) {
	rs.cabin[floor] = struct{}{}
}

// AddHallCall registers a hall call assignment, keyed by floor. A floor holds
// at most one direction; re-adding the same floor with another direction
// replaces the recorded one.
func (rs *RequestStore) AddHallCall(floor int, direction elevconsts.Direction) {
	rs.hall[floor] = direction
}

// HallDirection returns the direction recorded for a pending hall call.
func (rs *RequestStore) HallDirection(floor int) (elevconsts.Direction, bool) {
	direction, ok := rs.hall[floor]
	return direction, ok
}

// PendingFloors returns the union of cabin call floors and hall call floors.
// The result contains no duplicates and is in no particular order.
func (rs *RequestStore) PendingFloors() []int {
	floors := make([]int, 0, len(rs.cabin)+len(rs.hall))
	for floor := range rs.cabin {
		floors = append(floors, floor)
	}
	for floor := range rs.hall {
		if _, ok := rs.cabin[floor]; !ok {
			floors = append(floors, floor)
		}
	}
	return floors
}

func (rs *RequestStore) Empty() bool {
	return len(rs.cabin) == 0 && len(rs.hall) == 0
}

// Clear empties both collections. Called once per completed cycle.
func (rs *RequestStore) Clear() {
	clear(rs.cabin)
	clear(rs.hall)
}
