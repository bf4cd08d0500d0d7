package elevsched

import (
	"sort"

	"github.com/masterden/elevator-bank/internal/elevconsts"
)

// Scheduler orders a car's pending floors into a visiting sequence. The car
// executes the sequence front to back within one processing cycle.
type Scheduler interface {
	Schedule(currentFloor int, direction elevconsts.Direction, pendingFloors []int) []int
}

// Look is a LOOK scan: service everything ahead in the direction of travel
// before reversing, without scanning past the furthest pending floor.
//
// Floors equal to the current floor come first; they are serviced in place
// and never influence which branch of the scan runs. Floors above are visited
// in ascending order, but only when the cycle starts with direction Idle or
// Up. Floors below are visited nearest first (descending floor number) and
// always follow, since by then the upward scan has nothing left.
type Look struct {
}

func (Look) Schedule(currentFloor int, direction elevconsts.Direction, pendingFloors []int) []int {
	order := make([]int, 0, len(pendingFloors))

	var above, below []int
	for _, floor := range pendingFloors {
		switch {
		case floor > currentFloor:
			above = append(above, floor)
		case floor < currentFloor:
			below = append(below, floor)
		default:
			order = append(order, floor)
		}
	}

	sort.Ints(above)
	sort.Sort(sort.Reverse(sort.IntSlice(below)))

	if direction == elevconsts.Idle || direction == elevconsts.Up {
		order = append(order, above...)
	}
	order = append(order, below...)

	return order
}
