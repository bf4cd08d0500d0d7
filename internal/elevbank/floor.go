package elevbank

import (
	"github.com/masterden/elevator-bank/internal/elevconsts"
	"github.com/masterden/elevator-bank/internal/elevdispatch"
)

// HallButton is one call button on a floor panel. It latches when pressed
// and releases when the floor is serviced at the end of a cycle.
type HallButton struct {
	Floor     int
	Direction elevconsts.Direction

	pressed bool
}

func (hb *HallButton) Pressed() bool {
	return hb.pressed
}

// Floor is one level of the building with its Up and Down call buttons.
type Floor struct {
	Number     int
	UpButton   HallButton
	DownButton HallButton

	router *elevdispatch.Router
}

func newFloor(number int, router *elevdispatch.Router) *Floor {
	return &Floor{
		Number:     number,
		UpButton:   HallButton{Floor: number, Direction: elevconsts.Up},
		DownButton: HallButton{Floor: number, Direction: elevconsts.Down},
		router:     router,
	}
}

// press latches the matching button and hands the call to the router.
// The caller (Building) has already validated floor and direction.
func (f *Floor) press(direction elevconsts.Direction) {
	switch direction {
	case elevconsts.Up:
		f.UpButton.pressed = true
	case elevconsts.Down:
		f.DownButton.pressed = true
	}
	f.router.HandleHallCall(f.Number, direction)
}

// releaseButtons clears the latches once a cycle has drained every store.
func (f *Floor) releaseButtons() {
	f.UpButton.pressed = false
	f.DownButton.pressed = false
}
