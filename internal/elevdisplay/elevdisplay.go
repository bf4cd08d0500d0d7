package elevdisplay

import (
	"github.com/masterden/elevator-bank/internal/elevconsts"
	"github.com/masterden/elevator-bank/internal/elevevent"
	"github.com/masterden/elevator-bank/internal/logger"
)

var Log = logger.For("elevdisplay")

// Display mirrors one car's position panel: it tracks the last stop and
// renders every floor the car passes, in traversal order.
type Display struct {
	CarID int

	currentFloor int
	direction    elevconsts.Direction
}

func NewDisplay(carID int) *Display {
	return &Display{
		CarID:        carID,
		currentFloor: 0,
		direction:    elevconsts.Idle,
	}
}

func (d *Display) OnCarEvent(event elevevent.CarEvent) {
	switch e := event.Value.(type) {
	case elevevent.TraversalEvent:
		Log.Info().Msgf("Elevator %d at floor %d", e.CarID, e.Floor)
	case elevevent.ArrivalEvent:
		d.currentFloor = e.Floor
		d.direction = e.Direction
		Log.Info().Msgf("Elevator %d - Floor: %d, Direction: %s", e.CarID, e.Floor, e.Direction.String())
	}
}

// CurrentFloor returns the floor shown on the panel, i.e. the last stop.
func (d *Display) CurrentFloor() int {
	return d.currentFloor
}

func (d *Display) Direction() elevconsts.Direction {
	return d.direction
}

// EventLog is a minimal listener that records update activity per car.
type EventLog struct {
	CarID int
}

func NewEventLog(carID int) *EventLog {
	return &EventLog{CarID: carID}
}

func (el *EventLog) OnCarEvent(event elevevent.CarEvent) {
	Log.Debug().Msgf("[Logger] Elevator %d updated (%s)", el.CarID, event.EventType())
}
