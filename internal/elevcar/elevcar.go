package elevcar

import (
	"sync"

	"github.com/masterden/elevator-bank/internal/elevconsts"
	"github.com/masterden/elevator-bank/internal/elevevent"
	"github.com/masterden/elevator-bank/internal/elevsched"
	"github.com/masterden/elevator-bank/internal/elevstore"
	"github.com/masterden/elevator-bank/internal/logger"
)

var Log = logger.For("elevcar")

// Car is one elevator car: its position, direction and status, the request
// store it drains each cycle, and the scheduler that orders the stops.
//
// The simulation itself is single threaded, but the router may be fed from
// elsewhere in a concurrent port, so the store is guarded by a per-car mutex.
type Car struct {
	ID int

	mutex     sync.Mutex
	floor     int
	direction elevconsts.Direction
	status    elevconsts.Status
	store     *elevstore.RequestStore
	scheduler elevsched.Scheduler
	listeners []elevevent.CarListener
}

// NewCar returns an idle car resting at floor 0 with a LOOK scheduler.
func NewCar(id int) *Car {
	return &Car{
		ID:        id,
		floor:     0,
		direction: elevconsts.Idle,
		status:    elevconsts.StatusIdle,
		store:     elevstore.NewRequestStore(),
		scheduler: elevsched.Look{},
	}
}

// Attach registers a listener. Listeners are notified synchronously, in
// registration order, after the cycle has finished and the car lock has been
// released, so a listener may query the car it is attached to. Listeners must
// be attached before the first cycle runs.
func (c *Car) Attach(listener elevevent.CarListener) {
	c.listeners = append(c.listeners, listener)
}

// SetScheduler swaps the movement strategy.
func (c *Car) SetScheduler(scheduler elevsched.Scheduler) {
	c.scheduler = scheduler
}

func (c *Car) Floor() int {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return c.floor
}

func (c *Car) Direction() elevconsts.Direction {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return c.direction
}

func (c *Car) Status() elevconsts.Status {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return c.status
}

// Store exposes the request store for inspection; writes go through
// AddCabinRequest and AddHallCall, which serialize access.
func (c *Car) Store() *elevstore.RequestStore {
	return c.store
}

// AddCabinRequest registers a cabin panel press for a target floor.
func (c *Car) AddCabinRequest(floor int) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.store.AddCabinRequest(floor)
}

// AddHallCall registers a routed hall call.
func (c *Car) AddHallCall(floor int, direction elevconsts.Direction) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.store.AddHallCall(floor, direction)
}

// ProcessRequests runs one scheduling cycle: order the pending floors, visit
// them one by one, then return to Idle with an empty store. It never fails on
// valid input and always runs to completion. Events are gathered during the
// cycle and delivered to the listeners only after the car lock is released,
// so listeners may call Floor(), Direction() and Status() freely.
func (c *Car) ProcessRequests() {
	c.mutex.Lock()

	pending := c.store.PendingFloors()
	order := c.scheduler.Schedule(c.floor, c.direction, pending)

	Log.Debug().Msgf("Car %d starting cycle at floor %d (%s): visiting %v", c.ID, c.floor, c.direction.String(), order)

	var events []elevevent.CarEvent
	for _, floor := range order {
		events = c.moveTo(floor, events)
	}

	c.status = elevconsts.StatusIdle
	c.direction = elevconsts.Idle
	c.store.Clear()
	c.mutex.Unlock()

	for _, event := range events {
		c.notify(event)
	}
}

// moveTo drives the car to the given floor, appending an event for every
// floor passed on the way plus one for the stop. A stop at the current floor
// produces an arrival with no traversals. Caller holds the car lock.
func (c *Car) moveTo(floor int, events []elevevent.CarEvent) []elevevent.CarEvent {
	if floor != c.floor {
		c.status = elevconsts.StatusMoving
		step := 1
		if floor < c.floor {
			step = -1
		}
		for passed := c.floor + step; passed != floor; passed += step {
			events = append(events, elevevent.TraversalEvent{CarID: c.ID, Floor: passed}.Wrap())
		}
	}

	c.direction = elevconsts.DirectionBetween(c.floor, floor)
	c.floor = floor
	c.status = elevconsts.StatusStopped
	return append(events, elevevent.ArrivalEvent{CarID: c.ID, Floor: c.floor, Direction: c.direction}.Wrap())
}

func (c *Car) notify(event elevevent.CarEvent) {
	for _, listener := range c.listeners {
		listener.OnCarEvent(event)
	}
}
