package elevbank

import (
	"fmt"

	"github.com/masterden/elevator-bank/internal/elevcall"
	"github.com/masterden/elevator-bank/internal/elevcar"
	"github.com/masterden/elevator-bank/internal/elevconfig"
	"github.com/masterden/elevator-bank/internal/elevconsts"
	"github.com/masterden/elevator-bank/internal/elevdispatch"
	"github.com/masterden/elevator-bank/internal/elevdisplay"
	"github.com/masterden/elevator-bank/internal/elevevent"
	"github.com/masterden/elevator-bank/internal/elevmetadata"
	"github.com/masterden/elevator-bank/internal/logger"
)

var Log = logger.For("elevbank")

// Car ids the dispatch policies target. The parity policies claim odd and
// even floors for the first two cars; the fixed-set policy claims its
// configured floors for the third. Policies whose car is not configured
// simply never match.
const (
	ODD_CAR_ID   = 0
	EVEN_CAR_ID  = 1
	FIXED_CAR_ID = 2
)

// Building owns the cars, the floors and the dispatch router. Cars never
// reference each other; the router is the only shared path into them.
type Building struct {
	metaData *elevmetadata.BankMetaData
	config   elevconfig.Config
	cars     map[int]*elevcar.Car
	floors   []*Floor
	router   *elevdispatch.Router
}

func NewBuilding(config elevconfig.Config, identifier string) (*Building, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid building config: %v", err)
	}

	cars := make(map[int]*elevcar.Car, config.NumCars)
	sinks := make(map[int]elevdispatch.HallCallSink, config.NumCars)
	for id := 0; id < config.NumCars; id++ {
		car := elevcar.NewCar(id)
		car.Attach(elevdisplay.NewDisplay(id))
		car.Attach(elevdisplay.NewEventLog(id))
		cars[id] = car
		sinks[id] = car
	}

	router := elevdispatch.NewRouter(sinks,
		elevdispatch.ParityOdd{CarID: ODD_CAR_ID},
		elevdispatch.ParityEven{CarID: EVEN_CAR_ID},
		elevdispatch.NewFixedSet(FIXED_CAR_ID, config.FixedFloors),
	)

	floors := make([]*Floor, config.NumFloors)
	for number := range floors {
		floors[number] = newFloor(number, router)
	}

	return &Building{
		metaData: elevmetadata.NewBankMetaData(identifier, config.NumFloors, config.NumCars),
		config:   config,
		cars:     cars,
		floors:   floors,
		router:   router,
	}, nil
}

func (b *Building) MetaData() *elevmetadata.BankMetaData {
	return b.metaData
}

func (b *Building) Car(id int) (*elevcar.Car, bool) {
	car, ok := b.cars[id]
	return car, ok
}

func (b *Building) Floor(number int) (*Floor, bool) {
	if number < 0 || number >= len(b.floors) {
		return nil, false
	}
	return b.floors[number], true
}

// AttachListener registers a listener on every car. Must be called before
// the first processing cycle.
func (b *Building) AttachListener(listener elevevent.CarListener) {
	for id := 0; id < b.config.NumCars; id++ {
		b.cars[id].Attach(listener)
	}
}

// PressHallButton raises a hall call. The core does not validate input, so
// the building boundary rejects malformed calls here.
func (b *Building) PressHallButton(floor int, direction elevconsts.Direction) error {
	if floor < 0 || floor >= b.config.NumFloors {
		return fmt.Errorf("hall call floor %d outside building bounds [0, %d)", floor, b.config.NumFloors)
	}
	if direction != elevconsts.Up && direction != elevconsts.Down {
		return fmt.Errorf("hall call direction must be Up or Down, got %s", direction.String())
	}

	b.floors[floor].press(direction)
	return nil
}

// PressCabinButton raises a cabin call inside a specific car.
func (b *Building) PressCabinButton(carID int, floor int) error {
	car, ok := b.cars[carID]
	if !ok {
		return fmt.Errorf("no car with id %d", carID)
	}
	if floor < 0 || floor >= b.config.NumFloors {
		return fmt.Errorf("cabin call floor %d outside building bounds [0, %d)", floor, b.config.NumFloors)
	}

	car.AddCabinRequest(floor)
	return nil
}

// ProcessAllRequests runs one processing cycle for every car, in ascending
// car id order. Every store drains, so the hall button latches release.
func (b *Building) ProcessAllRequests() {
	Log.Debug().Msgf("Processing cycle for %d cars", b.config.NumCars)

	for id := 0; id < b.config.NumCars; id++ {
		b.cars[id].ProcessRequests()
	}
	for _, floor := range b.floors {
		floor.releaseButtons()
	}
}

// Apply executes one bank call message.
func (b *Building) Apply(call elevcall.BankCall) error {
	switch c := call.Value.(type) {
	case elevcall.HallCall:
		return b.PressHallButton(c.Floor, c.Direction)
	case elevcall.CabinCall:
		return b.PressCabinButton(c.CarID, c.Floor)
	case elevcall.ProcessCall:
		b.ProcessAllRequests()
		return nil
	default:
		return fmt.Errorf("unknown bank call %s", call.CallType())
	}
}
