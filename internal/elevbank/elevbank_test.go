package elevbank

import (
	"testing"

	"github.com/rs/zerolog"

	"github.com/masterden/elevator-bank/internal/elevcall"
	"github.com/masterden/elevator-bank/internal/elevconfig"
	"github.com/masterden/elevator-bank/internal/elevconsts"
	"github.com/masterden/elevator-bank/internal/elevevent"
	"github.com/masterden/elevator-bank/internal/logger"
)

// bankRecorder keeps per-car arrival floors in visiting order.
type bankRecorder struct {
	arrivals map[int][]int
}

func newBankRecorder() *bankRecorder {
	return &bankRecorder{arrivals: make(map[int][]int)}
}

func (br *bankRecorder) OnCarEvent(event elevevent.CarEvent) {
	if arrival, ok := event.Value.(elevevent.ArrivalEvent); ok {
		br.arrivals[arrival.CarID] = append(br.arrivals[arrival.CarID], arrival.Floor)
	}
}

func newTestBuilding(t *testing.T) (*Building, *bankRecorder) {
	t.Helper()
	_ = logger.GetLoggerConfigured(zerolog.Disabled)

	building, err := NewBuilding(elevconfig.Default(), "testbank")
	if err != nil {
		t.Fatalf("NewBuilding() = %v, expected nil", err)
	}
	recorder := newBankRecorder()
	building.AttachListener(recorder)
	return building, recorder
}

func equalIntSlices(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// The full scenario: 10 floors, 3 cars, fixed floors {0, 5, 9}. Hall calls at
// (3, Up), (4, Up), (5, Down) plus one cabin call per car.
func TestProcessAllRequestsEndToEnd(t *testing.T) {
	building, recorder := newTestBuilding(t)

	calls := []elevcall.BankCall{
		elevcall.HallCall{Floor: 3, Direction: elevconsts.Up}.Wrap(),
		elevcall.HallCall{Floor: 4, Direction: elevconsts.Up}.Wrap(),
		elevcall.HallCall{Floor: 5, Direction: elevconsts.Down}.Wrap(),
		elevcall.CabinCall{CarID: 0, Floor: 7}.Wrap(),
		elevcall.CabinCall{CarID: 1, Floor: 8}.Wrap(),
		elevcall.CabinCall{CarID: 2, Floor: 9}.Wrap(),
		elevcall.ProcessCall{}.Wrap(),
	}
	for _, call := range calls {
		if err := building.Apply(call); err != nil {
			t.Fatalf("Apply(%s) = %v, expected nil", call.CallType(), err)
		}
	}

	// Floor 5 is odd as well as fixed, so the odd car serves it too.
	expected := map[int][]int{
		0: {3, 5, 7},
		1: {4, 8},
		2: {5, 9},
	}
	for carID, floors := range expected {
		if got := recorder.arrivals[carID]; !equalIntSlices(got, floors) {
			t.Errorf("Car %d visited %v, expected %v", carID, got, floors)
		}
	}

	for carID := 0; carID < 3; carID++ {
		car, _ := building.Car(carID)
		if car.Status() != elevconsts.StatusIdle || car.Direction() != elevconsts.Idle {
			t.Errorf("Car %d ended cycle as (%s, %s), expected idle", carID, car.Status().String(), car.Direction().String())
		}
		if !car.Store().Empty() {
			t.Errorf("Car %d store not empty after cycle", carID)
		}
	}
}

func TestHallCallRoutedByEveryMatchingPolicy(t *testing.T) {
	building, recorder := newTestBuilding(t)

	// Floor 5 is odd and in the fixed set: both car 0 and car 2 serve it.
	if err := building.PressHallButton(5, elevconsts.Down); err != nil {
		t.Fatalf("PressHallButton(5, Down) = %v, expected nil", err)
	}
	building.ProcessAllRequests()

	if got := recorder.arrivals[0]; !equalIntSlices(got, []int{5}) {
		t.Errorf("Car 0 visited %v, expected [5]", got)
	}
	if got := recorder.arrivals[2]; !equalIntSlices(got, []int{5}) {
		t.Errorf("Car 2 visited %v, expected [5]", got)
	}
	if got := recorder.arrivals[1]; len(got) != 0 {
		t.Errorf("Car 1 visited %v, expected no stops", got)
	}
}

func TestHallButtonLatchReleasesAfterCycle(t *testing.T) {
	building, _ := newTestBuilding(t)

	if err := building.PressHallButton(4, elevconsts.Up); err != nil {
		t.Fatalf("PressHallButton(4, Up) = %v, expected nil", err)
	}

	floor, ok := building.Floor(4)
	if !ok {
		t.Fatalf("Floor(4) not found")
	}
	if !floor.UpButton.Pressed() {
		t.Errorf("Up button not latched after press")
	}

	building.ProcessAllRequests()
	if floor.UpButton.Pressed() {
		t.Errorf("Up button still latched after the cycle serviced it")
	}
}

func TestBoundaryValidation(t *testing.T) {
	building, _ := newTestBuilding(t)

	if err := building.PressHallButton(10, elevconsts.Up); err == nil {
		t.Errorf("PressHallButton(10, Up) = nil, expected an out-of-bounds error")
	}
	if err := building.PressHallButton(-1, elevconsts.Down); err == nil {
		t.Errorf("PressHallButton(-1, Down) = nil, expected an out-of-bounds error")
	}
	if err := building.PressHallButton(3, elevconsts.Idle); err == nil {
		t.Errorf("PressHallButton(3, Idle) = nil, expected a direction error")
	}
	if err := building.PressCabinButton(7, 3); err == nil {
		t.Errorf("PressCabinButton(7, 3) = nil, expected an unknown car error")
	}
	if err := building.PressCabinButton(0, 10); err == nil {
		t.Errorf("PressCabinButton(0, 10) = nil, expected an out-of-bounds error")
	}
	if err := building.Apply(elevcall.BankCall{Value: struct{}{}}); err == nil {
		t.Errorf("Apply(unknown call) = nil, expected an error")
	}
}

func TestNewBuildingRejectsInvalidConfig(t *testing.T) {
	_ = logger.GetLoggerConfigured(zerolog.Disabled)

	config := elevconfig.Default()
	config.NumCars = 0
	if _, err := NewBuilding(config, "testbank"); err == nil {
		t.Errorf("NewBuilding() with zero cars = nil, expected an error")
	}
}

func TestTwoCarBankDropsFixedPolicy(t *testing.T) {
	_ = logger.GetLoggerConfigured(zerolog.Disabled)

	config := elevconfig.Default()
	config.NumCars = 2
	building, err := NewBuilding(config, "testbank")
	if err != nil {
		t.Fatalf("NewBuilding() = %v, expected nil", err)
	}
	recorder := newBankRecorder()
	building.AttachListener(recorder)

	// Fixed floor 5 has no car 2 to claim it; only the odd car serves it.
	if err := building.PressHallButton(5, elevconsts.Down); err != nil {
		t.Fatalf("PressHallButton(5, Down) = %v, expected nil", err)
	}
	building.ProcessAllRequests()

	if got := recorder.arrivals[0]; !equalIntSlices(got, []int{5}) {
		t.Errorf("Car 0 visited %v, expected [5]", got)
	}
	if got := recorder.arrivals[1]; len(got) != 0 {
		t.Errorf("Car 1 visited %v, expected no stops", got)
	}
}
