package elevconsts

// Direction is a car's travel direction. Idle is only valid as a car's
// resting direction, never as a hall call direction.
type Direction int

const (
	Down Direction = -1
	Idle Direction = 0
	Up   Direction = 1
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Idle:
		return "Idle"
	default:
		return "Undefined"
	}
}

// DirectionBetween returns the direction of travel from one floor to another.
func DirectionBetween(from, to int) Direction {
	switch {
	case to > from:
		return Up
	case to < from:
		return Down
	default:
		return Idle
	}
}

type Status int

const (
	StatusIdle Status = iota
	StatusStopped
	StatusMoving
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "S_Idle"
	case StatusStopped:
		return "S_Stopped"
	case StatusMoving:
		return "S_Moving"
	default:
		return "S_UNDEFINED"
	}
}
