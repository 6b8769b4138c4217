package model

// RobotID is a robot's identity, the single digit 0-9 it was parsed from.
type RobotID int

// Robot is the orchestrator's live view of one agent: its remaining charge
// and the space-time point at which it last became available. MaxCharge is
// carried alongside so a robot's own recharge dwells can be computed without
// a back-reference to the Instance.
type Robot struct {
	ID         RobotID
	MaxCharge  int
	Charge     int
	LastKnown  SpaceTimePoint
	MoveString []rune
}

// NewRobot creates a robot parked at start at tick 0 with a full charge.
func NewRobot(id RobotID, start SpacePoint, maxCharge int) *Robot {
	return &Robot{
		ID:        id,
		MaxCharge: maxCharge,
		Charge:    maxCharge,
		LastKnown: SpaceTimePoint{X: start.X, Y: start.Y, T: 0},
	}
}

// Append adds moves to the robot's accumulated per-tick action string.
func (r *Robot) Append(moves ...Direction) {
	for _, m := range moves {
		r.MoveString = append(r.MoveString, rune(m))
	}
}

// AppendRune appends a single arbitrary character, used for delivery-id
// payload markers during load/unload dwells.
func (r *Robot) AppendRune(c rune) {
	r.MoveString = append(r.MoveString, c)
}
