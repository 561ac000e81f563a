package vegas

// Player holds one seat's state. Seats at index NumPlayers and beyond are
// inactive: they never roll, never hold dice and never accrue cash, but they
// keep the state shape fixed so encodings are the same length for every
// player count.
type Player struct {
	Seat int
	Name string
	Cash int
	Dice int
}
