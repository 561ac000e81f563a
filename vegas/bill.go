package vegas

// Bill is a single banknote in thousands of dollars. The zero value marks an
// empty bill slot on a casino, so a Bill is either NoBill or one of the nine
// denominations from 10 to 90.
type Bill int

// NoBill pads casino bill slots that hold no banknote.
const NoBill Bill = 0

// MaxBillValue is the largest denomination in the deck, used to normalize
// bill values in encoded game states.
const MaxBillValue = 90

// billComposition lists every denomination and how many copies the deck
// holds. Order matters: the deck is built in this order before shuffling so
// that a given seed always produces the same deck.
var billComposition = []struct {
	Value Bill
	Count int
}{
	{10, 6},
	{20, 8},
	{30, 8},
	{40, 6},
	{50, 6},
	{60, 5},
	{70, 5},
	{80, 5},
	{90, 5},
}

// DeckSize is the total number of bills in a fresh deck.
const DeckSize = 54

// TotalBillValue is the combined value of every bill in a fresh deck.
const TotalBillValue = 2500

// Empty reports whether b is the NoBill slot filler.
func (b Bill) Empty() bool {
	return b == NoBill
}

// Value returns the bill's worth in thousands, 0 for NoBill.
func (b Bill) Value() int {
	return int(b)
}
