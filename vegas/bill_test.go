package vegas

import "testing"

func TestBillCompositionTotals(t *testing.T) {
	t.Parallel()
	count, value := 0, 0
	largest := NoBill
	for _, c := range billComposition {
		count += c.Count
		value += int(c.Value) * c.Count
		if c.Value > largest {
			largest = c.Value
		}
	}

	if count != DeckSize {
		t.Errorf("Expected %d bills in the composition, got %d", DeckSize, count)
	}
	if value != TotalBillValue {
		t.Errorf("Expected composition total %d, got %d", TotalBillValue, value)
	}
	if largest != MaxBillValue {
		t.Errorf("Expected largest denomination %d, got %d", MaxBillValue, largest)
	}
}

func TestBillEmpty(t *testing.T) {
	t.Parallel()
	if !NoBill.Empty() {
		t.Error("NoBill must report empty")
	}
	if Bill(50).Empty() {
		t.Error("A denomination must not report empty")
	}
	if got := Bill(70).Value(); got != 70 {
		t.Errorf("Expected value 70, got %d", got)
	}
	if got := NoBill.Value(); got != 0 {
		t.Errorf("Expected NoBill value 0, got %d", got)
	}
}
