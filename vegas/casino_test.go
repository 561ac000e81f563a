package vegas

import (
	"errors"
	"testing"

	"github.com/lox/vegasforbots/internal/randutil"
)

func TestDealCasinos(t *testing.T) {
	t.Parallel()
	deck := NewDeck(randutil.New(42))
	casinos, err := dealCasinos(deck)
	if err != nil {
		t.Fatalf("Deal failed: %v", err)
	}

	drawn := 0
	for i := range casinos {
		c := &casinos[i]
		if len(c.Bills) != NumBillSlots {
			t.Errorf("Casino %d has %d bill slots, expected %d", i+1, len(c.Bills), NumBillSlots)
		}
		if c.Value() < MinCasinoValue {
			t.Errorf("Casino %d funded with %d, expected at least %d", i+1, c.Value(), MinCasinoValue)
		}
		for s := 1; s < len(c.Bills); s++ {
			if c.Bills[s] > c.Bills[s-1] {
				t.Errorf("Casino %d bills not sorted descending: %v", i+1, c.Bills)
			}
		}
		drawn += c.BillCount()
	}

	if deck.Len() != DeckSize-drawn {
		t.Errorf("Deck has %d bills, expected %d", deck.Len(), DeckSize-drawn)
	}
}

func TestDealCasinosDeterminism(t *testing.T) {
	t.Parallel()
	c1, err := dealCasinos(NewDeck(randutil.New(7)))
	if err != nil {
		t.Fatalf("Deal failed: %v", err)
	}
	c2, err := dealCasinos(NewDeck(randutil.New(7)))
	if err != nil {
		t.Fatalf("Deal failed: %v", err)
	}

	for i := range c1 {
		for s := range c1[i].Bills {
			if c1[i].Bills[s] != c2[i].Bills[s] {
				t.Fatalf("Same seed dealt different casinos: %v vs %v", c1[i].Bills, c2[i].Bills)
			}
		}
	}
}

func TestDealCasinosExhaustion(t *testing.T) {
	t.Parallel()
	// Three 60s fund three casinos, then the deck runs dry.
	deck := &Deck{bills: []Bill{60, 60, 60}, rng: randutil.New(1)}

	_, err := dealCasinos(deck)
	if !errors.Is(err, ErrDeckExhausted) {
		t.Fatalf("Expected ErrDeckExhausted, got %v", err)
	}

	// Every drawn bill must be back in the deck
	if deck.Len() != 3 {
		t.Errorf("Expected 3 bills restored to deck, got %d", deck.Len())
	}
	if deck.TotalValue() != 180 {
		t.Errorf("Expected 180 restored value, got %d", deck.TotalValue())
	}
}

func TestCasinoAccessors(t *testing.T) {
	t.Parallel()
	c := Casino{
		Bills: []Bill{90, 40, NoBill, NoBill, NoBill},
		Dice:  [MaxPlayers]int{3, 0, 2, 0, 0},
	}

	if c.Value() != 130 {
		t.Errorf("Expected value 130, got %d", c.Value())
	}
	if c.BillCount() != 2 {
		t.Errorf("Expected 2 bills, got %d", c.BillCount())
	}
	if c.DiceCount() != 5 {
		t.Errorf("Expected 5 dice, got %d", c.DiceCount())
	}
}
