package statistics

import (
	"fmt"
	"math"
	"sort"

	"github.com/lox/vegasforbots/vegas"
)

// GameResult represents the outcome of a single game
type GameResult struct {
	GameID    string
	Seed      int64 // RNG seed for this game (for replay)
	Scores    []int // final cash per seat
	Winners   []int // seat(s) holding the most cash
	Rounds    int   // rounds actually resolved
	Moves     int   // total moves played
	BillsPaid int   // bills paid out across all rounds
	Aborted   bool  // game cut short by deck exhaustion
}

// Margin returns the gap between the winning score and the runner-up,
// zero when the game is drawn.
func (r GameResult) Margin() float64 {
	if len(r.Scores) < 2 || len(r.Winners) != 1 {
		return 0
	}
	top, second := 0, 0
	for _, s := range r.Scores {
		if s > top {
			top, second = s, top
		} else if s > second {
			second = s
		}
	}
	return float64(top - second)
}

// SeatStats tracks results for one seat across many games
type SeatStats struct {
	Games    int
	Wins     int // outright wins
	Draws    int // shared first place
	SumCash  float64
	SumCash2 float64
}

// Statistics tracks comprehensive simulation statistics. The headline
// distribution is the per-game winning margin, a measure of how decisive
// games are; per-seat cash and win rates sit alongside it.
type Statistics struct {
	Games   int
	Aborted int
	Draws   int

	Margins    []float64 // store all margins for median/percentile calculation
	SumMargin  float64
	SumMargin2 float64 // sum of squares for variance calculation

	Seats [vegas.MaxPlayers]SeatStats

	TotalCash      float64 // all cash paid to all seats, for ledger checks
	TotalBillsPaid int
	TotalMoves     int
	MaxScore       int // largest single-seat score observed
}

// Add incorporates a new game result into the statistics
func (s *Statistics) Add(result GameResult) {
	s.Games++
	if result.Aborted {
		s.Aborted++
	}
	if len(result.Winners) > 1 {
		s.Draws++
	}

	margin := result.Margin()
	s.Margins = append(s.Margins, margin)
	s.SumMargin += margin
	s.SumMargin2 += margin * margin

	for seat, cash := range result.Scores {
		if seat >= vegas.MaxPlayers {
			break
		}
		ss := &s.Seats[seat]
		ss.Games++
		ss.SumCash += float64(cash)
		ss.SumCash2 += float64(cash) * float64(cash)
		s.TotalCash += float64(cash)
		if cash > s.MaxScore {
			s.MaxScore = cash
		}
	}
	for _, seat := range result.Winners {
		if seat < 0 || seat >= vegas.MaxPlayers {
			continue
		}
		if len(result.Winners) == 1 {
			s.Seats[seat].Wins++
		} else {
			s.Seats[seat].Draws++
		}
	}

	s.TotalBillsPaid += result.BillsPaid
	s.TotalMoves += result.Moves
}

// Mean returns the arithmetic mean winning margin
func (s *Statistics) Mean() float64 {
	if s.Games == 0 {
		return 0
	}
	return s.SumMargin / float64(s.Games)
}

// Variance returns the sample variance of the winning margins
func (s *Statistics) Variance() float64 {
	if s.Games < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.SumMargin2 - float64(s.Games)*mean*mean) / float64(s.Games-1)
}

// StdDev returns the sample standard deviation of the winning margins
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean margin
func (s *Statistics) StdError() float64 {
	if s.Games == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Games))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean margin
func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	se := s.StdError()
	margin := 1.96 * se // 95% confidence
	return mean - margin, mean + margin
}

// Median returns the median winning margin
func (s *Statistics) Median() float64 {
	if len(s.Margins) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.Margins))
	copy(sorted, s.Margins)
	sort.Float64s(sorted)

	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}

// Percentile returns the margin at the given percentile (0.0 to 1.0)
func (s *Statistics) Percentile(p float64) float64 {
	if len(s.Margins) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.Margins))
	copy(sorted, s.Margins)
	sort.Float64s(sorted)

	index := p * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1

	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}

	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

// SeatMean returns the mean cash for a seat
func (s *Statistics) SeatMean(seat int) float64 {
	if seat < 0 || seat >= vegas.MaxPlayers {
		return 0
	}
	ss := s.Seats[seat]
	if ss.Games == 0 {
		return 0
	}
	return ss.SumCash / float64(ss.Games)
}

// SeatWinRate returns the share of games a seat won outright
func (s *Statistics) SeatWinRate(seat int) float64 {
	if seat < 0 || seat >= vegas.MaxPlayers {
		return 0
	}
	ss := s.Seats[seat]
	if ss.Games == 0 {
		return 0
	}
	return float64(ss.Wins) / float64(ss.Games)
}

// IsLedgerBalanced checks that per-seat cash sums match the running total
func (s *Statistics) IsLedgerBalanced() bool {
	seatTotal := 0.0
	for i := range s.Seats {
		seatTotal += s.Seats[i].SumCash
	}
	return math.Abs(s.TotalCash-seatTotal) <= 1e-6
}

// Validate performs consistency checks over the collected data
func (s *Statistics) Validate() error {
	if !s.IsLedgerBalanced() {
		return fmt.Errorf("ledger mismatch: total cash %.2f does not match seat sums", s.TotalCash)
	}
	if len(s.Margins) != s.Games {
		return fmt.Errorf("margin count %d does not match %d games", len(s.Margins), s.Games)
	}
	if s.Aborted > s.Games {
		return fmt.Errorf("aborted count %d exceeds %d games", s.Aborted, s.Games)
	}
	return nil
}
