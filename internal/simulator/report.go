package simulator

import (
	"fmt"
	"sort"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/vegasforbots/internal/statistics"
)

// Report styles
var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1).
			Bold(true)

	sectionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true)

	nameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#74B9FF"))

	winnerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true)
)

// RenderReport formats the aggregated statistics as a human-readable
// report: seat standings ordered by mean cash, the winning-margin
// distribution, and throughput figures.
func RenderReport(stats *statistics.Statistics, cfg Config, elapsed time.Duration) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Las Vegas simulation"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("%d games • %d players • seed %d",
		stats.Games, cfg.Players, cfg.Seed)))
	b.WriteString("\n\n")

	b.WriteString(sectionStyle.Render("Standings"))
	b.WriteString("\n")
	writeStandings(&b, stats, cfg)

	b.WriteString("\n")
	b.WriteString(sectionStyle.Render("Winning margin"))
	b.WriteString("\n")
	writeMargins(&b, stats)

	b.WriteString("\n")
	b.WriteString(sectionStyle.Render("Totals"))
	b.WriteString("\n")
	writeTotals(&b, stats)

	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%d games in %v", stats.Games, elapsed.Truncate(time.Millisecond)))
	if secs := elapsed.Seconds(); secs > 0 {
		b.WriteString(dimStyle.Render(fmt.Sprintf(" (%.0f games/sec)", float64(stats.Games)/secs)))
	}
	b.WriteString("\n")

	return b.String()
}

func writeStandings(b *strings.Builder, stats *statistics.Statistics, cfg Config) {
	seats := make([]int, cfg.Players)
	for i := range seats {
		seats[i] = i
	}
	sort.SliceStable(seats, func(i, j int) bool {
		return stats.SeatMean(seats[i]) > stats.SeatMean(seats[j])
	})

	w := tabwriter.NewWriter(b, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
		dimStyle.Render("seat"),
		dimStyle.Render("mean cash"),
		dimStyle.Render("win"),
		dimStyle.Render("draw"))

	for rank, seat := range seats {
		name := seatName(cfg, seat)
		if rank == 0 {
			name = winnerStyle.Render(name)
		} else {
			name = nameStyle.Render(name)
		}

		ss := stats.Seats[seat]
		drawPct := 0.0
		if ss.Games > 0 {
			drawPct = float64(ss.Draws) / float64(ss.Games) * 100
		}
		fmt.Fprintf(w, "%s\t$%.1f\t%.1f%%\t%.1f%%\n",
			name,
			stats.SeatMean(seat),
			stats.SeatWinRate(seat)*100,
			drawPct)
	}
	w.Flush()
}

func writeMargins(b *strings.Builder, stats *statistics.Statistics) {
	low, high := stats.ConfidenceInterval95()
	fmt.Fprintf(b, "mean $%.2f ± %.2f SE, 95%% CI [$%.2f, $%.2f]\n",
		stats.Mean(), stats.StdError(), low, high)
	fmt.Fprintf(b, "median $%.0f, std dev $%.2f, P25=$%.0f P75=$%.0f\n",
		stats.Median(), stats.StdDev(), stats.Percentile(0.25), stats.Percentile(0.75))
}

func writeTotals(b *strings.Builder, stats *statistics.Statistics) {
	games := stats.Games
	if games == 0 {
		games = 1
	}
	fmt.Fprintf(b, "bills paid: %d (%.1f/game), moves: %d (%.1f/game)\n",
		stats.TotalBillsPaid, float64(stats.TotalBillsPaid)/float64(games),
		stats.TotalMoves, float64(stats.TotalMoves)/float64(games))
	fmt.Fprintf(b, "draws: %d, best single score: $%d\n", stats.Draws, stats.MaxScore)
	if stats.Aborted > 0 {
		fmt.Fprintf(b, "%s\n", warnStyle.Render(
			fmt.Sprintf("%d games aborted on deck exhaustion", stats.Aborted)))
	}
}

// seatName resolves the display name for a seat, falling back to the
// generated names the engine uses when seats are unnamed.
func seatName(cfg Config, seat int) string {
	if seat < len(cfg.Seats) && cfg.Seats[seat].Name != "" {
		return cfg.Seats[seat].Name
	}
	return fmt.Sprintf("Player %d", seat+1)
}
