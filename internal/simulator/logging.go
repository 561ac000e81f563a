package simulator

import (
	"github.com/charmbracelet/log"

	"github.com/lox/vegasforbots/vegas"
)

// eventLogger bridges game events onto the structured logger at debug
// level, giving a full play-by-play when verbose logging is on.
type eventLogger struct {
	logger *log.Logger
}

func (l *eventLogger) OnEvent(event vegas.GameEvent) {
	switch e := event.(type) {
	case vegas.GameStartEvent:
		l.logger.Debug("game started",
			"game", e.GameID,
			"players", e.NumPlayers)
	case vegas.MovePlayedEvent:
		l.logger.Debug("move played",
			"game", e.GameID,
			"round", e.Round,
			"player", e.Player,
			"casino", e.Casino+1,
			"dice", e.Dice,
			"remaining", e.Remaining)
	case vegas.BillPaidEvent:
		l.logger.Debug("bill paid",
			"game", e.GameID,
			"round", e.Round,
			"casino", e.Casino+1,
			"player", e.Player,
			"bill", e.Bill.Value(),
			"dice", e.DiceCount)
	case vegas.RoundEndEvent:
		l.logger.Debug("round resolved",
			"game", e.GameID,
			"round", e.Round,
			"paid", e.BillsPaid,
			"recycled", e.BillsRecycled)
	case vegas.GameEndEvent:
		l.logger.Debug("game ended",
			"game", e.GameID,
			"scores", e.Scores,
			"winners", e.Winners)
	}
}
