package request

import (
	"strings"

	"matchbook/internal/common"
)

// parseSide accepts the four wire aliases: BUY and BID both mean the bid
// side, SELL and ASK both mean the ask side.
func parseSide(raw string) (common.Side, error) {
	switch strings.ToUpper(raw) {
	case "BUY", "BID":
		return common.Bid, nil
	case "SELL", "ASK":
		return common.Ask, nil
	default:
		return common.Side(0), ErrUnknownSide
	}
}
