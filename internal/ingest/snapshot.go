package ingest

import (
	"time"

	"matchbook/internal/types"
)

// Snapshot is the terminal report exposed once the pipeline has fully
// drained: everything a caller needs to print a summary or assert on in a
// test, observed only after the engine loop has exited.
type Snapshot struct {
	Processed int
	Rejected  int
	Trades    int
	Elapsed   time.Duration
	AskSpread types.Price
	BidSpread types.Price
	HasSpread bool
	AskCount  int
	BidCount  int
	AskVolume types.Quantity
	BidVolume types.Quantity
}
