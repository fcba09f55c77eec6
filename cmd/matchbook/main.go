// Command matchbook runs a single-pair matching engine over a
// newline-delimited JSON request feed, printing a terminal report once the
// feed is exhausted.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	flag "github.com/spf13/pflag"

	"matchbook/internal/ingest"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("matchbook", flag.ContinueOnError)
	pair := fs.String("pair", "BTC/USDC", "the symbol this engine instance handles")
	input := fs.String("input", "stdin", "request source: a file path, or \"stdin\"")
	output := fs.String("output", "stdout", "event sink (currently no-op; reserved)")
	jobs := fs.Int("jobs", 0, "decoder worker count (0 = hardware parallelism)")

	if err := fs.Parse(args); err != nil {
		return 2
	}
	_ = output // reserved per the wire contract; no event stream exists yet.

	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	r, closeInput, err := openInput(*input)
	if err != nil {
		log.Error().Err(err).Msg("matchbook: could not open input")
		return 1
	}
	defer closeInput()

	snap, err := ingest.Run(r, ingest.Config{Pair: *pair, Jobs: *jobs})
	if err != nil {
		log.Error().Err(err).Msg("matchbook: pipeline failed")
		return 1
	}

	printReport(os.Stdout, *pair, snap)
	return 0
}

func openInput(path string) (io.Reader, func(), error) {
	if path == "" || path == "stdin" || path == "-" {
		return os.Stdin, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { f.Close() }, nil
}

func printReport(w io.Writer, pair string, snap ingest.Snapshot) {
	fmt.Fprintf(w, "pair:      %s\n", pair)
	fmt.Fprintf(w, "processed: %d (rejected %d, trades %d)\n", snap.Processed, snap.Rejected, snap.Trades)
	fmt.Fprintf(w, "elapsed:   %s\n", snap.Elapsed)
	if snap.HasSpread {
		fmt.Fprintf(w, "spread:    ask=%s bid=%s\n", snap.AskSpread, snap.BidSpread)
	} else {
		fmt.Fprintf(w, "spread:    n/a\n")
	}
	fmt.Fprintf(w, "book:      asks=%d (vol %s) bids=%d (vol %s)\n", snap.AskCount, snap.AskVolume, snap.BidCount, snap.BidVolume)
}
