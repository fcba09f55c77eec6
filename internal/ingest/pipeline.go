// Package ingest wires the bounded concurrent pipeline described in the
// specification: decoder workers turn raw lines into Requests over a
// bounded channel, and a single engine task drains that channel against
// one Orderbook, with no internal parallelism in the matching path itself.
package ingest

import (
	"bufio"
	"io"
	"runtime"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	tomb "gopkg.in/tomb.v2"

	"matchbook/internal/matching"
	"matchbook/internal/orderbook"
	"matchbook/internal/request"
)

// Config parameterises a pipeline run.
type Config struct {
	// Pair is the symbol tag this engine instance accepts; any Create
	// request for a different pair is rejected as a PairError.
	Pair string

	// Jobs is the number of concurrent decoder workers. Zero means use
	// runtime.GOMAXPROCS(0).
	Jobs int

	// QueueSize bounds both the raw-line and decoded-request channels.
	// Zero falls back to a sane default.
	QueueSize int
}

const defaultQueueSize = 1 << 16 // 65536, within the spec's recommended 65k-131k range.

func (c Config) jobs() int {
	if c.Jobs > 0 {
		return c.Jobs
	}
	return runtime.GOMAXPROCS(0)
}

func (c Config) queueSize() int {
	if c.QueueSize > 0 {
		return c.QueueSize
	}
	return defaultQueueSize
}

// Run reads newline-delimited requests from r, matches them against a
// fresh Orderbook, and returns the terminal snapshot once the source is
// exhausted and the queue has fully drained. It is the only place the
// engine's single-writer Orderbook is constructed and mutated.
func Run(r io.Reader, cfg Config) (Snapshot, error) {
	started := time.Now()

	lines := make(chan []byte, cfg.queueSize())
	requests := make(chan request.Request, cfg.queueSize())

	var t tomb.Tomb

	// upstream tracks the reader and every decoder worker, independently
	// of the tomb: once all of them have exited, requests can be closed,
	// regardless of whether the engine (also under t) is still draining it.
	var upstream sync.WaitGroup
	upstream.Add(1 + cfg.jobs())

	t.Go(func() error {
		defer upstream.Done()
		defer close(lines)
		scanner := bufio.NewScanner(r)
		scanner.Buffer(make([]byte, 64*1024), 1<<20)
		for scanner.Scan() {
			line := append([]byte(nil), scanner.Bytes()...)
			select {
			case lines <- line:
			case <-t.Dying():
				return nil
			}
		}
		return scanner.Err()
	})

	decodeLine := func(_ *tomb.Tomb, line []byte) {
		if len(line) == 0 {
			return
		}
		req, err := request.Decode(line)
		if err != nil {
			log.Error().Err(err).Msg("ingest: malformed request, skipping")
			return
		}
		select {
		case requests <- req:
		case <-t.Dying():
		}
	}

	pool := newDecoderPool(cfg.jobs(), lines, decodeLine)
	pool.start(&t, &upstream)

	go func() {
		upstream.Wait()
		close(requests)
	}()

	snapshotCh := make(chan Snapshot, 1)
	t.Go(func() error {
		defer close(snapshotCh)
		snap := runEngine(requests, cfg.Pair)
		snap.Elapsed = time.Since(started)
		snapshotCh <- snap
		return nil
	})

	if err := t.Wait(); err != nil {
		return Snapshot{}, err
	}

	return <-snapshotCh, nil
}

func runEngine(requests <-chan request.Request, pair string) Snapshot {
	ob := orderbook.New()
	algo := matching.New()

	var snap Snapshot
	for req := range requests {
		snap.Processed++

		switch req.Kind {
		case request.Create:
			if req.Pair != pair {
				snap.Rejected++
				log.Error().Err(&PairError{Expected: pair, Found: req.Pair}).Msg("ingest: rejected request")
				continue
			}
			o, err := req.Order()
			if err != nil {
				snap.Rejected++
				log.Error().Err(err).Msg("ingest: could not translate request")
				continue
			}
			trades, err := algo.Match(o, ob)
			if err != nil {
				snap.Rejected++
				log.Error().Err(err).Msg("ingest: matching algorithm rejected order")
				continue
			}
			snap.Trades += len(trades)
		case request.Delete:
			ob.Remove(req.DeleteID)
		}
	}

	if ask, bid, ok := ob.Spread(); ok {
		snap.AskSpread, snap.BidSpread, snap.HasSpread = ask, bid, true
	}
	snap.AskCount, snap.BidCount = ob.Len()
	snap.AskVolume, snap.BidVolume = ob.Volume()

	return snap
}
