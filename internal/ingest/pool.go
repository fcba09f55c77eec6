package ingest

import (
	"sync"

	tomb "gopkg.in/tomb.v2"

	"github.com/rs/zerolog/log"
)

// decoderPool runs a fixed number of persistent workers against a shared
// task channel, supervised by a tomb.Tomb so a fatal worker error tears
// down the whole pipeline. Adapted from the teacher's WorkerPool, which
// respawned one ephemeral goroutine per task; here each worker loops over
// the channel directly, since decoding a line never needs to outlive the
// pipeline the way a long-lived connection handler might.
type decoderPool struct {
	n     int
	tasks chan []byte
	work  func(t *tomb.Tomb, line []byte)
}

func newDecoderPool(n int, tasks chan []byte, work func(t *tomb.Tomb, line []byte)) *decoderPool {
	return &decoderPool{n: n, tasks: tasks, work: work}
}

// start launches the pool's workers under t, calling done once per worker
// as it exits. It returns immediately; the workers run until tasks is
// closed and drained, or t starts dying.
func (p *decoderPool) start(t *tomb.Tomb, done *sync.WaitGroup) {
	log.Debug().Int("workers", p.n).Msg("ingest: starting decoder pool")
	for i := 0; i < p.n; i++ {
		t.Go(func() error {
			defer done.Done()
			for {
				select {
				case <-t.Dying():
					return nil
				case line, ok := <-p.tasks:
					if !ok {
						return nil
					}
					p.work(t, line)
				}
			}
		})
	}
}
