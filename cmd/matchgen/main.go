// Command matchgen is the external collaborator that produces a synthetic
// newline-delimited JSON request feed for matchbook: N workers each
// generate a share of random CREATE requests and fan them into a single
// writer over stdout.
package main

import (
	"bufio"
	"math/rand"
	"os"
	"runtime"
	"strconv"
	"sync"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	flag "github.com/spf13/pflag"
)

type wireCreate struct {
	TypeOp     string `json:"type_op"`
	Pair       string `json:"pair"`
	OrderID    string `json:"order_id"`
	AccountID  string `json:"account_id"`
	Side       string `json:"side"`
	LimitPrice string `json:"limit_price"`
	Amount     string `json:"amount"`
}

func main() {
	total := flag.IntP("total", "n", 10_000_000, "number of requests to generate")
	pair := flag.String("pair", "BTC/USDC", "symbol tag to stamp on every generated request")
	workers := flag.IntP("jobs", "j", runtime.GOMAXPROCS(0), "number of generator workers")
	flag.Parse()

	n := max(1, *workers)

	lines := make(chan []byte, 1024*4)

	var wg sync.WaitGroup
	wg.Add(n)
	for _, share := range fairDivision(*total, n) {
		share := share
		go func() {
			defer wg.Done()
			worker(share, *pair, lines)
		}()
	}
	go func() {
		wg.Wait()
		close(lines)
	}()

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()
	for line := range lines {
		out.Write(line)
		out.WriteByte('\n')
	}
}

func worker(count int, pair string, lines chan<- []byte) {
	rng := rand.New(rand.NewSource(rand.Int63()))
	sides := [...]string{"ASK", "BID"}

	for i := 0; i < count; i++ {
		req := wireCreate{
			TypeOp:     "CREATE",
			Pair:       pair,
			OrderID:    uuid.New().String(),
			AccountID:  uuid.New().String(),
			Side:       sides[rng.Intn(len(sides))],
			LimitPrice: strconv.Itoa(rng.Intn(9_900) + 100),
			Amount:     strconv.Itoa(rng.Intn(9_900) + 100),
		}

		line, err := json.Marshal(req)
		if err != nil {
			continue
		}
		lines <- line
	}
}

// fairDivision splits jobs as evenly as possible across workers, matching
// the original generator's round-robin remainder distribution.
func fairDivision(jobs, workers int) []int {
	shares := make([]int, workers)
	base := jobs / workers
	remainder := jobs % workers
	for i := range shares {
		shares[i] = base
		if remainder > 0 {
			shares[i]++
			remainder--
		}
	}
	return shares
}
