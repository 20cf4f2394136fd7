// schemehunt brute-forces an 8-byte seed whose icon uses a given color
// scheme, and optionally a given rotation.
package main

import (
	"context"
	"encoding/binary"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	logging "github.com/ipfs/go-log/v2"
	"github.com/tv42/zbase32"

	"identicon/internal/dot"
)

const (
	batchSize   = 4096      // Each worker tests this many inputs per loop
	reportEvery = 1_000_000 // Log progress every N tries
)

var log = logging.Logger("schemehunt")

type target struct {
	scheme   string
	rotation int // -1 matches any rotation
}

func (t target) match(d dot.Derivation) bool {
	return d.Scheme.Name == t.scheme && (t.rotation < 0 || d.Rotation == t.rotation)
}

type result struct {
	seed  []byte
	tried uint64
}

func main() {
	var (
		scheme   = flag.String("scheme", "cube", "Scheme name to search for")
		rotation = flag.Int("rot", -1, "Required rotation (0, 3, 6, 9, 12, 15), -1 for any")
		workers  = flag.Int("workers", runtime.NumCPU(), "Number of goroutines")
	)
	flag.Parse()

	if _, ok := dot.SchemeByName(*scheme); !ok {
		fatal(fmt.Errorf("unknown scheme %q", *scheme))
	}
	if *rotation >= 0 && (*rotation%3 != 0 || *rotation > 15) {
		fatal(fmt.Errorf("rotation %d is never produced", *rotation))
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	start := time.Now()
	fmt.Printf("Searching for scheme %q using %d goroutines...\n", *scheme, *workers)

	res, ok := hunt(ctx, target{scheme: *scheme, rotation: *rotation}, *workers)
	if !ok {
		fatal(ctx.Err())
	}
	fmt.Printf("Found!\nSeed: %x\nzbase32: %s\nTried: %d\nTime: %s\n",
		res.seed, zbase32.EncodeToString(res.seed), res.tried, time.Since(start))
}

// hunt counts upward from zero across workers goroutines until a seed
// matches t or ctx is done.
func hunt(ctx context.Context, t target, workers int) (result, bool) {
	if workers <= 0 {
		workers = 1
	}

	var (
		counter uint64
		found   int32
		res     result
		wg      sync.WaitGroup
	)

	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()

			for atomic.LoadInt32(&found) == 0 && ctx.Err() == nil {
				base := atomic.AddUint64(&counter, batchSize) - batchSize
				for j := uint64(0); j < batchSize; j++ {
					n := base + j
					buf := make([]byte, 8)
					binary.BigEndian.PutUint64(buf, n)

					if t.match(dot.Explain(buf)) {
						if atomic.CompareAndSwapInt32(&found, 0, 1) {
							res = result{seed: buf, tried: n + 1}
						}
						return
					}

					if n%reportEvery == 0 && n > 0 {
						log.Infof("checked %d seeds", n)
					}
				}
			}
		}()
	}
	wg.Wait()

	return res, atomic.LoadInt32(&found) == 1
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
