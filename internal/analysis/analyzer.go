package analysis

import (
	"context"
	"time"

	"padbreak/internal/logging"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Analyzer performs the pairwise collision scan.
type Analyzer struct {
	heuristic Heuristic
	workers   int
}

// NewAnalyzer creates an analyzer. workers <= 1 scans sequentially.
func NewAnalyzer(h Heuristic, workers int) *Analyzer {
	if h == nil {
		h = ASCIISpace{AcceptZero: true}
	}
	if workers < 1 {
		workers = 1
	}
	return &Analyzer{heuristic: h, workers: workers}
}

type pair struct{ i, j int }

// Analyze visits every unordered pair of distinct ciphertexts and every
// position below length that both of them cover, and records a vote for
// both sides whenever the heuristic flags their XOR.
func (a *Analyzer) Analyze(ctx context.Context, ciphertexts [][]byte, length int) (*VoteTable, error) {
	start := time.Now()

	var pairs []pair
	for i := 0; i < len(ciphertexts); i++ {
		for j := i + 1; j < len(ciphertexts); j++ {
			pairs = append(pairs, pair{i, j})
		}
	}

	workers := a.workers
	if workers > len(pairs) {
		workers = len(pairs)
	}

	table := NewVoteTable(length)
	if workers <= 1 {
		logging.AnalysisDebug("scanning %d pairs sequentially", len(pairs))
		for _, pr := range pairs {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			a.scanPair(table, ciphertexts, pr, length)
		}
	} else {
		partials := make([]*VoteTable, workers)
		g, gctx := errgroup.WithContext(ctx)
		for w := 0; w < workers; w++ {
			partials[w] = NewVoteTable(length)
			w := w
			g.Go(func() error {
				log := logging.Get(logging.CategoryAnalysis).With(zap.Int("worker", w))
				n := 0
				for k := w; k < len(pairs); k += workers {
					if err := gctx.Err(); err != nil {
						return err
					}
					a.scanPair(partials[w], ciphertexts, pairs[k], length)
					n++
				}
				log.Debug("scanned %d of %d pairs", n, len(pairs))
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
		for _, part := range partials {
			table.merge(part)
		}
	}

	logging.Analysis("scanned %d pairs over %d positions with %d worker(s) in %v; %d positions voted",
		len(pairs), length, max(workers, 1), time.Since(start), len(table.cells))
	return table, nil
}

func (a *Analyzer) scanPair(table *VoteTable, ciphertexts [][]byte, pr pair, length int) {
	c1, c2 := ciphertexts[pr.i], ciphertexts[pr.j]
	n := min(len(c1), len(c2), length)
	for p := 0; p < n; p++ {
		// c1 ^ c2 = m1 ^ k ^ m2 ^ k = m1 ^ m2
		if a.heuristic.Collides(c1[p] ^ c2[p]) {
			table.Flag(p, pr.i, pr.j)
		}
	}
}
