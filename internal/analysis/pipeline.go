// Package analysis recovers a reused XOR keystream from a batch of
// ciphertexts by counting, per position, which ciphertexts look like they
// encrypted a space, then decodes the last ciphertext (the target).
package analysis

import (
	"context"
	"errors"

	"padbreak/internal/logging"
)

// ErrNoCiphertexts is returned when the batch is empty.
var ErrNoCiphertexts = errors.New("no ciphertexts to analyze")

// Options configures a recovery run.
type Options struct {
	Heuristic Heuristic
	TieBreak  TieBreak
	Fallback  Fallback
	Mask      byte
	Workers   int
}

// DefaultOptions returns the reference behavior: ASCII letters or zero
// count as collisions, ties go to the lowest ciphertext index and
// unresolved key slots decode with a zero key byte.
func DefaultOptions() Options {
	return Options{
		Heuristic: ASCIISpace{AcceptZero: true},
		TieBreak:  TieLowestIndex,
		Fallback:  FallbackZero,
		Mask:      DefaultMask,
		Workers:   1,
	}
}

// Result is the outcome of a recovery run.
type Result struct {
	Target      []byte
	Votes       *VoteTable
	Resolutions []Resolution // ordered by position
	Key         *Key
	Plaintext   []byte
	Text        string
}

// Unresolved lists target positions that received no votes.
func (r *Result) Unresolved() []int {
	return r.Key.Unresolved()
}

// Recover runs the collision scan, resolves every voted position,
// assembles the key and decodes the target, which is the last ciphertext.
// Only the first len(target) bytes of each ciphertext participate.
func Recover(ctx context.Context, ciphertexts [][]byte, opts Options) (*Result, error) {
	if len(ciphertexts) == 0 {
		return nil, ErrNoCiphertexts
	}
	if opts.Heuristic == nil {
		opts.Heuristic = DefaultOptions().Heuristic
	}

	target := ciphertexts[len(ciphertexts)-1]
	length := len(target)

	votes, err := NewAnalyzer(opts.Heuristic, opts.Workers).Analyze(ctx, ciphertexts, length)
	if err != nil {
		return nil, err
	}

	resolver := NewResolver(opts.Heuristic, opts.TieBreak)
	var resolutions []Resolution
	for _, p := range votes.Positions() {
		tally, _ := votes.At(p)
		res, ok := resolver.Resolve(p, tally, ciphertexts)
		if !ok {
			continue
		}
		if res.Tied() {
			logging.ResolveDebug("position %d: tie among %s broken by %s", p, res.OptionsString(), resolver.tieBreak)
		}
		resolutions = append(resolutions, res)
	}

	key := Assemble(votes.Length(), resolutions)
	if missing := key.Unresolved(); len(missing) > 0 {
		logging.ResolveWarn("%d of %d positions received no votes and keep a neutral key byte", len(missing), length)
	}

	plaintext := NewDecoder(opts.Fallback, opts.Mask).Decode(target, key)
	return &Result{
		Target:      target,
		Votes:       votes,
		Resolutions: resolutions,
		Key:         key,
		Plaintext:   plaintext,
		Text:        Text(plaintext),
	}, nil
}
