package analysis

import (
	"fmt"
	"strings"
)

// TieBreak selects among byte values that occur equally often across the
// most-voted ciphertexts at a position.
type TieBreak string

const (
	// TieLowestIndex keeps the byte contributed by the lowest ciphertext index.
	TieLowestIndex TieBreak = "lowest-index"
	// TieLowestByte keeps the numerically smallest byte value.
	TieLowestByte TieBreak = "lowest-byte"
)

// ParseTieBreak validates a tie-break policy name. Empty selects the default.
func ParseTieBreak(s string) (TieBreak, error) {
	switch TieBreak(s) {
	case "", TieLowestIndex:
		return TieLowestIndex, nil
	case TieLowestByte:
		return TieLowestByte, nil
	default:
		return "", fmt.Errorf("unknown tie-break policy %q (valid: %s, %s)", s, TieLowestIndex, TieLowestByte)
	}
}

// Option is one candidate ciphertext byte found among the winners.
type Option struct {
	Byte       byte
	Count      int
	FirstIndex int // lowest ciphertext index carrying Byte
}

// Resolution records how the keystream byte at one position was chosen.
type Resolution struct {
	Position int
	Votes    Tally
	Max      uint64
	Winners  []int    // ciphertext indices holding Max votes, ascending
	Options  []Option // ordered by FirstIndex
	Chosen   byte     // ciphertext byte assumed to encrypt the dominant byte
	Key      byte
}

// Tied reports whether more than one byte value shared the top count.
func (r Resolution) Tied() bool {
	if len(r.Options) < 2 {
		return false
	}
	top := 0
	for _, o := range r.Options {
		if o.Count > top {
			top = o.Count
		}
	}
	n := 0
	for _, o := range r.Options {
		if o.Count == top {
			n++
		}
	}
	return n > 1
}

// OptionsString renders the options as {0xnn:count ...}.
func (r Resolution) OptionsString() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for n, o := range r.Options {
		if n > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "0x%02x:%d", o.Byte, o.Count)
	}
	sb.WriteByte('}')
	return sb.String()
}

// Resolver turns a position's tally into a keystream byte.
type Resolver struct {
	heuristic Heuristic
	tieBreak  TieBreak
}

// NewResolver creates a resolver.
func NewResolver(h Heuristic, tb TieBreak) *Resolver {
	if h == nil {
		h = ASCIISpace{AcceptZero: true}
	}
	if tb == "" {
		tb = TieLowestIndex
	}
	return &Resolver{heuristic: h, tieBreak: tb}
}

// Resolve picks the keystream byte at position p. It returns false when
// the tally is empty, leaving the position unresolved.
func (r *Resolver) Resolve(p int, tally Tally, ciphertexts [][]byte) (Resolution, bool) {
	if len(tally) == 0 {
		return Resolution{}, false
	}

	res := Resolution{Position: p, Votes: tally, Max: tally.Max()}

	byByte := make(map[byte]int) // byte -> index into res.Options
	for _, idx := range tally.Indices() {
		if tally[idx] != res.Max {
			continue
		}
		if idx < 0 || idx >= len(ciphertexts) || p >= len(ciphertexts[idx]) {
			continue
		}
		res.Winners = append(res.Winners, idx)

		b := ciphertexts[idx][p]
		if k, ok := byByte[b]; ok {
			res.Options[k].Count++
			continue
		}
		byByte[b] = len(res.Options)
		res.Options = append(res.Options, Option{Byte: b, Count: 1, FirstIndex: idx})
	}
	if len(res.Options) == 0 {
		return Resolution{}, false
	}

	best := res.Options[0]
	for _, o := range res.Options[1:] {
		if o.Count > best.Count || (o.Count == best.Count && r.prefer(o, best)) {
			best = o
		}
	}

	res.Chosen = best.Byte
	res.Key = r.heuristic.KeyByte(best.Byte)
	return res, true
}

// prefer reports whether a beats b when both occur equally often.
func (r *Resolver) prefer(a, b Option) bool {
	switch r.tieBreak {
	case TieLowestByte:
		return a.Byte < b.Byte
	default:
		return a.FirstIndex < b.FirstIndex
	}
}
