package analysis

import (
	"fmt"
	"unicode"
)

// Space is the plaintext byte assumed to dominate the corpus.
const Space byte = 0x20

// Heuristic names accepted by NewHeuristic.
const (
	HeuristicASCII  = "ascii-space"
	HeuristicLatin1 = "latin1-space"
)

// Heuristic decides which pairwise XOR values count as a space collision
// and how a ciphertext byte believed to encrypt a space maps to a key byte.
type Heuristic interface {
	// Name identifies the heuristic in reports and configuration.
	Name() string
	// Collides reports whether x = c1 XOR c2 is consistent with one
	// of the two plaintext bytes being the dominant byte.
	Collides(x byte) bool
	// KeyByte returns the keystream byte implied by cipherByte.
	KeyByte(cipherByte byte) byte
}

// ASCIISpace flags XOR values that are ASCII letters. A space XOR a letter
// only flips the case bit, so the result is itself a letter. Zero (two
// spaces, or two identical bytes) is accepted when AcceptZero is set.
type ASCIISpace struct {
	AcceptZero bool
}

func (ASCIISpace) Name() string { return HeuristicASCII }

func (h ASCIISpace) Collides(x byte) bool {
	if x == 0 {
		return h.AcceptZero
	}
	return (x >= 'A' && x <= 'Z') || (x >= 'a' && x <= 'z')
}

func (ASCIISpace) KeyByte(c byte) byte { return c ^ Space }

// Latin1Space treats the XOR value as a Latin-1 code point and accepts any
// letter in U+0000..U+00FF. It is looser than ASCIISpace and flags some
// high-bit values that can never come from space XOR letter.
type Latin1Space struct {
	AcceptZero bool
}

func (Latin1Space) Name() string { return HeuristicLatin1 }

func (h Latin1Space) Collides(x byte) bool {
	if x == 0 {
		return h.AcceptZero
	}
	return unicode.IsLetter(rune(x))
}

func (Latin1Space) KeyByte(c byte) byte { return c ^ Space }

// NewHeuristic returns the built-in heuristic registered under name.
func NewHeuristic(name string, acceptZero bool) (Heuristic, error) {
	switch name {
	case "", HeuristicASCII:
		return ASCIISpace{AcceptZero: acceptZero}, nil
	case HeuristicLatin1:
		return Latin1Space{AcceptZero: acceptZero}, nil
	default:
		return nil, fmt.Errorf("unknown heuristic %q (valid: %s, %s)", name, HeuristicASCII, HeuristicLatin1)
	}
}
