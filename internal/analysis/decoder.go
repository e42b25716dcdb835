package analysis

import (
	"fmt"
	"strings"
)

// Fallback decides what the decoder emits at unresolved key slots.
type Fallback string

const (
	// FallbackZero XORs with 0x00, so the raw target byte shows through.
	FallbackZero Fallback = "zero"
	// FallbackMask replaces the byte with a placeholder.
	FallbackMask Fallback = "mask"
)

// DefaultMask is the placeholder used by FallbackMask.
const DefaultMask byte = '_'

// ParseFallback validates a fallback policy name. Empty selects the default.
func ParseFallback(s string) (Fallback, error) {
	switch Fallback(s) {
	case "", FallbackZero:
		return FallbackZero, nil
	case FallbackMask:
		return FallbackMask, nil
	default:
		return "", fmt.Errorf("unknown fallback policy %q (valid: %s, %s)", s, FallbackZero, FallbackMask)
	}
}

// Decoder applies a recovered key to the target.
type Decoder struct {
	fallback Fallback
	mask     byte
}

// NewDecoder creates a decoder with the given fallback policy.
func NewDecoder(f Fallback, mask byte) *Decoder {
	if f == "" {
		f = FallbackZero
	}
	return &Decoder{fallback: f, mask: mask}
}

// Decode returns target[p] XOR key[p] for every p < key.Len(). Nothing is
// checked for printability.
func (d *Decoder) Decode(target []byte, key *Key) []byte {
	n := min(len(target), key.Len())
	out := make([]byte, n)
	for p := 0; p < n; p++ {
		kb, ok := key.At(p)
		if !ok && d.fallback == FallbackMask {
			out[p] = d.mask
			continue
		}
		out[p] = target[p] ^ kb
	}
	return out
}

// Text interprets every byte as the Latin-1 code point of the same value.
func Text(plaintext []byte) string {
	var sb strings.Builder
	sb.Grow(len(plaintext))
	for _, b := range plaintext {
		sb.WriteRune(rune(b))
	}
	return sb.String()
}
