package analysis

import "encoding/hex"

// Key is a recovered keystream prefix. Every slot is either resolved or
// unresolved; unresolved slots read as zero in the byte view.
type Key struct {
	slots    []byte
	resolved []bool
}

// NewKey creates a key of length n with every slot unresolved.
func NewKey(n int) *Key {
	return &Key{slots: make([]byte, n), resolved: make([]bool, n)}
}

// Assemble builds a key of the given length from per-position resolutions.
// Resolutions outside [0, length) are ignored.
func Assemble(length int, resolutions []Resolution) *Key {
	k := NewKey(length)
	for _, r := range resolutions {
		k.Set(r.Position, r.Key)
	}
	return k
}

// Len returns the key length.
func (k *Key) Len() int {
	return len(k.slots)
}

// Set resolves slot p.
func (k *Key) Set(p int, b byte) {
	if p < 0 || p >= len(k.slots) {
		return
	}
	k.slots[p] = b
	k.resolved[p] = true
}

// At returns slot p and whether it was resolved.
func (k *Key) At(p int) (byte, bool) {
	if p < 0 || p >= len(k.slots) {
		return 0, false
	}
	return k.slots[p], k.resolved[p]
}

// Bytes returns a copy of the key with unresolved slots as 0x00.
func (k *Key) Bytes() []byte {
	out := make([]byte, len(k.slots))
	copy(out, k.slots)
	return out
}

// Hex returns the lowercase hex encoding of Bytes.
func (k *Key) Hex() string {
	return hex.EncodeToString(k.Bytes())
}

// Unresolved lists the positions that never received a vote.
func (k *Key) Unresolved() []int {
	var out []int
	for p, ok := range k.resolved {
		if !ok {
			out = append(out, p)
		}
	}
	return out
}
