package analysis

import (
	"fmt"
	"sort"
	"strings"
)

// Tally maps a ciphertext index to the number of votes it received.
type Tally map[int]uint64

// Max returns the highest vote count in the tally.
func (t Tally) Max() uint64 {
	var max uint64
	for _, n := range t {
		if n > max {
			max = n
		}
	}
	return max
}

// Indices returns the ciphertext indices present in the tally, ascending.
func (t Tally) Indices() []int {
	idx := make([]int, 0, len(t))
	for i := range t {
		idx = append(idx, i)
	}
	sort.Ints(idx)
	return idx
}

// String renders the tally as {index:count ...} in index order.
func (t Tally) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for n, i := range t.Indices() {
		if n > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%d:%d", i, t[i])
	}
	sb.WriteByte('}')
	return sb.String()
}

// VoteTable holds per-position tallies for positions [0, Length).
// Positions that never received a vote have no entry.
type VoteTable struct {
	length int
	cells  map[int]Tally
}

// NewVoteTable creates an empty table covering length positions.
func NewVoteTable(length int) *VoteTable {
	return &VoteTable{length: length, cells: make(map[int]Tally)}
}

// Length returns the number of positions the table covers.
func (t *VoteTable) Length() int {
	return t.length
}

// Flag records a collision between ciphertexts i and j at position p:
// both sides receive exactly one vote.
func (t *VoteTable) Flag(p, i, j int) {
	cell := t.cells[p]
	if cell == nil {
		cell = make(Tally)
		t.cells[p] = cell
	}
	cell[i]++
	cell[j]++
}

// At returns the tally for position p, if any vote was recorded there.
func (t *VoteTable) At(p int) (Tally, bool) {
	cell, ok := t.cells[p]
	return cell, ok
}

// Positions returns every position with at least one vote, ascending.
func (t *VoteTable) Positions() []int {
	pos := make([]int, 0, len(t.cells))
	for p := range t.cells {
		pos = append(pos, p)
	}
	sort.Ints(pos)
	return pos
}

// merge adds every count in o into t.
func (t *VoteTable) merge(o *VoteTable) {
	for p, src := range o.cells {
		dst := t.cells[p]
		if dst == nil {
			dst = make(Tally, len(src))
			t.cells[p] = dst
		}
		for i, n := range src {
			dst[i] += n
		}
	}
}
