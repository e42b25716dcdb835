package seal

import (
	"bytes"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixed(t *testing.T) *Sealer {
	t.Helper()
	s, err := New(bytes.Repeat([]byte{0x42}, KeySize), bytes.Repeat([]byte{0x07}, NonceSize))
	require.NoError(t, err)
	return s
}

func TestNewRejectsBadSizes(t *testing.T) {
	_, err := New(make([]byte, 16), make([]byte, NonceSize))
	assert.Error(t, err)

	_, err = New(make([]byte, KeySize), make([]byte, 8))
	assert.Error(t, err)
}

func TestNewFromHex(t *testing.T) {
	key := strings.Repeat("ab", KeySize)
	nonce := strings.Repeat("01", NonceSize)

	s, err := NewFromHex(key, nonce)
	require.NoError(t, err)
	assert.Equal(t, key, hex.EncodeToString(s.Key()))
	assert.Equal(t, nonce, hex.EncodeToString(s.Nonce()))

	_, err = NewFromHex("zz", nonce)
	assert.ErrorContains(t, err, "invalid key")

	_, err = NewFromHex(key, "0102")
	assert.ErrorContains(t, err, "nonce must be")
}

func TestNewFromHexRandomDefaults(t *testing.T) {
	a, err := NewFromHex("", "")
	require.NoError(t, err)
	b, err := NewFromHex("", "")
	require.NoError(t, err)
	assert.NotEqual(t, a.Key(), b.Key())
	assert.Len(t, a.Nonce(), NonceSize)
}

func TestSealReusesKeystream(t *testing.T) {
	s := fixed(t)
	plaintexts := [][]byte{
		[]byte("attack at dawn"),
		[]byte("retreat at dusk!"),
		[]byte("hold"),
	}

	cts, err := s.Seal(plaintexts)
	require.NoError(t, err)
	require.Len(t, cts, 3)

	ks, err := s.Keystream(16)
	require.NoError(t, err)

	for i, ct := range cts {
		require.Len(t, ct, len(plaintexts[i]))
		for p := range ct {
			assert.Equal(t, plaintexts[i][p]^ks[p], ct[p], "line %d byte %d", i, p)
		}
	}

	// c1 ^ c2 cancels the keystream
	for p := 0; p < 4; p++ {
		assert.Equal(t, plaintexts[0][p]^plaintexts[2][p], cts[0][p]^cts[2][p])
	}
}

func TestSealDeterministic(t *testing.T) {
	pt := [][]byte{[]byte("same input")}
	a, err := fixed(t).Seal(pt)
	require.NoError(t, err)
	b, err := fixed(t).Seal(pt)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestReadLines(t *testing.T) {
	lines, err := ReadLines(strings.NewReader("first line\r\n\nsecond\nthird\n"))
	require.NoError(t, err)
	assert.Equal(t, [][]byte{
		[]byte("first line"),
		[]byte("second"),
		[]byte("third"),
	}, lines)
}
