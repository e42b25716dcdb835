// Package seal builds many-time pad corpora: every plaintext is encrypted
// with ChaCha20 under the same key and nonce, so all ciphertexts share one
// keystream.
package seal

import (
	"bufio"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"padbreak/internal/logging"

	"golang.org/x/crypto/chacha20"
)

const (
	KeySize   = chacha20.KeySize
	NonceSize = chacha20.NonceSize
)

// Sealer encrypts plaintexts under a single reused keystream.
type Sealer struct {
	key   []byte
	nonce []byte
}

// New creates a sealer from an explicit key and nonce.
func New(key, nonce []byte) (*Sealer, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("key must be %d bytes, got %d", KeySize, len(key))
	}
	if len(nonce) != NonceSize {
		return nil, fmt.Errorf("nonce must be %d bytes, got %d", NonceSize, len(nonce))
	}
	return &Sealer{
		key:   append([]byte(nil), key...),
		nonce: append([]byte(nil), nonce...),
	}, nil
}

// NewFromHex parses hex key and nonce. Either may be empty, in which case
// it is drawn from crypto/rand.
func NewFromHex(keyHex, nonceHex string) (*Sealer, error) {
	key, err := decodeOrRandom(keyHex, KeySize)
	if err != nil {
		return nil, fmt.Errorf("invalid key: %w", err)
	}
	nonce, err := decodeOrRandom(nonceHex, NonceSize)
	if err != nil {
		return nil, fmt.Errorf("invalid nonce: %w", err)
	}
	return New(key, nonce)
}

func decodeOrRandom(s string, n int) ([]byte, error) {
	if s == "" {
		buf := make([]byte, n)
		if _, err := rand.Read(buf); err != nil {
			return nil, err
		}
		return buf, nil
	}
	return hex.DecodeString(s)
}

// Key returns a copy of the ChaCha20 key.
func (s *Sealer) Key() []byte { return append([]byte(nil), s.key...) }

// Nonce returns a copy of the nonce.
func (s *Sealer) Nonce() []byte { return append([]byte(nil), s.nonce...) }

func (s *Sealer) stream() (*chacha20.Cipher, error) {
	return chacha20.NewUnauthenticatedCipher(s.key, s.nonce)
}

// Seal encrypts every plaintext from the start of the keystream.
func (s *Sealer) Seal(plaintexts [][]byte) ([][]byte, error) {
	out := make([][]byte, len(plaintexts))
	for i, pt := range plaintexts {
		c, err := s.stream()
		if err != nil {
			return nil, err
		}
		out[i] = make([]byte, len(pt))
		c.XORKeyStream(out[i], pt)
	}
	logging.Seal("sealed %d plaintexts under one keystream", len(plaintexts))
	return out, nil
}

// Keystream returns the first n keystream bytes.
func (s *Sealer) Keystream(n int) ([]byte, error) {
	c, err := s.stream()
	if err != nil {
		return nil, err
	}
	buf := make([]byte, n)
	c.XORKeyStream(buf, buf)
	return buf, nil
}

// ReadLines reads plaintext lines. Trailing carriage returns are dropped
// and empty lines skipped.
func ReadLines(in io.Reader) ([][]byte, error) {
	input := bufio.NewScanner(in)
	input.Buffer(make([]byte, 64*1024), 16*1024*1024)
	var res [][]byte
	for input.Scan() {
		line := strings.TrimRight(input.Text(), "\r")
		if line == "" {
			continue
		}
		res = append(res, []byte(line))
	}
	if err := input.Err(); err != nil {
		return nil, err
	}
	return res, nil
}
