// Package corpus reads and writes batches of hex-encoded ciphertexts, one
// per line. Lines starting with '#' are comments. The last ciphertext in a
// batch is the target.
package corpus

import (
	"bufio"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"padbreak/internal/logging"
)

// ErrEmpty is returned when a corpus contains no ciphertext lines.
var ErrEmpty = errors.New("corpus contains no ciphertexts")

// LineError reports a line that is not valid hex.
type LineError struct {
	Line int // 1-based
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: invalid hex: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error { return e.Err }

// Corpus is an ordered batch of ciphertexts.
type Corpus struct {
	Source      string
	Ciphertexts [][]byte
}

// Len returns the number of ciphertexts.
func (c *Corpus) Len() int {
	return len(c.Ciphertexts)
}

// Target returns the last ciphertext.
func (c *Corpus) Target() []byte {
	if len(c.Ciphertexts) == 0 {
		return nil
	}
	return c.Ciphertexts[len(c.Ciphertexts)-1]
}

// Parse reads a corpus. Blank lines are skipped along with comments.
func Parse(in io.Reader) (*Corpus, error) {
	input := bufio.NewScanner(in)
	input.Buffer(make([]byte, 64*1024), 16*1024*1024)

	c := &Corpus{}
	line, skipped := 0, 0
	for input.Scan() {
		line++
		text := strings.TrimSpace(input.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			skipped++
			continue
		}
		buf, err := hex.DecodeString(text)
		if err != nil {
			return nil, &LineError{Line: line, Err: err}
		}
		c.Ciphertexts = append(c.Ciphertexts, buf)
	}
	if err := input.Err(); err != nil {
		return nil, fmt.Errorf("failed to read corpus: %w", err)
	}
	if len(c.Ciphertexts) == 0 {
		return nil, ErrEmpty
	}
	logging.CorpusDebug("parsed %d ciphertexts from %d lines (%d blank or comment)", len(c.Ciphertexts), line, skipped)
	return c, nil
}

// Load reads the corpus stored at path.
func Load(path string) (*Corpus, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("couldn't read ciphertext file: %w", err)
	}
	defer f.Close()

	c, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	c.Source = path
	logging.Corpus("loaded %d ciphertexts from %s (target %d bytes)", c.Len(), path, len(c.Target()))
	return c, nil
}

// Write emits comments (each prefixed with "# ") followed by one hex line
// per ciphertext.
func Write(w io.Writer, ciphertexts [][]byte, comments ...string) error {
	bw := bufio.NewWriter(w)
	for _, c := range comments {
		if _, err := fmt.Fprintf(bw, "# %s\n", c); err != nil {
			return err
		}
	}
	for _, ct := range ciphertexts {
		if _, err := fmt.Fprintln(bw, hex.EncodeToString(ct)); err != nil {
			return err
		}
	}
	return bw.Flush()
}
