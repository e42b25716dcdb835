package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"padbreak/internal/corpus"
	"padbreak/internal/seal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	sealKey           string
	sealNonce         string
	sealOut           string
	sealEmitKeystream bool
)

// sealCmd builds a many-time pad corpus from plaintext lines
var sealCmd = &cobra.Command{
	Use:   "seal [plaintext-file]",
	Short: "Encrypt plaintext lines under one reused ChaCha20 keystream",
	Long: `Encrypts every line of the plaintext file with ChaCha20 using the same
key and nonce, producing a corpus that 'padbreak recover' can attack. The
last line becomes the target.

The key (32 bytes) and nonce (12 bytes) are read as hex; missing values are
generated randomly. The nonce is written as a comment header; with
--emit-keystream the key and the keystream prefix are written too.

Example:
  padbreak seal plaintexts.txt > captured.txt
  padbreak seal --emit-keystream --out captured.txt plaintexts.txt`,
	Args: cobra.ExactArgs(1),
	RunE: runSeal,
}

func init() {
	sealCmd.Flags().StringVar(&sealKey, "key", "", "ChaCha20 key in hex (default: random)")
	sealCmd.Flags().StringVar(&sealNonce, "nonce", "", "ChaCha20 nonce in hex (default: random)")
	sealCmd.Flags().StringVarP(&sealOut, "out", "o", "", "Output file (default: stdout)")
	sealCmd.Flags().BoolVar(&sealEmitKeystream, "emit-keystream", false, "Write the key and keystream prefix as comments")
}

// runSeal encrypts a plaintext file into a hex corpus
func runSeal(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("couldn't read plaintext file: %w", err)
	}
	defer f.Close()

	plaintexts, err := seal.ReadLines(f)
	if err != nil {
		return fmt.Errorf("couldn't read plaintext file: %w", err)
	}
	if len(plaintexts) == 0 {
		return fmt.Errorf("%s: no plaintext lines", args[0])
	}

	s, err := seal.NewFromHex(sealKey, sealNonce)
	if err != nil {
		return err
	}
	cts, err := s.Seal(plaintexts)
	if err != nil {
		return err
	}

	comments := []string{
		"padbreak seal: chacha20, one keystream for every line",
		"nonce " + hex.EncodeToString(s.Nonce()),
	}
	if sealEmitKeystream {
		longest := 0
		for _, pt := range plaintexts {
			longest = max(longest, len(pt))
		}
		ks, err := s.Keystream(longest)
		if err != nil {
			return err
		}
		comments = append(comments,
			"key "+hex.EncodeToString(s.Key()),
			"keystream "+hex.EncodeToString(ks))
	}

	var w io.Writer = cmd.OutOrStdout()
	if sealOut != "" {
		out, err := os.Create(sealOut)
		if err != nil {
			return fmt.Errorf("failed to create output: %w", err)
		}
		defer out.Close()
		w = out
	}
	if err := corpus.Write(w, cts, comments...); err != nil {
		return fmt.Errorf("failed to write corpus: %w", err)
	}

	logger.Info("Sealed corpus",
		zap.String("file", args[0]),
		zap.Int("lines", len(cts)),
		zap.String("out", sealOut))
	return nil
}
