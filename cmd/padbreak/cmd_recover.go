package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"padbreak/cmd/padbreak/ui"
	"padbreak/internal/analysis"
	"padbreak/internal/config"
	"padbreak/internal/corpus"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	recoverHeuristic  string
	recoverAcceptZero bool
	recoverTieBreak   string
	recoverFallback   string
	recoverMask       string
	recoverWorkers    int
	recoverQuiet      bool
)

// recoverCmd recovers the keystream and decodes the target
var recoverCmd = &cobra.Command{
	Use:   "recover [ciphertext-file]",
	Short: "Recover the shared keystream and decode the last ciphertext",
	Long: `Reads a file with one hex-encoded ciphertext per line (lines starting
with '#' are comments). The last ciphertext is the target; only the first
len(target) bytes of every ciphertext are analyzed.

For every resolved position the vote tally, the candidate bytes and the
chosen byte are printed, followed by the recovered key in hex and the
decoded target.

Example:
  padbreak recover captured.txt
  padbreak recover --tie-break lowest-byte --fallback mask captured.txt`,
	Args: cobra.ExactArgs(1),
	RunE: runRecover,
}

func init() {
	recoverCmd.Flags().StringVar(&recoverHeuristic, "heuristic", "", "Collision heuristic: ascii-space, latin1-space")
	recoverCmd.Flags().BoolVar(&recoverAcceptZero, "accept-zero", true, "Count a zero XOR as two spaces")
	recoverCmd.Flags().StringVar(&recoverTieBreak, "tie-break", "", "Tie-break policy: lowest-index, lowest-byte")
	recoverCmd.Flags().StringVar(&recoverFallback, "fallback", "", "Unresolved positions: zero, mask")
	recoverCmd.Flags().StringVar(&recoverMask, "mask", "", "Placeholder character for --fallback mask")
	recoverCmd.Flags().IntVar(&recoverWorkers, "workers", 0, "Parallel collision scan workers (<= 1 is sequential)")
	recoverCmd.Flags().BoolVarP(&recoverQuiet, "quiet", "q", false, "Only print the key and decoded message")
}

// runRecover executes the full recovery pipeline for one corpus file
func runRecover(cmd *cobra.Command, args []string) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	applyRecoverFlags(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	opts, err := cfg.AnalysisOptions()
	if err != nil {
		return err
	}

	c, err := corpus.Load(args[0])
	if err != nil {
		return err
	}
	logger.Info("Recovering keystream",
		zap.String("file", c.Source),
		zap.Int("ciphertexts", c.Len()),
		zap.Int("target_len", len(c.Target())),
		zap.String("heuristic", opts.Heuristic.Name()),
		zap.String("tie_break", string(opts.TieBreak)))

	res, err := analysis.Recover(ctx, c.Ciphertexts, opts)
	if err != nil {
		return err
	}

	rep := ui.NewReport(cmd.OutOrStdout())
	if !cfg.Output.Quiet {
		for _, r := range res.Resolutions {
			rep.Resolution(r)
		}
	}
	rep.Summary(res)

	logger.Debug("Recovery complete",
		zap.Int("resolved", len(res.Resolutions)),
		zap.Int("unresolved", len(res.Unresolved())))
	return nil
}

// applyRecoverFlags lets explicitly set flags win over the config file.
func applyRecoverFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("heuristic") {
		cfg.Analysis.Heuristic = recoverHeuristic
	}
	if flags.Changed("accept-zero") {
		cfg.Analysis.AcceptZero = recoverAcceptZero
	}
	if flags.Changed("tie-break") {
		cfg.Analysis.TieBreak = recoverTieBreak
	}
	if flags.Changed("fallback") {
		cfg.Output.Fallback = recoverFallback
	}
	if flags.Changed("mask") {
		cfg.Output.Mask = recoverMask
	}
	if flags.Changed("workers") {
		cfg.Analysis.Workers = recoverWorkers
	}
	if flags.Changed("quiet") {
		cfg.Output.Quiet = recoverQuiet
	}
}
