package main

import (
	"fmt"
	"os"

	"padbreak/internal/config"
	"padbreak/internal/logging"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Global flags
	verbose    bool
	configPath string

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "padbreak",
	Short: "padbreak - recover a reused XOR keystream (many-time pad)",
	Long: `padbreak attacks a batch of ciphertexts that were all encrypted by XOR
with the same keystream.

XORing two such ciphertexts cancels the key. Wherever one plaintext holds a
space and the other a letter, the result is a letter with its case flipped.
padbreak counts those collisions per position, picks the ciphertext byte most
likely to be an encrypted space, and decodes the last ciphertext (the target).`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		// Analysis settings are validated by each command once its flags apply.
		if err := cfg.Logging.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		// Initialize logger
		logger, err = logging.NewZap(cfg.Logging.Level, cfg.Logging.Format, verbose)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger = logger.With(zap.String("run", uuid.NewString()))
		logging.Initialize(logger, cfg.Logging.Categories)
		logging.Boot("config loaded from %q", configSource())
		logging.BootDebug("analysis settings: %+v", cfg.Analysis)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logging.Sync()
	},
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML config file (or set PADBREAK_CONFIG env)")

	// Add commands to root
	rootCmd.AddCommand(recoverCmd)
	rootCmd.AddCommand(sealCmd)
	rootCmd.AddCommand(configCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// configSource returns the path named by --config or PADBREAK_CONFIG.
func configSource() string {
	if configPath != "" {
		return configPath
	}
	return os.Getenv("PADBREAK_CONFIG")
}

// loadConfig reads the config named by configSource. Without one, defaults
// plus environment overrides apply. Callers validate once command flags
// have been applied.
func loadConfig() (*config.Config, error) {
	return config.Load(configSource())
}
