package main

import (
	"testing"

	"padbreak/internal/logging"

	"go.uber.org/zap"
)

func TestRootCommands(t *testing.T) {
	logger = zap.NewNop()

	want := map[string]bool{"recover": false, "seal": false, "config": false}
	for _, c := range rootCmd.Commands() {
		if _, ok := want[c.Name()]; ok {
			want[c.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("root command is missing %q", name)
		}
	}

	if rootCmd.PersistentFlags().Lookup("verbose") == nil {
		t.Error("expected --verbose persistent flag")
	}
	if rootCmd.PersistentFlags().Lookup("config") == nil {
		t.Error("expected --config persistent flag")
	}
}

func TestPersistentPreRun(t *testing.T) {
	t.Cleanup(func() {
		logger = zap.NewNop()
		logging.Initialize(nil, nil)
	})

	if err := rootCmd.PersistentPreRunE(rootCmd, nil); err != nil {
		t.Fatalf("PersistentPreRunE failed: %v", err)
	}
	if logger == nil {
		t.Fatal("logger was not initialized")
	}
	rootCmd.PersistentPostRun(rootCmd, nil)
}

func TestLoadConfig_EnvPath(t *testing.T) {
	t.Setenv("PADBREAK_CONFIG", writeFile(t, "padbreak.yaml", "analysis:\n  workers: 3\n"))

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig failed: %v", err)
	}
	if cfg.Analysis.Workers != 3 {
		t.Errorf("expected Workers=3, got %d", cfg.Analysis.Workers)
	}
}

func TestPersistentPreRun_DefersAnalysisValidation(t *testing.T) {
	t.Cleanup(func() {
		logger = zap.NewNop()
		logging.Initialize(nil, nil)
	})

	t.Setenv("PADBREAK_HEURISTIC", "bogus")
	if err := rootCmd.PersistentPreRunE(rootCmd, nil); err != nil {
		t.Errorf("analysis settings should be left to the command: %v", err)
	}

	t.Setenv("PADBREAK_LOG_LEVEL", "trace")
	if err := rootCmd.PersistentPreRunE(rootCmd, nil); err == nil {
		t.Error("expected invalid logging level to fail")
	}
}
