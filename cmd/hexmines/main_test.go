package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	tests := []struct {
		in, want string
	}{
		{"~/.hexmines/scores.db", filepath.Join(home, ".hexmines/scores.db")},
		{"/tmp/scores.db", "/tmp/scores.db"},
		{"scores.db", "scores.db"},
	}
	for _, tt := range tests {
		if got := expandHome(tt.in); got != tt.want {
			t.Errorf("expandHome(%q) = %q, expected %q", tt.in, got, tt.want)
		}
	}
}

func TestEnvironmentSuppliesFlagDefaults(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "env.db")
	t.Setenv("HEXMINES_DB", dbPath)
	t.Setenv("HEXMINES_LOG_LEVEL", "debug")

	rootCmd.SetArgs([]string{"list"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Execute() failed: %v", err)
	}

	if flagDBPath != dbPath {
		t.Errorf("--db = %q, expected %q from environment", flagDBPath, dbPath)
	}
	if flagLogLevel != "debug" {
		t.Errorf("--log-level = %q, expected debug", flagLogLevel)
	}
}

func TestInvalidDifficultyRejected(t *testing.T) {
	rootCmd.SetArgs([]string{"list", "--difficulty", "nightmare"})
	defer rootCmd.SetArgs(nil)
	if err := rootCmd.Execute(); err == nil {
		t.Error("Execute() should fail for unknown difficulty")
	}
	flagDifficulty = ""
}
