package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"muster/internal/config"
	"muster/internal/testsupport"
)

type cliTestEnv struct {
	cfg        *config.Config
	configPath string
}

// setupCLITestEnv writes a temp-dir config to disk so commands can load it
// through the --config flag.
func setupCLITestEnv(t *testing.T, opts ...testsupport.ConfigOption) *cliTestEnv {
	t.Helper()

	cfg := testsupport.NewConfig(t, opts...)
	configPath := filepath.Join(filepath.Dir(cfg.Paths.DataDir), "muster.toml")
	writeTestConfig(t, configPath, cfg)

	return &cliTestEnv{cfg: cfg, configPath: configPath}
}

func writeTestConfig(t *testing.T, path string, cfg *config.Config) {
	t.Helper()

	encoded, err := toml.Marshal(cfg)
	if err != nil {
		t.Fatalf("encode test config: %v", err)
	}
	if err := os.WriteFile(path, encoded, 0o644); err != nil {
		t.Fatalf("write test config: %v", err)
	}
}

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()

	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	if configPath != "" {
		args = append([]string{"--config", configPath}, args...)
	}
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}

func seedExports(t *testing.T, env *cliTestEnv) {
	t.Helper()

	testsupport.WriteRoster(t, env.cfg.Paths.RosterPath,
		"1001,\"Lovelace, Ada\",8,Room 12",
		"1002,\"Hopper, Grace\",8,Room 12",
		"1003,\"Turing, Alan\",7,Room 9",
	)
	testsupport.WriteExport(t, env.cfg.Paths.ExportsDir, "a.csv", testsupport.ExportParams{
		Topic: "Math Club",
		Start: "9/12/2025 3:30 PM",
		Attendees: []testsupport.ExportAttendee{
			{Name: "Ada Lovelace", Minutes: 42},
			{Name: "Grace Hopper", Minutes: 40},
			{Name: "Alan Turing", Minutes: 10},
		},
	})
	testsupport.WriteExport(t, env.cfg.Paths.ExportsDir, "b.csv", testsupport.ExportParams{
		Topic: "Math Club",
		Start: "9/19/2025 3:30 PM",
		Attendees: []testsupport.ExportAttendee{
			{Name: "Ada Lovelace", Minutes: 45},
			{Name: "Grace Hopper", Minutes: 44},
		},
	})
}
