package main

import (
	"strings"
	"testing"

	"muster/internal/testsupport"
)

func TestRunCommandNoStore(t *testing.T) {
	env := setupCLITestEnv(t)
	seedExports(t, env)

	out, _, err := runCLI(t, []string{"run", "--no-store"}, env.configPath)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	requireContains(t, out, "Groups")
	requireContains(t, out, "Students")
	requireContains(t, out, "(untagged)")
	requireContains(t, out, "Ada Lovelace")
	if strings.Contains(out, "Recorded run") {
		t.Error("--no-store should not record a run")
	}
}

func TestRunCommandRecordsRun(t *testing.T) {
	env := setupCLITestEnv(t)
	seedExports(t, env)

	out, _, err := runCLI(t, []string{"run", "--trust-topics"}, env.configPath)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	requireContains(t, out, "Math Club")
	requireContains(t, out, "Recorded run")

	out, _, err = runCLI(t, []string{"runs"}, env.configPath)
	if err != nil {
		t.Fatalf("runs: %v", err)
	}
	requireContains(t, out, "Groups")
}

func TestRunCommandDirArgument(t *testing.T) {
	env := setupCLITestEnv(t)
	testsupport.WriteRoster(t, env.cfg.Paths.RosterPath,
		"1001,\"Lovelace, Ada\",8,Room 12",
	)

	// Nothing in the configured exports directory; the positional
	// argument points at the real one.
	other := t.TempDir()
	testsupport.WriteExport(t, other, "elsewhere.csv", testsupport.ExportParams{
		Topic: "Chess Club",
		Start: "9/20/2025 2:00 PM",
		Attendees: []testsupport.ExportAttendee{
			{Name: "Nobody Known", Minutes: 25},
		},
	})

	out, _, err := runCLI(t, []string{"run", "--no-store", other}, env.configPath)
	if err != nil {
		t.Fatalf("run with dir: %v", err)
	}
	requireContains(t, out, "Unresolved attendees")
	requireContains(t, out, "Nobody Known")
}

func TestRunCommandRejectsExtraArguments(t *testing.T) {
	env := setupCLITestEnv(t)
	seedExports(t, env)

	if _, _, err := runCLI(t, []string{"run", "--no-store", "a", "b"}, env.configPath); err == nil {
		t.Fatal("more than one positional argument should fail")
	}
}

func TestRunCommandRejectsBadRatio(t *testing.T) {
	env := setupCLITestEnv(t)
	seedExports(t, env)

	if _, _, err := runCLI(t, []string{"run", "--no-store", "--ratio", "1.5"}, env.configPath); err == nil {
		t.Fatal("ratio outside (0,1) should fail")
	}
}

func TestRunsCommandEmpty(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"runs"}, env.configPath)
	if err != nil {
		t.Fatalf("runs: %v", err)
	}
	requireContains(t, out, "No recorded runs")
}
