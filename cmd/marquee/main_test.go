package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type cliTestEnv struct {
	baseDir    string
	configPath string
}

func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	configPath := filepath.Join(base, "config.toml")
	content := fmt.Sprintf(`[paths]
library_dir = %q
log_dir = %q
catalog_path = %q

[cache]
enabled = true
capacity = 4

[source]
backend = "catalog"

[logging]
level = "error"
`,
		filepath.Join(base, "library"),
		filepath.Join(base, "logs"),
		filepath.Join(base, "catalog.db"),
	)
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	return &cliTestEnv{baseDir: base, configPath: configPath}
}

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	var flags []string
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, output, want string) {
	t.Helper()
	if !strings.Contains(output, want) {
		t.Fatalf("output %q does not contain %q", output, want)
	}
}

func TestCLICatalogCommands(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"catalog", "add", "series-one-e01", "/library/series-one-e01.mkv"}, env.configPath)
	if err != nil {
		t.Fatalf("catalog add: %v", err)
	}
	requireContains(t, out, "Cataloged series-one-e01")

	out, _, err = runCLI(t, []string{"catalog", "list"}, env.configPath)
	if err != nil {
		t.Fatalf("catalog list: %v", err)
	}
	requireContains(t, out, "series-one-e01")

	out, _, err = runCLI(t, []string{"catalog", "remove", "series-one-e01"}, env.configPath)
	if err != nil {
		t.Fatalf("catalog remove: %v", err)
	}
	requireContains(t, out, "Removed series-one-e01")

	if _, _, err := runCLI(t, []string{"catalog", "remove", "series-one-e01"}, env.configPath); err == nil {
		t.Fatal("expected error removing a record twice")
	}
}

func TestCLIPlayFromCatalog(t *testing.T) {
	env := setupCLITestEnv(t)

	if _, _, err := runCLI(t, []string{"catalog", "add", "intro", "/library/intro.mkv"}, env.configPath); err != nil {
		t.Fatalf("catalog add: %v", err)
	}

	out, _, err := runCLI(t, []string{"play", "intro"}, env.configPath)
	if err != nil {
		t.Fatalf("play: %v", err)
	}
	requireContains(t, out, "Played intro")

	if _, _, err := runCLI(t, []string{"play", "missing"}, env.configPath); err == nil {
		t.Fatal("expected error playing unknown media")
	}
}

func TestCLIPlaylistCommands(t *testing.T) {
	env := setupCLITestEnv(t)

	for _, id := range []string{"x", "y"} {
		if _, _, err := runCLI(t, []string{"catalog", "add", id, "/library/" + id + ".mkv"}, env.configPath); err != nil {
			t.Fatalf("catalog add %s: %v", id, err)
		}
	}

	playlistPath := filepath.Join(env.baseDir, "mix.toml")
	playlistContent := `name = "mix"

[[entries]]
media = "x"

[[entries]]
name = "rest"

[[entries.entries]]
media = "y"
`
	if err := os.WriteFile(playlistPath, []byte(playlistContent), 0o644); err != nil {
		t.Fatalf("write playlist: %v", err)
	}

	out, _, err := runCLI(t, []string{"playlist", "show", playlistPath}, env.configPath)
	if err != nil {
		t.Fatalf("playlist show: %v", err)
	}
	requireContains(t, out, `Playlist "mix" (2 items)`)
	requireContains(t, out, "x")

	out, _, err = runCLI(t, []string{"playlist", "play", playlistPath}, env.configPath)
	if err != nil {
		t.Fatalf("playlist play: %v", err)
	}
	requireContains(t, out, "Played x")
	requireContains(t, out, "Played y")
}

func TestCLIPlaylistPlayKeepGoing(t *testing.T) {
	env := setupCLITestEnv(t)

	if _, _, err := runCLI(t, []string{"catalog", "add", "present", "/library/present.mkv"}, env.configPath); err != nil {
		t.Fatalf("catalog add: %v", err)
	}

	playlistPath := filepath.Join(env.baseDir, "gaps.toml")
	playlistContent := `name = "gaps"

[[entries]]
media = "absent"

[[entries]]
media = "present"
`
	if err := os.WriteFile(playlistPath, []byte(playlistContent), 0o644); err != nil {
		t.Fatalf("write playlist: %v", err)
	}

	out, _, err := runCLI(t, []string{"playlist", "play", "--keep-going", playlistPath}, env.configPath)
	if err == nil {
		t.Fatal("expected failure summary error")
	}
	requireContains(t, out, "Skipped absent")
	requireContains(t, out, "Played present")
}

func TestCLIConfigInit(t *testing.T) {
	env := setupCLITestEnv(t)

	target := filepath.Join(env.baseDir, "fresh", "config.toml")
	out, _, err := runCLI(t, []string{"config", "init", "--path", target}, "")
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	requireContains(t, out, "Wrote sample configuration")

	if _, err := os.Stat(target); err != nil {
		t.Fatalf("expected config file at %s: %v", target, err)
	}

	if _, _, err := runCLI(t, []string{"config", "init", "--path", target}, ""); err == nil {
		t.Fatal("expected error without --overwrite")
	}
	if _, _, err := runCLI(t, []string{"config", "init", "--path", target, "--overwrite"}, ""); err != nil {
		t.Fatalf("config init --overwrite: %v", err)
	}
}
