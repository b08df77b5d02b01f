package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/term"

	"github.com/rshade/listkit/internal/cli"
	"github.com/rshade/listkit/internal/config"
	"github.com/rshade/listkit/internal/listmodel"
)

// setupCLITest isolates configuration in a temp home and quiets logging.
func setupCLITest(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv(config.EnvHome, home)
	t.Setenv(config.EnvConfigPath, "")
	t.Setenv(config.EnvLogLevel, "error")
	t.Setenv(config.EnvLogFormat, "")
	return home
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// execute runs the root command with args and returns its stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := cli.NewRootCmd("1.2.3")
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

const tableFile = `
columns:
  - title: Name
    key: name
  - title: Size
    key: size
items:
  - {name: regedit, size: 3}
  - {name: os, size: 10}
  - {name: re, size: 7}
`

func TestMatch(t *testing.T) {
	setupCLITest(t)
	plain := writeFile(t, "plain.yaml", "items: [sys, signal, os]\n")
	unsorted := writeFile(t, "unsorted.yaml", "items: [signal, os, sys]\n")
	fallback := writeFile(t, "fallback.yaml", "items: [vanilla, zipimport]\n")
	table := writeFile(t, "table.yaml", tableFile)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "smallest prefix match wins", args: []string{"match", "s", plain}, want: "row 1 (item 1): signal\n"},
		{name: "rows follow the sort", args: []string{"match", "--sort", "item:asc", "s", unsorted}, want: "row 1 (item 0): signal\n"},
		{name: "falls back to the next larger item", args: []string{"match", "x", fallback}, want: "row 1 (item 1): zipimport\n"},
		{name: "matches the chosen column", args: []string{"match", "--column", "name", "re", table}, want: "row 2 (item 2): re\n"},
		{
			name: "table rows follow the sort",
			args: []string{"match", "--column", "name", "--sort", "size:desc", "re", table},
			want: "row 1 (item 2): re\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestMatch_Errors(t *testing.T) {
	setupCLITest(t)
	single := writeFile(t, "single.yaml", "items: [a]\n")
	table := writeFile(t, "table.yaml", tableFile)

	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{name: "nothing sorts after the input", args: []string{"match", "b", single}, wantErr: cli.ErrNoMatch},
		{name: "no item files", args: []string{"match", "a"}, wantErr: cli.ErrNoItemFiles},
		{name: "unknown column", args: []string{"match", "--column", "owner", "a", table}, wantErr: listmodel.ErrUnknownColumn},
		{name: "implicit column only", args: []string{"match", "--column", "name", "a", single}, wantErr: listmodel.ErrUnknownColumn},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestReconcile(t *testing.T) {
	setupCLITest(t)
	items := writeFile(t, "items.yaml", "items: [c, a, b]\n")

	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "logical to displayed", args: []string{"reconcile", "--sort", "item:asc", "--logical", "0,2", items}, want: "1,2\n"},
		{name: "displayed to logical", args: []string{"reconcile", "--sort", "item:desc", "--displayed", "2,0", items}, want: "0,1\n"},
		{name: "unsorted is identity", args: []string{"reconcile", "--logical", "2,0", items}, want: "2,0\n"},
		{name: "stale indexes are omitted", args: []string{"reconcile", "--sort", "item:asc", "--logical", "1,9", items}, want: "0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestReconcile_RequiresOneDirection(t *testing.T) {
	setupCLITest(t)
	items := writeFile(t, "items.yaml", "items: [c, a, b]\n")

	_, err := execute(t, "reconcile", items)
	require.ErrorIs(t, err, cli.ErrIndexDirection)

	_, err = execute(t, "reconcile", "--logical", "0", "--displayed", "0", items)
	require.ErrorIs(t, err, cli.ErrIndexDirection)
}

func TestReconcile_SortFromConfigFile(t *testing.T) {
	setupCLITest(t)
	items := writeFile(t, "items.yaml", "items: [a, b, c]\n")
	overlay := writeFile(t, "listkit.yaml", "list:\n  sort: item:desc\n")

	out, err := execute(t, "--config", overlay, "reconcile", "--logical", "0", items)
	require.NoError(t, err)
	assert.Equal(t, "2\n", out)
}

func TestRoot_InvalidConfig(t *testing.T) {
	setupCLITest(t)
	items := writeFile(t, "items.yaml", "items: [a]\n")
	overlay := writeFile(t, "listkit.yaml", "version: 2.0.0\n")

	_, err := execute(t, "--config", overlay, "reconcile", "--logical", "0", items)
	require.ErrorIs(t, err, config.ErrUnsupportedVersion)
}

func TestConfigInit(t *testing.T) {
	home := setupCLITest(t)

	out, err := execute(t, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration initialized successfully")

	path := filepath.Join(home, "config.yaml")
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "typing_sensitive: true")

	_, err = execute(t, "config", "init")
	require.Error(t, err, "existing file is kept without --force")

	_, err = execute(t, "config", "init", "--force")
	require.NoError(t, err)
}

func TestConfigShow(t *testing.T) {
	setupCLITest(t)
	overlay := writeFile(t, "listkit.yaml", "list:\n  enable_delete: true\n")

	out, err := execute(t, "--config", overlay, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "enable_delete: true")
	assert.Contains(t, out, "level: error")
}

func TestVersion(t *testing.T) {
	setupCLITest(t)

	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "listkit 1.2.3\n", out)
}

func TestBrowse_RequiresTerminal(t *testing.T) {
	if term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd())) {
		t.Skip("running attached to a terminal")
	}
	setupCLITest(t)
	items := writeFile(t, "items.yaml", "items: [a]\n")

	_, err := execute(t, "browse", items)
	require.ErrorIs(t, err, cli.ErrNotTerminal)
}
