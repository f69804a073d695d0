package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRootRegistersCommands(t *testing.T) {
	root := newRootCmd()

	want := map[string]bool{
		"list":       false,
		"encode":     false,
		"render":     false,
		"serve":      false,
		"cache":      false,
		"completion": false,
	}
	for _, cmd := range root.Commands() {
		if _, ok := want[cmd.Name()]; ok {
			want[cmd.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("command %q not registered", name)
		}
	}
}

func TestListCommand(t *testing.T) {
	out := filepath.Join(t.TempDir(), "genus1.txt")
	if _, err := runCommand(t, "list", "-g", "1", "-o", out, "--no-cache"); err != nil {
		t.Fatalf("list: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if got := string(data); got != "aaa: 3 1 4 6 2\n" {
		t.Errorf("output = %q, want %q", got, "aaa: 3 1 4 6 2\n")
	}
}

func TestListCommandRejectsBadGenus(t *testing.T) {
	for _, genus := range []string{"0", "-1", "99"} {
		if _, err := runCommand(t, "list", "-g", genus); err == nil {
			t.Errorf("list -g %s should fail", genus)
		}
	}
}

func TestEncodeCommand(t *testing.T) {
	out := filepath.Join(t.TempDir(), "codes.txt")
	if _, err := runCommand(t, "encode", "aaa", "aaaaa", "-o", out); err != nil {
		t.Fatalf("encode: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	want := "aaa: 4 6 2\naaaaa: 6 8 10 2 4\n"
	if got := string(data); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestEncodeCommandRejectsOpenClosures(t *testing.T) {
	// The closure of "aba" has more than one trace component.
	if _, err := runCommand(t, "encode", "aba"); err == nil {
		t.Error("encode aba should fail")
	}
	if _, err := runCommand(t, "encode", "a1a"); err == nil {
		t.Error("encode a1a should fail")
	}
}

func TestRenderCommandDOT(t *testing.T) {
	out := filepath.Join(t.TempDir(), "trefoil.dot")
	if _, err := runCommand(t, "render", "aaa", "--format", "dot", "-o", out); err != nil {
		t.Fatalf("render: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if !strings.Contains(string(data), "graph interlacement") {
		t.Errorf("output does not look like DOT: %q", data)
	}
}

func TestRenderCommandRejectsBadFormat(t *testing.T) {
	if _, err := runCommand(t, "render", "aaa", "--format", "gif"); err == nil {
		t.Error("render --format gif should fail")
	}
}

func TestCachePathCommand(t *testing.T) {
	if _, err := runCommand(t, "cache", "path"); err != nil {
		t.Fatalf("cache path: %v", err)
	}
}
