package tools

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/taiact/actions"
	"github.com/reusee/taiact/modes"
)

func testRegistry(t *testing.T, dir string) (registry *Registry) {
	dscope.New(
		modes.ForTest(t),
		new(Module),
		dscope.Provide(ProjectDir(dir)),
	).Call(func(
		r *Registry,
		sandbox Sandbox,
	) {
		registry = r
		// -safe is off in tests
		if err := sandbox(); err != nil {
			t.Fatal(err)
		}
	})
	return
}

func TestBuiltinCatalog(t *testing.T) {
	registry := testRegistry(t, t.TempDir())
	var names []string
	for _, tool := range registry.Tools() {
		names = append(names, tool.Name)
	}
	if strings.Join(names, ",") != "read_file,write_to_file,run_terminal_command" {
		t.Fatalf("got %v", names)
	}
	tool, _ := registry.Get("run_terminal_command")
	if !tool.RequiresConfirmation {
		t.Fatal("shell must require confirmation")
	}
	tool, _ = registry.Get("read_file")
	if tool.RequiresConfirmation {
		t.Fatal()
	}
}

func TestReadWriteFile(t *testing.T) {
	dir := t.TempDir()
	registry := testRegistry(t, dir)
	ctx := t.Context()

	ret, err := registry.Invoke(ctx, "write_to_file", []actions.Value{
		"sub/a.txt",
		`line1\nline2`,
	})
	if err != nil {
		t.Fatal(err)
	}
	if ret != "write succeeded" {
		t.Fatalf("got %q", ret)
	}
	content, err := os.ReadFile(filepath.Join(dir, "sub", "a.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if string(content) != "line1\nline2" {
		t.Fatalf("got %q", content)
	}

	ret, err = registry.Invoke(ctx, "read_file", []actions.Value{
		filepath.Join(dir, "sub", "a.txt"),
	})
	if err != nil {
		t.Fatal(err)
	}
	if ret != "line1\nline2" {
		t.Fatalf("got %q", ret)
	}

	_, err = registry.Invoke(ctx, "read_file", []actions.Value{"not-exists"})
	if err == nil || !strings.Contains(err.Error(), "read file:") {
		t.Fatalf("got %v", err)
	}

	png := []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01")
	if err := os.WriteFile(filepath.Join(dir, "a.png"), png, 0644); err != nil {
		t.Fatal(err)
	}
	_, err = registry.Invoke(ctx, "read_file", []actions.Value{"a.png"})
	if err == nil || !strings.Contains(err.Error(), "not a text file") {
		t.Fatalf("got %v", err)
	}
}

func TestIsText(t *testing.T) {
	for input, expected := range map[string]bool{
		"package main\n":                  true,
		"%!PS-Adobe-3.0\n":                true,
		"{\"a\": 1}":                      true,
		"héllo, 世界":                       true,
		"":                                true,
		"a\x00b":                          false,
		"\x80\x81\x82":                    false,
		"%PDF-1.7\n\x00\x01\x02":          false,
		"\x89PNG\r\n\x1a\n\x00\x00\x00\r": false,
	} {
		if got := isText([]byte(input)); got != expected {
			t.Fatalf("%q: got %v", input, got)
		}
	}
}

func TestRunTerminalCommand(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip()
	}
	dir := t.TempDir()
	registry := testRegistry(t, dir)
	ctx := t.Context()

	for _, c := range []struct {
		command string
		prefix  string
		contain string
	}{
		{"echo hello", "execution succeeded: ", "hello"},
		{"pwd", "execution succeeded: ", filepath.Base(dir)},
		{"echo oops >&2", "execution succeeded with warnings: ", "oops"},
		{"echo progress >&2; echo result", "execution succeeded with warnings: progress", "\noutput: result"},
		{"echo bad >&2; exit 3", "execution failed: ", "bad"},
	} {
		ret, err := registry.Invoke(ctx, "run_terminal_command", []actions.Value{c.command})
		if err != nil {
			t.Fatal(err)
		}
		if !strings.HasPrefix(ret, c.prefix) || !strings.Contains(ret, c.contain) {
			t.Fatalf("%s: got %q", c.command, ret)
		}
	}
}
