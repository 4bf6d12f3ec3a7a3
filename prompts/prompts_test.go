package prompts

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/reusee/dscope"
	"github.com/reusee/taiact/modes"
	"github.com/reusee/taiact/tools"
)

func TestOSName(t *testing.T) {
	for goos, expected := range map[string]string{
		"darwin":  "macOS",
		"windows": "Windows",
		"linux":   "Linux",
		"plan9":   "Unknown",
		"":        "Unknown",
	} {
		if got := OSName(goos); got != expected {
			t.Fatalf("%s: got %s", goos, got)
		}
	}
}

func TestListFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.txt", "a.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "c"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "c", "nested.txt"), nil, 0644); err != nil {
		t.Fatal(err)
	}

	files, err := ListFiles(dir)
	if err != nil {
		t.Fatal(err)
	}
	expected := []string{
		filepath.Join(dir, "a.txt"),
		filepath.Join(dir, "b.txt"),
		filepath.Join(dir, "c"),
	}
	if diff := cmp.Diff(expected, files); diff != "" {
		t.Fatal(diff)
	}

	if _, err := ListFiles(filepath.Join(dir, "missing")); err == nil {
		t.Fatal("should fail")
	}
}

func TestRender(t *testing.T) {
	got := Render(
		"os=${operating_system} tools=${tool_list} files=${file_list} again=${file_list}",
		"Linux",
		"- f(): doc",
		"/a, /b",
	)
	expected := "os=Linux tools=- f(): doc files=/a, /b again=${file_list}"
	if got != expected {
		t.Fatalf("got %q", got)
	}
}

func TestSystemPrompt(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "main.go"), nil, 0644); err != nil {
		t.Fatal(err)
	}
	dscope.New(
		modes.ForTest(t),
		new(Module),
		dscope.Provide(tools.ProjectDir(dir)),
	).Call(func(
		systemPrompt SystemPrompt,
	) {
		prompt, err := systemPrompt()
		if err != nil {
			t.Fatal(err)
		}
		for _, want := range []string{
			"Operating system: " + OSName(runtime.GOOS),
			"- read_file(file_path): ",
			"- write_to_file(file_path, content): ",
			"- run_terminal_command(command): ",
			filepath.Join(dir, "main.go"),
			"<final_answer>",
		} {
			if !strings.Contains(prompt, want) {
				t.Fatalf("missing %q in prompt", want)
			}
		}
		if strings.Contains(prompt, "${") {
			t.Fatal("unrendered placeholder")
		}
	})
}
