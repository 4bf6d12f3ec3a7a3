package taiconfigs

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/reusee/dscope"
	"github.com/reusee/taiact/configs"
	"github.com/reusee/taiact/modes"
)

func TestConfigPaths(t *testing.T) {
	dir1 := t.TempDir()
	dir2 := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir1, ".taiact.cue"), []byte(`model: "a"`), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir2, "taiact.cue"), []byte(`model: "b"`), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.Mkdir(filepath.Join(dir2, ".taiact.cue"), 0755); err != nil {
		t.Fatal(err)
	}

	got := ConfigPaths(dir1, "", dir2)
	want := []string{
		filepath.Join(dir1, ".taiact.cue"),
		filepath.Join(dir2, "taiact.cue"),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatal(diff)
	}

	loader := configs.NewLoader(got, schema)
	if model := configs.First[string](loader, "model"); model != "a" {
		t.Fatalf("got %q", model)
	}
}

func TestSchema(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "taiact.cue")
	if err := os.WriteFile(path, []byte(`
generators: [{
	name: "local"
	type: "ollama"
	model: "qwen3"
}]
max_steps: 10
`), 0644); err != nil {
		t.Fatal(err)
	}
	loader := configs.NewLoader([]string{path}, schema)
	if n := configs.First[int](loader, "max_steps"); n != 10 {
		t.Fatalf("got %d", n)
	}

	if err := os.WriteFile(path, []byte(`max_steps: -1`), 0644); err != nil {
		t.Fatal(err)
	}
	var n int
	if err := configs.NewLoader([]string{path}, schema).AssignFirst("max_steps", &n); err == nil {
		t.Fatal("should fail")
	}
}

func TestMaxTokens(t *testing.T) {
	dscope.New(
		modes.ForTest(t),
		new(Module),
	).Fork(
		dscope.Provide(configs.NewLoader(nil, "")),
	).Call(func(
		maxTokens MaxTokens,
	) {
		if maxTokens != math.MaxInt {
			t.Fatalf("got %d", maxTokens)
		}
	})

	dir := t.TempDir()
	path := filepath.Join(dir, "taiact.cue")
	if err := os.WriteFile(path, []byte(`max_tokens: 4096`), 0644); err != nil {
		t.Fatal(err)
	}
	dscope.New(
		modes.ForTest(t),
		new(Module),
	).Fork(
		dscope.Provide(configs.NewLoader([]string{path}, schema)),
	).Call(func(
		maxTokens MaxTokens,
	) {
		if maxTokens != 4096 {
			t.Fatalf("got %d", maxTokens)
		}
	})
}
