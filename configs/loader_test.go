package configs

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var testSchema = `
model?: string
max_steps?: int
temperature?: number
tags?: [...string]
`

func testdata(names ...string) (ret []string) {
	for _, name := range names {
		ret = append(ret, filepath.Join("testdata", name))
	}
	return
}

func TestLoaderAssignFirst(t *testing.T) {
	loader := NewLoader(testdata("a.cue", "b.cue"), testSchema)

	var model string
	if err := loader.AssignFirst("model", &model); err != nil {
		t.Fatal(err)
	}
	if model != "deepseek:deepseek-chat" {
		t.Fatalf("got %q", model)
	}

	var tags []string
	if err := loader.AssignFirst("tags", &tags); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"a", "b"}, tags); diff != "" {
		t.Fatal(diff)
	}

	var temperature float64
	if err := loader.AssignFirst("temperature", &temperature); err != nil {
		t.Fatal(err)
	}
	if temperature != 0.2 {
		t.Fatalf("got %v", temperature)
	}

	if err := loader.AssignFirst("not", &model); !errors.Is(err, ErrValueNotFound) {
		t.Fatalf("got %v", err)
	}
}

func TestLoaderIterCueValues(t *testing.T) {
	loader := NewLoader(testdata("a.cue", "b.cue"), testSchema)

	var models []string
	for value, err := range loader.IterCueValues("model") {
		if err != nil {
			t.Fatal(err)
		}
		var s string
		if err := value.Decode(&s); err != nil {
			t.Fatal(err)
		}
		models = append(models, s)
	}
	want := []string{"deepseek:deepseek-chat", "openai:gpt-4o"}
	if diff := cmp.Diff(want, models); diff != "" {
		t.Fatal(diff)
	}
}

func TestFirst(t *testing.T) {
	loader := NewLoader(testdata("a.cue"), testSchema)
	if n := First[int](loader, "max_steps"); n != 20 {
		t.Fatalf("got %d", n)
	}
	if s := First[string](loader, "absent"); s != "" {
		t.Fatalf("got %q", s)
	}

	empty := NewLoader(nil, "")
	if s := First[string](empty, "model"); s != "" {
		t.Fatalf("got %q", s)
	}
	if s := First[string](Loader{}, "model"); s != "" {
		t.Fatalf("got %q", s)
	}
}

func TestUnknownField(t *testing.T) {
	loader := NewLoader(testdata("bad.cue"), testSchema)
	var str string
	err := loader.AssignFirst("unknown_field", &str)
	if err == nil {
		t.Fatal("should error")
	}
	if errors.Is(err, ErrValueNotFound) {
		t.Fatalf("schema violation reported as missing value: %v", err)
	}
}
