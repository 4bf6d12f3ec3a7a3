package debugs

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/taiact/logs"
	"github.com/reusee/taiact/modes"
	"go.starlark.net/starlark"
)

func TestToStarlarkValue(t *testing.T) {
	type role string
	type message struct {
		Role    role
		Content string
		hidden  int
	}
	msg := &message{
		Role:    "user",
		Content: "hello",
		hidden:  1,
	}
	msgDict := func() starlark.Value {
		d := starlark.NewDict(2)
		d.SetKey(starlark.String("Role"), starlark.String("user"))
		d.SetKey(starlark.String("Content"), starlark.String("hello"))
		return d
	}

	for _, c := range []struct {
		name     string
		input    any
		expected starlark.Value
	}{
		{"nil", nil, starlark.None},
		{"bool", true, starlark.True},
		{"bytes", []byte("abc"), starlark.Bytes("abc")},
		{"string", "foo", starlark.String("foo")},
		{"named string", role("assistant"), starlark.String("assistant")},
		{"int", 42, starlark.MakeInt(42)},
		{"int8", int8(-3), starlark.MakeInt(-3)},
		{"uint64", uint64(7), starlark.MakeUint64(7)},
		{"float64", 1.5, starlark.Float(1.5)},
		{"error", errors.New("boom"), starlark.String("boom")},
		{"slice", []int{1, 2}, starlark.NewList([]starlark.Value{starlark.MakeInt(1), starlark.MakeInt(2)})},
		{"array", [1]string{"x"}, starlark.NewList([]starlark.Value{starlark.String("x")})},
		{"struct", *msg, msgDict()},
		{"pointer", msg, msgDict()},
		{"pointer to pointer", &msg, msgDict()},
		{"nil pointer", (*message)(nil), starlark.None},
		{"map", map[string]any{"steps": 3}, func() starlark.Value {
			d := starlark.NewDict(1)
			d.SetKey(starlark.String("steps"), starlark.MakeInt(3))
			return d
		}()},
		{"messages", []message{*msg}, starlark.NewList([]starlark.Value{msgDict()})},
	} {
		t.Run(c.name, func(t *testing.T) {
			got := toStarlarkValue(c.input)
			ok, err := starlark.Equal(got, c.expected)
			if err != nil {
				t.Fatal(err)
			}
			if !ok {
				t.Fatalf("got %v, want %v", got, c.expected)
			}
		})
	}

	t.Run("unsupported", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Fatal("should panic")
			}
		}()
		toStarlarkValue(make(chan int))
	})
}

func TestEval(t *testing.T) {
	value, err := Eval(`len(messages) + steps`, map[string]any{
		"messages": []string{"a", "b"},
		"steps":    3,
	})
	if err != nil {
		t.Fatal(err)
	}
	if value.String() != "5" {
		t.Fatalf("got %s", value)
	}

	if _, err := Eval(`undefined_name`, nil); err == nil {
		t.Fatal("should fail")
	}
}

func TestTap(t *testing.T) {
	dscope.New(
		modes.ForTest(t),
		new(Module),
	).Call(func(
		tap Tap,
	) {
		// stdin is not interactive under go test, the REPL returns at EOF
		tap(t.Context(), "test", map[string]any{
			"foo": 42,
		})
	})
}

func TestTapEval(t *testing.T) {
	*tapEval = `reply.upper()`
	defer func() {
		*tapEval = ""
	}()
	buf := new(bytes.Buffer)
	dscope.New(
		modes.ForTest(t),
		new(Module),
	).Fork(
		func() logs.Logger {
			return slog.New(slog.NewTextHandler(buf, nil))
		},
	).Call(func(
		tap Tap,
	) {
		tap(t.Context(), "model reply", map[string]any{
			"reply": "done",
		})
	})
	if !strings.Contains(buf.String(), `value="\"DONE\""`) {
		t.Fatalf("got %s", buf.String())
	}
}
