package modes

import (
	"testing"

	"github.com/reusee/dscope"
)

func TestForProduction(t *testing.T) {
	dscope.New(ForProduction()).Call(func(
		mode Mode,
		pt *testing.T,
	) {
		if mode != ModeProduction {
			t.Fatalf("got %v", mode)
		}
		if pt != nil {
			t.Fatal("production scope should not carry a *testing.T")
		}
	})
}

func TestForTest(t *testing.T) {
	dscope.New(ForTest(t)).Call(func(
		mode Mode,
		pt *testing.T,
	) {
		if mode != ModeDevelopment {
			t.Fatalf("got %v", mode)
		}
		if pt != t {
			t.Fatal("expected the test's *testing.T")
		}
		if mode.String() != "development" {
			t.Fatalf("got %s", mode)
		}
	})
}
