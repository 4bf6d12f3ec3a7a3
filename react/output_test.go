package react

import (
	"bytes"
	"strings"
	"testing"

	"github.com/reusee/taiact/actions"
	"github.com/reusee/taiact/generators"
)

func TestOutput(t *testing.T) {
	buf := new(bytes.Buffer)
	output := NewOutput(buf)
	if output.color {
		t.Fatal("buffer is not a terminal")
	}

	output.Thought("  thinking \n")
	output.Action(actions.Action{
		Name: "write_to_file",
		Args: []actions.Value{"a.txt", "x\ny"},
	})
	output.Observation("write succeeded")
	output.Delta(generators.Delta{Content: "tok"})
	output.FinalAnswer("done")

	expected := "\n\nThought: thinking" +
		"\n\nAction: write_to_file(\"a.txt\", \"x\\ny\")" +
		"\n\nObservation: write succeeded" +
		"tok" +
		"\n\nFinal Answer: done\n"
	if got := buf.String(); got != expected {
		t.Fatalf("got %q", got)
	}
	if strings.Contains(buf.String(), "\033[") {
		t.Fatal("unexpected color codes")
	}
}

func TestStateTerminal(t *testing.T) {
	for state, terminal := range map[State]bool{
		StateAwaitingModel:        false,
		StateParsingResponse:      false,
		StateAwaitingConfirmation: false,
		StateDispatching:          false,
		StateTerminalAnswer:       true,
		StateUserCancelled:        true,
	} {
		if state.Terminal() != terminal {
			t.Fatalf("%s", state)
		}
	}
}
