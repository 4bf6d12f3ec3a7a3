package react

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/reusee/taiact/actions"
	"github.com/reusee/taiact/generators"
	"golang.org/x/term"
)

const (
	colorReset       = "\033[0m"
	colorThought     = "\033[36m"
	colorAction      = "\033[33m"
	colorObservation = "\033[90m"
	colorAnswer      = "\033[32m"
	colorCancelled   = "\033[31m"
	colorStream      = "\033[2m"
)

// Output writes the progress of a run for the user.
type Output struct {
	w     io.Writer
	color bool
	width int
}

func NewOutput(w io.Writer) *Output {
	ret := &Output{
		w: w,
	}
	if file, ok := w.(*os.File); ok && term.IsTerminal(int(file.Fd())) {
		ret.color = true
		if width, _, err := term.GetSize(int(file.Fd())); err == nil {
			ret.width = width
		}
	}
	return ret
}

func (Module) Output() *Output {
	return NewOutput(os.Stdout)
}

func (o *Output) print(color, label, text string) {
	if o.color {
		fmt.Fprintf(o.w, "\n\n%s%s%s%s", color, label, text, colorReset)
		return
	}
	fmt.Fprintf(o.w, "\n\n%s%s", label, text)
}

func (o *Output) Waiting() {
	o.print(colorObservation, "", "Requesting model...")
}

func (o *Output) Thought(text string) {
	o.print(colorThought, "Thought: ", strings.TrimSpace(text))
}

func (o *Output) Action(action actions.Action) {
	o.print(colorAction, "Action: ", actions.Format(action))
}

// ConfirmRequest shows what a confirmation is about, arguments unquoted.
func (o *Output) ConfirmRequest(action actions.Action) {
	o.print(colorCancelled, "Run "+action.Name+": ", action.ArgsText())
}

func (o *Output) Observation(text string) {
	o.print(colorObservation, "Observation: ", text)
}

func (o *Output) FinalAnswer(text string) {
	text = strings.TrimSpace(text)
	if o.color {
		if rendered, err := o.markdown(text); err == nil {
			o.print(colorAnswer, "Final Answer:", "")
			fmt.Fprint(o.w, "\n", rendered)
			return
		}
	}
	o.print(colorAnswer, "Final Answer: ", text)
	fmt.Fprintln(o.w)
}

// markdown renders answers for the terminal, they are often formatted.
func (o *Output) markdown(text string) (string, error) {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(min(max(o.width, 40), 120)),
	)
	if err != nil {
		return "", err
	}
	return renderer.Render(text)
}

func (o *Output) Cancelled() {
	o.print(colorCancelled, "", "Operation cancelled by user.")
	fmt.Fprintln(o.w)
}

// Delta echoes streamed text as it arrives.
func (o *Output) Delta(delta generators.Delta) {
	text := delta.Reasoning + delta.Content
	if text == "" {
		return
	}
	if o.color {
		fmt.Fprint(o.w, colorStream, text, colorReset)
		return
	}
	fmt.Fprint(o.w, text)
}
