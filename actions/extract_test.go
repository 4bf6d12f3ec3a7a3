package actions

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestExtract(t *testing.T) {
	for _, c := range []struct {
		name   string
		input  string
		expect Reply
	}{
		{
			name:  "thought and action",
			input: "<thought>need the file</thought>\n<action>read_file(\"a.txt\")</action>",
			expect: Reply{
				Thought:    "need the file",
				HasThought: true,
				Action:     `read_file("a.txt")`,
				HasAction:  true,
			},
		},
		{
			name:  "final answer",
			input: "<thought>done</thought><final_answer>42\nlines</final_answer>",
			expect: Reply{
				Thought:        "done",
				HasThought:     true,
				FinalAnswer:    "42\nlines",
				HasFinalAnswer: true,
			},
		},
		{
			name:  "unclosed final answer",
			input: "<final_answer>partial answer",
			expect: Reply{
				FinalAnswer:    "partial answer",
				HasFinalAnswer: true,
			},
		},
		{
			name:  "first match wins",
			input: "<action>a()</action><action>b()</action>",
			expect: Reply{
				Action:    "a()",
				HasAction: true,
			},
		},
		{
			name:   "nothing",
			input:  "just text",
			expect: Reply{},
		},
		{
			name:  "multiline action",
			input: "<action>\nwrite_to_file(\n\"a\",\n\"b\")\n</action>",
			expect: Reply{
				Action:    "\nwrite_to_file(\n\"a\",\n\"b\")\n",
				HasAction: true,
			},
		},
	} {
		t.Run(c.name, func(t *testing.T) {
			if diff := cmp.Diff(c.expect, Extract(c.input)); diff != "" {
				t.Fatal(diff)
			}
		})
	}
}
