package actions

import (
	"regexp"
	"strings"
)

var (
	thoughtPattern     = regexp.MustCompile(`(?s)<thought>(.*?)</thought>`)
	actionPattern      = regexp.MustCompile(`(?s)<action>(.*?)</action>`)
	finalAnswerPattern = regexp.MustCompile(`(?s)<final_answer>(.*?)</final_answer>`)
)

const finalAnswerOpen = "<final_answer>"

// Reply holds the tagged sections of one model reply.
type Reply struct {
	Thought        string
	HasThought     bool
	Action         string
	HasAction      bool
	FinalAnswer    string
	HasFinalAnswer bool
}

func Extract(reply string) (ret Reply) {
	if m := thoughtPattern.FindStringSubmatch(reply); m != nil {
		ret.Thought = m[1]
		ret.HasThought = true
	}
	if m := actionPattern.FindStringSubmatch(reply); m != nil {
		ret.Action = m[1]
		ret.HasAction = true
	}
	if idx := strings.Index(reply, finalAnswerOpen); idx >= 0 {
		ret.HasFinalAnswer = true
		if m := finalAnswerPattern.FindStringSubmatch(reply); m != nil {
			ret.FinalAnswer = m[1]
		} else {
			// unclosed
			ret.FinalAnswer = reply[idx+len(finalAnswerOpen):]
		}
	}
	return
}
