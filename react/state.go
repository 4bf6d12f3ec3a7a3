package react

type State string

const (
	StateAwaitingModel        State = "AWAITING_MODEL"
	StateParsingResponse      State = "PARSING_RESPONSE"
	StateAwaitingConfirmation State = "AWAITING_CONFIRMATION"
	StateDispatching          State = "DISPATCHING"
	StateTerminalAnswer       State = "TERMINAL_ANSWER"
	StateUserCancelled        State = "USER_CANCELLED"
)

func (s State) Terminal() bool {
	return s == StateTerminalAnswer || s == StateUserCancelled
}
