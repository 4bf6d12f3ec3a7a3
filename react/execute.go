package react

import (
	"context"
	"errors"
	"fmt"

	"github.com/reusee/taiact/actions"
	"github.com/reusee/taiact/cmds"
	"github.com/reusee/taiact/debugs"
	"github.com/reusee/taiact/generators"
	"github.com/reusee/taiact/logs"
	"github.com/reusee/taiact/prompts"
	"github.com/reusee/taiact/taiconfigs"
	"github.com/reusee/taiact/tools"
	"github.com/samber/lo"
)

var (
	tapFlag    = cmds.Switch("-tap")
	streamFlag = cmds.Switch("-stream")
)

// Execute runs the loop until a final answer, a declined confirmation or an error.
type Execute func(ctx context.Context, generator generators.Generator, goal string) (*Result, error)

func (Module) Execute(
	registry *tools.Registry,
	systemPrompt prompts.SystemPrompt,
	sandbox tools.Sandbox,
	confirm Confirm,
	output *Output,
	maxSteps MaxSteps,
	maxTokens taiconfigs.MaxTokens,
	newSpan logs.NewSpan,
	tap debugs.Tap,
	logger logs.Logger,
) Execute {
	return func(ctx context.Context, generator generators.Generator, goal string) (_ *Result, err error) {
		ctx, _ = newSpan(ctx, "")
		defer func() {
			err = logs.WrapSpan(ctx, err)
		}()

		if err := sandbox(); err != nil {
			return nil, err
		}

		system, err := systemPrompt()
		if err != nil {
			return nil, fmt.Errorf("render system prompt: %w", err)
		}
		messages := []generators.Message{
			{
				Role:    generators.RoleSystem,
				Content: system,
			},
			{
				Role:    generators.RoleUser,
				Content: "<question>" + goal + "</question>",
			},
		}
		logger.InfoContext(ctx, "start",
			"goal", goal,
			"model", generator.Args().Model,
			"tools", lo.Map(registry.Tools(), func(tool *tools.Tool, _ int) string {
				return tool.Name
			}),
		)

		if *streamFlag {
			ctx = generators.WithOnDelta(ctx, output.Delta)
		}

		state := StateAwaitingModel
		transit := func(next State) {
			logger.DebugContext(ctx, "transition",
				"from", state,
				"to", next,
			)
			state = next
			if state.Terminal() {
				logger.InfoContext(ctx, "finished",
					"state", state,
				)
			}
		}

		for step := 1; ; step++ {
			if maxSteps > 0 && step > int(maxSteps) {
				return nil, fmt.Errorf("%w: limit %d", ErrTooManySteps, maxSteps)
			}

			if n, err := generator.CountTokens(generators.JoinContents(messages)); err != nil {
				logger.WarnContext(ctx, "count tokens", "error", err)
			} else {
				logger.InfoContext(ctx, "conversation",
					"step", step,
					"tokens", n,
				)
				if n > int(maxTokens) {
					logger.WarnContext(ctx, "conversation exceeds max tokens",
						"tokens", n,
						"max", maxTokens,
					)
				}
			}

			output.Waiting()
			reply, err := generator.Generate(ctx, messages)
			if err != nil {
				return nil, fmt.Errorf("generate at step %d: %w", step, err)
			}
			messages = append(messages, generators.Message{
				Role:    generators.RoleAssistant,
				Content: reply.Content,
			})
			if *tapFlag {
				tap(ctx, "model reply", map[string]any{
					"step":     step,
					"reply":    reply.Content,
					"messages": messages,
				})
			}

			transit(StateParsingResponse)
			parsed := actions.Extract(reply.Content)
			if parsed.HasThought {
				output.Thought(parsed.Thought)
			}

			if parsed.HasFinalAnswer {
				transit(StateTerminalAnswer)
				output.FinalAnswer(parsed.FinalAnswer)
				return &Result{
					Status:   StatusAnswered,
					Answer:   parsed.FinalAnswer,
					Steps:    step,
					Messages: messages,
				}, nil
			}

			if !parsed.HasAction {
				return nil, fmt.Errorf("step %d: %w", step, actions.ErrMissingAction)
			}

			var observation string
			action, err := actions.Parse(parsed.Action)
			switch {

			case errors.Is(err, actions.ErrMalformedAction):
				return nil, fmt.Errorf("step %d: %w", step, err)

			case err != nil:
				// the model can fix its own quoting
				observation = "action parse error: " + err.Error()

			default:
				output.Action(action)
				if tool, ok := registry.Get(action.Name); ok && tool.RequiresConfirmation {
					transit(StateAwaitingConfirmation)
					approved, err := confirm(ctx, action)
					if err != nil {
						return nil, fmt.Errorf("confirm at step %d: %w", step, err)
					}
					if !approved {
						transit(StateUserCancelled)
						output.Cancelled()
						return &Result{
							Status:   StatusCancelled,
							Steps:    step,
							Messages: messages,
						}, nil
					}
				}

				transit(StateDispatching)
				ret, err := registry.Invoke(ctx, action.Name, action.Args)
				if err != nil {
					if ctx.Err() != nil {
						return nil, err
					}
					logger.InfoContext(ctx, "tool error",
						"tool", action.Name,
						"error", err,
					)
					observation = "tool execution error: " + err.Error()
				} else {
					observation = ret
				}
			}

			output.Observation(observation)
			messages = append(messages, generators.Message{
				Role:    generators.RoleUser,
				Content: "<observation>" + observation + "</observation>",
			})
			transit(StateAwaitingModel)
		}
	}
}
