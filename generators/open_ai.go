package generators

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"maps"
	"net/http"
	"strings"

	"github.com/reusee/dscope"
	"github.com/reusee/taiact/cmds"
	"github.com/reusee/taiact/debugs"
	"github.com/reusee/taiact/logs"
	"github.com/reusee/taiact/nets"
	"github.com/samber/lo"
)

var (
	temperatureFlag = cmds.Var[float32]("-temperature")
	debugOpenAI     = cmds.Switch("-debug-openai")
	tapOpenAI       = cmds.Switch("-tap-openai")
)

type OpenAI struct {
	args   GeneratorArgs
	apiKey string
	client nets.HTTPClient

	Count  dscope.Inject[BPETokenCounter]
	Logger dscope.Inject[logs.Logger]
	Tap    dscope.Inject[debugs.Tap]
}

var _ Generator = new(OpenAI)

type NewOpenAI func(args GeneratorArgs, apiKey string) *OpenAI

func (Module) NewOpenAI(
	inject dscope.InjectStruct,
	client nets.HTTPClient,
) NewOpenAI {
	return func(args GeneratorArgs, apiKey string) *OpenAI {
		args.BaseURL = strings.TrimRight(args.BaseURL, "/")
		ret := &OpenAI{
			args:   args,
			apiKey: apiKey,
			client: client,
		}
		inject(&ret)
		return ret
	}
}

func (o *OpenAI) Args() GeneratorArgs {
	return o.args
}

func (o *OpenAI) CountTokens(text string) (int, error) {
	return o.Count()(text)
}

func (o *OpenAI) request(messages []Message) ChatCompletionRequest {
	req := ChatCompletionRequest{
		Model:               o.args.Model,
		Stream:              true,
		MaxCompletionTokens: lo.FromPtr(o.args.MaxGenerateTokens),
		Temperature:         lo.FromPtr(o.args.Temperature),
	}
	if *temperatureFlag != 0 {
		req.Temperature = *temperatureFlag
	}
	for _, msg := range messages {
		req.Messages = append(req.Messages, ChatCompletionMessage{
			Role:    string(msg.Role),
			Content: msg.Content,
		})
	}
	return req
}

func (o *OpenAI) Generate(ctx context.Context, messages []Message) (ret Message, err error) {
	ret.Role = RoleAssistant
	req := o.request(messages)
	logger := o.Logger()

	body, err := req.marshal(o.args.ExtraArguments)
	if err != nil {
		return ret, err
	}

	if *debugOpenAI {
		logger.InfoContext(ctx, "open ai request",
			"body", body,
		)
	}
	if *tapOpenAI {
		o.Tap()(ctx, "before chat completion", map[string]any{
			"request": req,
			"args":    o.args,
		})
	}

	logger.InfoContext(ctx, "generating",
		"model", o.args.Model,
		"messages", len(messages),
	)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, o.args.BaseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return ret, wrap(err)
	}
	if o.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+o.apiKey)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "text/event-stream")
	if o.args.IsOpenRouter {
		httpReq.Header.Set("HTTP-Referer", "https://github.com/reusee/taiact")
		httpReq.Header.Set("X-Title", "taiact")
	}

	resp, err := o.client.Do(httpReq)
	if err != nil {
		return ret, OpenAIError{
			Err:     wrap(err),
			Request: req,
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return ret, o.statusError(resp, req)
	}

	var content, reasoning strings.Builder
	onDelta := onDeltaFrom(ctx)

	scanner := bufio.NewScanner(resp.Body)
	scanner.Buffer(make([]byte, 0, 64*K), 16*K*K)
	for scanner.Scan() {
		line := scanner.Text()
		data, ok := strings.CutPrefix(line, "data:")
		if !ok {
			// blank separators, comments and event names
			continue
		}
		data = strings.TrimSpace(data)
		if data == "[DONE]" {
			break
		}

		var streamResp ChatCompletionStreamResponse
		if err := json.Unmarshal([]byte(data), &streamResp); err != nil {
			return ret, wrap(fmt.Errorf("unmarshal stream response: %w", err))
		}
		if *debugOpenAI {
			logger.InfoContext(ctx, "open ai response",
				"details", streamResp,
			)
		}

		if streamResp.Error != nil {
			return ret, OpenAIError{
				Err:     errors.Join(streamResp.Error, ErrRetryable),
				Request: req,
			}
		}
		if streamResp.Usage != nil {
			logger.InfoContext(ctx, "usage",
				"prompt_tokens", streamResp.Usage.PromptTokens,
				"completion_tokens", streamResp.Usage.CompletionTokens,
			)
		}
		if len(streamResp.Choices) == 0 {
			continue
		}

		choice := streamResp.Choices[0]
		if choice.Delta.ReasoningContent == "" {
			choice.Delta.ReasoningContent = choice.Delta.Reasoning
		}
		if choice.Delta.Content != "" || choice.Delta.ReasoningContent != "" {
			content.WriteString(choice.Delta.Content)
			reasoning.WriteString(choice.Delta.ReasoningContent)
			onDelta(Delta{
				Content:   choice.Delta.Content,
				Reasoning: choice.Delta.ReasoningContent,
			})
		}

		if reason := choice.FinishReason; reason != "" {
			logger.DebugContext(ctx, "finish",
				"reason", reason,
			)
			if reason == "error" {
				return ret, OpenAIError{
					Err:     errors.Join(errors.New("stream finished with error"), ErrRetryable),
					Request: req,
				}
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return ret, OpenAIError{
			Err:     wrap(fmt.Errorf("read stream: %w", err)),
			Request: req,
		}
	}

	ret.Content = content.String()
	if strings.TrimSpace(ret.Content) == "" {
		// some reasoning models put everything in reasoning_content
		ret.Content = reasoning.String()
	}
	return ret, nil
}

func (o *OpenAI) statusError(resp *http.Response, req ChatCompletionRequest) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 64*K))
	var errResp ErrorResponse
	apiErr := &APIError{
		Message: strings.TrimSpace(string(body)),
	}
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != nil {
		apiErr = errResp.Error
	}
	apiErr.HTTPStatusCode = resp.StatusCode
	var err error = apiErr
	if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
		err = errors.Join(apiErr, ErrRetryable)
	}
	return OpenAIError{
		Err:     err,
		Request: req,
	}
}

type ChatCompletionRequest struct {
	Model               string                  `json:"model"`
	Messages            []ChatCompletionMessage `json:"messages"`
	Stream              bool                    `json:"stream"`
	MaxCompletionTokens int                     `json:"max_completion_tokens,omitempty"`
	Temperature         float32                 `json:"temperature,omitempty"`
}

// marshal merges extra arguments into the top-level object, request fields win.
func (c ChatCompletionRequest) marshal(extra map[string]any) ([]byte, error) {
	body, err := json.Marshal(c)
	if err != nil {
		return nil, err
	}
	if len(extra) == 0 {
		return body, nil
	}
	var fields map[string]any
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, err
	}
	merged := maps.Clone(extra)
	maps.Copy(merged, fields)
	return json.Marshal(merged)
}

type ChatCompletionMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatCompletionStreamResponse struct {
	Choices []ChatCompletionStreamChoice `json:"choices"`
	Usage   *Usage                       `json:"usage,omitempty"`
	Error   *APIError                    `json:"error,omitempty"`
}

type ChatCompletionStreamChoice struct {
	Delta        ChatCompletionStreamChoiceDelta `json:"delta"`
	FinishReason string                          `json:"finish_reason"`
}

type ChatCompletionStreamChoiceDelta struct {
	Content          string `json:"content,omitempty"`
	Role             string `json:"role,omitempty"`
	ReasoningContent string `json:"reasoning_content,omitempty"`
	Reasoning        string `json:"reasoning,omitempty"` // openrouter
}

type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}
