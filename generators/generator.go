package generators

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Generator produces the next assistant message for a conversation.
type Generator interface {
	Args() GeneratorArgs
	CountTokens(string) (int, error)
	Generate(ctx context.Context, messages []Message) (Message, error)
}

var ErrRetryable = errors.New("retryable")

type GetGenerator func(name string) (Generator, error)

// GetGenerator resolves user-defined specs first, then `provider:model` presets.
func (Module) GetGenerator(
	getSpecs GetGeneratorSpecs,
	newOpenAI NewOpenAI,
	newOpenRouter NewOpenRouter,
	newDeepseek NewDeepseek,
	newModelScope NewModelScope,
	newAliyun NewAliyun,
	newZhipu NewZhipu,
	newOllama NewOllama,
	openAIKey OpenAIAPIKey,
) GetGenerator {

	byType := func(typ string, args GeneratorArgs) (Generator, error) {
		switch strings.ToLower(typ) {
		case "openai", "open-ai", "open_ai":
			if args.APIKey == "" {
				args.APIKey = string(openAIKey)
			}
			if args.BaseURL == "" {
				args.BaseURL = "https://api.openai.com/v1"
			}
			return newOpenAI(args, args.APIKey), nil
		case "openrouter", "open-router", "open_router":
			return newOpenRouter(args), nil
		case "deepseek":
			return newDeepseek(args), nil
		case "modelscope":
			return newModelScope(args), nil
		case "aliyun", "dashscope":
			return newAliyun(args), nil
		case "zhipu":
			return newZhipu(args), nil
		case "ollama":
			return newOllama(args), nil
		}
		return nil, fmt.Errorf("unknown generator type: %q", typ)
	}

	return func(name string) (Generator, error) {
		specs, err := getSpecs()
		if err != nil {
			return nil, err
		}
		for _, spec := range specs {
			if spec.Name != name {
				continue
			}
			return byType(spec.Type, spec.GeneratorArgs)
		}

		provider, model, ok := strings.Cut(name, ":")
		if !ok || model == "" {
			return nil, fmt.Errorf("invalid model: %s", name)
		}
		return byType(provider, GeneratorArgs{
			Model: model,
		})
	}
}
