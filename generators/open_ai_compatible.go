package generators

import (
	"github.com/reusee/taiact/configs"
	"github.com/samber/lo"
)

// Presets below set BaseURL and fall back to the provider key when the args carry none.

type NewOpenRouter func(args GeneratorArgs) *OpenAI

func (Module) NewOpenRouter(
	newOpenAI NewOpenAI,
	apiKey OpenRouterAPIKey,
	loader configs.Loader,
) NewOpenRouter {
	return func(args GeneratorArgs) *OpenAI {
		args.BaseURL = lo.CoalesceOrEmpty(
			args.BaseURL,
			configs.First[string](loader, "openrouter_endpoint"),
			"https://openrouter.ai/api/v1",
		)
		args.IsOpenRouter = true
		return newOpenAI(args, lo.CoalesceOrEmpty(args.APIKey, string(apiKey)))
	}
}

type NewDeepseek func(args GeneratorArgs) *OpenAI

func (Module) NewDeepseek(
	newOpenAI NewOpenAI,
	apiKey DeepseekAPIKey,
) NewDeepseek {
	return func(args GeneratorArgs) *OpenAI {
		args.BaseURL = lo.CoalesceOrEmpty(args.BaseURL, "https://api.deepseek.com")
		return newOpenAI(args, lo.CoalesceOrEmpty(args.APIKey, string(apiKey)))
	}
}

type NewModelScope func(args GeneratorArgs) *OpenAI

func (Module) NewModelScope(
	newOpenAI NewOpenAI,
	apiKey ModelScopeAPIKey,
) NewModelScope {
	return func(args GeneratorArgs) *OpenAI {
		args.BaseURL = lo.CoalesceOrEmpty(args.BaseURL, "https://api-inference.modelscope.cn/v1")
		return newOpenAI(args, lo.CoalesceOrEmpty(args.APIKey, string(apiKey)))
	}
}

type NewAliyun func(args GeneratorArgs) *OpenAI

func (Module) NewAliyun(
	newOpenAI NewOpenAI,
	apiKey AliyunAPIKey,
) NewAliyun {
	return func(args GeneratorArgs) *OpenAI {
		args.BaseURL = lo.CoalesceOrEmpty(args.BaseURL, "https://dashscope.aliyuncs.com/compatible-mode/v1")
		return newOpenAI(args, lo.CoalesceOrEmpty(args.APIKey, string(apiKey)))
	}
}

type NewZhipu func(args GeneratorArgs) *OpenAI

func (Module) NewZhipu(
	newOpenAI NewOpenAI,
	apiKey ZhipuAPIKey,
) NewZhipu {
	return func(args GeneratorArgs) *OpenAI {
		args.BaseURL = lo.CoalesceOrEmpty(args.BaseURL, "https://open.bigmodel.cn/api/paas/v4")
		return newOpenAI(args, lo.CoalesceOrEmpty(args.APIKey, string(apiKey)))
	}
}

type NewOllama func(args GeneratorArgs) *OpenAI

func (Module) NewOllama(
	newOpenAI NewOpenAI,
) NewOllama {
	return func(args GeneratorArgs) *OpenAI {
		args.BaseURL = lo.CoalesceOrEmpty(args.BaseURL, "http://127.0.0.1:11434/v1")
		return newOpenAI(args, args.APIKey)
	}
}
