package generators

import (
	"os"

	"github.com/reusee/taiact/configs"
	"github.com/samber/lo"
)

type (
	OpenAIAPIKey     string
	OpenRouterAPIKey string
	DeepseekAPIKey   string
	ModelScopeAPIKey string
	AliyunAPIKey     string
	ZhipuAPIKey      string
)

func (Module) OpenAIAPIKey(
	loader configs.Loader,
) OpenAIAPIKey {
	return lo.CoalesceOrEmpty(
		configs.First[OpenAIAPIKey](loader, "openai_api_key"),
		OpenAIAPIKey(os.Getenv("OPENAI_API_KEY")),
	)
}

func (Module) OpenRouterAPIKey(
	loader configs.Loader,
) OpenRouterAPIKey {
	return lo.CoalesceOrEmpty(
		configs.First[OpenRouterAPIKey](loader, "openrouter_api_key"),
		configs.First[OpenRouterAPIKey](loader, "open_router_api_key"),
		OpenRouterAPIKey(os.Getenv("OPENROUTER_API_KEY")),
		OpenRouterAPIKey(os.Getenv("OPEN_ROUTER_API_KEY")),
	)
}

func (Module) DeepseekAPIKey(
	loader configs.Loader,
) DeepseekAPIKey {
	return lo.CoalesceOrEmpty(
		configs.First[DeepseekAPIKey](loader, "deepseek_api_key"),
		DeepseekAPIKey(os.Getenv("DEEPSEEK_API_KEY")),
	)
}

func (Module) ModelScopeAPIKey(
	loader configs.Loader,
) ModelScopeAPIKey {
	return lo.CoalesceOrEmpty(
		configs.First[ModelScopeAPIKey](loader, "modelscope_api_key"),
		ModelScopeAPIKey(os.Getenv("MODELSCOPE_API_KEY")),
		ModelScopeAPIKey(os.Getenv("MODELSCOPE_SDK_TOKEN")),
	)
}

func (Module) AliyunAPIKey(
	loader configs.Loader,
) AliyunAPIKey {
	return lo.CoalesceOrEmpty(
		configs.First[AliyunAPIKey](loader, "aliyun_api_key"),
		AliyunAPIKey(os.Getenv("ALIYUN_API_KEY")),
		AliyunAPIKey(os.Getenv("DASHSCOPE_API_KEY")),
	)
}

func (Module) ZhipuAPIKey(
	loader configs.Loader,
) ZhipuAPIKey {
	return lo.CoalesceOrEmpty(
		configs.First[ZhipuAPIKey](loader, "zhipu_api_key"),
		ZhipuAPIKey(os.Getenv("ZHIPU_API_KEY")),
	)
}
