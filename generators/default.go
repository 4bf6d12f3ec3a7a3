package generators

import (
	"github.com/reusee/taiact/cmds"
	"github.com/reusee/taiact/configs"
	"github.com/reusee/taiact/logs"
	"github.com/samber/lo"
)

var defaultModelName = cmds.Var[string]("-model")

type DefaultModelName string

func (Module) DefaultModelName(
	loader configs.Loader,
	fallback FallbackModelName,
	logger logs.Logger,
) (ret DefaultModelName) {
	defer func() {
		logger.Info("default model", "name", ret)
	}()
	return lo.CoalesceOrEmpty(
		DefaultModelName(*defaultModelName),
		configs.First[DefaultModelName](loader, "model"),
		configs.First[DefaultModelName](loader, "model_name"),
		DefaultModelName(fallback),
	)
}

type FallbackModelName string

func (Module) FallbackModelName() FallbackModelName {
	return "modelscope:Qwen/Qwen3-Coder-480B-A35B-Instruct"
}

type GetDefaultGenerator func() (Generator, error)

func (Module) GetDefaultGenerator(
	name DefaultModelName,
	get GetGenerator,
) GetDefaultGenerator {
	return func() (Generator, error) {
		return get(string(name))
	}
}
