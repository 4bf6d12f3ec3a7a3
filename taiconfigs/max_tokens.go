package taiconfigs

import (
	"math"

	"github.com/reusee/taiact/cmds"
	"github.com/reusee/taiact/configs"
	"github.com/samber/lo"
)

// MaxTokens bounds the conversation size; exceeding it is reported, not enforced.
type MaxTokens int

var maxTokensFlag = cmds.Var[int]("-max-tokens")

func (Module) MaxTokens(
	loader configs.Loader,
) MaxTokens {
	maxTokens := math.MaxInt

	if *maxTokensFlag > 0 {
		maxTokens = min(maxTokens, *maxTokensFlag)
	}

	if n := lo.CoalesceOrEmpty(
		configs.First[int](loader, "max_context_tokens"),
		configs.First[int](loader, "max_tokens"),
	); n > 0 {
		maxTokens = min(maxTokens, n)
	}

	return MaxTokens(maxTokens)
}
