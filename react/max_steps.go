package react

import (
	"github.com/reusee/taiact/cmds"
	"github.com/reusee/taiact/configs"
	"github.com/samber/lo"
)

var maxStepsFlag = cmds.Var[int]("-max-steps")

// MaxSteps limits model calls per run, zero means unlimited.
type MaxSteps int

func (Module) MaxSteps(
	loader configs.Loader,
) MaxSteps {
	return MaxSteps(max(0, lo.CoalesceOrEmpty(
		*maxStepsFlag,
		configs.First[int](loader, "max_steps"),
	)))
}
