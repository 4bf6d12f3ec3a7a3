package react

import (
	"github.com/reusee/dscope"
	"github.com/reusee/taiact/debugs"
	"github.com/reusee/taiact/generators"
	"github.com/reusee/taiact/logs"
	"github.com/reusee/taiact/prompts"
	"github.com/reusee/taiact/taiconfigs"
	"github.com/reusee/taiact/tools"
)

type Module struct {
	dscope.Module
	Generators generators.Module
	Tools      tools.Module
	Prompts    prompts.Module
	Configs    taiconfigs.Module
	Logs       logs.Module
	Debugs     debugs.Module
}
