package configs

import "github.com/reusee/dscope"

// Module is embedded by packages that read configuration.
// The Loader itself is provided by taiconfigs, or by tests.
type Module struct {
	dscope.Module
}
