package cmds

// GlobalExecutor collects the flags that packages declare at init time.
var GlobalExecutor = NewExecutor()

func Define(name string, command *Command) {
	GlobalExecutor.Define(name, command)
}

func Execute(args []string) error {
	return GlobalExecutor.Execute(args)
}

func Positional(fn func(arg string) error) {
	GlobalExecutor.Positional(fn)
}
