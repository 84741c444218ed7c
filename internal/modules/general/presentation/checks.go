package presentation

import "github.com/sglre6355/dispatchbot/internal/framework"

// HasArguments fails with a usage hint when the command got no arguments.
var HasArguments = framework.Check{
	Name: "has_arguments",
	Func: func(c *framework.DispatchContext) framework.CheckResult {
		if c.Args == nil || c.Args.Len() == 0 {
			return framework.FailWithMessage("I need something to say.")
		}
		return framework.Pass()
	},
}
