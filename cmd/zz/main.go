package main

import (
	"gitlab.com/zzsleep/zz/app"
	"gitlab.com/zzsleep/zz/commands"
)

func main() {
	defer app.Recover()

	a := app.New("sleep until a duration elapses or a clock time arrives")
	a.AppendBeforeFunc(app.LogRuntimePlatform)
	a.Extend(commands.WaitFlags)
	a.Extend(app.CPUProfileFlags)
	a.AppendBeforeFunc(app.CPUProfileSetup)
	a.AppendAfterFunc(app.CPUProfileTeardown)

	a.Run()
}
