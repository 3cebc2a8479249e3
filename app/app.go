package app

import (
	"os"
	"path"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"

	"gitlab.com/zzsleep/zz/common"
	"gitlab.com/zzsleep/zz/log"
)

// defaultCommand handles argument vectors that do not start with a known
// command name, so `zz 5m` behaves as `zz wait 5m`.
const defaultCommand = "wait"

var authors = []cli.Author{
	{
		Name: "The zz Authors",
	},
}

type Handler func(cliCtx *cli.Context) error
type Handlers []Handler

func (a *Handlers) Handle(cliCtx *cli.Context) error {
	for _, f := range *a {
		err := f(cliCtx)
		if err != nil {
			return err
		}
	}

	return nil
}

type App struct {
	app *cli.App

	beforeFunctions Handlers
	afterFunctions  Handlers
}

func (a *App) init(usage string) {
	app := cli.NewApp()
	a.app = app

	app.Name = path.Base(os.Args[0])
	app.Usage = usage
	app.ArgsUsage = "<duration>... | <clock-time> | <timestamp>"
	app.Authors = authors
	app.Version = common.AppVersion.ShortLine()
	cli.VersionPrinter = common.AppVersion.Printer

	app.Commands = common.GetCommands()
	app.Action = runDefaultCommand

	a.beforeFunctions = make(Handlers, 0)
	app.Before = a.beforeFunctions.Handle

	a.afterFunctions = make(Handlers, 0)
	app.After = a.afterFunctions.Handle
}

func runDefaultCommand(cliCtx *cli.Context) error {
	command, ok := common.GetCommand(defaultCommand)
	if !ok {
		return cli.ShowAppHelp(cliCtx)
	}

	return cli.HandleAction(command.Action, cliCtx)
}

func (a *App) Run() {
	if err := a.app.Run(os.Args); err != nil {
		logrus.WithError(err).Fatal("Application execution failed")
	}
}

func (a *App) Extend(extension func(*cli.App)) {
	extension(a.app)
}

func (a *App) AppendBeforeFunc(f Handler) {
	a.beforeFunctions = append(a.beforeFunctions, f)
}

func (a *App) AppendAfterFunc(f Handler) {
	a.afterFunctions = append(a.afterFunctions, f)
}

func New(usage string) *App {
	app := new(App)
	app.init(usage)
	app.Extend(log.AddFlags)
	app.AppendBeforeFunc(log.ConfigureLogging)

	return app
}

func Recover() {
	r := recover()
	if r != nil {
		// log panics forces exit
		if _, ok := r.(*logrus.Entry); ok {
			os.Exit(1)
		}
		panic(r)
	}
}
