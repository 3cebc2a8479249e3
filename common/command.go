package common

import (
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"
	clihelpers "gitlab.com/gitlab-org/golang-cli-helpers"
)

// Commander is the execution half of a command whose flags come from struct
// tags. Returning an error lets a command carry its exit code instead of
// exiting inline.
type Commander interface {
	Execute(cliCtx *cli.Context) error
}

var commands []cli.Command

// RegisterCommand adds a command to the application command list. Commands
// register themselves from init so importing their package is enough.
func RegisterCommand(command cli.Command) {
	logrus.Debugln("Registering", command.Name, "command...")
	commands = append(commands, command)
}

// RegisterCommand2 registers a Commander, reading its flags from data's
// struct tags.
func RegisterCommand2(name, usage string, data Commander, flags ...cli.Flag) {
	RegisterCommand(cli.Command{
		Name:   name,
		Usage:  usage,
		Action: data.Execute,
		Flags:  append(clihelpers.GetFlagsFromStruct(data), flags...),
	})
}

func GetCommands() []cli.Command {
	return commands
}

// GetCommand returns the registered command with the given name.
func GetCommand(name string) (cli.Command, bool) {
	for _, command := range commands {
		if command.HasName(name) {
			return command, true
		}
	}

	return cli.Command{}, false
}
