package commands

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/docker/go-units"
	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"
	clihelpers "gitlab.com/gitlab-org/golang-cli-helpers"

	"gitlab.com/zzsleep/zz/common"
	"gitlab.com/zzsleep/zz/helpers/await"
	"gitlab.com/zzsleep/zz/helpers/clock"
	"gitlab.com/zzsleep/zz/helpers/timespec"
)

const (
	// exitCodeMalformed covers unparseable arguments and empty input.
	exitCodeMalformed = 2
	// exitCodePast covers absolute timestamps that already passed.
	exitCodePast = 3
)

const waitDescription = `The arguments form one time specification:

   a relative duration   zz 10          ten seconds
                         zz 2h 5m 30s   components add up, in any order
   a clock time          zz 12:30       the next half past twelve, today
                                        or tomorrow
                         zz 12:30:45    seconds are optional
   a timestamp           zz 20260220T123000Z
                         zz 20260220T123000+0900

   Bare integers count seconds. Timestamps must not lie in the past.`

type WaitCommand struct {
	Quiet bool `short:"q" long:"quiet" description:"Do not draw the progress bar while waiting"`

	clock clock.Clock
}

func (c *WaitCommand) Execute(cliCtx *cli.Context) error {
	args := []string(cliCtx.Args())
	if len(args) == 0 {
		return cli.NewExitError("no time specification given, see --help for the accepted forms", exitCodeMalformed)
	}

	spec, err := timespec.Parse(args)
	if err != nil {
		return cli.NewExitError(err.Error(), exitCodeMalformed)
	}

	target, err := timespec.Resolve(spec, c.clock.Now())
	if err != nil {
		code := exitCodeMalformed
		var past *timespec.PastTimestampError
		if errors.As(err, &past) {
			code = exitCodePast
		}
		return cli.NewExitError(err.Error(), code)
	}

	logrus.WithFields(logrus.Fields{
		"spec":   spec.String(),
		"target": target.Instant.Format(time.RFC3339),
		"wait":   units.HumanDuration(target.Wait),
	}).Debugln("Resolved wait target")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(signals)

	interrupted := make(chan os.Signal, 1)
	go func() {
		s := <-signals
		logrus.WithField("signal", s).Debugln("Aborting wait")
		interrupted <- s
		cancel()
	}()

	if err := c.waiter(cliCtx).Wait(ctx, target.Instant); err != nil {
		select {
		case s := <-interrupted:
			return cli.NewExitError("", exitCodeForSignal(s))
		default:
			return cli.NewExitError(err.Error(), 1)
		}
	}

	return nil
}

// waiter picks the progress renderer unless quiet was requested or stderr is
// not a terminal.
func (c *WaitCommand) waiter(cliCtx *cli.Context) await.Waiter {
	quiet := c.Quiet || cliCtx.Bool("quiet") ||
		!(isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd()))
	if quiet {
		return await.Quiet{Clock: c.clock}
	}

	return await.Progress{Clock: c.clock}
}

// exitCodeForSignal follows the shell convention of 128 plus the signal
// number.
func exitCodeForSignal(s os.Signal) int {
	if number, ok := s.(syscall.Signal); ok {
		return 128 + int(number)
	}

	return 1
}

var waitCommand = &WaitCommand{clock: clock.System{}}

// WaitFlags exposes the wait command's flags at the application level, so
// they can be given without naming the command, as in `zz -q 5m`.
func WaitFlags(app *cli.App) {
	app.Flags = append(app.Flags, clihelpers.GetFlagsFromStruct(waitCommand)...)
}

func init() {
	common.RegisterCommand(cli.Command{
		Name:        "wait",
		Usage:       "pause until a duration elapses or a clock time arrives",
		ArgsUsage:   "<duration>... | <clock-time> | <timestamp>",
		Description: waitDescription,
		Action:      waitCommand.Execute,
		Flags:       clihelpers.GetFlagsFromStruct(waitCommand),
	})
}
