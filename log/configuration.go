package log

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

const (
	FormatText = "text"
	FormatJSON = "json"
)

var logFlags = []cli.Flag{
	cli.BoolFlag{
		Name:   "debug",
		Usage:  "debug mode",
		EnvVar: "ZZ_DEBUG",
	},
	cli.StringFlag{
		Name:   "log-format",
		Usage:  fmt.Sprintf("Choose log format (options: %s, %s)", FormatText, FormatJSON),
		EnvVar: "ZZ_LOG_FORMAT",
	},
	cli.StringFlag{
		Name:   "log-level, l",
		Usage:  "Log level (options: debug, info, warn, error, fatal, panic)",
		EnvVar: "ZZ_LOG_LEVEL",
	},
}

// AddFlags adds the logging flags to the application.
func AddFlags(app *cli.App) {
	app.Flags = append(app.Flags, logFlags...)
}

// ConfigureLogging applies the logging flags to the standard logger. It runs
// as a Before handler so every command sees the configured logger.
func ConfigureLogging(cliCtx *cli.Context) error {
	logger := logrus.StandardLogger()
	logger.SetOutput(os.Stderr)

	level := logrus.InfoLevel
	if raw := cliCtx.String("log-level"); raw != "" {
		parsed, err := logrus.ParseLevel(raw)
		if err != nil {
			return fmt.Errorf("parsing log level: %w", err)
		}
		level = parsed
	}
	if cliCtx.Bool("debug") {
		level = logrus.DebugLevel
	}
	logger.SetLevel(level)

	switch format := cliCtx.String("log-format"); format {
	case FormatJSON:
		logger.SetFormatter(new(logrus.JSONFormatter))
	case FormatText, "":
		logger.SetFormatter(new(logrus.TextFormatter))
	default:
		return fmt.Errorf("unknown log format %q", format)
	}

	return nil
}
