package app

import (
	"os"
	"runtime"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"

	"gitlab.com/zzsleep/zz/common"
)

func LogRuntimePlatform(cliCtx *cli.Context) error {
	fields := logrus.Fields{
		"os":       runtime.GOOS,
		"arch":     runtime.GOARCH,
		"version":  common.AppVersion.Version,
		"revision": common.AppVersion.Revision,
		"pid":      os.Getpid(),
	}

	logrus.WithFields(fields).Debugln("Runtime platform")

	return nil
}
