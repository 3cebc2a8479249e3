package logrus

import (
	"bytes"

	"github.com/sirupsen/logrus"
)

// RunOnHijackedLevel runs handler with the standard logger forced to level,
// restoring the previous level afterwards.
func RunOnHijackedLevel(level logrus.Level, handler func()) {
	oldLevel := logrus.GetLevel()
	defer func() {
		logrus.SetLevel(oldLevel)
	}()

	logrus.SetLevel(level)

	handler()
}

// RunOnHijackedOutput runs handler with the standard logger writing into a
// buffer instead of stderr.
func RunOnHijackedOutput(handler func(output *bytes.Buffer)) {
	logger := logrus.StandardLogger()

	oldOutput := logger.Out
	defer func() {
		logger.SetOutput(oldOutput)
	}()

	buf := new(bytes.Buffer)
	logger.SetOutput(buf)

	handler(buf)
}
