package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func captureOutput(t *testing.T) (info, errs *bytes.Buffer) {
	t.Helper()
	info, errs = &bytes.Buffer{}, &bytes.Buffer{}
	prevInfo, prevErr := Info.Writer(), Error.Writer()
	Info.SetOutput(info)
	Error.SetOutput(errs)
	t.Cleanup(func() {
		Info.SetOutput(prevInfo)
		Error.SetOutput(prevErr)
	})
	return info, errs
}

func TestInfoHelpersWriteToInfo(t *testing.T) {
	info, errs := captureOutput(t)

	Println("AutoMigrate successful")
	Printf("Starting server on port %s", "8088")

	assert.Contains(t, info.String(), "AutoMigrate successful\n")
	assert.Contains(t, info.String(), "Starting server on port 8088")
	assert.Empty(t, errs.String())
}

func TestErrorHelpersWriteToError(t *testing.T) {
	info, errs := captureOutput(t)

	Errorln("WARNING:", "default password")
	Errorf("Error fetching %d-man lineups: %v", 3, "timeout")

	assert.Contains(t, errs.String(), "WARNING: default password\n")
	assert.Contains(t, errs.String(), "Error fetching 3-man lineups: timeout")
	assert.Empty(t, info.String())
}
