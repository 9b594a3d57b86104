package logger

import (
	"testing"

	"github.com/ethereum/go-ethereum/log"
)

// SetTestMode redirects the root logger into the test log.
func SetTestMode(t testing.TB) {
	log.SetDefault(log.NewLogger(log.NewTerminalHandlerWithLevel(testWriter{t}, log.LevelDebug, false)))
}

type testWriter struct {
	t testing.TB
}

func (w testWriter) Write(p []byte) (int, error) {
	w.t.Log(string(p))
	return len(p), nil
}
