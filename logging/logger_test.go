package logging

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func newBufferLogger(level LogLevel) (*SimLogger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	cfg := DefaultLoggerConfig()
	cfg.Level = level
	cfg.Format = "text"
	cfg.Output = buf
	return NewLogger(cfg), buf
}

func TestSimLoggerKeyValuePairs(t *testing.T) {
	logger, buf := newBufferLogger(LogLevelInfo)

	logger.Info("step completed", "year", 2020, "agent_count", 2)

	out := buf.String()
	if !strings.Contains(out, "year=2020") {
		t.Errorf("expected year attribute in output, got %q", out)
	}
	if !strings.Contains(out, "agent_count=2") {
		t.Errorf("expected agent_count attribute in output, got %q", out)
	}
	if strings.Contains(out, "EXTRA") {
		t.Errorf("key/value args rendered as format arguments: %q", out)
	}
}

func TestSimLoggerDanglingValue(t *testing.T) {
	logger, buf := newBufferLogger(LogLevelInfo)

	logger.Info("odd args", "year", 2020, "dangling")

	out := buf.String()
	if !strings.Contains(out, "year=2020") {
		t.Errorf("expected year attribute in output, got %q", out)
	}
	if !strings.Contains(out, "extra=dangling") {
		t.Errorf("expected dangling value to be kept, got %q", out)
	}
}

func TestSimLoggerLevelFiltering(t *testing.T) {
	logger, buf := newBufferLogger(LogLevelInfo)

	logger.Debug("should be suppressed", "key", "value")
	if buf.Len() != 0 {
		t.Errorf("debug entry emitted at info level: %q", buf.String())
	}

	logger.Warn("should be emitted")
	if buf.Len() == 0 {
		t.Error("warn entry suppressed at info level")
	}
}

func TestSimLoggerContextualAttrs(t *testing.T) {
	logger, buf := newBufferLogger(LogLevelInfo)

	logger.WithComponent("engine").WithRun("run-1").WithStep(3).Info("hello")

	out := buf.String()
	for _, want := range []string{"component=engine", "run_id=run-1", "step=3"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output, got %q", want, out)
		}
	}
}

func TestSimLoggerErrorWithStack(t *testing.T) {
	logger, buf := newBufferLogger(LogLevelError)

	logger.ErrorWithStack(errors.New("boom"), "cycle failed", "agent_id", "Trader.alice")

	out := buf.String()
	if !strings.Contains(out, "error=boom") {
		t.Errorf("expected error attribute in output, got %q", out)
	}
	if !strings.Contains(out, "agent_id=Trader.alice") {
		t.Errorf("expected agent_id attribute in output, got %q", out)
	}
}
