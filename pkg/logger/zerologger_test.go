package logger

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestZeroLogger_Info(t *testing.T) {
	buf := &bytes.Buffer{}
	log := NewWithWriter("development", buf)

	log.Info("listing_fetched", Field{Key: "context", Value: "packages"})

	output := buf.String()

	if !strings.Contains(output, "listing_fetched") {
		t.Errorf("expected 'listing_fetched' in log, got: %s", output)
	}
	if !strings.Contains(output, `"context":"packages"`) {
		t.Errorf("expected field context=packages, got: %s", output)
	}
	if !strings.Contains(output, `"level":"info"`) {
		t.Errorf("expected level=info, got: %s", output)
	}
}

func TestZeroLogger_DebugShownInDev(t *testing.T) {
	buf := &bytes.Buffer{}
	log := NewWithWriter("development", buf)

	log.Debug("debug-test")

	if !strings.Contains(buf.String(), "debug-test") {
		t.Errorf("expected debug log in development, got: %s", buf.String())
	}
}

func TestZeroLogger_DebugHiddenInProduction(t *testing.T) {
	buf := &bytes.Buffer{}
	log := NewWithWriter("production", buf)

	log.Debug("debug-hidden")

	if buf.String() != "" {
		t.Errorf("expected NO debug log output in production, got: %s", buf.String())
	}
}

func TestZeroLogger_Warn(t *testing.T) {
	buf := &bytes.Buffer{}
	log := NewWithWriter("development", buf)

	log.Warn("invalid_sort_key", Field{Key: "sort", Value: "cheapest"})

	output := buf.String()
	if !strings.Contains(output, `"level":"warn"`) {
		t.Errorf("expected warn level, got: %s", output)
	}
	if !strings.Contains(output, `"sort":"cheapest"`) {
		t.Errorf("expected field sort=cheapest, got: %s", output)
	}
}

func TestZeroLogger_TypedFields(t *testing.T) {
	buf := &bytes.Buffer{}
	log := NewWithWriter("development", buf)

	log.Error("source_failed",
		Field{Key: "err", Value: errors.New("boom")},
		Field{Key: "elapsed", Value: 250 * time.Millisecond},
		Field{Key: "failed", Value: true},
	)

	output := buf.String()
	if !strings.Contains(output, `"level":"error"`) {
		t.Errorf("expected error level, got: %s", output)
	}
	if !strings.Contains(output, `"err":"boom"`) {
		t.Errorf("expected err field, got: %s", output)
	}
	if !strings.Contains(output, `"failed":true`) {
		t.Errorf("expected bool field, got: %s", output)
	}
}

func TestZeroLogger_With(t *testing.T) {
	buf := &bytes.Buffer{}
	log := NewWithWriter("development", buf).With(Field{Key: "request_id", Value: "abc"})

	log.Info("request completed")

	if !strings.Contains(buf.String(), `"request_id":"abc"`) {
		t.Errorf("expected inherited request_id, got: %s", buf.String())
	}
}
