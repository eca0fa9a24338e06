package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func TestNewWithWriter_Level(t *testing.T) {
	var buf bytes.Buffer
	l := newWithWriter(&buf, "warn")
	l.Info().Msg("dropped")
	if buf.Len() != 0 {
		t.Fatalf("info should be filtered at warn level, got %s", buf.String())
	}
	l.Warn().Str("result_id", "res-1").Msg("kept")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected json line, got %q: %v", buf.String(), err)
	}
	if entry["result_id"] != "res-1" || entry["message"] != "kept" {
		t.Fatalf("unexpected entry: %v", entry)
	}
}

func TestNewWithWriter_BadLevelDefaultsToInfo(t *testing.T) {
	l := newWithWriter(&bytes.Buffer{}, "loud")
	if l.GetLevel() != zerolog.InfoLevel {
		t.Fatalf("expected info level, got %s", l.GetLevel())
	}
}

func TestComponent(t *testing.T) {
	prev := log.Logger
	defer func() { log.Logger = prev }()

	var buf bytes.Buffer
	Init(newWithWriter(&buf, "debug"))
	c := Component("result.usecase")
	c.Info().Msg("hello")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected json line: %v", err)
	}
	if entry["component"] != "result.usecase" {
		t.Fatalf("missing component field: %v", entry)
	}
}
