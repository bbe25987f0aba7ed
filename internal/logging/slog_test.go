package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
)

func TestSanitizeToken(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  string
	}{
		{name: "empty", token: "", want: "<empty>"},
		{name: "short", token: "abc", want: "[token:3 chars]"},
		{name: "long", token: "ya29.a0AfH6SMBx7a1b2c3", want: "[token:22 chars]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeToken(tt.token); got != tt.want {
				t.Errorf("SanitizeToken(%q) = %q, want %q", tt.token, got, tt.want)
			}
		})
	}
}

func TestErr(t *testing.T) {
	attr := Err(errors.New("boom"))
	if attr.Key != KeyError {
		t.Errorf("expected key %q, got %q", KeyError, attr.Key)
	}
	if attr.Value.String() != "boom" {
		t.Errorf("expected value 'boom', got %q", attr.Value.String())
	}
}

func TestErr_Nil(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	logger.LogAttrs(context.Background(), slog.LevelInfo, "operation", Err(nil))

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("failed to decode log line: %v", err)
	}
	if _, present := record[KeyError]; present {
		t.Error("expected nil error to produce no error attribute")
	}
}

func TestAttrHelpers(t *testing.T) {
	if attr := Operation("list"); attr.Key != KeyOperation || attr.Value.String() != "list" {
		t.Errorf("unexpected Operation attr: %v", attr)
	}
	if attr := Tool("list_events"); attr.Key != KeyTool || attr.Value.String() != "list_events" {
		t.Errorf("unexpected Tool attr: %v", attr)
	}
	if attr := Status(StatusSuccess); attr.Key != KeyStatus || attr.Value.String() != StatusSuccess {
		t.Errorf("unexpected Status attr: %v", attr)
	}
}

func TestSlogAdapter(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	adapter := NewSlogAdapter(logger)

	adapter.Info("hello", KeyTool, "list_events")

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("failed to decode log line: %v", err)
	}
	if record["msg"] != "hello" {
		t.Errorf("expected msg 'hello', got %v", record["msg"])
	}
	if record[KeyTool] != "list_events" {
		t.Errorf("expected tool attribute, got %v", record[KeyTool])
	}
}

func TestNewSlogAdapter_NilLogger(t *testing.T) {
	adapter := NewSlogAdapter(nil)
	if adapter.Logger() == nil {
		t.Error("expected nil logger to fall back to default")
	}
}
