package logging

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

// TestFieldHelpers tests the Field constructor functions.
func TestFieldHelpers(t *testing.T) {
	t.Run("String", func(t *testing.T) {
		f := String("branch", "right")
		if f.Key != "branch" || f.Value != "right" {
			t.Errorf("String() = %+v, want {branch right}", f)
		}
	})

	t.Run("Int", func(t *testing.T) {
		f := Int("lo", 4)
		if f.Key != "lo" || f.Value != 4 {
			t.Errorf("Int() = %+v, want {lo 4}", f)
		}
	})

	t.Run("Uint64", func(t *testing.T) {
		f := Uint64("spawns", 7)
		if f.Key != "spawns" || f.Value != uint64(7) {
			t.Errorf("Uint64() = %+v, want {spawns 7}", f)
		}
	})

	t.Run("Float64", func(t *testing.T) {
		f := Float64("seconds", 0.25)
		if f.Key != "seconds" || f.Value != 0.25 {
			t.Errorf("Float64() = %+v, want {seconds 0.25}", f)
		}
	})

	t.Run("Err", func(t *testing.T) {
		cause := errors.New("fork failed")
		f := Err(cause)
		if f.Key != "error" || f.Value != cause {
			t.Errorf("Err() = %+v, want {error fork failed}", f)
		}
	})

	t.Run("Err with nil", func(t *testing.T) {
		f := Err(nil)
		if f.Key != "error" || f.Value != nil {
			t.Errorf("Err(nil) = %+v, want {error <nil>}", f)
		}
	})
}

// TestNewLogger verifies component tagging and message output.
func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "forktree")

	logger.Info("spawned branch", Int("lo", 2), Int("hi", 5))

	output := buf.String()
	for _, want := range []string{"forktree", "spawned branch", `"lo":2`, `"hi":5`, "pid"} {
		if !strings.Contains(output, want) {
			t.Errorf("output should contain %q, got: %s", want, output)
		}
	}
}

// TestZerologAdapter_Error verifies the error path includes the cause.
func TestZerologAdapter_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		fields   []Field
		contains []string
	}{
		{
			name:     "with cause",
			err:      errors.New("resource exhausted"),
			contains: []string{"spawn failed", "resource exhausted", "error"},
		},
		{
			name:     "with nil cause",
			err:      nil,
			contains: []string{"spawn failed", "error"},
		},
		{
			name:     "with fields",
			err:      errors.New("resource exhausted"),
			fields:   []Field{Int("lo", 1), Int("hi", 3)},
			contains: []string{"resource exhausted", `"lo":1`, `"hi":3`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := NewLogger(&buf, "forktree")
			logger.Error("spawn failed", tt.err, tt.fields...)

			output := buf.String()
			for _, want := range tt.contains {
				if !strings.Contains(output, want) {
					t.Errorf("output should contain %q, got: %s", want, output)
				}
			}
		})
	}
}

// TestZerologAdapter_Debug verifies debug events pass through when the
// backing logger permits them.
func TestZerologAdapter_Debug(t *testing.T) {
	var buf bytes.Buffer
	logger := NewZerologAdapter(zerolog.New(&buf).Level(zerolog.DebugLevel))

	logger.Debug("reaped child", Int("child", 1234))

	output := buf.String()
	if !strings.Contains(output, "reaped child") || !strings.Contains(output, "1234") {
		t.Errorf("Debug output incomplete: %s", output)
	}
}

// TestZerologAdapter_PrintfPrintln verifies the log.Printf-compatible surface.
func TestZerologAdapter_PrintfPrintln(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "test")

	logger.Printf("universe %d of %d", 3, 8)
	logger.Println("hello", "multiverse")

	output := buf.String()
	if !strings.Contains(output, "universe 3 of 8") {
		t.Errorf("Printf should format message, got: %s", output)
	}
	if !strings.Contains(output, "hello multiverse") {
		t.Errorf("Println should join arguments, got: %s", output)
	}
}

// TestNewDefaultLogger verifies env-driven level selection.
func TestNewDefaultLogger(t *testing.T) {
	t.Run("silent without env", func(t *testing.T) {
		t.Setenv(EnvLogLevel, "")
		if NewDefaultLogger() == nil {
			t.Fatal("NewDefaultLogger returned nil")
		}
	})

	t.Run("accepts level from env", func(t *testing.T) {
		t.Setenv(EnvLogLevel, "debug")
		if NewDefaultLogger() == nil {
			t.Fatal("NewDefaultLogger returned nil")
		}
	})
}
