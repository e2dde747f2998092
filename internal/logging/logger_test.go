package logging

import (
	"context"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestFromContext(t *testing.T) {
	t.Parallel()
	if FromContext(context.Background()) != DefaultLogger() {
		t.Errorf("empty context must return the default logger")
	}

	core, logs := observer.New(zapcore.DebugLevel)
	logger := zap.New(core).Sugar()
	ctx := WithLogger(context.Background(), logger)
	FromContext(ctx).Debugw("split", "test", 1, "training", 3)

	if logs.Len() != 1 {
		t.Fatalf("logged entries got: %d, expected: 1", logs.Len())
	}
	entry := logs.All()[0]
	if entry.Message != "split" || entry.ContextMap()["training"] != int64(3) {
		t.Errorf("logged entry got: %v %v", entry.Message, entry.ContextMap())
	}
}

func TestLevelFor(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		level    string
		expected zapcore.Level
	}{
		{name: "debug", level: "debug", expected: zapcore.DebugLevel},
		{name: "upper", level: "WARN", expected: zapcore.WarnLevel},
		{name: "error", level: " error ", expected: zapcore.ErrorLevel},
		{name: "unknown", level: "verbose", expected: zapcore.InfoLevel},
	}
	for _, test := range tests {
		if got := levelFor(test.level); got != test.expected {
			t.Errorf("%s: level got: %v, expected: %v", test.name, got, test.expected)
		}
	}
}
