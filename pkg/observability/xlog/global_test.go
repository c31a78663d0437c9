package xlog_test

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/zDonik1/tgt/pkg/observability/xlog"
)

// =============================================================================
// Default / SetDefault 测试
// =============================================================================

func TestDefault_LazyInit(t *testing.T) {
	xlog.ResetDefault()
	defer xlog.ResetDefault()

	logger := xlog.Default()
	if logger == nil {
		t.Fatal("Default() should not return nil")
	}

	logger2 := xlog.Default()
	if logger != logger2 {
		t.Error("Default() should return the same instance")
	}
}

func TestSetDefault(t *testing.T) {
	xlog.ResetDefault()
	defer xlog.ResetDefault()

	var buf bytes.Buffer
	custom, cleanup, err := xlog.New().
		SetOutput(&buf).
		SetLevel(xlog.LevelDebug).
		Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	defer func() { _ = cleanup() }()

	xlog.SetDefault(custom)

	xlog.Debug(context.Background(), "via global")
	if !strings.Contains(buf.String(), "via global") {
		t.Errorf("global Debug should reach custom logger, got: %s", buf.String())
	}
}

func TestSetDefault_NilIgnored(t *testing.T) {
	xlog.ResetDefault()
	defer xlog.ResetDefault()

	before := xlog.Default()
	xlog.SetDefault(nil)
	after := xlog.Default()

	if before != after {
		t.Error("SetDefault(nil) should be a no-op")
	}
}

// =============================================================================
// 全局便利函数测试
// =============================================================================

func TestGlobalFunctions(t *testing.T) {
	xlog.ResetDefault()
	defer xlog.ResetDefault()

	var buf bytes.Buffer
	custom, cleanup, err := xlog.New().
		SetOutput(&buf).
		SetLevel(xlog.LevelTrace).
		Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	defer func() { _ = cleanup() }()
	xlog.SetDefault(custom)

	ctx := context.Background()
	xlog.Trace(ctx, "g-trace")
	xlog.Debug(ctx, "g-debug")
	xlog.Info(ctx, "g-info")
	xlog.Warn(ctx, "g-warn")
	xlog.Error(ctx, "g-error")

	output := buf.String()
	for _, want := range []string{"g-trace", "g-debug", "g-info", "g-warn", "g-error"} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q\noutput: %s", want, output)
		}
	}
}

func TestDefault_ConcurrentInit(t *testing.T) {
	xlog.ResetDefault()
	defer xlog.ResetDefault()

	const goroutines = 16
	loggers := make([]xlog.LoggerWithLevel, goroutines)

	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			loggers[idx] = xlog.Default()
		}(i)
	}
	wg.Wait()

	for i := 1; i < goroutines; i++ {
		if loggers[i] != loggers[0] {
			t.Fatal("concurrent Default() calls must observe the same instance")
		}
	}
}
