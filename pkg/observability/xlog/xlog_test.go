package xlog_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/zDonik1/tgt/pkg/observability/xlog"
)

// testCleanup 测试辅助函数，在测试结束时执行 cleanup
func testCleanup(t *testing.T, cleanup func() error) {
	t.Helper()
	t.Cleanup(func() {
		if err := cleanup(); err != nil {
			t.Errorf("cleanup error: %v", err)
		}
	})
}

// =============================================================================
// Logger 接口测试
// =============================================================================

func TestLogger_BasicLogging(t *testing.T) {
	var buf bytes.Buffer
	logger, cleanup, err := xlog.New().
		SetOutput(&buf).
		SetLevel(xlog.LevelTrace).
		Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	testCleanup(t, cleanup)

	ctx := context.Background()

	logger.Trace(ctx, "trace message")
	logger.Debug(ctx, "debug message")
	logger.Info(ctx, "info message")
	logger.Warn(ctx, "warn message")
	logger.Error(ctx, "error message")

	output := buf.String()

	tests := []string{
		"trace message",
		"debug message",
		"info message",
		"warn message",
		"error message",
	}

	for _, want := range tests {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q\noutput: %s", want, output)
		}
	}
}

func TestLogger_LevelFiltering(t *testing.T) {
	// Warn 阈值：Trace/Debug/Info 被过滤，Warn/Error 输出
	var buf bytes.Buffer
	logger, cleanup, err := xlog.New().
		SetOutput(&buf).
		SetLevel(xlog.LevelWarn).
		Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	testCleanup(t, cleanup)

	ctx := context.Background()
	logger.Trace(ctx, "trace message")
	logger.Debug(ctx, "debug message")
	logger.Info(ctx, "info message")
	logger.Warn(ctx, "warn message")
	logger.Error(ctx, "error message")

	output := buf.String()
	for _, absent := range []string{"trace message", "debug message", "info message"} {
		if strings.Contains(output, absent) {
			t.Errorf("output should not contain %q\noutput: %s", absent, output)
		}
	}
	for _, present := range []string{"warn message", "error message"} {
		if !strings.Contains(output, present) {
			t.Errorf("output missing %q\noutput: %s", present, output)
		}
	}
}

func TestLogger_OffSuppressesEverything(t *testing.T) {
	var buf bytes.Buffer
	logger, cleanup, err := xlog.New().
		SetOutput(&buf).
		SetLevel(xlog.LevelOff).
		Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	testCleanup(t, cleanup)

	ctx := context.Background()
	logger.Error(ctx, "even errors are silenced")

	if buf.Len() != 0 {
		t.Errorf("LevelOff should suppress all output, got: %s", buf.String())
	}
}

func TestLogger_TraceLevelName(t *testing.T) {
	// 扩展级别渲染为本包名称，而不是 slog 的 "DEBUG-4"
	var buf bytes.Buffer
	logger, cleanup, err := xlog.New().
		SetOutput(&buf).
		SetLevel(xlog.LevelTrace).
		SetFormat("json").
		Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	testCleanup(t, cleanup)

	logger.Trace(context.Background(), "fine grained")

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("invalid JSON output: %v\noutput: %s", err, buf.String())
	}
	if record["level"] != "TRACE" {
		t.Errorf("level = %v, want TRACE", record["level"])
	}
}

func TestLogger_WithAttrs(t *testing.T) {
	var buf bytes.Buffer
	logger, cleanup, err := xlog.New().
		SetOutput(&buf).
		Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	testCleanup(t, cleanup)

	child := logger.With(slog.String("component", "updater"))
	child.Info(context.Background(), "with attrs")

	output := buf.String()
	if !strings.Contains(output, "component=updater") {
		t.Errorf("output missing attribute\noutput: %s", output)
	}
}

func TestLogger_WithGroup(t *testing.T) {
	var buf bytes.Buffer
	logger, cleanup, err := xlog.New().
		SetOutput(&buf).
		SetFormat("json").
		Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	testCleanup(t, cleanup)

	grouped := logger.WithGroup("net").With(slog.Int("attempts", 2))
	grouped.Info(context.Background(), "grouped")

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("invalid JSON output: %v", err)
	}
	net, ok := record["net"].(map[string]any)
	if !ok {
		t.Fatalf("missing net group in output: %s", buf.String())
	}
	if net["attempts"] != float64(2) {
		t.Errorf("net.attempts = %v, want 2", net["attempts"])
	}
}

// =============================================================================
// 动态级别测试
// =============================================================================

func TestLogger_DynamicLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, cleanup, err := xlog.New().
		SetOutput(&buf).
		SetLevel(xlog.LevelInfo).
		Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	testCleanup(t, cleanup)

	ctx := context.Background()

	logger.Debug(ctx, "filtered out")
	if strings.Contains(buf.String(), "filtered out") {
		t.Error("debug should be filtered at Info level")
	}

	// 运行时调低阈值，无需重建 logger
	logger.SetLevel(xlog.LevelDebug)
	if got := logger.GetLevel(); got != xlog.LevelDebug {
		t.Errorf("GetLevel() = %v, want LevelDebug", got)
	}

	logger.Debug(ctx, "now visible")
	if !strings.Contains(buf.String(), "now visible") {
		t.Error("debug should pass after SetLevel(LevelDebug)")
	}

	// 派生 logger 共享级别状态
	child := logger.With(slog.String("k", "v"))
	if lv, ok := child.(xlog.Leveler); ok {
		if !lv.Enabled(ctx, xlog.LevelDebug) {
			t.Error("derived logger should share dynamic level")
		}
	}
}

// =============================================================================
// Builder 配置测试
// =============================================================================

func TestBuilder_SetLevelString(t *testing.T) {
	var buf bytes.Buffer
	logger, cleanup, err := xlog.New().
		SetOutput(&buf).
		SetLevelString("debug").
		Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	testCleanup(t, cleanup)

	if got := logger.GetLevel(); got != xlog.LevelDebug {
		t.Errorf("GetLevel() = %v, want LevelDebug", got)
	}
}

func TestBuilder_InvalidLevelString(t *testing.T) {
	_, _, err := xlog.New().SetLevelString("verbose").Build()
	if err == nil {
		t.Fatal("Build() should fail for unknown level")
	}
}

func TestBuilder_InvalidFormat(t *testing.T) {
	_, _, err := xlog.New().SetFormat("xml").Build()
	if err == nil {
		t.Fatal("Build() should fail for unknown format")
	}
}

func TestBuilder_EmptyFormatDefaultsToText(t *testing.T) {
	var buf bytes.Buffer
	logger, cleanup, err := xlog.New().
		SetOutput(&buf).
		SetFormat("").
		Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	testCleanup(t, cleanup)

	logger.Info(context.Background(), "text line")
	if !strings.Contains(buf.String(), "msg=") {
		t.Errorf("expected text format output, got: %s", buf.String())
	}
}

func TestBuilder_FirstErrorWins(t *testing.T) {
	// 第一个配置错误保留，后续 Set 不覆盖
	_, _, err := xlog.New().
		SetLevelString("bogus").
		SetFormat("json").
		Build()
	if err == nil {
		t.Fatal("Build() should return the first error")
	}
	if !strings.Contains(err.Error(), "bogus") {
		t.Errorf("err = %v, want mention of %q", err, "bogus")
	}
}

// =============================================================================
// 错误处理测试
// =============================================================================

// failingWriter 总是返回错误的 writer
type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestLogger_OnError(t *testing.T) {
	var captured []error
	logger, cleanup, err := xlog.New().
		SetOutput(failingWriter{}).
		SetOnError(func(e error) { captured = append(captured, e) }).
		Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	testCleanup(t, cleanup)

	logger.Info(context.Background(), "doomed write")

	if len(captured) != 1 {
		t.Fatalf("onError called %d times, want 1", len(captured))
	}
	if !strings.Contains(captured[0].Error(), "disk full") {
		t.Errorf("captured error = %v, want disk full", captured[0])
	}
}

func TestLogger_OnErrorPanicIsolated(t *testing.T) {
	logger, cleanup, err := xlog.New().
		SetOutput(failingWriter{}).
		SetOnError(func(e error) { panic("callback exploded") }).
		Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	testCleanup(t, cleanup)

	// 回调 panic 不得扩散到业务调用链
	logger.Info(context.Background(), "should not panic")
}

func TestLogger_WriteFailureDoesNotPanic(t *testing.T) {
	// 无回调时写失败静默吞掉
	logger, cleanup, err := xlog.New().
		SetOutput(failingWriter{}).
		Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	testCleanup(t, cleanup)

	logger.Error(context.Background(), "swallowed")
}
