package xlog_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/zDonik1/tgt/pkg/observability/xlog"
	"github.com/zDonik1/tgt/pkg/observability/xrotate"
)

// =============================================================================
// 轮转输出集成测试
// =============================================================================

func TestBuilder_SetRotation(t *testing.T) {
	dir := t.TempDir()

	logger, cleanup, err := xlog.New().
		SetRotation(dir, "tgt.log",
			xrotate.WithFrequency(xrotate.FrequencyNever),
			xrotate.WithMaxOldFiles(3),
		).
		SetLevel(xlog.LevelInfo).
		Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	logger.Info(context.Background(), "to rotated file")
	if err := cleanup(); err != nil {
		t.Fatalf("cleanup() error: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "tgt.log"))
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(data), "to rotated file") {
		t.Errorf("log file missing record, got: %s", data)
	}
}

func TestBuilder_SetRotation_PeriodSuffix(t *testing.T) {
	dir := t.TempDir()
	now := time.Date(2024, 3, 9, 12, 0, 0, 0, time.UTC)

	logger, cleanup, err := xlog.New().
		SetRotation(dir, "tgt.log",
			xrotate.WithFrequency(xrotate.FrequencyDaily),
			xrotate.WithNow(func() time.Time { return now }),
		).
		Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	logger.Info(context.Background(), "daily record")
	if err := cleanup(); err != nil {
		t.Fatalf("cleanup() error: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "tgt.log.2024-03-09")); err != nil {
		t.Errorf("expected period-suffixed file: %v", err)
	}
}

func TestBuilder_SetRotation_InvalidConfig(t *testing.T) {
	_, _, err := xlog.New().
		SetRotation("", "tgt.log").
		Build()
	if err == nil {
		t.Fatal("Build() should fail for empty folder")
	}
}

func TestBuilder_SetSizeRotation(t *testing.T) {
	dir := t.TempDir()
	filename := filepath.Join(dir, "size.log")

	logger, cleanup, err := xlog.New().
		SetSizeRotation(filename, xrotate.WithMaxSize(1), xrotate.WithCompress(false)).
		Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	logger.Info(context.Background(), "size capped")
	if err := cleanup(); err != nil {
		t.Fatalf("cleanup() error: %v", err)
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(data), "size capped") {
		t.Errorf("log file missing record, got: %s", data)
	}
}

func TestBuilder_RotationWithLevelFilter(t *testing.T) {
	// warn 阈值下只有 error 和 warn 两条记录落盘
	dir := t.TempDir()

	logger, cleanup, err := xlog.New().
		SetRotation(dir, "tgt.log", xrotate.WithFrequency(xrotate.FrequencyNever)).
		SetLevel(xlog.LevelWarn).
		Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	ctx := context.Background()
	logger.Error(ctx, "e-record")
	logger.Warn(ctx, "w-record")
	logger.Info(ctx, "i-record")
	logger.Debug(ctx, "d-record")

	if err := cleanup(); err != nil {
		t.Fatalf("cleanup() error: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "tgt.log"))
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d records, want 2\nfile: %s", len(lines), data)
	}
	if !strings.Contains(lines[0], "e-record") || !strings.Contains(lines[1], "w-record") {
		t.Errorf("unexpected records in file: %s", data)
	}
}

func TestBuilder_CleanupIdempotent(t *testing.T) {
	dir := t.TempDir()

	logger, cleanup, err := xlog.New().
		SetRotation(dir, "tgt.log", xrotate.WithFrequency(xrotate.FrequencyNever)).
		Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	logger.Info(context.Background(), "before close")

	if err := cleanup(); err != nil {
		t.Fatalf("first cleanup error: %v", err)
	}
	// sync.Once 保证重复调用不报 ErrClosed
	if err := cleanup(); err != nil {
		t.Fatalf("second cleanup error: %v", err)
	}
}
