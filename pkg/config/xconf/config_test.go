package xconf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zDonik1/tgt/pkg/observability/xlog"
	"github.com/zDonik1/tgt/pkg/observability/xrotate"
)

func ptr[T any](v T) *T { return &v }

// =============================================================================
// Default 测试
// =============================================================================

func TestDefault(t *testing.T) {
	d := Default()

	assert.Equal(t, ".data", d.LogFolder)
	assert.Equal(t, "tgt.log", d.LogFile)
	assert.Equal(t, "daily", d.RotationFrequency)
	assert.Equal(t, 7, d.MaxOldLogFiles)
	assert.Equal(t, "info", d.LogLevel)
}

// =============================================================================
// Merge 测试
// =============================================================================

func TestMerge_EmptyOverlay(t *testing.T) {
	// 空覆盖不改变任何字段
	base := Default()
	merged := Merge(base, Overlay{})
	assert.Equal(t, base, merged)
}

func TestMerge_SingleField(t *testing.T) {
	// 只覆盖一个字段，其余保留基底值
	merged := Merge(Default(), Overlay{LogLevel: ptr("debug")})

	assert.Equal(t, "debug", merged.LogLevel)
	assert.Equal(t, ".data", merged.LogFolder)
	assert.Equal(t, "tgt.log", merged.LogFile)
	assert.Equal(t, "daily", merged.RotationFrequency)
	assert.Equal(t, 7, merged.MaxOldLogFiles)
}

func TestMerge_AllFields(t *testing.T) {
	// 全字段覆盖时结果与覆盖完全一致
	merged := Merge(Default(), Overlay{
		LogFolder:         ptr("/var/log/app"),
		LogFile:           ptr("app.log"),
		RotationFrequency: ptr("hourly"),
		MaxOldLogFiles:    ptr(3),
		LogLevel:          ptr("trace"),
	})

	assert.Equal(t, Config{
		LogFolder:         "/var/log/app",
		LogFile:           "app.log",
		RotationFrequency: "hourly",
		MaxOldLogFiles:    3,
		LogLevel:          "trace",
	}, merged)
}

func TestMerge_ZeroValueOverride(t *testing.T) {
	// 显式提供的零值是合法覆盖，不等于缺省
	merged := Merge(Default(), Overlay{MaxOldLogFiles: ptr(0)})
	assert.Equal(t, 0, merged.MaxOldLogFiles)
}

// =============================================================================
// Resolve 测试
// =============================================================================

func TestResolve_Defaults(t *testing.T) {
	resolved, err := Resolve(Default(), Overlay{})
	require.NoError(t, err)

	assert.Equal(t, ".data", resolved.LogFolder)
	assert.Equal(t, "tgt.log", resolved.LogFile)
	assert.Equal(t, xrotate.FrequencyDaily, resolved.RotationFrequency)
	assert.Equal(t, 7, resolved.MaxOldLogFiles)
	assert.Equal(t, xlog.LevelInfo, resolved.LogLevel)
}

func TestResolve_LogLevelOverride(t *testing.T) {
	resolved, err := Resolve(Default(), Overlay{LogLevel: ptr("debug")})
	require.NoError(t, err)

	assert.Equal(t, xlog.LevelDebug, resolved.LogLevel)
	// 其余字段保持默认
	assert.Equal(t, xrotate.FrequencyDaily, resolved.RotationFrequency)
	assert.Equal(t, 7, resolved.MaxOldLogFiles)
}

func TestResolve_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		overlay Overlay
	}{
		{
			name:    "未知轮转频率",
			overlay: Overlay{RotationFrequency: ptr("weekly")},
		},
		{
			name:    "未知日志级别",
			overlay: Overlay{LogLevel: ptr("verbose")},
		},
		{
			name:    "负的历史文件数量",
			overlay: Overlay{MaxOldLogFiles: ptr(-1)},
		},
		{
			name:    "空日志目录",
			overlay: Overlay{LogFolder: ptr("")},
		},
		{
			name:    "空日志文件名",
			overlay: Overlay{LogFile: ptr("")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Resolve(Default(), tt.overlay)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestResolve_Frequencies(t *testing.T) {
	tests := []struct {
		input string
		want  xrotate.Frequency
	}{
		{"never", xrotate.FrequencyNever},
		{"minutely", xrotate.FrequencyMinutely},
		{"hourly", xrotate.FrequencyHourly},
		{"daily", xrotate.FrequencyDaily},
		{"Daily", xrotate.FrequencyDaily}, // 大小写不敏感
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			resolved, err := Resolve(Default(), Overlay{RotationFrequency: ptr(tt.input)})
			require.NoError(t, err)
			assert.Equal(t, tt.want, resolved.RotationFrequency)
		})
	}
}
