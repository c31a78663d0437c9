package xconf

import (
	"fmt"

	"github.com/zDonik1/tgt/pkg/observability/xlog"
	"github.com/zDonik1/tgt/pkg/observability/xrotate"
)

// 内置默认值，与文档约定一致。
const (
	// DefaultLogFolder 默认日志目录
	DefaultLogFolder = ".data"

	// DefaultLogFile 默认日志文件基础名
	DefaultLogFile = "tgt.log"

	// DefaultRotationFrequency 默认轮转频率
	DefaultRotationFrequency = "daily"

	// DefaultMaxOldLogFiles 默认保留的历史文件数量
	DefaultMaxOldLogFiles = 7

	// DefaultLogLevel 默认日志级别
	DefaultLogLevel = "info"
)

// Config 完整日志配置（值类型）
//
// 每个字段都有值；作为合并基底时通常从 [Default] 出发。
// 字段与配置文件的键一一对应。
type Config struct {
	// LogFolder 日志目录
	LogFolder string `koanf:"log_folder"`

	// LogFile 日志文件基础名
	LogFile string `koanf:"log_file"`

	// RotationFrequency 轮转频率：minutely/hourly/daily/never
	RotationFrequency string `koanf:"rotation_frequency"`

	// MaxOldLogFiles 保留的历史文件数量（不含当前活跃文件），必须 >= 0
	MaxOldLogFiles int `koanf:"max_old_log_files"`

	// LogLevel 日志级别：error/warn/info/debug/trace/off
	LogLevel string `koanf:"log_level"`
}

// Default 返回内置默认配置
//
// 进程启动时构造一次，之后只读。
func Default() Config {
	return Config{
		LogFolder:         DefaultLogFolder,
		LogFile:           DefaultLogFile,
		RotationFrequency: DefaultRotationFrequency,
		MaxOldLogFiles:    DefaultMaxOldLogFiles,
		LogLevel:          DefaultLogLevel,
	}
}

// Overlay 部分覆盖配置
//
// 每个字段可选（nil 表示未提供，保留基底值）。从外部输入构造一次，
// 交给 [Resolve] 消费后即可丢弃。
type Overlay struct {
	LogFolder         *string `koanf:"log_folder"`
	LogFile           *string `koanf:"log_file"`
	RotationFrequency *string `koanf:"rotation_frequency"`
	MaxOldLogFiles    *int    `koanf:"max_old_log_files"`
	LogLevel          *string `koanf:"log_level"`
}

// Merge 将部分覆盖叠加到基底配置上
//
// 逐字段合并：覆盖提供的字段生效，缺省字段保留基底值。纯函数，不会失败
// （字段缺省是合法的覆盖）。性质：Merge(d, Overlay{}) == d；
// 全字段覆盖时结果与覆盖完全一致。
//
// 设计决策: 显式枚举每个字段而非反射合并——字段就这几个，显式写法
// 可读且零开销。
func Merge(base Config, o Overlay) Config {
	merged := base
	if o.LogFolder != nil {
		merged.LogFolder = *o.LogFolder
	}
	if o.LogFile != nil {
		merged.LogFile = *o.LogFile
	}
	if o.RotationFrequency != nil {
		merged.RotationFrequency = *o.RotationFrequency
	}
	if o.MaxOldLogFiles != nil {
		merged.MaxOldLogFiles = *o.MaxOldLogFiles
	}
	if o.LogLevel != nil {
		merged.LogLevel = *o.LogLevel
	}
	return merged
}

// Resolved 校验并类型化之后的最终配置
//
// 枚举字段换成各自包的强类型，供日志写入端独占持有。
type Resolved struct {
	LogFolder         string
	LogFile           string
	RotationFrequency xrotate.Frequency
	MaxOldLogFiles    int
	LogLevel          xlog.Level
}

// Resolve 合并基底与覆盖并校验，产出最终配置
//
// 未知的 rotation_frequency / log_level 枚举值或负的 max_old_log_files
// 会立即返回包装了 [ErrInvalidConfig] 的错误——在任何文件 I/O 之前快速失败。
func Resolve(base Config, o Overlay) (Resolved, error) {
	return Merge(base, o).Resolve()
}

// Resolve 校验并类型化配置
func (c Config) Resolve() (Resolved, error) {
	if c.LogFolder == "" {
		return Resolved{}, fmt.Errorf("%w: log_folder is empty", ErrInvalidConfig)
	}
	if c.LogFile == "" {
		return Resolved{}, fmt.Errorf("%w: log_file is empty", ErrInvalidConfig)
	}

	freq, err := xrotate.ParseFrequency(c.RotationFrequency)
	if err != nil {
		return Resolved{}, fmt.Errorf("%w: rotation_frequency: %w", ErrInvalidConfig, err)
	}

	if c.MaxOldLogFiles < 0 {
		return Resolved{}, fmt.Errorf("%w: max_old_log_files must be >= 0, got %d",
			ErrInvalidConfig, c.MaxOldLogFiles)
	}

	level, err := xlog.ParseLevel(c.LogLevel)
	if err != nil {
		return Resolved{}, fmt.Errorf("%w: log_level: %w", ErrInvalidConfig, err)
	}

	return Resolved{
		LogFolder:         c.LogFolder,
		LogFile:           c.LogFile,
		RotationFrequency: freq,
		MaxOldLogFiles:    c.MaxOldLogFiles,
		LogLevel:          level,
	}, nil
}
