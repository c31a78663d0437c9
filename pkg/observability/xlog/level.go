package xlog

import (
	"fmt"
	"log/slog"
	"strings"
)

// Level 日志级别，与 slog.Level 兼容
//
// 详细程度从低到高：Off < Error < Warn < Info < Debug < Trace。
// 数值上沿用 slog 的约定（数值越大越严重），Trace 和 Off 是本包扩展：
// Trace 比 Debug 更细，Off 只作为阈值使用，表示关闭全部输出。
type Level slog.Level

// 日志级别常量
const (
	// LevelTrace 追踪级别，比 Debug 更细（slog 没有内置对应值）
	LevelTrace = Level(slog.LevelDebug - 4)

	LevelDebug = Level(slog.LevelDebug)
	LevelInfo  = Level(slog.LevelInfo)
	LevelWarn  = Level(slog.LevelWarn)
	LevelError = Level(slog.LevelError)

	// LevelOff 关闭全部输出
	// 仅作为过滤阈值使用，不是合法的记录级别
	LevelOff = Level(slog.LevelError + 4)
)

// String 返回级别的字符串表示
//
// 对于已知级别返回大写名称（TRACE/DEBUG/INFO/WARN/ERROR/OFF），
// 非标准级别委托给 slog.Level.String()（如 "INFO+2"）。
func (l Level) String() string {
	switch l {
	case LevelTrace:
		return "TRACE"
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	case LevelOff:
		return "OFF"
	default:
		return slog.Level(l).String()
	}
}

// MarshalText 实现 encoding.TextMarshaler 接口
//
// 支持配置序列化场景（YAML/JSON）。
func (l Level) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText 实现 encoding.TextUnmarshaler 接口
//
// 支持从配置文件直接反序列化日志级别。
func (l *Level) UnmarshalText(data []byte) error {
	parsed, err := ParseLevel(string(data))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// ParseLevel 解析字符串为日志级别
// 支持 trace/debug/info/warn/warning/error/off（大小写不敏感）
// 输入会自动 TrimSpace
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return LevelTrace, nil
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	case "off":
		return LevelOff, nil
	default:
		return LevelInfo, fmt.Errorf("xlog: unknown level %q", s)
	}
}

// Allows 判断阈值 l 下 record 级别的记录是否应该输出
//
// 过滤规则：阈值为 Off 时一律不输出；否则记录的详细程度不超过阈值时
// 输出（Error 在任何非 Off 阈值下都会输出）。纯函数，对全部输入有定义。
func (l Level) Allows(record Level) bool {
	if l == LevelOff {
		return false
	}
	return slog.Level(record) >= slog.Level(l)
}
