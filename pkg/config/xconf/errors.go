package xconf

import "errors"

// 配置加载和解析相关错误。
var (
	// ErrEmptyPath 表示配置文件路径为空。
	ErrEmptyPath = errors.New("xconf: empty config path")

	// ErrUnsupportedFormat 表示不支持的配置格式。
	ErrUnsupportedFormat = errors.New("xconf: unsupported config format")

	// ErrLoadFailed 表示配置加载失败。
	ErrLoadFailed = errors.New("xconf: failed to load config")

	// ErrParseFailed 表示配置解析失败。
	ErrParseFailed = errors.New("xconf: failed to parse config")

	// ErrUnmarshalFailed 表示配置反序列化失败。
	ErrUnmarshalFailed = errors.New("xconf: failed to unmarshal config")

	// ErrNotFromFile 表示该操作仅支持从文件创建的配置来源。
	ErrNotFromFile = errors.New("xconf: source not created from file")

	// ErrInvalidConfig 表示合并后的配置非法（未知枚举值或负的保留数量）。
	// 在任何文件 I/O 发生之前的 Resolve 阶段快速失败。
	ErrInvalidConfig = errors.New("xconf: invalid config")
)
