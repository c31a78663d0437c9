// Package xlog 基于 log/slog 的结构化日志库。
//
// # 核心功能
//
//   - Builder 模式配置（输出目标、级别、格式、轮转）
//   - 级别过滤：Off < Error < Warn < Info < Debug < Trace（详细程度递增）
//   - 动态级别调整（运行时热更新）
//   - 全局 Logger 便利函数
//
// # 创建 Logger
//
// 使用 Builder 模式（first-error-wins：遇到第一个配置错误后，后续 Set 操作被跳过）。
// Builder 为一次性使用：调用 [Builder.Build] 后不可复用，需通过 [New] 创建新实例。
// Builder 方法：SetLevel、SetLevelString、SetFormat、SetOutput、SetAddSource、
// SetRotation、SetSizeRotation、SetOnError。
//
//	logger, cleanup, err := xlog.New().
//		SetLevelString("debug").
//		SetRotation(".data", "tgt.log",
//			xrotate.WithFrequency(xrotate.FrequencyDaily),
//			xrotate.WithMaxOldFiles(7)).
//		Build()
//
// # 全局 Logger
//
// 面向进程级单一日志目标的场景：
//
//   - [Default]: 获取全局 Logger（惰性初始化：stderr、Info 级别、text 格式）
//   - [SetDefault]: 替换全局 Logger（nil 会被忽略）
//   - [ResetDefault]: 重置为未初始化状态（仅用于测试）
//   - [Trace]、[Debug]、[Info]、[Warn]、[Error]: 全局便利函数，签名为 (ctx, msg, ...slog.Attr)
//
// # 日志级别
//
// LevelTrace(-8)、LevelDebug(-4)、LevelInfo(0)、LevelWarn(4)、LevelError(8)、
// LevelOff(12，仅作阈值)。可通过 [ParseLevel] 从字符串解析。Level 实现
// encoding.TextMarshaler/TextUnmarshaler，支持配置文件直接序列化/反序列化。
// 过滤判定见 [Level.Allows]。
//
// # 派生 Logger 与级别控制
//
// [Logger.With] 和 [Logger.WithGroup] 返回 [Logger] 接口（不含 [Leveler]）。
// 底层实现同时实现了 [LoggerWithLevel]，可通过类型断言获取级别控制能力。
// 派生 logger 共享父级的 LevelVar，动态级别变更会同步生效。
package xlog
