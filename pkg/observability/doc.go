// Package observability 提供可观测性相关的子包。
//
// 子包列表：
//   - xlog: 结构化日志，基于 log/slog 扩展
//   - xrotate: 日志文件轮转与历史清理
//
// 设计原则：
//   - 日志失败不扩散到业务调用链
//   - 支持动态级别控制
//   - 轮转与清理从不改写已有日志内容
package observability
