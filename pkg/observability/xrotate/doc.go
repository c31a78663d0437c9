// Package xrotate 提供日志文件轮转功能。
//
// Rotator 接口定义了轮转器的核心行为（Write/Close/Rotate），所有实现并发安全。
//
// # 当前实现
//
//   - [NewPeriodic]: 按日历周期轮转（minutely/hourly/daily/never），
//     带历史文件数量上限清理
//   - [NewLumberjack]: 基于 lumberjack v2 的按大小轮转，
//     适合 never 频率下的体积兜底
//
// # 文件命名
//
// 周期轮转的文件名为 <folder>/<base>.<key>，key 是时间戳按 UTC 截断到
// 周期边界后的零填充表示：
//
//	daily:    tgt.log.2024-03-09
//	hourly:   tgt.log.2024-03-09-15
//	minutely: tgt.log.2024-03-09-15-04
//
// never 频率不加后缀，始终写 <folder>/<base>。
//
// # 历史清理
//
// 每次轮转后异步执行 [EnforceRetention]：按周期 key 排序，删除超出
// 保留数量的最旧文件，当前活跃文件永不删除。单个文件删除失败不会
// 中断剩余清理，错误经 OnError 回调上报。
//
// # 扩展新实现
//
//  1. 创建新文件实现 Rotator 接口
//  2. 定义独立的 Config 和 Option
//  3. 提供独立的构造函数
//  4. 不修改 Rotator 接口
package xrotate
