// Package xconf 提供日志子系统的配置加载、合并与校验，基于 koanf 实现。
//
// # 设计理念
//
// 配置分三层：
//   - Config：完整配置值，内置默认值通过 Default() 获取
//   - Overlay：部分覆盖，字段全部为指针（nil 表示未提供）
//   - Resolved：合并、校验、类型化后的最终配置，供日志写入端独占持有
//
// 合并是纯函数：Merge(Default(), Overlay{}) 等于 Default()；
// 覆盖提供的字段生效，缺省字段保留默认值。校验在 Resolve 阶段完成，
// 未知枚举值或负数文件上限立即失败，不会进行任何文件 I/O。
//
// # 配置来源
//
// Overlay 可以手工构造，也可以通过 Source 从文件或字节数据加载：
//   - 工厂函数：Open, FromBytes
//   - Client() 暴露底层 koanf 实例
//   - 增值功能：并发安全的 Reload、类型安全的 Unmarshal / Overlay
//
// 支持的格式：
//   - YAML（默认，推荐）：.yaml, .yml
//   - JSON：.json
//
// # 典型用法
//
//	src, err := xconf.Open("config.yaml")
//	if err != nil {
//	    // 配置文件缺失时直接使用默认值
//	}
//	overlay, _ := src.Overlay()
//	resolved, err := xconf.Resolve(xconf.Default(), overlay)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	// resolved.LogFolder / resolved.RotationFrequency / resolved.LogLevel ...
//
// # Unmarshal
//
// Unmarshal 使用 mapstructure 进行反序列化，默认允许弱类型转换
// （例如字符串 "7" 可自动转为 int 7）。
// Overlay() 是 Unmarshal 的封装，将整个配置反序列化为部分覆盖。
//
// # 配置监视
//
// 支持文件变更监视和自动重载（基于 fsnotify）。
// 特性：监视目录、内置防抖、并发安全、支持 vim/emacs 原子写入。
// 从 bytes 创建的 Source 不支持监视。
// Stop() 保证返回后不再有回调执行。
package xconf
