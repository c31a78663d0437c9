// Package xfile 提供日志子系统使用的文件系统工具。
//
// 本包只覆盖两个关注点：文件路径的格式净化（[SanitizePath]）和
// 日志目录的按需创建（[EnsureDir]、[EnsureDirWithPerm]）。
//
// # 路径穿越检测
//
// 穿越检测使用精确的路径段匹配，只有 ".." 作为独立路径段时才被拒绝。
// 以 ".." 开头的合法文件名（如 "..config"）不会被误判：
//
//	SanitizePath(".data/..config")     // ✓ 合法
//	SanitizePath("../etc/passwd")      // ✗ 拒绝 -> 路径穿越
//
// # 空字节防护
//
// SanitizePath 拒绝包含空字节（\x00）的路径。Linux 内核在 VFS 层会在
// 空字节处截断路径，导致 Go 代码与操作系统实际操作的路径不一致。
//
// # 错误处理
//
// 预定义错误变量支持 [errors.Is] 判断：
//
//	_, err := xfile.SanitizePath("../tgt.log")
//	if errors.Is(err, xfile.ErrPathTraversal) {
//	    // 处理路径穿越
//	}
package xfile
