package xrotate

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// rotatedFile 目录中一个匹配命名约定的轮转文件
type rotatedFile struct {
	name string
	key  PeriodKey
}

// EnforceRetention 执行历史文件清理
//
// 列出 folder 中属于 base 轮转文件集的条目（后缀无法按频率严格解析的
// 文件不算在内），按周期 key 升序排序，删除超出 maxOld 的最旧文件。
// active 是当前活跃文件的 key，对应文件永远不会被删除。
//
// 返回成功删除的路径列表。单个文件删除失败（权限、并发删除等）只会
// 被收集上报，不中断对剩余文件的清理；所有失败通过 errors.Join 合并返回。
// 幂等：没有新文件时重复执行不会产生新的删除。
//
// FrequencyNever 没有历史文件集，直接返回空结果。
func EnforceRetention(folder, base string, freq Frequency, maxOld int, active PeriodKey) ([]string, error) {
	if maxOld < 0 {
		return nil, fmt.Errorf("%w: got %d, want >= 0", ErrInvalidMaxOldFiles, maxOld)
	}
	if freq == FrequencyNever {
		return nil, nil
	}

	entries, err := os.ReadDir(folder)
	if err != nil {
		if os.IsNotExist(err) {
			// 目录尚未创建，没有可清理的内容
			return nil, nil
		}
		return nil, fmt.Errorf("xrotate: list log folder: %w", err)
	}

	var files []rotatedFile
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		key, ok := parseRotatedName(entry.Name(), base, freq)
		if !ok || key == active {
			continue
		}
		files = append(files, rotatedFile{name: entry.Name(), key: key})
	}

	// 零填充布局保证字典序即时间序
	sort.Slice(files, func(i, j int) bool { return files[i].key < files[j].key })

	excess := len(files) - maxOld
	if excess <= 0 {
		return nil, nil
	}

	var deleted []string
	var errs []error
	for _, f := range files[:excess] {
		path := filepath.Join(folder, f.name)
		if err := os.Remove(path); err != nil {
			errs = append(errs, fmt.Errorf("xrotate: remove stale log %s: %w", path, err))
			continue
		}
		deleted = append(deleted, path)
	}
	return deleted, errors.Join(errs...)
}
