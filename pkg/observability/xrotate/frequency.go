package xrotate

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// Frequency 日志轮转频率
//
// 按日历周期切换活跃日志文件：分钟、小时、天，或从不轮转。
type Frequency string

// 支持的轮转频率。
const (
	// FrequencyNever 从不轮转，始终写入同一个文件
	FrequencyNever Frequency = "never"

	// FrequencyMinutely 每分钟轮转
	FrequencyMinutely Frequency = "minutely"

	// FrequencyHourly 每小时轮转
	FrequencyHourly Frequency = "hourly"

	// FrequencyDaily 每天轮转（默认）
	FrequencyDaily Frequency = "daily"
)

// ParseFrequency 解析字符串为轮转频率
// 支持 never/minutely/hourly/daily（大小写不敏感），输入会自动 TrimSpace
func ParseFrequency(s string) (Frequency, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "never":
		return FrequencyNever, nil
	case "minutely":
		return FrequencyMinutely, nil
	case "hourly":
		return FrequencyHourly, nil
	case "daily":
		return FrequencyDaily, nil
	default:
		return FrequencyDaily, fmt.Errorf("%w: %q", ErrInvalidFrequency, s)
	}
}

// String 返回频率的字符串表示
func (f Frequency) String() string {
	return string(f)
}

// IsValid 检查频率是否是受支持的值
func (f Frequency) IsValid() bool {
	switch f {
	case FrequencyNever, FrequencyMinutely, FrequencyHourly, FrequencyDaily:
		return true
	default:
		return false
	}
}

// MarshalText 实现 encoding.TextMarshaler 接口
func (f Frequency) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// UnmarshalText 实现 encoding.TextUnmarshaler 接口
//
// 支持从配置文件直接反序列化轮转频率。
func (f *Frequency) UnmarshalText(data []byte) error {
	parsed, err := ParseFrequency(string(data))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// layout 返回周期后缀的时间布局
// FrequencyNever 返回空串（无后缀）
func (f Frequency) layout() string {
	switch f {
	case FrequencyMinutely:
		return "2006-01-02-15-04"
	case FrequencyHourly:
		return "2006-01-02-15"
	case FrequencyDaily:
		return "2006-01-02"
	default:
		return ""
	}
}

// PeriodKey 轮转周期标识
//
// 由时间戳按频率截断得到的不透明 token：同一周期内的所有时间戳映射到
// 同一个 key，相邻周期的 key 不同。后缀使用零填充的固定布局，
// 因此字符串字典序与时间先后序一致，可直接比较新旧。
//
// FrequencyNever 的 key 恒为空串。
type PeriodKey string

// KeyAt 计算时间戳所属周期的 key
//
// 统一按 UTC 截断，避免夏令时等本地时区歧义；相同输入恒产出相同 key。
func (f Frequency) KeyAt(t time.Time) PeriodKey {
	layout := f.layout()
	if layout == "" {
		return ""
	}
	return PeriodKey(t.UTC().Format(layout))
}

// FilePath 计算周期 key 对应的日志文件路径
//
// 命名约定：
//   - never:    <folder>/<base>
//   - 其他频率:  <folder>/<base>.<key>（如 tgt.log.2024-03-09）
func FilePath(folder, base string, key PeriodKey) string {
	if key == "" {
		return filepath.Join(folder, base)
	}
	return filepath.Join(folder, base+"."+string(key))
}

// parseKey 严格解析周期后缀
//
// 后缀必须与布局完全往返一致（零填充），"2024-3-9" 之类的宽松写法
// 不会被认作本约定生成的文件。
func (f Frequency) parseKey(suffix string) (PeriodKey, bool) {
	layout := f.layout()
	if layout == "" || len(suffix) != len(layout) {
		return "", false
	}
	t, err := time.ParseInLocation(layout, suffix, time.UTC)
	if err != nil {
		return "", false
	}
	if t.Format(layout) != suffix {
		return "", false
	}
	return PeriodKey(suffix), true
}

// parseRotatedName 判断目录项是否属于 base 的轮转文件集
// 返回其周期 key
func parseRotatedName(name, base string, f Frequency) (PeriodKey, bool) {
	rest, ok := strings.CutPrefix(name, base+".")
	if !ok {
		return "", false
	}
	return f.parseKey(rest)
}
