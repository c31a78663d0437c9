package xrotate

import (
	"fmt"
	"os"
	"sync"
	"sync/atomic"
	"time"

	retry "github.com/avast/retry-go/v5"
	"golang.org/x/sync/singleflight"

	"github.com/zDonik1/tgt/pkg/util/xfile"
)

// 周期轮转器默认配置值
const (
	// DefaultFrequency 默认轮转频率
	DefaultFrequency = FrequencyDaily

	// DefaultMaxOldFiles 默认保留的历史文件数量
	DefaultMaxOldFiles = 7

	// DefaultOpenAttempts 默认打开文件的尝试次数（1 表示不重试）
	DefaultOpenAttempts = 1

	// maxOpenAttempts 打开文件的尝试次数上限
	maxOpenAttempts = 3

	// openRetryDelay 打开失败后的重试间隔
	openRetryDelay = 10 * time.Millisecond

	// logFilePerm 日志文件权限
	logFilePerm = 0o644
)

// periodicConfig 周期轮转器配置
type periodicConfig struct {
	// Frequency 轮转频率
	// 默认值 DefaultFrequency
	Frequency Frequency

	// MaxOldFiles 保留的历史文件数量（不含当前活跃文件）
	// 0 表示除活跃文件外不保留任何历史
	// 默认值 DefaultMaxOldFiles，必须 >= 0
	MaxOldFiles int

	// OpenAttempts 打开/轮转时的文件打开尝试次数
	// 默认值 DefaultOpenAttempts，范围 1~3
	OpenAttempts int

	// Now 时钟函数，仅用于测试注入
	Now func() time.Time

	// OnError 可选的错误回调函数
	//
	// 当异步清理等内部操作失败时调用。默认为 nil（静默忽略）。
	//
	// 安全约束：回调函数不得向同一 Rotator 写入数据，否则会导致递归死锁。
	// 推荐输出到 os.Stderr 或独立的日志通道。
	OnError func(error)
}

// PeriodicOption 周期轮转器配置选项函数
type PeriodicOption func(*periodicConfig)

// WithFrequency 设置轮转频率
func WithFrequency(f Frequency) PeriodicOption {
	return func(c *periodicConfig) {
		c.Frequency = f
	}
}

// WithMaxOldFiles 设置保留的历史文件数量（不含当前活跃文件）
func WithMaxOldFiles(n int) PeriodicOption {
	return func(c *periodicConfig) {
		c.MaxOldFiles = n
	}
}

// WithOpenAttempts 设置打开日志文件的尝试次数
//
// 用于吸收瞬时文件系统错误，范围 1~3（1 表示不重试）。
func WithOpenAttempts(n int) PeriodicOption {
	return func(c *periodicConfig) {
		c.OpenAttempts = n
	}
}

// WithNow 注入时钟函数
//
// 仅用于测试，生产代码不应使用。
func WithNow(now func() time.Time) PeriodicOption {
	return func(c *periodicConfig) {
		c.Now = now
	}
}

// WithOnError 设置错误回调函数
//
// 用于接收异步清理等内部操作的错误通知。
//
// 设计决策: 不使用日志库记录内部错误，避免 Rotator 作为日志输出目标时
// 产生递归写入（写失败 → 打日志 → 再写失败 → 栈溢出/死锁）。
// 回调函数不得向同一 Rotator 写入数据。
func WithOnError(fn func(error)) PeriodicOption {
	return func(c *periodicConfig) {
		c.OnError = fn
	}
}

// periodicRotator 按日历周期轮转的 Rotator 实现
//
// 核心不变量：
//   - 任一时刻最多打开一个文件句柄
//   - 检查 key → 关旧 → 开新 → 触发清理 构成唯一的临界区，由 mu 串行化
//   - 文件始终以追加模式打开，进程重启不会截断同周期的既有数据
//   - 活跃周期 key 单调不减：时钟回拨时沿用已见过的最大 key
type periodicRotator struct {
	folder string
	base   string

	freq         Frequency
	maxOld       int
	openAttempts int
	now          func() time.Time
	onError      func(error)

	mu   sync.Mutex
	file *os.File
	key  PeriodKey

	closed atomic.Bool

	// 设计决策: 清理在轮转后异步执行，不阻塞对新文件的写入；
	// singleflight 按目录去重，保证同一目录同时只有一个清理过程。
	cleanup singleflight.Group
	wg      sync.WaitGroup
}

// NewPeriodic 创建按日历周期轮转的日志轮转器
//
// 参数:
//   - folder: 日志目录（不存在时自动创建，权限 0750）
//   - base: 日志文件基础名（如 "tgt.log"）
//   - opts: 可选配置项
//
// 文件按 [FilePath] 的命名约定落盘；每次写入都会用写入时刻的周期 key
// 与当前 key 比较，key 变化即触发轮转并随后异步清理历史文件。
//
// 首次写入（或手动 Rotate）才会真正打开文件；打开失败时错误返回给
// 触发写入的调用方，轮转器停留在原状态，后续写入可以重试。
func NewPeriodic(folder, base string, opts ...PeriodicOption) (Rotator, error) {
	if folder == "" || base == "" {
		return nil, ErrEmptyFilename
	}

	cfg := periodicConfig{
		Frequency:    DefaultFrequency,
		MaxOldFiles:  DefaultMaxOldFiles,
		OpenAttempts: DefaultOpenAttempts,
		Now:          time.Now,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if err := validatePeriodicConfig(&cfg); err != nil {
		return nil, err
	}

	// 安全检查和路径规范化（folder+base 拼接后整体校验）
	safePath, err := xfile.SanitizePath(FilePath(folder, base, ""))
	if err != nil {
		return nil, err
	}
	if err := xfile.EnsureDir(safePath); err != nil {
		return nil, err
	}

	return &periodicRotator{
		folder:       folder,
		base:         base,
		freq:         cfg.Frequency,
		maxOld:       cfg.MaxOldFiles,
		openAttempts: cfg.OpenAttempts,
		now:          cfg.Now,
		onError:      cfg.OnError,
	}, nil
}

// validatePeriodicConfig 验证周期轮转器配置
func validatePeriodicConfig(cfg *periodicConfig) error {
	if !cfg.Frequency.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidFrequency, cfg.Frequency)
	}
	if cfg.MaxOldFiles < 0 {
		return fmt.Errorf("%w: got %d, want >= 0", ErrInvalidMaxOldFiles, cfg.MaxOldFiles)
	}
	if cfg.OpenAttempts < 1 {
		cfg.OpenAttempts = DefaultOpenAttempts
	}
	if cfg.OpenAttempts > maxOpenAttempts {
		cfg.OpenAttempts = maxOpenAttempts
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return nil
}

// Write 实现 io.Writer 接口
//
// 每次写入都判断当前周期：key 未变时直接追加；key 变化时在同一临界区内
// 完成换文件，然后将本次写入落到新文件。
func (r *periodicRotator) Write(p []byte) (n int, err error) {
	if r.closed.Load() {
		return 0, ErrClosed
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// Close 可能在拿锁前完成，锁内复查保证 ErrClosed 契约
	if r.closed.Load() {
		return 0, ErrClosed
	}

	key := r.freq.KeyAt(r.now())
	// 时钟回拨时不回退到旧文件：沿用已见过的最大 key
	if r.file != nil && key < r.key {
		key = r.key
	}

	if r.file == nil || key != r.key {
		if err := r.swapLocked(key); err != nil {
			return 0, err
		}
	}

	return r.file.Write(p)
}

// swapLocked 切换到 key 对应的日志文件，调用方必须持有 mu
//
// 设计决策: 先开新文件、成功后再关旧文件。若打开失败，旧句柄保持有效，
// 轮转器停留在上一状态（写入仍落到旧周期文件），调用方可稍后重试；
// 避免了"先关后开"在打开失败时留下的无句柄窗口。
func (r *periodicRotator) swapLocked(key PeriodKey) error {
	path := FilePath(r.folder, r.base, key)

	f, err := r.openFile(path)
	if err != nil {
		return fmt.Errorf("xrotate: open log file %s: %w", path, err)
	}

	if r.file != nil {
		// 旧文件关闭失败不阻止轮转，新文件已经就绪
		r.reportError(r.closeFile(r.file))
	}
	r.file = f
	r.key = key

	// 新周期开始后异步清理历史文件
	r.enforceAsync(key)
	return nil
}

// openFile 以追加模式打开日志文件，带有界重试
//
// 追加而非截断：进程崩溃后重启，同一周期的既有日志不能丢。
func (r *periodicRotator) openFile(path string) (*os.File, error) {
	var f *os.File
	err := retry.New(
		retry.Attempts(uint(r.openAttempts)),
		retry.Delay(openRetryDelay),
		retry.DelayType(retry.FixedDelay),
		retry.LastErrorOnly(true),
	).Do(func() error {
		var err error
		//#nosec G304 -- 路径由配置拼接并经 SanitizePath 校验
		f, err = os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, logFilePerm)
		return err
	})
	if err != nil {
		return nil, err
	}
	return f, nil
}

// closeFile 刷盘并关闭文件句柄
func (r *periodicRotator) closeFile(f *os.File) error {
	// Sync 失败仍要尝试 Close，避免句柄泄漏
	syncErr := f.Sync()
	closeErr := f.Close()
	if syncErr != nil {
		return syncErr
	}
	return closeErr
}

// enforceAsync 异步执行历史文件清理
//
// 清理只删除整个文件，从不修改文件内容；失败通过 OnError 上报，
// 不影响触发它的那次写入（新文件此时已经打开成功）。
func (r *periodicRotator) enforceAsync(active PeriodKey) {
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		_, err, _ := r.cleanup.Do(r.folder, func() (any, error) {
			_, err := EnforceRetention(r.folder, r.base, r.freq, r.maxOld, active)
			return nil, err
		})
		r.reportError(err)
	}()
}

// reportError 通过回调上报内部错误
//
// 回调 panic 被 recover 隔离，防止错误通知反向中断业务主流程。
func (r *periodicRotator) reportError(err error) {
	if err != nil && r.onError != nil {
		defer func() { recover() }() //nolint:errcheck // recover 返回值无需检查
		r.onError(err)
	}
}

// Rotate 手动触发轮转
//
// 强制关闭当前文件并按当前周期 key 重新打开（追加模式），随后触发清理。
// 周期内的手动轮转不会改变目标文件名，主要用于外部工具移走文件后重建句柄。
func (r *periodicRotator) Rotate() error {
	if r.closed.Load() {
		return ErrClosed
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed.Load() {
		return ErrClosed
	}

	key := r.freq.KeyAt(r.now())
	if r.file != nil {
		if key < r.key {
			key = r.key
		}
		r.reportError(r.closeFile(r.file))
		r.file = nil
	}
	return r.swapLocked(key)
}

// Close 实现 io.Closer 接口
//
// 刷盘并释放当前句柄，等待在途的异步清理完成。
// 关闭后调用 Write 或 Rotate 将返回 [ErrClosed]，重复调用 Close 也返回
// [ErrClosed]——这是显式选择：不提供关闭后静默重开。
func (r *periodicRotator) Close() error {
	if r.closed.Swap(true) {
		return ErrClosed
	}

	r.mu.Lock()
	f := r.file
	r.file = nil
	r.mu.Unlock()

	// 等待在途清理，避免 goroutine 泄漏
	r.wg.Wait()

	if f != nil {
		return r.closeFile(f)
	}
	return nil
}
