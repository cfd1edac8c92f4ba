// Package gate 实现密码门：提交密码、远程校验、超时和自动提交
package gate

import (
	"context"
	"errors"
	"log"
	"sync/atomic"

	"github.com/digitorumflex/folio/pkg/config"
	"github.com/digitorumflex/folio/pkg/game"
)

// State 密码门状态
type State int

const (
	StateIdle State = iota
	StatePending
	StateGranted
	StateDenied
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePending:
		return "pending"
	case StateGranted:
		return "granted"
	case StateDenied:
		return "denied"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// 显示在输入框下方的提示
const (
	MessageFailed = "error, try again"
	MessageDenied = "You don't have access"
)

// Callbacks 状态变化时的回调，均在 Update 所在的 goroutine 上调用
type Callbacks struct {
	OnShake   func()          // 每次输入
	OnGranted func()          // 校验通过
	OnDenied  func()          // 密码错误
	OnFailed  func(err error) // 网络错误、响应错误或超时
}

type result struct {
	attempt uint64
	resp    Response
	err     error
}

// Controller 密码门控制器
//
// 每次提交启动一个请求 goroutine 和一个超时定时器，请求结果通过
// 带缓冲的 channel 送回，由 Update 在 UI goroutine 上处理。只有当前
// 尝试且仍处于 StatePending 时结果才生效，超时后到达的响应被忽略。
type Controller struct {
	verifier  Verifier
	scheduler *game.Scheduler
	cfg       config.GateConfig
	callbacks Callbacks

	state   State
	message string

	attempt       uint64
	cancel        context.CancelFunc
	timeoutTimer  game.TimerID
	debounceTimer game.TimerID
	results       chan result

	inFlight atomic.Int32
}

// NewController 创建密码门控制器
func NewController(verifier Verifier, scheduler *game.Scheduler, cfg config.GateConfig, callbacks Callbacks) *Controller {
	return &Controller{
		verifier:  verifier,
		scheduler: scheduler,
		cfg:       cfg,
		callbacks: callbacks,
		results:   make(chan result, 4),
	}
}

// State 当前状态
func (c *Controller) State() State {
	return c.state
}

// Message 当前提示信息
func (c *Controller) Message() string {
	return c.message
}

// Attempt 当前尝试的序号（每次非空提交加一）
func (c *Controller) Attempt() uint64 {
	return c.attempt
}

// InFlight 正在运行的请求 goroutine 数量
func (c *Controller) InFlight() int {
	return int(c.inFlight.Load())
}

// OnInput 处理输入框文本变化
// 触发抖动，取消未到期的自动提交；长度等于 AutoSubmitLength 时在防抖延迟后提交
func (c *Controller) OnInput(text string) {
	if c.state == StateGranted {
		return
	}
	if c.callbacks.OnShake != nil {
		c.callbacks.OnShake()
	}

	c.scheduler.Cancel(c.debounceTimer)
	if c.cfg.AutoSubmitLength > 0 && len([]rune(text)) == c.cfg.AutoSubmitLength {
		c.debounceTimer = c.scheduler.After(c.cfg.Debounce.Std(), func() {
			c.Submit(text)
		})
	}
}

// Submit 提交密码
// 空密码只清空提示；否则取消上一次的超时和请求，开始新的尝试
func (c *Controller) Submit(password string) {
	if c.state == StateGranted {
		return
	}
	if password == "" {
		c.message = ""
		return
	}

	c.abort()
	c.attempt++
	attempt := c.attempt
	c.state = StatePending
	c.message = ""

	ctx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel

	c.timeoutTimer = c.scheduler.After(c.cfg.Timeout.Std(), func() {
		if c.attempt != attempt || c.state != StatePending {
			return
		}
		log.Printf("[GateController] 第 %d 次校验超时", attempt)
		c.abort()
		c.fail(ErrTimeout)
	})

	log.Printf("[GateController] 开始第 %d 次校验", attempt)
	c.inFlight.Add(1)
	go func() {
		defer c.inFlight.Add(-1)
		resp, err := c.verifier.Verify(ctx, password)
		select {
		case c.results <- result{attempt: attempt, resp: resp, err: err}:
		case <-ctx.Done():
		}
	}()
}

// abort 取消当前的超时定时器和请求
func (c *Controller) abort() {
	c.scheduler.Cancel(c.timeoutTimer)
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
}

// Update 处理已到达的校验结果，必须在 UI goroutine 上调用
func (c *Controller) Update() {
	for {
		select {
		case r := <-c.results:
			c.settle(r)
		default:
			return
		}
	}
}

func (c *Controller) settle(r result) {
	if r.attempt != c.attempt || c.state != StatePending {
		log.Printf("[GateController] 忽略过期的响应 (attempt=%d, current=%d, state=%v)", r.attempt, c.attempt, c.state)
		return
	}
	c.abort()

	switch {
	case r.err != nil:
		c.fail(r.err)
	case r.resp.Timestamp == float64(c.cfg.AccessToken):
		log.Printf("[GateController] 校验通过")
		c.state = StateGranted
		c.message = ""
		c.scheduler.Cancel(c.debounceTimer)
		if c.callbacks.OnGranted != nil {
			c.callbacks.OnGranted()
		}
	default:
		log.Printf("[GateController] 校验未通过")
		c.state = StateDenied
		c.message = MessageDenied
		if c.callbacks.OnDenied != nil {
			c.callbacks.OnDenied()
		}
	}
}

func (c *Controller) fail(err error) {
	if !errors.Is(err, ErrTimeout) {
		log.Printf("[GateController] 校验失败: %v", err)
	}
	c.state = StateFailed
	c.message = MessageFailed
	if c.callbacks.OnFailed != nil {
		c.callbacks.OnFailed(err)
	}
}
