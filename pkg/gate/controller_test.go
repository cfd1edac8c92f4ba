package gate

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/digitorumflex/folio/pkg/config"
	"github.com/digitorumflex/folio/pkg/game"
)

const frameTime = 1.0 / 60.0

type reply struct {
	resp Response
	err  error
}

type call struct {
	ctx      context.Context
	password string
	reply    chan reply
}

// fakeVerifier 每次调用阻塞到测试给出回复或 context 取消
type fakeVerifier struct {
	calls chan *call
}

func newFakeVerifier() *fakeVerifier {
	return &fakeVerifier{calls: make(chan *call, 16)}
}

func (f *fakeVerifier) Verify(ctx context.Context, password string) (Response, error) {
	c := &call{ctx: ctx, password: password, reply: make(chan reply, 1)}
	f.calls <- c
	select {
	case r := <-c.reply:
		return r.resp, r.err
	case <-ctx.Done():
		return Response{}, ctx.Err()
	}
}

func (f *fakeVerifier) next(t *testing.T) *call {
	t.Helper()
	select {
	case c := <-f.calls:
		return c
	case <-time.After(time.Second):
		t.Fatal("等待校验请求超时")
		return nil
	}
}

func (f *fakeVerifier) noCall(t *testing.T) {
	t.Helper()
	select {
	case c := <-f.calls:
		t.Fatalf("不应发出请求，实际收到 %q", c.password)
	case <-time.After(20 * time.Millisecond):
	}
}

type gateFixture struct {
	ctrl      *Controller
	verifier  *fakeVerifier
	scheduler *game.Scheduler
	cfg       config.GateConfig

	shakes  int
	granted int
	denied  int
	failed  []error
}

func newGateFixture() *gateFixture {
	f := &gateFixture{
		verifier:  newFakeVerifier(),
		scheduler: game.NewScheduler(),
		cfg:       config.DefaultPortfolioConfig().Gate,
	}
	f.ctrl = NewController(f.verifier, f.scheduler, f.cfg, Callbacks{
		OnShake:   func() { f.shakes++ },
		OnGranted: func() { f.granted++ },
		OnDenied:  func() { f.denied++ },
		OnFailed:  func(err error) { f.failed = append(f.failed, err) },
	})
	return f
}

func (f *gateFixture) advance(d time.Duration) {
	ticks := int(d.Seconds()/frameTime + 0.5)
	for i := 0; i < ticks; i++ {
		f.scheduler.Update(frameTime)
		f.ctrl.Update()
	}
}

// settle 等待当前尝试离开 StatePending
func (f *gateFixture) settle(t *testing.T) {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		f.ctrl.Update()
		if f.ctrl.State() != StatePending {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("等待校验结果超时")
}

// drain 等待所有请求 goroutine 退出并处理剩余结果
func (f *gateFixture) drain(t *testing.T) {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for f.ctrl.InFlight() > 0 {
		if time.Now().After(deadline) {
			t.Fatal("请求 goroutine 未退出")
		}
		time.Sleep(time.Millisecond)
	}
	f.ctrl.Update()
}

func (f *gateFixture) token() Response {
	return Response{Timestamp: float64(f.cfg.AccessToken)}
}

func TestController_Outcomes(t *testing.T) {
	tests := []struct {
		name        string
		reply       func(f *gateFixture) reply
		wantState   State
		wantMessage string
	}{
		{"通过", func(f *gateFixture) reply { return reply{resp: f.token()} }, StateGranted, ""},
		{"密码错误", func(f *gateFixture) reply { return reply{resp: Response{Timestamp: 42}} }, StateDenied, MessageDenied},
		{"网络错误", func(f *gateFixture) reply { return reply{err: ErrTransport} }, StateFailed, MessageFailed},
		{"响应错误", func(f *gateFixture) reply { return reply{err: ErrBadResponse} }, StateFailed, MessageFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newGateFixture()
			f.ctrl.Submit("secret")
			if f.ctrl.State() != StatePending {
				t.Fatalf("提交后应为 pending，实际 %v", f.ctrl.State())
			}

			c := f.verifier.next(t)
			if c.password != "secret" {
				t.Errorf("password = %q", c.password)
			}
			c.reply <- tt.reply(f)
			f.settle(t)

			if f.ctrl.State() != tt.wantState || f.ctrl.Message() != tt.wantMessage {
				t.Errorf("state=%v message=%q, 期望 %v %q", f.ctrl.State(), f.ctrl.Message(), tt.wantState, tt.wantMessage)
			}
			if f.scheduler.Pending() != 0 {
				t.Errorf("结果到达后超时定时器应被取消，剩余 %d", f.scheduler.Pending())
			}
		})
	}
}

func TestController_EmptySubmit(t *testing.T) {
	f := newGateFixture()
	f.ctrl.Submit("wrong")
	f.verifier.next(t).reply <- reply{resp: Response{Timestamp: 1}}
	f.settle(t)

	f.ctrl.Submit("")
	if f.ctrl.Message() != "" {
		t.Errorf("空提交应清空提示，实际 %q", f.ctrl.Message())
	}
	if f.scheduler.Pending() != 0 {
		t.Error("空提交不应启动定时器")
	}
	f.verifier.noCall(t)
	if f.ctrl.Attempt() != 1 {
		t.Errorf("空提交不应增加尝试次数，实际 %d", f.ctrl.Attempt())
	}
}

func TestController_SupersededAttempt(t *testing.T) {
	f := newGateFixture()

	f.ctrl.Submit("first")
	first := f.verifier.next(t)
	f.ctrl.Submit("second")
	second := f.verifier.next(t)

	select {
	case <-first.ctx.Done():
	case <-time.After(time.Second):
		t.Fatal("第二次提交应取消第一次请求")
	}
	if f.scheduler.Pending() != 1 {
		t.Errorf("只应有一个超时定时器，实际 %d", f.scheduler.Pending())
	}

	second.reply <- reply{resp: Response{Timestamp: 7}}
	f.settle(t)
	first.reply <- reply{resp: f.token()}
	f.drain(t)

	if f.ctrl.State() != StateDenied {
		t.Errorf("旧请求的结果不应生效，state=%v", f.ctrl.State())
	}
	if f.granted != 0 || f.denied != 1 {
		t.Errorf("granted=%d denied=%d", f.granted, f.denied)
	}
}

func TestController_TimeoutIgnoresLateResponse(t *testing.T) {
	f := newGateFixture()
	f.ctrl.Submit("slow")
	c := f.verifier.next(t)

	f.advance(f.cfg.Timeout.Std() - time.Second)
	if f.ctrl.State() != StatePending {
		t.Fatalf("超时前应保持 pending，实际 %v", f.ctrl.State())
	}

	f.advance(time.Second)
	if f.ctrl.State() != StateFailed || f.ctrl.Message() != MessageFailed {
		t.Fatalf("超时后 state=%v message=%q", f.ctrl.State(), f.ctrl.Message())
	}
	if len(f.failed) != 1 || !errors.Is(f.failed[0], ErrTimeout) {
		t.Errorf("OnFailed 应收到 ErrTimeout，实际 %v", f.failed)
	}

	select {
	case <-c.ctx.Done():
	case <-time.After(time.Second):
		t.Fatal("超时应取消请求")
	}

	c.reply <- reply{resp: f.token()}
	f.drain(t)
	if f.ctrl.State() != StateFailed || f.granted != 0 {
		t.Errorf("超时后到达的响应应被忽略，state=%v granted=%d", f.ctrl.State(), f.granted)
	}
}

func TestController_GrantedIsFinal(t *testing.T) {
	f := newGateFixture()
	f.ctrl.Submit("right")
	f.verifier.next(t).reply <- reply{resp: f.token()}
	f.settle(t)

	if f.granted != 1 {
		t.Fatalf("OnGranted 应触发一次，实际 %d", f.granted)
	}

	f.ctrl.Submit("again")
	f.ctrl.OnInput("abcdefgh")
	f.advance(time.Second)
	f.verifier.noCall(t)

	if f.granted != 1 || f.ctrl.Attempt() != 1 || f.shakes != 0 {
		t.Errorf("通过后应忽略输入和提交: granted=%d attempt=%d shakes=%d", f.granted, f.ctrl.Attempt(), f.shakes)
	}
}

func TestController_AutoSubmit(t *testing.T) {
	debounce := config.DefaultPortfolioConfig().Gate.Debounce.Std()

	t.Run("八个字符防抖后提交一次", func(t *testing.T) {
		f := newGateFixture()
		f.ctrl.OnInput("1234567")
		f.ctrl.OnInput("12345678")
		if f.shakes != 2 {
			t.Errorf("每次输入都应抖动，实际 %d", f.shakes)
		}

		f.advance(debounce - 100*time.Millisecond)
		f.verifier.noCall(t)

		f.advance(100 * time.Millisecond)
		if c := f.verifier.next(t); c.password != "12345678" {
			t.Errorf("password = %q", c.password)
		}
		f.verifier.noCall(t)
		if f.ctrl.Attempt() != 1 {
			t.Errorf("应只提交一次，实际 %d", f.ctrl.Attempt())
		}
	})

	t.Run("继续输入取消自动提交", func(t *testing.T) {
		f := newGateFixture()
		f.ctrl.OnInput("12345678")
		f.advance(debounce / 2)
		f.ctrl.OnInput("123456789")
		f.advance(2 * debounce)
		f.verifier.noCall(t)
	})

	t.Run("重新输入到八个字符重置防抖", func(t *testing.T) {
		f := newGateFixture()
		f.ctrl.OnInput("12345678")
		f.advance(debounce / 2)
		f.ctrl.OnInput("1234567")
		f.ctrl.OnInput("1234567x")
		f.advance(debounce)
		if c := f.verifier.next(t); c.password != "1234567x" {
			t.Errorf("password = %q", c.password)
		}
		f.verifier.noCall(t)
	})
}

func TestState_String(t *testing.T) {
	tests := map[State]string{
		StateIdle:    "idle",
		StatePending: "pending",
		StateGranted: "granted",
		StateDenied:  "denied",
		StateFailed:  "failed",
		State(99):    "unknown",
	}
	for state, want := range tests {
		if got := state.String(); got != want {
			t.Errorf("%d.String() = %q, 期望 %q", int(state), got, want)
		}
	}
}
