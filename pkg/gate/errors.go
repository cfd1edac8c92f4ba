package gate

import "errors"

// 校验失败的原因，均导致 StateFailed
var (
	// ErrTimeout 在超时前没有收到响应
	ErrTimeout = errors.New("verify timed out")
	// ErrTransport 请求无法完成或返回非 2xx 状态
	ErrTransport = errors.New("verify transport failed")
	// ErrBadResponse 响应体不是预期的 JSON
	ErrBadResponse = errors.New("verify response malformed")
)
