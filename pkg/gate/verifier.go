package gate

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Response 校验接口的响应
type Response struct {
	Timestamp float64 `json:"timestamp"`
}

// Verifier 远程密码校验
type Verifier interface {
	Verify(ctx context.Context, password string) (Response, error)
}

// HTTPVerifier 通过 POST JSON 校验密码
type HTTPVerifier struct {
	Endpoint string
	Client   *http.Client
}

// NewHTTPVerifier 创建 HTTP 校验器
// timeout 作用于整个请求，为 0 时不设置客户端超时
func NewHTTPVerifier(endpoint string, timeout time.Duration) *HTTPVerifier {
	return &HTTPVerifier{
		Endpoint: endpoint,
		Client:   &http.Client{Timeout: timeout},
	}
}

type verifyRequest struct {
	Password string `json:"password"`
}

// Verify 发送 {"password": ...} 并解析 {"timestamp": number}
func (v *HTTPVerifier) Verify(ctx context.Context, password string) (Response, error) {
	body, err := json.Marshal(verifyRequest{Password: password})
	if err != nil {
		return Response{}, fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.Endpoint, bytes.NewReader(body))
	if err != nil {
		return Response{}, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	client := v.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || isTimeout(err) {
			return Response{}, fmt.Errorf("%w: %v", ErrTimeout, err)
		}
		return Response{}, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		io.Copy(io.Discard, resp.Body)
		return Response{}, fmt.Errorf("%w: status %d", ErrTransport, resp.StatusCode)
	}

	var out Response
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return Response{}, fmt.Errorf("%w: %v", ErrBadResponse, err)
	}
	return out, nil
}

func isTimeout(err error) bool {
	var te interface{ Timeout() bool }
	return errors.As(err, &te) && te.Timeout()
}
