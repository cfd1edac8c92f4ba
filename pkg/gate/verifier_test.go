package gate

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestHTTPVerifier_Verify(t *testing.T) {
	tests := []struct {
		name      string
		handler   http.HandlerFunc
		timeout   time.Duration
		wantStamp float64
		wantErr   error
	}{
		{
			name: "正常响应",
			handler: func(w http.ResponseWriter, r *http.Request) {
				var req verifyRequest
				if r.Method != http.MethodPost || r.Header.Get("Content-Type") != "application/json" {
					w.WriteHeader(http.StatusBadRequest)
					return
				}
				if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Password != "hunter22" {
					w.WriteHeader(http.StatusBadRequest)
					return
				}
				w.Write([]byte(`{"timestamp": 1749182760}`))
			},
			wantStamp: 1749182760,
		},
		{
			name: "缺少 timestamp",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{}`))
			},
			wantStamp: 0,
		},
		{
			name: "非 2xx 状态",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
			wantErr: ErrTransport,
		},
		{
			name: "响应不是 JSON",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`<html>`))
			},
			wantErr: ErrBadResponse,
		},
		{
			name: "客户端超时",
			handler: func(w http.ResponseWriter, r *http.Request) {
				select {
				case <-r.Context().Done():
				case <-time.After(2 * time.Second):
				}
			},
			timeout: 20 * time.Millisecond,
			wantErr: ErrTimeout,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			resp, err := NewHTTPVerifier(server.URL, tt.timeout).Verify(context.Background(), "hunter22")
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("err = %v, 期望 %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("意外错误: %v", err)
			}
			if resp.Timestamp != tt.wantStamp {
				t.Errorf("Timestamp = %v, 期望 %v", resp.Timestamp, tt.wantStamp)
			}
		})
	}
}

func TestHTTPVerifier_ConnectionRefused(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	_, err := NewHTTPVerifier(url, time.Second).Verify(context.Background(), "x")
	if !errors.Is(err, ErrTransport) {
		t.Errorf("err = %v, 期望 ErrTransport", err)
	}
}

func TestHTTPVerifier_ContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := NewHTTPVerifier(server.URL, 0).Verify(ctx, "x"); err == nil {
		t.Error("已取消的 context 应返回错误")
	}
}
