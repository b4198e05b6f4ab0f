// Package auth は外部IDサービスによる認証情報の検証を提供する。
package auth

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

// ErrInvalidToken はトークンがIDサービスに拒否されたことを示す。
// 呼び出し側はこのエラーを401 Unauthorizedにマッピングする。
var ErrInvalidToken = errors.New("invalid or expired token")

// TokenVerifier はベアラートークンの検証インターフェース。
// 検証に成功した場合、トークンの発行対象ユーザーIDを返す。
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (string, error)
}

// HTTPVerifierConfig はHTTPVerifierの設定。
type HTTPVerifierConfig struct {
	// VerifyURL はIDサービスのトークン検証エンドポイント。
	VerifyURL string
	// Timeout は検証リクエストのタイムアウト。ゼロ値の場合は5秒。
	Timeout time.Duration
}

// HTTPVerifier は外部IDサービスのHTTP APIでトークンを検証する。
// 検証エンドポイントに {"token": "..."} をPOSTし、
// 200応答のボディから認証サブジェクトIDを取り出す。
type HTTPVerifier struct {
	config HTTPVerifierConfig
	client *http.Client
}

// NewHTTPVerifier はHTTPVerifierを生成する。
func NewHTTPVerifier(config HTTPVerifierConfig) *HTTPVerifier {
	if config.Timeout == 0 {
		config.Timeout = 5 * time.Second
	}
	return &HTTPVerifier{
		config: config,
		client: &http.Client{Timeout: config.Timeout},
	}
}

// verifyRequest はIDサービスへの検証リクエストボディ。
type verifyRequest struct {
	Token string `json:"token"`
}

// verifyResponse はIDサービスからの検証応答ボディ。
type verifyResponse struct {
	UserID string `json:"userId"`
}

// Verify はトークンをIDサービスで検証し、ユーザーIDを返す。
// IDサービスが401/403を返した場合はErrInvalidTokenを返す。
// それ以外の失敗（接続不可、5xx等）は通常のエラーとして返し、
// 呼び出し側で内部エラーと認証エラーを区別できるようにする。
func (v *HTTPVerifier) Verify(ctx context.Context, token string) (string, error) {
	body, err := json.Marshal(verifyRequest{Token: token})
	if err != nil {
		return "", fmt.Errorf("failed to encode verify request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.config.VerifyURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create verify request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := v.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to call identity service: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		// fall through
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return "", ErrInvalidToken
	default:
		// レスポンスボディは診断用に読み捨てる
		io.Copy(io.Discard, io.LimitReader(resp.Body, 1024))
		return "", fmt.Errorf("identity service returned status %d", resp.StatusCode)
	}

	var vr verifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&vr); err != nil {
		return "", fmt.Errorf("failed to decode verify response: %w", err)
	}
	if vr.UserID == "" {
		return "", fmt.Errorf("identity service returned empty user ID")
	}

	return vr.UserID, nil
}

// compile-time interface check
var _ TokenVerifier = (*HTTPVerifier)(nil)
