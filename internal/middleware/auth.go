// Package middleware はHTTPミドルウェアを提供する。
package middleware

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/forwardhq/forward/internal/auth"
	"github.com/forwardhq/forward/internal/model"
)

// contextKey はコンテキストに値を格納するための型安全なキー。
type contextKey string

// userIDContextKey はリクエストコンテキストにユーザーIDを格納するためのキー。
var userIDContextKey = contextKey("user_id")

// AuthFailureRecorder は認証失敗のメトリクス記録インターフェース。
type AuthFailureRecorder interface {
	RecordAuthFailure()
}

// NewAuthMiddleware はAuthorizationヘッダーのベアラートークンを
// 外部IDサービスで検証するミドルウェアを返す。
// 検証済みユーザーIDをリクエストコンテキストに注入する。
// ヘッダーが欠落・不正・検証失敗のリクエストには401 Unauthorizedを返す。
// ビジネスロジックに到達する前に認証を確定させる。
func NewAuthMiddleware(verifier auth.TokenVerifier, recorder AuthFailureRecorder) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// 1. AuthorizationヘッダーからBearerトークンを取り出す
			token, err := extractBearerToken(r)
			if err != nil {
				if recorder != nil {
					recorder.RecordAuthFailure()
				}
				WriteErrorResponse(w, http.StatusUnauthorized, model.NewUnauthorizedError())
				return
			}

			// 2. 外部IDサービスでトークンを検証
			userID, err := verifier.Verify(r.Context(), token)
			if err != nil {
				if recorder != nil {
					recorder.RecordAuthFailure()
				}
				if !errors.Is(err, auth.ErrInvalidToken) {
					slog.Error("failed to verify token",
						slog.String("error", err.Error()),
					)
				}
				WriteErrorResponse(w, http.StatusUnauthorized, model.NewUnauthorizedError())
				return
			}

			// 3. 検証済みユーザーIDをコンテキストに注入
			ctx := context.WithValue(r.Context(), userIDContextKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// extractBearerToken はAuthorizationヘッダーからベアラートークンを取り出す。
func extractBearerToken(r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", fmt.Errorf("missing Authorization header")
	}

	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return "", fmt.Errorf("invalid Authorization header format")
	}

	token := header[len(prefix):]
	if token == "" {
		return "", fmt.Errorf("empty bearer token")
	}

	return token, nil
}

// UserIDFromContext はリクエストコンテキストからユーザーIDを取得する。
// 認証ミドルウェアを通過したリクエストでのみ有効。
func UserIDFromContext(ctx context.Context) (string, error) {
	userID, ok := ctx.Value(userIDContextKey).(string)
	if !ok || userID == "" {
		return "", fmt.Errorf("user ID not found in context")
	}
	return userID, nil
}

// ContextWithUserID はコンテキストにユーザーIDを注入する。
// テストやミドルウェア以外のコンテキスト生成で使用する。
func ContextWithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDContextKey, userID)
}
