// Package model はドメインモデルを定義する。
package model

import (
	"fmt"
	"strings"
)

// APIError は統一エラーフォーマットを表す。
// UIに表示する原因カテゴリと対処方法を含む。
type APIError struct {
	Code     string // エラーコード
	Message  string // エラーメッセージ
	Category string // カテゴリ: auth, validation, project, booking, system
	Action   string // ユーザー向け対処方法
}

// Error はerrorインターフェースを実装する。
func (e *APIError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// 定義済みエラーコード
const (
	ErrCodeUnauthorized       = "UNAUTHORIZED"
	ErrCodeForbidden          = "FORBIDDEN"
	ErrCodeMissingField       = "MISSING_FIELD"
	ErrCodeInvalidRole        = "INVALID_ROLE"
	ErrCodeInvalidDay         = "INVALID_DAY"
	ErrCodeInvalidTimeRange   = "INVALID_TIME_RANGE"
	ErrCodeInvalidMeetingLink = "INVALID_MEETING_LINK"
	ErrCodeEmptyContent       = "EMPTY_CONTENT"
	ErrCodeUserNotFound       = "USER_NOT_FOUND"
	ErrCodeProjectNotFound    = "PROJECT_NOT_FOUND"
	ErrCodeProfileExists      = "PROFILE_EXISTS"
	ErrCodeEmailTaken         = "EMAIL_TAKEN"
)

// NewUnauthorizedError は認証失敗エラーを生成する。
func NewUnauthorizedError() *APIError {
	return &APIError{
		Code:     ErrCodeUnauthorized,
		Message:  "認証が必要です。",
		Category: "auth",
		Action:   "ログインしてください。",
	}
}

// NewForbiddenError は権限不足エラーを生成する。
func NewForbiddenError(message string) *APIError {
	return &APIError{
		Code:     ErrCodeForbidden,
		Message:  message,
		Category: "auth",
		Action:   "権限のあるアカウントでログインしてください。",
	}
}

// NewMissingFieldError は必須フィールド欠落エラーを生成する。
// 欠落したフィールド名をメッセージに含める。
func NewMissingFieldError(fields ...string) *APIError {
	return &APIError{
		Code:     ErrCodeMissingField,
		Message:  fmt.Sprintf("必須フィールドが指定されていません: %s", strings.Join(fields, ", ")),
		Category: "validation",
		Action:   "不足しているフィールドを入力してください。",
	}
}

// NewInvalidRoleError は無効な役割エラーを生成する。
func NewInvalidRoleError(role string) *APIError {
	return &APIError{
		Code:     ErrCodeInvalidRole,
		Message:  fmt.Sprintf("無効な役割です: %s", role),
		Category: "validation",
		Action:   "役割には FOUNDER、EXPERT、TEAM_MEMBER のいずれかを指定してください。",
	}
}

// NewInvalidDayError は無効な日番号エラーを生成する。
func NewInvalidDayError(day int) *APIError {
	return &APIError{
		Code:     ErrCodeInvalidDay,
		Message:  fmt.Sprintf("無効な日番号です: %d", day),
		Category: "validation",
		Action:   "日番号は1から14の範囲で指定してください。",
	}
}

// NewInvalidTimeRangeError は無効な時間範囲エラーを生成する。
func NewInvalidTimeRangeError() *APIError {
	return &APIError{
		Code:     ErrCodeInvalidTimeRange,
		Message:  "終了時刻は開始時刻より後である必要があります。",
		Category: "validation",
		Action:   "開始時刻と終了時刻を確認してください。",
	}
}

// NewInvalidMeetingLinkError は無効なミーティングリンクエラーを生成する。
func NewInvalidMeetingLinkError(reason string) *APIError {
	return &APIError{
		Code:     ErrCodeInvalidMeetingLink,
		Message:  fmt.Sprintf("無効なミーティングリンクです: %s", reason),
		Category: "validation",
		Action:   "http:// または https:// で始まるURLを入力してください。",
	}
}

// NewEmptyContentError は空コメントエラーを生成する。
func NewEmptyContentError() *APIError {
	return &APIError{
		Code:     ErrCodeEmptyContent,
		Message:  "コメント本文が空です。",
		Category: "validation",
		Action:   "本文を入力してください。",
	}
}

// NewUserNotFoundError はユーザーが見つからない場合のエラーを生成する。
func NewUserNotFoundError() *APIError {
	return &APIError{
		Code:     ErrCodeUserNotFound,
		Message:  "ユーザーが見つかりません。",
		Category: "auth",
		Action:   "プロフィールを作成してください。",
	}
}

// NewProjectNotFoundError はプロジェクトが見つからない場合のエラーを生成する。
func NewProjectNotFoundError(projectID string) *APIError {
	return &APIError{
		Code:     ErrCodeProjectNotFound,
		Message:  fmt.Sprintf("指定されたプロジェクトが見つかりません: %s", projectID),
		Category: "project",
		Action:   "プロジェクトIDを確認してください。",
	}
}

// NewProfileExistsError はプロフィール重複作成エラーを生成する。
// 役割は作成時に確定するため、既存プロフィールの上書きは許可しない。
func NewProfileExistsError() *APIError {
	return &APIError{
		Code:     ErrCodeProfileExists,
		Message:  "プロフィールは既に作成されています。",
		Category: "validation",
		Action:   "既存のプロフィールを使用してください。",
	}
}

// NewEmailTakenError はメールアドレス重複エラーを生成する。
func NewEmailTakenError(email string) *APIError {
	return &APIError{
		Code:     ErrCodeEmailTaken,
		Message:  fmt.Sprintf("このメールアドレスは既に使用されています: %s", email),
		Category: "validation",
		Action:   "別のメールアドレスを使用してください。",
	}
}
