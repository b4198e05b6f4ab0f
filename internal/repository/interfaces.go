// Package repository はデータ永続化のインターフェースを定義する。
package repository

import (
	"context"

	"github.com/forwardhq/forward/internal/model"
)

// UserRepository はユーザーデータの永続化インターフェース。
type UserRepository interface {
	// FindByID は指定IDのユーザーを取得する。見つからない場合はnilを返す。
	FindByID(ctx context.Context, id string) (*model.User, error)

	// FindByEmail はメールアドレスでユーザーを検索する。見つからない場合はnilを返す。
	FindByEmail(ctx context.Context, email string) (*model.User, error)

	// Create はユーザーを作成する。
	Create(ctx context.Context, user *model.User) error

	// List は全ユーザーを返す。
	List(ctx context.Context) ([]*model.User, error)

	// ListByRole は指定された役割のユーザーを返す。
	ListByRole(ctx context.Context, role model.UserRole) ([]*model.User, error)
}

// ProjectRepository はプロジェクトデータの永続化インターフェース。
type ProjectRepository interface {
	// FindByID は指定IDのプロジェクトを取得する。見つからない場合はnilを返す。
	FindByID(ctx context.Context, id string) (*model.Project, error)

	// Create はプロジェクトを作成する。
	Create(ctx context.Context, project *model.Project) error

	// List は全プロジェクトを作成日時の昇順で返す。
	List(ctx context.Context) ([]*model.Project, error)
}

// DailyUpdateRepository は日次進捗報告の永続化インターフェース。
type DailyUpdateRepository interface {
	// Create は日次進捗報告を作成する。
	Create(ctx context.Context, update *model.DailyUpdate) error

	// ListByProject はプロジェクトの日次進捗報告を日番号の昇順で返す。
	ListByProject(ctx context.Context, projectID string) ([]*model.DailyUpdate, error)
}

// CommentRepository はコメントデータの永続化インターフェース。
type CommentRepository interface {
	// Create はコメントを作成する。
	Create(ctx context.Context, comment *model.Comment) error

	// ListByProject はプロジェクトのコメントを作成日時の降順で返す。
	ListByProject(ctx context.Context, projectID string) ([]*model.Comment, error)
}

// AvailabilitySlotRepository は時間枠データの永続化インターフェース。
type AvailabilitySlotRepository interface {
	// FindByID は指定IDの時間枠を取得する。見つからない場合はnilを返す。
	FindByID(ctx context.Context, id string) (*model.AvailabilitySlot, error)

	// Create は時間枠を作成する。
	Create(ctx context.Context, slot *model.AvailabilitySlot) error

	// List は全時間枠を作成日時の昇順で返す。
	// 複数の時間枠が同じセルにマッチする場合の表示順はこの順序に従う。
	List(ctx context.Context) ([]*model.AvailabilitySlot, error)
}

// BookedSessionRepository は予約セッションデータの永続化インターフェース。
type BookedSessionRepository interface {
	// Create は予約セッションを作成する。
	Create(ctx context.Context, session *model.BookedSession) error

	// List は全予約セッションを作成日時の昇順で返す。
	List(ctx context.Context) ([]*model.BookedSession, error)
}
