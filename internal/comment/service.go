// Package comment はプロジェクトへのコメントのドメインロジックを提供する。
package comment

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/forwardhq/forward/internal/model"
	"github.com/forwardhq/forward/internal/repository"
)

// MetricsRecorder はリソース作成メトリクスの記録インターフェース。
type MetricsRecorder interface {
	RecordResourceCreated(resource string)
}

// Sanitizer はユーザー入力テキストのサニタイズインターフェース。
type Sanitizer interface {
	SanitizeText(text string) string
}

// Service はコメントのサービス層。
type Service struct {
	commentRepo repository.CommentRepository
	projectRepo repository.ProjectRepository
	sanitizer   Sanitizer
	metrics     MetricsRecorder
	now         func() time.Time
}

// NewService はServiceの新しいインスタンスを生成する。
func NewService(
	commentRepo repository.CommentRepository,
	projectRepo repository.ProjectRepository,
	sanitizer Sanitizer,
	metrics MetricsRecorder,
) *Service {
	return &Service{
		commentRepo: commentRepo,
		projectRepo: projectRepo,
		sanitizer:   sanitizer,
		metrics:     metrics,
		now:         time.Now,
	}
}

// Create はプロジェクトにコメントを投稿する。
// 空白のみの本文は拒否する。
func (s *Service) Create(ctx context.Context, userID, projectID, content string) (*model.Comment, error) {
	if projectID == "" {
		return nil, model.NewMissingFieldError("projectId")
	}

	// タグのみの本文はサニタイズ後に空になるため、サニタイズ結果で判定する
	sanitized := s.sanitizer.SanitizeText(strings.TrimSpace(content))
	if sanitized == "" {
		return nil, model.NewEmptyContentError()
	}

	project, err := s.projectRepo.FindByID(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("プロジェクトの取得に失敗しました: %w", err)
	}
	if project == nil {
		return nil, model.NewProjectNotFoundError(projectID)
	}

	now := s.now()
	comment := &model.Comment{
		ID:        uuid.NewString(),
		Content:   sanitized,
		ProjectID: projectID,
		UserID:    userID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("コメントの作成に失敗しました: %w", err)
	}

	if s.metrics != nil {
		s.metrics.RecordResourceCreated("comment")
	}

	return comment, nil
}

// ListByProject はプロジェクトのコメントを新しい順で返す。
func (s *Service) ListByProject(ctx context.Context, projectID string) ([]*model.Comment, error) {
	if projectID == "" {
		return nil, model.NewMissingFieldError("projectId")
	}

	comments, err := s.commentRepo.ListByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("コメント一覧の取得に失敗しました: %w", err)
	}
	return comments, nil
}
