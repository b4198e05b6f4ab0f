package progress

import (
	"context"
	"fmt"
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

// Service は日次進捗報告のサービス層。
type Service struct {
	updateRepo  repository.DailyUpdateRepository
	projectRepo repository.ProjectRepository
	sanitizer   Sanitizer
	metrics     MetricsRecorder
	now         func() time.Time
}

// NewService はServiceの新しいインスタンスを生成する。
func NewService(
	updateRepo repository.DailyUpdateRepository,
	projectRepo repository.ProjectRepository,
	sanitizer Sanitizer,
	metrics MetricsRecorder,
) *Service {
	return &Service{
		updateRepo:  updateRepo,
		projectRepo: projectRepo,
		sanitizer:   sanitizer,
		metrics:     metrics,
		now:         time.Now,
	}
}

// CreateUpdateInput は日次進捗報告作成の入力。
type CreateUpdateInput struct {
	ProjectID     string
	Day           int
	WantToDoToday string
	WhatDid       string
	Challenges    string
	NextSteps     string
}

// CreateUpdate は日次進捗報告を作成する。
// 日番号は1〜14の範囲で検証し、報告日は作成時点を記録する。
// テキストフィールドは未入力を許可する。
func (s *Service) CreateUpdate(ctx context.Context, userID string, input CreateUpdateInput) (*model.DailyUpdate, error) {
	var missing []string
	if input.ProjectID == "" {
		missing = append(missing, "projectId")
	}
	if input.Day == 0 {
		missing = append(missing, "day")
	}
	if len(missing) > 0 {
		return nil, model.NewMissingFieldError(missing...)
	}

	if input.Day < 1 || input.Day > model.SprintDays {
		return nil, model.NewInvalidDayError(input.Day)
	}

	project, err := s.projectRepo.FindByID(ctx, input.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("プロジェクトの取得に失敗しました: %w", err)
	}
	if project == nil {
		return nil, model.NewProjectNotFoundError(input.ProjectID)
	}

	now := s.now()
	update := &model.DailyUpdate{
		ID:            uuid.NewString(),
		ProjectID:     input.ProjectID,
		UserID:        userID,
		Day:           input.Day,
		Date:          now,
		WantToDoToday: s.sanitizer.SanitizeText(input.WantToDoToday),
		WhatDid:       s.sanitizer.SanitizeText(input.WhatDid),
		Challenges:    s.sanitizer.SanitizeText(input.Challenges),
		NextSteps:     s.sanitizer.SanitizeText(input.NextSteps),
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.updateRepo.Create(ctx, update); err != nil {
		return nil, fmt.Errorf("日次進捗報告の作成に失敗しました: %w", err)
	}

	if s.metrics != nil {
		s.metrics.RecordResourceCreated("update")
	}

	return update, nil
}

// ListByProject はプロジェクトの日次進捗報告を日番号の昇順で返す。
func (s *Service) ListByProject(ctx context.Context, projectID string) ([]*model.DailyUpdate, error) {
	if projectID == "" {
		return nil, model.NewMissingFieldError("projectId")
	}

	updates, err := s.updateRepo.ListByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("日次進捗報告一覧の取得に失敗しました: %w", err)
	}
	return updates, nil
}
