// Package project はプロジェクト管理のドメインロジックを提供する。
package project

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/forwardhq/forward/internal/model"
	"github.com/forwardhq/forward/internal/progress"
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

// ProjectDetail はプロジェクトと関連データを結合したドメインオブジェクト。
type ProjectDetail struct {
	Project      *model.Project
	Founder      *model.User
	DailyUpdates []*model.DailyUpdate
	Comments     []*model.Comment
}

// Timeline はスプリントの進捗サマリー。
type Timeline struct {
	CurrentDay    int
	DaysRemaining int
	Days          []progress.DaySlot
}

// Service はプロジェクト管理のサービス層。
type Service struct {
	projectRepo repository.ProjectRepository
	userRepo    repository.UserRepository
	updateRepo  repository.DailyUpdateRepository
	commentRepo repository.CommentRepository
	sanitizer   Sanitizer
	metrics     MetricsRecorder
	now         func() time.Time
}

// NewService はServiceの新しいインスタンスを生成する。
func NewService(
	projectRepo repository.ProjectRepository,
	userRepo repository.UserRepository,
	updateRepo repository.DailyUpdateRepository,
	commentRepo repository.CommentRepository,
	sanitizer Sanitizer,
	metrics MetricsRecorder,
) *Service {
	return &Service{
		projectRepo: projectRepo,
		userRepo:    userRepo,
		updateRepo:  updateRepo,
		commentRepo: commentRepo,
		sanitizer:   sanitizer,
		metrics:     metrics,
		now:         time.Now,
	}
}

// CreateInput はプロジェクト作成の入力。
type CreateInput struct {
	Name              string
	Description       string
	PointA            string
	PointB            string
	OpenToTeamMembers bool
}

// Create はプロジェクトを作成する。
// 作成できるのはFOUNDER役割のユーザーのみ。終了日は開始日の14日後に
// 固定され、ステータスはACTIVEで開始する。
func (s *Service) Create(ctx context.Context, userID string, input CreateInput) (*model.Project, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("ユーザーの取得に失敗しました: %w", err)
	}
	if user == nil || user.Role != model.RoleFounder {
		return nil, model.NewForbiddenError("プロジェクトを作成できるのはファウンダーのみです。")
	}

	name := strings.TrimSpace(input.Name)
	description := strings.TrimSpace(input.Description)
	pointA := strings.TrimSpace(input.PointA)
	pointB := strings.TrimSpace(input.PointB)

	var missing []string
	if name == "" {
		missing = append(missing, "name")
	}
	if description == "" {
		missing = append(missing, "description")
	}
	if pointA == "" {
		missing = append(missing, "pointA")
	}
	if pointB == "" {
		missing = append(missing, "pointB")
	}
	if len(missing) > 0 {
		return nil, model.NewMissingFieldError(missing...)
	}

	start := s.now()
	project := &model.Project{
		ID:                uuid.NewString(),
		Name:              s.sanitizer.SanitizeText(name),
		Description:       s.sanitizer.SanitizeText(description),
		PointA:            s.sanitizer.SanitizeText(pointA),
		PointB:            s.sanitizer.SanitizeText(pointB),
		Status:            model.ProjectStatusActive,
		OpenToTeamMembers: input.OpenToTeamMembers,
		StartDate:         start,
		EndDate:           start.AddDate(0, 0, model.SprintDays),
		FounderID:         userID,
		CreatedAt:         start,
		UpdatedAt:         start,
	}

	if err := s.projectRepo.Create(ctx, project); err != nil {
		return nil, fmt.Errorf("プロジェクトの作成に失敗しました: %w", err)
	}

	if s.metrics != nil {
		s.metrics.RecordResourceCreated("project")
	}

	return project, nil
}

// ListDetailed は全プロジェクトをファウンダー・進捗報告・コメント付きで返す。
// プロジェクトごとの関連データは並行に読み込む。
func (s *Service) ListDetailed(ctx context.Context) ([]*ProjectDetail, error) {
	projects, err := s.projectRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("プロジェクト一覧の取得に失敗しました: %w", err)
	}

	details := make([]*ProjectDetail, len(projects))
	g, gctx := errgroup.WithContext(ctx)

	for i, p := range projects {
		g.Go(func() error {
			detail := &ProjectDetail{Project: p}

			founder, err := s.userRepo.FindByID(gctx, p.FounderID)
			if err != nil {
				return fmt.Errorf("ファウンダーの取得に失敗しました: %w", err)
			}
			detail.Founder = founder

			updates, err := s.updateRepo.ListByProject(gctx, p.ID)
			if err != nil {
				return fmt.Errorf("日次進捗報告の取得に失敗しました: %w", err)
			}
			detail.DailyUpdates = updates

			comments, err := s.commentRepo.ListByProject(gctx, p.ID)
			if err != nil {
				return fmt.Errorf("コメントの取得に失敗しました: %w", err)
			}
			detail.Comments = comments

			details[i] = detail
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return details, nil
}

// GetTimeline はプロジェクトのスプリント進捗サマリーを返す。
func (s *Service) GetTimeline(ctx context.Context, projectID string) (*Timeline, error) {
	project, err := s.projectRepo.FindByID(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("プロジェクトの取得に失敗しました: %w", err)
	}
	if project == nil {
		return nil, model.NewProjectNotFoundError(projectID)
	}

	updates, err := s.updateRepo.ListByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("日次進捗報告の取得に失敗しました: %w", err)
	}

	now := s.now()
	return &Timeline{
		CurrentDay:    progress.CurrentDay(project, now),
		DaysRemaining: progress.DaysRemaining(project, now),
		Days:          progress.BuildDays(project, updates, now),
	}, nil
}
