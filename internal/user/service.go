// Package user はユーザープロフィール管理のドメインロジックを提供する。
package user

import (
	"context"
	"fmt"
	"strings"
	"time"

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

// Service はユーザープロフィールのサービス層。
type Service struct {
	userRepo  repository.UserRepository
	sanitizer Sanitizer
	metrics   MetricsRecorder
	now       func() time.Time
}

// NewService はServiceの新しいインスタンスを生成する。
func NewService(userRepo repository.UserRepository, sanitizer Sanitizer, metrics MetricsRecorder) *Service {
	return &Service{
		userRepo:  userRepo,
		sanitizer: sanitizer,
		metrics:   metrics,
		now:       time.Now,
	}
}

// CreateProfileInput はプロフィール作成の入力。
type CreateProfileInput struct {
	Name       string
	Email      string
	Role       string
	Bio        string
	Skills     []string
	OpenToTeam bool
}

// CreateProfile は認証済みサブジェクトIDに紐付くプロフィールを作成する。
// 役割は作成時に確定し、以後変更できないため既存プロフィールの
// 上書きは拒否する。メールアドレスの重複も許可しない。
func (s *Service) CreateProfile(ctx context.Context, userID string, input CreateProfileInput) (*model.User, error) {
	name := strings.TrimSpace(input.Name)
	email := strings.TrimSpace(input.Email)

	var missing []string
	if name == "" {
		missing = append(missing, "name")
	}
	if email == "" {
		missing = append(missing, "email")
	}
	if input.Role == "" {
		missing = append(missing, "role")
	}
	if len(missing) > 0 {
		return nil, model.NewMissingFieldError(missing...)
	}

	if !model.ValidUserRole(input.Role) {
		return nil, model.NewInvalidRoleError(input.Role)
	}

	existing, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("ユーザーの取得に失敗しました: %w", err)
	}
	if existing != nil {
		return nil, model.NewProfileExistsError()
	}

	byEmail, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("メールアドレスの照会に失敗しました: %w", err)
	}
	if byEmail != nil {
		return nil, model.NewEmailTakenError(email)
	}

	skills := make([]string, 0, len(input.Skills))
	for _, skill := range input.Skills {
		if trimmed := strings.TrimSpace(skill); trimmed != "" {
			skills = append(skills, trimmed)
		}
	}

	now := s.now()
	user := &model.User{
		ID:         userID,
		Email:      email,
		Name:       s.sanitizer.SanitizeText(name),
		Role:       model.UserRole(input.Role),
		Bio:        s.sanitizer.SanitizeText(input.Bio),
		Skills:     skills,
		OpenToTeam: input.OpenToTeam,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("ユーザーの作成に失敗しました: %w", err)
	}

	if s.metrics != nil {
		s.metrics.RecordResourceCreated("user")
	}

	return user, nil
}

// Get は指定IDのユーザーを返す。見つからない場合はエラーを返す。
func (s *Service) Get(ctx context.Context, userID string) (*model.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("ユーザーの取得に失敗しました: %w", err)
	}
	if user == nil {
		return nil, model.NewUserNotFoundError()
	}
	return user, nil
}

// List はユーザー一覧を返す。役割を指定した場合は絞り込む。
func (s *Service) List(ctx context.Context, role string) ([]*model.User, error) {
	if role == "" {
		users, err := s.userRepo.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("ユーザー一覧の取得に失敗しました: %w", err)
		}
		return users, nil
	}

	if !model.ValidUserRole(role) {
		return nil, model.NewInvalidRoleError(role)
	}

	users, err := s.userRepo.ListByRole(ctx, model.UserRole(role))
	if err != nil {
		return nil, fmt.Errorf("ユーザー一覧の取得に失敗しました: %w", err)
	}
	return users, nil
}
