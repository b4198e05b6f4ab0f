package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/forwardhq/forward/internal/model"
)

// PostgresDailyUpdateRepo はPostgreSQLを使用した日次進捗報告リポジトリ。
type PostgresDailyUpdateRepo struct {
	db *sql.DB
}

// NewPostgresDailyUpdateRepo はPostgresDailyUpdateRepoを生成する。
func NewPostgresDailyUpdateRepo(db *sql.DB) *PostgresDailyUpdateRepo {
	return &PostgresDailyUpdateRepo{db: db}
}

const dailyUpdateColumns = `id, project_id, user_id, day, date, want_to_do_today, what_did, challenges, next_steps, created_at, updated_at`

// Create は日次進捗報告を作成する。
func (r *PostgresDailyUpdateRepo) Create(ctx context.Context, update *model.DailyUpdate) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO daily_updates (id, project_id, user_id, day, date, want_to_do_today, what_did, challenges, next_steps, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		update.ID, update.ProjectID, update.UserID, update.Day, update.Date,
		update.WantToDoToday, update.WhatDid, update.Challenges, update.NextSteps,
		update.CreatedAt, update.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert daily update: %w", err)
	}

	return nil
}

// ListByProject はプロジェクトの日次進捗報告を日番号の昇順で返す。
func (r *PostgresDailyUpdateRepo) ListByProject(ctx context.Context, projectID string) ([]*model.DailyUpdate, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+dailyUpdateColumns+` FROM daily_updates WHERE project_id = $1 ORDER BY day ASC`,
		projectID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list daily updates: %w", err)
	}
	defer rows.Close()

	var updates []*model.DailyUpdate
	for rows.Next() {
		u := &model.DailyUpdate{}
		err := rows.Scan(
			&u.ID, &u.ProjectID, &u.UserID, &u.Day, &u.Date,
			&u.WantToDoToday, &u.WhatDid, &u.Challenges, &u.NextSteps,
			&u.CreatedAt, &u.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan daily update: %w", err)
		}
		updates = append(updates, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate daily updates: %w", err)
	}

	return updates, nil
}

// compile-time interface check
var _ DailyUpdateRepository = (*PostgresDailyUpdateRepo)(nil)
