package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/forwardhq/forward/internal/model"
)

// PostgresSessionRepo はPostgreSQLを使用した予約セッションリポジトリ。
type PostgresSessionRepo struct {
	db *sql.DB
}

// NewPostgresSessionRepo はPostgresSessionRepoを生成する。
func NewPostgresSessionRepo(db *sql.DB) *PostgresSessionRepo {
	return &PostgresSessionRepo{db: db}
}

const sessionColumns = `id, availability_slot_id, booked_by_user_id, project_id, title, description, start_time, end_time, meeting_link, status, created_at, updated_at`

// Create は予約セッションを作成する。
// 参照先時間枠の存在確認や残り枠数の検証は行わない。
func (r *PostgresSessionRepo) Create(ctx context.Context, session *model.BookedSession) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO booked_sessions (id, availability_slot_id, booked_by_user_id, project_id, title, description, start_time, end_time, meeting_link, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		session.ID, session.AvailabilitySlotID, session.BookedByUserID, session.ProjectID,
		session.Title, session.Description, session.StartTime, session.EndTime,
		session.MeetingLink, session.Status, session.CreatedAt, session.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert booked session: %w", err)
	}

	return nil
}

// List は全予約セッションを作成日時の昇順で返す。
func (r *PostgresSessionRepo) List(ctx context.Context) ([]*model.BookedSession, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+sessionColumns+` FROM booked_sessions ORDER BY created_at ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list booked sessions: %w", err)
	}
	defer rows.Close()

	var sessions []*model.BookedSession
	for rows.Next() {
		s := &model.BookedSession{}
		err := rows.Scan(
			&s.ID, &s.AvailabilitySlotID, &s.BookedByUserID, &s.ProjectID,
			&s.Title, &s.Description, &s.StartTime, &s.EndTime,
			&s.MeetingLink, &s.Status, &s.CreatedAt, &s.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan booked session: %w", err)
		}
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate booked sessions: %w", err)
	}

	return sessions, nil
}

// compile-time interface check
var _ BookedSessionRepository = (*PostgresSessionRepo)(nil)
