package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/forwardhq/forward/internal/model"
)

// PostgresSlotRepo はPostgreSQLを使用した時間枠リポジトリ。
type PostgresSlotRepo struct {
	db *sql.DB
}

// NewPostgresSlotRepo はPostgresSlotRepoを生成する。
func NewPostgresSlotRepo(db *sql.DB) *PostgresSlotRepo {
	return &PostgresSlotRepo{db: db}
}

const slotColumns = `id, user_id, title, start_time, end_time, is_recurring, max_bookings, description, meeting_link, created_at, updated_at`

// scanSlot は1行分の時間枠レコードを読み取る。
func scanSlot(row interface{ Scan(...any) error }) (*model.AvailabilitySlot, error) {
	s := &model.AvailabilitySlot{}
	err := row.Scan(
		&s.ID, &s.UserID, &s.Title, &s.StartTime, &s.EndTime,
		&s.IsRecurring, &s.MaxBookings, &s.Description, &s.MeetingLink,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// FindByID は指定IDの時間枠を取得する。見つからない場合はnilを返す。
func (r *PostgresSlotRepo) FindByID(ctx context.Context, id string) (*model.AvailabilitySlot, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+slotColumns+` FROM availability_slots WHERE id = $1`,
		id,
	)

	s, err := scanSlot(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find availability slot by ID: %w", err)
	}

	return s, nil
}

// Create は時間枠を作成する。
func (r *PostgresSlotRepo) Create(ctx context.Context, slot *model.AvailabilitySlot) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO availability_slots (id, user_id, title, start_time, end_time, is_recurring, max_bookings, description, meeting_link, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		slot.ID, slot.UserID, slot.Title, slot.StartTime, slot.EndTime,
		slot.IsRecurring, slot.MaxBookings, slot.Description, slot.MeetingLink,
		slot.CreatedAt, slot.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert availability slot: %w", err)
	}

	return nil
}

// List は全時間枠を作成日時の昇順で返す。
func (r *PostgresSlotRepo) List(ctx context.Context) ([]*model.AvailabilitySlot, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+slotColumns+` FROM availability_slots ORDER BY created_at ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list availability slots: %w", err)
	}
	defer rows.Close()

	var slots []*model.AvailabilitySlot
	for rows.Next() {
		s, err := scanSlot(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan availability slot: %w", err)
		}
		slots = append(slots, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate availability slots: %w", err)
	}

	return slots, nil
}

// compile-time interface check
var _ AvailabilitySlotRepository = (*PostgresSlotRepo)(nil)
