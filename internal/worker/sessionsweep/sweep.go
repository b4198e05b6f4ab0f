// Package sessionsweep は予約セッションのステータス自動遷移ジョブを提供する。
// 開始時刻を過ぎたSCHEDULEDセッションをIN_PROGRESSに、終了時刻を過ぎた
// セッションをCOMPLETEDに遷移させる。CANCELLEDには触れない。
package sessionsweep

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"
)

// Executor はSQLのExecContextを抽象化するインターフェース。
// *sql.DB や *sql.Tx を受け付けることができる。
type Executor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

// TransitionRecorder はステータス遷移メトリクスの記録インターフェース。
type TransitionRecorder interface {
	RecordSessionTransition(status string)
}

// SweepJob は予約セッションのステータスを時刻に応じて進めるジョブ。
// 定期実行のバッチジョブとして設計されており、冪等な更新処理を保証する。
type SweepJob struct {
	db      Executor
	logger  *slog.Logger
	metrics TransitionRecorder
}

// NewSweepJob は新しいSweepJobを生成する。
func NewSweepJob(db Executor, logger *slog.Logger, metrics TransitionRecorder) *SweepJob {
	return &SweepJob{
		db:      db,
		logger:  logger,
		metrics: metrics,
	}
}

// Run はステータス遷移を1回実行する。
// 冪等: 遷移対象がない場合でもエラーにならない。
func (j *SweepJob) Run(ctx context.Context) error {
	start := time.Now()

	started, err := j.transition(ctx,
		`UPDATE booked_sessions
		 SET status = 'IN_PROGRESS', updated_at = now()
		 WHERE status = 'SCHEDULED' AND start_time <= now() AND end_time > now()`,
		"IN_PROGRESS",
	)
	if err != nil {
		return err
	}

	completed, err := j.transition(ctx,
		`UPDATE booked_sessions
		 SET status = 'COMPLETED', updated_at = now()
		 WHERE status IN ('SCHEDULED', 'IN_PROGRESS') AND end_time <= now()`,
		"COMPLETED",
	)
	if err != nil {
		return err
	}

	duration := time.Since(start)
	j.logger.Info("セッションステータス遷移ジョブが完了しました",
		slog.Int64("started_count", started),
		slog.Int64("completed_count", completed),
		slog.Float64("duration_ms", float64(duration.Milliseconds())),
	)

	return nil
}

func (j *SweepJob) transition(ctx context.Context, query, status string) (int64, error) {
	result, err := j.db.ExecContext(ctx, query)
	if err != nil {
		j.logger.Error("セッションステータス遷移の実行に失敗しました",
			slog.String("error", err.Error()),
			slog.String("status", status),
		)
		return 0, fmt.Errorf("セッションステータス遷移の実行に失敗: %w", err)
	}

	count, err := result.RowsAffected()
	if err != nil {
		j.logger.Error("更新件数の取得に失敗しました",
			slog.String("error", err.Error()),
		)
		return 0, fmt.Errorf("更新件数の取得に失敗: %w", err)
	}

	if j.metrics != nil && count > 0 {
		for i := int64(0); i < count; i++ {
			j.metrics.RecordSessionTransition(status)
		}
	}

	return count, nil
}

// RunLoop は指定間隔でRunを繰り返す。
// エラーはログに記録してループを継続し、コンテキストのキャンセルで終了する。
func (j *SweepJob) RunLoop(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			j.logger.Info("セッションステータス遷移ループを終了します")
			return
		case <-ticker.C:
			if err := j.Run(ctx); err != nil {
				j.logger.Error("セッションステータス遷移ジョブが失敗しました",
					slog.String("error", err.Error()),
				)
			}
		}
	}
}
