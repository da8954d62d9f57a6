package traininglog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository struct{ pool *pgxpool.Pool }

func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

const trainingLogColumns = `id, "userId", "coachId", "activityType", COALESCE(notes, ''), "performanceMetrics", "sessionDate", "createdAt", "updatedAt"`

func scanTrainingLog(row pgx.Row) (TrainingLog, error) {
	var l TrainingLog
	var metrics []byte

	err := row.Scan(
		&l.ID,
		&l.UserID,
		&l.CoachID,
		&l.ActivityType,
		&l.Notes,
		&metrics,
		&l.SessionDate,
		&l.CreatedAt,
		&l.UpdatedAt,
	)

	if err != nil {
		return TrainingLog{}, err
	}

	if len(metrics) != 0 {
		if err := json.Unmarshal(metrics, &l.Metrics); err != nil {
			return TrainingLog{}, fmt.Errorf("failed to decode performance metrics: %w", err)
		}
	}

	return l, nil
}

// Filter scopes a training-log listing. Zero fields are ignored;
// VisibleTo restricts to logs where the given user is subject or coach.
type Filter struct {
	UserID    string
	CoachID   string
	VisibleTo string
}

func (r *Repository) GetTrainingLogs(ctx context.Context, filter Filter) ([]TrainingLog, error) {
	sql := `
			SELECT ` + trainingLogColumns + `
			FROM lighthouse.training_logs
			WHERE ($1 = '' OR "userId" = $1)
			AND ($2 = '' OR "coachId" = $2)
			AND ($3 = '' OR "userId" = $3 OR "coachId" = $3)
			ORDER BY "createdAt" DESC;
		`

	rows, err := r.pool.Query(ctx, sql, filter.UserID, filter.CoachID, filter.VisibleTo)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch training logs: %w", err)
	}

	defer rows.Close()

	var logs []TrainingLog

	for rows.Next() {
		l, err := scanTrainingLog(rows)

		if err != nil {
			return nil, fmt.Errorf("error scanning training log row: %w", err)
		}

		logs = append(logs, l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating training log rows: %w", err)
	}

	return logs, nil
}

func (r *Repository) GetTrainingLogByID(ctx context.Context, id string) (TrainingLog, error) {
	sql := `SELECT ` + trainingLogColumns + ` FROM lighthouse.training_logs WHERE id=$1;`

	l, err := scanTrainingLog(r.pool.QueryRow(ctx, sql, id))

	if errors.Is(err, pgx.ErrNoRows) {
		return TrainingLog{}, ErrTrainingLogNotFound
	}

	if err != nil {
		return TrainingLog{}, fmt.Errorf("failed to fetch training log with id %v: %w", id, err)
	}

	return l, nil
}

func (r *Repository) InsertTrainingLog(ctx context.Context, l TrainingLog) (TrainingLog, error) {
	sql := `
			INSERT INTO lighthouse.training_logs(id, "userId", "coachId", "activityType", notes, "performanceMetrics", "sessionDate", "createdAt", "updatedAt")
			VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6, $7, $8, $8);
		`

	metrics, err := marshalMetrics(l.Metrics)

	if err != nil {
		return TrainingLog{}, err
	}

	l.ID = uuid.NewString()
	now := time.Now().UTC()
	l.CreatedAt = now
	l.UpdatedAt = now

	_, err = r.pool.Exec(ctx, sql,
		l.ID,
		l.UserID,
		l.CoachID,
		l.ActivityType,
		l.Notes,
		metrics,
		l.SessionDate,
		now,
	)

	if err != nil {
		return TrainingLog{}, fmt.Errorf("failed to insert training log: %w", err)
	}

	return l, nil
}

func (r *Repository) UpdateTrainingLog(ctx context.Context, l TrainingLog) error {
	sql := `
			UPDATE lighthouse.training_logs
			SET
				"activityType"=$1,
				notes=NULLIF($2, ''),
				"performanceMetrics"=$3,
				"sessionDate"=$4,
				"updatedAt"=$5
			WHERE id=$6;
		`

	metrics, err := marshalMetrics(l.Metrics)

	if err != nil {
		return err
	}

	tag, err := r.pool.Exec(ctx, sql,
		l.ActivityType,
		l.Notes,
		metrics,
		l.SessionDate,
		time.Now().UTC(),
		l.ID,
	)

	if err != nil {
		return fmt.Errorf("failed to update training log: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return ErrTrainingLogNotFound
	}

	return nil
}

func (r *Repository) DeleteTrainingLog(ctx context.Context, id string) error {
	sql := `DELETE FROM lighthouse.training_logs WHERE id=$1;`

	tag, err := r.pool.Exec(ctx, sql, id)

	if err != nil {
		return fmt.Errorf("failed to delete training log '%v': %w", id, err)
	}

	if tag.RowsAffected() == 0 {
		return ErrTrainingLogNotFound
	}

	return nil
}

func marshalMetrics(m *PerformanceMetrics) ([]byte, error) {
	if m == nil {
		return nil, nil
	}

	metrics, err := json.Marshal(m)

	if err != nil {
		return nil, fmt.Errorf("failed to encode performance metrics: %w", err)
	}

	return metrics, nil
}
