package notification

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

const notificationColumns = `id, "userId", type, COALESCE(title, ''), message, status, COALESCE("actionUrl", ''), metadata, "expiresAt", "createdAt", "updatedAt"`

func scanNotification(row pgx.Row) (Notification, error) {
	var n Notification
	var metadata []byte

	err := row.Scan(
		&n.ID,
		&n.UserID,
		&n.Type,
		&n.Title,
		&n.Message,
		&n.Status,
		&n.ActionURL,
		&metadata,
		&n.ExpiresAt,
		&n.CreatedAt,
		&n.UpdatedAt,
	)

	if err != nil {
		return Notification{}, err
	}

	if len(metadata) != 0 {
		if err := json.Unmarshal(metadata, &n.Metadata); err != nil {
			return Notification{}, fmt.Errorf("failed to decode notification metadata: %w", err)
		}
	}

	return n, nil
}

// GetNotificationsForUser returns the user's notifications, newest first,
// skipping expired entries.
func (r *Repository) GetNotificationsForUser(ctx context.Context, userID string, status Status, limit, skip int) ([]Notification, error) {
	sql := `
			SELECT ` + notificationColumns + `
			FROM lighthouse.notifications
			WHERE "userId"=$1
			AND ($2 = '' OR status = $2)
			AND ("expiresAt" IS NULL OR "expiresAt" > $3)
			ORDER BY "createdAt" DESC
			LIMIT $4 OFFSET $5;
		`

	rows, err := r.pool.Query(ctx, sql, userID, string(status), time.Now().UTC(), limit, skip)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch notifications: %w", err)
	}

	defer rows.Close()

	var notifications []Notification

	for rows.Next() {
		n, err := scanNotification(rows)

		if err != nil {
			return nil, fmt.Errorf("error scanning notification row: %w", err)
		}

		notifications = append(notifications, n)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating notification rows: %w", err)
	}

	return notifications, nil
}

func (r *Repository) CountUnreadForUser(ctx context.Context, userID string) (int, error) {
	sql := `
			SELECT COUNT(*) FROM lighthouse.notifications
			WHERE "userId"=$1 AND status='unread'
			AND ("expiresAt" IS NULL OR "expiresAt" > $2);
		`

	var count int
	err := r.pool.QueryRow(ctx, sql, userID, time.Now().UTC()).Scan(&count)

	if err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}

	return count, nil
}

func (r *Repository) GetNotificationByID(ctx context.Context, id string) (Notification, error) {
	sql := `SELECT ` + notificationColumns + ` FROM lighthouse.notifications WHERE id=$1;`

	n, err := scanNotification(r.pool.QueryRow(ctx, sql, id))

	if errors.Is(err, pgx.ErrNoRows) {
		return Notification{}, ErrNotificationNotFound
	}

	if err != nil {
		return Notification{}, fmt.Errorf("failed to fetch notification with id %v: %w", id, err)
	}

	return n, nil
}

func (r *Repository) InsertNotification(ctx context.Context, n Notification) (Notification, error) {
	sql := `
			INSERT INTO lighthouse.notifications(id, "userId", type, title, message, status, "actionUrl", metadata, "expiresAt", "createdAt", "updatedAt")
			VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6, NULLIF($7, ''), $8, $9, $10, $10);
		`

	var metadata []byte

	if n.Metadata != nil {
		var err error
		metadata, err = json.Marshal(n.Metadata)

		if err != nil {
			return Notification{}, fmt.Errorf("failed to encode notification metadata: %w", err)
		}
	}

	n.ID = uuid.NewString()
	if len(n.Status) == 0 {
		n.Status = StatusUnread
	}
	now := time.Now().UTC()
	n.CreatedAt = now
	n.UpdatedAt = now

	_, err := r.pool.Exec(ctx, sql,
		n.ID,
		n.UserID,
		n.Type,
		n.Title,
		n.Message,
		n.Status,
		n.ActionURL,
		metadata,
		n.ExpiresAt,
		now,
	)

	if err != nil {
		return Notification{}, fmt.Errorf("failed to insert notification: %w", err)
	}

	return n, nil
}

func (r *Repository) SetNotificationStatus(ctx context.Context, id string, status Status) error {
	sql := `
			UPDATE lighthouse.notifications
			SET status=$1, "updatedAt"=$2
			WHERE id=$3;
		`

	tag, err := r.pool.Exec(ctx, sql, status, time.Now().UTC(), id)

	if err != nil {
		return fmt.Errorf("failed to update notification '%v' status: %w", id, err)
	}

	if tag.RowsAffected() == 0 {
		return ErrNotificationNotFound
	}

	return nil
}

func (r *Repository) DeleteNotification(ctx context.Context, id string) error {
	sql := `DELETE FROM lighthouse.notifications WHERE id=$1;`

	tag, err := r.pool.Exec(ctx, sql, id)

	if err != nil {
		return fmt.Errorf("failed to delete notification '%v': %w", id, err)
	}

	if tag.RowsAffected() == 0 {
		return ErrNotificationNotFound
	}

	return nil
}

// DeleteExpired removes notifications past their expiry and returns how
// many were purged.
func (r *Repository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	sql := `DELETE FROM lighthouse.notifications WHERE "expiresAt" IS NOT NULL AND "expiresAt" <= $1;`

	tag, err := r.pool.Exec(ctx, sql, now.UTC())

	if err != nil {
		return 0, fmt.Errorf("failed to purge expired notifications: %w", err)
	}

	return tag.RowsAffected(), nil
}
