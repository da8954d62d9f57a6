package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// exclusionViolation is the SQLSTATE raised when an insert or update runs
// into the bookings_no_overlap constraint.
const exclusionViolation = "23P01"

type Repository struct{ pool *pgxpool.Pool }

func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

const bookingColumns = `id, "facilityId", "userId", "startTime", "endTime", status, COALESCE(notes, ''), "reminderSentAt", "createdAt", "updatedAt"`

func scanBooking(row pgx.Row) (Booking, error) {
	var b Booking
	err := row.Scan(
		&b.ID,
		&b.FacilityID,
		&b.UserID,
		&b.StartTime,
		&b.EndTime,
		&b.Status,
		&b.Notes,
		&b.ReminderSentAt,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	return b, err
}

func (r *Repository) GetBookings(ctx context.Context, facilityID, userID string) ([]Booking, error) {
	sql := `
			SELECT ` + bookingColumns + `
			FROM lighthouse.bookings
			WHERE ($1 = '' OR "facilityId" = $1)
			AND ($2 = '' OR "userId" = $2)
			ORDER BY "startTime";
		`

	rows, err := r.pool.Query(ctx, sql, facilityID, userID)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings: %w", err)
	}

	defer rows.Close()

	var bookings []Booking

	for rows.Next() {
		b, err := scanBooking(rows)

		if err != nil {
			return nil, fmt.Errorf("error scanning booking row: %w", err)
		}

		bookings = append(bookings, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating booking rows: %w", err)
	}

	return bookings, nil
}

func (r *Repository) GetBookingByID(ctx context.Context, id string) (Booking, error) {
	sql := `SELECT ` + bookingColumns + ` FROM lighthouse.bookings WHERE id=$1;`

	b, err := scanBooking(r.pool.QueryRow(ctx, sql, id))

	if errors.Is(err, pgx.ErrNoRows) {
		return Booking{}, ErrBookingNotFound
	}

	if err != nil {
		return Booking{}, fmt.Errorf("failed to fetch booking with id %v: %w", id, err)
	}

	return b, nil
}

// InsertBookingIfFree admits a booking only when no pending or confirmed
// booking on the same facility overlaps [StartTime, EndTime).
//
// The scan and the insert run in one transaction: the facility's blocking
// bookings are locked FOR UPDATE, which serializes concurrent proposals
// against a facility that already has bookings, and the
// bookings_no_overlap exclusion constraint closes the remaining window
// when two proposals race on a facility with none. Exactly one of two
// racing proposals for the same slot can commit.
func (r *Repository) InsertBookingIfFree(ctx context.Context, b Booking) (Booking, error) {
	tx, err := r.pool.Begin(ctx)

	if err != nil {
		return Booking{}, fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer tx.Rollback(ctx)

	blocking, err := lockBlockingBookings(ctx, tx, b.FacilityID)

	if err != nil {
		return Booking{}, err
	}

	for _, existing := range blocking {
		if Overlaps(b.StartTime, b.EndTime, existing.StartTime, existing.EndTime) {
			return Booking{}, ErrSlotConflict
		}
	}

	sql := `
			INSERT INTO lighthouse.bookings(id, "facilityId", "userId", "startTime", "endTime", status, notes, "createdAt", "updatedAt")
			VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, ''), $8, $8);
		`

	b.ID = uuid.NewString()
	b.Status = StatusPending
	now := time.Now().UTC()
	b.CreatedAt = now
	b.UpdatedAt = now

	_, err = tx.Exec(ctx, sql,
		b.ID,
		b.FacilityID,
		b.UserID,
		b.StartTime,
		b.EndTime,
		b.Status,
		b.Notes,
		now,
	)

	if isExclusionViolation(err) {
		return Booking{}, ErrSlotConflict
	}

	if err != nil {
		return Booking{}, fmt.Errorf("failed to insert booking: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		if isExclusionViolation(err) {
			return Booking{}, ErrSlotConflict
		}
		return Booking{}, fmt.Errorf("failed to commit booking: %w", err)
	}

	return b, nil
}

// UpdateBookingIfFree rewrites a booking's time range and notes under the
// same no-overlap guard as InsertBookingIfFree, ignoring the booking's own
// previous slot.
func (r *Repository) UpdateBookingIfFree(ctx context.Context, b Booking) error {
	tx, err := r.pool.Begin(ctx)

	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer tx.Rollback(ctx)

	blocking, err := lockBlockingBookings(ctx, tx, b.FacilityID)

	if err != nil {
		return err
	}

	for _, existing := range blocking {
		if existing.ID == b.ID {
			continue
		}
		if Overlaps(b.StartTime, b.EndTime, existing.StartTime, existing.EndTime) {
			return ErrSlotConflict
		}
	}

	sql := `
			UPDATE lighthouse.bookings
			SET
				"startTime"=$1,
				"endTime"=$2,
				notes=NULLIF($3, ''),
				"updatedAt"=$4
			WHERE id=$5;
		`

	tag, err := tx.Exec(ctx, sql,
		b.StartTime,
		b.EndTime,
		b.Notes,
		time.Now().UTC(),
		b.ID,
	)

	if isExclusionViolation(err) {
		return ErrSlotConflict
	}

	if err != nil {
		return fmt.Errorf("failed to update booking: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return ErrBookingNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		if isExclusionViolation(err) {
			return ErrSlotConflict
		}
		return fmt.Errorf("failed to commit booking update: %w", err)
	}

	return nil
}

func lockBlockingBookings(ctx context.Context, tx pgx.Tx, facilityID string) ([]Booking, error) {
	sql := `
			SELECT ` + bookingColumns + `
			FROM lighthouse.bookings
			WHERE "facilityId"=$1 AND status IN ('pending', 'confirmed')
			FOR UPDATE;
		`

	rows, err := tx.Query(ctx, sql, facilityID)

	if err != nil {
		return nil, fmt.Errorf("failed to scan for conflicting bookings: %w", err)
	}

	defer rows.Close()

	var bookings []Booking

	for rows.Next() {
		b, err := scanBooking(rows)

		if err != nil {
			return nil, fmt.Errorf("error scanning booking row: %w", err)
		}

		bookings = append(bookings, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating booking rows: %w", err)
	}

	return bookings, nil
}

func isExclusionViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == exclusionViolation
}

func (r *Repository) SetBookingStatus(ctx context.Context, id string, status Status) error {
	sql := `
			UPDATE lighthouse.bookings
			SET status=$1, "updatedAt"=$2
			WHERE id=$3;
		`

	tag, err := r.pool.Exec(ctx, sql, status, time.Now().UTC(), id)

	if err != nil {
		return fmt.Errorf("failed to update booking '%v' status: %w", id, err)
	}

	if tag.RowsAffected() == 0 {
		return ErrBookingNotFound
	}

	return nil
}

func (r *Repository) CountActiveBookingsForFacility(ctx context.Context, facilityID string) (int, error) {
	sql := `
			SELECT COUNT(*) FROM lighthouse.bookings
			WHERE "facilityId"=$1 AND status IN ('pending', 'confirmed');
		`

	var count int
	err := r.pool.QueryRow(ctx, sql, facilityID).Scan(&count)

	if err != nil {
		return 0, fmt.Errorf("failed to count active bookings for facility '%v': %w", facilityID, err)
	}

	return count, nil
}

// CompletePastBookings marks confirmed bookings whose end time has passed
// as completed and returns how many were transitioned.
func (r *Repository) CompletePastBookings(ctx context.Context, now time.Time) (int64, error) {
	sql := `
			UPDATE lighthouse.bookings
			SET status='completed', "updatedAt"=$1
			WHERE status='confirmed' AND "endTime" < $1;
		`

	tag, err := r.pool.Exec(ctx, sql, now.UTC())

	if err != nil {
		return 0, fmt.Errorf("failed to complete past bookings: %w", err)
	}

	return tag.RowsAffected(), nil
}

// GetConfirmedStartingBetween returns confirmed bookings starting inside
// [from, to) that have not had a reminder sent yet.
func (r *Repository) GetConfirmedStartingBetween(ctx context.Context, from, to time.Time) ([]Booking, error) {
	sql := `
			SELECT ` + bookingColumns + `
			FROM lighthouse.bookings
			WHERE status='confirmed'
			AND "startTime" >= $1 AND "startTime" < $2
			AND "reminderSentAt" IS NULL;
		`

	rows, err := r.pool.Query(ctx, sql, from.UTC(), to.UTC())

	if err != nil {
		return nil, fmt.Errorf("failed to fetch upcoming bookings: %w", err)
	}

	defer rows.Close()

	var bookings []Booking

	for rows.Next() {
		b, err := scanBooking(rows)

		if err != nil {
			return nil, fmt.Errorf("error scanning booking row: %w", err)
		}

		bookings = append(bookings, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating booking rows: %w", err)
	}

	return bookings, nil
}

func (r *Repository) MarkReminderSent(ctx context.Context, id string, at time.Time) error {
	sql := `UPDATE lighthouse.bookings SET "reminderSentAt"=$1 WHERE id=$2;`

	tag, err := r.pool.Exec(ctx, sql, at.UTC(), id)

	if err != nil {
		return fmt.Errorf("failed to mark reminder sent for booking '%v': %w", id, err)
	}

	if tag.RowsAffected() == 0 {
		return ErrBookingNotFound
	}

	return nil
}

type FacilityBookingCount struct {
	FacilityID   string `json:"facilityId"`
	FacilityName string `json:"facilityName"`
	Count        int    `json:"bookingCount"`
}

type WeekDayBookingCount struct {
	WeekDay string `json:"dayOfWeek"`
	Count   int    `json:"bookingCount"`
}

type Totals struct {
	Total     int `json:"total"`
	ThisWeek  int `json:"thisWeek"`
	ThisMonth int `json:"thisMonth"`
}

func (r *Repository) GetBookingTotals(ctx context.Context, now time.Time) (Totals, error) {
	sql := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE "createdAt" >= $1),
			COUNT(*) FILTER (WHERE "createdAt" >= $2)
		FROM lighthouse.bookings;
	`

	weekAgo := now.UTC().Add(-7 * 24 * time.Hour)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	var t Totals
	err := r.pool.QueryRow(ctx, sql, weekAgo, monthStart).Scan(&t.Total, &t.ThisWeek, &t.ThisMonth)

	if err != nil {
		return Totals{}, fmt.Errorf("failed to fetch booking totals: %w", err)
	}

	return t, nil
}

func (r *Repository) GetBookingCountPerFacility(ctx context.Context) ([]FacilityBookingCount, error) {
	sql := `
		SELECT f.id, f.name, COUNT(b.id) as booking_count
		FROM lighthouse.facilities f
		LEFT JOIN lighthouse.bookings b
			ON b."facilityId" = f.id AND b.status <> 'cancelled'
		GROUP BY f.id, f.name
		ORDER BY booking_count DESC;
	`

	rows, err := r.pool.Query(ctx, sql)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch booking count per facility: %w", err)
	}

	defer rows.Close()

	stats := []FacilityBookingCount{}

	for rows.Next() {
		var fc FacilityBookingCount
		if err := rows.Scan(&fc.FacilityID, &fc.FacilityName, &fc.Count); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		stats = append(stats, fc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating booking rows: %w", err)
	}

	return stats, nil
}

func (r *Repository) GetBookingCountPerWeekDay(ctx context.Context) ([]WeekDayBookingCount, error) {
	sql := `
		SELECT
			TO_CHAR("startTime", 'Day') as day_of_week,
			COUNT(*) as booking_count
		FROM
			lighthouse.bookings
		WHERE status <> 'cancelled'
		GROUP BY
			TO_CHAR("startTime", 'Day')
		ORDER BY
			booking_count DESC;
	`

	rows, err := r.pool.Query(ctx, sql)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch booking count per week day: %w", err)
	}

	defer rows.Close()

	stats := []WeekDayBookingCount{}

	for rows.Next() {
		var wc WeekDayBookingCount
		if err := rows.Scan(&wc.WeekDay, &wc.Count); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		stats = append(stats, wc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating booking rows: %w", err)
	}

	return stats, nil
}

func (r *Repository) GetBookingCountPerFacilityInPeriod(ctx context.Context, start, end time.Time) ([]FacilityBookingCount, error) {
	sql := `
		SELECT f.id, f.name, COUNT(b.id) as booking_count
		FROM lighthouse.facilities f
		LEFT JOIN lighthouse.bookings b
			ON b."facilityId" = f.id
			AND b.status <> 'cancelled'
			AND b."startTime" BETWEEN $1 AND $2
		GROUP BY f.id, f.name
		ORDER BY booking_count DESC;
	`

	rows, err := r.pool.Query(ctx, sql, start.UTC(), end.UTC())

	if err != nil {
		return nil, fmt.Errorf("failed to fetch booking count per facility: %w", err)
	}

	defer rows.Close()

	stats := []FacilityBookingCount{}

	for rows.Next() {
		var fc FacilityBookingCount
		if err := rows.Scan(&fc.FacilityID, &fc.FacilityName, &fc.Count); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		stats = append(stats, fc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating booking rows: %w", err)
	}

	return stats, nil
}
