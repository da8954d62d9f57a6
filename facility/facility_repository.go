package facility

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository struct{ pool *pgxpool.Pool }

func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

const facilityColumns = `id, name, type, COALESCE(capacity, 0), COALESCE(description, ''), "availabilitySchedule", "createdAt", "updatedAt"`

func scanFacility(row pgx.Row) (Facility, error) {
	var f Facility
	var schedule []byte

	err := row.Scan(
		&f.ID,
		&f.Name,
		&f.Type,
		&f.Capacity,
		&f.Description,
		&schedule,
		&f.CreatedAt,
		&f.UpdatedAt,
	)

	if err != nil {
		return Facility{}, err
	}

	if err := json.Unmarshal(schedule, &f.AvailabilitySchedule); err != nil {
		return Facility{}, fmt.Errorf("failed to decode availability schedule: %w", err)
	}

	return f, nil
}

func (r *Repository) GetFacilities(ctx context.Context) ([]Facility, error) {
	sql := `SELECT ` + facilityColumns + ` FROM lighthouse.facilities ORDER BY name;`

	rows, err := r.pool.Query(ctx, sql)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch facilities: %w", err)
	}

	defer rows.Close()

	var facilities []Facility

	for rows.Next() {
		f, err := scanFacility(rows)

		if err != nil {
			return nil, fmt.Errorf("error scanning facility row: %w", err)
		}

		facilities = append(facilities, f)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating facility rows: %w", err)
	}

	return facilities, nil
}

func (r *Repository) GetFacilityByID(ctx context.Context, id string) (Facility, error) {
	sql := `SELECT ` + facilityColumns + ` FROM lighthouse.facilities WHERE id=$1;`

	f, err := scanFacility(r.pool.QueryRow(ctx, sql, id))

	if errors.Is(err, pgx.ErrNoRows) {
		return Facility{}, ErrFacilityNotFound
	}

	if err != nil {
		return Facility{}, fmt.Errorf("failed to fetch facility with id %v: %w", id, err)
	}

	return f, nil
}

func (r *Repository) InsertFacility(ctx context.Context, f Facility) (Facility, error) {
	sql := `
			INSERT INTO lighthouse.facilities(id, name, type, capacity, description, "availabilitySchedule", "createdAt", "updatedAt")
			VALUES ($1, $2, $3, NULLIF($4, 0), $5, $6, $7, $7);
		`

	schedule, err := json.Marshal(scheduleOrEmpty(f.AvailabilitySchedule))

	if err != nil {
		return Facility{}, fmt.Errorf("failed to encode availability schedule: %w", err)
	}

	f.ID = uuid.NewString()
	now := time.Now().UTC()
	f.CreatedAt = now
	f.UpdatedAt = now

	_, err = r.pool.Exec(ctx, sql,
		f.ID,
		f.Name,
		f.Type,
		f.Capacity,
		f.Description,
		schedule,
		now,
	)

	if err != nil {
		return Facility{}, fmt.Errorf("failed to insert facility: %w", err)
	}

	return f, nil
}

func (r *Repository) UpdateFacility(ctx context.Context, f Facility) error {
	sql := `
			UPDATE lighthouse.facilities
			SET
				name=$1,
				type=$2,
				capacity=NULLIF($3, 0),
				description=$4,
				"availabilitySchedule"=$5,
				"updatedAt"=$6
			WHERE id=$7;
		`

	schedule, err := json.Marshal(scheduleOrEmpty(f.AvailabilitySchedule))

	if err != nil {
		return fmt.Errorf("failed to encode availability schedule: %w", err)
	}

	tag, err := r.pool.Exec(ctx, sql,
		f.Name,
		f.Type,
		f.Capacity,
		f.Description,
		schedule,
		time.Now().UTC(),
		f.ID,
	)

	if err != nil {
		return fmt.Errorf("failed to update facility: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return ErrFacilityNotFound
	}

	return nil
}

func (r *Repository) DeleteFacility(ctx context.Context, id string) error {
	sql := `DELETE FROM lighthouse.facilities WHERE id=$1;`

	tag, err := r.pool.Exec(ctx, sql, id)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23503" {
		return ErrFacilityInUse
	}

	if err != nil {
		return fmt.Errorf("failed to delete facility '%v': %w", id, err)
	}

	if tag.RowsAffected() == 0 {
		return ErrFacilityNotFound
	}

	return nil
}

func scheduleOrEmpty(schedule []AvailabilityWindow) []AvailabilityWindow {
	if schedule == nil {
		return []AvailabilityWindow{}
	}
	return schedule
}
