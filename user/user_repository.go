package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lighthouse-academy/lighthouse-backend/policy"
)

type Repository struct{ pool *pgxpool.Pool }

func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

const userColumns = `id, name, email, role, COALESCE("membershipPlan", ''), "passwordHash", "createdAt", "updatedAt"`

func scanUser(row pgx.Row) (User, error) {
	var u User
	err := row.Scan(
		&u.ID,
		&u.Name,
		&u.Email,
		&u.Role,
		&u.MembershipPlan,
		&u.PasswordHash,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	return u, err
}

func (r *Repository) GetUserByID(ctx context.Context, id string) (User, error) {
	sql := `SELECT ` + userColumns + ` FROM lighthouse.users WHERE id=$1;`

	u, err := scanUser(r.pool.QueryRow(ctx, sql, id))

	if errors.Is(err, pgx.ErrNoRows) {
		return User{}, ErrUserNotFound
	}

	if err != nil {
		return User{}, fmt.Errorf("failed to fetch user with id %v: %w", id, err)
	}

	return u, nil
}

func (r *Repository) GetUserByEmail(ctx context.Context, email string) (User, error) {
	sql := `SELECT ` + userColumns + ` FROM lighthouse.users WHERE email=$1;`

	u, err := scanUser(r.pool.QueryRow(ctx, sql, email))

	if errors.Is(err, pgx.ErrNoRows) {
		return User{}, ErrUserNotFound
	}

	if err != nil {
		return User{}, fmt.Errorf("failed to fetch user with email %v: %w", email, err)
	}

	return u, nil
}

func (r *Repository) InsertUser(ctx context.Context, u User) (User, error) {
	sql := `
			INSERT INTO lighthouse.users(id, name, email, role, "membershipPlan", "passwordHash", "createdAt", "updatedAt")
			VALUES ($1, $2, $3, $4, $5, $6, $7, $7);
		`

	u.ID = uuid.NewString()
	now := time.Now().UTC()
	u.CreatedAt = now
	u.UpdatedAt = now

	_, err := r.pool.Exec(ctx, sql,
		u.ID,
		u.Name,
		u.Email,
		u.Role,
		u.MembershipPlan,
		u.PasswordHash,
		now,
	)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return User{}, ErrEmailTaken
	}

	if err != nil {
		return User{}, fmt.Errorf("failed to insert user: %w", err)
	}

	return u, nil
}

func (r *Repository) ListUsers(ctx context.Context) ([]Summary, error) {
	sql := `SELECT id, name, email, role FROM lighthouse.users ORDER BY name;`

	rows, err := r.pool.Query(ctx, sql)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch users: %w", err)
	}

	defer rows.Close()

	var users []Summary

	for rows.Next() {
		var s Summary
		if err := rows.Scan(&s.ID, &s.Name, &s.Email, &s.Role); err != nil {
			return nil, fmt.Errorf("error scanning user row: %w", err)
		}
		users = append(users, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating user rows: %w", err)
	}

	return users, nil
}

func (r *Repository) SetUserRole(ctx context.Context, id string, role policy.Role) error {
	sql := `UPDATE lighthouse.users SET role=$1, "updatedAt"=$2 WHERE id=$3;`

	tag, err := r.pool.Exec(ctx, sql, role, time.Now().UTC(), id)

	if err != nil {
		return fmt.Errorf("failed to update role for user '%v': %w", id, err)
	}

	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}

	return nil
}

func (r *Repository) UpdateProfile(ctx context.Context, id, name, membershipPlan string) error {
	sql := `UPDATE lighthouse.users SET name=$1, "membershipPlan"=$2, "updatedAt"=$3 WHERE id=$4;`

	tag, err := r.pool.Exec(ctx, sql, name, membershipPlan, time.Now().UTC(), id)

	if err != nil {
		return fmt.Errorf("failed to update profile for user '%v': %w", id, err)
	}

	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}

	return nil
}

type RoleCount struct {
	Role  policy.Role `json:"role"`
	Count int         `json:"count"`
}

func (r *Repository) GetUserCountPerRole(ctx context.Context) ([]RoleCount, error) {
	sql := `SELECT role, COUNT(*) FROM lighthouse.users GROUP BY role ORDER BY role;`

	rows, err := r.pool.Query(ctx, sql)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch user count per role: %w", err)
	}

	defer rows.Close()

	stats := []RoleCount{}

	for rows.Next() {
		var rc RoleCount
		if err := rows.Scan(&rc.Role, &rc.Count); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		stats = append(stats, rc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating user rows: %w", err)
	}

	return stats, nil
}
