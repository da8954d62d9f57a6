package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/lighthouse-academy/lighthouse-backend/policy"
	"golang.org/x/crypto/bcrypt"
)

type UserRepository interface {
	GetUserByID(ctx context.Context, id string) (User, error)
	GetUserByEmail(ctx context.Context, email string) (User, error)
	InsertUser(ctx context.Context, u User) (User, error)
	ListUsers(ctx context.Context) ([]Summary, error)
	SetUserRole(ctx context.Context, id string, role policy.Role) error
	UpdateProfile(ctx context.Context, id, name, membershipPlan string) error
	GetUserCountPerRole(ctx context.Context) ([]RoleCount, error)
}

type Service struct {
	repo     UserRepository
	policies policy.Evaluator
}

func NewService(repo UserRepository, policies policy.Evaluator) *Service {
	return &Service{repo: repo, policies: policies}
}

// Register creates a new account. Self-registered users start as students
// on the free plan, matching first sign-in behavior.
func (s *Service) Register(ctx context.Context, name, email, password string) (User, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(strings.ToLower(email))

	if len(name) == 0 || len(email) == 0 || len(password) == 0 {
		return User{}, ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)

	if err != nil {
		return User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	return s.repo.InsertUser(ctx, User{
		Name:           name,
		Email:          email,
		Role:           policy.RoleStudent,
		MembershipPlan: "Free",
		PasswordHash:   string(hash),
	})
}

// Authenticate verifies credentials and returns the account. Token
// issuance is the API layer's concern.
func (s *Service) Authenticate(ctx context.Context, email, password string) (User, error) {
	u, err := s.repo.GetUserByEmail(ctx, strings.TrimSpace(strings.ToLower(email)))

	if errors.Is(err, ErrUserNotFound) {
		return User{}, ErrInvalidCredentials
	}

	if err != nil {
		return User{}, err
	}

	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return User{}, ErrInvalidCredentials
	}

	return u, nil
}

func (s *Service) FindUserByID(ctx context.Context, id string) (User, error) {
	return s.repo.GetUserByID(ctx, id)
}

func (s *Service) ListUsers(ctx context.Context, actor policy.Actor) ([]Summary, error) {
	if !s.policies.Evaluate(actor, policy.ResourceUsers, policy.ActionList, "").Allowed() {
		return nil, ErrNotAllowed
	}

	return s.repo.ListUsers(ctx)
}

func (s *Service) ChangeRole(ctx context.Context, actor policy.Actor, userID string, role policy.Role) error {
	if !s.policies.Evaluate(actor, policy.ResourceUsers, policy.ActionRoleChange, "").Allowed() {
		return ErrNotAllowed
	}

	if !policy.ValidRole(role) {
		return ErrInvalidRole
	}

	return s.repo.SetUserRole(ctx, userID, role)
}

func (s *Service) GetProfile(ctx context.Context, actor policy.Actor, userID string) (User, error) {
	if !s.policies.Evaluate(actor, policy.ResourceUsers, policy.ActionRead, userID).Allowed() {
		return User{}, ErrNotAllowed
	}

	return s.repo.GetUserByID(ctx, userID)
}

func (s *Service) UpdateProfile(ctx context.Context, actor policy.Actor, userID, name, membershipPlan string) error {
	if !s.policies.Evaluate(actor, policy.ResourceUsers, policy.ActionUpdate, userID).Allowed() {
		return ErrNotAllowed
	}

	name = strings.TrimSpace(name)

	if len(name) == 0 {
		return ErrInvalidProfile
	}

	return s.repo.UpdateProfile(ctx, userID, name, membershipPlan)
}

func (s *Service) GetUserCountPerRole(ctx context.Context, actor policy.Actor) ([]RoleCount, error) {
	if !s.policies.Evaluate(actor, policy.ResourceAnalytics, policy.ActionRead, "").Allowed() {
		return nil, ErrNotAllowed
	}

	return s.repo.GetUserCountPerRole(ctx)
}

// SeedAdmin ensures the configured admin account exists. Called once at
// startup; a missing configuration is logged and skipped.
func (s *Service) SeedAdmin(ctx context.Context, name, email, password string) error {
	logger := slog.Default().With("component", "user")

	if len(email) == 0 || len(password) == 0 {
		logger.Warn("admin seed not configured, skipping")
		return nil
	}

	_, err := s.repo.GetUserByEmail(ctx, strings.ToLower(email))

	if err == nil {
		return nil
	}

	if !errors.Is(err, ErrUserNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)

	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	_, err = s.repo.InsertUser(ctx, User{
		Name:         name,
		Email:        strings.ToLower(email),
		Role:         policy.RoleAdmin,
		PasswordHash: string(hash),
	})

	if err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}

	logger.Info("seeded admin user", "email", email)

	return nil
}
