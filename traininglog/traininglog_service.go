package traininglog

import (
	"context"
	"strings"

	"github.com/lighthouse-academy/lighthouse-backend/policy"
	"github.com/lighthouse-academy/lighthouse-backend/user"
)

type TrainingLogRepository interface {
	GetTrainingLogs(ctx context.Context, filter Filter) ([]TrainingLog, error)
	GetTrainingLogByID(ctx context.Context, id string) (TrainingLog, error)
	InsertTrainingLog(ctx context.Context, l TrainingLog) (TrainingLog, error)
	UpdateTrainingLog(ctx context.Context, l TrainingLog) error
	DeleteTrainingLog(ctx context.Context, id string) error
}

type UserGetter interface {
	GetUserByID(ctx context.Context, id string) (user.User, error)
}

type Service struct {
	repo     TrainingLogRepository
	users    UserGetter
	policies policy.Evaluator
}

func NewService(repo TrainingLogRepository, users UserGetter, policies policy.Evaluator) *Service {
	return &Service{repo: repo, users: users, policies: policies}
}

// CreateTrainingLog records a coaching session. Coaches always log under
// their own id; admins may log on behalf of another coach.
func (s *Service) CreateTrainingLog(ctx context.Context, actor policy.Actor, l TrainingLog) (TrainingLog, error) {
	if !s.policies.Evaluate(actor, policy.ResourceTrainingLogs, policy.ActionCreate, "").Allowed() {
		return TrainingLog{}, ErrNotAllowed
	}

	if actor.Role != policy.RoleAdmin || len(l.CoachID) == 0 {
		l.CoachID = actor.ID
	}

	if err := validate(l); err != nil {
		return TrainingLog{}, err
	}

	if _, err := s.users.GetUserByID(ctx, l.UserID); err != nil {
		return TrainingLog{}, err
	}

	return s.repo.InsertTrainingLog(ctx, l)
}

// ListTrainingLogs returns logs visible to the actor: admins see all and
// may filter by subject or coach, coaches see sessions they coached or
// attended, everyone else only their own.
func (s *Service) ListTrainingLogs(ctx context.Context, actor policy.Actor, userID, coachID string) ([]TrainingLog, error) {
	filter := Filter{UserID: userID, CoachID: coachID}

	switch actor.Role {
	case policy.RoleAdmin:
	case policy.RoleCoach:
		filter.CoachID = ""
		filter.VisibleTo = actor.ID
	default:
		filter = Filter{UserID: actor.ID}
	}

	return s.repo.GetTrainingLogs(ctx, filter)
}

func (s *Service) FindTrainingLogByID(ctx context.Context, actor policy.Actor, id string) (TrainingLog, error) {
	l, err := s.repo.GetTrainingLogByID(ctx, id)

	if err != nil {
		return TrainingLog{}, err
	}

	if !s.canRead(actor, l) {
		return TrainingLog{}, ErrNotAllowed
	}

	return l, nil
}

func (s *Service) ModifyTrainingLog(ctx context.Context, actor policy.Actor, updated TrainingLog) error {
	l, err := s.repo.GetTrainingLogByID(ctx, updated.ID)

	if err != nil {
		return err
	}

	if !s.policies.Evaluate(actor, policy.ResourceTrainingLogs, policy.ActionUpdate, l.CoachID).Allowed() {
		return ErrNotAllowed
	}

	l.ActivityType = updated.ActivityType
	l.Notes = updated.Notes
	l.Metrics = updated.Metrics
	l.SessionDate = updated.SessionDate

	if err := validate(l); err != nil {
		return err
	}

	return s.repo.UpdateTrainingLog(ctx, l)
}

func (s *Service) DeleteTrainingLog(ctx context.Context, actor policy.Actor, id string) error {
	if _, err := s.repo.GetTrainingLogByID(ctx, id); err != nil {
		return err
	}

	if !s.policies.Evaluate(actor, policy.ResourceTrainingLogs, policy.ActionDelete, "").Allowed() {
		return ErrNotAllowed
	}

	return s.repo.DeleteTrainingLog(ctx, id)
}

// canRead grants read when the actor is the session's subject or its
// coach; the ownerID passed to the policy reflects whichever side the
// actor is on.
func (s *Service) canRead(actor policy.Actor, l TrainingLog) bool {
	ownerID := l.UserID

	if actor.ID == l.CoachID {
		ownerID = l.CoachID
	}

	return s.policies.Evaluate(actor, policy.ResourceTrainingLogs, policy.ActionRead, ownerID).Allowed()
}

func validate(l TrainingLog) error {
	if len(strings.TrimSpace(l.ActivityType)) == 0 {
		return ErrInvalidTrainingLog
	}

	if len(l.UserID) == 0 || len(l.CoachID) == 0 {
		return ErrInvalidTrainingLog
	}

	if l.SessionDate.IsZero() {
		return ErrInvalidTrainingLog
	}

	if m := l.Metrics; m != nil {
		if m.Duration < 0 {
			return ErrInvalidTrainingLog
		}
		if m.Intensity != 0 && (m.Intensity < 1 || m.Intensity > 10) {
			return ErrInvalidTrainingLog
		}
		if m.Rating != 0 && (m.Rating < 1 || m.Rating > 5) {
			return ErrInvalidTrainingLog
		}
	}

	return nil
}
