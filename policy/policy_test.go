package policy_test

import (
	"testing"

	"github.com/lighthouse-academy/lighthouse-backend/policy"
	"github.com/stretchr/testify/require"
)

func TestAdminAlwaysAllowed(t *testing.T) {
	p := policy.New()
	admin := policy.Actor{ID: "admin1", Role: policy.RoleAdmin}

	resources := []policy.Resource{
		policy.ResourceUsers,
		policy.ResourceFacilities,
		policy.ResourceBookings,
		policy.ResourceTrainingLogs,
		policy.ResourceNotifications,
		policy.ResourceAnalytics,
	}
	actions := []policy.Action{
		policy.ActionRead,
		policy.ActionCreate,
		policy.ActionUpdate,
		policy.ActionDelete,
		policy.ActionCancel,
		policy.ActionList,
		policy.ActionRoleChange,
		policy.ActionSend,
	}

	for _, res := range resources {
		for _, act := range actions {
			require.Equal(t, policy.Allow, p.Evaluate(admin, res, act, "someone-else"),
				"admin should be allowed %s on %s", act, res)
		}
	}
}

func TestFacilityAccess(t *testing.T) {
	p := policy.New()

	for _, role := range []policy.Role{policy.RoleStudent, policy.RoleCoach, policy.RoleParent} {
		actor := policy.Actor{ID: "u1", Role: role}

		require.Equal(t, policy.Allow, p.Evaluate(actor, policy.ResourceFacilities, policy.ActionRead, ""))
		require.Equal(t, policy.Deny, p.Evaluate(actor, policy.ResourceFacilities, policy.ActionCreate, ""))
		require.Equal(t, policy.Deny, p.Evaluate(actor, policy.ResourceFacilities, policy.ActionUpdate, ""))
		require.Equal(t, policy.Deny, p.Evaluate(actor, policy.ResourceFacilities, policy.ActionDelete, ""))
	}
}

func TestCoachCannotDeleteFacility(t *testing.T) {
	p := policy.New()
	coach := policy.Actor{ID: "coach1", Role: policy.RoleCoach}

	require.Equal(t, policy.Deny, p.Evaluate(coach, policy.ResourceFacilities, policy.ActionDelete, ""))
}

func TestBookingOwnership(t *testing.T) {
	p := policy.New()
	student := policy.Actor{ID: "student1", Role: policy.RoleStudent}

	t.Run("own booking", func(t *testing.T) {
		require.Equal(t, policy.Allow, p.Evaluate(student, policy.ResourceBookings, policy.ActionCreate, "student1"))
		require.Equal(t, policy.Allow, p.Evaluate(student, policy.ResourceBookings, policy.ActionRead, "student1"))
		require.Equal(t, policy.Allow, p.Evaluate(student, policy.ResourceBookings, policy.ActionCancel, "student1"))
	})

	t.Run("someone else's booking", func(t *testing.T) {
		require.Equal(t, policy.Deny, p.Evaluate(student, policy.ResourceBookings, policy.ActionRead, "student2"))
		require.Equal(t, policy.Deny, p.Evaluate(student, policy.ResourceBookings, policy.ActionUpdate, "student2"))
		require.Equal(t, policy.Deny, p.Evaluate(student, policy.ResourceBookings, policy.ActionCancel, "student2"))
	})

	t.Run("admin on someone else's booking", func(t *testing.T) {
		admin := policy.Actor{ID: "admin1", Role: policy.RoleAdmin}
		require.Equal(t, policy.Allow, p.Evaluate(admin, policy.ResourceBookings, policy.ActionCancel, "student1"))
	})
}

func TestTrainingLogAccess(t *testing.T) {
	p := policy.New()
	student := policy.Actor{ID: "student1", Role: policy.RoleStudent}
	coach := policy.Actor{ID: "coach1", Role: policy.RoleCoach}
	parent := policy.Actor{ID: "parent1", Role: policy.RoleParent}

	require.Equal(t, policy.Deny, p.Evaluate(student, policy.ResourceTrainingLogs, policy.ActionCreate, ""))
	require.Equal(t, policy.Allow, p.Evaluate(coach, policy.ResourceTrainingLogs, policy.ActionCreate, ""))
	require.Equal(t, policy.Deny, p.Evaluate(parent, policy.ResourceTrainingLogs, policy.ActionRead, "parent1"))

	require.Equal(t, policy.Allow, p.Evaluate(student, policy.ResourceTrainingLogs, policy.ActionRead, "student1"))
	require.Equal(t, policy.Deny, p.Evaluate(student, policy.ResourceTrainingLogs, policy.ActionRead, "student2"))

	require.Equal(t, policy.Allow, p.Evaluate(coach, policy.ResourceTrainingLogs, policy.ActionUpdate, "coach1"))
	require.Equal(t, policy.Deny, p.Evaluate(coach, policy.ResourceTrainingLogs, policy.ActionDelete, "coach1"))
}

func TestUserListAndRoleChange(t *testing.T) {
	p := policy.New()

	require.Equal(t, policy.Deny, p.Evaluate(policy.Actor{ID: "s", Role: policy.RoleStudent}, policy.ResourceUsers, policy.ActionList, ""))
	require.Equal(t, policy.Deny, p.Evaluate(policy.Actor{ID: "p", Role: policy.RoleParent}, policy.ResourceUsers, policy.ActionList, ""))
	require.Equal(t, policy.Allow, p.Evaluate(policy.Actor{ID: "c", Role: policy.RoleCoach}, policy.ResourceUsers, policy.ActionList, ""))

	require.Equal(t, policy.Deny, p.Evaluate(policy.Actor{ID: "c", Role: policy.RoleCoach}, policy.ResourceUsers, policy.ActionRoleChange, ""))
	require.Equal(t, policy.Allow, p.Evaluate(policy.Actor{ID: "a", Role: policy.RoleAdmin}, policy.ResourceUsers, policy.ActionRoleChange, ""))
}

func TestNotificationAccess(t *testing.T) {
	p := policy.New()
	student := policy.Actor{ID: "student1", Role: policy.RoleStudent}
	coach := policy.Actor{ID: "coach1", Role: policy.RoleCoach}

	require.Equal(t, policy.Deny, p.Evaluate(student, policy.ResourceNotifications, policy.ActionSend, ""))
	require.Equal(t, policy.Allow, p.Evaluate(coach, policy.ResourceNotifications, policy.ActionSend, ""))

	require.Equal(t, policy.Allow, p.Evaluate(student, policy.ResourceNotifications, policy.ActionRead, "student1"))
	require.Equal(t, policy.Deny, p.Evaluate(student, policy.ResourceNotifications, policy.ActionDelete, "student2"))
}

func TestAnalyticsAdminOnly(t *testing.T) {
	p := policy.New()

	for _, role := range []policy.Role{policy.RoleStudent, policy.RoleCoach, policy.RoleParent} {
		require.Equal(t, policy.Deny, p.Evaluate(policy.Actor{ID: "u", Role: role}, policy.ResourceAnalytics, policy.ActionRead, ""))
	}
	require.Equal(t, policy.Allow, p.Evaluate(policy.Actor{ID: "a", Role: policy.RoleAdmin}, policy.ResourceAnalytics, policy.ActionRead, ""))
}

func TestUnknownResourceOrActionDenied(t *testing.T) {
	p := policy.New()
	coach := policy.Actor{ID: "c", Role: policy.RoleCoach}

	require.Equal(t, policy.Deny, p.Evaluate(coach, policy.Resource("payments"), policy.ActionRead, ""))
	require.Equal(t, policy.Deny, p.Evaluate(coach, policy.ResourceFacilities, policy.Action("archive"), ""))
}

func TestValidRole(t *testing.T) {
	require.True(t, policy.ValidRole(policy.RoleStudent))
	require.True(t, policy.ValidRole(policy.RoleAdmin))
	require.False(t, policy.ValidRole(policy.Role("superuser")))
}
