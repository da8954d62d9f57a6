// Package policy is the single source of truth for role-based access
// control. Every service consults the same evaluator instead of scattering
// role conditionals across handlers.
package policy

type Role string

const (
	RoleStudent Role = "student"
	RoleCoach   Role = "coach"
	RoleParent  Role = "parent"
	RoleAdmin   Role = "admin"
)

func ValidRole(r Role) bool {
	switch r {
	case RoleStudent, RoleCoach, RoleParent, RoleAdmin:
		return true
	}
	return false
}

type Resource string

const (
	ResourceUsers         Resource = "users"
	ResourceFacilities    Resource = "facilities"
	ResourceBookings      Resource = "bookings"
	ResourceTrainingLogs  Resource = "trainingLogs"
	ResourceNotifications Resource = "notifications"
	ResourceAnalytics     Resource = "analytics"
)

type Action string

const (
	ActionRead       Action = "read"
	ActionCreate     Action = "create"
	ActionUpdate     Action = "update"
	ActionDelete     Action = "delete"
	ActionCancel     Action = "cancel"
	ActionList       Action = "list"
	ActionRoleChange Action = "roleChange"
	ActionSend       Action = "send"
)

type Decision int

const (
	Deny Decision = iota
	Allow
)

func (d Decision) Allowed() bool { return d == Allow }

// Actor is the authenticated identity a request acts as.
type Actor struct {
	ID   string
	Role Role
}

// Evaluator decides whether an actor may perform an action on a resource.
// ownerID identifies the record owner for own-only grants; pass "" for
// actions without an owner (create, list, analytics).
type Evaluator interface {
	Evaluate(actor Actor, resource Resource, action Action, ownerID string) Decision
}

type rule struct {
	roles   []Role
	ownOnly bool
}

// Policy is the default evaluator. Zero value is ready to use; it is pure
// and safe for concurrent use.
type Policy struct{}

func New() Policy { return Policy{} }

var rules = map[Resource]map[Action]rule{
	ResourceFacilities: {
		ActionRead:   {roles: []Role{RoleStudent, RoleCoach, RoleParent}},
		ActionCreate: {},
		ActionUpdate: {},
		ActionDelete: {},
	},
	ResourceBookings: {
		ActionCreate: {roles: []Role{RoleStudent, RoleCoach, RoleParent}, ownOnly: true},
		ActionRead:   {roles: []Role{RoleStudent, RoleCoach, RoleParent}, ownOnly: true},
		ActionUpdate: {roles: []Role{RoleStudent, RoleCoach, RoleParent}, ownOnly: true},
		ActionCancel: {roles: []Role{RoleStudent, RoleCoach, RoleParent}, ownOnly: true},
	},
	ResourceTrainingLogs: {
		ActionCreate: {roles: []Role{RoleCoach}},
		ActionUpdate: {roles: []Role{RoleCoach}, ownOnly: true},
		ActionRead:   {roles: []Role{RoleStudent, RoleCoach}, ownOnly: true},
		ActionDelete: {},
	},
	ResourceUsers: {
		ActionList:       {roles: []Role{RoleCoach}},
		ActionRoleChange: {},
		ActionRead:       {roles: []Role{RoleStudent, RoleCoach, RoleParent}, ownOnly: true},
		ActionUpdate:     {roles: []Role{RoleStudent, RoleCoach, RoleParent}, ownOnly: true},
	},
	ResourceNotifications: {
		ActionSend:   {roles: []Role{RoleCoach}},
		ActionRead:   {roles: []Role{RoleStudent, RoleCoach, RoleParent}, ownOnly: true},
		ActionUpdate: {roles: []Role{RoleStudent, RoleCoach, RoleParent}, ownOnly: true},
		ActionDelete: {roles: []Role{RoleStudent, RoleCoach, RoleParent}, ownOnly: true},
	},
	ResourceAnalytics: {
		ActionRead: {},
	},
}

// Evaluate returns Allow when the actor is an admin, or when the policy
// table grants the actor's role and, for own-only grants, the actor owns
// the record. Deny is a terminal decision, not an error.
func (Policy) Evaluate(actor Actor, resource Resource, action Action, ownerID string) Decision {
	if actor.Role == RoleAdmin {
		return Allow
	}

	actions, ok := rules[resource]
	if !ok {
		return Deny
	}

	r, ok := actions[action]
	if !ok {
		return Deny
	}

	granted := false
	for _, role := range r.roles {
		if role == actor.Role {
			granted = true
			break
		}
	}

	if !granted {
		return Deny
	}

	if r.ownOnly && actor.ID != ownerID {
		return Deny
	}

	return Allow
}
