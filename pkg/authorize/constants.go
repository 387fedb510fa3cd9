package authorize

type Action string
type Resource string
type Role string

// ----------------------------
// Actions
// ----------------------------

const (
	ActionCreate Action = "create"
	ActionRead   Action = "read"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
	ActionList   Action = "list"

	// Respond is the appointment state transition (accept/reject/cancel).
	ActionRespond Action = "respond"

	// Manage covers every action on a resource.
	ActionManage Action = "manage"
)

const (
	WildcardAction Action = "*"
)

var KnownActions = map[Action]struct{}{
	ActionCreate: {}, ActionRead: {}, ActionUpdate: {}, ActionDelete: {}, ActionList: {},
	ActionRespond: {}, ActionManage: {},
}

// ----------------------------
// Resources
// ----------------------------

const (
	WildcardResource Resource = "*"

	ResourceAppointment  Resource = "appointment"
	ResourceNotification Resource = "notification"
	ResourcePet          Resource = "pet"
	ResourceDoctor       Resource = "doctor"
	ResourceSchedule     Resource = "schedule"
	ResourceEmail        Resource = "email"
	ResourceSystem       Resource = "system"
)

var KnownResources = map[Resource]struct{}{
	ResourceAppointment: {}, ResourceNotification: {}, ResourcePet: {},
	ResourceDoctor: {}, ResourceSchedule: {}, ResourceEmail: {}, ResourceSystem: {},
}

// ----------------------------
// Roles
// ----------------------------
//
// These are the "policy subjects" we assign to users via grouping policies.

const (
	WildcardRole Role = "*"

	RolePetOwner Role = "role:petOwner"
	RoleDoctor   Role = "role:doctor"
	RoleAdmin    Role = "role:admin"
)

var KnownRoles = map[Role]struct{}{
	RolePetOwner: {},
	RoleDoctor:   {},
	RoleAdmin:    {},
}

// UserRoleToRBACRole maps the users.role column to Casbin roles.
var UserRoleToRBACRole = map[string]Role{
	"petOwner": RolePetOwner,
	"doctor":   RoleDoctor,
	"admin":    RoleAdmin,
}

// ----------------------------
// Casbin tuple helpers
// ----------------------------

type PolicyEffect string

const (
	EffectAllow PolicyEffect = "allow"
	EffectDeny  PolicyEffect = "deny"
)

// GroupSubject is the g.sub in Casbin: a concrete principal id (user_id).
type GroupSubject string

// Grouping rows: g, user_id, role
type GroupingPolicy struct {
	Subject GroupSubject
	Role    Role
}

// Permission rows: p, role, resource, action, eft
type PermissionPolicy struct {
	Subject Role
	Object  Resource
	Action  Action
	Effect  PolicyEffect
}
