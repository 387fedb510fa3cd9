package authorize

import (
	"context"
	"log/slog"
)

// SeedDefaultPolicies sets up the baseline RBAC policies for the system.
func SeedDefaultPolicies(ctx context.Context, auth IAuthorization) error {
	logger := slog.Default()

	policies := []PermissionPolicy{
		// Admin: god mode
		{RoleAdmin, WildcardResource, WildcardAction, EffectAllow},

		// Pet owners book and follow their own appointments; ownership
		// scoping happens in the services, RBAC gates the verb.
		{RolePetOwner, ResourceAppointment, ActionCreate, EffectAllow},
		{RolePetOwner, ResourceAppointment, ActionRead, EffectAllow},
		{RolePetOwner, ResourceAppointment, ActionList, EffectAllow},
		{RolePetOwner, ResourceNotification, ActionRead, EffectAllow},
		{RolePetOwner, ResourceNotification, ActionList, EffectAllow},
		{RolePetOwner, ResourceNotification, ActionUpdate, EffectAllow},
		{RolePetOwner, ResourcePet, ActionCreate, EffectAllow},
		{RolePetOwner, ResourcePet, ActionRead, EffectAllow},
		{RolePetOwner, ResourcePet, ActionList, EffectAllow},
		{RolePetOwner, ResourceDoctor, ActionRead, EffectAllow},
		{RolePetOwner, ResourceDoctor, ActionList, EffectAllow},

		// Doctors triage their queue and publish their schedule.
		{RoleDoctor, ResourceAppointment, ActionRead, EffectAllow},
		{RoleDoctor, ResourceAppointment, ActionList, EffectAllow},
		{RoleDoctor, ResourceAppointment, ActionRespond, EffectAllow},
		{RoleDoctor, ResourceSchedule, ActionUpdate, EffectAllow},
		{RoleDoctor, ResourceDoctor, ActionRead, EffectAllow},
		{RoleDoctor, ResourceDoctor, ActionList, EffectAllow},
	}

	for _, p := range policies {
		added, err := auth.AddPermission(ctx, p.Subject, p.Object, p.Action, p.Effect)
		if err != nil {
			logger.Error("failed to add policy", "policy", p, "error", err)
			return err
		}
		if added {
			logger.Debug("added policy", "role", p.Subject, "resource", p.Object, "action", p.Action)
		}
	}

	logger.Info("seeded default RBAC policies", "count", len(policies))
	return nil
}

// AssignUserRole maps a users.role value to its Casbin role and grants it.
// Call this when creating a new user.
func AssignUserRole(ctx context.Context, auth IAuthorization, userID, userRole string) error {
	role, ok := UserRoleToRBACRole[userRole]
	if !ok {
		return ErrInvalidArgs
	}
	_, err := auth.AddRoleForUser(ctx, GroupSubject(userID), role)
	return err
}
