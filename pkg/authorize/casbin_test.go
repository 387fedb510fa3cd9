package authorize

import (
	"context"
	"testing"
)

func newSeededAuth(t *testing.T, adminBypass bool) IAuthorization {
	t.Helper()
	e, err := NewMemoryEnforcer()
	if err != nil {
		t.Fatal(err)
	}
	auth, err := NewAuthorization(e, adminBypass)
	if err != nil {
		t.Fatal(err)
	}
	if err := SeedDefaultPolicies(context.Background(), auth); err != nil {
		t.Fatal(err)
	}
	return auth
}

func TestPetOwnerPermissions(t *testing.T) {
	auth := newSeededAuth(t, false)
	ctx := context.Background()

	if _, err := auth.AddRoleForUser(ctx, "owner-1", RolePetOwner); err != nil {
		t.Fatal(err)
	}

	allowed := []struct {
		obj Resource
		act Action
	}{
		{ResourceAppointment, ActionCreate},
		{ResourceAppointment, ActionList},
		{ResourceNotification, ActionUpdate},
		{ResourcePet, ActionList},
		{ResourceDoctor, ActionRead},
	}
	for _, c := range allowed {
		ok, err := auth.Enforce(ctx, "owner-1", c.obj, c.act)
		if err != nil {
			t.Fatalf("Enforce(%s,%s): %v", c.obj, c.act, err)
		}
		if !ok {
			t.Errorf("petOwner should be allowed %s on %s", c.act, c.obj)
		}
	}

	denied := []struct {
		obj Resource
		act Action
	}{
		{ResourceAppointment, ActionRespond},
		{ResourceSchedule, ActionUpdate},
		{ResourceEmail, ActionCreate},
	}
	for _, c := range denied {
		ok, err := auth.Enforce(ctx, "owner-1", c.obj, c.act)
		if err != nil {
			t.Fatalf("Enforce(%s,%s): %v", c.obj, c.act, err)
		}
		if ok {
			t.Errorf("petOwner should be denied %s on %s", c.act, c.obj)
		}
	}
}

func TestDoctorCanRespond(t *testing.T) {
	auth := newSeededAuth(t, false)
	ctx := context.Background()

	if _, err := auth.AddRoleForUser(ctx, "doc-1", RoleDoctor); err != nil {
		t.Fatal(err)
	}

	ok, err := auth.Enforce(ctx, "doc-1", ResourceAppointment, ActionRespond)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Error("doctor should be allowed to respond")
	}

	ok, err = auth.Enforce(ctx, "doc-1", ResourceAppointment, ActionCreate)
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Error("doctor should not create appointments")
	}
}

func TestAdminWildcard(t *testing.T) {
	auth := newSeededAuth(t, false)
	ctx := context.Background()

	if _, err := auth.AddRoleForUser(ctx, "admin-1", RoleAdmin); err != nil {
		t.Fatal(err)
	}

	for _, obj := range []Resource{ResourceAppointment, ResourceEmail, ResourceSchedule, ResourceSystem} {
		ok, err := auth.Enforce(ctx, "admin-1", obj, ActionManage)
		if err != nil {
			t.Fatal(err)
		}
		if !ok {
			t.Errorf("admin should manage %s", obj)
		}
	}
}

func TestAdminBypassSkipsPolicyLookup(t *testing.T) {
	e, err := NewMemoryEnforcer()
	if err != nil {
		t.Fatal(err)
	}
	auth, err := NewAuthorization(e, true)
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()

	// No permission rows seeded at all; grouping alone grants access.
	if _, err := auth.AddRoleForUser(ctx, "admin-1", RoleAdmin); err != nil {
		t.Fatal(err)
	}
	ok, err := auth.Enforce(ctx, "admin-1", ResourceAppointment, ActionRespond)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Error("admin bypass should allow without policies")
	}
}

func TestEnforceRejectsUnknownConstants(t *testing.T) {
	auth := newSeededAuth(t, false)
	ctx := context.Background()

	if _, err := auth.Enforce(ctx, "u", Resource("bogus"), ActionRead); err == nil {
		t.Error("unknown resource should error")
	}
	if _, err := auth.Enforce(ctx, "u", ResourcePet, Action("bogus")); err == nil {
		t.Error("unknown action should error")
	}
	if _, err := auth.Enforce(ctx, "", ResourcePet, ActionRead); err == nil {
		t.Error("empty subject should error")
	}
}

func TestMustEnforceReturnsForbidden(t *testing.T) {
	auth := newSeededAuth(t, false)
	ctx := context.Background()

	if _, err := auth.AddRoleForUser(ctx, "owner-1", RolePetOwner); err != nil {
		t.Fatal(err)
	}
	err := auth.MustEnforce(ctx, "owner-1", ResourceAppointment, ActionRespond)
	if err != ErrForbidden {
		t.Errorf("err = %v, want ErrForbidden", err)
	}
}

func TestNewAuthorizationWithoutAdapter(t *testing.T) {
	e, err := NewMemoryEnforcer()
	if err != nil {
		t.Fatal(err)
	}
	auth, err := NewAuthorization(e, false)
	if err != nil {
		t.Fatalf("adapterless enforcer: %v", err)
	}

	ok, err := auth.Enforce(context.Background(), "u", ResourcePet, ActionRead)
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Error("empty policy set should deny")
	}
}
