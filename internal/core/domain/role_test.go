package domain

import "testing"

func TestCapabilities_FailClosed(t *testing.T) {
	caps := Capabilities(Role("janitor-in-chief"))
	if caps != (CapabilitySet{}) {
		t.Fatalf("unknown role must resolve to the zero set, got %+v", caps)
	}
	if Level(Role("janitor-in-chief")) != 0 {
		t.Fatalf("unknown role must be level 0")
	}
	if caps.Has(Capability("launch_fireworks")) {
		t.Fatalf("unknown capability must be denied")
	}
}

func TestCapabilities_Roles(t *testing.T) {
	if !HasCapability(RoleAdmin, CapManageStaff) {
		t.Fatalf("admin must manage staff")
	}
	if !HasCapability(RoleGeneralManager, CapAccessAllDepartments) {
		t.Fatalf("general manager must access all departments")
	}
	if HasCapability(RoleReceptionist, CapManageStaff) {
		t.Fatalf("receptionist must not manage staff")
	}
	if !HasCapability(RoleReceptionist, CapManageBookings) {
		t.Fatalf("receptionist must manage bookings")
	}
	if HasCapability(RoleWaiter, CapViewReports) {
		t.Fatalf("waiter carries no capabilities")
	}
}

func TestIsAtLeast(t *testing.T) {
	if !IsAtLeast(RoleAdmin, RoleGeneralManager) {
		t.Fatalf("admin outranks general manager")
	}
	if IsAtLeast(RoleSupervisor, RoleFrontDeskManager) {
		t.Fatalf("supervisor (50) must not outrank department managers (60)")
	}
	if !IsAtLeast(RoleStaff, RoleStaff) {
		t.Fatalf("a role is at least itself")
	}
	if IsAtLeast(Role("nope"), RoleStaff) {
		t.Fatalf("unknown role must rank below every known role")
	}
}

func TestRolesForDepartment(t *testing.T) {
	roles := RolesForDepartment(DepartmentRestaurant)
	want := map[Role]bool{
		RoleRestaurantManager: true,
		RoleChef:              true,
		RoleWaiter:            true,
		RoleGeneralManager:    true,
		RoleSupervisor:        true,
		RoleStaff:             true,
	}
	if len(roles) != len(want) {
		t.Fatalf("unexpected role set: %v", roles)
	}
	for _, r := range roles {
		if !want[r] {
			t.Fatalf("unexpected role %s for restaurant", r)
		}
	}

	if ValidRoleForDepartment(RoleHousekeeper, DepartmentRestaurant) {
		t.Fatalf("housekeeper does not belong in the restaurant")
	}
	if !ValidRoleForDepartment(RoleSupervisor, DepartmentMaintenance) {
		t.Fatalf("supervisor is valid in every department")
	}
	if ValidRoleForDepartment(RoleAdmin, DepartmentFrontDesk) {
		t.Fatalf("admin is not a staff role")
	}
}
