package domain

// Department scopes staff roles. Staff registration validates the requested
// role against the department's role set (or the department-agnostic
// default set).
type Department string

const (
	DepartmentFrontDesk    Department = "front_desk"
	DepartmentHousekeeping Department = "housekeeping"
	DepartmentRestaurant   Department = "restaurant"
	DepartmentMaintenance  Department = "maintenance"
)

// Role is a closed enumeration. Any string outside the tables below resolves
// to the zero capability set and hierarchy level 0.
type Role string

const (
	RoleAdmin               Role = "admin"
	RoleGeneralManager      Role = "general_manager"
	RoleSupervisor          Role = "supervisor"
	RoleStaff               Role = "staff"
	RoleFrontDeskManager    Role = "front_desk_manager"
	RoleReceptionist        Role = "receptionist"
	RoleConcierge           Role = "concierge"
	RoleHousekeepingManager Role = "housekeeping_manager"
	RoleHousekeeper         Role = "housekeeper"
	RoleRestaurantManager   Role = "restaurant_manager"
	RoleChef                Role = "chef"
	RoleWaiter              Role = "waiter"
	RoleMaintenanceManager  Role = "maintenance_manager"
	RoleTechnician          Role = "technician"
)

// Capability names a single boolean permission, used by the RBAC middleware
// to guard privileged routes.
type Capability string

const (
	CapManageStaff          Capability = "manage_staff"
	CapManageBookings       Capability = "manage_bookings"
	CapManageRooms          Capability = "manage_rooms"
	CapManageGuests         Capability = "manage_guests"
	CapViewReports          Capability = "view_reports"
	CapManageAttendance     Capability = "manage_attendance"
	CapAccessAllDepartments Capability = "access_all_departments"
)

// CapabilitySet is the fixed permission record attached to a role. The zero
// value denies everything.
type CapabilitySet struct {
	ManageStaff          bool `json:"manage_staff"`
	ManageBookings       bool `json:"manage_bookings"`
	ManageRooms          bool `json:"manage_rooms"`
	ManageGuests         bool `json:"manage_guests"`
	ViewReports          bool `json:"view_reports"`
	ManageAttendance     bool `json:"manage_attendance"`
	AccessAllDepartments bool `json:"access_all_departments"`
}

// Has reports whether the set grants the named capability. Unknown
// capability names are denied.
func (s CapabilitySet) Has(c Capability) bool {
	switch c {
	case CapManageStaff:
		return s.ManageStaff
	case CapManageBookings:
		return s.ManageBookings
	case CapManageRooms:
		return s.ManageRooms
	case CapManageGuests:
		return s.ManageGuests
	case CapViewReports:
		return s.ViewReports
	case CapManageAttendance:
		return s.ManageAttendance
	case CapAccessAllDepartments:
		return s.AccessAllDepartments
	}
	return false
}

var allCapabilities = CapabilitySet{
	ManageStaff:          true,
	ManageBookings:       true,
	ManageRooms:          true,
	ManageGuests:         true,
	ViewReports:          true,
	ManageAttendance:     true,
	AccessAllDepartments: true,
}

var roleCapabilities = map[Role]CapabilitySet{
	RoleAdmin:          allCapabilities,
	RoleGeneralManager: allCapabilities,
	RoleSupervisor: {
		ViewReports:          true,
		ManageAttendance:     true,
		AccessAllDepartments: true,
	},
	RoleFrontDeskManager: {
		ManageBookings:   true,
		ManageGuests:     true,
		ViewReports:      true,
		ManageAttendance: true,
	},
	RoleReceptionist: {
		ManageBookings: true,
		ManageGuests:   true,
	},
	RoleConcierge: {
		ManageBookings: true,
	},
	RoleHousekeepingManager: {
		ManageRooms:      true,
		ViewReports:      true,
		ManageAttendance: true,
	},
	RoleRestaurantManager: {
		ViewReports:      true,
		ManageAttendance: true,
	},
	RoleMaintenanceManager: {
		ManageRooms:      true,
		ViewReports:      true,
		ManageAttendance: true,
	},
	// RoleStaff, RoleHousekeeper, RoleChef, RoleWaiter and RoleTechnician
	// intentionally carry no capabilities.
}

var roleLevels = map[Role]int{
	RoleAdmin:               100,
	RoleGeneralManager:      90,
	RoleFrontDeskManager:    60,
	RoleHousekeepingManager: 60,
	RoleRestaurantManager:   60,
	RoleMaintenanceManager:  60,
	RoleSupervisor:          50,
	RoleReceptionist:        30,
	RoleChef:                30,
	RoleConcierge:           25,
	RoleHousekeeper:         20,
	RoleTechnician:          20,
	RoleWaiter:              15,
	RoleStaff:               10,
}

// defaultRoles are valid in every department.
var defaultRoles = []Role{RoleGeneralManager, RoleSupervisor, RoleStaff}

var departmentRoles = map[Department][]Role{
	DepartmentFrontDesk:    {RoleFrontDeskManager, RoleReceptionist, RoleConcierge},
	DepartmentHousekeeping: {RoleHousekeepingManager, RoleHousekeeper},
	DepartmentRestaurant:   {RoleRestaurantManager, RoleChef, RoleWaiter},
	DepartmentMaintenance:  {RoleMaintenanceManager, RoleTechnician},
}

// Capabilities resolves a role to its capability set. Unknown roles resolve
// to the zero (all-denied) set.
func Capabilities(r Role) CapabilitySet {
	return roleCapabilities[r]
}

// Level returns the hierarchy level of a role; higher means more authority.
// Unknown roles are level 0.
func Level(r Role) int {
	return roleLevels[r]
}

// IsAtLeast reports whether role a carries at least the authority of role b.
func IsAtLeast(a, b Role) bool {
	return Level(a) >= Level(b)
}

// HasCapability reports whether the role's capability set grants c.
func HasCapability(r Role, c Capability) bool {
	return Capabilities(r).Has(c)
}

// RolesForDepartment returns the roles registrable within a department: the
// department's own set followed by the department-agnostic defaults.
func RolesForDepartment(d Department) []Role {
	roles := make([]Role, 0, len(departmentRoles[d])+len(defaultRoles))
	roles = append(roles, departmentRoles[d]...)
	roles = append(roles, defaultRoles...)
	return roles
}

// ValidRoleForDepartment reports whether r may be assigned to a staff member
// in department d.
func ValidRoleForDepartment(r Role, d Department) bool {
	for _, candidate := range RolesForDepartment(d) {
		if candidate == r {
			return true
		}
	}
	return false
}
