package domain

// Role enumerates access levels for dashboard accounts.
type Role string

const (
	RoleAdmin         Role = "ADMIN"
	RoleManager       Role = "MANAGER"
	RoleHR            Role = "HR"
	RoleRecruiter     Role = "RECRUITER"
	RoleViewer        Role = "VIEWER"
	RoleEmployee      Role = "EMPLOYEE"
	RoleAuthenticated Role = "AUTHENTICATED"
)

// AllRoles lists every assignable role.
func AllRoles() []Role {
	return []Role{
		RoleAdmin,
		RoleManager,
		RoleHR,
		RoleRecruiter,
		RoleViewer,
		RoleEmployee,
		RoleAuthenticated,
	}
}

// ValidRole reports whether the string names a known role.
func ValidRole(r Role) bool {
	switch r {
	case RoleAdmin, RoleManager, RoleHR, RoleRecruiter, RoleViewer, RoleEmployee, RoleAuthenticated:
		return true
	}
	return false
}
