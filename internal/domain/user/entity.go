package user

import "time"

type Role string

const (
	RoleAdmin    Role = "admin"    // Full access, any department
	RoleManager  Role = "manager"  // Can approve adjustments/leave within their department
	RoleEmpleado Role = "empleado" // Regular employee
)

var RoleValues = []string{
	string(RoleAdmin),
	string(RoleManager),
	string(RoleEmpleado),
}

type User struct {
	ID           string
	Email        string
	PasswordHash *string
	Name         string
	Role         Role
	Department   string
	Language     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin checks if user has full access
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// IsManager checks if user is manager or admin
func (u *User) IsManager() bool {
	return u.Role == RoleManager || u.Role == RoleAdmin
}

// CanResolveFor reports whether the user may approve or reject requests made
// by an employee of the given department. Managers are scoped to their own
// department; admins are not.
func (u *User) CanResolveFor(department string) bool {
	if u.Role == RoleAdmin {
		return true
	}
	return u.Role == RoleManager && u.Department == department
}
