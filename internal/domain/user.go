package domain

import "time"

// Role enumerates caller roles.
type Role string

const (
	RoleCitizen Role = "citizen"
	RoleOfficer Role = "officer"
	RoleAdmin   Role = "admin"
)

// User is an account holder. DepartmentID is meaningful only for
// officers; an officer without one is unassigned and sees no complaints.
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	DepartmentID *int64
	ZoneID       *int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Principal carries the identity attributes the core needs from an
// authenticated caller. It is passed explicitly to every core operation;
// nothing reads ambient session state.
type Principal struct {
	ID           int64
	Role         Role
	DepartmentID *int64
}

// PrincipalFor derives a principal from a user record.
func PrincipalFor(user *User) Principal {
	p := Principal{ID: user.ID, Role: user.Role}
	if user.Role == RoleOfficer {
		p.DepartmentID = user.DepartmentID
	}
	return p
}
