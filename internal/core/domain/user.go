package domain

import "time"

// UserRole controls what a staff member may do.
type UserRole string

const (
	RoleOfficer        UserRole = "OFFICER"
	RoleRevenueOfficer UserRole = "REVENUE_OFFICER"
	RoleAdmin          UserRole = "ADMIN"
)

// User is a staff account.
type User struct {
	UserID       string   `json:"userID"`
	Username     string   `json:"username"`
	PasswordHash string   `json:"-"`
	Name         string   `json:"name"`
	Role         UserRole `json:"role"`
	IsActive     bool     `json:"isActive"`
	AuditFields

	// Refresh token state, stored hashed.
	RefreshTokenHash       *string    `json:"-"`
	RefreshTokenExpiryTime *time.Time `json:"-"`
}

// GoogleUserInfo is the subset of the Google profile used to match or
// provision a staff account during OAuth sign-in.
type GoogleUserInfo struct {
	Sub           string `json:"sub"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"email_verified"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}

// CanRecordPayments reports whether the role is allowed to record collections.
func (u *User) CanRecordPayments() bool {
	return u.Role == RoleRevenueOfficer || u.Role == RoleAdmin
}

// IsAdmin reports whether the user has administrative privileges.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
