package models

// RoleAdmin is the role value required to call any endpoint of this API.
// It is the only authorization tier in the system.
const RoleAdmin = "Admin"

// User represents the caller's account record in the identity system.
// Only the role attribute is consulted; everything else about the account
// (credentials, profile) lives in the external identity provider.
type User struct {
	// UID is the identity-provider-assigned unique id of the account,
	// recovered from the verified bearer token.
	UID string `json:"uid"`

	// Role is the authorization role stored in the user document. Empty when
	// the identity has no user document at all; such callers are
	// authenticated but hold no role.
	Role string `json:"role"`
}

// IsAdmin reports whether the user holds the admin role.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
