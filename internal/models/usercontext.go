package models

// User type values carried in JWT claims and routing decisions
const (
	UserTypePrimary = "user"
	UserTypeSubuser = "subuser"
)

// UserContext is the resolved identity for an email address. Exactly one of
// the primary-account fields (UserID) or the subuser fields (SubuserID,
// ParentEmail) is populated; a subuser never has private-API access.
type UserContext struct {
	UserID            *int64 `json:"user_id,omitempty"`      // Set for primary accounts only
	Email             string `json:"email"`                  // Normalized lowercase
	Name              string `json:"name"`                   // Display name
	IsSubuser         bool   `json:"is_subuser"`             // True for sub-accounts
	SubuserID         *int64 `json:"subuser_id,omitempty"`   // Set iff IsSubuser
	ParentEmail       string `json:"parent_email,omitempty"` // Set iff IsSubuser
	PrivateAPIEnabled bool   `json:"private_api_enabled"`    // Forced false for subusers
}

// UserType returns the user type constant for this context.
func (c *UserContext) UserType() string {
	if c.IsSubuser {
		return UserTypeSubuser
	}
	return UserTypePrimary
}

// EffectiveEmail returns the email of the account whose data a request should
// operate on: the parent account for subusers, the account itself otherwise.
func (c *UserContext) EffectiveEmail() string {
	if c.IsSubuser && c.ParentEmail != "" {
		return c.ParentEmail
	}
	return c.Email
}
