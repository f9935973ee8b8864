package identity

import "github.com/google/uuid"

// Role is the account level stored with the admin.
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "super_admin"
)

// IsValid reports whether r is a known role.
func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleSuperAdmin
}

// Capability names one thing an authenticated caller may do.
type Capability string

const (
	CapManageCatalog Capability = "manage_catalog"
	CapManageOrders  Capability = "manage_orders"
	CapViewStats     Capability = "view_stats"
	CapUploadMedia   Capability = "upload_media"
	CapViewContact   Capability = "view_contact"
	CapManageAdmins  Capability = "manage_admins"
)

var adminCapabilities = []Capability{
	CapManageCatalog,
	CapManageOrders,
	CapViewStats,
	CapUploadMedia,
	CapViewContact,
}

// Capabilities returns the capability set granted by the role.
func (r Role) Capabilities() CapabilitySet {
	set := CapabilitySet{}
	switch r {
	case RoleSuperAdmin:
		set[CapManageAdmins] = struct{}{}
		fallthrough
	case RoleAdmin:
		for _, c := range adminCapabilities {
			set[c] = struct{}{}
		}
	}
	return set
}

// CapabilitySet is an immutable-by-convention set of capabilities.
type CapabilitySet map[Capability]struct{}

// Has reports whether c is in the set.
func (s CapabilitySet) Has(c Capability) bool {
	_, ok := s[c]
	return ok
}

// Caller is the authenticated identity attached to a request. Its capabilities are
// resolved once, when the token is verified.
type Caller struct {
	ID           uuid.UUID
	Name         string
	Email        string
	Role         Role
	capabilities CapabilitySet
}

// NewCaller builds the caller context for an admin account.
func NewCaller(a *Admin) *Caller {
	return &Caller{
		ID:           a.ID,
		Name:         a.Name,
		Email:        a.Email,
		Role:         a.Role,
		capabilities: a.Role.Capabilities(),
	}
}

// Can reports whether the caller holds capability c. A nil caller holds nothing.
func (c *Caller) Can(capability Capability) bool {
	if c == nil {
		return false
	}
	return c.capabilities.Has(capability)
}
