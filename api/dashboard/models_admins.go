package dashboard

// AdminTag grants an administrator access to networks carrying a tag.
type AdminTag struct {
	Tag    string `json:"tag"`
	Access string `json:"access"`
}

// AdminNetwork grants an administrator access to a single network.
type AdminNetwork struct {
	ID     string `json:"id"`
	Access string `json:"access"`
}

// Admin is a Dashboard administrator of an organization.
type Admin struct {
	ID                   string         `json:"id"`
	Name                 string         `json:"name"`
	Email                string         `json:"email"`
	OrgAccess            string         `json:"orgAccess"`
	AccountStatus        string         `json:"accountStatus,omitempty"`
	TwoFactorAuthEnabled bool           `json:"twoFactorAuthEnabled,omitempty"`
	HasAPIKey            bool           `json:"hasApiKey,omitempty"`
	LastActive           string         `json:"lastActive,omitempty"`
	Tags                 []AdminTag     `json:"tags,omitempty"`
	Networks             []AdminNetwork `json:"networks,omitempty"`
}

// CreateOrganizationAdmin is the body of CreateOrganizationAdmin.
type CreateOrganizationAdmin struct {
	Email     *string        `json:"email,omitempty"`
	Name      *string        `json:"name,omitempty"`
	OrgAccess *string        `json:"orgAccess,omitempty"`
	Tags      []AdminTag     `json:"tags,omitempty"`
	Networks  []AdminNetwork `json:"networks,omitempty"`
}

// UpdateOrganizationAdmin is the body of UpdateOrganizationAdmin.
type UpdateOrganizationAdmin struct {
	Name      *string        `json:"name,omitempty"`
	OrgAccess *string        `json:"orgAccess,omitempty"`
	Tags      []AdminTag     `json:"tags,omitempty"`
	Networks  []AdminNetwork `json:"networks,omitempty"`
}

// SamlRoleTag grants a SAML role access to networks carrying a tag.
type SamlRoleTag struct {
	Tag    string `json:"tag"`
	Access string `json:"access"`
}

// SamlRoleNetwork grants a SAML role access to a single network.
type SamlRoleNetwork struct {
	ID     string `json:"id"`
	Access string `json:"access"`
}

// SamlRole is a SAML administrator role.
type SamlRole struct {
	ID        string            `json:"id"`
	Role      string            `json:"role"`
	OrgAccess string            `json:"orgAccess"`
	Tags      []SamlRoleTag     `json:"tags,omitempty"`
	Networks  []SamlRoleNetwork `json:"networks,omitempty"`
}

// CreateOrganizationSamlRole is the body of CreateOrganizationSamlRole.
type CreateOrganizationSamlRole struct {
	Role      *string           `json:"role,omitempty"`
	OrgAccess *string           `json:"orgAccess,omitempty"`
	Tags      []SamlRoleTag     `json:"tags,omitempty"`
	Networks  []SamlRoleNetwork `json:"networks,omitempty"`
}

// UpdateOrganizationSamlRole is the body of UpdateOrganizationSamlRole.
type UpdateOrganizationSamlRole struct {
	Role      *string           `json:"role,omitempty"`
	OrgAccess *string           `json:"orgAccess,omitempty"`
	Tags      []SamlRoleTag     `json:"tags,omitempty"`
	Networks  []SamlRoleNetwork `json:"networks,omitempty"`
}
