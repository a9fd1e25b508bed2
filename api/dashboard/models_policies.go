package dashboard

// DaySchedule is the active window of a group policy on one weekday.
type DaySchedule struct {
	Active *bool   `json:"active,omitempty"`
	From   *string `json:"from,omitempty"`
	To     *string `json:"to,omitempty"`
}

// Scheduling restricts a group policy to weekly time windows.
type Scheduling struct {
	Enabled   *bool        `json:"enabled,omitempty"`
	Monday    *DaySchedule `json:"monday,omitempty"`
	Tuesday   *DaySchedule `json:"tuesday,omitempty"`
	Wednesday *DaySchedule `json:"wednesday,omitempty"`
	Thursday  *DaySchedule `json:"thursday,omitempty"`
	Friday    *DaySchedule `json:"friday,omitempty"`
	Saturday  *DaySchedule `json:"saturday,omitempty"`
	Sunday    *DaySchedule `json:"sunday,omitempty"`
}

// Bandwidth is the bandwidth setting of a group policy.
type Bandwidth struct {
	Settings        *string          `json:"settings,omitempty"`
	BandwidthLimits *BandwidthLimits `json:"bandwidthLimits,omitempty"`
}

// FirewallAndTrafficShaping combines the rule sets of a group policy.
type FirewallAndTrafficShaping struct {
	Settings            *string              `json:"settings,omitempty"`
	TrafficShapingRules []TrafficShapingRule `json:"trafficShapingRules,omitempty"`
	L3FirewallRules     []FirewallRule       `json:"l3FirewallRules,omitempty"`
	L7FirewallRules     []L7FirewallRule     `json:"l7FirewallRules,omitempty"`
}

// URLPatterns is an allow or block list of a content filter.
type URLPatterns struct {
	Settings *string  `json:"settings,omitempty"`
	Patterns []string `json:"patterns,omitempty"`
}

// BlockedURLCategories is the blocked category list of a content filter.
type BlockedURLCategories struct {
	Settings   *string  `json:"settings,omitempty"`
	Categories []string `json:"categories,omitempty"`
}

// ContentFiltering is the content filtering setting of a group policy.
type ContentFiltering struct {
	AllowedURLPatterns   *URLPatterns          `json:"allowedUrlPatterns,omitempty"`
	BlockedURLPatterns   *URLPatterns          `json:"blockedUrlPatterns,omitempty"`
	BlockedURLCategories *BlockedURLCategories `json:"blockedUrlCategories,omitempty"`
}

// VlanTagging assigns group policy clients to a VLAN.
type VlanTagging struct {
	Settings *string `json:"settings,omitempty"`
	VlanID   *string `json:"vlanId,omitempty"`
}

// BonjourForwardingRule forwards Bonjour services between VLANs.
type BonjourForwardingRule struct {
	Description *string  `json:"description,omitempty"`
	VlanID      *string  `json:"vlanId,omitempty"`
	Services    []string `json:"services,omitempty"`
}

// BonjourForwarding is the Bonjour forwarding setting of a group policy.
type BonjourForwarding struct {
	Settings *string                 `json:"settings,omitempty"`
	Rules    []BonjourForwardingRule `json:"rules,omitempty"`
}

// GroupPolicy is a network group policy.
type GroupPolicy struct {
	GroupPolicyID             string                     `json:"groupPolicyId"`
	Name                      string                     `json:"name"`
	SplashAuthSettings        string                     `json:"splashAuthSettings,omitempty"`
	Scheduling                *Scheduling                `json:"scheduling,omitempty"`
	Bandwidth                 *Bandwidth                 `json:"bandwidth,omitempty"`
	FirewallAndTrafficShaping *FirewallAndTrafficShaping `json:"firewallAndTrafficShaping,omitempty"`
	ContentFiltering          *ContentFiltering          `json:"contentFiltering,omitempty"`
	VlanTagging               *VlanTagging               `json:"vlanTagging,omitempty"`
	BonjourForwarding         *BonjourForwarding         `json:"bonjourForwarding,omitempty"`
}

// CreateNetworkGroupPolicy is the body of CreateNetworkGroupPolicy.
type CreateNetworkGroupPolicy struct {
	Name                      *string                    `json:"name,omitempty"`
	SplashAuthSettings        *string                    `json:"splashAuthSettings,omitempty"`
	Scheduling                *Scheduling                `json:"scheduling,omitempty"`
	Bandwidth                 *Bandwidth                 `json:"bandwidth,omitempty"`
	FirewallAndTrafficShaping *FirewallAndTrafficShaping `json:"firewallAndTrafficShaping,omitempty"`
	ContentFiltering          *ContentFiltering          `json:"contentFiltering,omitempty"`
	VlanTagging               *VlanTagging               `json:"vlanTagging,omitempty"`
	BonjourForwarding         *BonjourForwarding         `json:"bonjourForwarding,omitempty"`
}

// UpdateNetworkGroupPolicy is the body of UpdateNetworkGroupPolicy.
type UpdateNetworkGroupPolicy struct {
	Name                      *string                    `json:"name,omitempty"`
	SplashAuthSettings        *string                    `json:"splashAuthSettings,omitempty"`
	Scheduling                *Scheduling                `json:"scheduling,omitempty"`
	Bandwidth                 *Bandwidth                 `json:"bandwidth,omitempty"`
	FirewallAndTrafficShaping *FirewallAndTrafficShaping `json:"firewallAndTrafficShaping,omitempty"`
	ContentFiltering          *ContentFiltering          `json:"contentFiltering,omitempty"`
	VlanTagging               *VlanTagging               `json:"vlanTagging,omitempty"`
	BonjourForwarding         *BonjourForwarding         `json:"bonjourForwarding,omitempty"`
}
