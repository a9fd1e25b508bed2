package dashboard

// RadiusServer is a RADIUS authentication server of an SSID.
type RadiusServer struct {
	Host   string `json:"host"`
	Port   int    `json:"port,omitempty"`
	Secret string `json:"secret,omitempty"`
}

// ApTagsAndVlanID maps AP tags to a VLAN for an SSID.
type ApTagsAndVlanID struct {
	Tags   string `json:"tags"`
	VlanID int    `json:"vlanId"`
}

// Ssid is the configuration of one wireless network slot (0-14).
type Ssid struct {
	Number                      int               `json:"number"`
	Name                        string            `json:"name"`
	Enabled                     bool              `json:"enabled"`
	SplashPage                  string            `json:"splashPage,omitempty"`
	SsidAdminAccessible         bool              `json:"ssidAdminAccessible,omitempty"`
	AuthMode                    string            `json:"authMode"`
	EncryptionMode              string            `json:"encryptionMode,omitempty"`
	WpaEncryptionMode           string            `json:"wpaEncryptionMode,omitempty"`
	RadiusServers               []RadiusServer    `json:"radiusServers,omitempty"`
	RadiusAccountingEnabled     bool              `json:"radiusAccountingEnabled,omitempty"`
	IPAssignmentMode            string            `json:"ipAssignmentMode,omitempty"`
	UseVlanTagging              bool              `json:"useVlanTagging,omitempty"`
	VlanID                      int               `json:"vlanId,omitempty"`
	DefaultVlanID               int               `json:"defaultVlanId,omitempty"`
	ApTagsAndVlanIDs            []ApTagsAndVlanID `json:"apTagsAndVlanIds,omitempty"`
	WalledGardenEnabled         bool              `json:"walledGardenEnabled,omitempty"`
	WalledGardenRanges          string            `json:"walledGardenRanges,omitempty"`
	MinBitrate                  float64           `json:"minBitrate,omitempty"`
	BandSelection               string            `json:"bandSelection,omitempty"`
	PerClientBandwidthLimitUp   int               `json:"perClientBandwidthLimitUp,omitempty"`
	PerClientBandwidthLimitDown int               `json:"perClientBandwidthLimitDown,omitempty"`
}

// UpdateNetworkSsid is the body of UpdateNetworkSsid.
type UpdateNetworkSsid struct {
	Name                        *string           `json:"name,omitempty"`
	Enabled                     *bool             `json:"enabled,omitempty"`
	AuthMode                    *string           `json:"authMode,omitempty"`
	EnterpriseAdminAccess       *string           `json:"enterpriseAdminAccess,omitempty"`
	EncryptionMode              *string           `json:"encryptionMode,omitempty"`
	Psk                         *string           `json:"psk,omitempty"`
	WpaEncryptionMode           *string           `json:"wpaEncryptionMode,omitempty"`
	SplashPage                  *string           `json:"splashPage,omitempty"`
	RadiusServers               []RadiusServer    `json:"radiusServers,omitempty"`
	RadiusAccountingEnabled     *bool             `json:"radiusAccountingEnabled,omitempty"`
	RadiusAccountingServers     []RadiusServer    `json:"radiusAccountingServers,omitempty"`
	IPAssignmentMode            *string           `json:"ipAssignmentMode,omitempty"`
	UseVlanTagging              *bool             `json:"useVlanTagging,omitempty"`
	VlanID                      *int              `json:"vlanId,omitempty"`
	DefaultVlanID               *int              `json:"defaultVlanId,omitempty"`
	ApTagsAndVlanIDs            []ApTagsAndVlanID `json:"apTagsAndVlanIds,omitempty"`
	WalledGardenEnabled         *bool             `json:"walledGardenEnabled,omitempty"`
	WalledGardenRanges          *string           `json:"walledGardenRanges,omitempty"`
	MinBitrate                  *float64          `json:"minBitrate,omitempty"`
	BandSelection               *string           `json:"bandSelection,omitempty"`
	PerClientBandwidthLimitUp   *int              `json:"perClientBandwidthLimitUp,omitempty"`
	PerClientBandwidthLimitDown *int              `json:"perClientBandwidthLimitDown,omitempty"`
}

// UpdateNetworkSsidL3FirewallRules is the body of UpdateNetworkSsidL3FirewallRules.
type UpdateNetworkSsidL3FirewallRules struct {
	Rules          []FirewallRule `json:"rules,omitempty"`
	AllowLanAccess *bool          `json:"allowLanAccess,omitempty"`
}

// SplashSettings holds the splash page settings of an SSID.
type SplashSettings struct {
	SsidNumber   int    `json:"ssidNumber"`
	SplashPage   string `json:"splashPage,omitempty"`
	UseSplashURL bool   `json:"useSplashUrl"`
	SplashURL    string `json:"splashUrl,omitempty"`
}

// UpdateNetworkSsidSplashSettings is the body of UpdateNetworkSsidSplashSettings.
type UpdateNetworkSsidSplashSettings struct {
	SplashURL    *string `json:"splashUrl,omitempty"`
	UseSplashURL *bool   `json:"useSplashUrl,omitempty"`
}

// BandwidthLimits are upload and download limits in Kbps.
type BandwidthLimits struct {
	LimitUp   *int `json:"limitUp,omitempty"`
	LimitDown *int `json:"limitDown,omitempty"`
}

// PerClientBandwidthLimits overrides bandwidth limits for matching traffic.
type PerClientBandwidthLimits struct {
	Settings        *string          `json:"settings,omitempty"`
	BandwidthLimits *BandwidthLimits `json:"bandwidthLimits,omitempty"`
}

// TrafficShapingDefinition selects the traffic a shaping rule applies to.
type TrafficShapingDefinition struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// TrafficShapingRule is a traffic shaping rule of an SSID or group policy.
type TrafficShapingRule struct {
	Definitions              []TrafficShapingDefinition `json:"definitions,omitempty"`
	PerClientBandwidthLimits *PerClientBandwidthLimits  `json:"perClientBandwidthLimits,omitempty"`
	DscpTagValue             *int                       `json:"dscpTagValue,omitempty"`
	PcpTagValue              *int                       `json:"pcpTagValue,omitempty"`
}

// SsidTrafficShaping is the traffic shaping configuration of an SSID.
type SsidTrafficShaping struct {
	TrafficShapingEnabled bool                 `json:"trafficShapingEnabled"`
	DefaultRulesEnabled   bool                 `json:"defaultRulesEnabled"`
	Rules                 []TrafficShapingRule `json:"rules,omitempty"`
}

// UpdateNetworkSsidTrafficShaping is the body of UpdateNetworkSsidTrafficShaping.
type UpdateNetworkSsidTrafficShaping struct {
	TrafficShapingEnabled *bool                `json:"trafficShapingEnabled,omitempty"`
	DefaultRulesEnabled   *bool                `json:"defaultRulesEnabled,omitempty"`
	Rules                 []TrafficShapingRule `json:"rules,omitempty"`
}
