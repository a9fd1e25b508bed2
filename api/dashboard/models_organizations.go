package dashboard

// Organization is a Dashboard organization.
type Organization struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url,omitempty"`
}

// CreateOrganization is the body of CreateOrganization.
type CreateOrganization struct {
	Name *string `json:"name,omitempty"`
}

// UpdateOrganization is the body of UpdateOrganization.
type UpdateOrganization struct {
	Name *string `json:"name,omitempty"`
}

// CloneOrganization is the body of CloneOrganization.
type CloneOrganization struct {
	Name *string `json:"name,omitempty"`
}

// License is a license key and the mode it is claimed in.
type License struct {
	Key  string `json:"key"`
	Mode string `json:"mode,omitempty"`
}

// ClaimOrganization is the body of ClaimOrganization. Exactly one of Order,
// Serial, or LicenseKey is expected.
type ClaimOrganization struct {
	Order       *string `json:"order,omitempty"`
	Serial      *string `json:"serial,omitempty"`
	LicenseKey  *string `json:"licenseKey,omitempty"`
	LicenseMode *string `json:"licenseMode,omitempty"`
}

// ClaimOrganizationResult lists what a claim added to the organization.
type ClaimOrganizationResult struct {
	Orders   []string  `json:"orders,omitempty"`
	Serials  []string  `json:"serials,omitempty"`
	Licenses []License `json:"licenses,omitempty"`
}

// DeviceStatus is one entry of an organization's device status list.
type DeviceStatus struct {
	Name           string `json:"name"`
	Serial         string `json:"serial"`
	MAC            string `json:"mac"`
	PublicIP       string `json:"publicIp,omitempty"`
	NetworkID      string `json:"networkId"`
	Status         string `json:"status"`
	LanIP          string `json:"lanIp,omitempty"`
	LastReportedAt string `json:"lastReportedAt,omitempty"`
	UsingCellular  bool   `json:"usingCellularFailover,omitempty"`
	Wan1IP         string `json:"wan1Ip,omitempty"`
	Wan2IP         string `json:"wan2Ip,omitempty"`
}

// Device status values reported by GetOrganizationDeviceStatuses.
const (
	DeviceStatusOnline   = "online"
	DeviceStatusOffline  = "offline"
	DeviceStatusAlerting = "alerting"
	DeviceStatusDormant  = "dormant"
)

// InventoryDevice is a device in the organization inventory.
type InventoryDevice struct {
	MAC       string `json:"mac"`
	Serial    string `json:"serial"`
	NetworkID string `json:"networkId,omitempty"`
	Model     string `json:"model"`
	ClaimedAt string `json:"claimedAt,omitempty"`
	PublicIP  string `json:"publicIp,omitempty"`
	Name      string `json:"name,omitempty"`
}

// LicenseState summarizes the licensing of an organization.
type LicenseState struct {
	Status               string         `json:"status"`
	ExpirationDate       string         `json:"expirationDate"`
	LicensedDeviceCounts map[string]int `json:"licensedDeviceCounts,omitempty"`
}

// UplinkLossAndLatency is the loss and latency history of one appliance uplink.
type UplinkLossAndLatency struct {
	NetworkID  string            `json:"networkId"`
	Serial     string            `json:"serial"`
	Uplink     string            `json:"uplink"`
	IP         string            `json:"ip"`
	TimeSeries []TimeSeriesPoint `json:"timeSeries"`
}

// TimeSeriesPoint is one loss/latency sample.
type TimeSeriesPoint struct {
	TS          string   `json:"ts"`
	LossPercent *float64 `json:"lossPercent"`
	LatencyMs   *float64 `json:"latencyMs"`
}

// GetOrganizationUplinksLossAndLatencyParams are the optional query
// parameters of GetOrganizationUplinksLossAndLatency.
type GetOrganizationUplinksLossAndLatencyParams struct {
	T0       *string
	T1       *string
	Timespan *int
	Uplink   *string
	IP       *string
}

// OrganizationSnmp holds the SNMP settings of an organization.
type OrganizationSnmp struct {
	V2cEnabled bool     `json:"v2cEnabled"`
	V3Enabled  bool     `json:"v3Enabled"`
	V3AuthMode string   `json:"v3AuthMode,omitempty"`
	V3PrivMode string   `json:"v3PrivMode,omitempty"`
	PeerIPs    []string `json:"peerIps,omitempty"`
	Hostname   string   `json:"hostname,omitempty"`
	Port       int      `json:"port,omitempty"`
}

// UpdateOrganizationSnmp is the body of UpdateOrganizationSnmp.
type UpdateOrganizationSnmp struct {
	V2cEnabled *bool   `json:"v2cEnabled,omitempty"`
	V3Enabled  *bool   `json:"v3Enabled,omitempty"`
	V3AuthMode *string `json:"v3AuthMode,omitempty"`
	V3AuthPass *string `json:"v3AuthPass,omitempty"`
	V3PrivMode *string `json:"v3PrivMode,omitempty"`
	V3PrivPass *string `json:"v3PrivPass,omitempty"`
	PeerIPs    *string `json:"peerIps,omitempty"`
}

// IpsecPolicies are custom IPsec parameters of a third-party VPN peer.
type IpsecPolicies struct {
	IkeCipherAlgo         []string `json:"ikeCipherAlgo,omitempty"`
	IkeAuthAlgo           []string `json:"ikeAuthAlgo,omitempty"`
	IkeDiffieHellmanGroup []string `json:"ikeDiffieHellmanGroup,omitempty"`
	IkeLifetime           *int     `json:"ikeLifetime,omitempty"`
	ChildCipherAlgo       []string `json:"childCipherAlgo,omitempty"`
	ChildAuthAlgo         []string `json:"childAuthAlgo,omitempty"`
	ChildPfsGroup         []string `json:"childPfsGroup,omitempty"`
	ChildLifetime         *int     `json:"childLifetime,omitempty"`
}

// ThirdPartyVPNPeer is a non-Meraki site-to-site VPN peer.
type ThirdPartyVPNPeer struct {
	Name                string         `json:"name"`
	PublicIP            string         `json:"publicIp"`
	PrivateSubnets      []string       `json:"privateSubnets"`
	Secret              string         `json:"secret"`
	IpsecPoliciesPreset string         `json:"ipsecPoliciesPreset,omitempty"`
	IpsecPolicies       *IpsecPolicies `json:"ipsecPolicies,omitempty"`
	NetworkTags         []string       `json:"networkTags,omitempty"`
}

// UpdateOrganizationThirdPartyVPNPeers is the body of UpdateOrganizationThirdPartyVPNPeers.
type UpdateOrganizationThirdPartyVPNPeers struct {
	Peers []ThirdPartyVPNPeer `json:"peers"`
}

// FirewallRule is a layer 3 firewall rule. The same shape is used by MX,
// cellular, site-to-site VPN, and SSID rule sets.
type FirewallRule struct {
	Comment       *string `json:"comment,omitempty"`
	Policy        *string `json:"policy,omitempty"`
	Protocol      *string `json:"protocol,omitempty"`
	SrcPort       *string `json:"srcPort,omitempty"`
	SrcCidr       *string `json:"srcCidr,omitempty"`
	DestPort      *string `json:"destPort,omitempty"`
	DestCidr      *string `json:"destCidr,omitempty"`
	SyslogEnabled *bool   `json:"syslogEnabled,omitempty"`
}

// UpdateOrganizationVpnFirewallRules is the body of UpdateOrganizationVpnFirewallRules.
type UpdateOrganizationVpnFirewallRules struct {
	Rules             []FirewallRule `json:"rules,omitempty"`
	SyslogDefaultRule *bool          `json:"syslogDefaultRule,omitempty"`
}
