package dashboard

// FixedIPAssignment reserves an IP for a client MAC.
type FixedIPAssignment struct {
	IP   string `json:"ip"`
	Name string `json:"name,omitempty"`
}

// ReservedIPRange is a range excluded from DHCP.
type ReservedIPRange struct {
	Start   string `json:"start"`
	End     string `json:"end"`
	Comment string `json:"comment,omitempty"`
}

// DhcpOption is a custom DHCP option.
type DhcpOption struct {
	Code  string `json:"code"`
	Type  string `json:"type"`
	Value string `json:"value"`
}

// Vlan is an appliance VLAN.
type Vlan struct {
	ID                     int                          `json:"id"`
	NetworkID              string                       `json:"networkId"`
	Name                   string                       `json:"name"`
	ApplianceIP            string                       `json:"applianceIp"`
	Subnet                 string                       `json:"subnet"`
	GroupPolicyID          string                       `json:"groupPolicyId,omitempty"`
	FixedIPAssignments     map[string]FixedIPAssignment `json:"fixedIpAssignments,omitempty"`
	ReservedIPRanges       []ReservedIPRange            `json:"reservedIpRanges,omitempty"`
	DNSNameservers         string                       `json:"dnsNameservers,omitempty"`
	DhcpHandling           string                       `json:"dhcpHandling,omitempty"`
	DhcpLeaseTime          string                       `json:"dhcpLeaseTime,omitempty"`
	DhcpBootOptionsEnabled bool                         `json:"dhcpBootOptionsEnabled,omitempty"`
	DhcpOptions            []DhcpOption                 `json:"dhcpOptions,omitempty"`
}

// CreateNetworkVlan is the body of CreateNetworkVlan.
type CreateNetworkVlan struct {
	ID            *string `json:"id,omitempty"`
	Name          *string `json:"name,omitempty"`
	Subnet        *string `json:"subnet,omitempty"`
	ApplianceIP   *string `json:"applianceIp,omitempty"`
	GroupPolicyID *string `json:"groupPolicyId,omitempty"`
}

// UpdateNetworkVlan is the body of UpdateNetworkVlan.
type UpdateNetworkVlan struct {
	Name                   *string                      `json:"name,omitempty"`
	Subnet                 *string                      `json:"subnet,omitempty"`
	ApplianceIP            *string                      `json:"applianceIp,omitempty"`
	GroupPolicyID          *string                      `json:"groupPolicyId,omitempty"`
	VpnNatSubnet           *string                      `json:"vpnNatSubnet,omitempty"`
	DhcpHandling           *string                      `json:"dhcpHandling,omitempty"`
	DhcpRelayServerIPs     []string                     `json:"dhcpRelayServerIps,omitempty"`
	DhcpLeaseTime          *string                      `json:"dhcpLeaseTime,omitempty"`
	DhcpBootOptionsEnabled *bool                        `json:"dhcpBootOptionsEnabled,omitempty"`
	DhcpBootNextServer     *string                      `json:"dhcpBootNextServer,omitempty"`
	DhcpBootFilename       *string                      `json:"dhcpBootFilename,omitempty"`
	FixedIPAssignments     map[string]FixedIPAssignment `json:"fixedIpAssignments,omitempty"`
	ReservedIPRanges       []ReservedIPRange            `json:"reservedIpRanges,omitempty"`
	DNSNameservers         *string                      `json:"dnsNameservers,omitempty"`
	DhcpOptions            []DhcpOption                 `json:"dhcpOptions,omitempty"`
}

// VlansEnabledState reports whether VLANs are enabled on a network.
type VlansEnabledState struct {
	NetworkID string `json:"networkId"`
	Enabled   bool   `json:"enabled"`
}

// UpdateNetworkVlansEnabledState is the body of UpdateNetworkVlansEnabledState.
type UpdateNetworkVlansEnabledState struct {
	Enabled *bool `json:"enabled,omitempty"`
}

// UpdateNetworkL3FirewallRules is the body of UpdateNetworkL3FirewallRules.
type UpdateNetworkL3FirewallRules struct {
	Rules             []FirewallRule `json:"rules,omitempty"`
	SyslogDefaultRule *bool          `json:"syslogDefaultRule,omitempty"`
}

// L7FirewallRule is a layer 7 firewall rule.
type L7FirewallRule struct {
	Policy string `json:"policy"`
	Type   string `json:"type"`
	Value  any    `json:"value"`
}

// L7FirewallRules is the layer 7 rule set of a network.
type L7FirewallRules struct {
	Rules []L7FirewallRule `json:"rules"`
}

// UpdateNetworkL7FirewallRules is the body of UpdateNetworkL7FirewallRules.
type UpdateNetworkL7FirewallRules struct {
	Rules []L7FirewallRule `json:"rules,omitempty"`
}

// L7Application is an application known to layer 7 rules.
type L7Application struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// L7ApplicationCategory groups applications for layer 7 rules.
type L7ApplicationCategory struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Applications []L7Application `json:"applications"`
}

// L7ApplicationCategories is the result of GetNetworkL7FirewallRulesApplicationCategories.
type L7ApplicationCategories struct {
	ApplicationCategories []L7ApplicationCategory `json:"applicationCategories"`
}

// UpdateNetworkCellularFirewallRules is the body of UpdateNetworkCellularFirewallRules.
type UpdateNetworkCellularFirewallRules struct {
	Rules []FirewallRule `json:"rules,omitempty"`
}

// PortForwardingRule forwards a public port to a LAN host.
type PortForwardingRule struct {
	Name       string   `json:"name,omitempty"`
	LanIP      string   `json:"lanIp"`
	Uplink     string   `json:"uplink,omitempty"`
	PublicPort string   `json:"publicPort"`
	LocalPort  string   `json:"localPort"`
	AllowedIPs []string `json:"allowedIps"`
	Protocol   string   `json:"protocol"`
}

// PortForwardingRules is the port forwarding rule set of a network.
type PortForwardingRules struct {
	Rules []PortForwardingRule `json:"rules"`
}

// UpdateNetworkPortForwardingRules is the body of UpdateNetworkPortForwardingRules.
type UpdateNetworkPortForwardingRules struct {
	Rules []PortForwardingRule `json:"rules"`
}

// FirewalledService is the access policy of an appliance service (ICMP, web, SNMP).
type FirewalledService struct {
	Service    string   `json:"service"`
	Access     string   `json:"access"`
	AllowedIPs []string `json:"allowedIps,omitempty"`
}

// UpdateNetworkFirewalledService is the body of UpdateNetworkFirewalledService.
type UpdateNetworkFirewalledService struct {
	Access     *string  `json:"access,omitempty"`
	AllowedIPs []string `json:"allowedIps,omitempty"`
}

// StaticRoute is an appliance static route.
type StaticRoute struct {
	ID                 string                       `json:"id"`
	NetworkID          string                       `json:"networkId,omitempty"`
	Name               string                       `json:"name"`
	Subnet             string                       `json:"subnet"`
	GatewayIP          string                       `json:"gatewayIp"`
	Enabled            bool                         `json:"enabled"`
	FixedIPAssignments map[string]FixedIPAssignment `json:"fixedIpAssignments,omitempty"`
	ReservedIPRanges   []ReservedIPRange            `json:"reservedIpRanges,omitempty"`
}

// CreateNetworkStaticRoute is the body of CreateNetworkStaticRoute.
type CreateNetworkStaticRoute struct {
	Name      *string `json:"name,omitempty"`
	Subnet    *string `json:"subnet,omitempty"`
	GatewayIP *string `json:"gatewayIp,omitempty"`
}

// UpdateNetworkStaticRoute is the body of UpdateNetworkStaticRoute.
type UpdateNetworkStaticRoute struct {
	Name               *string                      `json:"name,omitempty"`
	Subnet             *string                      `json:"subnet,omitempty"`
	GatewayIP          *string                      `json:"gatewayIp,omitempty"`
	Enabled            *bool                        `json:"enabled,omitempty"`
	FixedIPAssignments map[string]FixedIPAssignment `json:"fixedIpAssignments,omitempty"`
	ReservedIPRanges   []ReservedIPRange            `json:"reservedIpRanges,omitempty"`
}
