package dashboard

// Network is a Dashboard network.
type Network struct {
	ID                      string   `json:"id"`
	OrganizationID          string   `json:"organizationId"`
	Name                    string   `json:"name"`
	TimeZone                string   `json:"timeZone,omitempty"`
	Tags                    string   `json:"tags,omitempty"`
	ProductTypes            []string `json:"productTypes,omitempty"`
	Type                    string   `json:"type,omitempty"`
	ConfigTemplateID        string   `json:"configTemplateId,omitempty"`
	DisableMyMerakiCom      bool     `json:"disableMyMerakiCom,omitempty"`
	DisableRemoteStatusPage bool     `json:"disableRemoteStatusPage,omitempty"`
}

// GetOrganizationNetworksParams are the optional query parameters of GetOrganizationNetworks.
type GetOrganizationNetworksParams struct {
	ConfigTemplateID *string
}

// CreateOrganizationNetwork is the body of CreateOrganizationNetwork.
type CreateOrganizationNetwork struct {
	Name                    *string `json:"name,omitempty"`
	Type                    *string `json:"type,omitempty"`
	Tags                    *string `json:"tags,omitempty"`
	TimeZone                *string `json:"timeZone,omitempty"`
	CopyFromNetworkID       *string `json:"copyFromNetworkId,omitempty"`
	DisableMyMerakiCom      *bool   `json:"disableMyMerakiCom,omitempty"`
	DisableRemoteStatusPage *bool   `json:"disableRemoteStatusPage,omitempty"`
}

// CombineOrganizationNetworks is the body of CombineOrganizationNetworks.
type CombineOrganizationNetworks struct {
	Name             *string  `json:"name,omitempty"`
	NetworkIDs       []string `json:"networkIds"`
	EnrollmentString *string  `json:"enrollmentString,omitempty"`
}

// CombinedNetwork is the result of CombineOrganizationNetworks.
type CombinedNetwork struct {
	ResultingNetwork Network `json:"resultingNetwork"`
}

// UpdateNetwork is the body of UpdateNetwork.
type UpdateNetwork struct {
	Name                    *string `json:"name,omitempty"`
	TimeZone                *string `json:"timeZone,omitempty"`
	Tags                    *string `json:"tags,omitempty"`
	EnrollmentString        *string `json:"enrollmentString,omitempty"`
	DisableMyMerakiCom      *bool   `json:"disableMyMerakiCom,omitempty"`
	DisableRemoteStatusPage *bool   `json:"disableRemoteStatusPage,omitempty"`
}

// BindNetwork is the body of BindNetwork.
type BindNetwork struct {
	ConfigTemplateID *string `json:"configTemplateId,omitempty"`
	AutoBind         *bool   `json:"autoBind,omitempty"`
}

// VPNHub is a hub a spoke network tunnels to.
type VPNHub struct {
	HubID           string `json:"hubId"`
	UseDefaultRoute bool   `json:"useDefaultRoute"`
}

// VPNSubnet is a local subnet and whether it joins the VPN.
type VPNSubnet struct {
	LocalSubnet string `json:"localSubnet"`
	UseVpn      bool   `json:"useVpn"`
}

// SiteToSiteVpn is the site-to-site VPN configuration of a network.
type SiteToSiteVpn struct {
	Mode    string      `json:"mode"`
	Hubs    []VPNHub    `json:"hubs,omitempty"`
	Subnets []VPNSubnet `json:"subnets,omitempty"`
}

// Site-to-site VPN modes.
const (
	VPNModeNone  = "none"
	VPNModeHub   = "hub"
	VPNModeSpoke = "spoke"
)

// UpdateNetworkSiteToSiteVpn is the body of UpdateNetworkSiteToSiteVpn.
type UpdateNetworkSiteToSiteVpn struct {
	Mode    *string     `json:"mode,omitempty"`
	Hubs    []VPNHub    `json:"hubs,omitempty"`
	Subnets []VPNSubnet `json:"subnets,omitempty"`
}

// TrafficEntry is one application's traffic summary for a network.
type TrafficEntry struct {
	Application string  `json:"application"`
	Destination string  `json:"destination,omitempty"`
	Protocol    string  `json:"protocol"`
	Port        int     `json:"port"`
	Sent        float64 `json:"sent"`
	Recv        float64 `json:"recv"`
	NumClients  int     `json:"numClients"`
	ActiveTime  float64 `json:"activeTime"`
	Flows       int     `json:"flows"`
}

// GetNetworkTrafficParams are the query parameters of GetNetworkTraffic.
// Timespan is required by the API.
type GetNetworkTrafficParams struct {
	Timespan   *int
	DeviceType *string
}
