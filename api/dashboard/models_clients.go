package dashboard

// ClientUsage is the sent and received traffic of a client in kilobytes.
type ClientUsage struct {
	Sent float64 `json:"sent"`
	Recv float64 `json:"recv"`
}

// DeviceClient is a client seen by a device.
type DeviceClient struct {
	ID           string      `json:"id"`
	Description  string      `json:"description,omitempty"`
	MdnsName     string      `json:"mdnsName,omitempty"`
	DhcpHostname string      `json:"dhcpHostname,omitempty"`
	MAC          string      `json:"mac"`
	IP           string      `json:"ip,omitempty"`
	Vlan         int         `json:"vlan,omitempty"`
	SwitchPort   string      `json:"switchport,omitempty"`
	Usage        ClientUsage `json:"usage"`
}

// GetDeviceClientsParams are the query parameters of GetDeviceClients.
type GetDeviceClientsParams struct {
	T0       *string
	Timespan *int
}

// NetworkClient is a client of a network.
type NetworkClient struct {
	ID                 string      `json:"id"`
	MAC                string      `json:"mac"`
	Description        string      `json:"description,omitempty"`
	IP                 string      `json:"ip,omitempty"`
	IP6                string      `json:"ip6,omitempty"`
	User               string      `json:"user,omitempty"`
	FirstSeen          int64       `json:"firstSeen,omitempty"`
	LastSeen           int64       `json:"lastSeen,omitempty"`
	Manufacturer       string      `json:"manufacturer,omitempty"`
	OS                 string      `json:"os,omitempty"`
	RecentDeviceSerial string      `json:"recentDeviceSerial,omitempty"`
	RecentDeviceName   string      `json:"recentDeviceName,omitempty"`
	RecentDeviceMAC    string      `json:"recentDeviceMac,omitempty"`
	Ssid               string      `json:"ssid,omitempty"`
	Vlan               int         `json:"vlan,omitempty"`
	SwitchPort         string      `json:"switchport,omitempty"`
	Status             string      `json:"status,omitempty"`
	Usage              ClientUsage `json:"usage"`
}

// GetNetworkClientsParams are the query parameters of GetNetworkClients.
type GetNetworkClientsParams struct {
	T0            *string
	Timespan      *int
	PerPage       *int
	StartingAfter *string
	EndingBefore  *string
}

// ProvisionNetworkClients is the body of ProvisionNetworkClients.
type ProvisionNetworkClients struct {
	MAC           *string `json:"mac,omitempty"`
	Name          *string `json:"name,omitempty"`
	DevicePolicy  *string `json:"devicePolicy,omitempty"`
	GroupPolicyID *string `json:"groupPolicyId,omitempty"`
}

// ProvisionedClient is the result of ProvisionNetworkClients.
type ProvisionedClient struct {
	MAC           string `json:"mac"`
	ClientID      string `json:"clientId"`
	Name          string `json:"name,omitempty"`
	DevicePolicy  string `json:"devicePolicy"`
	GroupPolicyID string `json:"groupPolicyId,omitempty"`
}

// ClientPolicy is the device policy applied to a client.
type ClientPolicy struct {
	MAC           string `json:"mac"`
	Type          string `json:"type"`
	GroupPolicyID string `json:"groupPolicyId,omitempty"`
}

// UpdateNetworkClientPolicy is the body of UpdateNetworkClientPolicy.
type UpdateNetworkClientPolicy struct {
	DevicePolicy  *string `json:"devicePolicy,omitempty"`
	GroupPolicyID *string `json:"groupPolicyId,omitempty"`
}

// SsidAuthorization is the splash authorization of a client on one SSID.
type SsidAuthorization struct {
	IsAuthorized bool   `json:"isAuthorized"`
	AuthorizedAt string `json:"authorizedAt,omitempty"`
	ExpiresAt    string `json:"expiresAt,omitempty"`
}

// SplashAuthorizationStatus maps SSID numbers ("0".."14") to the
// authorization of a client on that SSID.
type SplashAuthorizationStatus struct {
	Ssids map[string]SsidAuthorization `json:"ssids"`
}

// UpdateNetworkClientSplashAuthorizationStatus is the body of
// UpdateNetworkClientSplashAuthorizationStatus.
type UpdateNetworkClientSplashAuthorizationStatus struct {
	Ssids map[string]SsidAuthorization `json:"ssids,omitempty"`
}
