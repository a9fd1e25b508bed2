package dashboard

// AlertDestinations are the recipients of network alerts.
type AlertDestinations struct {
	Emails        []string `json:"emails,omitempty"`
	AllAdmins     *bool    `json:"allAdmins,omitempty"`
	Snmp          *bool    `json:"snmp,omitempty"`
	HTTPServerIDs []string `json:"httpServerIds,omitempty"`
}

// Alert enables one alert type, optionally with its own destinations and
// type-specific filters.
type Alert struct {
	Type              string             `json:"type"`
	Enabled           *bool              `json:"enabled,omitempty"`
	AlertDestinations *AlertDestinations `json:"alertDestinations,omitempty"`
	Filters           map[string]any     `json:"filters,omitempty"`
}

// AlertSettings is the alert configuration of a network.
type AlertSettings struct {
	DefaultDestinations *AlertDestinations `json:"defaultDestinations,omitempty"`
	Alerts              []Alert            `json:"alerts,omitempty"`
}

// UpdateNetworkAlertSettings is the body of UpdateNetworkAlertSettings.
type UpdateNetworkAlertSettings struct {
	DefaultDestinations *AlertDestinations `json:"defaultDestinations,omitempty"`
	Alerts              []Alert            `json:"alerts,omitempty"`
}

// HTTPServer is a webhook receiver of a network.
type HTTPServer struct {
	ID        string `json:"id"`
	NetworkID string `json:"networkId"`
	Name      string `json:"name"`
	URL       string `json:"url"`
}

// CreateNetworkHTTPServer is the body of CreateNetworkHttpServer.
type CreateNetworkHTTPServer struct {
	Name         *string `json:"name,omitempty"`
	URL          *string `json:"url,omitempty"`
	SharedSecret *string `json:"sharedSecret,omitempty"`
}

// UpdateNetworkHTTPServer is the body of UpdateNetworkHttpServer.
type UpdateNetworkHTTPServer struct {
	Name         *string `json:"name,omitempty"`
	URL          *string `json:"url,omitempty"`
	SharedSecret *string `json:"sharedSecret,omitempty"`
}

// CreateNetworkHTTPServersWebhookTest is the body of CreateNetworkHttpServersWebhookTest.
type CreateNetworkHTTPServersWebhookTest struct {
	URL *string `json:"url,omitempty"`
}

// WebhookTest reports the delivery state of a test webhook.
type WebhookTest struct {
	ID     string `json:"id"`
	URL    string `json:"url"`
	Status string `json:"status"`
}

// SnmpUser is an SNMPv3 user of a network.
type SnmpUser struct {
	Username   string `json:"username"`
	Passphrase string `json:"passphrase"`
}

// SnmpSettings is the SNMP configuration of a network.
type SnmpSettings struct {
	Access          string     `json:"access"`
	CommunityString string     `json:"communityString,omitempty"`
	Users           []SnmpUser `json:"users,omitempty"`
}

// UpdateNetworkSnmpSettings is the body of UpdateNetworkSnmpSettings.
type UpdateNetworkSnmpSettings struct {
	Access          *string    `json:"access,omitempty"`
	CommunityString *string    `json:"communityString,omitempty"`
	Users           []SnmpUser `json:"users,omitempty"`
}

// SyslogServer is a syslog destination of a network.
type SyslogServer struct {
	Host  string   `json:"host"`
	Port  int      `json:"port"`
	Roles []string `json:"roles"`
}

// UpdateNetworkSyslogServers is the body of UpdateNetworkSyslogServers.
type UpdateNetworkSyslogServers struct {
	Servers []SyslogServer `json:"servers"`
}
