package dashboard

import (
	"context"
	"net/http"
)

var opGetNetworkSnmpSettings = register(Endpoint{
	OperationID: "getNetworkSnmpSettings",
	Controller:  "NetworkSettings",
	Method:      http.MethodGet,
	Path:        "/networks/{networkId}/snmpSettings",
	Response:    KindSnmpSettings,
})

var opUpdateNetworkSnmpSettings = register(Endpoint{
	OperationID: "updateNetworkSnmpSettings",
	Controller:  "NetworkSettings",
	Method:      http.MethodPut,
	Path:        "/networks/{networkId}/snmpSettings",
	Body:        KindUpdateNetworkSnmpSettings,
	Response:    KindSnmpSettings,
})

var opGetNetworkSyslogServers = register(Endpoint{
	OperationID:    "getNetworkSyslogServers",
	Controller:     "NetworkSettings",
	Method:         http.MethodGet,
	Path:           "/networks/{networkId}/syslogServers",
	Response:       KindSyslogServer,
	ResponseIsList: true,
})

var opUpdateNetworkSyslogServers = register(Endpoint{
	OperationID:    "updateNetworkSyslogServers",
	Controller:     "NetworkSettings",
	Method:         http.MethodPut,
	Path:           "/networks/{networkId}/syslogServers",
	Body:           KindUpdateNetworkSyslogServers,
	Response:       KindSyslogServer,
	ResponseIsList: true,
})

// GetNetworkSnmpSettings returns the SNMP settings of a network.
func (c *Client) GetNetworkSnmpSettings(ctx context.Context, networkID string) (*SnmpSettings, error) {
	return one[SnmpSettings](ctx, c, request{
		endpoint: opGetNetworkSnmpSettings,
		path:     map[string]string{"networkId": networkID},
	})
}

// UpdateNetworkSnmpSettings updates the SNMP settings of a network.
func (c *Client) UpdateNetworkSnmpSettings(ctx context.Context, networkID string, body *UpdateNetworkSnmpSettings) (*SnmpSettings, error) {
	return one[SnmpSettings](ctx, c, request{
		endpoint: opUpdateNetworkSnmpSettings,
		path:     map[string]string{"networkId": networkID},
		body:     body,
	})
}

// GetNetworkSyslogServers lists the syslog servers of a network.
func (c *Client) GetNetworkSyslogServers(ctx context.Context, networkID string) ([]SyslogServer, error) {
	return list[SyslogServer](ctx, c, request{
		endpoint: opGetNetworkSyslogServers,
		path:     map[string]string{"networkId": networkID},
	})
}

// UpdateNetworkSyslogServers replaces the syslog servers of a network.
func (c *Client) UpdateNetworkSyslogServers(ctx context.Context, networkID string, body *UpdateNetworkSyslogServers) ([]SyslogServer, error) {
	return list[SyslogServer](ctx, c, request{
		endpoint: opUpdateNetworkSyslogServers,
		path:     map[string]string{"networkId": networkID},
		body:     body,
	})
}
