package dashboard

import (
	"context"
	"net/http"
)

var opGetDeviceSwitchPorts = register(Endpoint{
	OperationID:    "getDeviceSwitchPorts",
	Controller:     "SwitchPorts",
	Method:         http.MethodGet,
	Path:           "/devices/{serial}/switchPorts",
	Response:       KindSwitchPort,
	ResponseIsList: true,
})

var opGetDeviceSwitchPort = register(Endpoint{
	OperationID: "getDeviceSwitchPort",
	Controller:  "SwitchPorts",
	Method:      http.MethodGet,
	Path:        "/devices/{serial}/switchPorts/{number}",
	Response:    KindSwitchPort,
})

var opUpdateDeviceSwitchPort = register(Endpoint{
	OperationID: "updateDeviceSwitchPort",
	Controller:  "SwitchPorts",
	Method:      http.MethodPut,
	Path:        "/devices/{serial}/switchPorts/{number}",
	Body:        KindUpdateDeviceSwitchPort,
	Response:    KindSwitchPort,
})

// GetDeviceSwitchPorts lists the ports of a switch.
func (c *Client) GetDeviceSwitchPorts(ctx context.Context, serial string) ([]SwitchPort, error) {
	return list[SwitchPort](ctx, c, request{
		endpoint: opGetDeviceSwitchPorts,
		path:     map[string]string{"serial": serial},
	})
}

// GetDeviceSwitchPort returns a switch port.
func (c *Client) GetDeviceSwitchPort(ctx context.Context, serial, number string) (*SwitchPort, error) {
	return one[SwitchPort](ctx, c, request{
		endpoint: opGetDeviceSwitchPort,
		path:     map[string]string{"serial": serial, "number": number},
	})
}

// UpdateDeviceSwitchPort updates a switch port.
func (c *Client) UpdateDeviceSwitchPort(ctx context.Context, serial, number string, body *UpdateDeviceSwitchPort) (*SwitchPort, error) {
	return one[SwitchPort](ctx, c, request{
		endpoint: opUpdateDeviceSwitchPort,
		path:     map[string]string{"serial": serial, "number": number},
		body:     body,
	})
}
