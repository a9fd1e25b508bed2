package dashboard

import (
	"context"
	"net/http"
)

var opGetNetworkDevices = register(Endpoint{
	OperationID:    "getNetworkDevices",
	Controller:     "Devices",
	Method:         http.MethodGet,
	Path:           "/networks/{networkId}/devices",
	Response:       KindDevice,
	ResponseIsList: true,
})

var opGetNetworkDevice = register(Endpoint{
	OperationID: "getNetworkDevice",
	Controller:  "Devices",
	Method:      http.MethodGet,
	Path:        "/networks/{networkId}/devices/{serial}",
	Response:    KindDevice,
})

var opUpdateNetworkDevice = register(Endpoint{
	OperationID: "updateNetworkDevice",
	Controller:  "Devices",
	Method:      http.MethodPut,
	Path:        "/networks/{networkId}/devices/{serial}",
	Body:        KindUpdateNetworkDevice,
	Response:    KindDevice,
})

var opClaimNetworkDevices = register(Endpoint{
	OperationID:  "claimNetworkDevices",
	Controller:   "Devices",
	Method:       http.MethodPost,
	Path:         "/networks/{networkId}/devices/claim",
	Body:         KindClaimNetworkDevices,
	BodyRequired: true,
	NoContent:    true,
})

var opRemoveNetworkDevice = register(Endpoint{
	OperationID: "removeNetworkDevice",
	Controller:  "Devices",
	Method:      http.MethodPost,
	Path:        "/networks/{networkId}/devices/{serial}/remove",
	NoContent:   true,
})

var opRebootNetworkDevice = register(Endpoint{
	OperationID: "rebootNetworkDevice",
	Controller:  "Devices",
	Method:      http.MethodPost,
	Path:        "/networks/{networkId}/devices/{serial}/reboot",
	Response:    KindRebootResult,
})

var opBlinkNetworkDeviceLeds = register(Endpoint{
	OperationID: "blinkNetworkDeviceLeds",
	Controller:  "Devices",
	Method:      http.MethodPost,
	Path:        "/networks/{networkId}/devices/{serial}/blinkLeds",
	Body:        KindBlinkNetworkDeviceLeds,
	Response:    KindBlinkNetworkDeviceLeds,
})

var opGetNetworkDeviceUplink = register(Endpoint{
	OperationID:    "getNetworkDeviceUplink",
	Controller:     "Devices",
	Method:         http.MethodGet,
	Path:           "/networks/{networkId}/devices/{serial}/uplink",
	Response:       KindDeviceUplink,
	ResponseIsList: true,
})

var opGetNetworkDeviceManagementInterfaceSettings = register(Endpoint{
	OperationID: "getNetworkDeviceManagementInterfaceSettings",
	Controller:  "Devices",
	Method:      http.MethodGet,
	Path:        "/networks/{networkId}/devices/{serial}/managementInterfaceSettings",
	Response:    KindManagementInterfaceSettings,
})

var opUpdateNetworkDeviceManagementInterfaceSettings = register(Endpoint{
	OperationID: "updateNetworkDeviceManagementInterfaceSettings",
	Controller:  "Devices",
	Method:      http.MethodPut,
	Path:        "/networks/{networkId}/devices/{serial}/managementInterfaceSettings",
	Body:        KindUpdateNetworkDeviceManagementInterfaceSettings,
	Response:    KindManagementInterfaceSettings,
})

// GetNetworkDevices lists the devices in a network.
func (c *Client) GetNetworkDevices(ctx context.Context, networkID string) ([]Device, error) {
	return list[Device](ctx, c, request{
		endpoint: opGetNetworkDevices,
		path:     map[string]string{"networkId": networkID},
	})
}

// GetNetworkDevice returns a device.
func (c *Client) GetNetworkDevice(ctx context.Context, networkID, serial string) (*Device, error) {
	return one[Device](ctx, c, request{
		endpoint: opGetNetworkDevice,
		path:     map[string]string{"networkId": networkID, "serial": serial},
	})
}

// UpdateNetworkDevice updates the attributes of a device.
func (c *Client) UpdateNetworkDevice(ctx context.Context, networkID, serial string, body *UpdateNetworkDevice) (*Device, error) {
	return one[Device](ctx, c, request{
		endpoint: opUpdateNetworkDevice,
		path:     map[string]string{"networkId": networkID, "serial": serial},
		body:     body,
	})
}

// ClaimNetworkDevices claims a device into a network.
func (c *Client) ClaimNetworkDevices(ctx context.Context, networkID string, body *ClaimNetworkDevices) error {
	return noContent(ctx, c, request{
		endpoint: opClaimNetworkDevices,
		path:     map[string]string{"networkId": networkID},
		body:     body,
	})
}

// RemoveNetworkDevice removes a device from a network.
func (c *Client) RemoveNetworkDevice(ctx context.Context, networkID, serial string) error {
	return noContent(ctx, c, request{
		endpoint: opRemoveNetworkDevice,
		path:     map[string]string{"networkId": networkID, "serial": serial},
	})
}

// RebootNetworkDevice reboots a device.
func (c *Client) RebootNetworkDevice(ctx context.Context, networkID, serial string) (*RebootResult, error) {
	return one[RebootResult](ctx, c, request{
		endpoint: opRebootNetworkDevice,
		path:     map[string]string{"networkId": networkID, "serial": serial},
	})
}

// BlinkNetworkDeviceLeds blinks the LEDs of a device.
func (c *Client) BlinkNetworkDeviceLeds(ctx context.Context, networkID, serial string, body *BlinkNetworkDeviceLeds) (*BlinkNetworkDeviceLeds, error) {
	return one[BlinkNetworkDeviceLeds](ctx, c, request{
		endpoint: opBlinkNetworkDeviceLeds,
		path:     map[string]string{"networkId": networkID, "serial": serial},
		body:     body,
	})
}

// GetNetworkDeviceUplink returns the uplink status of a device.
func (c *Client) GetNetworkDeviceUplink(ctx context.Context, networkID, serial string) ([]DeviceUplink, error) {
	return list[DeviceUplink](ctx, c, request{
		endpoint: opGetNetworkDeviceUplink,
		path:     map[string]string{"networkId": networkID, "serial": serial},
	})
}

// GetNetworkDeviceManagementInterfaceSettings returns the management interface settings of a device.
func (c *Client) GetNetworkDeviceManagementInterfaceSettings(ctx context.Context, networkID, serial string) (*ManagementInterfaceSettings, error) {
	return one[ManagementInterfaceSettings](ctx, c, request{
		endpoint: opGetNetworkDeviceManagementInterfaceSettings,
		path:     map[string]string{"networkId": networkID, "serial": serial},
	})
}

// UpdateNetworkDeviceManagementInterfaceSettings updates the management interface settings of a device.
func (c *Client) UpdateNetworkDeviceManagementInterfaceSettings(ctx context.Context, networkID, serial string, body *UpdateNetworkDeviceManagementInterfaceSettings) (*ManagementInterfaceSettings, error) {
	return one[ManagementInterfaceSettings](ctx, c, request{
		endpoint: opUpdateNetworkDeviceManagementInterfaceSettings,
		path:     map[string]string{"networkId": networkID, "serial": serial},
		body:     body,
	})
}
