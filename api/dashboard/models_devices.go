package dashboard

import (
	"bytes"
	"encoding/json"

	"github.com/cockroachdb/errors"
)

// Device is a device claimed into a network.
type Device struct {
	Serial          string   `json:"serial"`
	Name            string   `json:"name,omitempty"`
	MAC             string   `json:"mac"`
	Model           string   `json:"model"`
	NetworkID       string   `json:"networkId"`
	LanIP           string   `json:"lanIp,omitempty"`
	Address         string   `json:"address,omitempty"`
	Notes           string   `json:"notes,omitempty"`
	Tags            string   `json:"tags,omitempty"`
	Lat             float64  `json:"lat,omitempty"`
	Lng             float64  `json:"lng,omitempty"`
	Firmware        string   `json:"firmware,omitempty"`
	FloorPlanID     string   `json:"floorPlanId,omitempty"`
	SwitchProfileID string   `json:"switchProfileId,omitempty"`
	Wan1IP          string   `json:"wan1Ip,omitempty"`
	Wan2IP          string   `json:"wan2Ip,omitempty"`
	BeaconIDParams  []string `json:"beaconIdParams,omitempty"`
}

// UpdateNetworkDevice is the body of UpdateNetworkDevice.
type UpdateNetworkDevice struct {
	Name            *string  `json:"name,omitempty"`
	Tags            *string  `json:"tags,omitempty"`
	Lat             *float64 `json:"lat,omitempty"`
	Lng             *float64 `json:"lng,omitempty"`
	Address         *string  `json:"address,omitempty"`
	Notes           *string  `json:"notes,omitempty"`
	MoveMapMarker   *bool    `json:"moveMapMarker,omitempty"`
	SwitchProfileID *string  `json:"switchProfileId,omitempty"`
	FloorPlanID     *string  `json:"floorPlanId,omitempty"`
}

// ClaimNetworkDevices is the body of ClaimNetworkDevices.
type ClaimNetworkDevices struct {
	Serial *string `json:"serial,omitempty"`
}

// RebootResult reports whether a reboot was accepted.
type RebootResult struct {
	Success bool `json:"success"`
}

// BlinkNetworkDeviceLeds is the body and result of BlinkNetworkDeviceLeds.
type BlinkNetworkDeviceLeds struct {
	Duration *int `json:"duration,omitempty"`
	Period   *int `json:"period,omitempty"`
	Duty     *int `json:"duty,omitempty"`
}

// DeviceUplink is the status of one uplink of a device.
type DeviceUplink struct {
	Interface     string `json:"interface"`
	Status        string `json:"status"`
	IP            string `json:"ip,omitempty"`
	Gateway       string `json:"gateway,omitempty"`
	PublicIP      string `json:"publicIp,omitempty"`
	DNS           string `json:"dns,omitempty"`
	UsingStaticIP bool   `json:"usingStaticIp,omitempty"`
}

// WanSettings is the management interface configuration of one WAN port.
type WanSettings struct {
	WanEnabled       *string  `json:"wanEnabled,omitempty"`
	UsingStaticIP    *bool    `json:"usingStaticIp,omitempty"`
	StaticIP         *string  `json:"staticIp,omitempty"`
	StaticGatewayIP  *string  `json:"staticGatewayIp,omitempty"`
	StaticSubnetMask *string  `json:"staticSubnetMask,omitempty"`
	StaticDNS        []string `json:"staticDns,omitempty"`
	Vlan             *int     `json:"vlan,omitempty"`
}

// ManagementInterfaceSettings is the management interface of a device.
type ManagementInterfaceSettings struct {
	DdnsHostnames map[string]string `json:"ddnsHostnames,omitempty"`
	Wan1          *WanSettings      `json:"wan1,omitempty"`
	Wan2          *WanSettings      `json:"wan2,omitempty"`
}

// UpdateNetworkDeviceManagementInterfaceSettings is the body of
// UpdateNetworkDeviceManagementInterfaceSettings.
type UpdateNetworkDeviceManagementInterfaceSettings struct {
	Wan1 *WanSettings `json:"wan1,omitempty"`
	Wan2 *WanSettings `json:"wan2,omitempty"`
}

// SwitchPort is the configuration of one switch port.
type SwitchPort struct {
	Number                  int      `json:"number"`
	Name                    string   `json:"name,omitempty"`
	Tags                    string   `json:"tags,omitempty"`
	Enabled                 bool     `json:"enabled"`
	PoeEnabled              bool     `json:"poeEnabled"`
	Type                    string   `json:"type"`
	Vlan                    int      `json:"vlan,omitempty"`
	VoiceVlan               int      `json:"voiceVlan,omitempty"`
	AllowedVLANs            string   `json:"allowedVlans,omitempty"`
	IsolationEnabled        bool     `json:"isolationEnabled"`
	RstpEnabled             bool     `json:"rstpEnabled"`
	StpGuard                string   `json:"stpGuard,omitempty"`
	AccessPolicyNumber      int      `json:"accessPolicyNumber,omitempty"`
	LinkNegotiation         string   `json:"linkNegotiation,omitempty"`
	PortScheduleID          string   `json:"portScheduleId,omitempty"`
	Udld                    string   `json:"udld,omitempty"`
	MacWhitelist            []string `json:"macWhitelist,omitempty"`
	StickyMacWhitelist      []string `json:"stickyMacWhitelist,omitempty"`
	StickyMacWhitelistLimit int      `json:"stickyMacWhitelistLimit,omitempty"`
}

// UpdateDeviceSwitchPort is the body of UpdateDeviceSwitchPort.
//
// AllowedVLANs is sent as "allowedVlans". Decoding also accepts the
// snake_case "allowed_vlans" spelling found in older payloads.
type UpdateDeviceSwitchPort struct {
	Name                    *string  `json:"name,omitempty"`
	Tags                    *string  `json:"tags,omitempty"`
	Enabled                 *bool    `json:"enabled,omitempty"`
	Type                    *string  `json:"type,omitempty"`
	Vlan                    *int     `json:"vlan,omitempty"`
	VoiceVlan               *int     `json:"voiceVlan,omitempty"`
	AllowedVLANs            *string  `json:"allowedVlans,omitempty"`
	PoeEnabled              *bool    `json:"poeEnabled,omitempty"`
	IsolationEnabled        *bool    `json:"isolationEnabled,omitempty"`
	RstpEnabled             *bool    `json:"rstpEnabled,omitempty"`
	StpGuard                *string  `json:"stpGuard,omitempty"`
	AccessPolicyNumber      *int     `json:"accessPolicyNumber,omitempty"`
	LinkNegotiation         *string  `json:"linkNegotiation,omitempty"`
	PortScheduleID          *string  `json:"portScheduleId,omitempty"`
	Udld                    *string  `json:"udld,omitempty"`
	MacWhitelist            []string `json:"macWhitelist,omitempty"`
	StickyMacWhitelist      []string `json:"stickyMacWhitelist,omitempty"`
	StickyMacWhitelistLimit *int     `json:"stickyMacWhitelistLimit,omitempty"`
}

// UnmarshalJSON decodes the wire form, accepting "allowed_vlans" as an
// alias of "allowedVlans". The camelCase key wins when both are present.
// Keys that are neither a field nor the alias are rejected.
func (u *UpdateDeviceSwitchPort) UnmarshalJSON(data []byte) error {
	type plain UpdateDeviceSwitchPort

	aux := struct {
		*plain
		AllowedVLANsAlias *string `json:"allowed_vlans,omitempty"`
	}{plain: (*plain)(u)}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&aux); err != nil {
		return errors.Wrap(err, "failed to decode UpdateDeviceSwitchPort")
	}

	if u.AllowedVLANs == nil {
		u.AllowedVLANs = aux.AllowedVLANsAlias
	}

	return nil
}
