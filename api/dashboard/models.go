package dashboard

import (
	"reflect"
	"slices"
	"strings"

	"github.com/cockroachdb/errors"
)

// ModelKind names a request or response model. Its value is the Go type name.
type ModelKind string

// Model kinds known to NewModel.
const (
	KindActionBatch                                    ModelKind = "ActionBatch"
	KindActionBatchStatus                              ModelKind = "ActionBatchStatus"
	KindAdmin                                          ModelKind = "Admin"
	KindAdminNetwork                                   ModelKind = "AdminNetwork"
	KindAdminTag                                       ModelKind = "AdminTag"
	KindAlert                                          ModelKind = "Alert"
	KindAlertDestinations                              ModelKind = "AlertDestinations"
	KindAlertSettings                                  ModelKind = "AlertSettings"
	KindApTagsAndVlanID                                ModelKind = "ApTagsAndVlanID"
	KindBandwidth                                      ModelKind = "Bandwidth"
	KindBandwidthLimits                                ModelKind = "BandwidthLimits"
	KindBatchAction                                    ModelKind = "BatchAction"
	KindBindNetwork                                    ModelKind = "BindNetwork"
	KindBlinkNetworkDeviceLeds                         ModelKind = "BlinkNetworkDeviceLeds"
	KindBlockedURLCategories                           ModelKind = "BlockedURLCategories"
	KindBonjourForwarding                              ModelKind = "BonjourForwarding"
	KindBonjourForwardingRule                          ModelKind = "BonjourForwardingRule"
	KindClaimNetworkDevices                            ModelKind = "ClaimNetworkDevices"
	KindClaimOrganization                              ModelKind = "ClaimOrganization"
	KindClaimOrganizationResult                        ModelKind = "ClaimOrganizationResult"
	KindClientPolicy                                   ModelKind = "ClientPolicy"
	KindClientUsage                                    ModelKind = "ClientUsage"
	KindCloneOrganization                              ModelKind = "CloneOrganization"
	KindCombineOrganizationNetworks                    ModelKind = "CombineOrganizationNetworks"
	KindCombinedNetwork                                ModelKind = "CombinedNetwork"
	KindContentFiltering                               ModelKind = "ContentFiltering"
	KindCreateNetworkGroupPolicy                       ModelKind = "CreateNetworkGroupPolicy"
	KindCreateNetworkHTTPServer                        ModelKind = "CreateNetworkHTTPServer"
	KindCreateNetworkHTTPServersWebhookTest            ModelKind = "CreateNetworkHTTPServersWebhookTest"
	KindCreateNetworkStaticRoute                       ModelKind = "CreateNetworkStaticRoute"
	KindCreateNetworkVlan                              ModelKind = "CreateNetworkVlan"
	KindCreateOrganization                             ModelKind = "CreateOrganization"
	KindCreateOrganizationActionBatch                  ModelKind = "CreateOrganizationActionBatch"
	KindCreateOrganizationAdmin                        ModelKind = "CreateOrganizationAdmin"
	KindCreateOrganizationNetwork                      ModelKind = "CreateOrganizationNetwork"
	KindCreateOrganizationSamlRole                     ModelKind = "CreateOrganizationSamlRole"
	KindDaySchedule                                    ModelKind = "DaySchedule"
	KindDevice                                         ModelKind = "Device"
	KindDeviceClient                                   ModelKind = "DeviceClient"
	KindDeviceStatus                                   ModelKind = "DeviceStatus"
	KindDeviceUplink                                   ModelKind = "DeviceUplink"
	KindDhcpOption                                     ModelKind = "DhcpOption"
	KindFirewallAndTrafficShaping                      ModelKind = "FirewallAndTrafficShaping"
	KindFirewallRule                                   ModelKind = "FirewallRule"
	KindFirewalledService                              ModelKind = "FirewalledService"
	KindFixedIPAssignment                              ModelKind = "FixedIPAssignment"
	KindGroupPolicy                                    ModelKind = "GroupPolicy"
	KindHTTPServer                                     ModelKind = "HTTPServer"
	KindInventoryDevice                                ModelKind = "InventoryDevice"
	KindIpsecPolicies                                  ModelKind = "IpsecPolicies"
	KindL7Application                                  ModelKind = "L7Application"
	KindL7ApplicationCategories                        ModelKind = "L7ApplicationCategories"
	KindL7ApplicationCategory                          ModelKind = "L7ApplicationCategory"
	KindL7FirewallRule                                 ModelKind = "L7FirewallRule"
	KindL7FirewallRules                                ModelKind = "L7FirewallRules"
	KindLicense                                        ModelKind = "License"
	KindLicenseState                                   ModelKind = "LicenseState"
	KindManagementInterfaceSettings                    ModelKind = "ManagementInterfaceSettings"
	KindNetwork                                        ModelKind = "Network"
	KindNetworkClient                                  ModelKind = "NetworkClient"
	KindOrganization                                   ModelKind = "Organization"
	KindOrganizationSnmp                               ModelKind = "OrganizationSnmp"
	KindPerClientBandwidthLimits                       ModelKind = "PerClientBandwidthLimits"
	KindPortForwardingRule                             ModelKind = "PortForwardingRule"
	KindPortForwardingRules                            ModelKind = "PortForwardingRules"
	KindProvisionNetworkClients                        ModelKind = "ProvisionNetworkClients"
	KindProvisionedClient                              ModelKind = "ProvisionedClient"
	KindRadiusServer                                   ModelKind = "RadiusServer"
	KindRebootResult                                   ModelKind = "RebootResult"
	KindReservedIPRange                                ModelKind = "ReservedIPRange"
	KindSamlRole                                       ModelKind = "SamlRole"
	KindSamlRoleNetwork                                ModelKind = "SamlRoleNetwork"
	KindSamlRoleTag                                    ModelKind = "SamlRoleTag"
	KindScheduling                                     ModelKind = "Scheduling"
	KindSiteToSiteVpn                                  ModelKind = "SiteToSiteVpn"
	KindSnmpSettings                                   ModelKind = "SnmpSettings"
	KindSnmpUser                                       ModelKind = "SnmpUser"
	KindSplashAuthorizationStatus                      ModelKind = "SplashAuthorizationStatus"
	KindSplashSettings                                 ModelKind = "SplashSettings"
	KindSsid                                           ModelKind = "Ssid"
	KindSsidAuthorization                              ModelKind = "SsidAuthorization"
	KindSsidTrafficShaping                             ModelKind = "SsidTrafficShaping"
	KindStaticRoute                                    ModelKind = "StaticRoute"
	KindSwitchPort                                     ModelKind = "SwitchPort"
	KindSyslogServer                                   ModelKind = "SyslogServer"
	KindThirdPartyVPNPeer                              ModelKind = "ThirdPartyVPNPeer"
	KindTimeSeriesPoint                                ModelKind = "TimeSeriesPoint"
	KindTrafficEntry                                   ModelKind = "TrafficEntry"
	KindTrafficShapingDefinition                       ModelKind = "TrafficShapingDefinition"
	KindTrafficShapingRule                             ModelKind = "TrafficShapingRule"
	KindURLPatterns                                    ModelKind = "URLPatterns"
	KindUpdateDeviceSwitchPort                         ModelKind = "UpdateDeviceSwitchPort"
	KindUpdateNetwork                                  ModelKind = "UpdateNetwork"
	KindUpdateNetworkAlertSettings                     ModelKind = "UpdateNetworkAlertSettings"
	KindUpdateNetworkCellularFirewallRules             ModelKind = "UpdateNetworkCellularFirewallRules"
	KindUpdateNetworkClientPolicy                      ModelKind = "UpdateNetworkClientPolicy"
	KindUpdateNetworkClientSplashAuthorizationStatus   ModelKind = "UpdateNetworkClientSplashAuthorizationStatus"
	KindUpdateNetworkDevice                            ModelKind = "UpdateNetworkDevice"
	KindUpdateNetworkDeviceManagementInterfaceSettings ModelKind = "UpdateNetworkDeviceManagementInterfaceSettings"
	KindUpdateNetworkFirewalledService                 ModelKind = "UpdateNetworkFirewalledService"
	KindUpdateNetworkGroupPolicy                       ModelKind = "UpdateNetworkGroupPolicy"
	KindUpdateNetworkHTTPServer                        ModelKind = "UpdateNetworkHTTPServer"
	KindUpdateNetworkL3FirewallRules                   ModelKind = "UpdateNetworkL3FirewallRules"
	KindUpdateNetworkL7FirewallRules                   ModelKind = "UpdateNetworkL7FirewallRules"
	KindUpdateNetworkPortForwardingRules               ModelKind = "UpdateNetworkPortForwardingRules"
	KindUpdateNetworkSiteToSiteVpn                     ModelKind = "UpdateNetworkSiteToSiteVpn"
	KindUpdateNetworkSnmpSettings                      ModelKind = "UpdateNetworkSnmpSettings"
	KindUpdateNetworkSsid                              ModelKind = "UpdateNetworkSsid"
	KindUpdateNetworkSsidL3FirewallRules               ModelKind = "UpdateNetworkSsidL3FirewallRules"
	KindUpdateNetworkSsidSplashSettings                ModelKind = "UpdateNetworkSsidSplashSettings"
	KindUpdateNetworkSsidTrafficShaping                ModelKind = "UpdateNetworkSsidTrafficShaping"
	KindUpdateNetworkStaticRoute                       ModelKind = "UpdateNetworkStaticRoute"
	KindUpdateNetworkSyslogServers                     ModelKind = "UpdateNetworkSyslogServers"
	KindUpdateNetworkVlan                              ModelKind = "UpdateNetworkVlan"
	KindUpdateNetworkVlansEnabledState                 ModelKind = "UpdateNetworkVlansEnabledState"
	KindUpdateOrganization                             ModelKind = "UpdateOrganization"
	KindUpdateOrganizationActionBatch                  ModelKind = "UpdateOrganizationActionBatch"
	KindUpdateOrganizationAdmin                        ModelKind = "UpdateOrganizationAdmin"
	KindUpdateOrganizationSamlRole                     ModelKind = "UpdateOrganizationSamlRole"
	KindUpdateOrganizationSnmp                         ModelKind = "UpdateOrganizationSnmp"
	KindUpdateOrganizationThirdPartyVPNPeers           ModelKind = "UpdateOrganizationThirdPartyVPNPeers"
	KindUpdateOrganizationVpnFirewallRules             ModelKind = "UpdateOrganizationVpnFirewallRules"
	KindUplinkLossAndLatency                           ModelKind = "UplinkLossAndLatency"
	KindVPNHub                                         ModelKind = "VPNHub"
	KindVPNSubnet                                      ModelKind = "VPNSubnet"
	KindVlan                                           ModelKind = "Vlan"
	KindVlanTagging                                    ModelKind = "VlanTagging"
	KindVlansEnabledState                              ModelKind = "VlansEnabledState"
	KindWanSettings                                    ModelKind = "WanSettings"
	KindWebhookTest                                    ModelKind = "WebhookTest"
)

type modelEntry struct {
	kind      ModelKind
	typ       reflect.Type
	construct func() any
}

func entry[T any]() modelEntry {
	typ := reflect.TypeFor[T]()
	return modelEntry{
		kind:      ModelKind(typ.Name()),
		typ:       typ,
		construct: func() any { return new(T) },
	}
}

var modelRegistry = newModelRegistry(
	entry[ActionBatch](),
	entry[ActionBatchStatus](),
	entry[Admin](),
	entry[AdminNetwork](),
	entry[AdminTag](),
	entry[Alert](),
	entry[AlertDestinations](),
	entry[AlertSettings](),
	entry[ApTagsAndVlanID](),
	entry[Bandwidth](),
	entry[BandwidthLimits](),
	entry[BatchAction](),
	entry[BindNetwork](),
	entry[BlinkNetworkDeviceLeds](),
	entry[BlockedURLCategories](),
	entry[BonjourForwarding](),
	entry[BonjourForwardingRule](),
	entry[ClaimNetworkDevices](),
	entry[ClaimOrganization](),
	entry[ClaimOrganizationResult](),
	entry[ClientPolicy](),
	entry[ClientUsage](),
	entry[CloneOrganization](),
	entry[CombineOrganizationNetworks](),
	entry[CombinedNetwork](),
	entry[ContentFiltering](),
	entry[CreateNetworkGroupPolicy](),
	entry[CreateNetworkHTTPServer](),
	entry[CreateNetworkHTTPServersWebhookTest](),
	entry[CreateNetworkStaticRoute](),
	entry[CreateNetworkVlan](),
	entry[CreateOrganization](),
	entry[CreateOrganizationActionBatch](),
	entry[CreateOrganizationAdmin](),
	entry[CreateOrganizationNetwork](),
	entry[CreateOrganizationSamlRole](),
	entry[DaySchedule](),
	entry[Device](),
	entry[DeviceClient](),
	entry[DeviceStatus](),
	entry[DeviceUplink](),
	entry[DhcpOption](),
	entry[FirewallAndTrafficShaping](),
	entry[FirewallRule](),
	entry[FirewalledService](),
	entry[FixedIPAssignment](),
	entry[GroupPolicy](),
	entry[HTTPServer](),
	entry[InventoryDevice](),
	entry[IpsecPolicies](),
	entry[L7Application](),
	entry[L7ApplicationCategories](),
	entry[L7ApplicationCategory](),
	entry[L7FirewallRule](),
	entry[L7FirewallRules](),
	entry[License](),
	entry[LicenseState](),
	entry[ManagementInterfaceSettings](),
	entry[Network](),
	entry[NetworkClient](),
	entry[Organization](),
	entry[OrganizationSnmp](),
	entry[PerClientBandwidthLimits](),
	entry[PortForwardingRule](),
	entry[PortForwardingRules](),
	entry[ProvisionNetworkClients](),
	entry[ProvisionedClient](),
	entry[RadiusServer](),
	entry[RebootResult](),
	entry[ReservedIPRange](),
	entry[SamlRole](),
	entry[SamlRoleNetwork](),
	entry[SamlRoleTag](),
	entry[Scheduling](),
	entry[SiteToSiteVpn](),
	entry[SnmpSettings](),
	entry[SnmpUser](),
	entry[SplashAuthorizationStatus](),
	entry[SplashSettings](),
	entry[Ssid](),
	entry[SsidAuthorization](),
	entry[SsidTrafficShaping](),
	entry[StaticRoute](),
	entry[SwitchPort](),
	entry[SyslogServer](),
	entry[ThirdPartyVPNPeer](),
	entry[TimeSeriesPoint](),
	entry[TrafficEntry](),
	entry[TrafficShapingDefinition](),
	entry[TrafficShapingRule](),
	entry[URLPatterns](),
	entry[UpdateDeviceSwitchPort](),
	entry[UpdateNetwork](),
	entry[UpdateNetworkAlertSettings](),
	entry[UpdateNetworkCellularFirewallRules](),
	entry[UpdateNetworkClientPolicy](),
	entry[UpdateNetworkClientSplashAuthorizationStatus](),
	entry[UpdateNetworkDevice](),
	entry[UpdateNetworkDeviceManagementInterfaceSettings](),
	entry[UpdateNetworkFirewalledService](),
	entry[UpdateNetworkGroupPolicy](),
	entry[UpdateNetworkHTTPServer](),
	entry[UpdateNetworkL3FirewallRules](),
	entry[UpdateNetworkL7FirewallRules](),
	entry[UpdateNetworkPortForwardingRules](),
	entry[UpdateNetworkSiteToSiteVpn](),
	entry[UpdateNetworkSnmpSettings](),
	entry[UpdateNetworkSsid](),
	entry[UpdateNetworkSsidL3FirewallRules](),
	entry[UpdateNetworkSsidSplashSettings](),
	entry[UpdateNetworkSsidTrafficShaping](),
	entry[UpdateNetworkStaticRoute](),
	entry[UpdateNetworkSyslogServers](),
	entry[UpdateNetworkVlan](),
	entry[UpdateNetworkVlansEnabledState](),
	entry[UpdateOrganization](),
	entry[UpdateOrganizationActionBatch](),
	entry[UpdateOrganizationAdmin](),
	entry[UpdateOrganizationSamlRole](),
	entry[UpdateOrganizationSnmp](),
	entry[UpdateOrganizationThirdPartyVPNPeers](),
	entry[UpdateOrganizationVpnFirewallRules](),
	entry[UplinkLossAndLatency](),
	entry[VPNHub](),
	entry[VPNSubnet](),
	entry[Vlan](),
	entry[VlanTagging](),
	entry[VlansEnabledState](),
	entry[WanSettings](),
	entry[WebhookTest](),
)

func newModelRegistry(entries ...modelEntry) map[ModelKind]modelEntry {
	registry := make(map[ModelKind]modelEntry, len(entries))
	for _, e := range entries {
		registry[e.kind] = e
	}
	return registry
}

// NewModel returns a pointer to a new zero value of the model named by kind.
func NewModel(kind ModelKind) (any, error) {
	e, ok := modelRegistry[kind]
	if !ok {
		return nil, errors.Newf("unknown model kind %q", kind)
	}
	return e.construct(), nil
}

// Kinds returns every registered model kind in lexical order.
func Kinds() []ModelKind {
	kinds := make([]ModelKind, 0, len(modelRegistry))
	for kind := range modelRegistry {
		kinds = append(kinds, kind)
	}
	slices.Sort(kinds)
	return kinds
}

// FieldMapping describes how one model field appears on the wire.
type FieldMapping struct {
	// Name is the Go field name.
	Name string

	// WireName is the JSON key.
	WireName string

	// Type is the Go type of the field.
	Type string

	// Array reports whether the field is a JSON array.
	Array bool
}

// FieldMappings returns the wire mapping of every serialized field of the
// model named by kind, in declaration order.
func FieldMappings(kind ModelKind) ([]FieldMapping, error) {
	e, ok := modelRegistry[kind]
	if !ok {
		return nil, errors.Newf("unknown model kind %q", kind)
	}

	mappings := make([]FieldMapping, 0, e.typ.NumField())
	for i := range e.typ.NumField() {
		field := e.typ.Field(i)
		wire, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if wire == "-" || !field.IsExported() {
			continue
		}
		if wire == "" {
			wire = field.Name
		}

		mappings = append(mappings, FieldMapping{
			Name:     field.Name,
			WireName: wire,
			Type:     field.Type.String(),
			Array:    isArray(field.Type),
		})
	}

	return mappings, nil
}

func isArray(typ reflect.Type) bool {
	if typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}
	return typ.Kind() == reflect.Slice && typ.Elem().Kind() != reflect.Uint8
}
