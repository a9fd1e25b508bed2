// Package dashboard provides a Go client for the Cisco Meraki Dashboard API (v0).
//
// The Dashboard API manages cloud-hosted Meraki organizations: administrators,
// networks, devices, switch ports, SSIDs, VLANs, firewall rules, clients,
// and more. Every operation is a method on *Client and belongs to one of the
// controller interfaces (AdminsAPI, OrganizationsAPI, NetworksAPI, ...),
// which together form DashboardAPIClient.
//
// # Authentication
//
// Requests carry the API key in the X-Cisco-Meraki-API-Key header:
//
//  1. Open Organization > Settings and enable API access
//  2. Generate a key under My Profile > API access
//  3. Pass the key to New or NewWithConfig
//
// # Basic Usage
//
//	client, err := dashboard.New("your-api-key")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	orgs, err := client.GetOrganizations(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, org := range orgs {
//	    networks, err := client.GetOrganizationNetworks(ctx, org.ID, nil)
//	    ...
//	}
//
// # Request Models
//
// Request bodies are plain structs whose optional fields are pointers; unset
// fields are omitted from the JSON. Ptr helps filling them:
//
//	port, err := client.UpdateDeviceSwitchPort(ctx, "Q234-ABCD-5678", "3", &dashboard.UpdateDeviceSwitchPort{
//	    Type:         dashboard.Ptr("trunk"),
//	    AllowedVLANs: dashboard.Ptr("1,3,5"),
//	})
//
// NewModel builds any model by its ModelKind and FieldMappings describes how
// its fields map to JSON keys.
//
// # Error Handling
//
// Calls missing a required path parameter or body fail locally with a
// *ValidationError (ErrorCode -1); no request is sent. Transport failures and
// responses outside 200-206 yield an *APIError carrying the status code, the
// Dashboard error messages, and the raw request and response in Context:
//
//	_, err := client.GetNetwork(ctx, networkID)
//	var apiErr *dashboard.APIError
//	if errors.As(err, &apiErr) && apiErr.IsNotFound() {
//	    ...
//	}
//
// The client never retries. Retry-After is parsed into APIError.RetryAfter
// for callers that want to back off.
//
// # Concurrency
//
// A *Client is safe for concurrent use. Go starts a call in the background
// and returns a Future:
//
//	statuses := dashboard.Go(ctx, func(ctx context.Context) ([]dashboard.DeviceStatus, error) {
//	    return client.GetOrganizationDeviceStatuses(ctx, orgID)
//	})
//	...
//	list, err := statuses.Await(ctx)
//
// # Rate Limiting
//
// The Dashboard API allows 5 calls per second per organization. Setting
// ClientConfig.RateLimitPerSecond throttles requests locally, with one token
// bucket per organization ID found in the request path.
//
// # Dynamic Calls
//
// Invoke executes any operation from the catalog (Endpoints, LookupEndpoint)
// by its operation ID with raw JSON in and out. merakictl call is built on it.
//
// # Related Packages
//
//   - github.com/lexfrei/go-meraki/observability - Logger and metrics adapters (zap, Prometheus)
package dashboard
