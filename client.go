package redfish

import "context"

// Client is the blocking facade over a single Redfish endpoint. Every
// accessor occupies the calling goroutine until the HTTP exchange
// completes. The zero-cancellation accessors have WithContext twins; use
// those when the caller owns a deadline or cancellation signal.
//
// A Client is safe for concurrent use; the only shared state is the
// read-only Config and the pooled HTTP client.
type Client struct {
	Config Config
	auth   Auth
	http   *httpClient
}

// NewClient constructs a Client using parameters or environment fallbacks.
func NewClient(host, user, password string) (*Client, error) {
	cfg, err := LoadConfig(host, user, password)
	if err != nil {
		return nil, err
	}
	return NewClientWithConfig(cfg)
}

// NewClientWithParams constructs a Client from structured configuration parameters.
func NewClientWithParams(params ConfigParams) (*Client, error) {
	cfg, err := LoadConfigWithParams(params)
	if err != nil {
		return nil, err
	}
	return NewClientWithConfig(cfg)
}

// NewClientWithConfig builds a Client from a fully parsed Config.
func NewClientWithConfig(cfg Config) (*Client, error) {
	return NewClientWithExecutor(cfg, nil)
}

// NewClientWithExecutor builds a Client around a caller-supplied transport
// strategy. A nil exec falls back to a built-in *http.Client configured
// from cfg (timeout, TLS verification).
func NewClientWithExecutor(cfg Config, exec Executor) (*Client, error) {
	if cfg.Host == "" {
		return nil, ErrMissingHost
	}
	auth := newAuth(cfg)
	return &Client{
		Config: cfg,
		auth:   auth,
		http:   newHTTPClient(cfg, auth, exec),
	}, nil
}

// Close releases idle HTTP connections.
func (c *Client) Close() {
	if c == nil || c.http == nil {
		return
	}
	c.http.close()
}

// Get pulls an arbitrary API path fragment and decodes the document into
// T. This should not normally be used to pull from endpoints; prefer the
// named accessors. If you must, use Get[json.RawMessage] to fetch the raw
// document.
func Get[T any](ctx context.Context, c *Client, api string) (T, error) {
	return fetch[T](ctx, c.http, api)
}

// GetManagerStatus queries the manager status from the server.
func (c *Client) GetManagerStatus() (Manager, error) {
	return c.GetManagerStatusWithContext(context.Background())
}

// GetManagerStatusWithContext queries the manager status from the server
// with a caller-supplied context.
func (c *Client) GetManagerStatusWithContext(ctx context.Context) (Manager, error) {
	return fetch[Manager](ctx, c.http, managerPath)
}

// GetPowerStatus queries the power status from the server.
func (c *Client) GetPowerStatus() (Power, error) {
	return c.GetPowerStatusWithContext(context.Background())
}

// GetPowerStatusWithContext queries the power status from the server with
// a caller-supplied context.
func (c *Client) GetPowerStatusWithContext(ctx context.Context) (Power, error) {
	return fetch[Power](ctx, c.http, powerPath)
}

// GetThermalStatus queries the thermal status from the server.
func (c *Client) GetThermalStatus() (Thermal, error) {
	return c.GetThermalStatusWithContext(context.Background())
}

// GetThermalStatusWithContext queries the thermal status from the server
// with a caller-supplied context.
func (c *Client) GetThermalStatusWithContext(ctx context.Context) (Thermal, error) {
	return fetch[Thermal](ctx, c.http, thermalPath)
}

// GetArrayController pulls array controller information for the specified
// controller ID.
func (c *Client) GetArrayController(controllerID uint64) (ArrayController, error) {
	return c.GetArrayControllerWithContext(context.Background(), controllerID)
}

// GetArrayControllerWithContext pulls array controller information with a
// caller-supplied context.
func (c *Client) GetArrayControllerWithContext(ctx context.Context, controllerID uint64) (ArrayController, error) {
	return fetch[ArrayController](ctx, c.http, arrayControllerPath(controllerID))
}

// GetArrayControllers gets all of the array controllers for a LOM host.
func (c *Client) GetArrayControllers() (ArrayControllers, error) {
	return c.GetArrayControllersWithContext(context.Background())
}

// GetArrayControllersWithContext gets all of the array controllers with a
// caller-supplied context.
func (c *Client) GetArrayControllersWithContext(ctx context.Context) (ArrayControllers, error) {
	return fetch[ArrayControllers](ctx, c.http, arrayControllersPath)
}

// GetSmartArrayStatus queries the smart array status for the specified
// controller ID. It reads the same document as GetArrayController but
// decodes the storage-specific view.
func (c *Client) GetSmartArrayStatus(controllerID uint64) (SmartArray, error) {
	return c.GetSmartArrayStatusWithContext(context.Background(), controllerID)
}

// GetSmartArrayStatusWithContext queries the smart array status with a
// caller-supplied context.
func (c *Client) GetSmartArrayStatusWithContext(ctx context.Context, controllerID uint64) (SmartArray, error) {
	return fetch[SmartArray](ctx, c.http, arrayControllerPath(controllerID))
}

// GetLogicalDrives gets all of the LUNs configured behind the specified
// controller.
func (c *Client) GetLogicalDrives(controllerID uint64) (LogicalDrives, error) {
	return c.GetLogicalDrivesWithContext(context.Background(), controllerID)
}

// GetLogicalDrivesWithContext gets all of the LUNs behind the specified
// controller with a caller-supplied context.
func (c *Client) GetLogicalDrivesWithContext(ctx context.Context, controllerID uint64) (LogicalDrives, error) {
	return fetch[LogicalDrives](ctx, c.http, logicalDrivesPath(controllerID))
}

// GetPhysicalDrive gets a single physical drive, where driveID identifies
// the drive controlled by the controller of controllerID.
func (c *Client) GetPhysicalDrive(driveID, controllerID uint64) (DiskDrive, error) {
	return c.GetPhysicalDriveWithContext(context.Background(), driveID, controllerID)
}

// GetPhysicalDriveWithContext gets a single physical drive with a
// caller-supplied context.
func (c *Client) GetPhysicalDriveWithContext(ctx context.Context, driveID, controllerID uint64) (DiskDrive, error) {
	return fetch[DiskDrive](ctx, c.http, physicalDrivePath(driveID, controllerID))
}

// GetPhysicalDrives gets all of the physical drives behind the specified
// controller.
func (c *Client) GetPhysicalDrives(controllerID uint64) (DiskDrives, error) {
	return c.GetPhysicalDrivesWithContext(context.Background(), controllerID)
}

// GetPhysicalDrivesWithContext gets all of the physical drives behind the
// specified controller with a caller-supplied context.
func (c *Client) GetPhysicalDrivesWithContext(ctx context.Context, controllerID uint64) (DiskDrives, error) {
	return fetch[DiskDrives](ctx, c.http, physicalDrivesPath(controllerID))
}

// GetStorageEnclosures gets all of the storage enclosures behind the
// specified controller.
func (c *Client) GetStorageEnclosures(controllerID uint64) (StorageEnclosures, error) {
	return c.GetStorageEnclosuresWithContext(context.Background(), controllerID)
}

// GetStorageEnclosuresWithContext gets all of the storage enclosures with
// a caller-supplied context.
func (c *Client) GetStorageEnclosuresWithContext(ctx context.Context, controllerID uint64) (StorageEnclosures, error) {
	return fetch[StorageEnclosures](ctx, c.http, storageEnclosuresPath(controllerID))
}

// GetStorageEnclosure gets a single storage enclosure behind the specified
// controller.
func (c *Client) GetStorageEnclosure(controllerID, enclosureID uint64) (StorageEnclosure, error) {
	return c.GetStorageEnclosureWithContext(context.Background(), controllerID, enclosureID)
}

// GetStorageEnclosureWithContext gets a single storage enclosure with a
// caller-supplied context.
func (c *Client) GetStorageEnclosureWithContext(ctx context.Context, controllerID, enclosureID uint64) (StorageEnclosure, error) {
	return fetch[StorageEnclosure](ctx, c.http, storageEnclosurePath(controllerID, enclosureID))
}
