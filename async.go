package redfish

import "context"

// Result carries the outcome of a non-blocking call: either a typed value
// or the same unified error the blocking facade returns.
type Result[T any] struct {
	Value T
	Err   error
}

// AsyncClient is the non-blocking facade. Each accessor issues the request
// on its own goroutine and delivers exactly one Result on the returned
// channel before closing it. Concurrent calls interleave freely; the only
// shared state is the read-only Config and the pooled HTTP client.
//
// Cancellation is the caller's responsibility through the supplied
// context; the library exposes no cancellation primitive of its own.
type AsyncClient struct {
	c *Client
}

// NewAsyncClient constructs an AsyncClient using parameters or environment
// fallbacks.
func NewAsyncClient(host, user, password string) (*AsyncClient, error) {
	c, err := NewClient(host, user, password)
	if err != nil {
		return nil, err
	}
	return &AsyncClient{c: c}, nil
}

// NewAsyncClientWithParams constructs an AsyncClient from structured
// configuration parameters.
func NewAsyncClientWithParams(params ConfigParams) (*AsyncClient, error) {
	c, err := NewClientWithParams(params)
	if err != nil {
		return nil, err
	}
	return &AsyncClient{c: c}, nil
}

// NewAsyncClientWithConfig builds an AsyncClient from a fully parsed Config.
func NewAsyncClientWithConfig(cfg Config) (*AsyncClient, error) {
	c, err := NewClientWithConfig(cfg)
	if err != nil {
		return nil, err
	}
	return &AsyncClient{c: c}, nil
}

// Async returns the non-blocking facade sharing this client's
// configuration and transport.
func (c *Client) Async() *AsyncClient {
	return &AsyncClient{c: c}
}

// Blocking returns the underlying blocking facade.
func (a *AsyncClient) Blocking() *Client {
	return a.c
}

// Close releases idle HTTP connections.
func (a *AsyncClient) Close() {
	if a == nil {
		return
	}
	a.c.Close()
}

// asyncFetch runs one fetch on its own goroutine and delivers the single
// result. The channel is buffered so an abandoned call never leaks the
// goroutine.
func asyncFetch[T any](ctx context.Context, c *httpClient, api string) <-chan Result[T] {
	ch := make(chan Result[T], 1)
	go func() {
		defer close(ch)
		value, err := fetch[T](ctx, c, api)
		ch <- Result[T]{Value: value, Err: err}
	}()
	return ch
}

// GetManagerStatus queries the manager status from the server.
func (a *AsyncClient) GetManagerStatus(ctx context.Context) <-chan Result[Manager] {
	return asyncFetch[Manager](ctx, a.c.http, managerPath)
}

// GetPowerStatus queries the power status from the server.
func (a *AsyncClient) GetPowerStatus(ctx context.Context) <-chan Result[Power] {
	return asyncFetch[Power](ctx, a.c.http, powerPath)
}

// GetThermalStatus queries the thermal status from the server.
func (a *AsyncClient) GetThermalStatus(ctx context.Context) <-chan Result[Thermal] {
	return asyncFetch[Thermal](ctx, a.c.http, thermalPath)
}

// GetArrayController pulls array controller information for the specified
// controller ID.
func (a *AsyncClient) GetArrayController(ctx context.Context, controllerID uint64) <-chan Result[ArrayController] {
	return asyncFetch[ArrayController](ctx, a.c.http, arrayControllerPath(controllerID))
}

// GetArrayControllers gets all of the array controllers for a LOM host.
func (a *AsyncClient) GetArrayControllers(ctx context.Context) <-chan Result[ArrayControllers] {
	return asyncFetch[ArrayControllers](ctx, a.c.http, arrayControllersPath)
}

// GetSmartArrayStatus queries the smart array status for the specified
// controller ID.
func (a *AsyncClient) GetSmartArrayStatus(ctx context.Context, controllerID uint64) <-chan Result[SmartArray] {
	return asyncFetch[SmartArray](ctx, a.c.http, arrayControllerPath(controllerID))
}

// GetLogicalDrives gets all of the LUNs configured behind the specified
// controller.
func (a *AsyncClient) GetLogicalDrives(ctx context.Context, controllerID uint64) <-chan Result[LogicalDrives] {
	return asyncFetch[LogicalDrives](ctx, a.c.http, logicalDrivesPath(controllerID))
}

// GetPhysicalDrive gets a single physical drive, where driveID identifies
// the drive controlled by the controller of controllerID.
func (a *AsyncClient) GetPhysicalDrive(ctx context.Context, driveID, controllerID uint64) <-chan Result[DiskDrive] {
	return asyncFetch[DiskDrive](ctx, a.c.http, physicalDrivePath(driveID, controllerID))
}

// GetPhysicalDrives gets all of the physical drives behind the specified
// controller.
func (a *AsyncClient) GetPhysicalDrives(ctx context.Context, controllerID uint64) <-chan Result[DiskDrives] {
	return asyncFetch[DiskDrives](ctx, a.c.http, physicalDrivesPath(controllerID))
}

// GetStorageEnclosures gets all of the storage enclosures behind the
// specified controller.
func (a *AsyncClient) GetStorageEnclosures(ctx context.Context, controllerID uint64) <-chan Result[StorageEnclosures] {
	return asyncFetch[StorageEnclosures](ctx, a.c.http, storageEnclosuresPath(controllerID))
}

// GetStorageEnclosure gets a single storage enclosure behind the specified
// controller.
func (a *AsyncClient) GetStorageEnclosure(ctx context.Context, controllerID, enclosureID uint64) <-chan Result[StorageEnclosure] {
	return asyncFetch[StorageEnclosure](ctx, a.c.http, storageEnclosurePath(controllerID, enclosureID))
}
