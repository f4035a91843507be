package redfish

import (
	"context"
	"net/http"
	"reflect"
	"testing"
	"time"
)

func TestAsyncBlockingParityForEveryEndpoint(t *testing.T) {
	// Both facades must return identical typed results from identical
	// responses.
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"Id": "1",
			"Name": "Resource",
			"Members": [{"@odata.id": "/redfish/v1/Systems/1/SmartStorage/ArrayControllers/0/"}],
			"Members@odata.count": 1,
			"Fans": [{"FanName": "Fan 1", "CurrentReading": 31, "Units": "Percent"}],
			"PowerSupplies": [{"Model": "865414-B21", "PowerCapacityWatts": 800}],
			"Model": "P408i-a SR Gen10",
			"CapacityGB": 960,
			"CacheMemorySizeMiB": 2048,
			"DriveBayCount": 8
		}`))
	})
	client, server := newTestClient(t, handler)
	defer server.Close()
	defer client.Close()

	async := client.Async()
	ctx := context.Background()

	pairs := []struct {
		name     string
		blocking func() (any, error)
		async    func() (any, error)
	}{
		{
			name:     "ManagerStatus",
			blocking: func() (any, error) { return client.GetManagerStatus() },
			async:    func() (any, error) { r := <-async.GetManagerStatus(ctx); return r.Value, r.Err },
		},
		{
			name:     "PowerStatus",
			blocking: func() (any, error) { return client.GetPowerStatus() },
			async:    func() (any, error) { r := <-async.GetPowerStatus(ctx); return r.Value, r.Err },
		},
		{
			name:     "ThermalStatus",
			blocking: func() (any, error) { return client.GetThermalStatus() },
			async:    func() (any, error) { r := <-async.GetThermalStatus(ctx); return r.Value, r.Err },
		},
		{
			name:     "ArrayController",
			blocking: func() (any, error) { return client.GetArrayController(0) },
			async:    func() (any, error) { r := <-async.GetArrayController(ctx, 0); return r.Value, r.Err },
		},
		{
			name:     "ArrayControllers",
			blocking: func() (any, error) { return client.GetArrayControllers() },
			async:    func() (any, error) { r := <-async.GetArrayControllers(ctx); return r.Value, r.Err },
		},
		{
			name:     "SmartArrayStatus",
			blocking: func() (any, error) { return client.GetSmartArrayStatus(0) },
			async:    func() (any, error) { r := <-async.GetSmartArrayStatus(ctx, 0); return r.Value, r.Err },
		},
		{
			name:     "LogicalDrives",
			blocking: func() (any, error) { return client.GetLogicalDrives(0) },
			async:    func() (any, error) { r := <-async.GetLogicalDrives(ctx, 0); return r.Value, r.Err },
		},
		{
			name:     "PhysicalDrive",
			blocking: func() (any, error) { return client.GetPhysicalDrive(4, 0) },
			async:    func() (any, error) { r := <-async.GetPhysicalDrive(ctx, 4, 0); return r.Value, r.Err },
		},
		{
			name:     "PhysicalDrives",
			blocking: func() (any, error) { return client.GetPhysicalDrives(0) },
			async:    func() (any, error) { r := <-async.GetPhysicalDrives(ctx, 0); return r.Value, r.Err },
		},
		{
			name:     "StorageEnclosures",
			blocking: func() (any, error) { return client.GetStorageEnclosures(0) },
			async:    func() (any, error) { r := <-async.GetStorageEnclosures(ctx, 0); return r.Value, r.Err },
		},
		{
			name:     "StorageEnclosure",
			blocking: func() (any, error) { return client.GetStorageEnclosure(0, 2) },
			async:    func() (any, error) { r := <-async.GetStorageEnclosure(ctx, 0, 2); return r.Value, r.Err },
		},
	}

	for _, tt := range pairs {
		t.Run(tt.name, func(t *testing.T) {
			blockingValue, err := tt.blocking()
			if err != nil {
				t.Fatalf("blocking call: %v", err)
			}
			asyncValue, err := tt.async()
			if err != nil {
				t.Fatalf("async call: %v", err)
			}
			if !reflect.DeepEqual(blockingValue, asyncValue) {
				t.Fatalf("facades disagree:\nblocking: %+v\nasync:    %+v", blockingValue, asyncValue)
			}
		})
	}
}

func TestAsyncBlockingErrorParityForEveryEndpoint(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})
	client, server := newTestClient(t, handler)
	defer server.Close()
	defer client.Close()

	async := client.Async()
	ctx := context.Background()

	asyncCalls := []struct {
		name string
		call func() error
	}{
		{"ManagerStatus", func() error { return (<-async.GetManagerStatus(ctx)).Err }},
		{"PowerStatus", func() error { return (<-async.GetPowerStatus(ctx)).Err }},
		{"ThermalStatus", func() error { return (<-async.GetThermalStatus(ctx)).Err }},
		{"ArrayController", func() error { return (<-async.GetArrayController(ctx, 0)).Err }},
		{"ArrayControllers", func() error { return (<-async.GetArrayControllers(ctx)).Err }},
		{"SmartArrayStatus", func() error { return (<-async.GetSmartArrayStatus(ctx, 0)).Err }},
		{"LogicalDrives", func() error { return (<-async.GetLogicalDrives(ctx, 0)).Err }},
		{"PhysicalDrive", func() error { return (<-async.GetPhysicalDrive(ctx, 4, 0)).Err }},
		{"PhysicalDrives", func() error { return (<-async.GetPhysicalDrives(ctx, 0)).Err }},
		{"StorageEnclosures", func() error { return (<-async.GetStorageEnclosures(ctx, 0)).Err }},
		{"StorageEnclosure", func() error { return (<-async.GetStorageEnclosure(ctx, 0, 2)).Err }},
	}

	blockingCases := accessorCases()
	if len(asyncCalls) != len(blockingCases) {
		t.Fatalf("facade surfaces diverged: %d async vs %d blocking", len(asyncCalls), len(blockingCases))
	}

	for i, tt := range asyncCalls {
		t.Run(tt.name, func(t *testing.T) {
			blockingErr := blockingCases[i].call(client)
			asyncErr := tt.call()

			b, ok := AsError(blockingErr)
			if !ok {
				t.Fatalf("blocking error not *Error: %v", blockingErr)
			}
			a, ok := AsError(asyncErr)
			if !ok {
				t.Fatalf("async error not *Error: %v", asyncErr)
			}
			if a.Kind != b.Kind || a.StatusCode != b.StatusCode {
				t.Fatalf("error mismatch: blocking %+v, async %+v", b, a)
			}
		})
	}
}

func TestAsyncChannelDeliversOnceAndCloses(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"Name":"Managers","Members":[]}`))
	})
	client, server := newTestClient(t, handler)
	defer server.Close()
	defer client.Close()

	ch := client.Async().GetManagerStatus(context.Background())

	first, ok := <-ch
	if !ok {
		t.Fatalf("channel closed before delivering a result")
	}
	if first.Err != nil {
		t.Fatalf("unexpected error: %v", first.Err)
	}

	select {
	case _, ok := <-ch:
		if ok {
			t.Fatalf("channel delivered a second result")
		}
	case <-time.After(time.Second):
		t.Fatalf("channel not closed after delivering its result")
	}
}

func TestAsyncCallsInterleave(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"Name":"ok","Members":[]}`))
	})
	client, server := newTestClient(t, handler)
	defer server.Close()
	defer client.Close()

	async := client.Async()
	ctx := context.Background()

	// Fire all three before receiving any.
	managers := async.GetManagerStatus(ctx)
	power := async.GetPowerStatus(ctx)
	thermal := async.GetThermalStatus(ctx)

	if r := <-managers; r.Err != nil {
		t.Fatalf("managers: %v", r.Err)
	}
	if r := <-power; r.Err != nil {
		t.Fatalf("power: %v", r.Err)
	}
	if r := <-thermal; r.Err != nil {
		t.Fatalf("thermal: %v", r.Err)
	}
}

func TestAsyncContextCancellation(t *testing.T) {
	started := make(chan struct{})
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(started)
		<-r.Context().Done()
	})
	client, server := newTestClient(t, handler)
	defer server.Close()
	defer client.Close()

	ctx, cancel := context.WithCancel(context.Background())
	ch := client.Async().GetPowerStatus(ctx)

	<-started
	cancel()

	result := <-ch
	rerr, ok := AsError(result.Err)
	if !ok || rerr.Kind != KindTransport {
		t.Fatalf("expected transport error after cancellation, got %v", result.Err)
	}
}

func TestNewAsyncClientSharesConfig(t *testing.T) {
	async, err := NewAsyncClientWithConfig(Config{Host: "bmc01", APIVersion: V1})
	if err != nil {
		t.Fatalf("new async client: %v", err)
	}
	defer async.Close()

	if async.Blocking().Config.Host != "bmc01" {
		t.Fatalf("config not shared: %+v", async.Blocking().Config)
	}
}
