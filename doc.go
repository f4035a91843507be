// Package redfish is a typed Go client for the Redfish systems-management
// API exposed by server BMCs, with first-class support for the HPE iLO
// SmartStorage resource tree.
//
// # Installation
//
//	go get github.com/lomtools/redfish-go
//
// # Quick Start
//
// Create a client and query hardware state:
//
//	package main
//
//	import (
//		"fmt"
//		"log"
//		"os"
//
//		redfish "github.com/lomtools/redfish-go"
//	)
//
//	func main() {
//		client, err := redfish.NewClient(
//			os.Getenv("REDFISH_HOST"),
//			os.Getenv("REDFISH_USER"),
//			os.Getenv("REDFISH_PASSWORD"),
//		)
//		if err != nil {
//			log.Fatal(err)
//		}
//		defer client.Close()
//
//		thermal, err := client.GetThermalStatus()
//		if err != nil {
//			log.Fatal(err)
//		}
//
//		for _, fan := range thermal.Fans {
//			fmt.Printf("%s: %d %s (%s)\n", fan.FanName, fan.CurrentReading, fan.Units, fan.Status.Health)
//		}
//	}
//
// # Execution Modes
//
// Client blocks the calling goroutine per call; AsyncClient returns a
// single-shot result channel per call. Both facades share one request
// pipeline, so results and error kinds are identical between modes. Use
// the WithContext accessor variants (or the context parameter on
// AsyncClient) for cancellation and deadlines.
//
// # Errors
//
// Every call returns either a typed value or a single *Error whose Kind is
// one of transport, status, or decode. There is no retry or fallback; BMC
// endpoints are flaky, and retry policy is deliberately left to the caller.
//
// # Environment Variables
//
//   - REDFISH_HOST: IP address or FQDN of the LOM host
//   - REDFISH_PORT: optional port
//   - REDFISH_API_VERSION: optional "v1" or "v2" path segment selector
//   - REDFISH_USER / REDFISH_PASSWORD: optional Basic-auth credentials
//   - REDFISH_TIMEOUT: optional HTTP client timeout (e.g. "30s")
//   - REDFISH_INSECURE: set to accept self-signed BMC certificates
//   - REDFISH_DEBUG: enable request/response logging
package redfish
