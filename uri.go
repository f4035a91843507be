package redfish

import "fmt"

// buildURI composes the absolute HTTPS URI for an API path fragment.
//
// The fragment is caller-trusted and appended verbatim with no escaping or
// normalization. Callers supply fragments with a trailing slash, e.g.
// "Systems/1/SmartStorage/ArrayControllers/".
func buildURI(host string, port int, version APIVersion, api string) string {
	switch {
	case port > 0 && version != 0:
		return fmt.Sprintf("https://%s:%d/%s/%s", host, port, version, api)
	case port > 0:
		return fmt.Sprintf("https://%s:%d/%s", host, port, api)
	case version != 0:
		return fmt.Sprintf("https://%s/%s/%s", host, version, api)
	default:
		return fmt.Sprintf("https://%s/%s", host, api)
	}
}

const (
	managerPath          = "Managers/"
	powerPath            = "Chassis/1/Power/"
	thermalPath          = "Chassis/1/Thermal/"
	arrayControllersPath = "Systems/1/SmartStorage/ArrayControllers/"
)

func arrayControllerPath(controllerID uint64) string {
	return fmt.Sprintf("%s%d/", arrayControllersPath, controllerID)
}

func logicalDrivesPath(controllerID uint64) string {
	return arrayControllerPath(controllerID) + "LogicalDrives/"
}

func physicalDrivesPath(controllerID uint64) string {
	return arrayControllerPath(controllerID) + "DiskDrives/"
}

func physicalDrivePath(driveID, controllerID uint64) string {
	return fmt.Sprintf("%sDiskDrives/%d/", arrayControllerPath(controllerID), driveID)
}

func storageEnclosuresPath(controllerID uint64) string {
	return arrayControllerPath(controllerID) + "StorageEnclosures/"
}

func storageEnclosurePath(controllerID, enclosureID uint64) string {
	return fmt.Sprintf("%sStorageEnclosures/%d/", arrayControllerPath(controllerID), enclosureID)
}
