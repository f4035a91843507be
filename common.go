package redfish

// ODataRef is a link to another resource.
type ODataRef struct {
	ODataID string `json:"@odata.id"`
}

// Status is the common Redfish status block carried by most resources.
type Status struct {
	State        string `json:"State,omitempty"`
	Health       string `json:"Health,omitempty"`
	HealthRollup string `json:"HealthRollup,omitempty"`
}

// FirmwareVersion wraps the nested firmware version block HPE resources
// report.
type FirmwareVersion struct {
	Current VersionString `json:"Current"`
}

// VersionString holds a single firmware version literal.
type VersionString struct {
	VersionString string `json:"VersionString"`
}
