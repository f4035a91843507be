package redfish

// Power mirrors the Chassis/1/Power/ document.
type Power struct {
	ODataContext string `json:"@odata.context,omitempty"`
	ODataID      string `json:"@odata.id,omitempty"`
	ODataType    string `json:"@odata.type,omitempty"`
	ID           string `json:"Id,omitempty"`
	Name         string `json:"Name" validate:"required"`

	PowerCapacityWatts int `json:"PowerCapacityWatts,omitempty"`
	PowerConsumedWatts int `json:"PowerConsumedWatts,omitempty"`

	PowerControl  []PowerControl `json:"PowerControl,omitempty"`
	PowerSupplies []PowerSupply  `json:"PowerSupplies,omitempty"`
	Redundancy    []Redundancy   `json:"Redundancy,omitempty"`
}

// PowerControl describes a power domain of the chassis.
type PowerControl struct {
	MemberID           string       `json:"MemberId,omitempty"`
	PowerCapacityWatts int          `json:"PowerCapacityWatts,omitempty"`
	PowerConsumedWatts int          `json:"PowerConsumedWatts,omitempty"`
	PowerMetrics       PowerMetrics `json:"PowerMetrics,omitempty"`
	PowerLimit         PowerLimit   `json:"PowerLimit,omitempty"`
}

// PowerMetrics carries consumption statistics over the sampling interval.
type PowerMetrics struct {
	IntervalInMin        int `json:"IntervalInMin,omitempty"`
	AverageConsumedWatts int `json:"AverageConsumedWatts,omitempty"`
	MaxConsumedWatts     int `json:"MaxConsumedWatts,omitempty"`
	MinConsumedWatts     int `json:"MinConsumedWatts,omitempty"`
}

// PowerLimit describes a configured cap on a power domain.
type PowerLimit struct {
	LimitInWatts   *int   `json:"LimitInWatts"`
	LimitException string `json:"LimitException,omitempty"`
}

// PowerSupply describes one power supply unit.
type PowerSupply struct {
	MemberID             string `json:"MemberId,omitempty"`
	Name                 string `json:"Name,omitempty"`
	Model                string `json:"Model,omitempty"`
	Manufacturer         string `json:"Manufacturer,omitempty"`
	FirmwareVersion      string `json:"FirmwareVersion,omitempty"`
	SerialNumber         string `json:"SerialNumber,omitempty"`
	SparePartNumber      string `json:"SparePartNumber,omitempty"`
	PowerSupplyType      string `json:"PowerSupplyType,omitempty"`
	LineInputVoltage     int    `json:"LineInputVoltage,omitempty"`
	LineInputVoltageType string `json:"LineInputVoltageType,omitempty"`
	PowerCapacityWatts   int    `json:"PowerCapacityWatts,omitempty"`
	LastPowerOutputWatts int    `json:"LastPowerOutputWatts,omitempty"`
	Status               Status `json:"Status,omitempty"`
}

// Redundancy describes a redundancy group of power supplies.
type Redundancy struct {
	MemberID        string     `json:"MemberId,omitempty"`
	Name            string     `json:"Name,omitempty"`
	Mode            string     `json:"Mode,omitempty"`
	MaxNumSupported int        `json:"MaxNumSupported,omitempty"`
	MinNumNeeded    int        `json:"MinNumNeeded,omitempty"`
	RedundancySet   []ODataRef `json:"RedundancySet,omitempty"`
	Status          Status     `json:"Status,omitempty"`
}
