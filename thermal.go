package redfish

// Thermal mirrors the Chassis/1/Thermal/ document.
type Thermal struct {
	ODataContext string `json:"@odata.context,omitempty"`
	ODataID      string `json:"@odata.id,omitempty"`
	ODataType    string `json:"@odata.type,omitempty"`
	ID           string `json:"Id,omitempty"`
	Name         string `json:"Name" validate:"required"`

	Fans         []Fan         `json:"Fans,omitempty"`
	Temperatures []Temperature `json:"Temperatures,omitempty"`
}

// Fan gives metadata on one chassis fan.
type Fan struct {
	MemberID       string `json:"MemberId,omitempty"`
	FanName        string `json:"FanName,omitempty"`
	CurrentReading int    `json:"CurrentReading,omitempty"`
	Units          string `json:"Units,omitempty"`
	Status         Status `json:"Status,omitempty"`
}

// Temperature gives metadata on one temperature sensor.
type Temperature struct {
	MemberID               string `json:"MemberId,omitempty"`
	Name                   string `json:"Name,omitempty"`
	Number                 int    `json:"Number,omitempty"`
	PhysicalContext        string `json:"PhysicalContext,omitempty"`
	CurrentReading         int    `json:"CurrentReading,omitempty"`
	ReadingCelsius         int    `json:"ReadingCelsius,omitempty"`
	Units                  string `json:"Units,omitempty"`
	UpperThresholdCritical int    `json:"UpperThresholdCritical,omitempty"`
	UpperThresholdFatal    int    `json:"UpperThresholdFatal,omitempty"`
	Status                 Status `json:"Status,omitempty"`
}
