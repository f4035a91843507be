package redfish

// ArrayControllers mirrors the Systems/1/SmartStorage/ArrayControllers/
// collection document.
type ArrayControllers struct {
	ODataContext string     `json:"@odata.context,omitempty"`
	ODataID      string     `json:"@odata.id,omitempty"`
	ODataType    string     `json:"@odata.type,omitempty"`
	Name         string     `json:"Name" validate:"required"`
	Description  string     `json:"Description,omitempty"`
	MemberType   string     `json:"MemberType,omitempty"`
	Members      []ODataRef `json:"Members"`
	MembersCount int        `json:"Members@odata.count,omitempty"`
	Total        int        `json:"Total,omitempty"`
}

// ArrayController is the generic view of a single array controller
// document.
type ArrayController struct {
	ODataContext string `json:"@odata.context,omitempty"`
	ODataID      string `json:"@odata.id,omitempty"`
	ODataType    string `json:"@odata.type,omitempty"`
	ID           string `json:"Id,omitempty"`
	Name         string `json:"Name" validate:"required"`
	Description  string `json:"Description,omitempty"`

	AdapterType      string          `json:"AdapterType,omitempty"`
	Model            string          `json:"Model,omitempty"`
	SerialNumber     string          `json:"SerialNumber,omitempty"`
	HardwareRevision string          `json:"HardwareRevision,omitempty"`
	FirmwareVersion  FirmwareVersion `json:"FirmwareVersion,omitempty"`
	Location         string          `json:"Location,omitempty"`
	LocationFormat   string          `json:"LocationFormat,omitempty"`
	Status           Status          `json:"Status,omitempty"`

	Links ArrayControllerLinks `json:"Links,omitempty"`
}

// ArrayControllerLinks holds the sub-resource links of a controller.
type ArrayControllerLinks struct {
	LogicalDrives     ODataRef `json:"LogicalDrives,omitempty"`
	PhysicalDrives    ODataRef `json:"PhysicalDrives,omitempty"`
	StorageEnclosures ODataRef `json:"StorageEnclosures,omitempty"`
}

// SmartArray is the storage-specific view of the same array controller
// document ArrayController maps; the endpoint exposes both.
type SmartArray struct {
	ODataContext string `json:"@odata.context,omitempty"`
	ODataID      string `json:"@odata.id,omitempty"`
	ODataType    string `json:"@odata.type,omitempty"`
	ID           string `json:"Id,omitempty"`
	Name         string `json:"Name" validate:"required"`

	BackupPowerSourceStatus  string `json:"BackupPowerSourceStatus,omitempty"`
	CacheMemorySizeMiB       int    `json:"CacheMemorySizeMiB,omitempty"`
	CacheModuleSerialNumber  string `json:"CacheModuleSerialNumber,omitempty"`
	CacheModuleStatus        Status `json:"CacheModuleStatus,omitempty"`
	CurrentOperatingMode     string `json:"CurrentOperatingMode,omitempty"`
	EncryptionEnabled        bool   `json:"EncryptionEnabled,omitempty"`
	EncryptionStandaloneMode bool   `json:"EncryptionStandaloneModeEnabled,omitempty"`
	Status                   Status `json:"Status,omitempty"`
}

// LogicalDrives mirrors the LogicalDrives/ collection document for one
// controller.
type LogicalDrives struct {
	ODataContext string     `json:"@odata.context,omitempty"`
	ODataID      string     `json:"@odata.id,omitempty"`
	ODataType    string     `json:"@odata.type,omitempty"`
	Name         string     `json:"Name" validate:"required"`
	Description  string     `json:"Description,omitempty"`
	MemberType   string     `json:"MemberType,omitempty"`
	Members      []ODataRef `json:"Members"`
	MembersCount int        `json:"Members@odata.count,omitempty"`
	Total        int        `json:"Total,omitempty"`
}

// LogicalDrive describes a single configured LUN.
type LogicalDrive struct {
	ODataContext string `json:"@odata.context,omitempty"`
	ODataID      string `json:"@odata.id,omitempty"`
	ODataType    string `json:"@odata.type,omitempty"`
	ID           string `json:"Id,omitempty"`
	Name         string `json:"Name" validate:"required"`

	CapacityMiB        int    `json:"CapacityMiB,omitempty"`
	Raid               string `json:"Raid,omitempty"`
	LogicalDriveType   string `json:"LogicalDriveType,omitempty"`
	LogicalDriveNumber int    `json:"LogicalDriveNumber,omitempty"`
	StripeSizeBytes    int    `json:"StripeSizeBytes,omitempty"`
	VolumeUniqueID     string `json:"VolumeUniqueIdentifier,omitempty"`
	Status             Status `json:"Status,omitempty"`
}

// DiskDrives mirrors the DiskDrives/ collection document for one
// controller.
type DiskDrives struct {
	ODataContext string     `json:"@odata.context,omitempty"`
	ODataID      string     `json:"@odata.id,omitempty"`
	ODataType    string     `json:"@odata.type,omitempty"`
	Name         string     `json:"Name" validate:"required"`
	Description  string     `json:"Description,omitempty"`
	MemberType   string     `json:"MemberType,omitempty"`
	Members      []ODataRef `json:"Members"`
	MembersCount int        `json:"Members@odata.count,omitempty"`
	Total        int        `json:"Total,omitempty"`
}

// DiskDrive describes a single physical drive.
type DiskDrive struct {
	ODataContext string `json:"@odata.context,omitempty"`
	ODataID      string `json:"@odata.id,omitempty"`
	ODataType    string `json:"@odata.type,omitempty"`
	ID           string `json:"Id,omitempty"`
	Name         string `json:"Name" validate:"required"`
	Description  string `json:"Description,omitempty"`

	BlockSizeBytes            int             `json:"BlockSizeBytes,omitempty"`
	CapacityGB                int             `json:"CapacityGB,omitempty"`
	CapacityLogicalBlocks     int64           `json:"CapacityLogicalBlocks,omitempty"`
	CapacityMiB               int             `json:"CapacityMiB,omitempty"`
	CurrentTemperatureCelsius int             `json:"CurrentTemperatureCelsius,omitempty"`
	MaximumTemperatureCelsius int             `json:"MaximumTemperatureCelsius,omitempty"`
	EncryptedDrive            bool            `json:"EncryptedDrive,omitempty"`
	FirmwareVersion           FirmwareVersion `json:"FirmwareVersion,omitempty"`
	InterfaceSpeedMbps        int             `json:"InterfaceSpeedMbps,omitempty"`
	InterfaceType             string          `json:"InterfaceType,omitempty"`
	Location                  string          `json:"Location,omitempty"`
	LocationFormat            string          `json:"LocationFormat,omitempty"`
	MediaType                 string          `json:"MediaType,omitempty"`
	Model                     string          `json:"Model,omitempty"`
	PowerOnHours              *int            `json:"PowerOnHours"`
	RotationalSpeedRpm        int             `json:"RotationalSpeedRpm,omitempty"`
	SerialNumber              string          `json:"SerialNumber,omitempty"`
	SSDEnduranceUtilization   *int            `json:"SSDEnduranceUtilizationPercentage"`
	Status                    Status          `json:"Status,omitempty"`
}

// StorageEnclosures mirrors the StorageEnclosures/ collection document
// for one controller.
type StorageEnclosures struct {
	ODataContext string     `json:"@odata.context,omitempty"`
	ODataID      string     `json:"@odata.id,omitempty"`
	ODataType    string     `json:"@odata.type,omitempty"`
	Name         string     `json:"Name" validate:"required"`
	Description  string     `json:"Description,omitempty"`
	MemberType   string     `json:"MemberType,omitempty"`
	Members      []ODataRef `json:"Members"`
	MembersCount int        `json:"Members@odata.count,omitempty"`
	Total        int        `json:"Total,omitempty"`
}

// StorageEnclosure describes a single drive enclosure.
type StorageEnclosure struct {
	ODataContext string `json:"@odata.context,omitempty"`
	ODataID      string `json:"@odata.id,omitempty"`
	ODataType    string `json:"@odata.type,omitempty"`
	ID           string `json:"Id,omitempty"`
	Name         string `json:"Name" validate:"required"`

	DriveBayCount   int             `json:"DriveBayCount,omitempty"`
	FirmwareVersion FirmwareVersion `json:"FirmwareVersion,omitempty"`
	Location        string          `json:"Location,omitempty"`
	LocationFormat  string          `json:"LocationFormat,omitempty"`
	Model           string          `json:"Model,omitempty"`
	SerialNumber    string          `json:"SerialNumber,omitempty"`
	SKU             string          `json:"SKU,omitempty"`
	Status          Status          `json:"Status,omitempty"`
}
