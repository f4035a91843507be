package redfish

// Manager mirrors the Managers/ collection document describing the
// management controllers (iLO, BMC) of a host.
type Manager struct {
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
