package models

// VendorAllowlistEntry restricts a project to named vendors or MCCs. A
// project with no entries accepts any vendor.
type VendorAllowlistEntry struct {
	ID         int64  `json:"id" db:"id"`
	ProjectID  int64  `json:"project_id" db:"project_id"`
	VendorName string `json:"vendor_name" db:"vendor_name"`
	MCC        string `json:"mcc,omitempty" db:"mcc"`
}

// BlockedMCCCategory is a platform-wide blocked merchant category.
type BlockedMCCCategory struct {
	ID       int64  `json:"id" db:"id"`
	MCC      string `json:"mcc" db:"mcc"`
	Category string `json:"category" db:"category"`
	Reason   string `json:"reason" db:"reason"`
}
