package models

// AuditLog records every archived valuation run.
type AuditLog struct {
	Base
	Action       string `gorm:"not null;index" json:"action"`
	ResourceType string `gorm:"not null" json:"resource_type"`
	ResourceID   string `gorm:"index" json:"resource_id"`
	IPAddress    string `json:"ip_address,omitempty"`
	Changes      string `json:"changes,omitempty"`
}
