package models

// Company represents a business that receives invoices.
// Rows are provisioned by an external process; this API never creates them.
type Company struct {
	Code        string `gorm:"primaryKey"`
	Name        string `gorm:"not null"`
	Description string
}

func (c *Company) TableName() string {
	return "companies"
}
