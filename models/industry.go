package models

// Industry represents a business sector.
// The code is a slug derived from the display name and acts as the primary key.
type Industry struct {
	Code     string `gorm:"primaryKey"`
	Industry string `gorm:"not null"`
}

func (i *Industry) TableName() string {
	return "industries"
}

// CompanyIndustry links a company to an industry. The composite primary key
// makes the pair unique at the database level.
type CompanyIndustry struct {
	CompanyCode  string `gorm:"primaryKey"`
	IndustryCode string `gorm:"primaryKey"`
}

func (ci *CompanyIndustry) TableName() string {
	return "company_industry"
}
