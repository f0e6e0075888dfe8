package models

import (
	"errors"

	"gorm.io/gorm"
)

// ErrIndustryNotFound is returned when an industry is not found.
var ErrIndustryNotFound = errors.New("industry not found")

// IndustryCompanyRow is one row of the industry listing join. CompanyCode is
// nil for industries with no associated company.
type IndustryCompanyRow struct {
	IndustryCode string
	Industry     string
	CompanyCode  *string
}

type IndustriesRepository struct {
	db *gorm.DB
}

func NewIndustriesRepository(db *gorm.DB) *IndustriesRepository {
	return &IndustriesRepository{
		db: db,
	}
}

func (r *IndustriesRepository) GetByCode(code string) (*Industry, error) {
	var industry Industry
	if err := r.db.Where("code = ?", code).First(&industry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrIndustryNotFound
		}
		return nil, err
	}
	return &industry, nil
}

func (r *IndustriesRepository) CreateIndustry(industry *Industry) error {
	return r.db.Create(industry).Error
}

// AssociationExists reports whether the company is already linked to the industry.
func (r *IndustriesRepository) AssociationExists(companyCode, industryCode string) (bool, error) {
	var count int64
	if err := r.db.Model(&CompanyIndustry{}).
		Where("company_code = ? AND industry_code = ?", companyCode, industryCode).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *IndustriesRepository) Associate(companyCode, industryCode string) error {
	return r.db.Create(&CompanyIndustry{
		CompanyCode:  companyCode,
		IndustryCode: industryCode,
	}).Error
}

// ListWithCompanies returns every industry left-joined to its company codes,
// ordered by industry code then company code so the listing is deterministic.
func (r *IndustriesRepository) ListWithCompanies() ([]IndustryCompanyRow, error) {
	var rows []IndustryCompanyRow
	if err := r.db.Table("industries").
		Select("industries.code AS industry_code, industries.industry, company_industry.company_code").
		Joins("LEFT JOIN company_industry ON company_industry.industry_code = industries.code").
		Order("industries.code, company_industry.company_code").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
