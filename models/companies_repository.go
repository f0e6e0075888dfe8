package models

import (
	"gorm.io/gorm"
)

// CompaniesRepository reads company rows. Companies are provisioned
// externally, so there are no write methods here.
type CompaniesRepository struct {
	db *gorm.DB
}

func NewCompaniesRepository(db *gorm.DB) *CompaniesRepository {
	return &CompaniesRepository{
		db: db,
	}
}

// Exists reports whether a company with the given code is present.
func (r *CompaniesRepository) Exists(code string) (bool, error) {
	var count int64
	if err := r.db.Model(&Company{}).Where("code = ?", code).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
