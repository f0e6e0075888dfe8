package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice represents an amount billed to a company.
// AddDate defaults to the creation time; PaidDate is set only while paid.
type Invoice struct {
	ID       uint            `gorm:"primaryKey"`
	CompCode string          `gorm:"column:comp_code;not null"`
	Amt      decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Paid     bool            `gorm:"not null;default:false"`
	AddDate  time.Time       `gorm:"autoCreateTime"`
	PaidDate *time.Time
	Company  Company `gorm:"foreignKey:CompCode;references:Code"`
}

func (i *Invoice) TableName() string {
	return "invoices"
}
