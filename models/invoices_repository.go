package models

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ErrInvoiceNotFound is returned when an invoice is not found.
var ErrInvoiceNotFound = errors.New("invoice not found")

type InvoicesRepository struct {
	db *gorm.DB
}

func NewInvoicesRepository(db *gorm.DB) *InvoicesRepository {
	return &InvoicesRepository{
		db: db,
	}
}

// GetAll returns id and comp_code for every invoice, ordered by id.
func (r *InvoicesRepository) GetAll() ([]Invoice, error) {
	var invoices []Invoice
	if err := r.db.
		Select("id, comp_code").
		Order("id").
		Find(&invoices).Error; err != nil {
		return nil, err
	}
	return invoices, nil
}

// GetByID loads an invoice together with its company. The inner join means an
// invoice whose company row is missing reads as not found rather than as a
// partial record.
func (r *InvoicesRepository) GetByID(id uint) (*Invoice, error) {
	var invoice Invoice
	if err := r.db.
		InnerJoins("Company").
		First(&invoice, "invoices.id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvoiceNotFound
		}
		return nil, err
	}
	return &invoice, nil
}

func (r *InvoicesRepository) Create(invoice *Invoice) error {
	return r.db.Create(invoice).Error
}

// Update sets amt and paid on the invoice with the given id and maintains
// paid_date from the previous row state: becoming paid stamps the current
// time, becoming unpaid clears it, and staying paid keeps the original date.
// The read and write run in one transaction so concurrent edits to the same
// invoice cannot interleave between them.
func (r *InvoicesRepository) Update(id uint, amt decimal.Decimal, paid bool) (*Invoice, error) {
	var invoice Invoice
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&invoice, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrInvoiceNotFound
			}
			return err
		}

		switch {
		case paid && !invoice.Paid:
			now := time.Now()
			invoice.PaidDate = &now
		case !paid:
			invoice.PaidDate = nil
		}
		invoice.Amt = amt
		invoice.Paid = paid

		return tx.Save(&invoice).Error
	})
	if err != nil {
		return nil, err
	}
	return &invoice, nil
}
