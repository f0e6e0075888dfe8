package models_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/ledgerkit/biztime/models"
)

func TestInvoicesRepositoryCreateAndGetByID(t *testing.T) {
	db := setupDB(t)
	repo := models.NewInvoicesRepository(db)

	assert.NoError(t, db.Create(&models.Company{Code: "apple", Name: "Apple", Description: "Maker of OSX."}).Error)

	invoice := &models.Invoice{CompCode: "apple", Amt: decimal.NewFromFloat(100.50)}
	assert.NoError(t, repo.Create(invoice))
	assert.NotZero(t, invoice.ID)

	got, err := repo.GetByID(invoice.ID)
	assert.NoError(t, err)
	assert.Equal(t, "apple", got.CompCode)
	assert.True(t, got.Amt.Equal(decimal.NewFromFloat(100.50)))
	assert.False(t, got.Paid)
	assert.Nil(t, got.PaidDate)
	assert.False(t, got.AddDate.IsZero())
	assert.Equal(t, "Apple", got.Company.Name)
	assert.Equal(t, "Maker of OSX.", got.Company.Description)

	_, err = repo.GetByID(9999)
	assert.ErrorIs(t, err, models.ErrInvoiceNotFound)
}

func TestInvoicesRepositoryGetAll(t *testing.T) {
	db := setupDB(t)
	repo := models.NewInvoicesRepository(db)

	assert.NoError(t, db.Create(&models.Company{Code: "apple", Name: "Apple"}).Error)
	assert.NoError(t, repo.Create(&models.Invoice{CompCode: "apple", Amt: decimal.NewFromInt(100)}))
	assert.NoError(t, repo.Create(&models.Invoice{CompCode: "apple", Amt: decimal.NewFromInt(200)}))

	invoices, err := repo.GetAll()
	assert.NoError(t, err)
	assert.Len(t, invoices, 2)
	assert.Less(t, invoices[0].ID, invoices[1].ID)
	assert.Equal(t, "apple", invoices[0].CompCode)
}

func TestInvoicesRepositoryUpdatePaidDate(t *testing.T) {
	db := setupDB(t)
	repo := models.NewInvoicesRepository(db)

	assert.NoError(t, db.Create(&models.Company{Code: "apple", Name: "Apple"}).Error)

	invoice := &models.Invoice{CompCode: "apple", Amt: decimal.NewFromInt(100)}
	assert.NoError(t, repo.Create(invoice))

	// paying stamps paid_date
	updated, err := repo.Update(invoice.ID, decimal.NewFromInt(100), true)
	assert.NoError(t, err)
	assert.True(t, updated.Paid)
	assert.NotNil(t, updated.PaidDate)
	firstPaidDate := *updated.PaidDate

	// an amount-only edit while paid keeps the original paid_date
	updated, err = repo.Update(invoice.ID, decimal.NewFromInt(150), true)
	assert.NoError(t, err)
	assert.True(t, updated.Amt.Equal(decimal.NewFromInt(150)))
	assert.NotNil(t, updated.PaidDate)
	assert.WithinDuration(t, firstPaidDate, *updated.PaidDate, time.Second)

	// unpaying clears it
	updated, err = repo.Update(invoice.ID, decimal.NewFromInt(150), false)
	assert.NoError(t, err)
	assert.False(t, updated.Paid)
	assert.Nil(t, updated.PaidDate)

	// the cleared date survives a fresh read
	got, err := repo.GetByID(invoice.ID)
	assert.NoError(t, err)
	assert.Nil(t, got.PaidDate)
}

func TestInvoicesRepositoryUpdateNotFound(t *testing.T) {
	db := setupDB(t)
	repo := models.NewInvoicesRepository(db)

	_, err := repo.Update(9999, decimal.NewFromInt(10), true)
	assert.ErrorIs(t, err, models.ErrInvoiceNotFound)
}
