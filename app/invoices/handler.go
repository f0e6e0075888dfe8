package invoices

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ledgerkit/biztime/app/api"
	"github.com/ledgerkit/biztime/models"
)

type CompanyResponse struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// InvoiceSummary is the listing shape: identifiers only.
type InvoiceSummary struct {
	ID       uint   `json:"id"`
	CompCode string `json:"comp_code"`
}

type InvoiceResponse struct {
	ID       uint       `json:"id"`
	CompCode string     `json:"comp_code"`
	Amt      float64    `json:"amt"`
	Paid     bool       `json:"paid"`
	AddDate  time.Time  `json:"add_date"`
	PaidDate *time.Time `json:"paid_date"`
}

type InvoiceStore interface {
	GetAll() ([]models.Invoice, error)
	GetByID(id uint) (*models.Invoice, error)
	Create(invoice *models.Invoice) error
	Update(id uint, amt decimal.Decimal, paid bool) (*models.Invoice, error)
}

type CompanyProvider interface {
	Exists(code string) (bool, error)
}

type InvoicesHandler struct {
	repo      InvoiceStore
	companies CompanyProvider
}

func NewInvoicesHandler(r InvoiceStore, c CompanyProvider) *InvoicesHandler {
	return &InvoicesHandler{
		repo:      r,
		companies: c,
	}
}

func (h *InvoicesHandler) HandleGetAll(w http.ResponseWriter, r *http.Request) {
	result, err := h.repo.GetAll()
	if err != nil {
		api.Fail(w, err)
		return
	}

	invoices := make([]InvoiceSummary, len(result))
	for i, inv := range result {
		invoices[i] = InvoiceSummary{
			ID:       inv.ID,
			CompCode: inv.CompCode,
		}
	}

	api.JSON(w, http.StatusOK, struct {
		Invoices []InvoiceSummary `json:"invoices"`
	}{
		Invoices: invoices,
	})
}

func (h *InvoicesHandler) HandleGetByID(w http.ResponseWriter, r *http.Request) {
	rawID := r.PathValue("id")

	id, err := strconv.ParseUint(rawID, 10, 64)
	if err != nil {
		api.Fail(w, api.Errorf(http.StatusNotFound, "No such invoice: %s", rawID))
		return
	}

	invoice, err := h.repo.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, models.ErrInvoiceNotFound) {
			api.Fail(w, api.Errorf(http.StatusNotFound, "No such invoice: %s", rawID))
			return
		}
		api.Fail(w, err)
		return
	}

	api.JSON(w, http.StatusOK, struct {
		Invoice invoiceDetail `json:"invoice"`
	}{
		Invoice: toDetail(invoice),
	})
}

func (h *InvoicesHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var input struct {
		CompCode string          `json:"comp_code"`
		Amt      decimal.Decimal `json:"amt"`
	}

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		api.Fail(w, api.NewError(http.StatusBadRequest, "Invalid JSON body"))
		return
	}

	if input.CompCode == "" {
		api.Fail(w, api.NewError(http.StatusBadRequest, "Missing comp_code"))
		return
	}

	exists, err := h.companies.Exists(input.CompCode)
	if err != nil {
		api.Fail(w, err)
		return
	}
	if !exists {
		api.Fail(w, api.Errorf(http.StatusNotFound, "Company with code %s not found", input.CompCode))
		return
	}

	invoice := &models.Invoice{
		CompCode: input.CompCode,
		Amt:      input.Amt,
	}

	if err := h.repo.Create(invoice); err != nil {
		api.Fail(w, err)
		return
	}

	api.JSON(w, http.StatusOK, struct {
		Invoice InvoiceResponse `json:"invoice"`
	}{
		Invoice: toResponse(invoice),
	})
}

func (h *InvoicesHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	rawID := r.PathValue("id")

	id, err := strconv.ParseUint(rawID, 10, 64)
	if err != nil {
		api.Fail(w, api.Errorf(http.StatusNotFound, "No such invoice: %s", rawID))
		return
	}

	var input struct {
		Amt  decimal.Decimal `json:"amt"`
		Paid bool            `json:"paid"`
	}

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		api.Fail(w, api.NewError(http.StatusBadRequest, "Invalid JSON body"))
		return
	}

	invoice, err := h.repo.Update(uint(id), input.Amt, input.Paid)
	if err != nil {
		if errors.Is(err, models.ErrInvoiceNotFound) {
			api.Fail(w, api.Errorf(http.StatusNotFound, "No such invoice: %s", rawID))
			return
		}
		api.Fail(w, err)
		return
	}

	api.JSON(w, http.StatusOK, struct {
		Invoice InvoiceResponse `json:"invoice"`
	}{
		Invoice: toResponse(invoice),
	})
}

// invoiceDetail nests the joined company under the invoice.
type invoiceDetail struct {
	ID       uint            `json:"id"`
	Amt      float64         `json:"amt"`
	Paid     bool            `json:"paid"`
	AddDate  time.Time       `json:"add_date"`
	PaidDate *time.Time      `json:"paid_date"`
	Company  CompanyResponse `json:"company"`
}

func toDetail(invoice *models.Invoice) invoiceDetail {
	return invoiceDetail{
		ID:       invoice.ID,
		Amt:      invoice.Amt.InexactFloat64(),
		Paid:     invoice.Paid,
		AddDate:  invoice.AddDate,
		PaidDate: invoice.PaidDate,
		Company: CompanyResponse{
			Code:        invoice.Company.Code,
			Name:        invoice.Company.Name,
			Description: invoice.Company.Description,
		},
	}
}

func toResponse(invoice *models.Invoice) InvoiceResponse {
	return InvoiceResponse{
		ID:       invoice.ID,
		CompCode: invoice.CompCode,
		Amt:      invoice.Amt.InexactFloat64(),
		Paid:     invoice.Paid,
		AddDate:  invoice.AddDate,
		PaidDate: invoice.PaidDate,
	}
}
