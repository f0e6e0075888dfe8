package industries

import (
	"encoding/json"
	"errors"
	"net/http"

	"gorm.io/gorm"

	"github.com/ledgerkit/biztime/app/api"
	"github.com/ledgerkit/biztime/models"
)

type IndustryResponse struct {
	Code     string `json:"code"`
	Industry string `json:"industry"`
}

// IndustryGroup is one entry of the grouped listing.
type IndustryGroup struct {
	Industry  string   `json:"industry"`
	Companies []string `json:"companies"`
}

type IndustryStore interface {
	GetByCode(code string) (*models.Industry, error)
	CreateIndustry(industry *models.Industry) error
	AssociationExists(companyCode, industryCode string) (bool, error)
	Associate(companyCode, industryCode string) error
	ListWithCompanies() ([]models.IndustryCompanyRow, error)
}

type CompanyProvider interface {
	Exists(code string) (bool, error)
}

type IndustriesHandler struct {
	repo      IndustryStore
	companies CompanyProvider
}

func NewIndustriesHandler(r IndustryStore, c CompanyProvider) *IndustriesHandler {
	return &IndustriesHandler{
		repo:      r,
		companies: c,
	}
}

func (h *IndustriesHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Industry string `json:"industry"`
	}

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		api.Fail(w, api.NewError(http.StatusBadRequest, "Invalid JSON body"))
		return
	}

	code := Slugify(input.Industry)
	if code == "" {
		api.Fail(w, api.NewError(http.StatusBadRequest, "Missing industry name"))
		return
	}

	if _, err := h.repo.GetByCode(code); err == nil {
		api.Fail(w, api.NewError(http.StatusConflict, "Industry already exists"))
		return
	} else if !errors.Is(err, models.ErrIndustryNotFound) {
		api.Fail(w, err)
		return
	}

	industry := &models.Industry{
		Code:     code,
		Industry: input.Industry,
	}

	if err := h.repo.CreateIndustry(industry); err != nil {
		// a concurrent create can win the race after the check; the unique
		// constraint is the final authority
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			api.Fail(w, api.NewError(http.StatusConflict, "Industry already exists"))
			return
		}
		api.Fail(w, err)
		return
	}

	api.JSON(w, http.StatusCreated, struct {
		Industry IndustryResponse `json:"industry"`
	}{
		Industry: IndustryResponse{
			Code:     industry.Code,
			Industry: industry.Industry,
		},
	})
}

func (h *IndustriesHandler) HandleAssociate(w http.ResponseWriter, r *http.Request) {
	var input struct {
		CompanyCode  string `json:"companyCode"`
		IndustryCode string `json:"industryCode"`
	}

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		api.Fail(w, api.NewError(http.StatusBadRequest, "Invalid JSON body"))
		return
	}

	if input.CompanyCode == "" || input.IndustryCode == "" {
		api.Fail(w, api.NewError(http.StatusBadRequest, "Missing companyCode or industryCode"))
		return
	}

	exists, err := h.companies.Exists(input.CompanyCode)
	if err != nil {
		api.Fail(w, err)
		return
	}
	if !exists {
		api.Fail(w, api.Errorf(http.StatusNotFound, "Company with code %s not found", input.CompanyCode))
		return
	}

	if _, err := h.repo.GetByCode(input.IndustryCode); err != nil {
		if errors.Is(err, models.ErrIndustryNotFound) {
			api.Fail(w, api.Errorf(http.StatusNotFound, "Industry with code %s not found", input.IndustryCode))
			return
		}
		api.Fail(w, err)
		return
	}

	associated, err := h.repo.AssociationExists(input.CompanyCode, input.IndustryCode)
	if err != nil {
		api.Fail(w, err)
		return
	}
	if associated {
		api.Fail(w, api.Errorf(http.StatusConflict,
			"Company %s is already associated with industry %s", input.CompanyCode, input.IndustryCode))
		return
	}

	if err := h.repo.Associate(input.CompanyCode, input.IndustryCode); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			api.Fail(w, api.Errorf(http.StatusConflict,
				"Company %s is already associated with industry %s", input.CompanyCode, input.IndustryCode))
			return
		}
		api.Fail(w, err)
		return
	}

	api.JSON(w, http.StatusCreated, map[string]string{
		"message": "Company successfully associated with industry",
	})
}

func (h *IndustriesHandler) HandleGetAll(w http.ResponseWriter, r *http.Request) {
	rows, err := h.repo.ListWithCompanies()
	if err != nil {
		api.Fail(w, err)
		return
	}

	api.JSON(w, http.StatusOK, struct {
		Industries map[string]*IndustryGroup `json:"industries"`
	}{
		Industries: groupByIndustry(rows),
	})
}

// groupByIndustry folds the flat join rows into one entry per industry code.
// A null company code marks an industry with no associations and contributes
// nothing to its companies list.
func groupByIndustry(rows []models.IndustryCompanyRow) map[string]*IndustryGroup {
	industries := make(map[string]*IndustryGroup)
	for _, row := range rows {
		group, ok := industries[row.IndustryCode]
		if !ok {
			group = &IndustryGroup{
				Industry:  row.Industry,
				Companies: []string{},
			}
			industries[row.IndustryCode] = group
		}
		if row.CompanyCode != nil {
			group.Companies = append(group.Companies, *row.CompanyCode)
		}
	}
	return industries
}
