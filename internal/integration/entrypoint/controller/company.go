package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pyme-finance/backend/internal/application/usecase/company"
	domainerror "github.com/pyme-finance/backend/internal/domain/error"
	"github.com/pyme-finance/backend/internal/domain/money"
	"github.com/pyme-finance/backend/internal/integration/entrypoint/dto"
)

// CompanyController handles company endpoints. Company routes sit outside
// the company scope middleware because they manage the tenants themselves.
type CompanyController struct {
	createUseCase *company.CreateCompanyUseCase
	updateUseCase *company.UpdateCompanyUseCase
	listUseCase   *company.GetCompaniesUseCase
	getUseCase    *company.GetCompanyUseCase
	deleteUseCase *company.DeleteCompanyUseCase
}

// NewCompanyController creates a new company controller instance.
func NewCompanyController(
	createUseCase *company.CreateCompanyUseCase,
	updateUseCase *company.UpdateCompanyUseCase,
	listUseCase *company.GetCompaniesUseCase,
	getUseCase *company.GetCompanyUseCase,
	deleteUseCase *company.DeleteCompanyUseCase,
) *CompanyController {
	return &CompanyController{
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		listUseCase:   listUseCase,
		getUseCase:    getUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// Create handles POST /companies requests.
func (c *CompanyController) Create(ctx *gin.Context) {
	var req dto.CreateCompanyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeInvalidRequest),
		})
		return
	}

	input := company.CreateCompanyInput{
		Name:               req.Name,
		Logo:               req.Logo,
		Currency:           money.Code(req.Currency),
		Timezone:           req.Timezone,
		ReminderRecipients: req.ReminderRecipients,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleCompanyError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToCompanyResponse(output.Company))
}

// List handles GET /companies requests.
func (c *CompanyController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		respondInternalError(ctx)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCompanyListResponse(output.Companies))
}

// Get handles GET /companies/:id requests.
func (c *CompanyController) Get(ctx *gin.Context) {
	companyID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid company ID format",
			Code:  string(domainerror.ErrCodeInvalidRequest),
		})
		return
	}

	cmp, err := c.getUseCase.Execute(ctx.Request.Context(), companyID)
	if err != nil {
		handleCompanyError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCompanyResponse(cmp))
}

// Update handles PATCH /companies/:id requests.
func (c *CompanyController) Update(ctx *gin.Context) {
	companyID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid company ID format",
			Code:  string(domainerror.ErrCodeInvalidRequest),
		})
		return
	}

	var req dto.UpdateCompanyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeInvalidRequest),
		})
		return
	}

	input := company.UpdateCompanyInput{
		CompanyID:          companyID,
		Name:               req.Name,
		Logo:               req.Logo,
		Timezone:           req.Timezone,
		ReminderRecipients: req.ReminderRecipients,
	}
	if req.Currency != nil {
		currency := money.Code(*req.Currency)
		input.Currency = &currency
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleCompanyError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCompanyResponse(output.Company))
}

// Delete handles DELETE /companies/:id requests.
func (c *CompanyController) Delete(ctx *gin.Context) {
	companyID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid company ID format",
			Code:  string(domainerror.ErrCodeInvalidRequest),
		})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), company.DeleteCompanyInput{CompanyID: companyID}); err != nil {
		handleCompanyError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
