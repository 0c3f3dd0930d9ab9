package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pyme-finance/backend/internal/application/adapter"
	"github.com/pyme-finance/backend/internal/application/usecase/supplier"
	domainerror "github.com/pyme-finance/backend/internal/domain/error"
	"github.com/pyme-finance/backend/internal/integration/entrypoint/dto"
	"github.com/pyme-finance/backend/internal/integration/entrypoint/middleware"
)

// SupplierController handles supplier endpoints.
type SupplierController struct {
	createUseCase *supplier.CreateSupplierUseCase
	listUseCase   *supplier.ListSuppliersUseCase
	updateUseCase *supplier.UpdateSupplierUseCase
	deleteUseCase *supplier.DeleteSupplierUseCase
}

// NewSupplierController creates a new supplier controller instance.
func NewSupplierController(
	createUseCase *supplier.CreateSupplierUseCase,
	listUseCase *supplier.ListSuppliersUseCase,
	updateUseCase *supplier.UpdateSupplierUseCase,
	deleteUseCase *supplier.DeleteSupplierUseCase,
) *SupplierController {
	return &SupplierController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// Create handles POST /suppliers requests.
func (c *SupplierController) Create(ctx *gin.Context) {
	companyID, ok := middleware.GetCompanyIDFromContext(ctx)
	if !ok {
		respondMissingCompany(ctx)
		return
	}

	var req dto.CreateSupplierRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeInvalidRequest),
		})
		return
	}

	input := supplier.CreateSupplierInput{
		CompanyID:   companyID,
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Address:     req.Address,
		RUT:         req.RUT,
		ContactName: req.ContactName,
		Notes:       req.Notes,
	}

	created, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleSupplierError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToSupplierResponse(created))
}

// List handles GET /suppliers requests.
func (c *SupplierController) List(ctx *gin.Context) {
	companyID, ok := middleware.GetCompanyIDFromContext(ctx)
	if !ok {
		respondMissingCompany(ctx)
		return
	}

	input := supplier.ListSuppliersInput{
		CompanyID: companyID,
		Search:    ctx.Query("search"),
	}
	if limitStr := ctx.Query("limit"); limitStr != "" {
		if limit, err := strconv.Atoi(limitStr); err == nil {
			input.Limit = limit
		}
	}
	if offsetStr := ctx.Query("offset"); offsetStr != "" {
		if offset, err := strconv.Atoi(offsetStr); err == nil {
			input.Offset = offset
		}
	}

	suppliers, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		respondInternalError(ctx)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSupplierListResponse(suppliers))
}

// Update handles PATCH /suppliers/:id requests.
func (c *SupplierController) Update(ctx *gin.Context) {
	companyID, ok := middleware.GetCompanyIDFromContext(ctx)
	if !ok {
		respondMissingCompany(ctx)
		return
	}

	supplierID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid supplier ID format",
			Code:  string(domainerror.ErrCodeInvalidRequest),
		})
		return
	}

	var req dto.UpdateSupplierRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeInvalidRequest),
		})
		return
	}

	input := supplier.UpdateSupplierInput{
		CompanyID:  companyID,
		SupplierID: supplierID,
		Update: adapter.SupplierUpdate{
			Name:        req.Name,
			Email:       req.Email,
			Phone:       req.Phone,
			Address:     req.Address,
			RUT:         req.RUT,
			ContactName: req.ContactName,
			Notes:       req.Notes,
		},
	}

	updated, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleSupplierError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSupplierResponse(updated))
}

// Delete handles DELETE /suppliers/:id requests.
func (c *SupplierController) Delete(ctx *gin.Context) {
	companyID, ok := middleware.GetCompanyIDFromContext(ctx)
	if !ok {
		respondMissingCompany(ctx)
		return
	}

	supplierID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid supplier ID format",
			Code:  string(domainerror.ErrCodeInvalidRequest),
		})
		return
	}

	input := supplier.DeleteSupplierInput{
		CompanyID:  companyID,
		SupplierID: supplierID,
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), input); err != nil {
		handleSupplierError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleSupplierError maps supplier errors to HTTP responses.
func handleSupplierError(ctx *gin.Context, err error) {
	var supErr *domainerror.SupplierError
	if errors.As(err, &supErr) {
		status := http.StatusBadRequest
		if supErr.Code == domainerror.ErrCodeSupplierNotFound {
			status = http.StatusNotFound
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: supErr.Message,
			Code:  string(supErr.Code),
		})
		return
	}

	respondInternalError(ctx)
}
