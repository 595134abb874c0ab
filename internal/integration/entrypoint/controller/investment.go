// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ledgerkeep/backend/internal/application/usecase/investment"
	"github.com/ledgerkeep/backend/internal/domain/entity"
	domainerror "github.com/ledgerkeep/backend/internal/domain/error"
	"github.com/ledgerkeep/backend/internal/integration/entrypoint/dto"
)

// InvestmentController handles investment endpoints.
type InvestmentController struct {
	listUseCase       *investment.ListInvestmentsUseCase
	createUseCase     *investment.CreateInvestmentUseCase
	updateUseCase     *investment.UpdateInvestmentUseCase
	actionUseCase     *investment.ProcessActionUseCase
	stockPriceUseCase *investment.UpdateStockPriceUseCase
}

// NewInvestmentController creates a new investment controller instance.
func NewInvestmentController(
	listUseCase *investment.ListInvestmentsUseCase,
	createUseCase *investment.CreateInvestmentUseCase,
	updateUseCase *investment.UpdateInvestmentUseCase,
	actionUseCase *investment.ProcessActionUseCase,
	stockPriceUseCase *investment.UpdateStockPriceUseCase,
) *InvestmentController {
	return &InvestmentController{
		listUseCase:       listUseCase,
		createUseCase:     createUseCase,
		updateUseCase:     updateUseCase,
		actionUseCase:     actionUseCase,
		stockPriceUseCase: stockPriceUseCase,
	}
}

// List handles GET /investments requests. Pass active=true to exclude
// settled records.
func (c *InvestmentController) List(ctx *gin.Context) {
	input := investment.ListInvestmentsInput{
		ActiveOnly: ctx.Query("active") == "true",
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleInvestmentError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToInvestmentListResponse(output.Investments))
}

// Create handles POST /investments requests.
func (c *InvestmentController) Create(ctx *gin.Context) {
	var req dto.CreateInvestmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	date, err := time.Parse(dto.DateLayout, req.Date)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid date format, expected YYYY-MM-DD",
		})
		return
	}

	maturity, ok := parseOptionalDate(ctx, req.MaturityDate)
	if !ok {
		return
	}

	sync, ok := c.parseSyncOptions(ctx, req.SyncToTransaction, req.AccountID)
	if !ok {
		return
	}

	input := investment.CreateInvestmentInput{
		Name:              req.Name,
		Type:              entity.InvestmentType(req.Type),
		Amount:            req.Amount,
		CostPrice:         req.CostPrice,
		CurrentPrice:      req.CurrentPrice,
		Currency:          req.Currency,
		Date:              date,
		MaturityDate:      maturity,
		InterestRate:      req.InterestRate,
		InterestFrequency: req.InterestFrequency,
		HandlingFee:       req.HandlingFee,
		Notes:             req.Notes,
		Sync:              sync,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleInvestmentError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToInvestmentResponse(output.Investment))
}

// Update handles PATCH /investments/:id requests.
func (c *InvestmentController) Update(ctx *gin.Context) {
	investmentID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid investment ID format",
		})
		return
	}

	var req dto.UpdateInvestmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := investment.UpdateInvestmentInput{
		ID:           investmentID,
		CurrentPrice: req.CurrentPrice,
		Notes:        req.Notes,
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleInvestmentError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToInvestmentResponse(output.Investment))
}

// Action handles POST /investments/:id/action requests (sell, close or
// withdraw).
func (c *InvestmentController) Action(ctx *gin.Context) {
	investmentID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid investment ID format",
		})
		return
	}

	var req dto.InvestmentActionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	date, err := time.Parse(dto.DateLayout, req.Date)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid date format, expected YYYY-MM-DD",
		})
		return
	}

	sync, ok := c.parseSyncOptions(ctx, req.SyncToTransaction, req.AccountID)
	if !ok {
		return
	}

	input := investment.ProcessActionInput{
		ID:           investmentID,
		Action:       entity.InvestmentAction(req.Action),
		Quantity:     req.Quantity,
		Amount:       req.Amount,
		ReturnAmount: req.ReturnAmount,
		Date:         date,
		Sync:         sync,
	}

	output, err := c.actionUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleInvestmentError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToInvestmentResponse(output.Investment))
}

// UpdateStockPrice handles PUT /investments/stock-price requests.
func (c *InvestmentController) UpdateStockPrice(ctx *gin.Context) {
	var req dto.UpdateStockPriceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := investment.UpdateStockPriceInput{
		Name:  req.Name,
		Price: req.Price,
	}

	output, err := c.stockPriceUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleInvestmentError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.UpdateStockPriceResponse{Updated: output.Updated})
}

func (c *InvestmentController) parseSyncOptions(ctx *gin.Context, syncToTransaction bool, rawAccountID *string) (investment.SyncOptions, bool) {
	sync := investment.SyncOptions{SyncToTransaction: syncToTransaction}
	if rawAccountID == nil {
		return sync, true
	}
	accountID, err := uuid.Parse(*rawAccountID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid account ID format",
		})
		return sync, false
	}
	sync.AccountID = &accountID
	return sync, true
}

// handleInvestmentError maps investment errors to HTTP responses.
func (c *InvestmentController) handleInvestmentError(ctx *gin.Context, err error) {
	var investmentErr *domainerror.InvestmentError
	if errors.As(err, &investmentErr) {
		ctx.JSON(statusCodeForInvestmentError(investmentErr.Code), dto.ErrorResponse{
			Error: investmentErr.Message,
			Code:  string(investmentErr.Code),
		})
		return
	}

	switch {
	case errors.Is(err, domainerror.ErrInvestmentNotFound):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: err.Error(),
			Code:  string(domainerror.ErrCodeInvestmentNotFound),
		})
	case errors.Is(err, domainerror.ErrInvestmentSettled):
		ctx.JSON(http.StatusConflict, dto.ErrorResponse{
			Error: err.Error(),
			Code:  string(domainerror.ErrCodeInvestmentSettled),
		})
	case errors.Is(err, domainerror.ErrAccountNotFound):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: err.Error(),
			Code:  string(domainerror.ErrCodeTxnAccountNotFound),
		})
	default:
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
	}
}

// statusCodeForInvestmentError maps investment error codes to HTTP status
// codes.
func statusCodeForInvestmentError(code domainerror.InvestmentErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvestmentNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvestmentSettled:
		return http.StatusConflict
	case domainerror.ErrCodeInvalidInvestmentType,
		domainerror.ErrCodeInvalidInvestmentAction,
		domainerror.ErrCodeInvInvalidAmount:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
