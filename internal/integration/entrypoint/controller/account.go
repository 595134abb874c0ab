// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ledgerkeep/backend/internal/application/usecase/account"
	domainerror "github.com/ledgerkeep/backend/internal/domain/error"
	"github.com/ledgerkeep/backend/internal/integration/entrypoint/dto"
)

// AccountController handles account endpoints.
type AccountController struct {
	listUseCase    *account.ListAccountsUseCase
	addUseCase     *account.AddAccountUseCase
	updateUseCase  *account.UpdateAccountUseCase
	deleteUseCase  *account.DeleteAccountUseCase
	reorderUseCase *account.ReorderAccountsUseCase
}

// NewAccountController creates a new account controller instance.
func NewAccountController(
	listUseCase *account.ListAccountsUseCase,
	addUseCase *account.AddAccountUseCase,
	updateUseCase *account.UpdateAccountUseCase,
	deleteUseCase *account.DeleteAccountUseCase,
	reorderUseCase *account.ReorderAccountsUseCase,
) *AccountController {
	return &AccountController{
		listUseCase:    listUseCase,
		addUseCase:     addUseCase,
		updateUseCase:  updateUseCase,
		deleteUseCase:  deleteUseCase,
		reorderUseCase: reorderUseCase,
	}
}

// List handles GET /accounts requests.
func (c *AccountController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleAccountError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAccountListResponse(output.Accounts))
}

// Create handles POST /accounts requests.
func (c *AccountController) Create(ctx *gin.Context) {
	var req dto.CreateAccountRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := account.AddAccountInput{
		Name:           req.Name,
		InitialBalance: req.InitialBalance,
		Currency:       req.Currency,
	}

	output, err := c.addUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleAccountError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToAccountResponse(output.Account))
}

// Update handles PATCH /accounts/:id requests.
func (c *AccountController) Update(ctx *gin.Context) {
	accountID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid account ID format",
		})
		return
	}

	var req dto.UpdateAccountRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := account.UpdateAccountInput{
		ID:       accountID,
		Name:     req.Name,
		Currency: req.Currency,
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleAccountError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAccountResponse(output.Account))
}

// Delete handles DELETE /accounts/:id requests.
func (c *AccountController) Delete(ctx *gin.Context) {
	accountID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid account ID format",
		})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), account.DeleteAccountInput{ID: accountID}); err != nil {
		c.handleAccountError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Reorder handles PUT /accounts/order requests.
func (c *AccountController) Reorder(ctx *gin.Context) {
	var req dto.ReorderAccountsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	orderedIDs := make([]uuid.UUID, len(req.OrderedIDs))
	for i, raw := range req.OrderedIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid account ID format",
				Code:  string(domainerror.ErrCodeInvalidAccountOrder),
			})
			return
		}
		orderedIDs[i] = id
	}

	if err := c.reorderUseCase.Execute(ctx.Request.Context(), account.ReorderAccountsInput{OrderedIDs: orderedIDs}); err != nil {
		c.handleAccountError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleAccountError maps account errors to HTTP responses.
func (c *AccountController) handleAccountError(ctx *gin.Context, err error) {
	var accountErr *domainerror.AccountError
	if errors.As(err, &accountErr) {
		ctx.JSON(statusCodeForAccountError(accountErr.Code), dto.ErrorResponse{
			Error: accountErr.Message,
			Code:  string(accountErr.Code),
		})
		return
	}

	if errors.Is(err, domainerror.ErrAccountNotFound) {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: err.Error(),
			Code:  string(domainerror.ErrCodeAccountNotFound),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// statusCodeForAccountError maps account error codes to HTTP status codes.
func statusCodeForAccountError(code domainerror.AccountErrorCode) int {
	switch code {
	case domainerror.ErrCodeAccountNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeAccountInUse:
		return http.StatusConflict
	case domainerror.ErrCodeInvalidAccountOrder:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
