// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ledgerkeep/backend/internal/application/usecase/backup"
	domainerror "github.com/ledgerkeep/backend/internal/domain/error"
	"github.com/ledgerkeep/backend/internal/integration/entrypoint/dto"
)

// BackupController handles export and import endpoints.
type BackupController struct {
	exportUseCase *backup.ExportDataUseCase
	importUseCase *backup.ImportDataUseCase
}

// NewBackupController creates a new backup controller instance.
func NewBackupController(
	exportUseCase *backup.ExportDataUseCase,
	importUseCase *backup.ImportDataUseCase,
) *BackupController {
	return &BackupController{
		exportUseCase: exportUseCase,
		importUseCase: importUseCase,
	}
}

// Export handles GET /backup/export requests. The response body is a full
// snapshot import accepts unchanged.
func (c *BackupController) Export(ctx *gin.Context) {
	output, err := c.exportUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to export data",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSnapshotDTO(output.Snapshot))
}

// Import handles POST /backup/import requests. The existing ledger is
// replaced wholesale by the uploaded snapshot.
func (c *BackupController) Import(ctx *gin.Context) {
	var req dto.SnapshotDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeSnapshotInvalid),
		})
		return
	}

	snapshot, err := req.ToSnapshot()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid snapshot: " + err.Error(),
			Code:  string(domainerror.ErrCodeSnapshotInvalid),
		})
		return
	}

	if err := c.importUseCase.Execute(ctx.Request.Context(), backup.ImportDataInput{Snapshot: snapshot}); err != nil {
		if errors.Is(err, domainerror.ErrSnapshotInvalid) {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: err.Error(),
				Code:  string(domainerror.ErrCodeSnapshotInvalid),
			})
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to import data",
		})
		return
	}

	ctx.Status(http.StatusNoContent)
}
