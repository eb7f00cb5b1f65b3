package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Maca31/IFPhub/internal/scheduling"
	"github.com/Maca31/IFPhub/internal/service"
	"github.com/Maca31/IFPhub/pkg/response"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandler serves spreadsheet downloads for the secretary's office.
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler creates the ExportHandler.
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// WeeklySheet downloads the appointment grid of the week containing the
// given anchor day.
// GET /api/v1/appointments/export?week=YYYY-MM-DD
func (h *ExportHandler) WeeklySheet(c *gin.Context) {
	buf, filename, err := h.exportSvc.WeeklySheet(c.Request.Context(), c.Query("week"))
	if err != nil {
		if errors.Is(err, scheduling.ErrInvalidInput) {
			response.BadRequest(c, "invalid week")
			return
		}
		response.InternalError(c, "")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
