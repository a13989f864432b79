package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Excel の MIME タイプ
const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportShiftsXLSX GET /api/v1/export/shifts.xlsx — 全シフトの Excel 帳票
func (h *Handler) ExportShiftsXLSX(c *gin.Context) {
	identity, ok := mustGetIdentity(c)
	if !ok {
		return
	}

	data, filename, err := h.svc.Export.ExportShiftsXLSX(c.Request.Context(), identity)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, xlsxContentType, data)
}

// ExportShiftsICS GET /api/v1/shifts/calendar.ics — 自分のシフトの iCalendar
func (h *Handler) ExportShiftsICS(c *gin.Context) {
	identity, ok := mustGetIdentity(c)
	if !ok {
		return
	}

	cal, err := h.svc.Export.ExportOwnShiftsICS(c.Request.Context(), identity)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="shifts.ics"`)
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(cal))
}
