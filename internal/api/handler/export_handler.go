package handler

import (
	"bytes"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/JamesR367/DigiDar/internal/service"
	"github.com/JamesR367/DigiDar/pkg/response"
)

const (
	contentTypeICS  = "text/calendar; charset=utf-8"
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// ExportHandler 导出模块 HTTP 处理器
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler 创建 ExportHandler
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// ExportICS 导出全部日程为 iCalendar
// GET /export/events.ics
func (h *ExportHandler) ExportICS(c *gin.Context) {
	buf, filename, err := h.exportSvc.ExportICS(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	sendFile(c, buf, filename, contentTypeICS)
}

// ExportXLSX 导出全部日程为 Excel
// GET /export/events.xlsx
func (h *ExportHandler) ExportXLSX(c *gin.Context) {
	buf, filename, err := h.exportSvc.ExportXLSX(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	sendFile(c, buf, filename, contentTypeXLSX)
}

func sendFile(c *gin.Context, buf *bytes.Buffer, filename, contentType string) {
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+url.QueryEscape(filename))
	c.Data(http.StatusOK, contentType, buf.Bytes())
}
