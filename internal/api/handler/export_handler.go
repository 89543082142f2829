package handler

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"schedule-snap/backend/internal/service"
	"schedule-snap/backend/pkg/response"
)

const (
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	contentTypeICS  = "text/calendar; charset=utf-8"
)

// ExportHandler 导出模块 HTTP 处理器
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler 创建 ExportHandler
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// WeekXLSX 导出一周课表为 Excel
// GET /api/v1/export/week.xlsx
func (h *ExportHandler) WeekXLSX(c *gin.Context) {
	buf, filename, err := h.exportSvc.ExportXLSX(c.Request.Context())
	if err != nil {
		h.handleExportError(c, err)
		return
	}
	writeAttachment(c, filename, contentTypeXLSX, buf.Bytes())
}

// WeekICS 导出一周课表为 iCalendar
// GET /api/v1/export/week.ics
func (h *ExportHandler) WeekICS(c *gin.Context) {
	data, filename, err := h.exportSvc.ExportICS(c.Request.Context())
	if err != nil {
		h.handleExportError(c, err)
		return
	}
	writeAttachment(c, filename, contentTypeICS, data)
}

// writeAttachment 设置下载响应头并写入文件内容
func writeAttachment(c *gin.Context, filename, contentType string, data []byte) {
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+url.QueryEscape(filename))
	c.Data(http.StatusOK, contentType, data)
}

func (h *ExportHandler) handleExportError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrExportGenerateFail):
		response.Error(c, http.StatusInternalServerError, 21001, "生成导出文件失败")
	default:
		response.InternalError(c)
	}
}
