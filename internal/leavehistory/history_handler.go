package leavehistory

import (
	"bytes"
	"net/http"

	"go-cuti/internal/shared/apperror"
	"go-cuti/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("leavehistory.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leavehistory.handler")
	}
	return &Handler{service: service, logger: l}
}

// errorWriter writes an error response in the format of the route.
type errorWriter func(c *gin.Context, status int, code, message string, details any)

func (h *Handler) writeServiceError(c *gin.Context, err error, write errorWriter) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("leave history request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	write(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// writePageError renders errors of the browser route as HTML.
func (h *Handler) writePageError(c *gin.Context, status int, code, message string, _ any) {
	var buf bytes.Buffer
	if err := RenderError(&buf, ErrorPage{Status: status, Code: code, Message: message}); err != nil {
		h.logger.Error("render error page failed", zap.Error(err))
		c.Data(status, "text/plain; charset=utf-8", []byte(message))
		return
	}
	response.HTML(c, status, buf.Bytes())
}

// RejectPage renders an identity failure of the browser route as HTML and
// stops the chain.
func (h *Handler) RejectPage(c *gin.Context, err *apperror.AppError) {
	h.writePageError(c, err.HTTPStatus, err.Code, err.Message, nil)
	c.Abort()
}

// loadView binds the filter, runs the service and writes any error with
// write. It returns false when a response has already been written.
func (h *Handler) loadView(c *gin.Context, write errorWriter) (HistoryView, bool) {
	var req HistoryQueryRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.logger.Warn("http leave history validation failed", zap.Error(err))
		write(c, http.StatusBadRequest, apperror.CodeValidationError, "Input tidak valid",
			apperror.MapValidationError(err).Message)
		return HistoryView{}, false
	}

	filter, err := ParseFilter(req.EmployeeID, req.Status)
	if err != nil {
		h.writeServiceError(c, err, write)
		return HistoryView{}, false
	}

	view, err := h.service.GetHistory(c.Request.Context(), Query{
		CompanyID:       c.GetString("company_id"),
		ActorEmployeeID: c.GetString("employee_id"),
		Filter:          filter,
	})
	if err != nil {
		h.writeServiceError(c, err, write)
		return HistoryView{}, false
	}
	return view, true
}

// Page renders the history as HTML.
func (h *Handler) Page(c *gin.Context) {
	view, ok := h.loadView(c, h.writePageError)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := Render(&buf, view); err != nil {
		h.writeServiceError(c, err, h.writePageError)
		return
	}
	response.HTML(c, http.StatusOK, buf.Bytes())
}

// GetHistory returns the derived view as JSON.
func (h *Handler) GetHistory(c *gin.Context) {
	view, ok := h.loadView(c, response.Error)
	if !ok {
		return
	}
	response.Success(c, http.StatusOK, view, &response.Meta{Total: len(view.Rows)})
}

// Export downloads the derived view as an xlsx workbook.
func (h *Handler) Export(c *gin.Context) {
	view, ok := h.loadView(c, response.Error)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := ExportXLSX(&buf, view); err != nil {
		h.writeServiceError(c, err, response.Error)
		return
	}
	response.Attachment(c, ExportFilename, ExportContentType, buf.Bytes())
}
