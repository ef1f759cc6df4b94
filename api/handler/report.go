package handler

import (
	"net/http"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/fastygo/tasklist/internal/report"
	"github.com/fastygo/tasklist/pkg/httpcontext"
	taskUC "github.com/fastygo/tasklist/usecase/task"
)

type ReportHandler struct {
	baseHandler
	uc *taskUC.UseCase
}

func NewReportHandler(uc *taskUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *ReportHandler {
	return &ReportHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary Export all tasks as PDF
// @Tags reports
// @Produce application/pdf
// @Router /api/reports/tasks.pdf [get]
func (h *ReportHandler) TasksPDF(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	tasks, err := h.uc.ListTasks(stdCtx)
	if err != nil {
		h.respondError(ctx, stdCtx, err)
		return
	}

	data, err := report.BuildTasksPDF(tasks, time.Now())
	if err != nil {
		h.respondError(ctx, stdCtx, err)
		return
	}

	ctx.Response.Header.SetContentType("application/pdf")
	ctx.Response.Header.Set(fasthttp.HeaderContentDisposition, "attachment; filename=tasks.pdf")
	ctx.SetStatusCode(http.StatusOK)
	ctx.SetBody(data)
}
