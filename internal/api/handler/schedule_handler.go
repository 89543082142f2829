package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"schedule-snap/backend/internal/dto"
	"schedule-snap/backend/internal/schedule"
	"schedule-snap/backend/internal/service"
	"schedule-snap/backend/pkg/response"
)

// ScheduleHandler 课表模块 HTTP 处理器
type ScheduleHandler struct {
	scheduleSvc service.ScheduleService
}

// NewScheduleHandler 创建 ScheduleHandler
func NewScheduleHandler(scheduleSvc service.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{scheduleSvc: scheduleSvc}
}

// Days 课表包含的工作日
// GET /api/v1/schedule/days
func (h *ScheduleHandler) Days(c *gin.Context) {
	response.OK(c, gin.H{"days": h.scheduleSvc.Days(c.Request.Context())})
}

// Week 一周课表
// GET /api/v1/schedule/week
func (h *ScheduleHandler) Week(c *gin.Context) {
	result, err := h.scheduleSvc.GetWeek(c.Request.Context())
	if err != nil {
		h.handleScheduleError(c, err)
		return
	}
	response.OK(c, result)
}

// Day 某天完整课表
// GET /api/v1/schedule/day?day=Monday&at=08:40
func (h *ScheduleHandler) Day(c *gin.Context) {
	var q dto.ScheduleQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.scheduleSvc.GetDay(c.Request.Context(), &q)
	if err != nil {
		h.handleScheduleError(c, err)
		return
	}
	response.OK(c, result)
}

// Now 当前课与下一节课
// GET /api/v1/schedule/now?day=Monday&at=08:40
func (h *ScheduleHandler) Now(c *gin.Context) {
	var q dto.ScheduleQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.scheduleSvc.GetNow(c.Request.Context(), &q)
	if err != nil {
		h.handleScheduleError(c, err)
		return
	}
	response.OK(c, result)
}

// Live 实时推送当前课与下一节课（Server-Sent Events，事件名 tick）
// GET /api/v1/schedule/live?day=Monday
//
// 客户端断开后请求 ctx 取消，Watch 关闭通道，流随之结束。
func (h *ScheduleHandler) Live(c *gin.Context) {
	var q dto.ScheduleQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	snapshots, err := h.scheduleSvc.Watch(c.Request.Context(), &q)
	if err != nil {
		h.handleScheduleError(c, err)
		return
	}

	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")
	c.Status(http.StatusOK)

	c.Stream(func(_ io.Writer) bool {
		snap, ok := <-snapshots
		if !ok {
			return false
		}
		c.SSEvent("tick", snap)
		return true
	})
}

func (h *ScheduleHandler) handleScheduleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, schedule.ErrInvalidTimeFormat):
		response.ErrorWithDetails(c, http.StatusBadRequest, 20001, "时间格式无效", err.Error())
	default:
		response.InternalError(c)
	}
}
