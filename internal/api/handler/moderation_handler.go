package handler

import (
	"Curatia/internal/api/dto"
	"Curatia/internal/pkg/response"
	"Curatia/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type ModerationHandler struct {
	moderationSvc service.ModerationService
}

func NewModerationHandler(moderationSvc service.ModerationService) *ModerationHandler {
	return &ModerationHandler{
		moderationSvc: moderationSvc,
	}
}

// GetItem 条目详情，HIDDEN 条目对无关视角等同不存在
func (s *ModerationHandler) GetItem(c *gin.Context) {
	itemID, err := strconv.ParseUint(c.Param("item_id"), 10, 64)
	if err != nil || itemID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	userID := c.GetUint64("user_id")
	roles := c.GetStringSlice("roles")

	item, err := s.moderationSvc.GetVisibleItem(c.Request.Context(), itemID, userID, roles)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, item)
}

// ReportItem 举报条目
func (s *ModerationHandler) ReportItem(c *gin.Context) {
	itemID, err := strconv.ParseUint(c.Param("item_id"), 10, 64)
	if err != nil || itemID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	var req dto.ReportItemDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	status, err := s.moderationSvc.ReportItem(c.Request.Context(), c.GetUint64("user_id"), itemID, req.Reason)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.ReportResultDTO{ItemID: itemID, Status: status})
}

// GetModerationState 审核视角查看条目的累计举报分与状态
func (s *ModerationHandler) GetModerationState(c *gin.Context) {
	itemID, err := strconv.ParseUint(c.Param("item_id"), 10, 64)
	if err != nil || itemID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	state, err := s.moderationSvc.GetModerationState(c.Request.Context(), itemID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, state)
}

// ResolveReport 了结举报并重算条目分值
func (s *ModerationHandler) ResolveReport(c *gin.Context) {
	reportID, err := strconv.ParseUint(c.Param("report_id"), 10, 64)
	if err != nil || reportID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	if err := s.moderationSvc.ResolveReport(c.Request.Context(), reportID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
