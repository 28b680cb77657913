package handler

import (
	"Curatia/internal/pkg/response"
	"Curatia/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type CuratorHandler struct {
	curatorSvc service.CuratorService
}

func NewCuratorHandler(curatorSvc service.CuratorService) *CuratorHandler {
	return &CuratorHandler{
		curatorSvc: curatorSvc,
	}
}

// GetProgress 查看任意用户的策展人进度
func (s *CuratorHandler) GetProgress(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("user_id"), 10, 64)
	if err != nil || userID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	progress, err := s.curatorSvc.GetCuratorProgress(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, progress)
}

// GetSelfProgress 查看自己的策展人进度
func (s *CuratorHandler) GetSelfProgress(c *gin.Context) {
	userID := c.GetUint64("user_id")

	progress, err := s.curatorSvc.GetCuratorProgress(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, progress)
}

// GetLeaderboard 策展人排行榜
func (s *CuratorHandler) GetLeaderboard(c *gin.Context) {
	ranks, err := s.curatorSvc.GetLeaderboard(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, ranks)
}

// SyncProfile 管理端手动触发档案重算
func (s *CuratorHandler) SyncProfile(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("user_id"), 10, 64)
	if err != nil || userID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	if _, _, err := s.curatorSvc.SyncCuratorProfile(c.Request.Context(), userID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
