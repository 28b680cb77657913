package handler

import (
	"Curatia/internal/pkg/response"
	"Curatia/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type TrendingHandler struct {
	trendingSvc service.TrendingService
}

func NewTrendingHandler(trendingSvc service.TrendingService) *TrendingHandler {
	return &TrendingHandler{
		trendingSvc: trendingSvc,
	}
}

// GetTrendingLists 分类热度榜
func (s *TrendingHandler) GetTrendingLists(c *gin.Context) {
	categoryID, err := strconv.ParseUint(c.DefaultQuery("category_id", "0"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	lists, err := s.trendingSvc.GetTrendingLists(c.Request.Context(), categoryID, page, pageSize)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, lists)
}

// GetListScore 榜单主人查看自己清单的得分拆解
func (s *TrendingHandler) GetListScore(c *gin.Context) {
	listID, err := strconv.ParseUint(c.Param("list_id"), 10, 64)
	if err != nil || listID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	userID := c.GetUint64("user_id")

	score, err := s.trendingSvc.GetListScore(c.Request.Context(), listID, userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, score)
}
