package handler

import (
	"Curatia/internal/pkg/response"
	"Curatia/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type RotationHandler struct {
	rotationSvc service.RotationService
}

func NewRotationHandler(rotationSvc service.RotationService) *RotationHandler {
	return &RotationHandler{
		rotationSvc: rotationSvc,
	}
}

// GetRotationSuggestion 精选位轮换公平性分析与下一期建议
func (s *RotationHandler) GetRotationSuggestion(c *gin.Context) {
	window, err := strconv.Atoi(c.DefaultQuery("window", "0"))
	if err != nil || window < 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	result, err := s.rotationSvc.GetRotationSuggestion(c.Request.Context(), window)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}
