package service

import (
	"errors"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	NotFound            = 404
	InternalServerError = 500
)

var (
	ErrParamInvalid        = errors.New("参数错误")
	ErrUserNotFound        = errors.New("用户不存在")
	ErrListNotFound        = errors.New("清单不存在")
	ErrItemNotFound        = errors.New("条目不存在")
	ErrCategoryNotFound    = errors.New("分类不存在")
	ErrReportNotFound      = errors.New("举报记录不存在")
	ErrReportDuplicate     = errors.New("已举报过该条目")
	ErrReportReasonInvalid = errors.New("举报理由无效")
	ErrReportResolved      = errors.New("举报已处理")
	UnauthorizedError      = errors.New("权限不足")
	UnExpectedError        = errors.New("系统异常，请稍后重试")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:        BadRequest,
	ErrUserNotFound:        NotFound,
	ErrListNotFound:        NotFound,
	ErrItemNotFound:        NotFound,
	ErrCategoryNotFound:    NotFound,
	ErrReportNotFound:      NotFound,
	ErrReportDuplicate:     BadRequest,
	ErrReportReasonInvalid: BadRequest,
	ErrReportResolved:      BadRequest,
	UnauthorizedError:      Unauthorized,
	UnExpectedError:        InternalServerError,
}
