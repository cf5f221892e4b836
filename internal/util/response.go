package util

import (
	"errors"
	"net/http"

	"testbank_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// 客户端约定：成功返回 JSON 或空体，错误一律返回纯文本消息。

func OK(c *gin.Context) {
	c.Status(http.StatusOK)
}

func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

func JSON(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

func BadRequest(c *gin.Context, message string) {
	c.String(http.StatusBadRequest, message)
}

func NotFound(c *gin.Context, message string) {
	c.String(http.StatusNotFound, message)
}

func InternalServerError(c *gin.Context) {
	c.String(http.StatusInternalServerError, "internal server error")
}

// Fail 将服务层错误映射为线上契约。校验、冲突和未找到都返回 400，
// 只有单资源查询接口对未找到返回 404（由控制器自行处理）。
func Fail(c *gin.Context, err error) {
	var ve *ValidationError
	var nf *NotFoundError
	var ce *ConflictError
	switch {
	case errors.As(err, &ve):
		BadRequest(c, ve.Message)
	case errors.As(err, &nf):
		BadRequest(c, nf.Message)
	case errors.As(err, &ce):
		BadRequest(c, ce.Message)
	default:
		if logger.Log != nil {
			logger.Log.Error("unexpected error", zap.Error(err))
		}
		InternalServerError(c)
	}
}
