package shared

import (
	"errors"

	"github.com/bazaar-next/internal/http/response"
	"github.com/bazaar-next/internal/http/validation"
	"github.com/bazaar-next/internal/i18n"
	"github.com/bazaar-next/internal/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RequestLog 提供携带 request_id 的日志实例。
func RequestLog(c *gin.Context) *zap.SugaredLogger {
	if c == nil {
		return logger.S()
	}
	if requestID, ok := c.Get("request_id"); ok {
		if id, ok := requestID.(string); ok && id != "" {
			return logger.SW("request_id", id)
		}
	}
	return logger.S()
}

// RespondError 返回国际化错误响应，并在有原始错误时记录日志。
func RespondError(c *gin.Context, code int, key string, err error) {
	locale := i18n.ResolveLocale(c)
	RespondErrorWithMsg(c, code, i18n.T(locale, key), err)
}

// RespondErrorWithMsg 返回自定义消息错误响应；err 只进日志，不回显给客户端
func RespondErrorWithMsg(c *gin.Context, code int, msg string, err error) {
	if err != nil {
		path := ""
		if c != nil && c.Request != nil {
			path = c.Request.URL.Path
		}
		RequestLog(c).Errorw("handler_error",
			"code", code,
			"message", msg,
			"path", path,
			"error", err,
		)
	}
	response.Error(c, code, msg)
}

// RespondBindError 请求体绑定失败，校验错误附带字段规则
func RespondBindError(c *gin.Context, err error) {
	locale := i18n.ResolveLocale(c)
	msg := i18n.T(locale, "error.bad_request")
	if fields := validation.FieldErrors(err); len(fields) > 0 {
		response.ErrorWithData(c, response.CodeBadRequest, msg, gin.H{"fields": fields})
		return
	}
	RequestLog(c).Debugw("handler_bind_failed", "error", err)
	response.Error(c, response.CodeBadRequest, msg)
}

// localizedError 携带文案 key 与参数的业务错误（如密码策略）
type localizedError interface {
	Key() string
	Args() []interface{}
}

// MappedError 定义业务错误到接口错误响应的映射关系。
type MappedError struct {
	Target error
	Code   int
	Key    string
}

// RespondMappedError 按规则映射业务错误，未命中时以 fallback 响应并记录原始错误
func RespondMappedError(c *gin.Context, err error, rules []MappedError, fallbackCode int, fallbackKey string) {
	var le localizedError
	if errors.As(err, &le) {
		locale := i18n.ResolveLocale(c)
		response.Error(c, response.CodeBadRequest, i18n.Sprintf(locale, le.Key(), le.Args()...))
		return
	}
	for _, rule := range rules {
		if errors.Is(err, rule.Target) {
			RespondError(c, rule.Code, rule.Key, nil)
			return
		}
	}
	RespondError(c, fallbackCode, fallbackKey, err)
}

// ConcatMappedErrors 合并多组映射规则
func ConcatMappedErrors(groups ...[]MappedError) []MappedError {
	total := 0
	for _, group := range groups {
		total += len(group)
	}
	result := make([]MappedError, 0, total)
	for _, group := range groups {
		result = append(result, group...)
	}
	return result
}
