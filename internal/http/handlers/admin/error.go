package admin

import (
	handlershared "github.com/bazaar-next/internal/http/handlers/shared"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func requestLog(c *gin.Context) *zap.SugaredLogger {
	return handlershared.RequestLog(c)
}

func respondError(c *gin.Context, code int, key string, err error) {
	handlershared.RespondError(c, code, key, err)
}

func respondMappedError(c *gin.Context, err error, rules []handlershared.MappedError, fallbackCode int, fallbackKey string) {
	handlershared.RespondMappedError(c, err, rules, fallbackCode, fallbackKey)
}

func respondBindError(c *gin.Context, err error) {
	handlershared.RespondBindError(c, err)
}

// 各模块错误映射
var (
	catalogErrorRules  = handlershared.ConcatMappedErrors(handlershared.CatalogErrorRules, handlershared.CommonErrorRules)
	couponErrorRules   = handlershared.ConcatMappedErrors(handlershared.CouponAdminErrorRules, handlershared.CommonErrorRules)
	orderErrorRules    = handlershared.ConcatMappedErrors(handlershared.OrderAdminErrorRules, handlershared.CommonErrorRules)
	authErrorRules     = handlershared.ConcatMappedErrors(handlershared.AuthErrorRules, handlershared.CaptchaErrorRules, handlershared.CommonErrorRules)
	uploadErrorRules   = handlershared.ConcatMappedErrors(handlershared.UploadErrorRules, handlershared.CommonErrorRules)
	settingErrorRules  = handlershared.CommonErrorRules
	reviewErrorRules   = handlershared.ConcatMappedErrors(handlershared.CatalogErrorRules, handlershared.CommonErrorRules)
	customerErrorRules = handlershared.CommonErrorRules
)
