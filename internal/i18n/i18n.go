// Package i18n 提供接口错误信息与邮件文案的多语言翻译。
package i18n

import (
	"fmt"
	"strings"

	"github.com/bazaar-next/internal/constants"

	"github.com/gin-gonic/gin"
)

// DefaultLocale 默认语言
const DefaultLocale = constants.LocaleEnUS

// T 按语言取文案，缺失时回退默认语言，仍缺失返回 key 本身
func T(locale, key string) string {
	locale = NormalizeLocale(locale)
	if table, ok := messages[locale]; ok {
		if msg, ok := table[key]; ok {
			return msg
		}
	}
	if msg, ok := messages[DefaultLocale][key]; ok {
		return msg
	}
	return key
}

// Sprintf 取文案后按参数格式化
func Sprintf(locale, key string, args ...interface{}) string {
	tpl := T(locale, key)
	if len(args) == 0 {
		return tpl
	}
	return fmt.Sprintf(tpl, args...)
}

// NormalizeLocale 归一化语言标识，例如 "bn"、"bn_bd" 统一为 "bn-BD"
func NormalizeLocale(raw string) string {
	value := strings.ToLower(strings.TrimSpace(raw))
	value = strings.ReplaceAll(value, "_", "-")
	if value == "" {
		return DefaultLocale
	}
	for _, locale := range constants.SupportedLocales {
		lang := strings.ToLower(strings.SplitN(locale, "-", 2)[0])
		if value == strings.ToLower(locale) || strings.HasPrefix(value, lang) {
			return locale
		}
	}
	return DefaultLocale
}

// ResolveLocale 从请求解析语言：?lang= 优先，其次 Accept-Language 中第一个受支持的语言
func ResolveLocale(c *gin.Context) string {
	if c == nil || c.Request == nil {
		return DefaultLocale
	}
	if lang := strings.TrimSpace(c.Query("lang")); lang != "" {
		return NormalizeLocale(lang)
	}
	return parseAcceptLanguage(c.GetHeader("Accept-Language"))
}

func parseAcceptLanguage(header string) string {
	for _, part := range strings.Split(header, ",") {
		tag := strings.TrimSpace(strings.SplitN(part, ";", 2)[0])
		if tag == "" || tag == "*" {
			continue
		}
		lower := strings.ToLower(tag)
		if isSupportedLanguage(lower) {
			return NormalizeLocale(tag)
		}
	}
	return DefaultLocale
}

func isSupportedLanguage(tag string) bool {
	for _, locale := range constants.SupportedLocales {
		if strings.HasPrefix(tag, strings.ToLower(strings.SplitN(locale, "-", 2)[0])) {
			return true
		}
	}
	return false
}
