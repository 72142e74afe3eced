// Package validation 注册 gin 绑定使用的自定义校验规则
package validation

import (
	"errors"
	"regexp"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	slugPattern    = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
	bdPhonePattern = regexp.MustCompile(`^(?:\+?880|0)1[3-9]\d{8}$`)

	registerOnce sync.Once
	registerErr  error
)

// IsSlug 小写字母数字与单个连字符组成的 slug
func IsSlug(value string) bool {
	return slugPattern.MatchString(value)
}

// IsBDPhone 孟加拉手机号，允许 +880 / 880 / 0 前缀，忽略空格与连字符
func IsBDPhone(value string) bool {
	normalized := strings.NewReplacer(" ", "", "-", "").Replace(strings.TrimSpace(value))
	return bdPhonePattern.MatchString(normalized)
}

// Register 向 gin 默认校验器注册 slug 与 bdphone 规则，可重复调用
func Register() error {
	registerOnce.Do(func() {
		engine, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		registerErr = RegisterOn(engine)
	})
	return registerErr
}

// RegisterOn 向指定校验器注册规则
func RegisterOn(v *validator.Validate) error {
	if err := v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
		return IsSlug(fl.Field().String())
	}); err != nil {
		return err
	}
	return v.RegisterValidation("bdphone", func(fl validator.FieldLevel) bool {
		return IsBDPhone(fl.Field().String())
	})
}

// FieldErrors 将校验错误转换为 字段 -> 规则 映射，非校验错误返回 nil
func FieldErrors(err error) map[string]string {
	var verrs validator.ValidationErrors
	if err == nil || !errors.As(err, &verrs) {
		return nil
	}
	result := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		result[toSnake(fe.Field())] = fe.Tag()
	}
	return result
}

func toSnake(name string) string {
	var b strings.Builder
	for i, r := range name {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(r + ('a' - 'A'))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
