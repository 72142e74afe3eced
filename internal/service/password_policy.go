package service

import "unicode"

const passwordMinLength = 8

// passwordPolicyError 携带 i18n key 与参数，errors.Is 匹配 ErrWeakPassword
type passwordPolicyError struct {
	key  string
	args []interface{}
}

func (e passwordPolicyError) Error() string        { return e.key }
func (e passwordPolicyError) Is(target error) bool { return target == ErrWeakPassword }
func (e passwordPolicyError) Key() string          { return e.key }
func (e passwordPolicyError) Args() []interface{}  { return e.args }

var passwordCharRules = []struct {
	key   string
	match func(rune) bool
}{
	{key: "error.password_require_letter", match: unicode.IsLetter},
	{key: "error.password_require_number", match: unicode.IsDigit},
}

// validatePassword 至少 8 个字符，且包含字母和数字
func validatePassword(password string) error {
	if len([]rune(password)) < passwordMinLength {
		return passwordPolicyError{key: "error.password_min_length", args: []interface{}{passwordMinLength}}
	}
	for _, rule := range passwordCharRules {
		found := false
		for _, r := range password {
			if rule.match(r) {
				found = true
				break
			}
		}
		if !found {
			return passwordPolicyError{key: rule.key}
		}
	}
	return nil
}
