package i18n

import (
	"net/http/httptest"
	"testing"

	"github.com/bazaar-next/internal/constants"

	"github.com/gin-gonic/gin"
)

func TestTFallsBackToDefaultLocale(t *testing.T) {
	if got := T("fr-FR", "error.not_found"); got != "resource not found" {
		t.Fatalf("unexpected fallback message: %s", got)
	}
	if got := T(constants.LocaleBnBD, "error.unknown_key"); got != "error.unknown_key" {
		t.Fatalf("missing key should return key, got %s", got)
	}
}

func TestSprintfFormatsArgs(t *testing.T) {
	if got := Sprintf(constants.LocaleEnUS, "error.password_min_length", 8); got != "password must be at least 8 characters" {
		t.Fatalf("unexpected formatted message: %s", got)
	}
}

func TestNormalizeLocale(t *testing.T) {
	cases := map[string]string{
		"":      constants.LocaleEnUS,
		"bn":    constants.LocaleBnBD,
		"bn_BD": constants.LocaleBnBD,
		"en-GB": constants.LocaleEnUS,
		"zh-CN": constants.LocaleEnUS,
	}
	for input, want := range cases {
		if got := NormalizeLocale(input); got != want {
			t.Fatalf("NormalizeLocale(%q) = %s, want %s", input, got, want)
		}
	}
}

func newLocaleContext(target, acceptLanguage string) *gin.Context {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", target, nil)
	c.Request.Header.Set("Accept-Language", acceptLanguage)
	return c
}

func TestResolveLocale(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name           string
		target         string
		acceptLanguage string
		want           string
	}{
		{name: "first supported header tag", target: "/", acceptLanguage: "fr-FR;q=0.9, bn-BD;q=0.8, en;q=0.5", want: constants.LocaleBnBD},
		{name: "query wins over header", target: "/?lang=en", acceptLanguage: "bn-BD", want: constants.LocaleEnUS},
		{name: "unsupported falls back", target: "/", acceptLanguage: "fr-FR", want: constants.LocaleEnUS},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ResolveLocale(newLocaleContext(tc.target, tc.acceptLanguage)); got != tc.want {
				t.Fatalf("want %s got %s", tc.want, got)
			}
		})
	}
}

func TestLocalesShareKeys(t *testing.T) {
	for key := range messages[constants.LocaleEnUS] {
		if _, ok := messages[constants.LocaleBnBD][key]; !ok {
			t.Fatalf("bn-BD missing key %s", key)
		}
	}
}
