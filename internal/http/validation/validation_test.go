package validation

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsSlug(t *testing.T) {
	cases := map[string]bool{
		"mens-fashion": true,
		"panjabi2025":  true,
		"Mens":         false,
		"-lead":        false,
		"double--dash": false,
		"":             false,
		"with space":   false,
	}
	for input, want := range cases {
		assert.Equal(t, want, IsSlug(input), input)
	}
}

func TestIsBDPhone(t *testing.T) {
	cases := map[string]bool{
		"01712345678":    true,
		"+8801712345678": true,
		"8801912345678":  true,
		"017-1234-5678":  true,
		"01212345678":    false,
		"0171234567":     false,
		"12345":          false,
	}
	for input, want := range cases {
		assert.Equal(t, want, IsBDPhone(input), input)
	}
}

type sampleRequest struct {
	Slug  string `validate:"omitempty,slug"`
	Phone string `validate:"required,bdphone"`
}

func TestRegisterOnAndFieldErrors(t *testing.T) {
	v := validator.New()
	require.NoError(t, RegisterOn(v))

	require.NoError(t, v.Struct(sampleRequest{Slug: "summer-sale", Phone: "01712345678"}))

	err := v.Struct(sampleRequest{Slug: "Summer Sale", Phone: "123"})
	require.Error(t, err)
	fields := FieldErrors(err)
	assert.Equal(t, "slug", fields["slug"])
	assert.Equal(t, "bdphone", fields["phone"])
}

func TestFieldErrorsIgnoresOtherErrors(t *testing.T) {
	assert.Nil(t, FieldErrors(nil))
	assert.Nil(t, FieldErrors(assert.AnError))
}

func TestRegisterIsIdempotent(t *testing.T) {
	require.NoError(t, Register())
	require.NoError(t, Register())
}
