package cpf_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/cpfkit/pkg/cpf"
)

func TestValidate_NullInput(t *testing.T) {
	t.Parallel()

	res := cpf.Validate(nil)
	assert.False(t, res.Valid)
	assert.Equal(t, cpf.NullInput, res.ErrorKind())
	assert.Equal(t, "CPF is required", res.Message())
	assert.Empty(t, res.Digits)
	assert.Empty(t, res.Success)
	assert.ErrorIs(t, res.Err(), cpf.ErrNullInput)
}

func TestValidateString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		valid   bool
		kind    cpf.ErrorKind
		digits  string
		message string
	}{
		{name: "empty string", input: "", kind: cpf.EmptyInput, message: "CPF is empty"},
		{name: "only spaces", input: "   ", kind: cpf.EmptyInput, message: "CPF is empty"},
		{name: "only separators", input: "..--", kind: cpf.EmptyInput, message: "CPF is empty"},
		{name: "tabs and newlines", input: "\t\n. -", kind: cpf.EmptyInput, message: "CPF is empty"},
		{
			name: "all ones", input: "11111111111", kind: cpf.InvalidDigitPattern, digits: "11111111111",
			message: "CPF 11111111111 does not have a valid digit pattern",
		},
		{
			name: "all zeros formatted", input: "000.000.000-00", kind: cpf.InvalidDigitPattern, digits: "00000000000",
			message: "CPF 00000000000 does not have a valid digit pattern",
		},
		{name: "too short", input: "1114447773", kind: cpf.InvalidDigitPattern, digits: "1114447773"},
		{name: "too long", input: "111444777355", kind: cpf.InvalidDigitPattern, digits: "111444777355"},
		{name: "letters", input: "1114447773a", kind: cpf.InvalidDigitPattern, digits: "1114447773a"},
		{name: "slash separator is not stripped", input: "111/444/777-35", kind: cpf.InvalidDigitPattern, digits: "111/444/77735"},
		{name: "non ascii digits", input: "١١١٤٤٤٧٧٧٣٥", kind: cpf.InvalidDigitPattern, digits: "١١١٤٤٤٧٧٧٣٥"},
		{name: "valid plain", input: "11144477735", valid: true, digits: "11144477735"},
		{name: "valid formatted", input: "111.444.777-35", valid: true, digits: "11144477735"},
		{name: "valid spaced", input: " 111 444 777 35 ", valid: true, digits: "11144477735"},
		{name: "valid second sample", input: "529.982.247-25", valid: true, digits: "52998224725"},
		{name: "valid zero second digit", input: "123.456.789-09", valid: true, digits: "12345678909"},
		{name: "valid both digits zero", input: "98765432100", valid: true, digits: "98765432100"},
		{
			name: "wrong second digit", input: "11144477736", kind: cpf.InvalidCPF, digits: "11144477736",
			message: "CPF 11144477736 is invalid: check digits do not match",
		},
		{name: "wrong first digit", input: "111.444.777-25", kind: cpf.InvalidCPF, digits: "11144477725"},
		{name: "swapped check digits", input: "11144477753", kind: cpf.InvalidCPF, digits: "11144477753"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res := cpf.ValidateString(tt.input)
			assert.Equal(t, tt.valid, res.Valid)
			assert.Equal(t, tt.kind, res.ErrorKind())
			assert.Equal(t, tt.digits, res.Digits)

			if tt.valid {
				assert.Equal(t, cpf.ValidCPF, res.Success)
				assert.Nil(t, res.Failure)
				assert.NoError(t, res.Err())
				assert.Empty(t, res.Message())
				return
			}

			assert.Empty(t, res.Success, "success must not be set on failure")
			require.NotNil(t, res.Failure)
			assert.Equal(t, tt.digits, res.Failure.Digits)
			assert.ErrorIs(t, res.Err(), tt.kind.Sentinel())
			if tt.message != "" {
				assert.Equal(t, tt.message, res.Message())
				assert.EqualError(t, res.Err(), tt.message)
			}
		})
	}
}

func TestIsValid(t *testing.T) {
	t.Parallel()

	assert.True(t, cpf.IsValid("111.444.777-35"))
	assert.False(t, cpf.IsValid("111.444.777-36"))
	assert.False(t, cpf.IsValid(""))
}

func TestValidate_FormattingInvariance(t *testing.T) {
	t.Parallel()

	pairs := [][2]string{
		{"111.444.777-35", "11144477735"},
		{"111.444.777-36", "11144477736"},
		{"111.111.111-11", "11111111111"},
	}
	for _, p := range pairs {
		formatted, plain := cpf.ValidateString(p[0]), cpf.ValidateString(p[1])
		assert.Equal(t, plain.Digits, formatted.Digits)
		assert.Equal(t, plain.Valid, formatted.Valid)
		assert.Equal(t, plain.ErrorKind(), formatted.ErrorKind())
		assert.Equal(t, plain.Message(), formatted.Message())
	}
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "11144477735", cpf.Normalize("111.444.777-35"))
	assert.Equal(t, "", cpf.Normalize(" .-"))

	for _, s := range []string{"11144477735", "00000000000", "52998224725"} {
		assert.Equal(t, s, cpf.Normalize(s), "normalizing normalized input must be a no-op")
		assert.Equal(t, cpf.Normalize(s), cpf.Normalize(cpf.Normalize(s)))
	}
}

func TestResult_FreshPerCall(t *testing.T) {
	t.Parallel()

	first := cpf.ValidateString("11111111111")
	second := cpf.ValidateString("22222222222")

	require.NotNil(t, first.Failure)
	require.NotNil(t, second.Failure)
	assert.NotSame(t, first.Failure, second.Failure)
	assert.Contains(t, first.Message(), "11111111111")
	assert.Contains(t, second.Message(), "22222222222")
}

func TestValidationError(t *testing.T) {
	t.Parallel()

	t.Run("unwraps to sentinel", func(t *testing.T) {
		t.Parallel()
		err := error(&cpf.ValidationError{Kind: cpf.InvalidCPF, Digits: "11144477736"})
		assert.True(t, errors.Is(err, cpf.ErrInvalidCPF))
		assert.False(t, errors.Is(err, cpf.ErrEmptyInput))

		var verr *cpf.ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Equal(t, "cpf.errors.invalid_cpf", verr.TranslationKey())
	})

	t.Run("message falls back to sentinel text", func(t *testing.T) {
		t.Parallel()
		err := &cpf.ValidationError{Kind: cpf.EmptyInput}
		assert.Equal(t, cpf.ErrEmptyInput.Error(), err.Error())

		unknown := &cpf.ValidationError{Kind: "unknown"}
		assert.Equal(t, "cpf validation failed", unknown.Error())
		assert.Nil(t, unknown.Unwrap())
	})
}

func TestErrorKind(t *testing.T) {
	t.Parallel()

	kinds := map[cpf.ErrorKind]error{
		cpf.NullInput:           cpf.ErrNullInput,
		cpf.EmptyInput:          cpf.ErrEmptyInput,
		cpf.InvalidDigitPattern: cpf.ErrInvalidDigitPattern,
		cpf.InvalidCPF:          cpf.ErrInvalidCPF,
	}
	for kind, sentinel := range kinds {
		assert.Equal(t, sentinel, kind.Sentinel())
		assert.Equal(t, "cpf.errors."+kind.String(), kind.TranslationKey())
	}
	assert.Equal(t, "valid_cpf", cpf.ValidCPF.String())
}
