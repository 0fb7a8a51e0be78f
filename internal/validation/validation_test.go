package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"passport/internal/usecase"
)

func validRegisterInput() *usecase.RegisterInput {
	return &usecase.RegisterInput{
		FirstName:       "John",
		LastName:        "Doe",
		Login:           "john_doe",
		Password:        "secret1",
		ConfirmPassword: "secret1",
		Mail:            "john@example.com",
	}
}

func TestValidateRegistration_StrictValid(t *testing.T) {
	v, err := New(true)
	require.NoError(t, err)

	assert.Nil(t, v.ValidateRegistration(validRegisterInput()))
}

func TestValidateRegistration_StrictCyrillicNames(t *testing.T) {
	v, err := New(true)
	require.NoError(t, err)

	input := validRegisterInput()
	input.FirstName = "Иван"
	input.LastName = "Петров"

	assert.Nil(t, v.ValidateRegistration(input))
}

func TestValidateRegistration_StrictAggregatesAllFields(t *testing.T) {
	v, err := New(true)
	require.NoError(t, err)

	input := &usecase.RegisterInput{
		FirstName:       "john", // lowercase first letter
		LastName:        "",
		Login:           "j!",   // too short and bad charset
		Password:        "abc",  // too short, no digit
		ConfirmPassword: "abcd", // mismatch
		Mail:            "not-an-email",
	}

	fields := v.ValidateRegistration(input)
	require.NotNil(t, fields)

	assert.Contains(t, fields, "first_name")
	assert.Contains(t, fields, "last_name")
	assert.Contains(t, fields, "login")
	assert.Contains(t, fields, "password")
	assert.Contains(t, fields, "confirm_password")
	assert.Contains(t, fields, "mail")
}

func TestValidateRegistration_ConfirmMismatchAttributedToConfirmField(t *testing.T) {
	v, err := New(true)
	require.NoError(t, err)

	input := validRegisterInput()
	input.ConfirmPassword = "different1"

	fields := v.ValidateRegistration(input)
	require.NotNil(t, fields)

	require.Contains(t, fields, "confirm_password")
	assert.NotContains(t, fields, "password")
	assert.Equal(t, []string{"Passwords do not match."}, fields["confirm_password"])
}

func TestValidateRegistration_PasswordNeedsLetterAndDigit(t *testing.T) {
	v, err := New(true)
	require.NoError(t, err)

	cases := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{name: "letters only", password: "abcdef", wantErr: true},
		{name: "digits only", password: "123456", wantErr: true},
		{name: "mixed", password: "abc123", wantErr: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := validRegisterInput()
			input.Password = tc.password
			input.ConfirmPassword = tc.password

			fields := v.ValidateRegistration(input)
			if tc.wantErr {
				require.Contains(t, fields, "password")
			} else {
				assert.Nil(t, fields)
			}
		})
	}
}

func TestValidateRegistration_LooseSkipsConfirmAndFormats(t *testing.T) {
	v, err := New(false)
	require.NoError(t, err)

	input := &usecase.RegisterInput{
		FirstName:       "jo", // lowercase is fine in loose mode
		LastName:        "do",
		Login:           "j!", // charset not checked in loose mode
		Password:        "abcd",
		ConfirmPassword: "something-else", // ignored
		Mail:            "a@b.io",
	}

	assert.Nil(t, v.ValidateRegistration(input))
}

func TestValidateRegistration_LooseLengthBounds(t *testing.T) {
	v, err := New(false)
	require.NoError(t, err)

	input := validRegisterInput()
	input.Password = strings.Repeat("a", 17)

	fields := v.ValidateRegistration(input)
	require.Contains(t, fields, "password")
}

func TestValidateProfileUpdate(t *testing.T) {
	v, err := New(true)
	require.NoError(t, err)

	strp := func(s string) *string { return &s }

	t.Run("empty update passes", func(t *testing.T) {
		assert.Nil(t, v.ValidateProfileUpdate(&usecase.UpdateProfileInput{}))
	})

	t.Run("valid partial update passes", func(t *testing.T) {
		input := &usecase.UpdateProfileInput{
			City:        strp("Berlin"),
			DateOfBirth: strp("1990-04-17"),
		}
		assert.Nil(t, v.ValidateProfileUpdate(input))
	})

	t.Run("bad date format reported", func(t *testing.T) {
		input := &usecase.UpdateProfileInput{DateOfBirth: strp("17.04.1990")}
		fields := v.ValidateProfileUpdate(input)
		require.Contains(t, fields, "date_of_birth")
	})

	t.Run("overlong field reported", func(t *testing.T) {
		input := &usecase.UpdateProfileInput{Country: strp(strings.Repeat("x", 65))}
		fields := v.ValidateProfileUpdate(input)
		require.Contains(t, fields, "country")
	})
}
