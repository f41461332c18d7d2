package validator

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type account struct {
	Username string `validate:"required,min=3,username"`
	Password string `validate:"required,password"`
}

type filter struct {
	Month    string `validate:"omitempty,yearmonth"`
	PageSize int    `validate:"omitempty,min=1,max=100"`
	Ids      []int  `validate:"omitempty,max=2"`
}

func issues(t *testing.T, err error) map[string]string {
	t.Helper()

	var validationErrs validator.ValidationErrors
	require.True(t, errors.As(err, &validationErrs))

	result := make(map[string]string)
	for _, fieldErr := range validationErrs {
		result[fieldErr.Field()] = ValidationMessage(fieldErr)
	}

	return result
}

func TestPassword(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name     string
		password string
		valid    bool
	}{
		{name: "valid", password: "Pass123!@#", valid: true},
		{name: "too short", password: "Pa1!", valid: false},
		{name: "too long", password: "Pass123!Pass123!Pass123!xx", valid: false},
		{name: "no upper", password: "pass123!@#", valid: false},
		{name: "no lower", password: "PASS123!@#", valid: false},
		{name: "no digit", password: "Password!@#", valid: false},
		{name: "no special", password: "Password123", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(account{Username: "alice", Password: tt.password})
			if tt.valid {
				assert.NoError(t, err)
				return
			}

			assert.Equal(t, ErrInvalidPassword, issues(t, err)["Password"])
		})
	}
}

func TestUsername(t *testing.T) {
	v := NewValidator()

	for _, username := range []string{"alice", "bob.smith", "carol_1", "d-e"} {
		assert.NoError(t, v.Struct(account{Username: username, Password: "Pass123!@#"}), username)
	}

	for _, username := range []string{"al ice", "bob@home", "çağrı"} {
		err := v.Struct(account{Username: username, Password: "Pass123!@#"})
		assert.Equal(t, ErrInvalidUsername, issues(t, err)["Username"], username)
	}

	err := v.Struct(account{Username: "ab", Password: "Pass123!@#"})
	assert.Equal(t, "must be at least 3 characters long", issues(t, err)["Username"])
}

func TestYearMonth(t *testing.T) {
	v := NewValidator()

	assert.NoError(t, v.Struct(filter{Month: "2024-03"}))
	assert.NoError(t, v.Struct(filter{}))

	for _, month := range []string{"2024-13", "2024-3", "03-2024", "2024/03", "2024-03-01"} {
		err := v.Struct(filter{Month: month})
		assert.Equal(t, ErrInvalidMonth, issues(t, err)["Month"], month)
	}
}

func TestMessagesDependOnKind(t *testing.T) {
	v := NewValidator()

	err := v.Struct(filter{PageSize: 500, Ids: []int{1, 2, 3}})
	got := issues(t, err)

	assert.Equal(t, "must be at most 100", got["PageSize"])
	assert.Equal(t, "must contain at most 2 items", got["Ids"])
}
