package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blogbackend/apperrors"
)

type sampleRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Privacy  string `json:"privacy" validate:"omitempty,oneof=public authenticated team author"`
}

func TestValidateStruct(t *testing.T) {
	t.Run("valid payload passes", func(t *testing.T) {
		err := ValidateStruct(sampleRequest{Email: "a@x.com", Password: "longenough"})
		assert.NoError(t, err)
	})

	t.Run("missing fields reported per field", func(t *testing.T) {
		err := ValidateStruct(sampleRequest{})
		require.Error(t, err)
		verr, ok := apperrors.AsValidation(err)
		require.True(t, ok)
		assert.Contains(t, verr.Fields, "email")
		assert.Contains(t, verr.Fields, "password")
	})

	t.Run("short password gets a min message", func(t *testing.T) {
		err := ValidateStruct(sampleRequest{Email: "a@x.com", Password: "short"})
		verr, ok := apperrors.AsValidation(err)
		require.True(t, ok)
		assert.Equal(t, "password must be at least 8 characters", verr.Fields["password"])
	})

	t.Run("bad enum value gets a oneof message", func(t *testing.T) {
		err := ValidateStruct(sampleRequest{Email: "a@x.com", Password: "longenough", Privacy: "secret"})
		verr, ok := apperrors.AsValidation(err)
		require.True(t, ok)
		assert.Contains(t, verr.Fields["privacy"], "must be one of")
	})
}
