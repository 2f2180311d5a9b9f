package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestValidationError(t *testing.T) {
	verr := NewValidationError("title", "too short")
	assert.True(t, verr.HasErrors())
	assert.Equal(t, "title: too short", verr.Error())

	verr.Add("content", "cannot be empty")
	assert.Len(t, verr.Fields, 2)
	assert.Equal(t, "content: cannot be empty, title: too short", verr.Error())

	empty := &ValidationError{}
	assert.False(t, empty.HasErrors())
	assert.Equal(t, "validation failed", empty.Error())
}

func TestAsValidation(t *testing.T) {
	verr := NewValidationError("name", "required")
	wrapped := fmt.Errorf("saving team: %w", verr)

	got, ok := AsValidation(wrapped)
	require.True(t, ok)
	assert.Equal(t, verr, got)

	_, ok = AsValidation(errors.New("boom"))
	assert.False(t, ok)
}

func TestIsDuplicate(t *testing.T) {
	assert.True(t, IsDuplicate(gorm.ErrDuplicatedKey))
	assert.True(t, IsDuplicate(fmt.Errorf("create like: %w", gorm.ErrDuplicatedKey)))
	assert.False(t, IsDuplicate(errors.New("boom")))
	assert.False(t, IsDuplicate(nil))
}

func TestIsRecordNotFound(t *testing.T) {
	assert.True(t, IsRecordNotFound(gorm.ErrRecordNotFound))
	assert.False(t, IsRecordNotFound(gorm.ErrDuplicatedKey))
}
