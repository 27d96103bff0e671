package response

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationError(t *testing.T) {
	t.Parallel()

	type filter struct {
		Page   int    `validate:"min=1"`
		Size   int    `validate:"max=100"`
		Status string `validate:"omitempty,oneof=PENDING APPROVED"`
		Title  string `validate:"required"`
	}

	err := validator.New().Struct(filter{Page: 0, Size: 500, Status: "NOPE"})
	require.Error(t, err)

	var validateErr validator.ValidationErrors
	require.ErrorAs(t, err, &validateErr)

	resp := ValidationError(validateErr)

	assert.Equal(t, StatusError, resp.Status)
	assert.Contains(t, resp.Error, "field Page must be at least 1")
	assert.Contains(t, resp.Error, "field Size must be at most 100")
	assert.Contains(t, resp.Error, "field Status must be one of [PENDING APPROVED]")
	assert.Contains(t, resp.Error, "field Title is a required field")
}

func TestOKAndError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Response{Status: "OK"}, OK())
	assert.Equal(t, Response{Status: "Error", Error: "boom"}, Error("boom"))
}
