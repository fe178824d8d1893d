package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type profileInput struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,contains=@"`
	Phone string `json:"phone" validate:"required"`
}

func TestValidateStructValid(t *testing.T) {
	assert.Nil(t, ValidateStruct(profileInput{Name: "Анна", Email: "a@b.com", Phone: "1"}))
}

func TestValidateStructNamesFields(t *testing.T) {
	fields := ValidateStruct(profileInput{Name: "", Email: "ab.com", Phone: ""})

	require.Len(t, fields, 3)
	assert.Equal(t, "name", fields[0].Field)
	assert.Equal(t, "name is required", fields[0].Message)
	assert.Equal(t, "email", fields[1].Field)
	assert.Equal(t, `email must contain "@"`, fields[1].Message)
	assert.Equal(t, "phone", fields[2].Field)
}
