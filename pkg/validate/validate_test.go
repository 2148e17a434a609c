package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"msitumum/pkg/apperr"
)

type registerReq struct {
	Username string `json:"username" validate:"required,min=3"`
	Email    string `json:"email" validate:"required,email"`
	Role     string `json:"role" validate:"omitempty,oneof=farmer ngo"`
	Count    int    `json:"count" validate:"gt=0"`
}

func TestValidate(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&registerReq{Username: "wanjiru", Email: "w@example.org", Count: 1}))

	err := v.Validate(&registerReq{Username: "wa", Email: "w@example.org", Count: 1})
	assert.True(t, apperr.Is(err, apperr.KindValidation))
	assert.Equal(t, "username must be at least 3 characters", apperr.Message(err))

	err = v.Validate(&registerReq{Username: "wanjiru", Email: "nope", Count: 1})
	assert.Equal(t, "email must be a valid email", apperr.Message(err))

	err = v.Validate(&registerReq{Username: "wanjiru", Email: "w@example.org", Role: "king", Count: 1})
	assert.Equal(t, "role must be one of: farmer ngo", apperr.Message(err))

	err = v.Validate(&registerReq{Username: "wanjiru", Email: "w@example.org"})
	assert.Equal(t, "count must be greater than 0", apperr.Message(err))
}
