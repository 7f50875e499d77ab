package serverutils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type loginPayload struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

func TestValidateRequest(t *testing.T) {
	err := ValidateRequest(loginPayload{Email: "admin@example.com", Password: "secret"})
	assert.NoError(t, err)
}

func TestValidateRequestFailures(t *testing.T) {
	err := ValidateRequest(loginPayload{Email: "not-an-email"})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
	assert.Contains(t, err.Error(), "Email failed on 'email'")
	assert.Contains(t, err.Error(), "Password failed on 'required'")
}
