package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Email  string `json:"email" validate:"required,email"`
	Role   string `json:"role" validate:"required,is-user-role"`
	Status string `json:"status" validate:"omitempty,is-application-status"`
}

func TestValidate_OK(t *testing.T) {
	v := New()
	err := v.Validate(&sampleRequest{Email: "a@b.com", Role: "student"})
	assert.NoError(t, err)
}

func TestValidate_FieldNamesUseJSONTags(t *testing.T) {
	v := New()
	err := v.Validate(&sampleRequest{Role: "student"})
	require.Error(t, err)

	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Contains(t, vErr.Errors, "email")
	assert.NotContains(t, vErr.Errors, "Email")
}

func TestValidate_UserRole(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&sampleRequest{Email: "a@b.com", Role: "recruiter"}))

	err := v.Validate(&sampleRequest{Email: "a@b.com", Role: "admin"})
	require.Error(t, err)
	vErr := err.(*ValidationError)
	assert.Contains(t, vErr.Errors, "role")
}

func TestValidate_ApplicationStatus(t *testing.T) {
	v := New()

	// Empty passes through omitempty.
	assert.NoError(t, v.Validate(&sampleRequest{Email: "a@b.com", Role: "student", Status: ""}))
	assert.NoError(t, v.Validate(&sampleRequest{Email: "a@b.com", Role: "student", Status: "shortlisted"}))

	err := v.Validate(&sampleRequest{Email: "a@b.com", Role: "student", Status: "bogus"})
	assert.Error(t, err)
}
