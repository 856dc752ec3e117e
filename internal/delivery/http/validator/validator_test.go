package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "github.com/Danielluzius/coderr-backend/internal/domain/errors"
)

type sampleInput struct {
	Username string `json:"username" validate:"required,max=10"`
	Email    string `json:"email" validate:"required,email"`
}

func TestValidate_Passes(t *testing.T) {
	v := New()

	err := v.Validate(&sampleInput{Username: "armin", Email: "armin@example.org"})
	assert.NoError(t, err)
}

func TestValidate_ReportsJSONFieldNames(t *testing.T) {
	v := New()

	err := v.Validate(&sampleInput{Username: "", Email: "not-an-email"})
	require.Error(t, err)

	var fieldErrs *domainerrors.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)

	fields := fieldErrs.Fields()
	assert.Contains(t, fields, "username")
	assert.Contains(t, fields, "email")
	assert.Equal(t, []string{"This field is required."}, fields["username"])
	assert.Equal(t, []string{"Enter a valid email address."}, fields["email"])
}

func TestValidate_MaxLength(t *testing.T) {
	v := New()

	err := v.Validate(&sampleInput{Username: "waytoolongusername", Email: "a@b.org"})
	require.Error(t, err)

	var fieldErrs *domainerrors.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Equal(t,
		[]string{"Ensure this field has no more than 10 characters."},
		fieldErrs.Fields()["username"],
	)
}
