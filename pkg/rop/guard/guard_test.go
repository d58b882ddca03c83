package guard

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/fallible/pkg/rop"
)

type signup struct {
	Email string `validate:"required,email"`
	Age   int    `validate:"gte=18"`
	Name  string `validate:"required"`
}

func TestStruct_Valid(t *testing.T) {
	t.Parallel()

	in := rop.Ok(signup{Email: "a@b.io", Age: 30, Name: "ann"})
	out := Struct(in, New())

	require.True(t, out.IsValid())
	assert.Equal(t, in.Id(), out.Id())
}

func TestStruct_ReportsEveryViolation(t *testing.T) {
	t.Parallel()

	out := Struct(rop.Ok(signup{Email: "nope", Age: 12}), New())

	require.True(t, out.IsFail())
	assert.Equal(t, []string{
		"signup.Email failed on the 'email' rule",
		"signup.Age failed on the 'gte=18' rule",
		"signup.Name failed on the 'required' rule",
	}, out.Details().Messages())
	assert.False(t, out.Details().HasValue())
	assert.False(t, out.Details().HasException())

	var fieldErr validator.FieldError
	assert.ErrorAs(t, out.Err(), &fieldErr)
}

func TestStruct_FailedInputPassesThrough(t *testing.T) {
	t.Parallel()

	in := rop.ErrMessage[signup]("prior")
	out := Struct(in, New())

	assert.Equal(t, in.Id(), out.Id())
}

func TestStructWithValue(t *testing.T) {
	t.Parallel()

	bad := signup{Email: "a@b.io", Age: 1, Name: "kid"}
	out := StructWithValue(rop.Ok(bad), New())

	v, ok := rop.LookupValue[signup](out.Details())
	require.True(t, ok)
	assert.Equal(t, bad, v)
}

func TestVar(t *testing.T) {
	t.Parallel()

	v := New()

	assert.True(t, Var(rop.Ok("x@y.io"), v, "required,email").IsValid())

	out := Var(rop.Ok(""), v, "required")
	assert.Equal(t, []string{"value failed on the 'required' rule"}, out.Details().Messages())
}

func TestDetails_NonValidationError(t *testing.T) {
	t.Parallel()

	err := New().Struct(42)
	d := Details(err)

	require.Equal(t, 1, d.Len())
	var invalid *validator.InvalidValidationError
	assert.ErrorAs(t, d, &invalid)
}
