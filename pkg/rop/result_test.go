package rop

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOk(t *testing.T) {
	t.Parallel()

	r := Ok(5)

	require.True(t, r.IsValid())
	assert.False(t, r.IsFail())
	assert.Equal(t, 5, r.Value())
	assert.NoError(t, r.Err())
	assert.True(t, r.Details().IsEmpty())
	assert.NotEqual(t, uuid.Nil, r.Id())
	assert.WithinDuration(t, time.Now().UTC(), r.CreatedAt(), time.Second)
	assert.Equal(t, time.UTC, r.CreatedAt().Location())
}

func TestErr(t *testing.T) {
	t.Parallel()

	r := Err[int](errors.New("a"), NewError("b"))

	require.True(t, r.IsFail())
	assert.Equal(t, []string{"a", "b"}, r.Details().Messages())
	assert.EqualError(t, r.Err(), "a; b")
	assert.Equal(t, -1, r.ValueOr(-1))
	_, ok := r.Get()
	assert.False(t, ok)
}

func TestErr_NeverEmpty(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1, Err[int]().Details().Len())
	assert.Equal(t, 1, ErrDetails[int](ErrorsDetails{}).Details().Len())
}

func TestValue_PanicsOnFail(t *testing.T) {
	t.Parallel()

	assert.PanicsWithValue(t, "rop: Value called on a failed result: boom", func() {
		ErrMessage[int]("boom").Value()
	})
}

func TestErrWithValue(t *testing.T) {
	t.Parallel()

	r := ErrWithValue[int]("raw", errors.New("parse"))

	v, ok := LookupValue[string](r.Details())
	require.True(t, ok)
	assert.Equal(t, "raw", v)
	assert.Equal(t, []string{"parse"}, r.Details().Messages())
}

func TestFailFrom_KeepsIdentity(t *testing.T) {
	t.Parallel()

	in := ErrMessage[int]("boom")
	out := FailFrom[int, string](in)

	assert.Equal(t, in.Id(), out.Id())
	assert.Equal(t, in.CreatedAt(), out.CreatedAt())
	assert.Equal(t, in.Details().Messages(), out.Details().Messages())

	assert.Panics(t, func() { FailFrom[int, string](Ok(1)) })
}

func TestFromTuple(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 3, FromTuple(3, nil).Value())

	var typedNil *Error
	assert.True(t, FromTuple(3, error(typedNil)).IsValid())

	r := FromTuple(0, errors.New("x"))
	assert.True(t, r.IsFail())
	v, err := r.Unwrap()
	assert.Equal(t, 0, v)
	assert.EqualError(t, err, "x")
}

func TestFirstFailAndFuseFails(t *testing.T) {
	t.Parallel()

	outcomes := []Outcome{Ok(1), ErrMessage[string]("e1"), Ok(true), ErrMessage[int]("e2")}

	first, failed := FirstFail(outcomes...)
	require.True(t, failed)
	assert.Equal(t, []string{"e1"}, first.Messages())

	fused, failed := FuseFails(outcomes...)
	require.True(t, failed)
	assert.Equal(t, []string{"e1", "e2"}, fused.Messages())

	_, failed = FuseFails(Ok(1), Ok(2))
	assert.False(t, failed)
}

func TestSetLogger_NilRestoresDefault(t *testing.T) {
	SetLogger(nil)
	assert.NotNil(t, Logger())
}
