package solo

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/fallible/pkg/rop"
)

func TestBindIfFail(t *testing.T) {
	t.Parallel()

	recovered := BindIfFail(rop.ErrMessage[int]("x"), func(d rop.ErrorsDetails) rop.Result[int] {
		return Succeed(d.Len())
	})
	assert.Equal(t, 1, recovered.Value())

	called := false
	valid := Succeed(4)
	out := BindIfFail(valid, func(rop.ErrorsDetails) rop.Result[int] { called = true; return Succeed(0) })
	assert.False(t, called)
	assert.Equal(t, valid.Id(), out.Id())
}

func TestBindIfFailWithValue(t *testing.T) {
	t.Parallel()

	parse := func(s string) rop.Result[int] {
		n, err := strconv.Atoi(s)
		return rop.FromTuple(n, err)
	}
	failed := BindWithValue(Succeed("  12 "), parse)
	require.True(t, failed.IsFail())

	retried := BindIfFailWithValue(failed, func(raw string) rop.Result[int] {
		return parse(strings.TrimSpace(raw))
	})
	assert.Equal(t, 12, retried.Value())
}

func TestBindIfFailWithValue_LookupMiss(t *testing.T) {
	t.Parallel()

	called := false
	out := BindIfFailWithValue(rop.ErrMessage[int]("original"), func(string) rop.Result[int] {
		called = true
		return Succeed(0)
	})

	assert.False(t, called)
	require.True(t, out.IsFail())
	assert.Equal(t, []string{"original", "value of type string not found in errors details"},
		out.Details().Messages())
	assert.ErrorIs(t, out.Err(), rop.ErrNotFound)
}

func TestBindIfFailWithException(t *testing.T) {
	t.Parallel()

	faulty := TryRun(func() int { panic(errBoom) })
	recovered := BindIfFailWithException(faulty, func(fault error) rop.Result[int] {
		if errors.Is(fault, errBoom) {
			return Succeed(-1)
		}
		return rop.ErrMessage[int]("unknown")
	})
	assert.Equal(t, -1, recovered.Value())
}

func TestBindIfFailWithException_ValidationFailureUnchanged(t *testing.T) {
	t.Parallel()

	validation := rop.ErrMessage[int]("invalid")
	called := false

	out := BindIfFailWithException(validation, func(error) rop.Result[int] {
		called = true
		return Succeed(0)
	})

	assert.False(t, called)
	assert.Equal(t, validation.Id(), out.Id())
	assert.Equal(t, []string{"invalid"}, out.Details().Messages())
}

func TestBindIfFailWithoutException(t *testing.T) {
	t.Parallel()

	fallback := func(rop.ErrorsDetails) rop.Result[int] { return Succeed(100) }

	assert.Equal(t, 100, BindIfFailWithoutException(rop.ErrMessage[int]("invalid"), fallback).Value())

	faulty := TryRun(func() int { panic("x") })
	out := BindIfFailWithoutException(faulty, fallback)
	assert.Equal(t, faulty.Id(), out.Id())
	assert.True(t, out.IsFail())

	assert.Equal(t, 1, BindIfFailWithoutException(Succeed(1), fallback).Value())
}
