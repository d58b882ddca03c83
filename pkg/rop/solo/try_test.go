package solo

import (
	"bytes"
	"errors"
	"log/slog"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/fallible/pkg/rop"
)

var errBoom = errors.New("boom")

func TestTryRun_CapturesPanicWithDefaultMessage(t *testing.T) {
	t.Parallel()

	r := TryRun(func() int { panic(errBoom) })

	require.True(t, r.IsFail())
	assert.Equal(t, []string{DefaultFaultMessage}, r.Details().Messages())

	fault, ok := r.Details().Exception()
	require.True(t, ok)
	var p *rop.PanicError
	require.ErrorAs(t, fault, &p)
	assert.Same(t, errBoom, p.Value)
	assert.ErrorIs(t, r.Err(), errBoom)
}

func TestTryRun_CustomMessageBuilder(t *testing.T) {
	t.Parallel()

	r := TryRun(func() int { panic("kaput") },
		WithMessageBuilder(func(fault error) string { return "custom: " + fault.Error() }))

	assert.Equal(t, []string{"custom: panic: kaput"}, r.Details().Messages())

	fixed := TryRun(func() int { panic("kaput") }, WithMessage("fixed"))
	assert.Equal(t, []string{"fixed"}, fixed.Details().Messages())
}

func TestTryRun_NilBuilderKeepsDefault(t *testing.T) {
	t.Parallel()

	r := TryRun(func() int { panic("x") }, WithMessageBuilder(nil))
	assert.Equal(t, []string{DefaultFaultMessage}, r.Details().Messages())
}

func TestTryRun_NormalReturn(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 7, TryRun(func() int { return 7 }).Value())
}

func TestTryRunResult_PassesResultThrough(t *testing.T) {
	t.Parallel()

	validation := TryRunResult(func() rop.Result[int] { return rop.ErrMessage[int]("invalid") })
	require.True(t, validation.IsFail())
	assert.Equal(t, []string{"invalid"}, validation.Details().Messages())
	assert.False(t, validation.Details().HasException())

	assert.Equal(t, 1, TryRunResult(func() rop.Result[int] { return Succeed(1) }).Value())
}

func TestTryRunE_ReturnedErrorIsAFault(t *testing.T) {
	t.Parallel()

	r := TryRunE(func() (int, error) { return strconv.Atoi("nope") },
		WithMessageBuilder(func(fault error) string { return "parse failed" }))

	require.True(t, r.IsFail())
	assert.Equal(t, []string{"parse failed"}, r.Details().Messages())
	fault, ok := r.Details().Exception()
	require.True(t, ok)
	var numErr *strconv.NumError
	assert.ErrorAs(t, fault, &numErr)

	assert.Equal(t, 12, TryRunE(func() (int, error) { return strconv.Atoi("12") }).Value())
}

func TestTryMatch(t *testing.T) {
	t.Parallel()

	onValid := func(v int) string {
		if v == 0 {
			panic("zero")
		}
		return strconv.Itoa(v)
	}
	onFail := func(d rop.ErrorsDetails) string {
		panic("fail branch")
	}

	assert.Equal(t, "3", TryMatch(Succeed(3), onValid, onFail).Value())

	fromValid := TryMatch(Succeed(0), onValid, onFail)
	require.True(t, fromValid.IsFail())
	assert.True(t, fromValid.Details().HasException())

	fromFail := TryMatch(rop.ErrMessage[int]("x"), onValid, onFail, WithMessage("branch fault"))
	require.True(t, fromFail.IsFail())
	assert.Equal(t, []string{"branch fault"}, fromFail.Details().Messages())
}

func TestTryMapAndTryBind(t *testing.T) {
	t.Parallel()

	div := func(v int) int { return 10 / v }

	assert.Equal(t, 5, TryMap(Succeed(2), div).Value())

	zero := TryMap(Succeed(0), div)
	require.True(t, zero.IsFail())
	assert.True(t, zero.Details().HasException())

	prior := rop.ErrMessage[int]("prior")
	assert.Equal(t, prior.Id(), TryMap(prior, div).Id())

	bound := TryBind(Succeed(0), func(v int) rop.Result[int] { return Succeed(div(v)) })
	assert.True(t, bound.Details().HasException())

	boundE := TryBindE(Succeed("x"), strconv.Atoi)
	assert.True(t, boundE.Details().HasException())
}

func TestTryBindWithValue(t *testing.T) {
	t.Parallel()

	r := TryBindWithValue(Succeed(0), func(v int) rop.Result[int] { return Succeed(10 / v) })

	require.True(t, r.IsFail())
	assert.True(t, r.Details().HasException())
	v, ok := rop.LookupValue[int](r.Details())
	require.True(t, ok)
	assert.Equal(t, 0, v)
}

func TestFault_IsLogged(t *testing.T) {
	var buf bytes.Buffer
	rop.SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer rop.SetLogger(nil)

	Fault[int](errBoom, WithMessage("logged"))

	assert.True(t, strings.Contains(buf.String(), "captured fault"), buf.String())
	assert.True(t, strings.Contains(buf.String(), "message=logged"), buf.String())
}
