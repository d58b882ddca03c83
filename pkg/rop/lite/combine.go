package lite

import (
	"github.com/ib-77/fallible/pkg/rop"
	"github.com/ib-77/fallible/pkg/rop/core"
	"github.com/ib-77/fallible/pkg/rop/mass"
)

// Combine2 awaits the futures in order and stops at the first failure;
// later futures are not awaited.
func Combine2[A, B any](
	a core.Future[A],
	b core.Future[B]) core.Future[mass.Tuple2[A, B]] {

	return Lift(a, func(ra rop.Result[A]) rop.Result[mass.Tuple2[A, B]] {
		if ra.IsFail() {
			return rop.ErrDetails[mass.Tuple2[A, B]](ra.Details())
		}
		return mass.Combine2(ra, core.Await(b))
	})
}

// Combine3 is Combine2 over 3 futures.
func Combine3[A, B, C any](
	a core.Future[A],
	b core.Future[B],
	c core.Future[C]) core.Future[mass.Tuple3[A, B, C]] {

	return Lift(a, func(ra rop.Result[A]) rop.Result[mass.Tuple3[A, B, C]] {
		if ra.IsFail() {
			return rop.ErrDetails[mass.Tuple3[A, B, C]](ra.Details())
		}
		rb := core.Await(b)
		if rb.IsFail() {
			return rop.ErrDetails[mass.Tuple3[A, B, C]](rb.Details())
		}
		return mass.Combine3(ra, rb, core.Await(c))
	})
}

// Combine4 is Combine2 over 4 futures.
func Combine4[A, B, C, D any](
	a core.Future[A],
	b core.Future[B],
	c core.Future[C],
	d core.Future[D]) core.Future[mass.Tuple4[A, B, C, D]] {

	return Lift(a, func(ra rop.Result[A]) rop.Result[mass.Tuple4[A, B, C, D]] {
		if ra.IsFail() {
			return rop.ErrDetails[mass.Tuple4[A, B, C, D]](ra.Details())
		}
		rb := core.Await(b)
		if rb.IsFail() {
			return rop.ErrDetails[mass.Tuple4[A, B, C, D]](rb.Details())
		}
		rc := core.Await(c)
		if rc.IsFail() {
			return rop.ErrDetails[mass.Tuple4[A, B, C, D]](rc.Details())
		}
		return mass.Combine4(ra, rb, rc, core.Await(d))
	})
}

// Combine5 is Combine2 over 5 futures.
func Combine5[A, B, C, D, E any](
	a core.Future[A],
	b core.Future[B],
	c core.Future[C],
	d core.Future[D],
	e core.Future[E]) core.Future[mass.Tuple5[A, B, C, D, E]] {

	return Lift(a, func(ra rop.Result[A]) rop.Result[mass.Tuple5[A, B, C, D, E]] {
		if ra.IsFail() {
			return rop.ErrDetails[mass.Tuple5[A, B, C, D, E]](ra.Details())
		}
		rb := core.Await(b)
		if rb.IsFail() {
			return rop.ErrDetails[mass.Tuple5[A, B, C, D, E]](rb.Details())
		}
		rc := core.Await(c)
		if rc.IsFail() {
			return rop.ErrDetails[mass.Tuple5[A, B, C, D, E]](rc.Details())
		}
		rd := core.Await(d)
		if rd.IsFail() {
			return rop.ErrDetails[mass.Tuple5[A, B, C, D, E]](rd.Details())
		}
		return mass.Combine5(ra, rb, rc, rd, core.Await(e))
	})
}

// Combine6 is Combine2 over 6 futures.
func Combine6[A, B, C, D, E, F any](
	a core.Future[A],
	b core.Future[B],
	c core.Future[C],
	d core.Future[D],
	e core.Future[E],
	f core.Future[F]) core.Future[mass.Tuple6[A, B, C, D, E, F]] {

	return Lift(a, func(ra rop.Result[A]) rop.Result[mass.Tuple6[A, B, C, D, E, F]] {
		if ra.IsFail() {
			return rop.ErrDetails[mass.Tuple6[A, B, C, D, E, F]](ra.Details())
		}
		rb := core.Await(b)
		if rb.IsFail() {
			return rop.ErrDetails[mass.Tuple6[A, B, C, D, E, F]](rb.Details())
		}
		rc := core.Await(c)
		if rc.IsFail() {
			return rop.ErrDetails[mass.Tuple6[A, B, C, D, E, F]](rc.Details())
		}
		rd := core.Await(d)
		if rd.IsFail() {
			return rop.ErrDetails[mass.Tuple6[A, B, C, D, E, F]](rd.Details())
		}
		re := core.Await(e)
		if re.IsFail() {
			return rop.ErrDetails[mass.Tuple6[A, B, C, D, E, F]](re.Details())
		}
		return mass.Combine6(ra, rb, rc, rd, re, core.Await(f))
	})
}

// Combine7 is Combine2 over 7 futures.
func Combine7[A, B, C, D, E, F, G any](
	a core.Future[A],
	b core.Future[B],
	c core.Future[C],
	d core.Future[D],
	e core.Future[E],
	f core.Future[F],
	g core.Future[G]) core.Future[mass.Tuple7[A, B, C, D, E, F, G]] {

	return Lift(a, func(ra rop.Result[A]) rop.Result[mass.Tuple7[A, B, C, D, E, F, G]] {
		if ra.IsFail() {
			return rop.ErrDetails[mass.Tuple7[A, B, C, D, E, F, G]](ra.Details())
		}
		rb := core.Await(b)
		if rb.IsFail() {
			return rop.ErrDetails[mass.Tuple7[A, B, C, D, E, F, G]](rb.Details())
		}
		rc := core.Await(c)
		if rc.IsFail() {
			return rop.ErrDetails[mass.Tuple7[A, B, C, D, E, F, G]](rc.Details())
		}
		rd := core.Await(d)
		if rd.IsFail() {
			return rop.ErrDetails[mass.Tuple7[A, B, C, D, E, F, G]](rd.Details())
		}
		re := core.Await(e)
		if re.IsFail() {
			return rop.ErrDetails[mass.Tuple7[A, B, C, D, E, F, G]](re.Details())
		}
		rf := core.Await(f)
		if rf.IsFail() {
			return rop.ErrDetails[mass.Tuple7[A, B, C, D, E, F, G]](rf.Details())
		}
		return mass.Combine7(ra, rb, rc, rd, re, rf, core.Await(g))
	})
}

// Combine8 is Combine2 over 8 futures.
func Combine8[A, B, C, D, E, F, G, H any](
	a core.Future[A],
	b core.Future[B],
	c core.Future[C],
	d core.Future[D],
	e core.Future[E],
	f core.Future[F],
	g core.Future[G],
	h core.Future[H]) core.Future[mass.Tuple8[A, B, C, D, E, F, G, H]] {

	return Lift(a, func(ra rop.Result[A]) rop.Result[mass.Tuple8[A, B, C, D, E, F, G, H]] {
		if ra.IsFail() {
			return rop.ErrDetails[mass.Tuple8[A, B, C, D, E, F, G, H]](ra.Details())
		}
		rb := core.Await(b)
		if rb.IsFail() {
			return rop.ErrDetails[mass.Tuple8[A, B, C, D, E, F, G, H]](rb.Details())
		}
		rc := core.Await(c)
		if rc.IsFail() {
			return rop.ErrDetails[mass.Tuple8[A, B, C, D, E, F, G, H]](rc.Details())
		}
		rd := core.Await(d)
		if rd.IsFail() {
			return rop.ErrDetails[mass.Tuple8[A, B, C, D, E, F, G, H]](rd.Details())
		}
		re := core.Await(e)
		if re.IsFail() {
			return rop.ErrDetails[mass.Tuple8[A, B, C, D, E, F, G, H]](re.Details())
		}
		rf := core.Await(f)
		if rf.IsFail() {
			return rop.ErrDetails[mass.Tuple8[A, B, C, D, E, F, G, H]](rf.Details())
		}
		rg := core.Await(g)
		if rg.IsFail() {
			return rop.ErrDetails[mass.Tuple8[A, B, C, D, E, F, G, H]](rg.Details())
		}
		return mass.Combine8(ra, rb, rc, rd, re, rf, rg, core.Await(h))
	})
}
