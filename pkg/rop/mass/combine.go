package mass

import (
	"github.com/ib-77/fallible/pkg/rop"
)

type Tuple2[A, B any] struct {
	First  A
	Second B
}

type Tuple3[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

type Tuple4[A, B, C, D any] struct {
	First  A
	Second B
	Third  C
	Fourth D
}

type Tuple5[A, B, C, D, E any] struct {
	First  A
	Second B
	Third  C
	Fourth D
	Fifth  E
}

type Tuple6[A, B, C, D, E, F any] struct {
	First  A
	Second B
	Third  C
	Fourth D
	Fifth  E
	Sixth  F
}

type Tuple7[A, B, C, D, E, F, G any] struct {
	First   A
	Second  B
	Third   C
	Fourth  D
	Fifth   E
	Sixth   F
	Seventh G
}

type Tuple8[A, B, C, D, E, F, G, H any] struct {
	First   A
	Second  B
	Third   C
	Fourth  D
	Fifth   E
	Sixth   F
	Seventh G
	Eighth  H
}

// Combine2 builds a tuple from two results. It fails fast: only the first
// failure, in argument order, is reported. The other Combine functions
// follow the same rule.
func Combine2[A, B any](
	ra rop.Result[A],
	rb rop.Result[B]) rop.Result[Tuple2[A, B]] {

	if d, failed := rop.FirstFail(ra, rb); failed {
		return rop.ErrDetails[Tuple2[A, B]](d)
	}
	return rop.Ok(Tuple2[A, B]{
		First:  ra.Value(),
		Second: rb.Value(),
	})
}

func Combine3[A, B, C any](
	ra rop.Result[A],
	rb rop.Result[B],
	rc rop.Result[C]) rop.Result[Tuple3[A, B, C]] {

	if d, failed := rop.FirstFail(ra, rb, rc); failed {
		return rop.ErrDetails[Tuple3[A, B, C]](d)
	}
	return rop.Ok(Tuple3[A, B, C]{
		First:  ra.Value(),
		Second: rb.Value(),
		Third:  rc.Value(),
	})
}

func Combine4[A, B, C, D any](
	ra rop.Result[A],
	rb rop.Result[B],
	rc rop.Result[C],
	rd rop.Result[D]) rop.Result[Tuple4[A, B, C, D]] {

	if d, failed := rop.FirstFail(ra, rb, rc, rd); failed {
		return rop.ErrDetails[Tuple4[A, B, C, D]](d)
	}
	return rop.Ok(Tuple4[A, B, C, D]{
		First:  ra.Value(),
		Second: rb.Value(),
		Third:  rc.Value(),
		Fourth: rd.Value(),
	})
}

func Combine5[A, B, C, D, E any](
	ra rop.Result[A],
	rb rop.Result[B],
	rc rop.Result[C],
	rd rop.Result[D],
	re rop.Result[E]) rop.Result[Tuple5[A, B, C, D, E]] {

	if d, failed := rop.FirstFail(ra, rb, rc, rd, re); failed {
		return rop.ErrDetails[Tuple5[A, B, C, D, E]](d)
	}
	return rop.Ok(Tuple5[A, B, C, D, E]{
		First:  ra.Value(),
		Second: rb.Value(),
		Third:  rc.Value(),
		Fourth: rd.Value(),
		Fifth:  re.Value(),
	})
}

func Combine6[A, B, C, D, E, F any](
	ra rop.Result[A],
	rb rop.Result[B],
	rc rop.Result[C],
	rd rop.Result[D],
	re rop.Result[E],
	rf rop.Result[F]) rop.Result[Tuple6[A, B, C, D, E, F]] {

	if d, failed := rop.FirstFail(ra, rb, rc, rd, re, rf); failed {
		return rop.ErrDetails[Tuple6[A, B, C, D, E, F]](d)
	}
	return rop.Ok(Tuple6[A, B, C, D, E, F]{
		First:  ra.Value(),
		Second: rb.Value(),
		Third:  rc.Value(),
		Fourth: rd.Value(),
		Fifth:  re.Value(),
		Sixth:  rf.Value(),
	})
}

func Combine7[A, B, C, D, E, F, G any](
	ra rop.Result[A],
	rb rop.Result[B],
	rc rop.Result[C],
	rd rop.Result[D],
	re rop.Result[E],
	rf rop.Result[F],
	rg rop.Result[G]) rop.Result[Tuple7[A, B, C, D, E, F, G]] {

	if d, failed := rop.FirstFail(ra, rb, rc, rd, re, rf, rg); failed {
		return rop.ErrDetails[Tuple7[A, B, C, D, E, F, G]](d)
	}
	return rop.Ok(Tuple7[A, B, C, D, E, F, G]{
		First:   ra.Value(),
		Second:  rb.Value(),
		Third:   rc.Value(),
		Fourth:  rd.Value(),
		Fifth:   re.Value(),
		Sixth:   rf.Value(),
		Seventh: rg.Value(),
	})
}

func Combine8[A, B, C, D, E, F, G, H any](
	ra rop.Result[A],
	rb rop.Result[B],
	rc rop.Result[C],
	rd rop.Result[D],
	re rop.Result[E],
	rf rop.Result[F],
	rg rop.Result[G],
	rh rop.Result[H]) rop.Result[Tuple8[A, B, C, D, E, F, G, H]] {

	if d, failed := rop.FirstFail(ra, rb, rc, rd, re, rf, rg, rh); failed {
		return rop.ErrDetails[Tuple8[A, B, C, D, E, F, G, H]](d)
	}
	return rop.Ok(Tuple8[A, B, C, D, E, F, G, H]{
		First:   ra.Value(),
		Second:  rb.Value(),
		Third:   rc.Value(),
		Fourth:  rd.Value(),
		Fifth:   re.Value(),
		Sixth:   rf.Value(),
		Seventh: rg.Value(),
		Eighth:  rh.Value(),
	})
}
