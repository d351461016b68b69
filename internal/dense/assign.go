package dense

// assignTo materializes src into dst: one pass over dst's index range in
// row-major order, each computed coefficient written directly into the
// destination buffer. No intermediate buffer is allocated; aliasing between
// dst and src at the same position is safe because every position is read
// before it is written.
func assignTo[T Scalar](dst MutableExpr[T], src Expr[T]) {
	d, s := mutableOf(dst), nodeOf(src)
	checkSameShape("assign", d, s)
	for i := 0; i < d.Rows(); i++ {
		for j := 0; j < d.Cols(); j++ {
			d.Set(i, j, s.At(i, j))
		}
	}
}

// selfUpdate is the in-place update target behind the compound-assignment
// methods. It binds a mutable destination and a combining function; apply
// rewrites the destination pointwise as dst = op(dst, src) in a single
// pass, never allocating a buffer for the full right-hand side.
//
// Aliasing contract (caller-enforced, not validated): the source must not
// read the destination at a different position than the one currently
// being written. Reading the destination at the same position (a.MulAssign(a))
// is always safe; a transposed or otherwise shifted view of the
// destination as the source yields order-dependent results.
type selfUpdate[T Scalar] struct {
	dst MutableExpr[T]
	op  func(T, T) T
}

func (u selfUpdate[T]) apply(name string, src Expr[T]) {
	s := nodeOf(src)
	checkSameShape(name, u.dst, s)
	for i := 0; i < u.dst.Rows(); i++ {
		for j := 0; j < u.dst.Cols(); j++ {
			u.dst.Set(i, j, u.op(u.dst.At(i, j), s.At(i, j)))
		}
	}
}
