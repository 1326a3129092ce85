// Package graphblas is the masked operation engine of gblas: bulk, semiring-
// parameterized transforms over sparse.Vector and sparse.Matrix backends.
//
// Call shape:
//
//	Op(out, mask, accum, operator, inputs..., replace)
//
// Every operation follows the same three stages:
//
//  1. Validate: shapes of out, mask and every input are checked first. A
//     mismatch returns sparse.ErrDimensionMismatch and nothing is written.
//  2. Compute: the candidate result T is computed over the whole domain from
//     the inputs. Implied (absent) values are never materialized; they are
//     skipped, which is how min-plus treats a missing edge as +∞.
//  3. Write: T is merged into the previous content C of out and published with
//     a single Build. For every position i:
//
//	Z = accum valid ? union(C, T) with accum on overlap : T
//	mask selects i → out[i] = Z[i] (absent if Z has no value at i)
//	otherwise      → out[i] cleared if replace, else left unchanged
//
// Because stages 2 and 3 read only a snapshot, out may alias any input or the
// mask: VxM(path, nil, Min, MinPlus, path, graph, false) is legal.
//
// Masks:
//
//	A nil mask selects every position. ValueMask selects positions that are
//	present and differ from the zero value of their type (present-and-true for
//	bool); StructureMask selects present positions; Complement inverts either.
//
// Accumulate:
//
//	The zero algebra.BinaryOp (algebra.NoAccumulate) means overwrite.
//
// Errors:
//
//   - sparse.ErrDimensionMismatch for any shape disagreement.
//   - Errors returned by a UnaryOp abort the call; out stays untouched.
package graphblas
