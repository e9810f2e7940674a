// Package dtype is the type-token registry of framefixtures.
//
// A fixture DSL refers to two disjoint families of short tokens:
//
//   - dtype tokens name the element type of a generated array:
//     int, str, bytes, float, bool, complex, object, the fixed-width
//     numeric variants (int8 … uint64, float16 … complex128) and one
//     dt<unit> / td<unit> token per time unit (Y M D h m s ms us ns).
//   - constructor tokens name the container that receives the generated
//     values: F, Fg, I, Ig, IH, IHg, the temporal indices IY … Ins and
//     their growable "g" variants, plus TB and IACF.
//
// Both families are closed enums (Kind, Unit, Constructor) decoupled from
// any concrete table implementation. Registry merges the two token maps and
// resolves a token into a Specifier:
//
//	reg := dtype.DefaultRegistry()
//	spec, err := reg.Lookup("dtD")
//	if errors.Is(err, dtype.ErrUnknownSpecifier) { … }
//	spec.DType() // datetime64[D]
//
// The package also carries the two temporal scalar types, Datetime64 and
// Timedelta64, which count units from the Unix epoch.
package dtype
