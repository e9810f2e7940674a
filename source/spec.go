package source

import (
	"strings"

	"github.com/katalvlaran/framefixtures/dtype"
)

// Spec is what MaterializeSpec draws: one dtype, or a tuple of dtypes whose
// elements are zipped into array.Tuple values.
type Spec struct {
	dts   []dtype.DType
	tuple bool
}

// SpecOf wraps a single dtype.
func SpecOf(dt dtype.DType) Spec {
	return Spec{dts: []dtype.DType{dt}}
}

// TupleSpec builds a tuple spec. A one-element tuple still yields tuples.
func TupleSpec(dts ...dtype.DType) Spec {
	return Spec{dts: append([]dtype.DType(nil), dts...), tuple: true}
}

// IsTuple reports whether s produces tuple elements.
func (s Spec) IsTuple() bool { return s.tuple }

// DType is the dtype of the materialized array: object for tuples.
func (s Spec) DType() dtype.DType {
	if s.tuple || len(s.dts) == 0 {
		return dtype.Object
	}
	return s.dts[0]
}

// DTypes returns a copy of the slot dtypes.
func (s Spec) DTypes() []dtype.DType { return append([]dtype.DType(nil), s.dts...) }

// Len is the slot count (1 for a plain spec).
func (s Spec) Len() int { return len(s.dts) }

// String renders "int64" or "(int64,<U4)".
func (s Spec) String() string {
	if !s.tuple {
		return s.DType().String()
	}
	parts := make([]string, len(s.dts))
	for i, d := range s.dts {
		parts[i] = d.String()
	}
	if len(parts) == 1 {
		return "(" + parts[0] + ",)"
	}
	return "(" + strings.Join(parts, ",") + ")"
}
