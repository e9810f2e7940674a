package frame

import (
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/katalvlaran/framefixtures/array"
	"github.com/katalvlaran/framefixtures/dtype"
)

// Labels is the read surface shared by Index and IndexHierarchy.
type Labels interface {
	// Len returns the label count.
	Len() int
	// At returns label i; hierarchical labels are array.Tuple values.
	At(i int) any
	// Loc returns the position of label, if present.
	Loc(label any) (int, bool)
	// Constructor returns the container kind.
	Constructor() dtype.Constructor
	// Static reports whether the labels are fixed.
	Static() bool
	// Depth is 1 for a flat index.
	Depth() int
}

type bytesKey string

type tupleKey string

// nanKey stands in for every NaN label so NaN matches itself.
type nanKey struct{}

type complexKey struct{ re, im any }

// keyOf maps a label to a comparable map key. []byte and tuple labels are
// keyed by their contents, and all NaN floats share one key.
func keyOf(v any) any {
	switch x := v.(type) {
	case nil:
		return nil
	case float64:
		if math.IsNaN(x) {
			return nanKey{}
		}
	case float32:
		if math.IsNaN(float64(x)) {
			return nanKey{}
		}
	case complex128:
		if math.IsNaN(real(x)) || math.IsNaN(imag(x)) {
			return complexKey{keyOf(real(x)), keyOf(imag(x))}
		}
	case complex64:
		if math.IsNaN(float64(real(x))) || math.IsNaN(float64(imag(x))) {
			return complexKey{keyOf(float64(real(x))), keyOf(float64(imag(x)))}
		}
	case []byte:
		return bytesKey(x)
	case array.Tuple:
		var b strings.Builder
		for _, e := range x {
			fmt.Fprintf(&b, "%T:%v\x00", e, keyOf(e))
		}
		return tupleKey(b.String())
	}
	if reflect.TypeOf(v).Comparable() {
		return v
	}
	return fmt.Sprintf("%T:%v", v, v)
}

// castTemporal converts a label to a datetime in unit u.
func castTemporal(v any, u dtype.Unit) (dtype.Datetime64, error) {
	switch x := v.(type) {
	case dtype.Datetime64:
		return x.AsUnit(u), nil
	case int64:
		return dtype.Datetime64{Value: x, Unit: u}, nil
	}
	return dtype.Datetime64{}, fmt.Errorf("%w: %v (%T) is not a datetime64[%s]", ErrLabel, v, v, u.Code())
}
