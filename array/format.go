package array

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/x448/float16"
)

// Format renders one element for display. Floats use the shortest
// representation that round-trips ("1930.4", "nan"); bytes are shown as
// b'…'; tuples as (a, b).
func Format(v any) string {
	switch x := v.(type) {
	case nil:
		return "None"
	case bool:
		if x {
			return "True"
		}
		return "False"
	case float64:
		return formatFloat(x, 64)
	case float32:
		return formatFloat(float64(x), 32)
	case float16.Float16:
		return formatFloat(float64(x.Float32()), 16)
	case complex128:
		return formatComplex(real(x), imag(x), 64)
	case complex64:
		return formatComplex(float64(real(x)), float64(imag(x)), 32)
	case string:
		return x
	case []byte:
		return "b'" + string(x) + "'"
	case Tuple:
		parts := make([]string, len(x))
		for i, e := range x {
			parts[i] = Format(e)
		}
		return "(" + strings.Join(parts, ", ") + ")"
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprint(v)
	}
}

func formatFloat(f float64, bits int) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	if bits == 16 {
		// half precision carries about 3 significant digits
		return strconv.FormatFloat(f, 'g', 5, 32)
	}
	return strconv.FormatFloat(f, 'g', -1, bits)
}

func formatComplex(re, im float64, bits int) string {
	sign := "+"
	if im < 0 || (im == 0 && math.Signbit(im)) {
		sign = "-"
		im = -im
	}
	return "(" + formatFloat(re, bits) + sign + formatFloat(im, bits) + "j)"
}
