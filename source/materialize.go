package source

import (
	"fmt"
	"iter"
	"math"
	"strconv"

	"github.com/x448/float16"

	"github.com/katalvlaran/framefixtures/array"
	"github.com/katalvlaran/framefixtures/dtype"
)

// toFloat16 rounds f to the nearest half-precision value, ties to even.
// The float32 step rounds to odd so the second rounding sees the sticky bit
// and the result matches a single rounding of f.
func toFloat16(f float64) float16.Float16 {
	f32 := float32(f)
	if g := float64(f32); g != f && !math.IsNaN(f) {
		if math.Abs(g) > math.Abs(f) {
			f32 = math.Nextafter32(f32, 0)
		}
		f32 = math.Float32frombits(math.Float32bits(f32) | 1)
	}
	return float16.Fromfloat32(f32)
}

type signed interface {
	~int8 | ~int16 | ~int32 | ~int64
}

type unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// codec packs generated values into the Go representation of one dtype.
type codec struct {
	pack func(seq iter.Seq[any], count int) (array.Array, error)
	cast func(v any) (any, error)
}

func codecOf[T any](dt dtype.DType, cast func(any) (T, error)) codec {
	return codec{
		pack: func(seq iter.Seq[any], count int) (array.Array, error) {
			return packAs(dt, seq, count, cast)
		},
		cast: func(v any) (any, error) {
			t, err := cast(v)
			if err != nil {
				return nil, err
			}
			return t, nil
		},
	}
}

func castError(v any, dt dtype.DType) error {
	return fmt.Errorf("%w: %v (%T) to %s", ErrCast, v, v, dt)
}

func castSigned[T signed](dt dtype.DType) func(any) (T, error) {
	return func(v any) (T, error) {
		i, ok := v.(int64)
		if !ok || int64(T(i)) != i {
			return 0, castError(v, dt)
		}
		return T(i), nil
	}
}

func castUnsigned[T unsigned](dt dtype.DType) func(any) (T, error) {
	return func(v any) (T, error) {
		u, ok := v.(uint64)
		if !ok || uint64(T(u)) != u {
			return 0, castError(v, dt)
		}
		return T(u), nil
	}
}

func castExact[T any](dt dtype.DType) func(any) (T, error) {
	return func(v any) (T, error) {
		t, ok := v.(T)
		if !ok {
			var zero T
			return zero, castError(v, dt)
		}
		return t, nil
	}
}

// codecFor resolves the packing rule for dt.
func codecFor(dt dtype.DType) (codec, error) {
	switch dt.Kind {
	case dtype.KindInt:
		switch dt.Bits {
		case 8:
			return codecOf(dt, castSigned[int8](dt)), nil
		case 16:
			return codecOf(dt, castSigned[int16](dt)), nil
		case 32:
			return codecOf(dt, castSigned[int32](dt)), nil
		case 64:
			return codecOf(dt, castSigned[int64](dt)), nil
		}
	case dtype.KindUint:
		switch dt.Bits {
		case 8:
			return codecOf(dt, castUnsigned[uint8](dt)), nil
		case 16:
			return codecOf(dt, castUnsigned[uint16](dt)), nil
		case 32:
			return codecOf(dt, castUnsigned[uint32](dt)), nil
		case 64:
			return codecOf(dt, castUnsigned[uint64](dt)), nil
		}
	case dtype.KindFloat:
		f64 := castExact[float64](dt)
		switch dt.Bits {
		case 16:
			return codecOf(dt, func(v any) (float16.Float16, error) {
				f, err := f64(v)
				return toFloat16(f), err
			}), nil
		case 32:
			return codecOf(dt, func(v any) (float32, error) {
				f, err := f64(v)
				return float32(f), err
			}), nil
		case 64:
			return codecOf(dt, f64), nil
		}
	case dtype.KindComplex:
		c128 := castExact[complex128](dt)
		switch dt.Bits {
		case 64:
			return codecOf(dt, func(v any) (complex64, error) {
				c, err := c128(v)
				return complex64(c), err
			}), nil
		case 128:
			return codecOf(dt, c128), nil
		}
	case dtype.KindBool:
		return codecOf(dt, castExact[bool](dt)), nil
	case dtype.KindStr:
		return codecOf(dt, castExact[string](dt)), nil
	case dtype.KindBytes:
		raw := castExact[[]byte](dt)
		return codecOf(dt, func(v any) ([]byte, error) {
			b, err := raw(v)
			if err != nil {
				return nil, err
			}
			return append([]byte(nil), b...), nil
		}), nil
	case dtype.KindDatetime:
		return codecOf(dt, func(v any) (dtype.Datetime64, error) {
			switch d := v.(type) {
			case dtype.Datetime64:
				return d.AsUnit(dt.Unit), nil
			case int64:
				return dtype.Datetime64{Value: d, Unit: dt.Unit}, nil
			}
			return dtype.Datetime64{}, castError(v, dt)
		}), nil
	case dtype.KindTimedelta:
		return codecOf(dt, func(v any) (dtype.Timedelta64, error) {
			switch d := v.(type) {
			case dtype.Timedelta64:
				if d.Unit == dt.Unit {
					return d, nil
				}
			case int64:
				return dtype.Timedelta64{Value: d, Unit: dt.Unit}, nil
			}
			return dtype.Timedelta64{}, castError(v, dt)
		}), nil
	case dtype.KindObject:
		return codecOf(dt, func(v any) (any, error) { return v, nil }), nil
	}
	return codec{}, fmt.Errorf("%w: %s", ErrNotImplemented, dt)
}

// packAs draws exactly count values, casting each, and stops at the first
// value that does not fit.
func packAs[T any](dt dtype.DType, seq iter.Seq[any], count int, cast func(any) (T, error)) (array.Array, error) {
	out := make([]T, 0, count)
	if count > 0 {
		for v := range seq {
			t, err := cast(v)
			if err != nil {
				return nil, fmt.Errorf("pack %s at %d: %w", dt, len(out), err)
			}
			out = append(out, t)
			if len(out) == count {
				break
			}
		}
	}
	if len(out) < count {
		return nil, fmt.Errorf("pack %s: drew %d of %d: %w", dt, len(out), count, ErrShortSequence)
	}
	return array.New(dt, out), nil
}

// Cast converts one value to the Go representation of dt, using the same
// rules as Materialize.
func Cast(v any, dt dtype.DType) (any, error) {
	c, err := codecFor(dt)
	if err != nil {
		return nil, err
	}
	return c.cast(v)
}

// Materialize draws count values of dt at shift and packs them into an
// immutable array.
func (s *Source) Materialize(dt dtype.DType, count, shift int) (array.Array, error) {
	c, err := codecFor(dt)
	if err != nil {
		return nil, err
	}
	seq, err := s.ElementSeq(dt, count, shift)
	if err != nil {
		return nil, err
	}
	return c.pack(seq, count)
}

// MaterializeSpec is Materialize for a Spec. Tuple specs yield an object
// array of array.Tuple, each slot drawn from its own sequence at the same
// shift. Results are memoized by (spec, count, shift).
func (s *Source) MaterializeSpec(spec Spec, count, shift int) (array.Array, error) {
	if spec.Len() == 0 {
		return nil, fmt.Errorf("MaterializeSpec: empty spec: %w", ErrNotImplemented)
	}
	key := spec.String() + "|" + strconv.Itoa(count) + "|" + strconv.Itoa(shift)
	return s.memo.get(key, func() (array.Array, error) {
		if !spec.IsTuple() {
			return s.Materialize(spec.DType(), count, shift)
		}
		return s.materializeTuple(spec, count, shift)
	})
}

func (s *Source) materializeTuple(spec Spec, count, shift int) (array.Array, error) {
	dts := spec.DTypes()
	casts := make([]func(any) (any, error), len(dts))
	pulls := make([]func() (any, bool), len(dts))
	for i, dt := range dts {
		c, err := codecFor(dt)
		if err != nil {
			return nil, err
		}
		seq, err := s.ElementSeq(dt, count, shift)
		if err != nil {
			return nil, err
		}
		next, stop := iter.Pull(seq)
		defer stop()
		casts[i], pulls[i] = c.cast, next
	}

	out := make([]any, count)
	for row := range out {
		t := make(array.Tuple, len(dts))
		for i, next := range pulls {
			v, ok := next()
			if !ok {
				return nil, fmt.Errorf("pack %s: drew %d of %d: %w", spec, row, count, ErrShortSequence)
			}
			cv, err := casts[i](v)
			if err != nil {
				return nil, fmt.Errorf("pack %s slot %d: %w", spec, i, err)
			}
			t[i] = cv
		}
		out[row] = t
	}
	return array.New(dtype.Object, out), nil
}
