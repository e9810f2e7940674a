// SPDX-License-Identifier: MIT
// Package: framefixtures/source
//
// sequence.go — per-kind element sequences over the cache.
//
// Contract:
//   • Every sequence is restartable: each range starts from the first value.
//   • Sequences read one snapshot, so a concurrent growth never changes the
//     values of a sequence already handed out.
//   • ElementSeq(dt, count, s) equals ElementSeq(dt, count, 0) rotated left by s.

package source

import (
	"fmt"
	"iter"
	"math"

	"github.com/katalvlaran/framefixtures/dtype"
)

// Offsets of the derived streams.
const (
	uintOffset      = 100
	objectIntShift  = 10
	objectFltShift  = 100
	objectStrShift  = 50
	complexImgShift = 100
)

// ElementSeq returns the value sequence for dt with at least count values
// backed by the cache, rotated left by shift.
//
// Yielded Go types per kind: int64 (wrapped to dt.Bits), uint64, float64,
// complex128, bool, string, []byte, dtype.Datetime64, dtype.Timedelta64,
// and a mix of nil/bool/int64/float64/string for object.
func (s *Source) ElementSeq(dt dtype.DType, count, shift int) (iter.Seq[any], error) {
	if count < 0 || shift < 0 {
		return nil, fmt.Errorf("ElementSeq(%s, count=%d, shift=%d): %w", dt, count, shift, ErrBadCount)
	}
	seq, err := s.baseSeq(dt)
	if err != nil {
		return nil, err
	}
	if err := s.EnsureCapacity(count); err != nil {
		return nil, err
	}
	snap := s.snapshot()
	return Rotate(seq(snap), shift), nil
}

// baseSeq picks the unshifted generator for dt without touching the cache.
func (s *Source) baseSeq(dt dtype.DType) (func(snapshot) iter.Seq[any], error) {
	switch dt.Kind {
	case dtype.KindInt:
		bits := dt.Bits
		return func(sn snapshot) iter.Seq[any] { return signedSeq(sn, bits) }, nil
	case dtype.KindUint:
		bits := dt.Bits
		return func(sn snapshot) iter.Seq[any] { return unsignedSeq(sn, bits) }, nil
	case dtype.KindFloat:
		return floatSeq, nil
	case dtype.KindComplex:
		return complexSeq, nil
	case dtype.KindBool:
		return boolSeq, nil
	case dtype.KindStr:
		return strSeq, nil
	case dtype.KindBytes:
		return bytesSeq, nil
	case dtype.KindDatetime:
		u := dt.Unit
		return func(sn snapshot) iter.Seq[any] {
			return mapInts(sn, func(v int64) any { return dtype.Datetime64{Value: v, Unit: u} })
		}, nil
	case dtype.KindTimedelta:
		u := dt.Unit
		return func(sn snapshot) iter.Seq[any] {
			return mapInts(sn, func(v int64) any { return dtype.Timedelta64{Value: v, Unit: u} })
		}, nil
	case dtype.KindObject:
		return objectSeq, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrNotImplemented, dt)
}

func mapInts(sn snapshot, f func(int64) any) iter.Seq[any] {
	return func(yield func(any) bool) {
		for _, v := range sn.ints {
			if !yield(f(v)) {
				return
			}
		}
	}
}

func wrapSigned(v int64, bits int) int64 {
	switch bits {
	case 8:
		return int64(int8(v))
	case 16:
		return int64(int16(v))
	case 32:
		return int64(int32(v))
	}
	return v
}

func wrapUnsigned(v int64, bits int) uint64 {
	switch bits {
	case 8:
		return uint64(uint8(v))
	case 16:
		return uint64(uint16(v))
	case 32:
		return uint64(uint32(v))
	}
	return uint64(v)
}

// signedSeq casts to width first and negates multiples of three after, so
// the negation wraps within the width.
func signedSeq(sn snapshot, bits int) iter.Seq[any] {
	return mapInts(sn, func(v int64) any {
		w := wrapSigned(v, bits)
		if v%3 == 0 {
			w = wrapSigned(-w, bits)
		}
		return w
	})
}

func unsignedSeq(sn snapshot, bits int) iter.Seq[any] {
	var raw iter.Seq[int64] = func(yield func(int64) bool) {
		for _, v := range sn.ints {
			if !yield(v) {
				return
			}
		}
	}
	return func(yield func(any) bool) {
		for v := range Rotate(raw, uintOffset) {
			if !yield(wrapUnsigned(v, bits)) {
				return
			}
		}
	}
}

// scaleFloat maps v to ±0.02·v rounded at the twelfth decimal.
func scaleFloat(v int64) float64 {
	f := float64(v) * 0.02
	if v%3 == 0 {
		f = float64(v) * -0.02
	}
	return math.RoundToEven(f*1e12) / 1e12
}

func floatSeq(sn snapshot) iter.Seq[any] {
	return func(yield func(any) bool) {
		if !yield(math.NaN()) {
			return
		}
		for _, v := range sn.ints {
			if !yield(scaleFloat(v)) {
				return
			}
		}
	}
}

func complexSeq(sn snapshot) iter.Seq[any] {
	return func(yield func(any) bool) {
		nextImag, stop := iter.Pull(Rotate(floatSeq(sn), complexImgShift))
		defer stop()
		for re := range floatSeq(sn) {
			im, ok := nextImag()
			if !ok {
				return
			}
			if !yield(complex(re.(float64), im.(float64))) {
				return
			}
		}
	}
}

func boolSeq(sn snapshot) iter.Seq[any] {
	return mapInts(sn, func(v int64) any { return v%2 == 0 })
}

func strSeq(sn snapshot) iter.Seq[any] {
	return func(yield func(any) bool) {
		for _, l := range sn.labels {
			if !yield(l) {
				return
			}
		}
	}
}

func bytesSeq(sn snapshot) iter.Seq[any] {
	return func(yield func(any) bool) {
		for i := range sn.labels {
			if !yield(sn.label(i)) {
				return
			}
		}
	}
}

// objectSeq leads with nil, true, false; then, for each cached i, draws
// (i%3)+1 values from each of the int, float and str streams in turn.
func objectSeq(sn snapshot) iter.Seq[any] {
	return func(yield func(any) bool) {
		for _, v := range []any{nil, true, false} {
			if !yield(v) {
				return
			}
		}
		streams := []iter.Seq[any]{
			Rotate(signedSeq(sn, 64), objectIntShift),
			Rotate(floatSeq(sn), objectFltShift),
			Rotate(strSeq(sn), objectStrShift),
		}
		pulls := make([]func() (any, bool), len(streams))
		for i, st := range streams {
			next, stop := iter.Pull(st)
			defer stop()
			pulls[i] = next
		}
		for _, i := range sn.ints {
			burst := int(i%3) + 1
			for _, next := range pulls {
				for range burst {
					v, ok := next()
					if !ok || !yield(v) {
						return
					}
				}
			}
		}
	}
}
