package source_test

import (
	"context"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"github.com/x448/float16"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/framefixtures/array"
	"github.com/katalvlaran/framefixtures/dtype"
	"github.com/katalvlaran/framefixtures/source"
)

func TestMaterialize_Typed(t *testing.T) {
	t.Parallel()

	a, err := shared.Materialize(dtype.Int8, 6, 0)
	require.NoError(t, err)
	require.Equal(t, dtype.Int8, a.DType())
	got, ok := array.Values[int8](a)
	require.True(t, ok)
	require.Equal(t, []int8{-101, -64, -91, -3, 4, -7}, got)

	a, err = shared.Materialize(dtype.Float16, 4, 1)
	require.NoError(t, err)
	halves, ok := array.Values[float16.Float16](a)
	require.True(t, ok)
	f32 := make([]float32, len(halves))
	for i, h := range halves {
		f32[i] = h.Float32()
	}
	require.Equal(t, []float32{694.5, -72.9375, 1826, 604}, f32)

	a, err = shared.Materialize(dtype.Float32, 2, 1)
	require.NoError(t, err)
	require.Equal(t, []any{float32(694.3), float32(-72.96)}, array.Slice(a))

	a, err = shared.Materialize(dtype.Bytes, 3, 50)
	require.NoError(t, err)
	require.Equal(t, dtype.Bytes, a.DType())
	require.Equal(t, []any{[]byte("zMmd"), []byte("zRKC"), []byte("zaji")}, array.Slice(a))

	a, err = shared.Materialize(dtype.Datetime(dtype.UnitDay), 2, 0)
	require.NoError(t, err)
	require.Equal(t, "datetime64[D]", a.DType().String())
	require.Equal(t, dtype.Datetime64{Value: 34715, Unit: dtype.UnitDay}, a.At(0))

	a, err = shared.Materialize(dtype.Float64, 0, 0)
	require.NoError(t, err)
	require.Zero(t, a.Len())
}

func TestMaterialize_BytesAreCopies(t *testing.T) {
	t.Parallel()
	a, err := shared.Materialize(dtype.Bytes, 2, 0)
	require.NoError(t, err)
	b := a.At(0).([]byte)
	b[0] = '!'

	again, err := shared.Materialize(dtype.Bytes, 2, 0)
	require.NoError(t, err)
	require.Equal(t, []byte("zZbu"), again.At(0))
}

func TestMaterializeSpec_Tuple(t *testing.T) {
	t.Parallel()
	spec := source.TupleSpec(dtype.Int64, dtype.Str)
	require.Equal(t, "(int64,<U4)", spec.String())
	require.Equal(t, dtype.Object, spec.DType())

	a, err := shared.MaterializeSpec(spec, 3, 101)
	require.NoError(t, err)
	want := []any{
		array.Tuple{int64(188510), "zlm0"},
		array.Tuple{int64(-61878), "zDIP"},
		array.Tuple{int64(194249), "zOgj"},
	}
	if diff := cmp.Diff(want, array.Slice(a)); diff != "" {
		t.Fatalf("tuple labels mismatch (-want +got):\n%s", diff)
	}

	b, err := shared.MaterializeSpec(spec, 3, 101)
	require.NoError(t, err)
	require.Same(t, a, b)

	one, err := shared.MaterializeSpec(source.TupleSpec(dtype.Bool), 2, 0)
	require.NoError(t, err)
	require.Equal(t, []any{array.Tuple{false}, array.Tuple{true}}, array.Slice(one))
}

func TestMaterializeSpec_Complex64NaN(t *testing.T) {
	t.Parallel()
	a, err := shared.MaterializeSpec(source.SpecOf(dtype.Complex64), 2, 0)
	require.NoError(t, err)
	c := a.At(0).(complex64)
	require.True(t, math.IsNaN(float64(real(c))))
	require.Equal(t, complex64(complex(694.3, 3565.34)), a.At(1))
}

func TestCast(t *testing.T) {
	t.Parallel()
	v, err := source.Cast(int64(-5), dtype.Int16)
	require.NoError(t, err)
	require.Equal(t, int16(-5), v)

	_, err = source.Cast(int64(300), dtype.Int8)
	require.ErrorIs(t, err, source.ErrCast)
	_, err = source.Cast("zZbu", dtype.Float64)
	require.ErrorIs(t, err, source.ErrCast)
	_, err = source.Cast(dtype.Timedelta64{Value: 1, Unit: dtype.UnitSecond}, dtype.Timedelta(dtype.UnitDay))
	require.ErrorIs(t, err, source.ErrCast)

	v, err = source.Cast(dtype.Datetime64{Value: 86400, Unit: dtype.UnitSecond}, dtype.Datetime(dtype.UnitDay))
	require.NoError(t, err)
	require.Equal(t, dtype.Datetime64{Value: 1, Unit: dtype.UnitDay}, v)

	_, err = source.Cast(1, dtype.DType{Kind: dtype.KindInt, Bits: 12})
	require.ErrorIs(t, err, source.ErrNotImplemented)
}

func TestSource_ConcurrentMaterialize(t *testing.T) {
	t.Parallel()
	spec := source.TupleSpec(dtype.Int64, dtype.Str)

	baseline := source.New(source.WithFloor(64))
	want := make([][]any, 5)
	for shift := range want {
		a, err := baseline.MaterializeSpec(spec, 500, shift)
		require.NoError(t, err)
		want[shift] = array.Slice(a)
	}

	s := source.New(source.WithFloor(64))
	g, _ := errgroup.WithContext(context.Background())
	got := make([][]any, 32)
	for i := range got {
		g.Go(func() error {
			a, err := s.MaterializeSpec(spec, 500, i%5)
			if err != nil {
				return err
			}
			got[i] = array.Slice(a)
			return nil
		})
	}
	require.NoError(t, g.Wait())
	for i, row := range got {
		require.Equal(t, want[i%5], row, "goroutine %d", i)
	}
	require.Equal(t, 1000, s.Capacity())
}
