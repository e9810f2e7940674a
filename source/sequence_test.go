package source_test

import (
	"errors"
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/framefixtures/dtype"
	"github.com/katalvlaran/framefixtures/source"
)

// shared is one default-floor source for every pinned-value test.
var shared = source.New()

func take(t *testing.T, dt dtype.DType, n, shift int) []any {
	t.Helper()
	seq, err := shared.ElementSeq(dt, n, shift)
	require.NoError(t, err)
	return source.Take(seq, n)
}

func TestElementSeq_Pinned(t *testing.T) {
	t.Parallel()

	require.Equal(t, []any{int64(34715), int64(-3648), int64(91301), int64(30205), int64(54020)},
		take(t, dtype.Int64, 5, 0))
	require.Equal(t, []any{int64(-101), int64(-64), int64(-91), int64(-3), int64(4), int64(-7)},
		take(t, dtype.Int8, 6, 0))
	require.Equal(t, []any{uint64(178267), uint64(188510), uint64(61878), uint64(194249)},
		take(t, dtype.Uint64, 4, 0))
	require.Equal(t, []any{uint64(91), uint64(94), uint64(182), uint64(201)},
		take(t, dtype.Uint8, 4, 0))
	require.Equal(t, []any{false, true, false, false, true, false},
		take(t, dtype.Bool, 6, 0))
	require.Equal(t, []any{"zMmd", "zRKC", "zaji"}, take(t, dtype.Str, 3, 50))
	require.Equal(t, []any{[]byte("zZbu"), []byte("ztsv")}, take(t, dtype.Bytes, 2, 0))

	floats := take(t, dtype.Float64, 4, 0)
	require.True(t, math.IsNaN(floats[0].(float64)))
	require.Equal(t, []any{694.3, -72.96, 1826.02}, floats[1:])

	cplx := take(t, dtype.Complex128, 3, 0)
	require.True(t, math.IsNaN(real(cplx[0].(complex128))))
	require.Equal(t, -2981.64, imag(cplx[0].(complex128)))
	require.Equal(t, []any{complex(694.3, 3565.34), complex(-72.96, 3770.2)}, cplx[1:])

	require.Equal(t, []any{
		dtype.Timedelta64{Value: 188510, Unit: dtype.UnitDay},
		dtype.Timedelta64{Value: 61878, Unit: dtype.UnitDay},
	}, take(t, dtype.Timedelta(dtype.UnitDay), 2, 101))
}

func TestElementSeq_Object(t *testing.T) {
	t.Parallel()
	want := []any{
		nil, true, false,
		int64(105269), int64(119909), int64(194224),
		-2981.64, 3565.34, 3770.2,
		"zMmd", "zRKC", "zaji",
		int64(172133), -1237.56, "zJnC",
	}
	require.Equal(t, want, take(t, dtype.Object, len(want), 0))
}

func TestElementSeq_ShiftIsRotation(t *testing.T) {
	t.Parallel()
	for _, dt := range []dtype.DType{dtype.Int64, dtype.Uint16, dtype.Bool, dtype.Str, dtype.Object, dtype.Datetime(dtype.UnitSecond)} {
		base := take(t, dt, 80, 0)
		for _, shift := range []int{1, 7, 33} {
			got := take(t, dt, 80-shift, shift)
			assert.Equal(t, base[shift:], got, "%s shift %d", dt, shift)
		}
	}
}

func TestElementSeq_Restartable(t *testing.T) {
	t.Parallel()
	seq, err := shared.ElementSeq(dtype.Int64, 3, 5)
	require.NoError(t, err)
	require.Equal(t, source.Take(seq, 3), source.Take(seq, 3))
}

func TestElementSeq_Errors(t *testing.T) {
	t.Parallel()
	_, err := shared.ElementSeq(dtype.DType{}, 1, 0)
	require.True(t, errors.Is(err, source.ErrNotImplemented))

	_, err = shared.ElementSeq(dtype.Int64, -1, 0)
	require.ErrorIs(t, err, source.ErrBadCount)
	_, err = shared.ElementSeq(dtype.Int64, 1, -1)
	require.ErrorIs(t, err, source.ErrBadCount)
	require.ErrorIs(t, shared.EnsureCapacity(-1), source.ErrBadCount)
}

func TestRotateTakeRepeat(t *testing.T) {
	t.Parallel()
	in := slices.Values([]int{1, 2, 3, 4, 5})
	require.Equal(t, []int{3, 4, 5, 1, 2}, slices.Collect(source.Rotate(in, 2)))
	require.Equal(t, []int{1, 2, 3, 4, 5}, slices.Collect(source.Rotate(in, 0)))
	// A rotation longer than the sequence re-emits the buffer in order.
	require.Equal(t, []int{1, 2, 3, 4, 5}, slices.Collect(source.Rotate(in, 9)))
	require.Equal(t, []int{3, 4}, source.Take(source.Rotate(in, 2), 2))
	require.Nil(t, source.Take(in, 0))

	rep, err := source.RepeatEach(slices.Values([]string{"a", "b"}), 3)
	require.NoError(t, err)
	require.Equal(t, []string{"a", "a", "a", "b", "b", "b"}, slices.Collect(rep))

	for _, k := range []int{0, -2} {
		_, err := source.RepeatEach(in, k)
		require.ErrorIs(t, err, source.ErrBadRepeat)
	}
}
