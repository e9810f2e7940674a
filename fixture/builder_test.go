package fixture_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"github.com/x448/float16"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/framefixtures/array"
	"github.com/katalvlaran/framefixtures/dtype"
	"github.com/katalvlaran/framefixtures/fixture"
	"github.com/katalvlaran/framefixtures/frame"
)

func mustParse(t *testing.T, dsl string) *frame.Frame {
	t.Helper()
	f, err := fixture.Parse(dsl)
	require.NoError(t, err)
	return f
}

func columns(f *frame.Frame) [][]any {
	_, cols := f.Shape()
	out := make([][]any, cols)
	for c := range out {
		out[c] = array.Slice(f.Column(c))
	}
	return out
}

func labels(l frame.Labels) []any {
	out := make([]any, l.Len())
	for i := range out {
		out[i] = l.At(i)
	}
	return out
}

func day(v int64) dtype.Datetime64 { return dtype.Datetime64{Value: v, Unit: dtype.UnitDay} }

func sec(v int64) dtype.Datetime64 { return dtype.Datetime64{Value: v, Unit: dtype.UnitSecond} }

func TestParse_Defaults(t *testing.T) {
	t.Parallel()
	f := mustParse(t, "s(2,2)")

	require.Equal(t, dtype.CtorFrame, f.Constructor())
	require.Equal(t, []frame.ColumnPairs{
		{Label: int64(0), Pairs: []frame.Pair{{Label: int64(0), Value: 1930.4}, {Label: int64(1), Value: -1760.34}}},
		{Label: int64(1), Pairs: []frame.Pair{{Label: int64(0), Value: -610.8}, {Label: int64(1), Value: 3243.94}}},
	}, f.Pairs())
	require.Equal(t, []dtype.DType{dtype.Float64, dtype.Float64}, f.DTypes())
}

func TestParse_StrIndex(t *testing.T) {
	t.Parallel()
	f := mustParse(t, "s(2,2)|i(I,str)")
	require.Equal(t, []any{"zZbu", "ztsv"}, labels(f.Index()))
	require.Equal(t, dtype.CtorIndex, f.Index().Constructor())
	require.Equal(t, [][]any{{1930.4, -1760.34}, {-610.8, 3243.94}}, columns(f))
}

func TestParse_Timedelta(t *testing.T) {
	t.Parallel()
	f := mustParse(t, "s(2,2)|v(tdD,tds)")
	require.Equal(t, [][]any{
		{dtype.Timedelta64{Value: 88017, Unit: dtype.UnitDay}, dtype.Timedelta64{Value: 92867, Unit: dtype.UnitDay}},
		{dtype.Timedelta64{Value: 162197, Unit: dtype.UnitSecond}, dtype.Timedelta64{Value: 41157, Unit: dtype.UnitSecond}},
	}, columns(f))
	require.Equal(t, "88017 days", array.Format(f.At(0, 0)))
}

func TestParse_SignedWidths(t *testing.T) {
	t.Parallel()

	f := mustParse(t, "s(2,4)|v(int8,str)|i(ID,dtD)|c(ID,dtD)")
	require.Equal(t, dtype.CtorIndexDate, f.Index().Constructor())
	require.Equal(t, []any{day(34715), day(3648)}, labels(f.Index()))
	require.Equal(t, []any{day(34715), day(3648), day(91301), day(30205)}, labels(f.Columns()))
	require.Equal(t, "2065-01-17", day(34715).String())
	require.Equal(t, "1979-12-28", day(3648).String())
	require.Equal(t, [][]any{
		{int8(47), int8(-61)},
		{"zaji", "zJnC"},
		{int8(-64), int8(-91)},
		{"z2Oo", "z5l6"},
	}, columns(f))
	require.Equal(t, []dtype.DType{dtype.Int8, dtype.Str, dtype.Int8, dtype.Str}, f.DTypes())

	f = mustParse(t, "s(2,4)|v(int16,str)")
	require.Equal(t, [][]any{
		{int16(-22481), int16(27331)},
		{"zaji", "zJnC"},
		{int16(-3648), int16(25765)},
		{"z2Oo", "z5l6"},
	}, columns(f))

	f = mustParse(t, "s(2,4)|v(int32,str)")
	require.Equal(t, [][]any{
		{int32(-88017), int32(92867)},
		{"zaji", "zJnC"},
		{int32(-3648), int32(91301)},
		{"z2Oo", "z5l6"},
	}, columns(f))
}

func TestParse_Uint8Grid(t *testing.T) {
	t.Parallel()
	f := mustParse(t, "s(4,10)|v(uint8,uint8)")

	want := [][]uint8{
		{146, 61, 67, 56},
		{150, 250, 100, 254},
		{94, 182, 201, 87},
		{101, 1, 96, 212},
		{245, 246, 204, 140},
		{67, 56, 73, 245},
		{246, 204, 140, 69},
		{69, 129, 82, 115},
		{202, 228, 94, 190},
		{179, 147, 142, 14},
	}
	for c, w := range want {
		got, ok := array.Values[uint8](f.Column(c))
		require.True(t, ok, "column %d", c)
		require.Equal(t, w, got, "column %d", c)
	}
	// Identical dtypes consolidate into one block.
	require.Len(t, f.Blocks().Blocks(), 1)
}

func TestParse_WideUnsigned(t *testing.T) {
	t.Parallel()

	f := mustParse(t, "s(4,10)|v(uint16,uint16)")
	got, _ := array.Values[uint16](f.Column(0))
	require.Equal(t, []uint16{57746, 3389, 62787, 35128}, got)
	got, _ = array.Values[uint16](f.Column(9))
	require.Equal(t, []uint16{64691, 9619, 910, 8206}, got)

	f = mustParse(t, "s(4,10)|v(uint32,uint32)")
	got32, _ := array.Values[uint32](f.Column(2))
	require.Equal(t, []uint32{188510, 61878, 194249, 32343}, got32)
	got32, _ = array.Values[uint32](f.Column(8))
	require.Equal(t, []uint32{69578, 180708, 143966, 129982}, got32)
}

func TestParse_Floats(t *testing.T) {
	t.Parallel()

	f := mustParse(t, "s(4,3)|v(float16,float16)")
	want16 := [][]float32{
		{1930, -1760, 1857, 1699},
		{-611, 3244, -823, 114.5625},
		{694.5, -72.9375, 1826, 604},
	}
	for c, w := range want16 {
		halves, ok := array.Values[float16.Float16](f.Column(c))
		require.True(t, ok)
		got := make([]float32, len(halves))
		for i, h := range halves {
			got[i] = h.Float32()
		}
		require.Equal(t, w, got, "column %d", c)
	}

	f = mustParse(t, "s(4,3)|v(float32,float32)")
	require.Equal(t, [][]any{
		{float32(1930.4), float32(-1760.34), float32(1857.34), float32(1699.34)},
		{float32(-610.8), float32(3243.94), float32(-823.14), float32(114.58)},
		{float32(694.3), float32(-72.96), float32(1826.02), float32(604.1)},
	}, columns(f))
}

func TestParse_Complex(t *testing.T) {
	t.Parallel()
	f := mustParse(t, "s(2,2)|v(complex)")
	require.Equal(t, [][]any{
		{complex(1930.4, 1901), complex(-1760.34, 3776.36)},
		{complex(-610.8, -2859.36), complex(3243.94, 3740.6)},
	}, columns(f))
}

func TestParse_BytesAndParenthesizedTerm(t *testing.T) {
	t.Parallel()
	f := mustParse(t, "s(4,2)|(v(bytes))")
	require.Equal(t, []dtype.DType{dtype.Bytes, dtype.Bytes}, f.DTypes())
	require.Equal(t, 4, f.DTypes()[0].Width)

	f = mustParse(t, "s(4,2)|(v(uint8))")
	require.Equal(t, []dtype.DType{dtype.Uint8, dtype.Uint8}, f.DTypes())
}

func TestParse_HierarchicalColumns(t *testing.T) {
	t.Parallel()
	f := mustParse(t, "s(2,6)|c(IH,(str,dtD,int,int))")

	cols := f.Columns()
	require.Equal(t, dtype.CtorIndexHierarchy, cols.Constructor())
	require.Equal(t, 4, cols.Depth())

	want := []any{
		array.Tuple{"zZbu", day(105269), int64(58768), int64(-97851)},
		array.Tuple{"zZbu", day(105269), int64(58768), int64(168362)},
		array.Tuple{"zZbu", day(105269), int64(146284), int64(130010)},
		array.Tuple{"zZbu", day(105269), int64(146284), int64(-150573)},
		array.Tuple{"zZbu", day(119909), int64(170440), int64(-157437)},
		array.Tuple{"zZbu", day(119909), int64(170440), int64(35684)},
	}
	if diff := cmp.Diff(want, labels(cols)); diff != "" {
		t.Fatalf("column labels (-want +got):\n%s", diff)
	}
	require.Equal(t, "2258-03-21", day(105269).String())

	// The auto factory picks a date index for the datetime level.
	ih, ok := cols.(*frame.IndexHierarchy)
	require.True(t, ok)
	require.Equal(t, dtype.CtorIndexDate, ih.Level(1).Constructor())
	require.Equal(t, dtype.CtorIndex, ih.Level(2).Constructor())

	require.Equal(t, [][]any{
		{1930.4, -1760.34},
		{-610.8, 3243.94},
		{694.3, -72.96},
		{1080.4, 2580.34},
		{3511.58, 1175.36},
		{1857.34, 1699.34},
	}, columns(f))
}

func TestParse_MixedFrame(t *testing.T) {
	t.Parallel()
	f := mustParse(t, "f(F)|i((I,I),(str,int))|c((Is,I),(dts,int))|v(str,bool,object)|s(4,6)")

	require.Equal(t, []any{
		array.Tuple{"zZbu", int64(105269)},
		array.Tuple{"zZbu", int64(119909)},
		array.Tuple{"ztsv", int64(194224)},
		array.Tuple{"ztsv", int64(172133)},
	}, labels(f.Index()))
	require.Equal(t, []any{
		array.Tuple{sec(34715), int64(105269)},
		array.Tuple{sec(34715), int64(119909)},
		array.Tuple{sec(3648), int64(194224)},
		array.Tuple{sec(3648), int64(172133)},
		array.Tuple{sec(91301), int64(96520)},
		array.Tuple{sec(91301), int64(-88017)},
	}, labels(f.Columns()))
	require.Equal(t, "1970-01-01T09:38:35", sec(34715).String())
	require.Equal(t, "1970-01-02T01:21:41", sec(91301).String())

	require.Equal(t, [][]any{
		{"zjZQ", "zO5l", "zEdH", "zB7E"},
		{false, false, false, false},
		{true, false, int64(105269), int64(119909)},
		{"z2Oo", "z5l6", "zCE3", "zr4u"},
		{true, true, true, false},
		{int64(92867), 3884.98, -646.86, -314.34},
	}, columns(f))

	p, ok := f.Index().Loc(array.Tuple{"ztsv", int64(194224)})
	require.True(t, ok)
	require.Equal(t, 2, p)
	col, ok := f.ColumnByLabel(array.Tuple{sec(3648), int64(172133)})
	require.True(t, ok)
	require.Equal(t, "z2Oo", col.At(0))
}

func TestParse_DatetimeIndexPerUnit(t *testing.T) {
	t.Parallel()
	for _, u := range dtype.Units {
		t.Run(u.Code(), func(t *testing.T) {
			t.Parallel()
			f := mustParse(t, "s(3,2)|i(I"+u.Code()+", dt"+u.Code()+")")
			idx, ok := f.Index().(*frame.Index)
			require.True(t, ok)
			require.Equal(t, "datetime64["+u.Code()+"]", idx.DType().String())
			gotUnit, ok := idx.Constructor().Unit()
			require.True(t, ok)
			require.Equal(t, u, gotUnit)
		})
	}
}

func TestParse_Growable(t *testing.T) {
	t.Parallel()
	f := mustParse(t, "s(2,2)|f(Fg)|c(I,str)|i(IHg,(str,int))")

	require.Equal(t, dtype.CtorFrameGO, f.Constructor())
	require.False(t, f.Columns().Static())
	require.NoError(t, f.AddColumn("extra", array.New(dtype.Int64, []int64{1, 2})))
	_, cols := f.Shape()
	require.Equal(t, 3, cols)

	ih, ok := f.Index().(*frame.IndexHierarchy)
	require.True(t, ok)
	require.Equal(t, dtype.CtorIndexHierarchyGO, ih.Constructor())
	require.NoError(t, ih.Append(array.Tuple{"new", int64(1)}))
	require.Equal(t, 3, ih.Len())
}

func TestParse_FloatIndexNaN(t *testing.T) {
	t.Parallel()
	f := mustParse(t, "s(3,2)|i(I,float)")
	require.True(t, math.IsNaN(f.Index().At(0).(float64)))
	p, ok := f.Index().Loc(math.NaN())
	require.True(t, ok)
	require.Zero(t, p)
}

func TestParse_Empty(t *testing.T) {
	t.Parallel()
	f := mustParse(t, "s(0,0)")
	rows, cols := f.Shape()
	require.Zero(t, rows)
	require.Zero(t, cols)

	for _, dsl := range []string{"s(3,0)", "s(3,0)|v()", "s(3,0)|v(int)"} {
		f = mustParse(t, dsl)
		rows, cols = f.Shape()
		require.Equal(t, 3, rows, dsl)
		require.Zero(t, cols, dsl)
		require.Equal(t, []any{int64(0), int64(1), int64(2)}, labels(f.Index()), dsl)
	}

	f = mustParse(t, "s(3,0)|i(I,str)|c(I,str)")
	rows, cols = f.Shape()
	require.Equal(t, 3, rows)
	require.Zero(t, cols)
	require.Equal(t, []any{"zZbu", "ztsv", "zUvW"}, labels(f.Index()))
	require.Zero(t, f.Columns().Len())

	// Empty i and c components fall back to positional labels.
	f = mustParse(t, "s(3,2)|i()|c()")
	require.Equal(t, []any{int64(0), int64(1), int64(2)}, labels(f.Index()))
	require.Equal(t, []any{int64(0), int64(1)}, labels(f.Columns()))
}

func TestParse_Deterministic(t *testing.T) {
	t.Parallel()
	const dsl = "s(5,7)|i((I,ID),(str,dtD))|c(I,str)|v(object,int,complex,bool,(int,str))"
	a := mustParse(t, dsl)
	b := mustParse(t, dsl)
	require.NotSame(t, a, b)
	require.Equal(t, a.Pairs(), b.Pairs())
	require.Equal(t, a.DTypes(), b.DTypes())
}

func TestParse_Large(t *testing.T) {
	if testing.Short() {
		t.Skip("large fixture")
	}
	t.Parallel()
	f, err := fixture.NewBuilder().Parse("s(200000,4)|i(I,int)|c(I,str)|v(str)")
	require.NoError(t, err)
	rows, cols := f.Shape()
	require.Equal(t, 200000, rows)
	require.Equal(t, 4, cols)
}

func TestParse_HierarchyRepeats(t *testing.T) {
	t.Parallel()
	f := mustParse(t, "s(8,1)|i(IH,(str,str,str))")
	got := labels(f.Index())
	require.Len(t, got, 8)

	level := func(d int) []any {
		out := make([]any, len(got))
		for i, l := range got {
			out[i] = l.(array.Tuple)[d]
		}
		return out
	}
	outer, middle, inner := level(0), level(1), level(2)
	for i := range got {
		require.Equal(t, outer[i/4*4], outer[i], "outer row %d", i)
		require.Equal(t, middle[i/2*2], middle[i], "middle row %d", i)
	}
	require.NotEqual(t, outer[0], outer[4])
	require.NotEqual(t, middle[0], middle[2])
	// The innermost level is not repeated; levels use distinct shifts.
	require.Equal(t, "zZbu", outer[0])
	require.Equal(t, "ztsv", outer[4])
	require.NotEqual(t, inner[0], inner[1])
	require.NotEqual(t, outer[0], middle[0])
}

func TestParse_Concurrent(t *testing.T) {
	t.Parallel()
	b := fixture.NewBuilder()
	const dsl = "s(6,3)|i(I,str)|c(IH,(int,dtD))|v(int8,object)"
	want, err := b.Parse(dsl)
	require.NoError(t, err)

	var g errgroup.Group
	for range 16 {
		g.Go(func() error {
			f, err := b.Parse(dsl)
			if err != nil {
				return err
			}
			if !cmp.Equal(want.Pairs(), f.Pairs()) {
				return fmt.Errorf("fixture differs: %s", cmp.Diff(want.Pairs(), f.Pairs()))
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}
