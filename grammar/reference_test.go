package grammar_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/framefixtures/dtype"
	"github.com/katalvlaran/framefixtures/grammar"
)

func TestComponentDocs(t *testing.T) {
	t.Parallel()
	docs := grammar.ComponentDocs()
	require.Len(t, docs, 5)

	bySymbol := make(map[grammar.Letter]grammar.ComponentDoc)
	for _, d := range docs {
		bySymbol[d.Symbol] = d
	}
	require.True(t, bySymbol[grammar.Shape].Required)
	require.Equal(t, "2", bySymbol[grammar.Shape].Arguments)
	require.Equal(t, "(int, int)", bySymbol[grammar.Shape].Signature)
	require.False(t, bySymbol[grammar.Frame].Required)
	require.Equal(t, "1", bySymbol[grammar.Frame].Arguments)
	require.Equal(t, "unbound", bySymbol[grammar.Values].Arguments)
	require.Equal(t, "Columns", bySymbol[grammar.Columns].Component)
}

func TestSpecifierDocs(t *testing.T) {
	t.Parallel()
	reg := dtype.NewRegistry()

	ctors := grammar.ConstructorDocs(reg)
	require.Len(t, ctors, len(reg.Constructors())-1)
	require.Equal(t, grammar.SpecifierDoc{Symbol: "F", Class: "Frame"}, ctors[0])
	for _, d := range ctors {
		require.NotEqual(t, "TB", d.Symbol)
	}

	dts := grammar.DTypeDocs(reg)
	require.Equal(t, grammar.SpecifierDoc{Symbol: "dtY", Class: "datetime64[Y]"}, dts[0])
	require.Contains(t, dts, grammar.SpecifierDoc{Symbol: "bytes", Class: "|S4"})
}
