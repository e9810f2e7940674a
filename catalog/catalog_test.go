package catalog_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/framefixtures/catalog"
	"github.com/katalvlaran/framefixtures/fixture"
	"github.com/katalvlaran/framefixtures/grammar"
	"github.com/katalvlaran/framefixtures/source"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

const doc = `
version: 1
fixtures:
  - name: plain
    dsl: "s(2,2)"
  - name: labeled
    dsl: "s(2,2)|i(I,str)"
    description: string index
`

func TestDecode(t *testing.T) {
	t.Parallel()
	c, err := catalog.Decode([]byte(doc))
	require.NoError(t, err)
	require.Equal(t, 1, c.Version)
	require.Equal(t, []string{"plain", "labeled"}, c.Names())
	require.Equal(t, 2, c.Len())

	e, err := c.Lookup("labeled")
	require.NoError(t, err)
	require.Equal(t, catalog.Entry{Name: "labeled", DSL: "s(2,2)|i(I,str)", Description: "string index"}, e)

	_, err = c.Lookup("missing")
	require.ErrorIs(t, err, catalog.ErrNotFound)
}

func TestDecode_Invalid(t *testing.T) {
	t.Parallel()
	for name, body := range map[string]string{
		"unknown field": "version: 1\nfixtures:\n  - name: a\n    dsl: s(1,1)\n    extra: 1\n",
		"no name":       "fixtures:\n  - dsl: s(1,1)\n",
		"no dsl":        "fixtures:\n  - name: a\n",
		"duplicate":     "fixtures:\n  - name: a\n    dsl: s(1,1)\n  - name: a\n    dsl: s(2,2)\n",
		"not yaml":      "fixtures: [",
	} {
		_, err := catalog.Decode([]byte(body))
		require.ErrorIs(t, err, catalog.ErrCatalog, name)
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "fixtures.yaml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	c, err := catalog.Load(path)
	require.NoError(t, err)
	require.Equal(t, 2, c.Len())

	_, err = catalog.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestBuild(t *testing.T) {
	t.Parallel()
	c, err := catalog.Decode([]byte(doc))
	require.NoError(t, err)

	f, err := c.Build("labeled", catalog.WithBuilder(fixture.NewBuilder()))
	require.NoError(t, err)
	require.Equal(t, "zZbu", f.Index().At(0))

	_, err = c.Build("missing")
	require.ErrorIs(t, err, catalog.ErrNotFound)
}

func TestBuildAll_Builtin(t *testing.T) {
	t.Parallel()
	c, err := catalog.Builtin()
	require.NoError(t, err)
	require.Contains(t, c.Names(), "frame_a")

	core, logs := observer.New(zap.DebugLevel)
	built, err := c.BuildAll(context.Background(),
		catalog.WithLogger(zap.New(core)),
		catalog.WithConcurrency(2),
	)
	require.NoError(t, err)
	require.Len(t, built, c.Len())
	for i, b := range built {
		require.Equal(t, c.Fixtures[i].Name, b.Entry.Name)
		require.NotNil(t, b.Frame)
	}
	require.Equal(t, c.Len(), logs.FilterMessage("catalog fixture built").Len())

	rows, cols := built[5].Frame.Shape()
	require.Equal(t, "frame_a", built[5].Entry.Name)
	require.Equal(t, 4, rows)
	require.Equal(t, 6, cols)
}

func TestBuildAll_FailsFast(t *testing.T) {
	t.Parallel()
	c, err := catalog.Decode([]byte("fixtures:\n  - name: ok\n    dsl: s(1,1)\n  - name: bad\n    dsl: s(1\n"))
	require.NoError(t, err)

	b := fixture.NewBuilder(fixture.WithSource(source.New()))
	built, err := c.BuildAll(context.Background(), catalog.WithBuilder(b))
	require.ErrorIs(t, err, grammar.ErrSyntax)
	require.Contains(t, err.Error(), `fixture "bad"`)
	require.Nil(t, built)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = c.BuildAll(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestOptions_Panic(t *testing.T) {
	t.Parallel()
	require.Panics(t, func() { catalog.WithBuilder(nil) })
	require.Panics(t, func() { catalog.WithLogger(nil) })
	require.Panics(t, func() { catalog.WithConcurrency(0) })
}
