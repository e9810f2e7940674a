// Package fixture builds frame.Frame fixtures from a compact DSL.
//
// A DSL is a pipe-joined list of components:
//
//	s(rows,cols)        shape, required
//	v(dtype, ...)       column dtypes, cycled across columns (default float)
//	i(ctor, dtype)      row labels
//	c(ctor, dtype)      column labels
//	f(ctor)             frame kind (default F)
//
// Index and column components take either a single constructor and dtype,
// or tuples of them for a hierarchical index:
//
//	f, err := fixture.Parse("s(4,6)|i((I,I),(str,int))|c(IH,(dts,int))|v(str,bool,object)")
//
// Values come from a source.Source, so the same DSL always builds the same
// frame. Failures keep the sentinel of the package that raised them, so
// errors.Is(err, ErrConfig) and errors.Is(err, grammar.ErrSyntax) both work.
package fixture
