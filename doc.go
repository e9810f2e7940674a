// Package framefixtures builds reproducible labeled tables from a compact DSL,
// for tests that would otherwise spell out large literal tables.
//
// What is a fixture?
//
//	A DSL string such as
//
//		s(4,6)|i((I,I),(str,int))|c((Is,I),(dts,int))|v(str,bool,object)
//
//	names a shape, row and column labels and column dtypes. Parsing it
//	always yields the same frame: values come from a seeded, grow-only cache
//	whose prefix never changes.
//
// Under the hood the module is split into small packages:
//
//	dtype/    dtype and constructor kinds, the token registry, datetime64/timedelta64
//	array/    immutable typed column arrays and element formatting
//	source/   the deterministic value cache and per-dtype sequences
//	grammar/  DSL lexer, parser and reference tables
//	frame/    TypeBlocks, Index, IndexHierarchy and Frame
//	fixture/  DSL → Frame
//	catalog/  named fixtures in YAML
//
// Quick start:
//
//	f, err := fixture.Parse("s(2,2)|i(I,str)")
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(f.Index().At(0)) // zZbu
//
// The framefixtures command (cmd/framefixtures) renders fixtures as tables.
package framefixtures
