// Package grammar parses fixture DSL strings.
//
// A DSL string is a '|'-separated chain of one-letter components, each
// with a parenthesized argument list:
//
//	f(F)|i((I,I),(str,int))|c((Is,I),(dts,int))|v(str,bool,object)|s(4,6)
//
//	f  frame constructor    0 or 1 argument
//	i  row index            0 or 2 arguments (constructor, dtype)
//	c  column index         0 or 2 arguments (constructor, dtype)
//	v  value dtypes         any number
//	s  shape (rows, cols)   exactly 2 integers, required
//
// An argument is a bare token, an integer, float or quoted string literal,
// or a parenthesized tuple of bare tokens. Parse returns purely syntactic
// Components; resolving tokens to dtypes and constructors is left to the
// dtype registry. Every failure wraps ErrSyntax. A component letter may
// appear at most once.
package grammar
