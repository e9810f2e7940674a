// SPDX-License-Identifier: MIT
// Package: framefixtures/dtype
//
// registry.go — token → Specifier lookup.
//
// Contract:
//   • Two sub-maps (constructor tokens, dtype tokens) are merged into one
//     lookup; NewRegistry panics if they share a key.
//   • Registration order is preserved for error messages and doc tables.
//   • A Registry is immutable after construction and safe for concurrent use.

package dtype

import (
	"fmt"
	"strings"
	"sync"
	"unicode"
)

// Specifier is the resolved meaning of one token: either a Constructor or a
// DType, never both.
type Specifier struct {
	token string
	ctor  Constructor
	dt    DType
}

// Token returns the DSL token the specifier was resolved from.
func (s Specifier) Token() string { return s.token }

// IsConstructor reports whether the token names a container constructor.
func (s Specifier) IsConstructor() bool { return s.ctor != CtorInvalid }

// Constructor returns the container kind (CtorInvalid for dtype tokens).
func (s Specifier) Constructor() Constructor { return s.ctor }

// DType returns the element type (zero DType for constructor tokens).
func (s Specifier) DType() DType { return s.dt }

// String implements fmt.Stringer.
func (s Specifier) String() string {
	if s.IsConstructor() {
		return s.ctor.String()
	}
	return s.dt.String()
}

// Entry is one (token, specifier) pair in registration order.
type Entry struct {
	Token     string
	Specifier Specifier
}

// Registry resolves DSL tokens.
type Registry struct {
	constructors []Entry
	dtypes       []Entry
	lookup       map[string]Specifier
}

// acronym derives a constructor token from a class name: the upper-case
// letters, with a trailing "GO" shortened to "g" (IndexHierarchyGO → IHg).
func acronym(name string) string {
	var b strings.Builder
	for _, r := range name {
		if unicode.IsUpper(r) {
			b.WriteRune(r)
		}
	}
	return strings.Replace(b.String(), "GO", "g", 1)
}

// constructorEntries lists constructor tokens in registration order.
func constructorEntries() []Entry {
	var out []Entry
	add := func(token string, c Constructor) {
		out = append(out, Entry{Token: token, Specifier: Specifier{token: token, ctor: c}})
	}
	for _, c := range []Constructor{
		CtorTypeBlocks,
		CtorFrame,
		CtorFrameGO,
		CtorIndex,
		CtorIndexGO,
		CtorIndexHierarchy,
		CtorIndexHierarchyGO,
		CtorIndexAutoFactory,
	} {
		add(acronym(c.String()), c)
	}
	// Temporal indices cannot use the acronym rule: IndexHour would collide
	// with IndexHierarchy. They are keyed by unit code instead.
	for _, p := range []struct {
		token string
		c     Constructor
	}{
		{"IY", CtorIndexYear},
		{"IYg", CtorIndexYearGO},
		{"IM", CtorIndexYearMonth},
		{"IMg", CtorIndexYearMonthGO},
		{"IYM", CtorIndexYearMonth},
		{"IYMg", CtorIndexYearMonthGO},
		{"ID", CtorIndexDate},
		{"IDg", CtorIndexDateGO},
		{"Ih", CtorIndexHour},
		{"Ihg", CtorIndexHourGO},
		{"Im", CtorIndexMinute},
		{"Img", CtorIndexMinuteGO},
		{"Is", CtorIndexSecond},
		{"Isg", CtorIndexSecondGO},
		{"Ims", CtorIndexMillisecond},
		{"Imsg", CtorIndexMillisecondGO},
		{"Ius", CtorIndexMicrosecond},
		{"Iusg", CtorIndexMicrosecondGO},
		{"Ins", CtorIndexNanosecond},
		{"Insg", CtorIndexNanosecondGO},
	} {
		add(p.token, p.c)
	}
	return out
}

// dtypeEntries lists dtype tokens in registration order.
func dtypeEntries() []Entry {
	var out []Entry
	add := func(token string, d DType) {
		out = append(out, Entry{Token: token, Specifier: Specifier{token: token, dt: d}})
	}
	for _, u := range Units {
		add("dt"+u.Code(), Datetime(u))
	}
	for _, u := range Units {
		add("td"+u.Code(), Timedelta(u))
	}
	for _, p := range []struct {
		token string
		d     DType
	}{
		{"int", Int64},
		{"str", Str},
		{"bytes", Bytes},
		{"float", Float64},
		{"bool", Bool},
		{"complex", Complex128},
		{"object", Object},
		{"int8", Int8},
		{"int16", Int16},
		{"int32", Int32},
		{"int64", Int64},
		{"uint8", Uint8},
		{"uint16", Uint16},
		{"uint32", Uint32},
		{"uint64", Uint64},
		{"float16", Float16},
		{"float32", Float32},
		{"float64", Float64},
		{"complex64", Complex64},
		{"complex128", Complex128},
	} {
		add(p.token, p.d)
	}
	return out
}

// NewRegistry builds the registry. It panics if a constructor token and a
// dtype token collide; that is a programming error in the static tables.
func NewRegistry() *Registry {
	r := &Registry{
		constructors: constructorEntries(),
		dtypes:       dtypeEntries(),
		lookup:       make(map[string]Specifier),
	}
	for _, e := range r.constructors {
		r.lookup[e.Token] = e.Specifier
	}
	for _, e := range r.dtypes {
		if _, dup := r.lookup[e.Token]; dup {
			panic("dtype: token " + e.Token + " registered as constructor and dtype")
		}
		r.lookup[e.Token] = e.Specifier
	}
	return r
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// DefaultRegistry returns the shared registry.
func DefaultRegistry() *Registry {
	defaultOnce.Do(func() { defaultRegistry = NewRegistry() })
	return defaultRegistry
}

// Lookup resolves token. Unknown tokens wrap ErrUnknownSpecifier with the
// full list of valid tokens.
func (r *Registry) Lookup(token string) (Specifier, error) {
	if s, ok := r.lookup[token]; ok {
		return s, nil
	}
	return Specifier{}, fmt.Errorf("%w: %q is not a valid specifier. Choose a constructor specifier (%s) or a dtype specifier (%s)",
		ErrUnknownSpecifier, token,
		strings.Join(tokens(r.constructors), ", "),
		strings.Join(tokens(r.dtypes), ", "))
}

// Constructors returns the constructor entries in registration order.
func (r *Registry) Constructors() []Entry { return append([]Entry(nil), r.constructors...) }

// DTypes returns the dtype entries in registration order.
func (r *Registry) DTypes() []Entry { return append([]Entry(nil), r.dtypes...) }

func tokens(entries []Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Token
	}
	return out
}
