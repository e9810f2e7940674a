package grammar

import (
	"strconv"
	"strings"
)

// Letter names one DSL component.
type Letter byte

// Component letters.
const (
	Frame   Letter = 'f'
	Index   Letter = 'i'
	Columns Letter = 'c'
	Values  Letter = 'v'
	Shape   Letter = 's'
)

func (l Letter) String() string { return string(rune(l)) }

// component describes the arity and documentation of one letter.
type component struct {
	letter    Letter
	name      string
	counts    []int // nil: any count
	signature string
}

// components is ordered for documentation.
var components = []component{
	{Frame, "Frame", []int{0, 1}, "(CS,)"},
	{Index, "Index", []int{0, 2}, "(CS, DS) or ((CS, ...), (DS, ...))"},
	{Columns, "Columns", []int{0, 2}, "(CS, DS) or ((CS, ...), (DS, ...))"},
	{Values, "Values", nil, "(DS, ...)"},
	{Shape, "Shape", []int{2}, "(int, int)"},
}

func lookupComponent(name string) (component, bool) {
	if len(name) != 1 {
		return component{}, false
	}
	for _, c := range components {
		if byte(c.letter) == name[0] {
			return c, true
		}
	}
	return component{}, false
}

// ArgKind is the syntactic form of one argument.
type ArgKind uint8

const (
	ArgName ArgKind = iota + 1
	ArgInt
	ArgFloat
	ArgString
	ArgTuple
)

// Arg is one component argument. Only the field matching Kind is set.
type Arg struct {
	Kind  ArgKind
	Name  string   // ArgName and ArgString
	Int   int64    // ArgInt
	Float float64  // ArgFloat
	Names []string // ArgTuple
}

// Tokens returns the bare tokens of a name or tuple argument.
func (a Arg) Tokens() []string {
	switch a.Kind {
	case ArgName:
		return []string{a.Name}
	case ArgTuple:
		return append([]string(nil), a.Names...)
	}
	return nil
}

// String renders the argument in DSL form.
func (a Arg) String() string {
	switch a.Kind {
	case ArgName:
		return a.Name
	case ArgInt:
		return strconv.FormatInt(a.Int, 10)
	case ArgFloat:
		return strconv.FormatFloat(a.Float, 'g', -1, 64)
	case ArgString:
		return strconv.Quote(a.Name)
	case ArgTuple:
		if len(a.Names) == 1 {
			return "(" + a.Names[0] + ",)"
		}
		return "(" + strings.Join(a.Names, ",") + ")"
	}
	return "?"
}

// Components is the parsed DSL: each component letter mapped to its
// arguments, in source order.
type Components struct {
	order []Letter
	args  map[Letter][]Arg
}

func newComponents() *Components {
	return &Components{args: make(map[Letter][]Arg)}
}

func (c *Components) add(l Letter, args []Arg) {
	c.order = append(c.order, l)
	c.args[l] = args
}

// Letters returns the component letters in source order.
func (c *Components) Letters() []Letter { return append([]Letter(nil), c.order...) }

// Has reports whether letter l was given.
func (c *Components) Has(l Letter) bool {
	_, ok := c.args[l]
	return ok
}

// Args returns the arguments of l; ok is false if l was not given.
func (c *Components) Args(l Letter) (args []Arg, ok bool) {
	a, ok := c.args[l]
	return append([]Arg(nil), a...), ok
}

// Shape returns the row and column counts. Valid on any Components
// returned by Parse.
func (c *Components) Shape() (rows, cols int) {
	a := c.args[Shape]
	return int(a[0].Int), int(a[1].Int)
}

// String renders c back to canonical DSL text.
func (c *Components) String() string {
	parts := make([]string, len(c.order))
	for i, l := range c.order {
		args := c.args[l]
		strs := make([]string, len(args))
		for j, a := range args {
			strs[j] = a.String()
		}
		parts[i] = l.String() + "(" + strings.Join(strs, ",") + ")"
	}
	return strings.Join(parts, "|")
}
