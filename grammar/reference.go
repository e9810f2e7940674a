package grammar

import (
	"strconv"

	"github.com/katalvlaran/framefixtures/dtype"
)

// ComponentDoc is one row of the component reference table.
type ComponentDoc struct {
	Symbol    Letter
	Component string
	Required  bool
	Arguments string // maximum argument count, or "unbound"
	Signature string
}

// ComponentDocs lists every component letter. CS stands for a constructor
// specifier and DS for a dtype specifier.
func ComponentDocs() []ComponentDoc {
	out := make([]ComponentDoc, len(components))
	for i, c := range components {
		doc := ComponentDoc{
			Symbol:    c.letter,
			Component: c.name,
			Arguments: "unbound",
			Signature: c.signature,
		}
		if c.counts != nil {
			doc.Required = c.counts[0] != 0
			doc.Arguments = strconv.Itoa(c.counts[len(c.counts)-1])
		}
		out[i] = doc
	}
	return out
}

// SpecifierDoc maps a token to the class or dtype it names.
type SpecifierDoc struct {
	Symbol string
	Class  string
}

// ConstructorDocs lists the constructor specifiers of reg. TypeBlocks is
// internal to value building and left out.
func ConstructorDocs(reg *dtype.Registry) []SpecifierDoc {
	var out []SpecifierDoc
	for _, e := range reg.Constructors() {
		if e.Specifier.Constructor() == dtype.CtorTypeBlocks {
			continue
		}
		out = append(out, SpecifierDoc{Symbol: e.Token, Class: e.Specifier.Constructor().String()})
	}
	return out
}

// DTypeDocs lists the dtype specifiers of reg.
func DTypeDocs(reg *dtype.Registry) []SpecifierDoc {
	entries := reg.DTypes()
	out := make([]SpecifierDoc, len(entries))
	for i, e := range entries {
		out[i] = SpecifierDoc{Symbol: e.Token, Class: e.Specifier.DType().String()}
	}
	return out
}
