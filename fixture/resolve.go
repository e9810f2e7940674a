package fixture

import (
	"github.com/katalvlaran/framefixtures/dtype"
	"github.com/katalvlaran/framefixtures/grammar"
	"github.com/katalvlaran/framefixtures/source"
)

// tokenOf returns the registry token of a non-tuple argument. A quoted
// string names the same token as the bare name; numbers are looked up by
// their text and so fail as unknown specifiers.
func tokenOf(arg grammar.Arg) string {
	if arg.Kind == grammar.ArgName || arg.Kind == grammar.ArgString {
		return arg.Name
	}
	return arg.String()
}

func (b *Builder) lookup(token string) (dtype.Specifier, error) {
	return b.cfg.registry.Lookup(token)
}

func (b *Builder) resolveDType(token string) (dtype.DType, error) {
	s, err := b.lookup(token)
	if err != nil {
		return dtype.DType{}, err
	}
	if s.IsConstructor() {
		return dtype.DType{}, configErrorf("%s is a constructor specifier, want a dtype specifier", token)
	}
	return s.DType(), nil
}

func (b *Builder) resolveConstructor(token string) (dtype.Constructor, error) {
	s, err := b.lookup(token)
	if err != nil {
		return dtype.CtorInvalid, err
	}
	if !s.IsConstructor() {
		return dtype.CtorInvalid, configErrorf("%s is a dtype specifier, want a constructor specifier", token)
	}
	return s.Constructor(), nil
}

// resolveSpec turns a name or tuple argument into a source.Spec.
func (b *Builder) resolveSpec(arg grammar.Arg) (source.Spec, error) {
	if arg.Kind == grammar.ArgTuple {
		if len(arg.Names) == 0 {
			return source.Spec{}, configErrorf("empty dtype tuple")
		}
		dts, err := b.resolveDTypes(arg.Names)
		if err != nil {
			return source.Spec{}, err
		}
		return source.TupleSpec(dts...), nil
	}
	dt, err := b.resolveDType(tokenOf(arg))
	if err != nil {
		return source.Spec{}, err
	}
	return source.SpecOf(dt), nil
}

func (b *Builder) resolveDTypes(tokens []string) ([]dtype.DType, error) {
	out := make([]dtype.DType, len(tokens))
	for i, tok := range tokens {
		dt, err := b.resolveDType(tok)
		if err != nil {
			return nil, err
		}
		out[i] = dt
	}
	return out, nil
}

// resolveConstructors resolves a name or tuple constructor argument;
// isTuple reports the tuple form.
func (b *Builder) resolveConstructors(arg grammar.Arg) (ctors []dtype.Constructor, isTuple bool, err error) {
	if arg.Kind == grammar.ArgTuple {
		ctors = make([]dtype.Constructor, len(arg.Names))
		for i, tok := range arg.Names {
			if ctors[i], err = b.resolveConstructor(tok); err != nil {
				return nil, true, err
			}
		}
		return ctors, true, nil
	}
	c, err := b.resolveConstructor(tokenOf(arg))
	if err != nil {
		return nil, false, err
	}
	return []dtype.Constructor{c}, false, nil
}
