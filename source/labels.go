package source

// labelAlphabet is the label pool: z..a, then A..Z, then 0..9.
const labelAlphabet = "zyxwvutsrqponmlkjihgfedcbaABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// labelLen is the character count of every label.
const labelLen = 4

// maxLabels is the size of the label space: 62·61·60·59.
const maxLabels = 13_388_280

// permuter yields the ordered 4-permutations of labelAlphabet, in
// lexicographic order of pool positions. 62 symbols give 13,388,280 labels.
// The permuter is shared across growth calls, so no label ever repeats.
type permuter struct {
	idx     [labelLen]int
	started bool
	done    bool
}

func (p *permuter) used(v, upto int) bool {
	for q := 0; q < upto; q++ {
		if p.idx[q] == v {
			return true
		}
	}
	return false
}

// fill sets positions from..end to the smallest unused pool positions.
func (p *permuter) fill(from int) {
	for q := from; q < labelLen; q++ {
		v := 0
		for p.used(v, q) {
			v++
		}
		p.idx[q] = v
	}
}

func (p *permuter) advance() bool {
	n := len(labelAlphabet)
	for pos := labelLen - 1; pos >= 0; pos-- {
		for v := p.idx[pos] + 1; v < n; v++ {
			if !p.used(v, pos) {
				p.idx[pos] = v
				p.fill(pos + 1)
				return true
			}
		}
	}
	return false
}

// next returns the next label; ok is false once the space is exhausted.
func (p *permuter) next() (label string, ok bool) {
	if p.done {
		return "", false
	}
	if !p.started {
		p.started = true
		p.fill(0)
	} else if !p.advance() {
		p.done = true
		return "", false
	}
	var b [labelLen]byte
	for i, v := range p.idx {
		b[i] = labelAlphabet[v]
	}
	return string(b[:]), true
}
