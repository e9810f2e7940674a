package source

// mtN and mtM are the MT19937 state size and shift offset.
const (
	mtN         = 624
	mtM         = 397
	mtMatrixA   = 0x9908b0df
	mtUpperMask = 0x80000000
	mtLowerMask = 0x7fffffff
)

// mt19937 is the 32-bit Mersenne Twister with init_genrand seeding. It is
// kept local to the package so that shuffling never touches any shared
// random state.
type mt19937 struct {
	state [mtN]uint32
	pos   int
}

func newMT19937(seed uint32) *mt19937 {
	m := &mt19937{}
	m.state[0] = seed
	for i := 1; i < mtN; i++ {
		prev := m.state[i-1]
		m.state[i] = 1812433253*(prev^(prev>>30)) + uint32(i)
	}
	m.pos = mtN
	return m
}

func (m *mt19937) twist() {
	for i := 0; i < mtN; i++ {
		y := (m.state[i] & mtUpperMask) | (m.state[(i+1)%mtN] & mtLowerMask)
		next := m.state[(i+mtM)%mtN] ^ (y >> 1)
		if y&1 != 0 {
			next ^= mtMatrixA
		}
		m.state[i] = next
	}
	m.pos = 0
}

// uint32 returns the next tempered output.
func (m *mt19937) uint32() uint32 {
	if m.pos >= mtN {
		m.twist()
	}
	y := m.state[m.pos]
	m.pos++

	y ^= y >> 11
	y ^= (y << 7) & 0x9d2c5680
	y ^= (y << 15) & 0xefc60000
	y ^= y >> 18
	return y
}

func (m *mt19937) uint64() uint64 {
	hi := uint64(m.uint32())
	return hi<<32 | uint64(m.uint32())
}

// interval draws uniformly from [0, max] by masking to the next power of
// two and rejecting draws above max.
func (m *mt19937) interval(max uint64) uint64 {
	if max == 0 {
		return 0
	}
	mask := max
	for s := uint(1); s <= 32; s <<= 1 {
		mask |= mask >> s
	}
	if max <= 0xffffffff {
		for {
			if v := uint64(m.uint32()) & mask; v <= max {
				return v
			}
		}
	}
	for {
		if v := m.uint64() & mask; v <= max {
			return v
		}
	}
}

// shuffle permutes vals in place with a freshly seeded generator, walking
// from the last position down and swapping with a bounded draw.
func shuffle(vals []int64, seed uint32) {
	m := newMT19937(seed)
	for i := len(vals) - 1; i > 0; i-- {
		j := m.interval(uint64(i))
		vals[i], vals[j] = vals[j], vals[i]
	}
}
