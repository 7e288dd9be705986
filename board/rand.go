package board

// PseudoRand is a xorshift64* generator. A zero state never advances, so
// Seed replaces zero with a fixed constant.
type PseudoRand struct {
	s uint64
}

const defaultSeed = 1070372

func NewPseudoRand(seed uint64) *PseudoRand {
	r := &PseudoRand{}
	r.Seed(seed)
	return r
}

func (r *PseudoRand) Seed(seed uint64) {
	if seed == 0 {
		seed = defaultSeed
	}
	r.s = seed
}

func (r *PseudoRand) Uint64() uint64 {
	r.s ^= r.s >> 12
	r.s ^= r.s << 25
	r.s ^= r.s >> 27
	return r.s * 2685821657736338717
}
