package parser

// Interner maps identifier spellings to dense integer handles. The first
// occurrence of a distinct spelling allocates the next handle in sequence
// (0, 1, 2, ...); later occurrences reuse it. Handles are stable only within
// the parse session that owns the interner, letting downstream stages index
// small arrays by handle instead of re-hashing strings.
type Interner struct {
	handles   map[string]int
	spellings []string
}

func NewInterner() *Interner {
	return &Interner{handles: make(map[string]int)}
}

func (in *Interner) Intern(spelling string) int {
	if h, ok := in.handles[spelling]; ok {
		return h
	}
	h := len(in.spellings)
	in.handles[spelling] = h
	in.spellings = append(in.spellings, spelling)
	return h
}

// Spelling returns the source text a handle was assigned for.
func (in *Interner) Spelling(handle int) string {
	return in.spellings[handle]
}

func (in *Interner) Len() int {
	return len(in.spellings)
}

// Spellings returns every interned spelling in handle order.
func (in *Interner) Spellings() []string {
	out := make([]string, len(in.spellings))
	copy(out, in.spellings)
	return out
}
