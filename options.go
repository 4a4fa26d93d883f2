package randstat

type generatorOption func(*Generator) error

// Seed sets the initial register of the generator.
//
// Any value is accepted, including zero: the increment of the recurrence
// is odd so a zero register simply steps to 2531011 on the first draw.
func Seed(seed uint32) generatorOption {
	return func(g *Generator) error {
		g.register = seed
		return nil
	}
}

// ClockSeed seeds the generator from RuntimeSeed, so every run produces a
// different stream.
func ClockSeed() generatorOption {
	return Seed(RuntimeSeed())
}

// Restore seeds the generator from a state previously produced by
// MarshalBinary. It fails for malformed or unknown encodings.
func Restore(state []byte) generatorOption {
	return func(g *Generator) error {
		return g.UnmarshalBinary(state)
	}
}
