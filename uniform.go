package randstat

import "fmt"

// Number is the set of types the generic helpers accept.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

const (
	lcgMultiplier uint32 = 214013
	lcgIncrement  uint32 = 2531011

	// DefaultSeed is the register value of a generator built without a
	// seed option.
	DefaultSeed uint32 = 0x12345

	sampleBits  = 0x3FFFFFFF
	sampleShift = 15
	sampleMax   = 32767.0
)

// Generator is a 32-bit linear congruential generator producing 15-bit
// uniform samples. A Generator is not safe for concurrent use.
type Generator struct {
	register uint32
}

// New creates a Generator. Without options the register starts at
// DefaultSeed.
func New(options ...generatorOption) (*Generator, error) {
	g := &Generator{register: DefaultSeed}

	for _, option := range options {
		err := option(g)
		if err != nil {
			return nil, err
		}
	}

	return g, nil
}

// Reseed sets the register without advancing it. Every value, zero
// included, takes effect.
func (g *Generator) Reseed(seed uint32) {
	g.register = seed
}

// State returns the current register.
func (g Generator) State() uint32 {
	return g.register
}

// Next advances the register and returns its new value. Arithmetic wraps
// modulo 2^32.
func (g *Generator) Next() uint32 {
	g.register = g.register*lcgMultiplier + lcgIncrement
	return g.register
}

// Uint15 advances the generator and returns bits 15..29 of the register.
func (g *Generator) Uint15() uint32 {
	return (g.Next() & sampleBits) >> sampleShift
}

// Float64 returns a uniform sample in the closed interval [0, 1].
func (g *Generator) Float64() float64 {
	return float64(g.Uint15()) / sampleMax
}

func (g Generator) String() string {
	return fmt.Sprintf("LCG<register=%#x>", g.register)
}

// Range scales a uniform sample from src into [min, max] and converts it
// to T. Integer types truncate toward zero.
func Range[T Number](src Source, min, max T) T {
	return T(src.Float64()*(float64(max)-float64(min)) + float64(min))
}
