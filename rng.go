package randstat

import (
	"sync"
)

// Source is anything producing uniform samples in [0, 1]. *Generator
// implements it, so do *math/rand.Rand and go_rng's UniformGenerator.
type Source interface {
	Float64() float64
}

// globalRNG is the process-wide stream behind the package-level helpers.
type globalRNG struct {
	mu     sync.Mutex
	gen    Generator
	normal Normal
}

var global = newGlobalRNG()

func newGlobalRNG() *globalRNG {
	r := &globalRNG{gen: Generator{register: DefaultSeed}}
	r.normal.src = &r.gen
	return r
}

// Reseed resets the process-wide stream and drops any cached normal
// sample.
func Reseed(seed uint32) {
	global.mu.Lock()
	global.gen.Reseed(seed)
	global.normal.Reset()
	global.mu.Unlock()
}

// Float64 draws a uniform sample in [0, 1] from the process-wide stream.
func Float64() float64 {
	global.mu.Lock()
	defer global.mu.Unlock()
	return global.gen.Float64()
}

// NormFloat64 draws a standard normal sample from the process-wide stream.
func NormFloat64() float64 {
	global.mu.Lock()
	defer global.mu.Unlock()
	return global.normal.Float64()
}
