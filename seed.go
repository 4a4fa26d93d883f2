package randstat

import (
	"time"

	"github.com/pkg/errors"
)

// BuildTime is the HH:MM:SS stamp the build-time engine is seeded from.
// Set it at link time:
//
//	go build -ldflags "-X github.com/caio/go-randstat.BuildTime=$(date +%H:%M:%S)"
var BuildTime = "00:00:00"

// RuntimeSeed returns a seed derived from the wall clock. Two calls in the
// same process will almost always differ; it is not reproducible.
func RuntimeSeed() uint32 {
	return uint32(time.Now().UnixNano())
}

// ParseClock converts a HH:MM:SS stamp to seconds since midnight.
func ParseClock(s string) (uint32, error) {
	if len(s) != 8 || s[2] != ':' || s[5] != ':' {
		return 0, errors.Wrapf(ErrMalformedClock, "%q", s)
	}

	var parts [3]uint32
	limits := [3]uint32{24, 60, 60}
	for i := range parts {
		hi, lo := s[i*3], s[i*3+1]
		if hi < '0' || hi > '9' || lo < '0' || lo > '9' {
			return 0, errors.Wrapf(ErrMalformedClock, "%q: non-digit in field %d", s, i)
		}
		parts[i] = uint32(hi-'0')*10 + uint32(lo-'0')
		if parts[i] >= limits[i] {
			return 0, errors.Wrapf(ErrMalformedClock, "%q: field %d out of range", s, i)
		}
	}

	return parts[0]*60*60 + parts[1]*60 + parts[2], nil
}

// BuildSeed returns the seed of the build-time engine, derived from
// BuildTime. It panics if BuildTime was stamped with a malformed value.
func BuildSeed() uint32 {
	seed, err := ParseClock(BuildTime)
	if err != nil {
		panic(errors.Wrap(err, "BuildTime").Error())
	}
	return seed
}
