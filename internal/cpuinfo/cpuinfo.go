// Package cpuinfo reports whether the running CPU has POPCNT/AVX2, purely
// for diagnostics. Go's math/bits.OnesCount64 already lowers to the
// hardware POPCNT instruction when available, so nothing here changes
// which code path a FixedBitSet operation takes — this only lets a caller
// log what the layout decisions of pkg/bitset are actually running on,
// mirroring the capability-probe log kektordb's pkg/core/distance emits
// from its init().
package cpuinfo

import (
	"sync"

	"github.com/klauspost/cpuid/v2"
	"github.com/sirupsen/logrus"
)

// Capabilities summarizes the bitset-relevant CPU features detected.
type Capabilities struct {
	POPCNT bool
	AVX2   bool
}

var (
	once sync.Once
	caps Capabilities
)

// Detect probes the CPU once (cached across calls) and, the first time
// it is invoked with a non-nil logger, emits a single informational log
// line. logger may be nil to probe silently.
func Detect(logger logrus.FieldLogger) Capabilities {
	once.Do(func() {
		caps = Capabilities{
			POPCNT: cpuid.CPU.Has(cpuid.POPCNT),
			AVX2:   cpuid.CPU.Has(cpuid.AVX2),
		}
		if logger != nil {
			logger.WithFields(logrus.Fields{
				"popcnt": caps.POPCNT,
				"avx2":   caps.AVX2,
			}).Info("parasolve: bitset hardware capability probe")
		}
	})
	return caps
}
