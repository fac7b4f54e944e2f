// SPDX-License-Identifier: MIT

package sweep

import "runtime"

// Option customizes Run. Constructors panic on meaningless values
// (programmer error); Run itself never panics.
type Option func(*runConfig)

type runConfig struct {
	parallelism int
}

func defaultConfig() runConfig {
	return runConfig{parallelism: runtime.GOMAXPROCS(0)}
}

// WithParallelism bounds the number of lines evaluated at once. Panics if n < 1.
func WithParallelism(n int) Option {
	if n < 1 {
		panic("sweep: WithParallelism: n must be >= 1")
	}

	return func(c *runConfig) {
		c.parallelism = n
	}
}
