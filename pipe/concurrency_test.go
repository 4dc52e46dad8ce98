// Package pipe_test verifies that lazy resolution is safe under concurrent first reads.
package pipe_test

import (
	"sync"
	"testing"

	"github.com/katalvlaran/pipeflow/pipe"
	"github.com/stretchr/testify/require"
)

// TestConcurrentResolve ensures the solver runs exactly once and every
// goroutine observes the same diameter.
func TestConcurrentResolve(t *testing.T) {
	s := newCountingSolver()
	p, err := pipe.NewFromTag("diameter", discharge, 5, length, pipe.WithSolver(s))
	require.NoError(t, err)

	const num = 64
	results := make([]float64, num)
	var wg sync.WaitGroup
	wg.Add(num)
	for i := 0; i < num; i++ {
		go func(id int) {
			defer wg.Done()
			if id%2 == 0 {
				results[id] = p.Diameter()
			} else {
				_ = p.Reynolds() // resolves through Velocity
				results[id] = p.Diameter()
			}
		}(i)
	}
	wg.Wait()

	require.EqualValues(t, 1, s.diameter.Load(), "solver must run exactly once")
	for i := 1; i < num; i++ {
		require.Equal(t, results[0], results[i], "goroutine %d saw a different value", i)
	}
	require.True(t, p.Resolved())
}
