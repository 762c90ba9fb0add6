// Package instance reads, writes and generates QKP benchmark suites.
//
// A suite is a YAML (or JSON) document:
//
//	cases:
//	  - name: basic
//	    weights: [3, 4, 5]
//	    profits: [[10, 2, 3], [2, 5, 4], [3, 4, 7]]
//	    capacity: 7
//	    expected: {selected: [0, 1], profit: 17}
//
// `expected` is optional; when present, bench.Verify checks every solver
// against it. Default returns the embedded documented suite; Generate builds
// reproducible random instances for timing runs.
package instance
