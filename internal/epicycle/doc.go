// Package epicycle implements the two-level epicycle animation behind each
// plot: a point orbiting a point that orbits the origin.
//
// The package is split in three layers:
//
//   - [Tip]: the closed-form position of both orbit tips at a given time
//   - [Plot]: one simulation with its parameters and accumulated trace
//   - [UI] and [Surface]: the immediate-mode widget and drawing contract a
//     rendering backend implements
//
// # Example
//
//	p := epicycle.New(math.Pi)
//	for i := 0; i < 60; i++ {
//		p.Step(1.0 / 60)
//	}
//	fmt.Println(len(p.Trace()))
//
// # Thread Safety
//
// A Plot is owned by a single render loop and is NOT safe for concurrent use.
package epicycle
