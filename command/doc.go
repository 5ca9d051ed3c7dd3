// Package command turns an ordered cell path into the instruction string a
// mouse replays one symbol per tick.
//
// Alphabet:
//
//	F  move one cell forward
//	L  quarter turn counter-clockwise
//	R  quarter turn clockwise
//
// Compile walks consecutive path cells, finds the heading each step requires,
// rotates by the shorter arc and emits one F. An exact reversal (two quarter
// turns either way) is resolved by the Reversal policy: Clockwise ("RR") by
// default, CounterClockwise ("LL") on request. Between two F commands there are
// therefore at most two turns.
//
// Output length for a path of N cells is (N-1) plus the sum of turn distances,
// fully determined by the path and the initial heading.
//
// Errors:
//
//   - ErrInvalidStep: two consecutive path cells are not orthogonally adjacent.
//     That is a defect in whatever produced the path; MustCompile panics on it.
//   - ErrUnknownCommand: Parse met a symbol outside {F, L, R}.
package command
