// Package builder provides ready-made sequence families for the nsequence
// engine: each factory validates its parameters, derives the richest set of
// companion functions the family admits (exact inverse, closed-form sum),
// and returns a fully configured *sequence.Sequence.
//
// ✨ Families:
//
//   - Arithmetic(first, diff)   — f(p) = first + diff·p
//     exact inverse + closed-form sum
//   - Geometric(first, ratio)   — f(p) = first·ratioᵖ
//     exact log inverse + closed-form sum
//   - Quadratic(a, b, c)        — f(p) = a·p² + b·p + c
//     inverse on the ascending branch + closed-form sum
//   - Harmonic()                — f(p) = 1/(p+1)
//     exact inverse
//   - Fibonacci()               — the Fibonacci recurrence, deliberately
//     non-invertible: use it to exercise the engine's bounded-search paths
//
// ⚙️ Usage:
//
//	seq, err := builder.Arithmetic(3, 2)          // 3, 5, 7, 9, …
//	if err != nil { ... }
//	seq.NthTerm(5)          // 13
//	seq.IndexOfTerm(13)     // 5, nil — O(1), the inverse is pre-wired
//	seq.SumUpToNthTerm(10)  // 143   — O(1), the closed form is pre-wired
//
// Factories never panic: parameter violations surface as sentinel errors
// (ErrZeroDifference, ErrBadRatio, …) branchable with errors.Is. Options
// (WithPositionLimit, WithInitialIndex, WithIndexing) pass straight through
// to sequence.New and follow its panic-on-meaningless-value contract.
package builder
