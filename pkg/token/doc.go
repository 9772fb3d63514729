// Package token defines the lexical token model shared by every stage of the
// evaluation pipeline.
// Invariants:
//   - A Token is immutable after construction; stages pass it by value.
//   - An Invalid token, once produced, is never combined with other tokens:
//     downstream stages propagate it verbatim as their final result.
//   - Registry definitions (built-in and extension tokens) are long-lived and
//     read-only during evaluation; per-call tokens live for one call only.
//   - Evaluation behavior rides on the Eval field as an Evaluable; literal,
//     bracket, and separator tokens carry none.
package token
