// Package ops holds the built-in evaluation behaviors: a fixed set of named
// routines over tokens that the registry binds to operator, function, and
// keyword definitions. All routines are pure and never mutate their
// arguments; failures come back as Invalid tokens, never as panics.
package ops
