// Package chain provides a minimal fluent Chain[T] for synchronous
// composition of Outcome[T, error] values.
//
// It keeps the API surface very small:
// - Start/FromValue: create a Chain
// - Then/ThenTry: compose outcome-returning or error-returning functions
// - Map/Validate/Recover: transform, screen or repair the value
// - Ensure: trigger side effects without changing the result
// - Or/And: select between chains by success or failure
// - Finally: reduce to a concrete value via handlers
//
// Chain is ideal for small services or tests where lightweight synchronous
// chaining improves readability; for failure types other than error, use the
// outcome package combinators directly.
package chain
