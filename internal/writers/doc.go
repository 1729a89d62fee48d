// Package writers turns solver answers into serialized outputs.
//
// Design:
//   - Writers own format dispatch; formatting itself lives in output and pretty.
//   - Core solvers stay domain-only; apps only pick a format name.
//   - JSON goes through pkg/api (v1) for a stable wire format.
package writers
