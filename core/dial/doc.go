// Package dial simulates a 100-position circular dial driven by left/right
// rotation instructions and counts how often it reaches position zero.
//
// The package is domain-only. It never imports cli, app, or output code.
package dial
