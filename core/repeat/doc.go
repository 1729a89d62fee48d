// Package repeat sums the numbers inside integer ranges whose decimal digits
// are one block written several times over, such as 55, 6464 or 123123123.
package repeat
