// cmd/day2/main.go
package main

import (
	"advent/internal/appshell"
	"advent/internal/repeatapp"
)

func main() { appshell.Main(repeatapp.RunContext) }
