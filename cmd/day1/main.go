// cmd/day1/main.go
package main

import (
	"advent/internal/appshell"
	"advent/internal/dialapp"
)

func main() { appshell.Main(dialapp.RunContext) }
