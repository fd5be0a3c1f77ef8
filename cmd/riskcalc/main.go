package main

import "github.com/dotcommander/riskcalc/internal/cli"

func main() {
	cli.Execute()
}
