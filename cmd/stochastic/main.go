package main

import "github.com/rustyeddy/stochastic/internal/cli"

func main() {
	cli.Execute()
}
