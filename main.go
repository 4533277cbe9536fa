package main

import "lp-solver/cli"

func main() {
	cli.Execute()
}
