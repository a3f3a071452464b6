package main

import "stubgen/internal/cli"

func main() {
	cli.Execute()
}
