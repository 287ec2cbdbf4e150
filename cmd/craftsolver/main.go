package main

import "github.com/andrescamacho/craftsolver-go/internal/adapters/cli"

func main() {
	cli.Execute()
}
