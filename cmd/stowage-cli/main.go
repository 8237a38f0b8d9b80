package main

import (
	"github.com/akinaridici/stowagemaster/internal/adapters/cli"
)

func main() {
	cli.Execute()
}
