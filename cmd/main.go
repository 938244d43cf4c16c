package main

import (
	"os"

	"balance_gateway/cmd/cli"
)

func main() {
	if err := cli.Run(); err != nil {
		os.Exit(1)
	}
}
