package main

import (
	"os"

	"wallet-engine/cmd/walletctl/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
