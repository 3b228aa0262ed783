package main

import (
	"fmt"
	"os"

	"github.com/Cracket007/etherscan/cmd"
)

func main() {
	if err := cmd.Start(); err != nil {
		fmt.Printf("bot run into an error: %s", err)
		os.Exit(1)
	}
}
