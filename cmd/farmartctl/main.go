package main

import (
	"fmt"
	"os"

	"github.com/farmart-ke/farmart-backend/cmd/farmartctl/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
