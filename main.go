package main

import (
	"os"

	"github.com/contoso/talentbot/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
