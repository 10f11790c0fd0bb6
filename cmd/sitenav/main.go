package main

import (
	"context"
	"fmt"
	"os"

	"github.com/Silverados/sitenav/internal/cli"
)

func main() {
	if err := cli.NewCommand(context.Background()).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "sitenav: %v\n", err)
		os.Exit(1)
	}
}
