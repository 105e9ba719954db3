package main

import (
	"fmt"

	"github.com/katiamach/rainfall-console/internal/logger"
)

func main() {
	if err := rootCommand().Execute(); err != nil {
		logger.Fatal(fmt.Errorf("failed to run rainfall console: %v", err))
	}
}
