package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/chainsafe/claim-registry/pkg/app"
	"github.com/chainsafe/claim-registry/pkg/app/api"
	"github.com/chainsafe/claim-registry/pkg/config"
)

var configPath = flag.String("config", "config.yaml", "Path to configuration file")

func main() {
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	var runner app.Runner = api.NewServer(cfg)
	if err := runner.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Claim registry exited: %v\n", err)
		os.Exit(1)
	}
}
