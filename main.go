package main

import (
	"os"

	_ "github.com/joho/godotenv/autoload"

	"github.com/mordilloSan/sinklog/internal/cli"
)

// Usage:
//
//	sinklog write -l warn "disk almost full"
//	sinklog write -t file -f ./app.log "started"
//	sinklog path
func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
