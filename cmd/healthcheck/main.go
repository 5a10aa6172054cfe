// main.go
//
// Standalone health probe for the novelx API server, used as the container
// HEALTHCHECK command. Exits non-zero when any dependency is unreachable.

package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/novelpj/novelx/internal/config"
	"github.com/novelpj/novelx/internal/database"
	"github.com/novelpj/novelx/internal/services"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database (catalog pool)
	catalogDB, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(catalogDB)

	// Perform health check
	result := services.HealthCheck(cfg, catalogDB)

	// Output result as JSON
	output, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		log.Fatalf("Failed to marshal health check result: %v", err)
	}

	fmt.Println(string(output))

	// Exit with appropriate code
	if result.Status != "healthy" {
		os.Exit(1)
	}
	os.Exit(0)
}
