// Package main is the entry point for the invoice-service application.
//
// @title           Invoice Service API
// @version         1.0.0
// @description     CRUD API for invoices with read-through, write-through and evict-on-delete caching.
//
// @contact.name   API Support
// @contact.url    https://github.com/guttosm/invoice-service
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @tag.name        Invoices
// @tag.description Invoice CRUD operations
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	"os"

	_ "github.com/guttosm/invoice-service/docs" // swagger docs

	"github.com/guttosm/invoice-service/internal/cli"
	"github.com/rs/zerolog/log"
)

func main() {
	if err := cli.Execute(); err != nil {
		log.Error().Err(err).Msg("invoice-service stopped")
		os.Exit(1)
	}
}
