// Package main runs the fitplan MCP server over stdio, for local assistant use.
// The same server is mounted on the backend at /mcp when mcp_enabled is set.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/2beens/fitplan/internal/config"
	"github.com/2beens/fitplan/internal/db"
	"github.com/2beens/fitplan/internal/plans"
	plansmcp "github.com/2beens/fitplan/internal/plans/mcp"

	"github.com/joho/godotenv"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	log "github.com/sirupsen/logrus"
)

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path to TOML config file")
	flag.Parse()

	// stdout carries the protocol
	log.SetOutput(os.Stderr)

	_ = godotenv.Load()

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx := context.Background()
	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:     cfg.PostgresHost,
		DBPort:     cfg.PostgresPort,
		DBName:     cfg.PostgresDBName,
		DBUser:     cfg.PostgresUser,
		DBPassword: os.Getenv("FITPLAN_DB_PASSWORD"),
	})
	if err != nil {
		log.Fatalf("db pool: %v", err)
	}
	defer dbPool.Close()

	server := plansmcp.NewServer(plans.NewService(plans.NewRepo(dbPool)))
	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		log.Errorf("mcp server: %v", err)
	}
}
