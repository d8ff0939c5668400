// Package config provides configuration management for the drone config service.
//
// It utilizes Viper for loading configuration from environment variables and an
// optional .env file. Defaults live next to each setting as `default` struct tags.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP port, frontend asset location, WebSocket path and write deadline
//   - Database: driver and storage location of the drone config table
//   - Storage: optional S3/MinIO bucket serving the frontend
//   - Log: Logging level and format
//
// Environment variables map to nested keys by replacing dots with underscores
// (SERVER_PORT -> server.port). The database file additionally honours DB_FILE.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Database.File)
package config
