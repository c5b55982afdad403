// Package config assembles the application configuration.
//
// Values come from the process environment, optionally seeded from a .env
// file, and fall back to the `default` struct tags of each section:
//   - Server: port, API key, JWT secret and display currency
//   - Database: driver (mysql, postgres, sqlite) and connection details
//   - Storage: MinIO credentials, bucket and the dataset object key
//   - Log: level and format
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(cfg.Server.Port) // SERVER_PORT, default 8080
package config
