// Package config loads environment variables into tagged structs.
//
// Parsing is done by github.com/caarlos0/env; a .env file in the working
// directory is loaded once through github.com/joho/godotenv before the first
// parse.
//
//	type Config struct {
//		Context string `env:"SLUG_CONTEXT" envDefault:"save"`
//		Log     logger.Config
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//
// Load caches per type: a second Load of the same type returns the first
// result without reading the environment again. Parse skips both the cache
// and the .env file, which is what tests usually want.
package config
