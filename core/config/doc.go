// Package config provides type-safe environment variable loading with
// per-type caching. Struct fields are mapped with env tags via the
// caarlos0/env library; a .env file is loaded automatically on first use.
//
// Basic usage:
//
//	import "github.com/aerohttp/aero/core/config"
//
//	type AppConfig struct {
//		Addr     string        `env:"SERVER_ADDR" envDefault:":8080"`
//		RedisURL string        `env:"REDIS_URL,required"`
//		Shutdown time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`
//	}
//
//	var cfg AppConfig
//	if err := config.Load(&cfg); err != nil {
//		log.Fatal(err)
//	}
//
//	// Or panic on failure during startup:
//	config.MustLoad(&cfg)
//
// # Caching
//
// Each configuration type is parsed once per process; later Load calls
// for the same type receive the cached value regardless of environment
// changes in between. Distinct types are cached independently.
package config
