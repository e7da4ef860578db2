// Package config provides a type-safe, cached way to load application
// configuration from environment variables.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11:
//
//   - LoadEnv reads one or several .env files into the process environment
//     (later files override earlier ones).
//   - Load parses the environment into any struct annotated with `env` tags
//     and caches the result, so each configuration type is parsed once for
//     the lifetime of the process.
//   - MustLoadEnv and MustLoad panic on failure for configuration the
//     application cannot start without.
//   - ResetCache and ForceReloadConfig exist for tests that mutate the
//     environment.
//
// # Usage
//
//	type ServerConfig struct {
//	    Addr            string        `env:"SERVER_ADDR" envDefault:":8080"`
//	    ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"10s"`
//	    JWTSecret       string        `env:"JWT_SECRET,required"`
//	}
//
//	func main() {
//	    var cfg ServerConfig
//	    config.MustLoad(&cfg)
//	    ...
//	}
//
// Because parsed structs are cached by type, independent packages can load
// their own config structs without coordinating; each parse happens once
// regardless of call order or concurrency.
package config
