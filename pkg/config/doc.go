// Package config loads typed configuration structs from environment variables,
// optionally seeded from .env files.
//
// It wraps github.com/joho/godotenv for .env handling and
// github.com/caarlos0/env/v11 for struct parsing. Each configuration type is
// parsed once per process and served from a cache afterwards.
//
// # Usage
//
//	type ProbeConfig struct {
//	    UserAgent string `env:"UAPROBE_USER_AGENT"`
//	    HasWindow bool   `env:"UAPROBE_HAS_WINDOW" envDefault:"true"`
//	}
//
//	var cfg ProbeConfig
//	if err := config.Load(&cfg); err != nil {
//	    // errors.Is(err, config.ErrParsingConfig)
//	}
//
// Load reads the default .env file from the working directory the first time
// it runs; a missing file is not an error. LoadEnv loads specific files
// explicitly, and ResetCache forgets parsed types so tests can reload them.
package config
