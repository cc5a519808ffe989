package config

import (
	"errors"
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var defaultEnvLoaded sync.Once

// LoadEnv loads the given .env files into the process environment.
// Variables that are already set are kept. Unlike the implicit .env
// lookup of Load, missing files are reported.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		return nil
	}
	if err := godotenv.Load(files...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// Load parses environment variables into v according to its env tags.
// A .env file in the working directory is loaded once per process when
// present.
//
// Example:
//
//	type DetectorConfig struct {
//		ExtensionsFile  string `env:"UA_EXTENSIONS_FILE"`
//		RegexpCacheSize int    `env:"UA_REGEXP_CACHE_SIZE" envDefault:"512"`
//	}
//
//	var cfg DetectorConfig
//	if err := config.Load(&cfg); err != nil {
//		// Handle error
//	}
func Load[T any](v *T) error {
	defaultEnvLoaded.Do(func() {
		// the default .env file is optional
		_ = godotenv.Load()
	})
	if v == nil {
		return ErrNilPointer
	}
	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}
