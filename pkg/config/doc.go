// Package config loads configuration structs from environment variables.
//
// Values are parsed with github.com/caarlos0/env/v11 according to the env
// and envDefault field tags. Before the first Load, a .env file in the
// working directory is read with github.com/joho/godotenv when it exists;
// LoadEnv reads additional files explicitly.
//
//	if err := config.LoadEnv(".env.local"); err != nil {
//		return err
//	}
//	var cfg useragent.Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//
// Errors wrap ErrParsingConfig or ErrLoadingEnvFile and can be tested with
// errors.Is.
package config
