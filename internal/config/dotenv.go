package config

import (
	"os"

	"github.com/joho/godotenv"
)

// loadDotEnvFiles loads each existing dotenv file without overwriting
// variables that are already set, so real environment always wins.
func loadDotEnvFiles(paths ...string) error {
	for _, path := range paths {
		values, err := godotenv.Read(path)
		if err != nil {
			// Missing files are the normal case.
			continue
		}
		for key, value := range values {
			if _, exists := os.LookupEnv(key); exists {
				continue
			}
			if err := os.Setenv(key, value); err != nil {
				return err
			}
		}
	}
	return nil
}
