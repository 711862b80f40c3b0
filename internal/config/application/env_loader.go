package application

import (
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"

	sharedlogger "checkhub/internal/shared/logger"
)

const defaultEnvFile = ".env"

// LoadEnvFile loads environment variables from envFile, or from .env in the
// working directory when envFile is empty. Variables already set in the
// environment win over the file. Returns true if a file was loaded.
func LoadEnvFile(logger sharedlogger.Logger, envFile string) bool {
	explicit := envFile != ""
	if !explicit {
		envFile = defaultEnvFile
	}

	if _, err := os.Stat(envFile); errors.Is(err, fs.ErrNotExist) {
		if explicit {
			logger.Warn("Env file not found", "path", envFile)
		} else {
			logger.Debug("No .env file found", "path", envFile)
		}
		return false
	}

	if err := godotenv.Load(envFile); err != nil {
		logger.Warn("Failed to load env file", "path", envFile, "err", err)
		return false
	}

	logger.Debug("Loaded env file", "path", envFile)
	return true
}
