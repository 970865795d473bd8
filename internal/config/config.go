package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
)

var ErrEnvVarNotFound = errors.New("environment variable not found")

const (
	apiPortEnvKey  = "API_PORT"
	dbConnEnvKey   = "DB_CONNECTION_URL"
	dbDriverEnvKey = "DB_DRIVER"
	logLevelEnvKey = "LOG_LEVEL"

	defaultDBDriver = "postgres"
	defaultLogLevel = "info"
)

type App struct {
	Port            string
	DBDriver        string
	DBConnectionURL string
	LogLevel        zapcore.Level
}

// LoadEnvFiles copies the variables of the existing env files into the
// environment. Variables that are already set keep their value.
func LoadEnvFiles(files ...string) error {
	for _, file := range files {
		if _, err := os.Stat(file); errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(file); err != nil {
			return fmt.Errorf("load env file %q: %w", file, err)
		}
	}
	return nil
}

func NewApp() (App, error) {
	port, ok := os.LookupEnv(apiPortEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", ErrEnvVarNotFound, apiPortEnvKey)
	}

	dbConn, ok := os.LookupEnv(dbConnEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", ErrEnvVarNotFound, dbConnEnvKey)
	}

	dbDriver, ok := os.LookupEnv(dbDriverEnvKey)
	if !ok {
		dbDriver = defaultDBDriver
	}

	levelName, ok := os.LookupEnv(logLevelEnvKey)
	if !ok {
		levelName = defaultLogLevel
	}

	level, err := zapcore.ParseLevel(levelName)
	if err != nil {
		return App{}, fmt.Errorf("parse %s: %w", logLevelEnvKey, err)
	}

	return App{
		Port:            port,
		DBDriver:        dbDriver,
		DBConnectionURL: dbConn,
		LogLevel:        level,
	}, nil
}
