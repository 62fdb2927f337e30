package env

import (
	"go.uber.org/zap"
	"os"
)

// OrDefault return the value of an env var, if the env var value is empty, return a default value
func OrDefault(log *zap.SugaredLogger, env, def string) string {
	if v, ok := os.LookupEnv(env); ok && v != "" {
		return v
	}
	log.Debugw("env", "name", env, "status", "using default")
	return def
}

// Must return the value of an env var, and exits the process if it is not set
func Must(log *zap.SugaredLogger, env string) string {
	v := os.Getenv(env)
	if v == "" {
		log.Fatalw("env", "name", env, "status", "missing required env var")
	}
	return v
}
