package env

import (
	"go.uber.org/zap"
	"strconv"
)

// IntDefault return the result of searching an env var, if the env var value is empty or not a number, return the default value as int
func IntDefault(log *zap.SugaredLogger, env, def string) int {
	orDefault := OrDefault(log, env, def)
	value, err := strconv.Atoi(orDefault)
	if err != nil {
		log.Warn("error parsing ", env, "=", orDefault, " as int, using ", def, ": ", err)
		value, _ = strconv.Atoi(def)
	}
	return value
}
