package config

import (
	"os"
	"strconv"
	"time"
)

// Configuration variables. Each reads an environment variable and falls back
// to a default; the CLI flags use them as their defaults.
var (
	Port             = getEnvInt("PORT", 8080)
	MoveBudget       = time.Duration(getEnvInt("MOVE_BUDGET_MS", 400)) * time.Millisecond
	LogLevel         = getEnvString("LOG_LEVEL", "info")
	RequestLogDir    = getEnvString("REQUEST_LOG_DIR", "")
	StaticDir        = getEnvString("STATIC_DIR", "")
	Color            = getEnvString("SNAKE_COLOR", "#002200")
	HeadType         = getEnvString("SNAKE_HEAD", "")
	TailType         = getEnvString("SNAKE_TAIL", "")
	PrometheusListen = getEnvString("PROMETHEUS_LISTEN", "")
)

func getEnvInt(varName string, defaults int) int {
	val := os.Getenv(varName)
	if val == "" {
		return defaults
	}
	intVal, err := strconv.ParseInt(val, 10, 32)
	if err != nil {
		return defaults
	}
	return int(intVal)
}

func getEnvString(varName, defaults string) string {
	if val := os.Getenv(varName); val != "" {
		return val
	}
	return defaults
}
