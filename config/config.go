package config

import (
	_ "embed"
	"fmt"
	"os"
	"strconv"
	"strings"
)

//go:embed version
var version string

//go:embed name
var name string

type LogLevel string

const (
	Debug  LogLevel = "debug"
	Info   LogLevel = "info"
	Notice LogLevel = "notice"
	Warn   LogLevel = "warn"
	Error  LogLevel = "error"
)

func GetVersion() string {
	return strings.TrimSpace(version)
}

func GetName() string {
	return strings.TrimSpace(name)
}

func GetLogLevel() LogLevel {
	if IsDebug() {
		return Debug
	}
	logLevel := os.Getenv("MINDWELL_LOG_LEVEL")
	if logLevel == "" {
		return Info
	}
	return LogLevel(logLevel)
}

func IsDebug() bool {
	return os.Getenv("MINDWELL_DEBUG") == "true"
}

func GetListen() string {
	return os.Getenv("MINDWELL_LISTEN")
}

func GetPort() int {
	port := os.Getenv("MINDWELL_PORT")
	if port == "" {
		return 5000
	}
	n, err := strconv.Atoi(port)
	if err != nil {
		return 5000
	}
	return n
}

// GetSessionSecret returns the cookie-store secret. When empty the server
// generates a fresh one at startup; sessions then do not survive a restart.
func GetSessionSecret() string {
	return os.Getenv("MINDWELL_SESSION_SECRET")
}

func GetDBFolderPath() string {
	dbFolderPath := os.Getenv("MINDWELL_DB_FOLDER")
	if dbFolderPath == "" {
		dbFolderPath = "/etc/mindwell"
	}
	return dbFolderPath
}

func GetDBPath() string {
	return fmt.Sprintf("%s/%s.db", GetDBFolderPath(), GetName())
}

func GetLogFolder() string {
	logFolderPath := os.Getenv("MINDWELL_LOG_FOLDER")
	if logFolderPath == "" {
		logFolderPath = "/var/log"
	}
	return logFolderPath
}
