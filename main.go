package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"mariosat/mifir-mapper/cmd/fields"
	"mariosat/mifir-mapper/cmd/generate"
	"mariosat/mifir-mapper/cmd/root"
	"mariosat/mifir-mapper/cmd/suggest"
	"mariosat/mifir-mapper/cmd/validate"
)

func init() {
	// Load environment variables silently before any logging happens,
	// then pin the global log level so early log lines respect it.
	loadEnvSilently()
	logrus.SetLevel(parseLogLevel())

	root.Init()
	root.Cmd.AddCommand(fields.Cmd)
	root.Cmd.AddCommand(suggest.Cmd)
	root.Cmd.AddCommand(validate.Cmd)
	root.Cmd.AddCommand(generate.Cmd)
}

func loadEnvSilently() {
	envFile := ".env"
	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		envFile = filepath.Join("..", ".env")
		if _, err := os.Stat(envFile); os.IsNotExist(err) {
			return
		}
	}
	_ = godotenv.Load(envFile)
}

func parseLogLevel() logrus.Level {
	logLevelStr := os.Getenv("LOG_LEVEL")
	if logLevelStr == "" {
		logLevelStr = "info"
	}
	logLevel, err := logrus.ParseLevel(strings.ToLower(logLevelStr))
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	return logLevel
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
