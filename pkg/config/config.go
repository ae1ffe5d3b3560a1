package config

import (
	"errors"
	"io/fs"
	"os"
	"strings"
	"text/template"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

// FromFile read and parse config from given path and apply environment on it.
// Variables from a .env file in the working directory are loaded first; they never override
// variables already set in the environment.
func FromFile(filePath string, cfg interface{}) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	envMap := make(map[string]string)
	for _, envStr := range os.Environ() {
		pair := strings.SplitN(envStr, "=", 2)
		envMap[pair[0]] = pair[1]
	}

	t, err := template.ParseFiles(filePath)
	if err != nil {
		return err
	}
	strWriter := &strings.Builder{}
	err = t.Execute(strWriter, envMap)
	if err != nil {
		return err
	}

	content := os.ExpandEnv(strWriter.String())
	err = yaml.Unmarshal([]byte(content), cfg)
	return err
}
