package config

import (
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables read by [LoadEnvOverride]
const (
	EnvVerbose      = "FSSIM_VERBOSE"
	EnvRootName     = "FSSIM_ROOT_NAME"
	EnvPromptPrefix = "FSSIM_PROMPT"
	EnvClearLines   = "FSSIM_CLEAR_LINES"
	EnvColor        = "FSSIM_COLOR"
	EnvBanner       = "FSSIM_BANNER"
)

var envKeys = []string{EnvVerbose, EnvRootName, EnvPromptPrefix, EnvClearLines, EnvColor, EnvBanner}

// LoadEnvOverride builds a ConfigOverride from FSSIM_* variables.
// Values set in the process environment win over the ones in the dotenv
// file at envFile. A missing envFile is not an error.
func LoadEnvOverride(envFile string) (*ConfigOverride, error) {
	vars := make(map[string]string)
	if envFile != "" {
		fileVars, err := godotenv.Read(envFile)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read env file %s: %w", envFile, err)
		}
		maps.Copy(vars, fileVars)
	}
	for _, key := range envKeys {
		if v, ok := os.LookupEnv(key); ok {
			vars[key] = v
		}
	}
	return EnvOverride(vars)
}

// EnvOverride converts FSSIM_* key/value pairs into a ConfigOverride.
// Unknown keys are ignored.
func EnvOverride(vars map[string]string) (*ConfigOverride, error) {
	var override ConfigOverride

	if v, ok := vars[EnvVerbose]; ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", EnvVerbose, err)
		}
		override.LogLvl = &n
	}
	if v, ok := vars[EnvRootName]; ok {
		override.RootName = &v
	}
	if v, ok := vars[EnvPromptPrefix]; ok {
		override.PromptPrefix = &v
	}
	if v, ok := vars[EnvClearLines]; ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", EnvClearLines, err)
		}
		override.ClearLines = &n
	}
	if v, ok := vars[EnvColor]; ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", EnvColor, err)
		}
		override.Color = &b
	}
	if v, ok := vars[EnvBanner]; ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", EnvBanner, err)
		}
		override.Banner = &b
	}

	return &override, nil
}
