package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/minios-linux/reswkit/generator"
)

// EnvFileName is read from the project root, if present, before the
// process environment. Process variables win.
const EnvFileName = ".env"

// Env holds the RESWKIT_* overrides. Unset fields leave the project as is.
type Env struct {
	DefaultLanguage string `env:"RESWKIT_DEFAULT_LANGUAGE"`
	AppType         string `env:"RESWKIT_APP_TYPE"`
	OutputDir       string `env:"RESWKIT_OUTPUT_DIR"`
	Library         *bool  `env:"RESWKIT_LIBRARY"`
	Basic           *bool  `env:"RESWKIT_BASIC"`
}

// LoadEnv reads the overrides from rootDir/.env and the environment.
func LoadEnv(rootDir string) (Env, error) {
	vars := make(map[string]string)

	path := filepath.Join(rootDir, EnvFileName)
	if _, err := os.Stat(path); err == nil {
		fileVars, err := godotenv.Read(path)
		if err != nil {
			return Env{}, fmt.Errorf("reading %s: %w", path, err)
		}
		for k, v := range fileVars {
			vars[k] = v
		}
	}
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok {
			vars[k] = v
		}
	}

	var e Env
	if err := env.ParseWithOptions(&e, env.Options{Environment: vars}); err != nil {
		return Env{}, fmt.Errorf("parsing environment: %w", err)
	}
	return e, nil
}

// Apply overrides the matching project settings.
func (e Env) Apply(p *Project) error {
	if e.DefaultLanguage != "" && !strings.EqualFold(e.DefaultLanguage, p.DefaultLanguage) {
		p.DefaultLanguage = e.DefaultLanguage
		p.reselectDefaults()
	}
	if e.AppType != "" {
		t, err := generator.ParseAppType(e.AppType)
		if err != nil {
			return fmt.Errorf("RESWKIT_APP_TYPE: %w", err)
		}
		p.AppType = t
	}
	if e.OutputDir != "" {
		if filepath.IsAbs(e.OutputDir) {
			p.OutputDir = e.OutputDir
		} else {
			p.OutputDir = filepath.Join(p.Root, e.OutputDir)
		}
	}
	if e.Library != nil {
		p.IsLibrary = *e.Library
	}
	if e.Basic != nil {
		p.Basic = *e.Basic
	}
	return nil
}
