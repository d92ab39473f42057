package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"

	"github.com/Fivegen-LLC/pfsense-client/internal/constants"
	"github.com/Fivegen-LLC/pfsense-client/internal/entities"
	"github.com/Fivegen-LLC/pfsense-client/internal/errs"
)

const (
	configType = "json"
	homePrefix = "~"
)

type Service struct {
	validate *validator.Validate
}

func NewService() *Service {
	return &Service{
		validate: validator.New(),
	}
}

// LoadConfig reads appliance config from the JSON file at filename.
func (s *Service) LoadConfig(filename string) (cfg entities.Config, err error) {
	configPath, err := ResolvePath(filename)
	if err != nil {
		return cfg, fmt.Errorf("LoadConfig: %w", err)
	}

	if _, statErr := os.Stat(configPath); statErr != nil {
		if errors.Is(statErr, os.ErrNotExist) {
			return cfg, fmt.Errorf("LoadConfig: filename %s does not exist: %w", configPath, errs.ErrConfigNotFound)
		}

		return cfg, fmt.Errorf("LoadConfig: %w", statErr)
	}

	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType(configType)
	v.SetDefault("port", constants.DefaultPort)
	v.SetDefault("mode", constants.DefaultMode)

	if err = v.ReadInConfig(); err != nil {
		return cfg, fmt.Errorf("LoadConfig: %w: %w", errs.ErrInvalidConfig, err)
	}

	// hostname given as a number or bool must not be silently converted
	strictDecoding := func(dc *mapstructure.DecoderConfig) {
		dc.WeaklyTypedInput = false
	}
	if err = v.Unmarshal(&cfg, strictDecoding); err != nil {
		return cfg, fmt.Errorf("LoadConfig: %w: %w", errs.ErrInvalidConfig, err)
	}

	if err = s.validate.Struct(cfg); err != nil {
		return cfg, fmt.Errorf("LoadConfig: %w: %w", errs.ErrInvalidConfig, err)
	}

	log.Debug().
		Str("path", configPath).
		Str("hostname", cfg.Hostname).
		Int("port", cfg.Port).
		Str("mode", cfg.Mode).
		Msg("LoadConfig: config loaded")

	return cfg, nil
}

// ResolvePath expands leading ~ to the user home directory and makes path absolute.
func ResolvePath(filename string) (path string, err error) {
	path = filename
	if path == homePrefix || strings.HasPrefix(path, homePrefix+string(filepath.Separator)) {
		home, err := os.UserHomeDir()
		if err != nil {
			return path, fmt.Errorf("ResolvePath: %w", err)
		}

		path = filepath.Join(home, strings.TrimPrefix(path, homePrefix))
	}

	if path, err = filepath.Abs(path); err != nil {
		return path, fmt.Errorf("ResolvePath: %w", err)
	}

	return path, nil
}
