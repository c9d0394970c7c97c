package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
	"unicode/utf8"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/footadmin/footadmin/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	// Config keys.
	cfgKeyDataDir       = "data_dir"
	cfgKeyDelimiter     = "delimiter"
	cfgKeySkipPolicy    = "skip_policy"
	cfgKeyHistoryPolicy = "history_policy"
	cfgKeyCacheTTL      = "cache_ttl"
	cfgKeyWatch         = "watch"
	cfgKeyFocusTeam     = "focus_team"
	cfgKeyLogLevel      = "log_level"
	cfgKeyLogFormat     = "log_format"
)

// configFile is the structure written to config.yaml.
type configFile struct {
	DataDir       string `yaml:"data_dir,omitempty"`
	Delimiter     string `yaml:"delimiter"`
	SkipPolicy    string `yaml:"skip_policy"`
	HistoryPolicy string `yaml:"history_policy"`
	FocusTeam     string `yaml:"focus_team"`
	LogLevel      string `yaml:"log_level"`
}

func defaultConfigFile() configFile {
	return configFile{
		Delimiter:     ",",
		SkipPolicy:    types.SkipMalformedRows,
		HistoryPolicy: types.HistoryBestEffort,
		FocusTeam:     types.DefaultFocusTeam,
		LogLevel:      "warn",
	}
}

// loadConfig reads config.yaml from configDir, creating the directory and a
// default file on first run. The log flags in flags override the file.
func loadConfig(configDir string, flags *pflag.FlagSet) (*viper.Viper, error) {
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return nil, fmt.Errorf("ensure config dir: %w", err)
	}
	if err := writeConfigIfMissing(filepath.Join(configDir, configFileExt), defaultConfigFile()); err != nil {
		return nil, fmt.Errorf("ensure default config: %w", err)
	}

	v := viper.New()
	v.SetDefault(cfgKeyDelimiter, ",")
	v.SetDefault(cfgKeySkipPolicy, types.SkipMalformedRows)
	v.SetDefault(cfgKeyHistoryPolicy, types.HistoryBestEffort)
	v.SetDefault(cfgKeyFocusTeam, types.DefaultFocusTeam)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	for key, flag := range map[string]string{cfgKeyLogLevel: "log-level", cfgKeyLogFormat: "log-format"} {
		if f := flags.Lookup(flag); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("bind %s: %w", flag, err)
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return v, nil
}

// writeConfigIfMissing creates path with cfg rendered as YAML. An existing
// file is left alone.
func writeConfigIfMissing(path string, cfg configFile) error {
	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}

	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// storeConfig assembles the backend configuration from config.yaml and
// dataDir.
func storeConfig(v *viper.Viper, dataDir string) (types.Config, error) {
	delim, err := parseDelimiter(v.GetString(cfgKeyDelimiter))
	if err != nil {
		return types.Config{}, err
	}
	var ttl time.Duration
	if s := v.GetString(cfgKeyCacheTTL); s != "" {
		if ttl, err = time.ParseDuration(s); err != nil {
			return types.Config{}, fmt.Errorf("%s: %w", cfgKeyCacheTTL, err)
		}
	}
	return types.Config{
		DataDir:       dataDir,
		Delimiter:     delim,
		SkipPolicy:    v.GetString(cfgKeySkipPolicy),
		HistoryPolicy: v.GetString(cfgKeyHistoryPolicy),
		CacheTTL:      ttl,
		Watch:         v.GetBool(cfgKeyWatch),
		FocusTeam:     v.GetString(cfgKeyFocusTeam),
	}, nil
}

// parseDelimiter accepts a single character, or "tab".
func parseDelimiter(s string) (rune, error) {
	switch s {
	case "":
		return 0, nil
	case "tab", `\t`:
		return '\t', nil
	}
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("%w: %q", types.ErrDelimiterInvalid, s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}
