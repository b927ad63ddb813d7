package providers

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"ohd/internal/structures"
)

const appName = "OpeningHoursDaemon"

func NewConfigProvider(flags *structures.CliFlags) (*structures.Config, error) {
	var conf structures.Config

	v := viper.New()
	filename := filepath.Base(flags.ConfigPath)
	v.AddConfigPath(filepath.Dir(flags.ConfigPath))
	v.SetConfigName(strings.TrimSuffix(filename, filepath.Ext(filename)))
	v.SetConfigType("yaml")

	v.SetDefault("cache.ttl", "60s")
	v.SetDefault("schedule.timezone", "UTC")

	_ = v.BindEnv("logger.level", "OHD_LOG_LEVEL")
	_ = v.BindEnv("persistence.saveInterval", "OHD_SAVE_INTERVAL")
	_ = v.BindEnv("cache.enabled", "OHD_CACHE_ENABLED")
	_ = v.BindEnv("cache.size", "OHD_CACHE_SIZE")
	_ = v.BindEnv("schedule.timezone", "OHD_TIMEZONE")
	_ = v.BindEnv("schedule.seedFile", "OHD_SEED_FILE")

	err := v.ReadInConfig()
	if err != nil {
		return nil, err
	}

	err = v.Unmarshal(&conf)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into config struct: %w", err)
	}

	cnfValidator := NewCnfValidator(&conf)
	err = cnfValidator.Validate()
	if err != nil {
		return nil, err
	}

	conf.AppName = appName
	conf.Path = flags.ConfigPath
	conf.Debug = flags.DebugMode

	return &conf, nil
}
