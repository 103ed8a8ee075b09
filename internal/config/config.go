package config

import (
	"errors"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
type Config struct {
	Logger Logger `mapstructure:"logger"`
	Report Report `mapstructure:"report"`
	Source Source `mapstructure:"source"`
}

// Logger holds the configuration for the logger.
type Logger struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Report holds the configuration for rendered documents.
type Report struct {
	TitleSuffix     string `mapstructure:"title_suffix"`
	Author          string `mapstructure:"author"`
	ManualOutput    string `mapstructure:"manual_output"`
	AutomatedOutput string `mapstructure:"automated_output"`
}

// Source holds the configuration for input table loaders.
type Source struct {
	HTTPTimeoutSeconds int    `mapstructure:"http_timeout_seconds"`
	HTTPRetries        int    `mapstructure:"http_retries"`
	SQLiteTable        string `mapstructure:"sqlite_table"`
}

// LoadConfig reads configuration from file or environment variables.
// A missing config.yml is not an error; defaults and environment apply.
func LoadConfig(path string) (config Config, err error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config") // name of config file (without extension)
	v.SetConfigType("yml")

	// Allow environment variables to override config file
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err = v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return
		}
		err = nil
	}

	err = v.Unmarshal(&config)
	return
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")

	v.SetDefault("report.title_suffix", "Sanitized Demo")
	v.SetDefault("report.author", "")
	v.SetDefault("report.manual_output", "01_Manual_Backtest_Sample_portfolio_safe.pdf")
	v.SetDefault("report.automated_output", "02_Automated_Algo_Sample_portfolio_safe.pdf")

	v.SetDefault("source.http_timeout_seconds", 15)
	v.SetDefault("source.http_retries", 3)
	v.SetDefault("source.sqlite_table", "trades")
}
