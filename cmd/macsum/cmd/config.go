package cmd

import (
	"github.com/spf13/viper"
	"massnet.org/macsum/logging"
	"massnet.org/macsum/version"
)

const (
	defaultLogDir      = "macsum-logs"
	defaultLogFilename = "macsum"
	defaultLogLevel    = "info"
	defaultLogAge      = 1
)

var (
	flagLogDir      string
	flagLogLevel    string
	flagWorkers     int
	flagLedger      string
	cfgFile         string
	usingConfigFile bool
	config          = new(Config)
)

type Config struct {
	LogDir   string `json:"log_dir"`
	LogLevel string `json:"log_level"`
	Workers  int    `json:"workers"`
	Ledger   string `json:"ledger"`
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath("./")
		viper.SetConfigName(".macsum")
	}

	viper.SetEnvPrefix("macsum")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		usingConfigFile = true
	}

	loadConfig(config)
}

// loadConfig copies the viper settings into cfg, applying defaults.
func loadConfig(cfg *Config) {
	cfg.LogDir = viper.GetString("log_dir")
	if cfg.LogDir == "" {
		cfg.LogDir = defaultLogDir
	}
	cfg.LogLevel = viper.GetString("log_level")
	if !logging.ValidLevel(cfg.LogLevel) {
		cfg.LogLevel = defaultLogLevel
	}
	cfg.Workers = viper.GetInt("workers")
	if cfg.Workers < 0 {
		cfg.Workers = 0
	}
	cfg.Ledger = viper.GetString("ledger")
}

// initLogger initializes logging module by config.
func initLogger() {
	logging.Init(config.LogDir, defaultLogFilename, config.LogLevel, defaultLogAge, false)
}

// logBasicInfo logs the basic info on initializing.
func logBasicInfo() {
	logging.VPrint(logging.INFO, "macsum started", logging.LogFormat{
		"version":     version.GetVersion(),
		"config_file": usingConfigFile,
		"workers":     config.Workers,
		"ledger":      config.Ledger,
	})
}
