package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/spf13/viper"
)

const (
	// DatadirKey is the local data directory to store the wallet database
	DatadirKey = "DATADIR"
	// LogLevelKey are the different logging levels. For reference on the values https://godoc.org/github.com/sirupsen/logrus#Level
	LogLevelKey = "LOG_LEVEL"

	// DbLocation is the folder inside the datadir containing the database
	DbLocation = "db"
)

var vip *viper.Viper
var defaultDatadir = btcutil.AppDataDir("walletd", false)

// InitConfig loads the configuration from the environment, applying the
// default for every key that is not set.
func InitConfig() error {
	vip = viper.New()
	vip.SetEnvPrefix("WALLETD")
	vip.AutomaticEnv()

	vip.SetDefault(DatadirKey, defaultDatadir)
	vip.SetDefault(LogLevelKey, 4)

	return validate()
}

// GetString returns the value of the given config key as a string.
func GetString(key string) string {
	return vip.GetString(key)
}

// GetInt returns the value of the given config key as an int.
func GetInt(key string) int {
	return vip.GetInt(key)
}

// GetDatadir returns the configured data directory.
func GetDatadir() string {
	return vip.GetString(DatadirKey)
}

// GetDbDir returns the directory containing the wallet database, creating it
// if it does not exist.
func GetDbDir() (string, error) {
	dbDir := filepath.Join(GetDatadir(), DbLocation)
	if err := os.MkdirAll(dbDir, 0700); err != nil {
		return "", fmt.Errorf("creating db dir: %w", err)
	}
	return dbDir, nil
}

func validate() error {
	datadir := GetDatadir()
	if len(datadir) <= 0 {
		return fmt.Errorf("%s must not be empty", DatadirKey)
	}
	return nil
}
