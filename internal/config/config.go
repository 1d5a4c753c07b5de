package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// FileName is the config file looked up in the config directory.
const FileName = "kartchar.cfg.json"

// LayersConfig locates the characteristic layer files
type LayersConfig struct {
	Dir  string `json:"dir" mapstructure:"dir"`
	Base string `json:"base" mapstructure:"base"`
}

// MemoryConfig holds in-memory storage backend settings. With an OutputDir
// the stored snapshots are exported as JSON on close.
type MemoryConfig struct {
	OutputDir      string `json:"outputDir" mapstructure:"outputDir"`
	CompressOutput bool   `json:"compressOutput" mapstructure:"compressOutput"`
}

// SQLiteConfig holds sqlite storage settings. An empty Path keeps the
// database in memory; DumpPath then receives a copy on close.
type SQLiteConfig struct {
	Path     string `json:"path" mapstructure:"path"`
	DumpPath string `json:"dumpPath" mapstructure:"dumpPath"`
}

// DBConfig holds postgres connection settings
type DBConfig struct {
	Host     string `json:"host" mapstructure:"host"`
	Port     string `json:"port" mapstructure:"port"`
	Username string `json:"username" mapstructure:"username"`
	Password string `json:"password" mapstructure:"password"`
	Database string `json:"database" mapstructure:"database"`
}

// StorageConfig selects and configures the snapshot storage backend
type StorageConfig struct {
	Type   string       `json:"type" mapstructure:"type"`
	Memory MemoryConfig `json:"memory" mapstructure:"memory"`
	SQLite SQLiteConfig `json:"sqlite" mapstructure:"sqlite"`
	DB     DBConfig     `json:"db" mapstructure:"db"`
}

// InfluxConfig holds settings for publishing records to InfluxDB
type InfluxConfig struct {
	Enabled bool   `json:"enabled" mapstructure:"enabled"`
	URL     string `json:"url" mapstructure:"url"`
	Token   string `json:"token" mapstructure:"token"`
	Org     string `json:"org" mapstructure:"org"`
	Bucket  string `json:"bucket" mapstructure:"bucket"`
}

// GraylogConfig holds the optional GELF log sink settings
type GraylogConfig struct {
	Enabled bool   `json:"enabled" mapstructure:"enabled"`
	Address string `json:"address" mapstructure:"address"`
}

func setDefaults() {
	viper.SetDefault("logLevel", "info")
	viper.SetDefault("logsDir", "./logs")

	viper.SetDefault("graylog.enabled", false)
	viper.SetDefault("graylog.address", "localhost:12201")

	viper.SetDefault("layers.dir", "./characteristics")
	viper.SetDefault("layers.base", "base")

	viper.SetDefault("storage.type", "memory")
	viper.SetDefault("storage.memory.outputDir", "")
	viper.SetDefault("storage.memory.compressOutput", true)
	viper.SetDefault("storage.sqlite.path", "")
	viper.SetDefault("storage.sqlite.dumpPath", "")

	viper.SetDefault("db.host", "localhost")
	viper.SetDefault("db.port", "5432")
	viper.SetDefault("db.username", "postgres")
	viper.SetDefault("db.password", "postgres")
	viper.SetDefault("db.database", "kartchar")

	viper.SetDefault("influx.enabled", false)
	viper.SetDefault("influx.url", "http://localhost:8086")
	viper.SetDefault("influx.token", "")
	viper.SetDefault("influx.org", "kartchar")
	viper.SetDefault("influx.bucket", "kart_characteristics")
}

// Load reads configuration from JSON file and sets default values.
// configDir is the directory containing the config file.
func Load(configDir string) error {
	setDefaults()

	viper.SetConfigName(FileName)
	viper.AddConfigPath(configDir)
	viper.SetConfigType("json")

	err := viper.ReadInConfig()
	if err != nil {
		return fmt.Errorf("error reading config file: %w", err)
	}

	return nil
}

// LoadDefaults sets default values without reading a file.
func LoadDefaults() {
	setDefaults()
}

// GetString returns a string config value.
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt returns an int config value.
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetBool returns a bool config value.
func GetBool(key string) bool {
	return viper.GetBool(key)
}

// GetLayersConfig returns the layer file location.
func GetLayersConfig() LayersConfig {
	return LayersConfig{
		Dir:  viper.GetString("layers.dir"),
		Base: viper.GetString("layers.base"),
	}
}

// GetStorageConfig returns the storage backend configuration.
func GetStorageConfig() StorageConfig {
	return StorageConfig{
		Type: viper.GetString("storage.type"),
		Memory: MemoryConfig{
			OutputDir:      viper.GetString("storage.memory.outputDir"),
			CompressOutput: viper.GetBool("storage.memory.compressOutput"),
		},
		SQLite: SQLiteConfig{
			Path:     viper.GetString("storage.sqlite.path"),
			DumpPath: viper.GetString("storage.sqlite.dumpPath"),
		},
		DB: DBConfig{
			Host:     viper.GetString("db.host"),
			Port:     viper.GetString("db.port"),
			Username: viper.GetString("db.username"),
			Password: viper.GetString("db.password"),
			Database: viper.GetString("db.database"),
		},
	}
}

// GetInfluxConfig returns the InfluxDB publishing configuration.
func GetInfluxConfig() InfluxConfig {
	return InfluxConfig{
		Enabled: viper.GetBool("influx.enabled"),
		URL:     viper.GetString("influx.url"),
		Token:   viper.GetString("influx.token"),
		Org:     viper.GetString("influx.org"),
		Bucket:  viper.GetString("influx.bucket"),
	}
}

// GetGraylogConfig returns the GELF sink configuration.
func GetGraylogConfig() GraylogConfig {
	return GraylogConfig{
		Enabled: viper.GetBool("graylog.enabled"),
		Address: viper.GetString("graylog.address"),
	}
}
