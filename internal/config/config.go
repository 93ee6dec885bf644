package config

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// AppConfig application configuration
type AppConfig struct {
	Server  ServerConfig  `toml:"server"`
	Data    DataConfig    `toml:"data"`
	Admin   AdminConfig   `toml:"admin"`
	Summary SummaryConfig `toml:"summary"`
}

// ServerConfig HTTP server settings
type ServerConfig struct {
	Port    int  `toml:"port"`
	DevMode bool `toml:"dev_mode"`
}

// DataConfig data directory settings
type DataConfig struct {
	DataDir string `toml:"data_dir"`
}

// AdminConfig administrative override settings
type AdminConfig struct {
	// OverridePIN shared secret unlocking finalized months;
	// workflow friction, not a security boundary
	OverridePIN string `toml:"override_pin"`
}

// SummaryConfig AI summarization settings
type SummaryConfig struct {
	APIKey         string `toml:"api_key"`
	Model          string `toml:"model"`
	Endpoint       string `toml:"endpoint"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

// LoadConfigInfo config load metadata
type LoadConfigInfo struct {
	PortSpecified bool
}

// DefaultConfig default configuration
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Server: ServerConfig{
			Port:    20790,
			DevMode: false,
		},
		Data: DataConfig{
			DataDir: "data",
		},
		Admin: AdminConfig{
			OverridePIN: "786",
		},
		Summary: SummaryConfig{
			Model:          "gemini-3-flash-preview",
			Endpoint:       "https://generativelanguage.googleapis.com",
			TimeoutSeconds: 30,
		},
	}
}

func isPortSpecifiedInToml(data []byte) bool {
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return false
	}

	serverAny, ok := raw["server"]
	if !ok {
		return false
	}

	serverMap, ok := serverAny.(map[string]any)
	if !ok {
		return false
	}

	_, ok = serverMap["port"]
	return ok
}

// GetExeDir directory containing the running executable
func GetExeDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Dir(exe), nil
}

// LoadConfigWithInfo loads config.toml beside the executable and reports
// load metadata. A missing file yields the defaults.
func LoadConfigWithInfo() (*AppConfig, LoadConfigInfo, error) {
	info := LoadConfigInfo{}
	config := DefaultConfig()

	exeDir, err := GetExeDir()
	if err != nil {
		exeDir = "."
	}

	configPath := filepath.Join(exeDir, "config.toml")

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			applyEnv(config)
			return config, info, nil
		}
		return nil, info, err
	}

	info.PortSpecified = isPortSpecifiedInToml(data)

	if err := toml.Unmarshal(data, config); err != nil {
		return nil, info, err
	}

	applyEnv(config)

	return config, info, nil
}

// applyEnv environment overrides, useful for local runs without a config file
func applyEnv(config *AppConfig) {
	if v := os.Getenv("SWISSDASH_API_KEY"); v != "" {
		config.Summary.APIKey = v
	}
	if config.Summary.APIKey == "" {
		if v := os.Getenv("GEMINI_API_KEY"); v != "" {
			config.Summary.APIKey = v
		}
	}
	if v := os.Getenv("SWISSDASH_OVERRIDE_PIN"); v != "" {
		config.Admin.OverridePIN = v
	}
}

// LoadConfig loads config.toml beside the executable.
func LoadConfig() (*AppConfig, error) {
	config, _, err := LoadConfigWithInfo()
	return config, err
}

// SaveConfig writes the configuration back to config.toml.
func SaveConfig(config *AppConfig) error {
	exeDir, err := GetExeDir()
	if err != nil {
		exeDir = "."
	}

	configPath := filepath.Join(exeDir, "config.toml")

	data, err := toml.Marshal(config)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0644)
}

// EnsureDataDir creates the data directory beside the executable.
func EnsureDataDir(config *AppConfig) (string, error) {
	exeDir, err := GetExeDir()
	if err != nil {
		exeDir = "."
	}

	dataDir := filepath.Join(exeDir, config.Data.DataDir)

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return "", err
	}

	subdirs := []string{"uploads", "backups"}
	for _, subdir := range subdirs {
		path := filepath.Join(dataDir, subdir)
		if err := os.MkdirAll(path, 0755); err != nil {
			return "", err
		}
	}

	return dataDir, nil
}
