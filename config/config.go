package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/cast"
	"gopkg.in/yaml.v2"
)

type SysConfig struct {
	Appid    string `yaml:"appid" json:"appid"`
	Location string `yaml:"location" json:"location"`
	Workdir  string `yaml:"workdir" json:"workdir"`
	Debug    bool   `yaml:"debug" json:"debug"`
}

type WebConfig struct {
	Host string `yaml:"host" json:"host"`
	Port int    `yaml:"port" json:"port"`
}

type DBConfig struct {
	Type     string `yaml:"type" json:"type"`
	Host     string `yaml:"host" json:"host"`
	Port     int    `yaml:"port" json:"port"`
	Name     string `yaml:"name" json:"name"`
	User     string `yaml:"user" json:"user"`
	Passwd   string `yaml:"passwd" json:"passwd"`
	MaxConn  int    `yaml:"max_conn" json:"max_conn"`
	IdleConn int    `yaml:"idle_conn" json:"idle_conn"`
}

// CatalogConfig controls where the product catalog is loaded from and how
// the search pipeline is tuned.
type CatalogConfig struct {
	// Source is one of "db", "remote" or "none".
	Source string `yaml:"source" json:"source"`
	// RemoteURL is the products endpoint used when Source is "remote".
	RemoteURL string `yaml:"remote_url" json:"remote_url"`
	// RefreshSpec is a cron spec for periodic catalog reloads.
	RefreshSpec string `yaml:"refresh_spec" json:"refresh_spec"`
	// SynonymsFile optionally overrides the built-in search synonym table.
	SynonymsFile string `yaml:"synonyms_file" json:"synonyms_file"`
	// MinRelevance is the minimum relevance score a product must reach to
	// survive a text query.
	MinRelevance int `yaml:"min_relevance" json:"min_relevance"`
}

type CurrencyConfig struct {
	Code string  `yaml:"code" json:"code"`
	Rate float64 `yaml:"rate" json:"rate"`
}

type LogConfig struct {
	Mode       string `yaml:"mode" json:"mode"`
	FileEnable bool   `yaml:"file_enable" json:"file_enable"`
	Filename   string `yaml:"filename" json:"filename"`
}

type AppConfig struct {
	System   SysConfig      `yaml:"system" json:"system"`
	Web      WebConfig      `yaml:"web" json:"web"`
	Database DBConfig       `yaml:"database" json:"database"`
	Catalog  CatalogConfig  `yaml:"catalog" json:"catalog"`
	Currency CurrencyConfig `yaml:"currency" json:"currency"`
	Logger   LogConfig      `yaml:"logger" json:"logger"`
}

func (c *AppConfig) GetLogDir() string {
	return filepath.Join(c.System.Workdir, "logs")
}

func (c *AppConfig) GetDataDir() string {
	return filepath.Join(c.System.Workdir, "data")
}

// DefaultAppConfig carries a runnable out-of-the-box configuration; a yaml
// file and environment variables layer on top of it.
var DefaultAppConfig = &AppConfig{
	System: SysConfig{
		Appid:    "Storefront",
		Location: "Asia/Kathmandu",
		Workdir:  "/var/storefront",
		Debug:    true,
	},
	Web: WebConfig{
		Host: "0.0.0.0",
		Port: 1816,
	},
	Database: DBConfig{
		Type:     "postgres",
		Host:     "127.0.0.1",
		Port:     5432,
		Name:     "storefront",
		User:     "postgres",
		Passwd:   "",
		MaxConn:  100,
		IdleConn: 10,
	},
	Catalog: CatalogConfig{
		Source:       "db",
		RefreshSpec:  "@every 5m",
		MinRelevance: 1,
	},
	Currency: CurrencyConfig{
		Code: "NPR",
		Rate: 133,
	},
	Logger: LogConfig{
		Mode:       "development",
		FileEnable: true,
		Filename:   "/var/storefront/storefront.log",
	},
}

func setEnvValue(name string, f func(v string)) {
	var evalue = os.Getenv(name)
	if evalue != "" {
		f(evalue)
	}
}

// LoadConfig reads the yaml configuration file when it exists and then
// applies STOREFRONT_* environment overrides.
func LoadConfig(cfile string) *AppConfig {
	// the config file does not have to exist
	cfg := DefaultAppConfig
	if cfile != "" && FileExists(cfile) {
		data, err := os.ReadFile(cfile)
		if err != nil {
			panic(err)
		}
		cfg = new(AppConfig)
		err = yaml.Unmarshal(data, cfg)
		if err != nil {
			panic(err)
		}
	}

	setEnvValue("STOREFRONT_SYSTEM_WORKDIR", func(v string) { cfg.System.Workdir = v })
	setEnvValue("STOREFRONT_SYSTEM_DEBUG", func(v string) { cfg.System.Debug = cast.ToBool(v) })
	setEnvValue("STOREFRONT_WEB_HOST", func(v string) { cfg.Web.Host = v })
	setEnvValue("STOREFRONT_WEB_PORT", func(v string) { cfg.Web.Port = cast.ToInt(v) })
	setEnvValue("STOREFRONT_DB_HOST", func(v string) { cfg.Database.Host = v })
	setEnvValue("STOREFRONT_DB_PORT", func(v string) { cfg.Database.Port = cast.ToInt(v) })
	setEnvValue("STOREFRONT_DB_NAME", func(v string) { cfg.Database.Name = v })
	setEnvValue("STOREFRONT_DB_USER", func(v string) { cfg.Database.User = v })
	setEnvValue("STOREFRONT_DB_PWD", func(v string) { cfg.Database.Passwd = v })
	setEnvValue("STOREFRONT_CATALOG_SOURCE", func(v string) { cfg.Catalog.Source = v })
	setEnvValue("STOREFRONT_CATALOG_REMOTE_URL", func(v string) { cfg.Catalog.RemoteURL = v })
	setEnvValue("STOREFRONT_CATALOG_SYNONYMS", func(v string) { cfg.Catalog.SynonymsFile = v })
	setEnvValue("STOREFRONT_CURRENCY_CODE", func(v string) { cfg.Currency.Code = v })
	setEnvValue("STOREFRONT_CURRENCY_RATE", func(v string) { cfg.Currency.Rate = cast.ToFloat64(v) })
	setEnvValue("STOREFRONT_LOGGER_MODE", func(v string) { cfg.Logger.Mode = v })

	if cfg.Catalog.MinRelevance <= 0 {
		cfg.Catalog.MinRelevance = 1
	}
	if cfg.Currency.Rate <= 0 {
		cfg.Currency.Rate = DefaultAppConfig.Currency.Rate
	}

	return cfg
}

func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil || !os.IsNotExist(err)
}
