package server

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"navsite-web/pkg/api"
	"navsite-web/pkg/models"
	"navsite-web/pkg/nsc"
	"navsite-web/pkg/util"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

type Config struct {
	ClientName string          `json:"client_name" yaml:"client_name"`
	Port       int             `json:"port,omitempty" yaml:"port,omitempty"`
	Upstream   *api.Config     `json:"upstream,omitempty" yaml:"upstream,omitempty"`
	Nats       *nsc.NatsConfig `json:"nats,omitempty" yaml:"nats,omitempty"`
	Cache      *CacheConfig    `json:"cache,omitempty" yaml:"cache,omitempty"`
	PageSize   int             `json:"page_size,omitempty" yaml:"page_size,omitempty"`
}

// CacheConfig staleness窗口配置，单位秒
type CacheConfig struct {
	CategoriesTTL int `json:"categories_ttl,omitempty" yaml:"categories_ttl,omitempty"`
	PopularTTL    int `json:"popular_ttl,omitempty" yaml:"popular_ttl,omitempty"`
	ListTTL       int `json:"list_ttl,omitempty" yaml:"list_ttl,omitempty"`
}

func (c *CacheConfig) CategoriesDuration() time.Duration {
	return time.Duration(c.CategoriesTTL) * time.Second
}

func (c *CacheConfig) PopularDuration() time.Duration {
	return time.Duration(c.PopularTTL) * time.Second
}

func (c *CacheConfig) ListDuration() time.Duration {
	return time.Duration(c.ListTTL) * time.Second
}

func (g *Config) Validate() []error {
	var errs = make([]error, 0)
	if err := util.IsValidPort(g.Port); err != nil {
		errs = append(errs, err)
	}
	if es := g.Upstream.Validate(); len(es) > 0 {
		errs = append(errs, es...)
	}
	if g.Nats.Enabled() {
		if err := g.Nats.Validate(); err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}

func NewDefaultConfig() *Config {
	return &Config{
		Port:     3000,
		Upstream: api.NewDefaultConfig(),
		Nats:     nsc.NewDefaultNatsConfig(),
		Cache: &CacheConfig{
			CategoriesTTL: 600, // 分类10分钟
			PopularTTL:    300, // 热门5分钟
			ListTTL:       60,
		},
		PageSize: models.DefaultPageSize,
	}
}

func TryLoadFromDisk(configFilePath string) (*Config, error) {
	_, err := os.Stat(configFilePath)
	if err != nil {
		return nil, err
	}
	dir, file := filepath.Split(configFilePath)
	fileType := filepath.Ext(file)
	viper.AddConfigPath(dir)
	viper.SetConfigName(strings.TrimSuffix(file, fileType))
	viper.SetConfigType(strings.TrimPrefix(fileType, "."))
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	if err := viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) {
			return nil, err
		}
	}
	cfg := NewDefaultConfig()
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
