package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Config 服务端配置
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Redis   RedisConfig   `yaml:"redis"`
	Terrain TerrainConfig `yaml:"terrain"`
}

// ServerConfig WebSocket 服务器配置
type ServerConfig struct {
	Host string `yaml:"host" env:"TS_SERVER_HOST"`
	Port int    `yaml:"port" env:"TS_SERVER_PORT"`
	// 允许的前端来源，为空时允许所有来源（仅限开发环境）
	AllowedOrigins []string `yaml:"allowed_origins" env:"TS_ALLOWED_ORIGINS"`
}

// RedisConfig Redis 配置，Addr 为空时禁用统计与房间镜像
type RedisConfig struct {
	Addr     string `yaml:"addr" env:"TS_REDIS_ADDR"`
	Password string `yaml:"password" env:"TS_REDIS_PASSWORD"`
	DB       int    `yaml:"db" env:"TS_REDIS_DB"`
}

// TerrainConfig 地形生成配置
type TerrainConfig struct {
	Width     int `yaml:"width" env:"TS_TERRAIN_WIDTH"`
	Depth     int `yaml:"depth" env:"TS_TERRAIN_DEPTH"`
	Levels    int `yaml:"levels" env:"TS_TERRAIN_LEVELS"`
	MaxHeight int `yaml:"max_height" env:"TS_TERRAIN_MAX_HEIGHT"`
	// 固定种子，0 表示每个房间随机生成
	Seed int64 `yaml:"seed" env:"TS_TERRAIN_SEED"`
}

// Load 加载配置文件，环境变量优先级高于文件
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	// 环境变量覆盖文件配置
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("解析环境变量失败: %w", err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// Default 返回默认配置
func Default() *Config {
	cfg := &Config{}
	if err := env.Parse(cfg); err == nil {
		cfg.applyDefaults()
		return cfg
	}
	cfg = &Config{}
	cfg.applyDefaults()
	return cfg
}

// applyDefaults 填充零值字段
func (c *Config) applyDefaults() {
	if c.Server.Host == "" {
		c.Server.Host = "0.0.0.0"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 4257
	}
	if c.Terrain.Width == 0 {
		c.Terrain.Width = 75
	}
	if c.Terrain.Depth == 0 {
		c.Terrain.Depth = 75
	}
	if c.Terrain.Levels == 0 {
		c.Terrain.Levels = 5
	}
	if c.Terrain.MaxHeight == 0 {
		c.Terrain.MaxHeight = 6
	}
}
