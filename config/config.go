package config

import (
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Server struct {
		Port string
	}
	Database struct {
		Driver string // postgres / sqlite
		DSN    string
	}
	Redis struct {
		Addr     string
		Password string
		DB       int
	}
	JWT struct {
		Secret string
	}
	Session struct {
		TTL int // seconds
	}
	Log struct {
		Level string
	}
}

var C Config

// Load 读取 YAML 配置，环境变量 POKERCOACH_SERVER_PORT 等可覆盖
func Load(path string) error {
	v := viper.New()
	v.SetDefault("server.port", ":8080")
	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.dsn", "file:coach.db")
	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("jwt.secret", "")
	v.SetDefault("session.ttl", 1800)
	v.SetDefault("log.level", "info")

	v.SetEnvPrefix("POKERCOACH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return err
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return err
	}
	C = c
	return nil
}
