package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config 运行参数：先读 .env（可选），再读 DARKCHESS_* 环境变量，命令行 flag 最后覆盖。
type Config struct {
	LogLevel  string
	LogFormat string // text | json
	Seed      int64
	AIName    string
	AIVersion string
}

func Default() Config {
	return Config{
		LogLevel:  "info",
		LogFormat: "text",
		AIName:    "darkchess",
		AIVersion: "1.0.0",
	}
}

// Load 读取 files 指定的 .env 文件（默认 ".env"），文件不存在不算错误。
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}
	return FromEnv()
}

func FromEnv() (Config, error) {
	cfg := Default()
	if v := os.Getenv("DARKCHESS_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("DARKCHESS_LOG_FORMAT"); v != "" {
		cfg.LogFormat = strings.ToLower(v)
	}
	if v := os.Getenv("DARKCHESS_SEED"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("DARKCHESS_SEED: %w", err)
		}
		cfg.Seed = seed
	}
	if v := os.Getenv("DARKCHESS_AI_NAME"); v != "" {
		cfg.AIName = v
	}
	if v := os.Getenv("DARKCHESS_AI_VERSION"); v != "" {
		cfg.AIVersion = v
	}
	return cfg, nil
}

// NewLogger 按配置创建 logger。协议走 stdout，日志一律写 stderr。
func (c Config) NewLogger() (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, err
	}
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetLevel(lvl)
	switch c.LogFormat {
	case "json":
		l.SetFormatter(&logrus.JSONFormatter{})
	case "", "text":
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	default:
		return nil, fmt.Errorf("unknown log format %q", c.LogFormat)
	}
	return l, nil
}
