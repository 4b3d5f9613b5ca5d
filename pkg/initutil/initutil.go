package initutil

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"dsu_tool/pkg/errorutil"
	"dsu_tool/pkg/logutil"
)

// DefaultConfigFile 没有指定 --config 时在当前目录查找的配置文件
const DefaultConfigFile = "dsu.conf"

// Config 是命令行工具的全局配置，配置文件格式为每行 key=value，# 开头为注释
//
//	size=10
//	log_level=INFO
//	log_file=stdout
//	style=1
type Config struct {
	Size     int           // replay 没有 --size 也没有 --from 时的默认元素个数
	LogLevel logutil.Level // 日志级别
	LogFile  string        // 日志文件，stdout 表示标准输出
	Style    int           // 森林打印风格 0=ascii 1=unicode
}

func NewConfig() Config {
	return Config{
		Size:     10,
		LogLevel: logutil.WARN,
		LogFile:  "stdout",
		Style:    0,
	}
}

var (
	globalConfig = NewConfig()
	once         sync.Once
)

func keyPattern(key string) *regexp.Regexp {
	return regexp.MustCompile(`(?m)^[ \t]*` + regexp.QuoteMeta(key) + `[ \t]*=[ \t]*([^;#\r\n]*)`)
}

// extractStringConfig 取出 key 对应的值，没有时返回默认值
func extractStringConfig(conf, key, defaultVal string) string {
	m := keyPattern(key).FindStringSubmatch(conf)
	if len(m) < 2 {
		return defaultVal
	}
	if v := strings.TrimSpace(m[1]); v != "" {
		return v
	}
	return defaultVal
}

// extractIntConfig 取出 key 对应的整数，缺失或者不是整数时返回默认值
func extractIntConfig(conf, key string, defaultVal int) int {
	raw := extractStringConfig(conf, key, "")
	if raw == "" {
		return defaultVal
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		logutil.Warn("配置 %s=%s 不是整数，使用默认值 %d", key, raw, defaultVal)
		return defaultVal
	}
	return v
}

// ParseConfig 解析配置文本，未出现的键保留默认值
func ParseConfig(conf string) (Config, error) {
	cfg := NewConfig()
	cfg.Size = extractIntConfig(conf, "size", cfg.Size)
	cfg.Style = extractIntConfig(conf, "style", cfg.Style)
	cfg.LogFile = extractStringConfig(conf, "log_file", cfg.LogFile)

	if raw := extractStringConfig(conf, "log_level", ""); raw != "" {
		if err := cfg.LogLevel.Set(raw); err != nil {
			return cfg, errorutil.NewExitErrorWithMessage(errorutil.CodeConfigError, "配置 log_level 非法", err)
		}
	}
	if cfg.Size < 0 {
		return cfg, errorutil.NewExitErrorWithMessage(errorutil.CodeConfigError,
			fmt.Sprintf("配置 size=%d 不能为负数", cfg.Size), nil)
	}
	if cfg.Style != 0 && cfg.Style != 1 {
		return cfg, errorutil.NewExitErrorWithMessage(errorutil.CodeConfigError,
			fmt.Sprintf("配置 style=%d 只能是 0 或 1", cfg.Style), nil)
	}
	return cfg, nil
}

// LoadConfig 读取配置文件，文件不存在时使用默认配置
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return NewConfig(), nil
	}
	if err != nil {
		return NewConfig(), errorutil.NewExitErrorWithMessage(errorutil.CodeConfigError,
			fmt.Sprintf("无法读取配置文件 %s", path), err)
	}
	return ParseConfig(string(data))
}

// InitSystem 保存全局配置并初始化日志，只有第一次调用生效
func InitSystem(cfg Config) {
	once.Do(func() {
		globalConfig = cfg
		logutil.InitLogger(cfg.LogFile, cfg.LogLevel)
		logutil.Debug("globalConfig struct:\n%v", globalConfig)
	})
}

// GetConfig 获取全局配置
func GetConfig() Config {
	return globalConfig
}
