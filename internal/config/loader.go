package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadConfig 加载配置文件
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("读取配置文件失败: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("解析配置文件失败: %w", err)
	}

	return &config, nil
}

// LoadConfigOrCreateDefault 加载配置文件，如果不存在则创建默认配置
func LoadConfigOrCreateDefault(path string) (*Config, error) {
	config, err := LoadConfig(path)
	if err != nil {
		// LoadConfig包装了底层错误，必须用errors.Is穿透错误链判断
		if errors.Is(err, os.ErrNotExist) {
			// 创建默认配置
			defaultConfig := GetDefaultConfig()
			if err := SaveConfig(path, defaultConfig); err != nil {
				return nil, fmt.Errorf("创建默认配置文件失败: %w", err)
			}
			return defaultConfig, nil
		}
		return nil, err
	}
	return config, nil
}

// SaveConfig 保存配置文件
func SaveConfig(path string, config *Config) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("序列化配置失败: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("写入配置文件失败: %w", err)
	}

	return nil
}

// ApplyEnv 从环境变量读取API密钥，覆盖配置文件中的值
func (c *Config) ApplyEnv() {
	if key := os.Getenv("BINANCE_API_KEY"); key != "" {
		c.Binance.APIKey = key
	}
	if secret := os.Getenv("BINANCE_API_SECRET"); secret != "" {
		c.Binance.SecretKey = secret
	}
}

// GetDefaultConfig 获取默认配置
func GetDefaultConfig() *Config {
	return &Config{
		Binance: BinanceConfig{
			APIKey:         "",
			SecretKey:      "",
			BaseURL:        "", // 留空使用测试网
			TimeoutSeconds: 10, // 10秒超时
		},
		Trading: TradingConfig{
			DefaultLeverage: 10, // 默认10倍杠杆
		},
		Log: LogConfig{
			Level:    "info",            // 默认info级别
			File:     "logs/trader.log", // 默认日志文件路径
			MaxSize:  100,               // 100MB
			MaxAge:   7,                 // 保留7天
			Compress: true,              // 压缩旧日志
		},
	}
}
