package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"futures_order_trade/internal/config"
)

func TestLoadConfigOrCreateDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	// 配置文件不存在时创建默认配置
	cfg, err := config.LoadConfigOrCreateDefault(path)

	assert.Nil(t, err)
	assert.Equal(t, 10, cfg.Binance.TimeoutSeconds)
	assert.Equal(t, 10, cfg.Trading.DefaultLeverage)
	assert.Equal(t, "info", cfg.Log.Level)

	// 再次加载读取到同样的配置
	loaded, err := config.LoadConfig(path)

	assert.Nil(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestApplyEnvOverridesCredentials(t *testing.T) {
	t.Setenv("BINANCE_API_KEY", "env-key")
	t.Setenv("BINANCE_API_SECRET", "env-secret")

	cfg := config.GetDefaultConfig()
	cfg.Binance.APIKey = "file-key"
	cfg.Binance.SecretKey = "file-secret"

	cfg.ApplyEnv()

	assert.Equal(t, "env-key", cfg.Binance.APIKey)
	assert.Equal(t, "env-secret", cfg.Binance.SecretKey)
}

func TestApplyEnvKeepsFileValuesWhenEnvUnset(t *testing.T) {
	// 先用t.Setenv注册恢复逻辑，再清空变量，避免污染其他测试
	t.Setenv("BINANCE_API_KEY", "")
	t.Setenv("BINANCE_API_SECRET", "")
	os.Unsetenv("BINANCE_API_KEY")
	os.Unsetenv("BINANCE_API_SECRET")

	cfg := config.GetDefaultConfig()
	cfg.Binance.APIKey = "file-key"
	cfg.Binance.SecretKey = "file-secret"

	cfg.ApplyEnv()

	assert.Equal(t, "file-key", cfg.Binance.APIKey)
	assert.Equal(t, "file-secret", cfg.Binance.SecretKey)
}
