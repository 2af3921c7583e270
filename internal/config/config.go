package config

// Config 应用配置
type Config struct {
	Binance BinanceConfig `yaml:"binance"`
	Trading TradingConfig `yaml:"trading"`
	Log     LogConfig     `yaml:"log"`
}

// BinanceConfig 币安API配置
type BinanceConfig struct {
	APIKey         string `yaml:"api_key"`
	SecretKey      string `yaml:"secret_key"`
	BaseURL        string `yaml:"base_url,omitempty"`        // 可选，默认使用测试网
	TimeoutSeconds int    `yaml:"timeout_seconds,omitempty"` // 请求超时时间(秒)，默认10秒
}

// TradingConfig 交易配置
type TradingConfig struct {
	DefaultLeverage int `yaml:"default_leverage"` // 下单前初始化的杠杆倍数，默认10倍
}

// LogConfig 日志配置
type LogConfig struct {
	Level    string `yaml:"level"`    // 日志级别: debug, info, warn, error, fatal
	File     string `yaml:"file"`     // 日志文件路径，留空则只输出到控制台
	MaxSize  int    `yaml:"max_size"` // 单个日志文件最大大小(MB)，0表示不限制
	MaxAge   int    `yaml:"max_age"`  // 日志文件保留天数，0表示不删除
	Compress bool   `yaml:"compress"` // 是否压缩旧日志文件
}
