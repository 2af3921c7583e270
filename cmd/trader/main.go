package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"futures_order_trade/internal/config"
	"futures_order_trade/internal/logger"
	"futures_order_trade/internal/models"
	"futures_order_trade/internal/service"
)

func main() {
	// 解析命令行参数
	configPath := flag.String("config", "config.yaml", "配置文件路径")
	symbol := flag.String("symbol", "", "交易对（例如 BTCUSDT）")
	side := flag.String("side", "", "买卖方向: BUY 或 SELL")
	orderType := flag.String("type", "", "订单类型: MARKET 或 LIMIT")
	quantity := flag.String("quantity", "", "下单数量（基础资产）")
	price := flag.String("price", "", "限价（限价单必填）")
	timeout := flag.Int("timeout", 0, "请求超时时间（秒），0表示使用配置值")
	flag.Parse()

	// 加载配置
	cfg, err := config.LoadConfigOrCreateDefault(*configPath)
	if err != nil {
		logger.Fatalf("加载配置失败: %v", err)
	}

	// 初始化日志
	if err := logger.Init(cfg.Log.Level, cfg.Log.File, cfg.Log.MaxSize, cfg.Log.MaxAge, cfg.Log.Compress); err != nil {
		logger.Fatalf("初始化日志失败: %v", err)
	}

	// 加载.env文件（如果存在），环境变量中的API密钥覆盖配置文件
	_ = godotenv.Load()
	cfg.ApplyEnv()

	if cfg.Binance.APIKey == "" || cfg.Binance.SecretKey == "" {
		logger.Fatal("未配置API密钥，请设置 BINANCE_API_KEY 和 BINANCE_API_SECRET 环境变量，" +
			"或在配置文件中填写 binance.api_key 和 binance.secret_key")
	}

	if *timeout > 0 {
		cfg.Binance.TimeoutSeconds = *timeout
	}

	// 构建订单意图
	intent, err := buildIntent(*symbol, *side, *orderType, *quantity, *price)
	if err != nil {
		logger.Fatalf("参数错误: %v", err)
	}

	// 创建订单服务
	orderService, err := service.NewOrderService(cfg)
	if err != nil {
		logger.Fatalf("创建订单服务失败: %v", err)
	}

	fmt.Println("---- 订单请求 ----")
	fmt.Printf("交易对: %s, 方向: %s, 类型: %s, 数量: %s", intent.Symbol, intent.Side, intent.Type, intent.Quantity)
	if intent.Price != nil {
		fmt.Printf(", 价格: %s", intent.Price)
	}
	fmt.Println()

	// 提交订单
	resp, err := orderService.Submit(intent)
	if err != nil {
		logger.Errorf("下单失败: %v", err)
		fmt.Printf("\n✗ 下单失败: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("\n---- API响应 ----")
	fmt.Println(prettyJSON(resp))

	// 记录订单关键信息
	var orderResp models.OrderResponse
	if err := json.Unmarshal(resp, &orderResp); err == nil && orderResp.OrderID != 0 {
		logger.Infof("订单已提交: orderId=%d, symbol=%s, 状态=%s", orderResp.OrderID, orderResp.Symbol, orderResp.Status)
	}

	fmt.Println("\n✓ 下单成功")
}

// buildIntent 根据命令行参数构建订单意图
func buildIntent(symbol, side, orderType, quantity, price string) (*models.OrderIntent, error) {
	if symbol == "" {
		return nil, fmt.Errorf("必须指定 -symbol")
	}
	if side == "" {
		return nil, fmt.Errorf("必须指定 -side")
	}
	if orderType == "" {
		return nil, fmt.Errorf("必须指定 -type")
	}
	if quantity == "" {
		return nil, fmt.Errorf("必须指定 -quantity")
	}

	qty, err := decimal.NewFromString(quantity)
	if err != nil {
		return nil, fmt.Errorf("无效的数量 '%s'", quantity)
	}

	intent := &models.OrderIntent{
		Symbol:   symbol,
		Side:     models.OrderSide(side),
		Type:     models.OrderType(orderType),
		Quantity: qty,
	}

	if price != "" {
		p, err := decimal.NewFromString(price)
		if err != nil {
			return nil, fmt.Errorf("无效的价格 '%s'", price)
		}
		intent.Price = &p
	}

	return intent, nil
}

// prettyJSON 格式化JSON输出
func prettyJSON(raw json.RawMessage) string {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return string(raw)
	}
	return buf.String()
}
