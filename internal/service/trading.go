package service

import (
	"encoding/json"
	"fmt"
	"time"

	"futures_order_trade/internal/api/binance"
	"futures_order_trade/internal/config"
	"futures_order_trade/internal/logger"
	"futures_order_trade/internal/models"
)

// OrderService 订单服务，将校验通过的订单意图路由到对应的下单接口
type OrderService struct {
	client *binance.Client
	config *config.Config
}

// NewOrderService 创建订单服务
func NewOrderService(cfg *config.Config) (*OrderService, error) {
	if cfg.Binance.APIKey == "" || cfg.Binance.SecretKey == "" {
		return nil, fmt.Errorf("币安API密钥未配置")
	}

	client := binance.NewClientWithConfig(
		cfg.Binance.APIKey,
		cfg.Binance.SecretKey,
		cfg.Binance.BaseURL,
		time.Duration(cfg.Binance.TimeoutSeconds)*time.Second,
	)

	return &OrderService{
		client: client,
		config: cfg,
	}, nil
}

// Submit 提交订单
// 先校验参数，再按订单类型构建请求参数，然后初始化杠杆（失败忽略），最后下单。
// 返回值就是下单接口的原始响应，不做任何加工。
func (s *OrderService) Submit(intent *models.OrderIntent) (json.RawMessage, error) {
	if err := intent.Validate(); err != nil {
		return nil, err
	}

	params, err := buildOrderParams(intent)
	if err != nil {
		return nil, err
	}

	// 下单前初始化杠杆，失败不影响下单（交易对可能已经初始化过）
	if err := s.client.EnsureSymbolReady(intent.Symbol, s.config.Trading.DefaultLeverage); err != nil {
		logger.Debugf("初始化杠杆失败（已忽略）: %v", err)
	}

	return s.client.SignedPost(binance.OrderEndpoint, params)
}

// buildOrderParams 按订单类型构建下单参数
func buildOrderParams(intent *models.OrderIntent) (map[string]string, error) {
	switch intent.Type {
	case models.OrderTypeMarket:
		return map[string]string{
			"symbol":   intent.Symbol,
			"side":     string(intent.Side),
			"type":     string(intent.Type),
			"quantity": intent.Quantity.String(),
		}, nil
	case models.OrderTypeLimit:
		// 限价单默认GTC，挂单直到成交或手动撤单
		return map[string]string{
			"symbol":      intent.Symbol,
			"side":        string(intent.Side),
			"type":        string(intent.Type),
			"timeInForce": "GTC",
			"quantity":    intent.Quantity.String(),
			"price":       intent.Price.String(),
		}, nil
	default:
		return nil, fmt.Errorf("不支持的订单类型: %s", intent.Type)
	}
}
