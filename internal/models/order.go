package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// OrderSide 买卖方向
type OrderSide string

const (
	OrderSideBuy  = OrderSide("BUY")
	OrderSideSell = OrderSide("SELL")
)

// OrderType 订单类型
type OrderType string

const (
	OrderTypeMarket = OrderType("MARKET")
	OrderTypeLimit  = OrderType("LIMIT")
)

// OrderIntent 订单意图，由命令行参数构建，校验通过后不再修改
type OrderIntent struct {
	Symbol   string           // 交易对，例如 BTCUSDT
	Side     OrderSide        // 买卖方向 BUY/SELL
	Type     OrderType        // 订单类型 MARKET/LIMIT
	Quantity decimal.Decimal  // 下单数量（基础资产）
	Price    *decimal.Decimal // 限价，仅限价单需要
}

// ValidationError 参数校验错误
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

// Validate 校验订单参数，必须在任何网络调用之前执行
func (intent *OrderIntent) Validate() error {
	if intent.Side != OrderSideBuy && intent.Side != OrderSideSell {
		return &ValidationError{Msg: fmt.Sprintf("无效的买卖方向 '%s'，必须是 BUY 或 SELL", intent.Side)}
	}

	if !intent.Quantity.IsPositive() {
		return &ValidationError{Msg: fmt.Sprintf("无效的数量 %s，数量必须大于0", intent.Quantity)}
	}

	if intent.Type == OrderTypeLimit {
		if intent.Price == nil {
			return &ValidationError{Msg: "限价单必须指定价格"}
		}
		if !intent.Price.IsPositive() {
			return &ValidationError{Msg: fmt.Sprintf("无效的价格 %s，价格必须大于0", intent.Price)}
		}
	}

	return nil
}

// OrderResponse 下单响应
type OrderResponse struct {
	OrderID       int64  `json:"orderId"`
	Symbol        string `json:"symbol"`
	Status        string `json:"status"`
	ClientOrderID string `json:"clientOrderId"`
	Price         string `json:"price"`
	AvgPrice      string `json:"avgPrice"`
	OrigQty       string `json:"origQty"`
	ExecutedQty   string `json:"executedQty"`
	CumQuote      string `json:"cumQuote"`
	TimeInForce   string `json:"timeInForce"`
	Type          string `json:"type"`
	Side          string `json:"side"`
	UpdateTime    int64  `json:"updateTime"`
}

// ErrorResponse API错误响应
type ErrorResponse struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
}
