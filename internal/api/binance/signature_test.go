package binance_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"futures_order_trade/internal/api/binance"
)

// 币安API文档中的签名示例
const (
	docSecretKey   = "NhqPtmdSJYdKjVHjA7PZj4Mge3R5YNiP1e3UZjInClVN65XAbvqqM6A7H5fATj0j"
	docQueryString = "symbol=LTCBTC&side=BUY&type=LIMIT&timeInForce=GTC&quantity=1&price=0.1&recvWindow=5000&timestamp=1499827319559"
	docSignature   = "c8db56825ae71d6d79447849e617115f4a920fa2acdcab2b053c4b2838bd6b71"
)

func TestSignQueryString(t *testing.T) {
	signature := binance.SignQueryString(docQueryString, docSecretKey)

	assert.Equal(t, docSignature, signature)
}

func TestSignQueryStringDeterministic(t *testing.T) {
	first := binance.SignQueryString(docQueryString, docSecretKey)
	second := binance.SignQueryString(docQueryString, docSecretKey)

	assert.Equal(t, first, second)

	// 参数或密钥任意变化都会改变签名
	assert.NotEqual(t, first, binance.SignQueryString(docQueryString+"&reduceOnly=true", docSecretKey))
	assert.NotEqual(t, first, binance.SignQueryString(docQueryString, "other-secret"))
}

func TestBuildQueryString(t *testing.T) {
	params := map[string]string{
		"type":     "MARKET",
		"symbol":   "BTCUSDT",
		"side":     "BUY",
		"quantity": "0.01",
	}

	queryString := binance.BuildQueryString(params)

	assert.Equal(t, "quantity=0.01&side=BUY&symbol=BTCUSDT&type=MARKET", queryString)
}

func TestBuildQueryStringSkipsEmptyValues(t *testing.T) {
	params := map[string]string{
		"symbol": "BTCUSDT",
		"price":  "",
	}

	queryString := binance.BuildQueryString(params)

	assert.Equal(t, "symbol=BTCUSDT", queryString)
}

func TestBuildQueryStringEscapesValues(t *testing.T) {
	params := map[string]string{
		"newClientOrderId": "a b/c",
	}

	queryString := binance.BuildQueryString(params)

	assert.Equal(t, "newClientOrderId=a+b%2Fc", queryString)
}

func TestSignBuiltQueryStringRoundTrip(t *testing.T) {
	params := map[string]string{
		"symbol":    "ETHUSDT",
		"side":      "SELL",
		"type":      "LIMIT",
		"quantity":  "2",
		"price":     "3000",
		"timestamp": "1700000000000",
	}

	// 对同一参数集重新构建查询字符串，签名必须一致
	first := binance.SignQueryString(binance.BuildQueryString(params), docSecretKey)
	second := binance.SignQueryString(binance.BuildQueryString(params), docSecretKey)

	assert.Equal(t, first, second)
}
