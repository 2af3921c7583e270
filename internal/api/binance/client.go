package binance

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"futures_order_trade/internal/logger"
	"futures_order_trade/internal/models"
)

const (
	// BinanceFuturesTestnetBaseURL 币安期货测试网API基础URL（U本位合约）
	BinanceFuturesTestnetBaseURL = "https://testnet.binancefuture.com"

	// LeverageEndpoint 调整杠杆端点
	LeverageEndpoint = "/fapi/v1/leverage"
	// OrderEndpoint 下单端点
	OrderEndpoint = "/fapi/v1/order"

	// DefaultTimeout 默认请求超时时间
	DefaultTimeout = 10 * time.Second
	// DefaultLeverage 默认杠杆倍数
	DefaultLeverage = 10
)

// APIError 自定义API错误
type APIError struct {
	Code       int    `json:"code"`
	Msg        string `json:"msg"`
	StatusCode int    // HTTP状态码
	Body       string // 原始响应体，保留交易所返回的完整错误信息
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API错误: code=%d, msg=%s, status=%d", e.Code, e.Msg, e.StatusCode)
}

// Client 币安期货API客户端
type Client struct {
	baseURL    string
	apiKey     string
	secretKey  string
	httpClient *http.Client
}

// NewClient 创建带认证的币安期货API客户端（默认测试网，10秒超时）
func NewClient(apiKey, secretKey string) *Client {
	return NewClientWithConfig(apiKey, secretKey, "", 0)
}

// NewClientWithConfig 根据配置创建客户端，baseURL为空时使用测试网，timeout为0时使用默认值
func NewClientWithConfig(apiKey, secretKey, baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = BinanceFuturesTestnetBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &Client{
		baseURL:   baseURL,
		apiKey:    apiKey,
		secretKey: secretKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// SignedPost 发送签名POST请求
// 复制入参后注入当前毫秒时间戳，对最终参数集签名，签名使用的编码与实际请求完全一致。
// 每次调用只发送一次请求，不做重试，是否重试由调用方决定。
func (c *Client) SignedPost(endpoint string, params map[string]string) (json.RawMessage, error) {
	// 复制参数并注入时间戳
	signedParams := make(map[string]string, len(params)+2)
	for k, v := range params {
		signedParams[k] = v
	}
	signedParams["timestamp"] = strconv.FormatInt(time.Now().UnixMilli(), 10)

	// 构建查询字符串并签名
	queryString := BuildQueryString(signedParams)
	signature := SignQueryString(queryString, c.secretKey)
	queryStringWithSig := queryString + "&signature=" + signature

	// 构建URL
	requestURL := fmt.Sprintf("%s%s?%s", c.baseURL, endpoint, queryStringWithSig)

	// 创建POST请求
	httpReq, err := http.NewRequest(http.MethodPost, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("创建请求失败: %w", err)
	}

	// 设置请求头，参数都在查询字符串里，请求没有body
	httpReq.Header.Set("X-MBX-APIKEY", c.apiKey)

	logger.Infof("POST %s params=%s", endpoint, queryString)

	// 发送请求
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("请求失败: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("读取响应失败: %w", err)
	}

	logger.Infof("RESPONSE %d %s", resp.StatusCode, string(body))

	// 检查错误响应
	if resp.StatusCode != http.StatusOK {
		return nil, c.handleHTTPError(resp.StatusCode, body)
	}

	return json.RawMessage(body), nil
}

// handleHTTPError 处理HTTP错误响应
func (c *Client) handleHTTPError(statusCode int, body []byte) error {
	bodyStr := string(body)

	// 解析错误响应
	var errResp models.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Msg != "" {
		return &APIError{
			Code:       errResp.Code,
			Msg:        errResp.Msg,
			StatusCode: statusCode,
			Body:       bodyStr,
		}
	}

	return &APIError{
		Msg:        bodyStr,
		StatusCode: statusCode,
		Body:       bodyStr,
	}
}

// SetLeverage 调整指定交易对的杠杆倍数
func (c *Client) SetLeverage(symbol string, leverage int) (json.RawMessage, error) {
	return c.SignedPost(LeverageEndpoint, map[string]string{
		"symbol":   symbol,
		"leverage": strconv.Itoa(leverage),
	})
}

// EnsureSymbolReady 为交易对初始化杠杆设置
// 新账户首次交易某个交易对前需要设置杠杆，否则容易触发 -2019 保证金不足错误。
// 交易对可能已经初始化过，返回的错误由唯一调用方决定是否忽略。
func (c *Client) EnsureSymbolReady(symbol string, leverage int) error {
	if leverage <= 0 {
		leverage = DefaultLeverage
	}

	_, err := c.SetLeverage(symbol, leverage)
	return err
}
