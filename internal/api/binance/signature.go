package binance

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/url"
	"sort"
	"strings"
)

// SignQueryString 对查询字符串进行HMAC SHA256签名
func SignQueryString(queryString, secretKey string) string {
	mac := hmac.New(sha256.New, []byte(secretKey))
	mac.Write([]byte(queryString))

	return hex.EncodeToString(mac.Sum(nil))
}

// BuildQueryString 构建查询字符串（按键名排序）
// 签名和实际请求必须使用这里生成的同一个字符串，编码方式不一致会导致签名校验失败。
func BuildQueryString(params map[string]string) string {
	// 提取所有键并排序
	keys := make([]string, 0, len(params))
	for k := range params {
		if params[k] != "" {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	// 构建查询字符串
	values := make([]string, 0, len(keys))
	for _, k := range keys {
		values = append(values, k+"="+url.QueryEscape(params[k]))
	}

	return strings.Join(values, "&")
}
