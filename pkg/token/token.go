package token

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
)

// AccessTokenByteLength 是访问令牌的原始随机字节数。
// 128字节经过hex编码后为256个字符。
const AccessTokenByteLength = 128

// NewAccessToken 生成一个密码学安全的随机访问令牌。
// 返回的是hex编码后的字符串。
func NewAccessToken() (string, error) {
	buf := make([]byte, AccessTokenByteLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("无法生成安全的访问令牌: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// Equal 对两个令牌进行时间恒定的比较，防止时序攻击。
func Equal(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
