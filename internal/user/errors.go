package user

import "errors"

// 模块的哨兵错误。handler层通过errors.Is将它们映射到HTTP状态码。
var (
	// ErrValidation 表示输入不合法（缺少字段、重名、密码过短等）。
	ErrValidation = errors.New("输入校验失败")

	// ErrNotFound 表示按id或name找不到对应的账号。
	ErrNotFound = errors.New("账号不存在")

	// ErrUnauthorized 表示凭证（密码或访问令牌）校验失败。
	ErrUnauthorized = errors.New("认证失败")
)
