package user

import (
	"time"

	"gorm.io/gorm"
)

// User 定义了账号在SQLite数据库中的持久化模型。
type User struct {
	// UUID 是账号的主键，在注册时由服务端生成（UUID v7）。
	UUID string `gorm:"primarykey;type:varchar(36)"`

	// Name 是账号的登录名，全局唯一。
	Name string `gorm:"uniqueIndex;not null"`

	// PasswordHash 是bcrypt加盐哈希后的密码，绝不存储明文。
	PasswordHash string `gorm:"not null"`

	// AccessToken 是当前有效的访问令牌，hex编码，全局唯一。
	// 为nil表示账号已登出，此时没有任何令牌可以通过认证。
	AccessToken *string `gorm:"uniqueIndex"`

	// Score 是账号累计的游戏得分。
	Score int `gorm:"not null;default:0"`

	// 部分gorm.Model，由GORM自动管理
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}
