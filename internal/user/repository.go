package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// Repository 定义了账号数据的持久化接口。
// 服务层只依赖这个接口，具体实现通过构造函数注入。
type Repository interface {
	// Create 持久化一个新账号。账号名冲突时返回ErrValidation。
	Create(ctx context.Context, u *User) error

	// GetByName 按账号名查找。找不到时返回ErrNotFound。
	GetByName(ctx context.Context, name string) (*User, error)

	// GetByUUID 按主键查找。找不到时返回ErrNotFound。
	GetByUUID(ctx context.Context, uuid string) (*User, error)

	// GetByToken 按当前访问令牌查找。找不到时返回ErrNotFound。
	GetByToken(ctx context.Context, token string) (*User, error)

	// UpdateToken 覆盖写入账号的访问令牌；token为nil表示清除。
	// 账号不存在时返回ErrNotFound。
	UpdateToken(ctx context.Context, uuid string, token *string) error

	// AddScore 原子地将delta累加到账号得分上，并返回更新后的得分。
	// 账号不存在时返回ErrNotFound。
	AddScore(ctx context.Context, uuid string, delta int) (int, error)

	// TokensByUUID 返回所有当前持有有效令牌的账号，用于缓存预热。
	TokensByUUID(ctx context.Context) (map[string]string, error)
}

type gormRepository struct {
	db *gorm.DB
}

// NewRepository 创建一个基于GORM/SQLite的账号仓库。
func NewRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

// isDuplicateErr 判断一个GORM错误是否由唯一索引冲突引起。
// SQLite驱动不总是返回gorm.ErrDuplicatedKey，所以同时检查错误文本。
func isDuplicateErr(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func (r *gormRepository) Create(ctx context.Context, u *User) error {
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		if isDuplicateErr(err) {
			return fmt.Errorf("%w: 账号名已被占用", ErrValidation)
		}
		return fmt.Errorf("无法创建账号: %w", err)
	}
	return nil
}

func (r *gormRepository) getBy(ctx context.Context, query string, arg any) (*User, error) {
	var u User
	if err := r.db.WithContext(ctx).Where(query, arg).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("查询账号失败: %w", err)
	}
	return &u, nil
}

func (r *gormRepository) GetByName(ctx context.Context, name string) (*User, error) {
	return r.getBy(ctx, "name = ?", name)
}

func (r *gormRepository) GetByUUID(ctx context.Context, uuid string) (*User, error) {
	return r.getBy(ctx, "uuid = ?", uuid)
}

func (r *gormRepository) GetByToken(ctx context.Context, token string) (*User, error) {
	return r.getBy(ctx, "access_token = ?", token)
}

func (r *gormRepository) UpdateToken(ctx context.Context, uuid string, token *string) error {
	res := r.db.WithContext(ctx).Model(&User{}).Where("uuid = ?", uuid).Update("access_token", token)
	if res.Error != nil {
		return fmt.Errorf("更新访问令牌失败: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *gormRepository) AddScore(ctx context.Context, uuid string, delta int) (int, error) {
	// 用单条UPDATE让数据库完成累加，避免读-改-写竞争
	res := r.db.WithContext(ctx).Model(&User{}).Where("uuid = ?", uuid).
		Update("score", gorm.Expr("score + ?", delta))
	if res.Error != nil {
		return 0, fmt.Errorf("更新得分失败: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return 0, ErrNotFound
	}

	u, err := r.GetByUUID(ctx, uuid)
	if err != nil {
		return 0, err
	}
	return u.Score, nil
}

func (r *gormRepository) TokensByUUID(ctx context.Context) (map[string]string, error) {
	var users []User
	if err := r.db.WithContext(ctx).Where("access_token IS NOT NULL").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("无法从SQLite读取访问令牌: %w", err)
	}

	tokens := make(map[string]string, len(users))
	for _, u := range users {
		if u.AccessToken != nil {
			tokens[*u.AccessToken] = u.UUID
		}
	}
	return tokens, nil
}
