package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/SlpAus/quiz-game-backend/pkg/token"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// MinPasswordLength 是注册时密码的最短长度。
const MinPasswordLength = 5

// Service 实现账号的注册、登录、登出、得分和认证逻辑。
type Service struct {
	repo  Repository
	cache TokenCache
}

// NewService 创建账号服务。repo和cache由调用方注入。
func NewService(repo Repository, cache TokenCache) *Service {
	return &Service{repo: repo, cache: cache}
}

// SignUp 创建一个新账号并签发首个访问令牌。
// 密码在持久化之前用bcrypt加盐哈希。
func (s *Service) SignUp(ctx context.Context, name, password string) (*User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: 账号名不能为空", ErrValidation)
	}
	if len(password) < MinPasswordLength {
		return nil, fmt.Errorf("%w: 密码长度至少为%d", ErrValidation, MinPasswordLength)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("无法哈希密码: %w", err)
	}

	newUUID, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("无法生成UUID v7: %w", err)
	}

	accessToken, err := token.NewAccessToken()
	if err != nil {
		return nil, err
	}

	newUser := &User{
		UUID:         newUUID.String(),
		Name:         name,
		PasswordHash: string(hash),
		AccessToken:  &accessToken,
	}
	if err := s.repo.Create(ctx, newUser); err != nil {
		return nil, err
	}

	// SQLite是事实来源；缓存写入失败只会让后续认证退回数据库
	if err := s.cache.Put(ctx, accessToken, newUser.UUID); err != nil {
		fmt.Printf("警告: 注册后写入令牌缓存失败: %v\n", err)
	}

	return newUser, nil
}

// Login 校验账号名和密码，成功后轮换访问令牌。
// 旧令牌立即失效，每个账号同一时刻至多持有一个有效令牌。
// 校验失败时不改变存储中的任何状态。
func (s *Service) Login(ctx context.Context, name, password string) (*User, error) {
	u, err := s.repo.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, fmt.Errorf("%w: 账号不存在", ErrUnauthorized)
		}
		return nil, err
	}

	// bcrypt的比较本身是时间恒定的
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("%w: 密码错误", ErrUnauthorized)
	}

	newToken, err := token.NewAccessToken()
	if err != nil {
		return nil, err
	}

	oldToken := u.AccessToken
	if err := s.repo.UpdateToken(ctx, u.UUID, &newToken); err != nil {
		return nil, err
	}

	if oldToken != nil {
		if err := s.cache.Remove(ctx, *oldToken); err != nil {
			fmt.Printf("警告: 登录时清理旧令牌缓存失败: %v\n", err)
		}
	}
	if err := s.cache.Put(ctx, newToken, u.UUID); err != nil {
		fmt.Printf("警告: 登录后写入令牌缓存失败: %v\n", err)
	}

	u.AccessToken = &newToken
	return u, nil
}

// Logout 无条件清除账号的访问令牌。
func (s *Service) Logout(ctx context.Context, userID string) (*User, error) {
	u, err := s.repo.GetByUUID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := s.repo.UpdateToken(ctx, u.UUID, nil); err != nil {
		return nil, err
	}

	if u.AccessToken != nil {
		if err := s.cache.Remove(ctx, *u.AccessToken); err != nil {
			fmt.Printf("警告: 登出时清理令牌缓存失败: %v\n", err)
		}
	}

	u.AccessToken = nil
	return u, nil
}

// AddScore 将delta（可以为负）累加到账号得分上，返回新的得分。
func (s *Service) AddScore(ctx context.Context, userID string, delta int) (int, error) {
	return s.repo.AddScore(ctx, userID, delta)
}

// Authenticate 按访问令牌解析出对应的账号。
// 缓存优先；缓存未命中或不可用时退回SQLite查询，
// 保证缓存被清空后持有有效令牌的用户不会被挡在门外。
func (s *Service) Authenticate(ctx context.Context, accessToken string) (*User, error) {
	if accessToken == "" {
		return nil, fmt.Errorf("%w: 缺少访问令牌", ErrUnauthorized)
	}

	uuidStr, ok, err := s.cache.Lookup(ctx, accessToken)
	if err != nil {
		fmt.Printf("警告: 令牌缓存不可用，退回数据库查询: %v\n", err)
	}
	if ok {
		u, err := s.repo.GetByUUID(ctx, uuidStr)
		if err == nil && u.AccessToken != nil && token.Equal(*u.AccessToken, accessToken) {
			return u, nil
		}
		// 缓存里的映射已经过期，清理掉
		if rmErr := s.cache.Remove(ctx, accessToken); rmErr != nil {
			fmt.Printf("警告: 清理过期令牌缓存失败: %v\n", rmErr)
		}
		return nil, fmt.Errorf("%w: 访问令牌无效", ErrUnauthorized)
	}

	u, err := s.repo.GetByToken(ctx, accessToken)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, fmt.Errorf("%w: 访问令牌无效", ErrUnauthorized)
		}
		return nil, err
	}

	// 回填缓存，下次认证走快路径
	if err := s.cache.Put(ctx, accessToken, u.UUID); err != nil {
		fmt.Printf("警告: 认证后回填令牌缓存失败: %v\n", err)
	}
	return u, nil
}
