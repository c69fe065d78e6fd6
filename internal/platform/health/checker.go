package health

import (
	"context"
	"fmt"
	"time"

	"github.com/SlpAus/quiz-game-backend/pkg/lifecycle"
	"github.com/redis/go-redis/v9"
)

const (
	checkInterval = 5 * time.Second
	pingTimeout   = 2 * time.Second
)

// Checker 周期性地检查Redis的可用性。
// Redis从不可用恢复后，它会触发一次缓存热重建，保证缓存与SQLite一致。
type Checker struct {
	rdb     *redis.Client
	rebuild func(ctx context.Context) error

	healthy bool
}

// NewChecker 创建一个Redis健康检查器。
// rebuild 是Redis恢复后需要执行的缓存重建回调。
func NewChecker(rdb *redis.Client, rebuild func(ctx context.Context) error) *Checker {
	return &Checker{rdb: rdb, rebuild: rebuild, healthy: true}
}

// ping 以短超时探测一次Redis
func (c *Checker) ping(ctx context.Context) error {
	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	return c.rdb.Ping(pingCtx).Err()
}

// PerformCheck 执行一次健康检查并处理状态迁移。
func (c *Checker) PerformCheck(ctx context.Context) {
	err := c.ping(ctx)

	switch {
	case err != nil && c.healthy:
		c.healthy = false
		fmt.Printf("健康检查: Redis不可用，进入降级模式: %v\n", err)
	case err == nil && !c.healthy:
		fmt.Println("健康检查: 检测到Redis已恢复，正在触发缓存热重建...")
		if rebuildErr := c.rebuild(ctx); rebuildErr != nil {
			fmt.Printf("健康检查错误: 缓存热重建失败，保持降级模式: %v\n", rebuildErr)
			return
		}
		c.healthy = true
		fmt.Println("健康检查: 缓存热重建成功，恢复正常模式。")
	}
}

// Run 启动持续的后台健康检查循环，直到收到停机信号。
func (c *Checker) Run(handle *lifecycle.Handle) {
	defer handle.Close()

	fmt.Println("后台Redis健康检查器已启动。")
	for {
		if err := handle.Sleep(checkInterval); err != nil {
			fmt.Println("后台Redis健康检查器已停止。")
			return
		}
		c.PerformCheck(handle.Ctx())
	}
}
