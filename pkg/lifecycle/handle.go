package lifecycle

import (
	"context"
	"time"
)

// Handle 是分发给单个后台服务的生命周期句柄。
// 服务通过Ctx()感知停机信号，并在退出前调用Close()注销自己。
type Handle struct {
	ctx context.Context

	// Close 在服务退出时必须被调用（通常用defer）。
	// 重复调用是安全的。
	Close func()
}

// Ctx 返回管理器的停机上下文。
// 当管理器广播停机信号时，该上下文会被取消。
func (h *Handle) Ctx() context.Context {
	return h.ctx
}

// Done 是Ctx().Done()的便捷封装。
func (h *Handle) Done() <-chan struct{} {
	return h.ctx.Done()
}

// Err 在Done()的channel关闭后，返回上下文被取消的原因。
func (h *Handle) Err() error {
	return h.ctx.Err()
}

// Sleep 暂停指定的时长；如果期间收到停机信号则提前返回错误。
// 后台轮询循环应该用它代替time.Sleep。
func (h *Handle) Sleep(duration time.Duration) error {
	timer := time.NewTimer(duration)
	select {
	case <-h.Done():
		if !timer.Stop() {
			<-timer.C
		}
		return h.Err()
	case <-timer.C:
		return nil
	}
}
