package signals

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

var onlyOneSignalHandler = make(chan struct{})

// SetupSignalHandler 注册SIGTERM和SIGINT，收到第一个信号时取消返回的context，
// 收到第二个信号时直接退出
func SetupSignalHandler() context.Context {
	close(onlyOneSignalHandler) // 只允许调用一次

	ctx, cancel := context.WithCancel(context.Background())
	c := make(chan os.Signal, 2)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-c
		cancel()
		<-c
		os.Exit(1)
	}()

	return ctx
}
