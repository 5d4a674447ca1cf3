package cmd

import (
	"context"
	"os"

	"navsite-web/pkg/admin"
	"navsite-web/pkg/api"
	"navsite-web/pkg/cache"
	"navsite-web/pkg/catalog"
	"navsite-web/pkg/nsc"
	"navsite-web/pkg/server"
	"navsite-web/pkg/signals"
	"navsite-web/pkg/util"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func NewServerCommand() *cobra.Command {
	var configFilePath string
	cmd := &cobra.Command{
		Use:   "server",
		Short: "启动导航站web服务",
		Run: func(cmd *cobra.Command, args []string) {
			if configFilePath == "" {
				configFilePath = "./etc/config/config.yaml"
			}

			_, err := os.Stat(configFilePath)
			os.IsNotExist(err)

			cfg, err := server.TryLoadFromDisk(configFilePath)
			if err != nil {
				zap.S().Errorf("配置文件加载错误:%s", err.Error())
				return
			}
			if errs := cfg.Validate(); len(errs) > 0 {
				for _, e := range errs {
					zap.S().Errorf("配置不合法: %s", e.Error())
				}
				return
			}
			ctx := signals.SetupSignalHandler()
			_ = startServer(cfg, ctx)
		},
	}
	cmd.PersistentFlags().StringVarP(&configFilePath, "config", "c", "", "配置文件路径")
	return cmd
}

func startServer(cfg *server.Config, ctx context.Context) error {
	zap.S().Infof("***  %s %s ***", util.AppName, util.GetVersion().Version)
	zap.S().Infof("*** 上游接口:%s ***", cfg.Upstream.BaseURL)

	//初始化点击流上报（可选，失败不阻塞启动）
	var sink catalog.ClickSink
	if cfg.Nats.Enabled() {
		if err := nsc.InitNats(cfg.ClientName, cfg.Nats); err != nil {
			zap.S().Warnf("点击流初始化失败，点击事件不再上报: %s", err.Error())
		} else {
			sink = nsc.GetClickPublisher()
		}
	}

	//上游客户端和缓存
	upstream := api.NewClient(cfg.Upstream)
	store := cache.New()

	coordinator := catalog.NewCoordinator(upstream, store, sink, catalog.Options{
		PageSize:      cfg.PageSize,
		CategoriesTTL: cfg.Cache.CategoriesDuration(),
		PopularTTL:    cfg.Cache.PopularDuration(),
		ListTTL:       cfg.Cache.ListDuration(),
	})
	adminSvc := admin.NewService(upstream, store)

	//启动web服务
	handler := server.NewHandler(cfg, upstream, coordinator, adminSvc)
	webServer := server.NewServer(cfg, handler)

	g, c := errgroup.WithContext(ctx)
	g.Go(func() error {
		return webServer.Run()
	})
	g.Go(func() error {
		<-c.Done()
		if publisher := nsc.GetClickPublisher(); publisher != nil {
			publisher.Close()
		}
		_ = webServer.GracefulShutdown(c)
		return c.Err()
	})
	return g.Wait()
}
