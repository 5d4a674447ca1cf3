package cmd

import (
	"context"
	"fmt"
	"time"

	"navsite-web/pkg/api"
	"navsite-web/pkg/server"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func NewCheckCommand() *cobra.Command {
	var configFilePath string
	cmd := &cobra.Command{
		Use:   "check",
		Short: "检查上游接口连通性",
		RunE: func(cmd *cobra.Command, args []string) error {
			if configFilePath == "" {
				configFilePath = "./etc/config/config.yaml"
			}

			cfg, err := server.TryLoadFromDisk(configFilePath)
			if err != nil {
				zap.S().Errorf("配置文件加载错误:%s", err.Error())
				return fmt.Errorf("无法加载配置文件: %w", err)
			}

			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			client := api.NewClient(cfg.Upstream)
			if err := client.Health(ctx); err != nil {
				zap.S().Errorf("上游health探测失败: %s", err.Error())
				return err
			}
			zap.S().Info("上游health探测通过")

			categories, err := client.ListCategoriesWithCount(ctx)
			if err != nil {
				zap.S().Errorf("分类接口探测失败: %s", err.Error())
				return err
			}
			zap.S().Infof("分类接口探测通过，共 %d 个分类", len(categories))
			return nil
		},
	}
	cmd.PersistentFlags().StringVarP(&configFilePath, "config", "c", "", "配置文件路径")
	return cmd
}
