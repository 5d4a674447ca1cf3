package cmd

import (
	"navsite-web/pkg/util"

	"github.com/spf13/cobra"
)

func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     util.AppName,
		Short:   "网址导航站web服务",
		Version: util.GetVersion().Version,
	}
	cmd.AddCommand(NewServerCommand())
	cmd.AddCommand(NewCheckCommand())
	return cmd
}
