package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-wml/wml/cmd/wml/internal/config"
)

func init() {
	rootCmd.AddCommand(infoCmd)
}

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show the resolved configuration of the current project",
	Long: `Show the resolved configuration of the wml project containing the
current directory: module path, application name, and dev server address.
Values come from wml.yaml where present, with defaults derived from go.mod.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := config.FindProjectRoot()
		if err != nil {
			return err
		}
		resolved, err := config.Resolve(root)
		if err != nil {
			return err
		}
		fmt.Printf("Project root:  %s\n", resolved.Root)
		fmt.Printf("Module path:   %s\n", resolved.ModulePath)
		fmt.Printf("App name:      %s\n", resolved.AppName)
		fmt.Printf("Server addr:   %s\n", resolved.ServerAddr)
		return nil
	},
}
