package cmd

import (
	"github.com/spf13/cobra"

	"github.com/dmezquita/workspacectl/internal/output"
	"github.com/dmezquita/workspacectl/internal/shortcuts"
	"github.com/dmezquita/workspacectl/internal/template"
)

var syncShortcutsCmd = &cobra.Command{
	Use:   "sync-shortcuts",
	Short: "Sync .desktop launchers with the templates directory",
	Long: `Write one application-menu launcher per workspace template and remove
launchers whose template no longer exists. Only files this tool created
(workspacectl-*.desktop) are ever touched.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		infos, err := template.List()
		if err != nil {
			return err
		}
		dir, _ := cmd.Flags().GetString("dir")
		res, err := shortcuts.Sync(infos, dir)
		if err != nil {
			return err
		}
		return output.Print(res)
	},
}

func init() {
	rootCmd.AddCommand(syncShortcutsCmd)
	syncShortcutsCmd.Flags().String("dir", shortcuts.DefaultDir(), "Applications directory to write launchers into")
}
