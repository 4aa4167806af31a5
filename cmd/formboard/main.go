package main

import (
	"os"

	"github.com/goliatone/go-formboard/internal/commands"
)

func main() {
	rootCmd := commands.RootCmd()

	rootCmd.AddCommand(commands.ListCmd())
	rootCmd.AddCommand(commands.CreateCmd())
	rootCmd.AddCommand(commands.RenameCmd())
	rootCmd.AddCommand(commands.DeleteCmd())
	rootCmd.AddCommand(commands.ShowCmd())

	rootCmd.AddCommand(commands.AddSectionCmd())
	rootCmd.AddCommand(commands.SetSectionTitleCmd())
	rootCmd.AddCommand(commands.AddFieldCmd())
	rootCmd.AddCommand(commands.SetFieldCmd())
	rootCmd.AddCommand(commands.DeleteFieldCmd())

	rootCmd.AddCommand(commands.BuildCmd())
	rootCmd.AddCommand(commands.FillCmd())
	rootCmd.AddCommand(commands.RenderCmd())
	rootCmd.AddCommand(commands.ServeCmd())
	rootCmd.AddCommand(commands.SubmissionsCmd())

	rootCmd.AddCommand(commands.ExportCmd())
	rootCmd.AddCommand(commands.ImportCmd())
	rootCmd.AddCommand(commands.ImportOpenAPICmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
