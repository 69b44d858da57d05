package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/verdantgarden/verdant/internal/config"
	"github.com/verdantgarden/verdant/internal/db"
	"github.com/verdantgarden/verdant/internal/snapshots"
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Manage theme snapshots",
	Long:  "Create and list JSON exports of all theme documents",
}

var snapshotCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Write a snapshot now",
	Run: func(cmd *cobra.Command, args []string) {
		if err := initSystemDB(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		manager := snapshots.NewManager(
			config.GetString("snapshots.path"),
			config.GetInt("snapshots.retention"),
		)
		path, err := manager.CreateSnapshot(db.GetDB())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating snapshot: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Snapshot written: %s\n", path)
	},
}

var snapshotListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available snapshots",
	Run: func(cmd *cobra.Command, args []string) {
		if err := initConfig(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		manager := snapshots.NewManager(
			config.GetString("snapshots.path"),
			config.GetInt("snapshots.retention"),
		)
		list, err := manager.List()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error listing snapshots: %v\n", err)
			os.Exit(1)
		}

		if len(list) == 0 {
			fmt.Println("No snapshots found")
			return
		}
		for _, path := range list {
			info, err := os.Stat(path)
			if err != nil {
				continue
			}
			fmt.Printf("%s (%s, %d bytes)\n", filepath.Base(path), info.ModTime().Format("2006-01-02 15:04:05"), info.Size())
		}
	},
}

func init() {
	snapshotCmd.AddCommand(snapshotCreateCmd)
	snapshotCmd.AddCommand(snapshotListCmd)
	rootCmd.AddCommand(snapshotCmd)
}
