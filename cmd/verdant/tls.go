package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/verdantgarden/verdant/internal/config"
	"github.com/verdantgarden/verdant/internal/db"
	"github.com/verdantgarden/verdant/internal/tls"
)

var tlsCmd = &cobra.Command{
	Use:   "tls",
	Short: "TLS certificate management",
	Long:  "Manage SSL/TLS certificates for hosted gardens",
}

var tlsStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show certificate status",
	Run: func(cmd *cobra.Command, args []string) {
		if err := initConfig(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		if !config.GetBool("server.tls_enabled") {
			fmt.Println("TLS is disabled. Enable it with: verdant config set server.tls_enabled true")
			os.Exit(0)
		}

		if err := initSystemDB(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		tlsCfg, err := tls.LoadConfig()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load TLS config: %v\n", err)
			os.Exit(1)
		}

		tlsManager, err := tls.NewManager(db.GetDB(), tlsCfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create TLS manager: %v\n", err)
			os.Exit(1)
		}

		statuses, err := tlsManager.GetCertificateStatus()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to get certificate status: %v\n", err)
			os.Exit(1)
		}

		if len(statuses) == 0 {
			fmt.Println("No certificates provisioned yet")
			return
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "DOMAIN\tISSUER\tEXPIRES\tDAYS LEFT")
		for _, s := range statuses {
			fmt.Fprintf(w, "%s\t%s\t%s\t%d\n", s.Domain, s.Issuer, s.NotAfter.Format("2006-01-02"), s.DaysUntilExpiry)
		}
		w.Flush()
	},
}

func init() {
	tlsCmd.AddCommand(tlsStatusCmd)
	rootCmd.AddCommand(tlsCmd)
}
