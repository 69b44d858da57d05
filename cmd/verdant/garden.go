// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"os"
	"regexp"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/verdantgarden/verdant/internal/db"
	"github.com/verdantgarden/verdant/internal/gardens"
	"github.com/verdantgarden/verdant/internal/users"
)

// validSubdomain matches DNS-compliant labels (RFC 1123)
var validSubdomain = regexp.MustCompile(`^[a-z0-9]([a-z0-9-]*[a-z0-9])?$`)

// reservedSubdomains cannot be claimed by gardens
var reservedSubdomains = map[string]bool{
	"admin":   true,
	"api":     true,
	"www":     true,
	"mail":    true,
	"verdant": true,
	"status":  true,
}

var gardenCmd = &cobra.Command{
	Use:   "garden",
	Short: "Manage gardens",
	Long:  "Create, list, and manage hosted gardens",
}

var gardenCreateCmd = &cobra.Command{
	Use:   "create <subdomain>",
	Short: "Create a new garden",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := initSystemDB(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		subdomain := args[0]
		ownerEmail, _ := cmd.Flags().GetString("owner")

		if ownerEmail == "" {
			fmt.Fprintf(os.Stderr, "Error: --owner flag is required\n")
			os.Exit(1)
		}

		if len(subdomain) < 2 || len(subdomain) > 63 || !validSubdomain.MatchString(subdomain) {
			fmt.Fprintf(os.Stderr, "Error: invalid subdomain %q\n", subdomain)
			os.Exit(1)
		}
		if reservedSubdomains[subdomain] {
			fmt.Fprintf(os.Stderr, "Error: subdomain %q is reserved\n", subdomain)
			os.Exit(1)
		}

		owner, err := users.GetUserByEmail(db.GetDB(), ownerEmail)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		garden, err := gardens.CreateGarden(db.GetDB(), subdomain, owner.ID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating garden: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Garden created: %s (ID: %d, owner: %s)\n", garden.Subdomain, garden.ID, owner.Email)
	},
}

var gardenListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all gardens",
	Run: func(cmd *cobra.Command, args []string) {
		if err := initSystemDB(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		list, err := gardens.ListGardens(db.GetDB())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error listing gardens: %v\n", err)
			os.Exit(1)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tSUBDOMAIN\tCUSTOM DOMAIN\tOWNER\tCREATED")
		for _, g := range list {
			custom := ""
			if g.CustomDomain != nil {
				custom = *g.CustomDomain
			}
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", g.ID, g.Subdomain, custom, g.Owner.Email, g.CreatedAt.Format("2006-01-02"))
		}
		w.Flush()
	},
}

var gardenDeleteCmd = &cobra.Command{
	Use:   "delete <subdomain>",
	Short: "Delete a garden",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := initSystemDB(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		garden, err := gardens.GetGardenBySubdomain(db.GetDB(), args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		if err := gardens.DeleteGarden(db.GetDB(), garden.ID); err != nil {
			fmt.Fprintf(os.Stderr, "Error deleting garden: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Garden deleted: %s\n", garden.Subdomain)
	},
}

var gardenAddUserCmd = &cobra.Command{
	Use:   "add-user <subdomain> <email>",
	Short: "Grant a user access to a garden",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		if err := initSystemDB(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		role, _ := cmd.Flags().GetString("role")

		garden, err := gardens.GetGardenBySubdomain(db.GetDB(), args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		user, err := users.GetUserByEmail(db.GetDB(), args[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		if err := gardens.AddUserToGarden(db.GetDB(), garden.ID, user.ID, role); err != nil {
			fmt.Fprintf(os.Stderr, "Error adding user: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Added %s to %s as %s\n", user.Email, garden.Subdomain, role)
	},
}

var gardenDomainCmd = &cobra.Command{
	Use:   "domain <subdomain> <custom-domain>",
	Short: "Attach a custom domain to a garden",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		if err := initSystemDB(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		garden, err := gardens.GetGardenBySubdomain(db.GetDB(), args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		if err := gardens.AddCustomDomain(db.GetDB(), garden.ID, args[1]); err != nil {
			fmt.Fprintf(os.Stderr, "Error adding domain: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Custom domain %s attached to %s\n", args[1], garden.Subdomain)
	},
}

func init() {
	gardenCreateCmd.Flags().String("owner", "", "Email of the garden owner (required)")
	gardenAddUserCmd.Flags().String("role", "editor", "Role: owner, admin, or editor")

	gardenCmd.AddCommand(gardenCreateCmd)
	gardenCmd.AddCommand(gardenListCmd)
	gardenCmd.AddCommand(gardenDeleteCmd)
	gardenCmd.AddCommand(gardenAddUserCmd)
	gardenCmd.AddCommand(gardenDomainCmd)
	rootCmd.AddCommand(gardenCmd)
}
