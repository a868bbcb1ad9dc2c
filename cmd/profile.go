package main

import (
	"fmt"

	"community_survey/internal/client"
	"community_survey/internal/identity"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

var (
	profileName    string
	profileEmail   string
	profileAddress string
	profileDOB     string
	resetIdentity  bool
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "View or edit your details",
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the stored profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		api, token, err := newAPIClient()
		if err != nil {
			return err
		}
		u, err := api.GetUser(cmd.Context(), token.String())
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "id:            %s\n", token)
		fmt.Fprintf(out, "name:          %s\n", orDash(u.Name))
		fmt.Fprintf(out, "email:         %s\n", orDash(u.Email))
		fmt.Fprintf(out, "address:       %s\n", orDash(u.Address))
		fmt.Fprintf(out, "date of birth: %s\n", orDash(u.DateOfBirth))
		return nil
	},
}

var profileSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Save the profile; omitted fields are cleared",
	RunE: func(cmd *cobra.Command, args []string) error {
		api, token, err := newAPIClient()
		if err != nil {
			return err
		}
		p := client.NewProfile(profileName, profileEmail, profileAddress, profileDOB)
		if _, err := api.SaveUser(cmd.Context(), token.String(), p); err != nil {
			return err
		}
		cmd.Println("Saved.")
		return nil
	},
}

var profileForgetCmd = &cobra.Command{
	Use:   "forget",
	Short: "Delete all of your answers",
	RunE: func(cmd *cobra.Command, args []string) error {
		api, token, err := newAPIClient()
		if err != nil {
			return err
		}
		removed, err := api.DeleteAnswers(cmd.Context(), token.String())
		if err != nil {
			return err
		}
		cmd.Printf("Removed %s answers.\n", humanize.Comma(removed))
		if resetIdentity {
			if err := identity.Forget(cfg.Client.IdentityFile); err != nil {
				return err
			}
			cmd.Println("Identity reset; a new one is created next time.")
		}
		return nil
	},
}

func orDash(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}

func init() {
	profileSaveCmd.Flags().StringVar(&profileName, "name", "", "full name")
	profileSaveCmd.Flags().StringVar(&profileEmail, "email", "", "email address")
	profileSaveCmd.Flags().StringVar(&profileAddress, "address", "", "postal address")
	profileSaveCmd.Flags().StringVar(&profileDOB, "dob", "", "date of birth (YYYY-MM-DD)")
	profileForgetCmd.Flags().BoolVar(&resetIdentity, "reset-identity", false, "also discard the local identity")

	profileCmd.AddCommand(profileShowCmd)
	profileCmd.AddCommand(profileSaveCmd)
	profileCmd.AddCommand(profileForgetCmd)
}
