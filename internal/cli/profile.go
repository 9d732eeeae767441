package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/globallingo/lingo/internal/domain"
)

func init() {
	profileCmd.Flags().StringVar(&profileName, "name", "", "New display name")
	profileCmd.Flags().StringVar(&profileAvatar, "avatar", "", "New avatar (must be unlocked)")
	profileCmd.AddCommand(avatarsCmd)
	rootCmd.AddCommand(profileCmd)
}

var (
	profileName   string
	profileAvatar string
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show or change your name and avatar",
	Args:  cobra.NoArgs,
	RunE:  runProfile,
}

func runProfile(cmd *cobra.Command, args []string) error {
	d, err := openDaemon(true, nil)
	if err != nil {
		return err
	}
	defer d.Close()

	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	if profileName == "" && profileAvatar == "" {
		sum, err := d.Session.Summary(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s %s\n", sum.Profile.Avatar, sum.Profile.Name)
		return nil
	}

	p, err := d.Session.UpdateProfile(ctx, profileName, domain.AvatarID(profileAvatar))
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Updated: %s %s\n", p.Avatar, p.Name)
	return nil
}

var avatarsCmd = &cobra.Command{
	Use:   "avatars",
	Short: "List avatars, locked ones in brackets",
	Args:  cobra.NoArgs,
	RunE:  runAvatars,
}

func runAvatars(cmd *cobra.Command, args []string) error {
	d, err := openDaemon(true, nil)
	if err != nil {
		return err
	}
	defer d.Close()

	avatars, err := d.Session.Avatars(cmd.Context())
	if err != nil {
		return err
	}

	parts := make([]string, len(avatars))
	for i, a := range avatars {
		if a.Unlocked {
			parts[i] = string(a.ID)
		} else {
			parts[i] = "[" + string(a.ID) + "]"
		}
	}
	fmt.Fprintln(cmd.OutOrStdout(), strings.Join(parts, " "))
	return nil
}
