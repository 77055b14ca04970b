package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/theapemachine/mcp-server-gravatar/pkg/identity"
	"github.com/theapemachine/mcp-server-gravatar/pkg/service"
)

var (
	emailFlag             string
	hashFlag              string
	selectedEmailHashFlag string
	selectedEmailFlag     string
	profileIdentifierFlag string
	fieldFlag             string
	outFlag               string

	profileByEmailCmd = &cobra.Command{
		Use:   "get_profile_by_email",
		Short: "Fetch a profile by email address",
		RunE: withService(func(cmd *cobra.Command, svc *service.Service) (any, error) {
			return svc.ProfileByEmail(contextOf(cmd), emailFlag)
		}),
	}

	profileByHashCmd = &cobra.Command{
		Use:   "get_profile_by_hash",
		Short: "Fetch a profile by hash",
		RunE: withService(func(cmd *cobra.Command, svc *service.Service) (any, error) {
			return svc.ProfileByHash(contextOf(cmd), hashFlag)
		}),
	}

	avatarsCmd = &cobra.Command{
		Use:   "get_avatars",
		Short: "List the avatars of the authenticated account",
		RunE: withService(func(cmd *cobra.Command, svc *service.Service) (any, error) {
			key := selectedEmailHashFlag

			if selectedEmailFlag != "" {
				var err error
				if key, err = identity.Normalize(selectedEmailFlag); err != nil {
					return nil, err
				}
			}

			fmt.Fprintln(cmd.ErrOrStderr(), "Hash:", key)
			return svc.Avatars(contextOf(cmd), key)
		}),
	}

	selectedAvatarCmd = &cobra.Command{
		Use:   "get_selected_avatar_as_image",
		Short: "Fetch the selected avatar image for an email address",
		Long:  longSelectedAvatar,
		RunE: withService(func(cmd *cobra.Command, svc *service.Service) (any, error) {
			image, ok, err := svc.SelectedAvatarImage(contextOf(cmd), emailFlag)
			if err != nil || !ok {
				return nil, err
			}

			if outFlag != "" {
				if err := os.WriteFile(outFlag, image.Data, 0644); err != nil {
					return nil, err
				}
			}

			return map[string]any{
				"url":      image.URL,
				"mimeType": image.MIMEType,
				"size":     len(image.Data),
			}, nil
		}),
	}

	profileFieldCmd = &cobra.Command{
		Use:   "get_profile_field",
		Short: "Fetch a single field from a profile",
		RunE: withService(func(cmd *cobra.Command, svc *service.Service) (any, error) {
			return svc.FieldByHash(contextOf(cmd), profileIdentifierFlag, fieldFlag)
		}),
	}
)

func init() {
	rootCmd.AddCommand(profileByEmailCmd, profileByHashCmd, avatarsCmd, selectedAvatarCmd, profileFieldCmd)

	profileByEmailCmd.Flags().StringVar(&emailFlag, "email", "", "User's email address")
	_ = profileByEmailCmd.MarkFlagRequired("email")

	profileByHashCmd.Flags().StringVar(&hashFlag, "hash", "", "SHA256 hash of the email")
	_ = profileByHashCmd.MarkFlagRequired("hash")

	avatarsCmd.Flags().StringVar(&selectedEmailHashFlag, "selected_email_hash", "", "SHA256 hash of an email to mark the selected avatar")
	avatarsCmd.Flags().StringVar(&selectedEmailFlag, "selected_email", "", "Email address to hash and mark the selected avatar")
	avatarsCmd.MarkFlagsMutuallyExclusive("selected_email_hash", "selected_email")
	avatarsCmd.MarkFlagsOneRequired("selected_email_hash", "selected_email")

	selectedAvatarCmd.Flags().StringVar(&emailFlag, "email", "", "User's email address")
	selectedAvatarCmd.Flags().StringVarP(&outFlag, "out", "o", "", "Write the image bytes to this file")
	_ = selectedAvatarCmd.MarkFlagRequired("email")

	profileFieldCmd.Flags().StringVar(&profileIdentifierFlag, "profileIdentifier", "", "Hash or slug of the profile")
	profileFieldCmd.Flags().StringVar(&fieldFlag, "field", "", "Name of the profile field to return")
	_ = profileFieldCmd.MarkFlagRequired("profileIdentifier")
	_ = profileFieldCmd.MarkFlagRequired("field")
}

/*
withService builds the service from configuration, runs fn and prints its
result as indented JSON.
*/
func withService(
	fn func(*cobra.Command, *service.Service) (any, error),
) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		svc, err := newService()
		if err != nil {
			return err
		}

		result, err := fn(cmd, svc)
		if err != nil {
			return err
		}

		return printJSON(cmd, result)
	}
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

var longSelectedAvatar = `
Fetch the selected avatar image for an email address and print its URL, MIME
type and size. Prints null when no avatar is selected.

Examples:
  gravatar-mcp get_selected_avatar_as_image --email foo@bar.com --out avatar.png
`
