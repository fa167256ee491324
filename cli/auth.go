package cli

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/zalando/go-keyring"
)

const keyringService = "droidctl"
const keyringUser = "api-token"

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage the server API token",
	Long:  `Commands for managing the API token the server uses to authenticate remote clients. The token is stored in the operating system keyring.`,
}

var authCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Generate and store a new API token",
	Long:  `Generates a new random API token and stores it in the keyring, replacing any existing token. Clients pass it as "Authorization: Bearer <token>" when the server runs with --auth.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		token := uuid.NewString()
		if err := keyring.Set(keyringService, keyringUser, token); err != nil {
			return fmt.Errorf("failed to store token: %w", err)
		}

		fmt.Println(token)
		return nil
	},
}

var authTokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Display the current API token",
	RunE: func(cmd *cobra.Command, args []string) error {
		token, err := keyring.Get(keyringService, keyringUser)
		if err != nil {
			return fmt.Errorf("no API token found, run 'droidctl auth create' first")
		}

		fmt.Println(token)
		return nil
	},
}

var authRevokeCmd = &cobra.Command{
	Use:   "revoke",
	Short: "Delete the stored API token",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := keyring.Delete(keyringService, keyringUser); err != nil {
			fmt.Println("no API token stored")
			return nil
		}

		fmt.Println("API token revoked.")
		return nil
	},
}

// GetAPIToken reads the stored API token for server startup.
func GetAPIToken() (string, error) {
	return keyring.Get(keyringService, keyringUser)
}

func init() {
	rootCmd.AddCommand(authCmd)
	authCmd.AddCommand(authCreateCmd, authTokenCmd, authRevokeCmd)
}
