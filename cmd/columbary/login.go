// Login command checks a credential against the gateway's users table.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	loginUsername string
	loginPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Verify a login name and password",
	Long: `Login checks the credential against the gateway's user table.

When the gateway is unreachable the built-in demo credential is accepted
instead.

Example:
  columbary login --username admin --password admin123`,
	Args: cobra.NoArgs,
	RunE: runLogin,
}

func init() {
	loginCmd.Flags().StringVar(&loginUsername, "username", "", "login name (required)")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "password (required)")
	_ = loginCmd.MarkFlagRequired("username")
	_ = loginCmd.MarkFlagRequired("password")
}

func runLogin(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig()
	if err != nil {
		return err
	}
	gw, closeFn, err := openGateway(cfg)
	if err != nil {
		return err
	}
	defer closeFn()

	svc := newService(gw)
	if err := svc.Login(cmd.Context(), loginUsername, loginPassword); err != nil {
		return err
	}
	fmt.Printf("Logged in as %s\n", loginUsername)
	return nil
}
