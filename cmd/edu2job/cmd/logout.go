package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/edu2job/edu2job/pkg/kvs"
	"github.com/edu2job/edu2job/pkg/session"
)

// logoutCmd clears the remembered session from disk.
var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Clear the remembered session",
	RunE:  runLogout,
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}

func runLogout(cmd *cobra.Command, args []string) error {
	res, err := loadConfig()
	if err != nil {
		return err
	}

	durable, err := kvs.New(res.Config.Storage.Durable)
	if err != nil {
		return fmt.Errorf("failed to open durable store: %w", err)
	}
	defer func() { _ = durable.Close() }()

	ephemeral := kvs.NewMemoryStore()
	defer func() { _ = ephemeral.Close() }()

	store := session.NewStore(durable, ephemeral)
	if err := store.Clear(cmd.Context()); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}

	fmt.Println("Signed out.")
	return nil
}
