package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/edu2job/edu2job/pkg/kvs"
	"github.com/edu2job/edu2job/pkg/session"
)

// whoamiCmd prints the remembered session, if any.
var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the remembered session",
	Long: `Show who is signed in according to the durable session store.

Sessions saved without "remember me" live only as long as a running
server, so this command only ever sees remembered sessions.`,
	RunE: runWhoami,
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}

func runWhoami(cmd *cobra.Command, args []string) error {
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
	sess, rememberMe, err := store.Read(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to read session: %w", err)
	}

	if sess == nil || !rememberMe {
		fmt.Println("Not signed in.")
		return nil
	}

	fmt.Printf("%s <%s>\n", sess.User.Name, sess.User.Email)
	fmt.Printf("Role:     %s\n", sess.User.Role)
	fmt.Printf("Provider: %s\n", sess.User.Provider)
	if sess.User.IsFlagged {
		fmt.Printf("Flagged:  %s\n", sess.User.FlagReason)
	}
	return nil
}
