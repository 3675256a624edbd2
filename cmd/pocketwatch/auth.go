package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/Veraticus/pocketwatch/internal/cli"
	"github.com/Veraticus/pocketwatch/internal/model"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func registerCmd() *cobra.Command {
	var (
		email    string
		username string
		fullName string
		password string
	)

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a new account on the backend",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, cleanup, err := newClient()
			if err != nil {
				return err
			}
			defer cleanup()

			if password == "" {
				password, err = readPassword("Password: ")
				if err != nil {
					return err
				}
			}

			user, err := client.Register(cmd.Context(), model.Registration{
				Email:    email,
				Username: username,
				Password: password,
				FullName: fullName,
			})
			if err != nil {
				return fmt.Errorf("registration failed: %w", err)
			}

			fmt.Println(cli.RenderSuccess(fmt.Sprintf("Registered %s (%s). Run 'pocketwatch login' to sign in.", user.Username, user.Email)))
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "email address")
	cmd.Flags().StringVar(&username, "username", "", "username")
	cmd.Flags().StringVar(&fullName, "full-name", "", "full name (optional)")
	cmd.Flags().StringVar(&password, "password", "", "password (prompted when omitted)")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("username")

	return cmd
}

func loginCmd() *cobra.Command {
	var password string

	cmd := &cobra.Command{
		Use:   "login <username>",
		Short: "Sign in and persist the session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, cleanup, err := newClient()
			if err != nil {
				return err
			}
			defer cleanup()

			if password == "" {
				password, err = readPassword("Password: ")
				if err != nil {
					return err
				}
			}

			if _, err := client.Login(cmd.Context(), args[0], password); err != nil {
				return fmt.Errorf("login failed: %w", err)
			}

			fmt.Println(cli.RenderSuccess("Logged in as " + args[0]))
			return nil
		},
	}

	cmd.Flags().StringVar(&password, "password", "", "password (prompted when omitted)")

	return cmd
}

func logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Discard the local session",
		RunE: func(_ *cobra.Command, _ []string) error {
			client, cleanup, err := newClient()
			if err != nil {
				return err
			}
			defer cleanup()

			client.Logout()
			fmt.Println(cli.RenderInfo("Logged out."))
			return nil
		},
	}
}

func whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in user",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, cleanup, err := newClient()
			if err != nil {
				return err
			}
			defer cleanup()

			user, err := client.CurrentUser(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Printf("%s <%s>\n", user.Username, user.Email)
			if user.FullName != "" {
				fmt.Println(user.FullName)
			}
			return nil
		},
	}
}

func readPassword(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	if term.IsTerminal(int(os.Stdin.Fd())) {
		raw, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return "", fmt.Errorf("failed to read password: %w", err)
		}
		return string(raw), nil
	}

	// Piped input (tests, scripts)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
