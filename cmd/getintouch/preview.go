package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fezwebco/getintouch/pkg/config"
	"github.com/fezwebco/getintouch/pkg/email"
	"github.com/fezwebco/getintouch/svc/contact"
)

func newPreviewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Render both emails for a sample submission into a directory",
		Long: `Renders the owner notification and the thank-you email with the configured
signature and time zone, and writes them as .html and .json files.
No email provider is contacted.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var cfg contact.Config
			if err := config.Load(&cfg); err != nil {
				return err
			}
			loc, err := cfg.Location()
			if err != nil {
				return err
			}

			name, _ := cmd.Flags().GetString("name")
			addr, _ := cmd.Flags().GetString("email")
			message, _ := cmd.Flags().GetString("message")
			out, _ := cmd.Flags().GetString("out")

			sub := contact.Submission{Name: name, Email: addr, Message: message}.Normalize()
			if err := sub.Validate(); err != nil {
				return err
			}

			sender := email.NewDevSender(out)
			renderer := contact.NewRenderer(cfg.SignatureName, cfg.SignatureTitle, contact.WithLocation(loc))
			if err := contact.NewDispatcher(cfg, sender, renderer).Dispatch(cmd.Context(), sub); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "wrote 2 emails to %s\n", sender.Dir())
			return nil
		},
	}

	cmd.Flags().String("name", "Jane Doe", "Submitter name")
	cmd.Flags().String("email", "jane@example.com", "Submitter email")
	cmd.Flags().String("message", "Hello! I'd love to talk about a project.", "Message body")
	cmd.Flags().String("out", "./tmp/emails", "Output directory")
	return cmd
}
