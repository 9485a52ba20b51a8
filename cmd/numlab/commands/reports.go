package commands

import (
	"bytes"
	"encoding/json"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"numlab/internal/domain"
)

func reportsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reports",
		Short: "List or show saved reports",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List saved reports, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := appCtx.Reports.ListReports()
			if err != nil {
				return err
			}
			if len(list) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no reports")
				return nil
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tKIND\tCREATED")
			for _, r := range list {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", r.ID, r.Kind, r.CreatedAt.Local().Format(time.DateTime))
			}
			return tw.Flush()
		},
	}, &cobra.Command{
		Use:   "show <id>",
		Short: "Print a saved report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := appCtx.Reports.LoadReport(domain.ReportID(args[0]))
			if err != nil {
				return err
			}
			var pretty bytes.Buffer
			if err := json.Indent(&pretty, r.Payload, "", "  "); err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Report %s (%s, %s)\nFingerprint: %s\n%s\n",
				r.ID, r.Kind, r.CreatedAt.Format(time.RFC3339), r.Fingerprint, pretty.String())
			return nil
		},
	})
	return cmd
}
