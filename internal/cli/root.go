package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"linkscan"
)

func newRootCmd() *cobra.Command {
	var (
		verbose   bool
		timeout   int
		output    string
		ignoreTLS bool
	)

	cmd := &cobra.Command{
		Use:           "linkscan <url | file>",
		Short:         "Find broken links in a web page or local HTML document",
		Long:          "Linkscan fetches a page (or reads a local HTML file), extracts every hyperlink, and checks each one for reachability. It exits zero whenever the scan completes, regardless of how many broken links were found.",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			debug := io.Discard
			if verbose {
				debug = cmd.ErrOrStderr()
			}
			report, err := linkscan.Scan(args[0],
				linkscan.WithTimeout(time.Duration(timeout)*time.Second),
				linkscan.WithInsecure(ignoreTLS),
				linkscan.WithDebug(debug),
			)
			if err != nil {
				return err
			}
			renderReport(cmd, report, output)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Print scan progress to stderr")
	cmd.Flags().IntVarP(&timeout, "timeout", "t", int(linkscan.DefaultTimeout/time.Second), "Timeout for HTTP requests in seconds")
	cmd.Flags().StringVarP(&output, "output", "o", "", "File to save the broken links to")
	cmd.Flags().BoolVar(&ignoreTLS, "ignore-tls", false, "Skip TLS certificate verification")

	cmd.AddCommand(newVersionCmd())
	return cmd
}

func renderReport(cmd *cobra.Command, report *linkscan.Report, output string) {
	broken := report.Broken()
	out := cmd.OutOrStdout()
	if len(broken) == 0 {
		fmt.Fprintln(out, "No broken links found.")
		return
	}
	fmt.Fprintln(out, "Broken links found:")
	for _, r := range broken {
		fmt.Fprintf(out, "  %s: %s\n", r.URL, r.StatusLabel())
	}
	if output == "" {
		return
	}
	// A failed save never fails the scan.
	err := saveReport(report, output)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "error writing to output file: %v\n", err)
		return
	}
	fmt.Fprintf(out, "Results saved to %s\n", output)
}

func saveReport(report *linkscan.Report, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	err = report.WriteBroken(f)
	if err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the linkscan version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), linkscan.Version)
		},
	}
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

func Execute() error {
	return newRootCmd().Execute()
}
