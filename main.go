// Command localserve serves a local directory over HTTP for development and
// previewing static sites.
package main

import (
	"log"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/f4ah6o/localserve-go/internal/config"
	"github.com/f4ah6o/localserve-go/internal/server"
)

type serveOptions struct {
	dir  string
	port string
	open bool
}

func newRootCommand() *cobra.Command {
	opts := &serveOptions{}

	cmd := &cobra.Command{
		Use:   "localserve",
		Short: "Serve a local directory over HTTP",
		Long: `localserve serves the files under a directory over HTTP, with
directory listings for folders without an index.html.`,
		// Unknown flags and stray positional arguments are ignored rather
		// than rejected; an unusable --port value silently keeps the default.
		Args:               cobra.ArbitraryArgs,
		FParseErrWhitelist: cobra.FParseErrWhitelist{UnknownFlags: true},
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.New(opts.dir, opts.port, opts.open)
			if err != nil {
				return err
			}
			return server.New(cfg).Run()
		},
	}

	cmd.Flags().StringVarP(&opts.dir, "dir", "d", ".", "directory to serve")
	cmd.Flags().StringVarP(&opts.port, "port", "p", strconv.Itoa(config.DefaultPort), "port to serve on")
	cmd.Flags().BoolVarP(&opts.open, "open", "o", false, "open the browser after starting")
	return cmd
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
