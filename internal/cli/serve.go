package cli

import (
	"os"
	"os/signal"
	"syscall"

	"coursecatalog/internal/auth"
	"coursecatalog/internal/config"
	"coursecatalog/internal/repository"
	"coursecatalog/internal/server"

	"github.com/golang/glog"
	"github.com/spf13/cobra"
)

// ServeCmd returns the serve command, which runs the HTTP server until interrupted.
func ServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the catalog web server",
		RunE:  runServe,
	}

	cmd.Flags().Int("port", 0, "Port to listen on (overrides PORT)")
	cmd.Flags().Bool("no-auth", false, "Skip Firebase session setup; every visitor is anonymous")

	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	if port, _ := cmd.Flags().GetInt("port"); port > 0 {
		config.Config.Port = port
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := repository.Initialize(ctx, config.Config); err != nil {
		return err
	}
	defer repository.Repository.Close()

	if noAuth, _ := cmd.Flags().GetBool("no-auth"); !noAuth {
		if err := auth.Initialize(ctx, config.Config); err != nil {
			glog.Warningf("sign-in disabled: %v", err)
		}
	}

	defer glog.Flush()
	return server.Start(ctx)
}
