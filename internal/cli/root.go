package cli

import (
	"context"
	"flag"

	"coursecatalog/internal/config"
	"coursecatalog/internal/repository"

	"github.com/spf13/cobra"
)

// RootCmd returns the coursecatalog command with every subcommand attached. glog's flags
// (-v, -logtostderr, ...) are accepted as persistent flags.
func RootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "coursecatalog",
		Short: "Course catalog server and admin tools",
		Long: `coursecatalog serves a searchable, paginated course catalog backed by
Firestore or SQLite, and provides commands to inspect and seed the catalog.

Configuration is read from the environment (PORT, BACKEND, SQLITE_PATH,
FIREBASE_CREDENTIALS, PAGE_SIZE, ...).`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// glog reads its flags from flag.CommandLine; cobra has already parsed them.
			_ = flag.CommandLine.Parse([]string{})
			config.Config = config.Load()
			return nil
		},
	}

	rootCmd.PersistentFlags().AddGoFlagSet(flag.CommandLine)

	rootCmd.AddCommand(ServeCmd())
	rootCmd.AddCommand(SlugCmd())
	rootCmd.AddCommand(CoursesCmd())
	rootCmd.AddCommand(SeedCmd())

	return rootCmd
}

// openRepository opens the configured backend for a one-off command.
func openRepository(ctx context.Context) (repository.CourseRepository, error) {
	return repository.New(ctx, config.Config)
}
