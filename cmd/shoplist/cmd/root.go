package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/GriffinCanCode/ShopList/client/internal/api"
	"github.com/GriffinCanCode/ShopList/client/internal/app"
	"github.com/GriffinCanCode/ShopList/client/internal/client"
	"github.com/GriffinCanCode/ShopList/client/internal/infrastructure/config"
	"github.com/GriffinCanCode/ShopList/client/internal/infrastructure/logging"
	"github.com/GriffinCanCode/ShopList/client/internal/shared/utils"
	"github.com/spf13/cobra"
)

// runtime carries what the commands share once the root has initialised.
type runtime struct {
	output string
	dev    bool

	app     *app.App
	logger  *logging.Logger
	printer *printer
}

func (rt *runtime) start(cmd *cobra.Command) error {
	p, err := newPrinter(rt.output, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	rt.printer = p

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// Keep stderr quiet unless asked: info logs would interleave with output.
	level := "warn"
	if _, set := os.LookupEnv("LOG_LEVEL"); set {
		level = cfg.Logging.Level
	}
	if rt.dev {
		level = "debug"
	}
	rt.logger = logging.FromLevel(level, rt.dev || cfg.Logging.Development)

	rt.app, err = app.New(cfg, rt.logger.Logger)
	return err
}

func (rt *runtime) close() {
	if rt.app != nil {
		_ = rt.app.Close()
		rt.app = nil
	}
	if rt.logger != nil {
		_ = rt.logger.Sync()
	}
}

func newRootCommand(rt *runtime) *cobra.Command {
	root := &cobra.Command{
		Use:   "shoplist",
		Short: "Manage your shopping lists from the terminal",
		Long: `shoplist talks to the shopping-list service: sign in, then create,
view and delete lists and add items to them. The session renews itself
when the access token expires.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return rt.start(cmd)
		},
	}

	root.PersistentFlags().StringVarP(&rt.output, "output", "o", formatTable, "Output format: table, json or yaml")
	root.PersistentFlags().BoolVar(&rt.dev, "dev", false, "Verbose development logging to stderr")

	root.AddCommand(
		newCheckUserCmd(rt),
		newRegisterCmd(rt),
		newLoginCmd(rt),
		newLogoutCmd(rt),
		newStatusCmd(rt),
		newListsCmd(rt),
		newListCmd(rt),
		newCreateCmd(rt),
		newAddCmd(rt),
		newDeleteCmd(rt),
	)
	return root
}

// Execute runs the CLI and returns the process exit code.
func Execute(ctx context.Context) int {
	rt := &runtime{}
	defer rt.close()

	root := newRootCommand(rt)
	if err := root.ExecuteContext(ctx); err != nil {
		reportError(root.ErrOrStderr(), err)
		return 1
	}
	return 0
}

// reportError prints err with a hint for the failures users can act on.
func reportError(w io.Writer, err error) {
	switch {
	case api.IsUnauthorized(err):
		fmt.Fprintf(w, "Error: %v\nYour session has expired or you are not signed in. Run `shoplist login`.\n", err)
	case errors.Is(err, client.ErrUnavailable):
		fmt.Fprintf(w, "Error: %v\nThe service is not responding. Try again later.\n", err)
	case errors.Is(err, utils.ErrValidation):
		fmt.Fprintf(w, "Invalid input: %v\n", err)
	default:
		fmt.Fprintf(w, "Error: %v\n", err)
	}
}
