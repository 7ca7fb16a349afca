package commands

import (
	"context"
	"fmt"
	"os/exec"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/descape/descape/internal/logger"
	"github.com/descape/descape/internal/webui"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the local web form",
	Long: `Serve starts a local web form for interactive cleaning: paste or
open a markdown file, review the cleaned result side by side, and copy
or save it.

The server binds to loopback only by default.

Examples:
  # Default address (http://127.0.0.1:8632)
  descape serve

  # Open the form in the default browser
  descape serve --open

  # Different port
  descape serve --listen 127.0.0.1:9000`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	flags := serveCmd.Flags()
	flags.StringP("listen", "l", webui.DefaultConfig().Addr, "listen address")
	flags.Bool("open", false, "open the form in the default browser")

	_ = viper.BindPFlag("listen", flags.Lookup("listen"))
}

func runServe(cmd *cobra.Command, args []string) error {
	logger.Init(logger.Options{
		Debug: viper.GetBool("debug"),
		Quiet: viper.GetBool("quiet"),
	})

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	addr := viper.GetString("listen")
	srv, err := webui.New(webui.Config{Addr: addr})
	if err != nil {
		logError("%v", err)
		return err
	}

	url := fmt.Sprintf("http://%s/", addr)
	logInfo("serving on %s (ctrl-c to stop)", url)

	if open, _ := cmd.Flags().GetBool("open"); open {
		openBrowser(url)
	}

	if err := srv.Start(ctx); err != nil {
		logError("%v", err)
		return err
	}
	return nil
}

// openBrowser makes a best-effort attempt to open url in the default
// browser. Failures are logged and otherwise ignored.
func openBrowser(url string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	if err := cmd.Start(); err != nil {
		logger.Debug("opening browser", "error", err)
	}
}
