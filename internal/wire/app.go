package wire

import (
	"context"
	"io"
	"log"

	"github.com/mithrel/smgrid/internal/config"
	"github.com/mithrel/smgrid/internal/present"
)

// App aggregates the resolved configuration and shared services for commands.
type App struct {
	Cfg     config.Config
	Log     *log.Logger
	Present present.Options
	// ConfigErr holds validation problems for commands allowed to run with
	// an invalid config.
	ConfigErr error
}

// BuildApp wires dependencies with the provided config. Log output goes to
// logOut only when cfg.Verbose is set.
func BuildApp(_ context.Context, cfg config.Config, logOut io.Writer) (*App, error) {
	if !cfg.Verbose {
		logOut = io.Discard
	}
	logger := log.New(logOut, "smgrid ", log.LstdFlags)

	mode, ok := present.ParseMode(cfg.Output)
	if !ok {
		logger.Printf("unknown output %q, using plain", cfg.Output)
	}
	return &App{
		Cfg: cfg,
		Log: logger,
		Present: present.Options{
			Mode:       mode,
			JSONIndent: cfg.JSON.Indent,
		},
	}, nil
}
