package cli

import (
	"context"
	"net/http"
	"time"

	"github.com/interviewkickstart/funcsig/funcsig/go/frontend"
	"github.com/interviewkickstart/funcsig/go/skerr"
	"github.com/interviewkickstart/funcsig/go/sklog"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/urfave/cli/v2"
)

// flag names
const (
	portFlagName     = "port"
	promPortFlagName = "prom_port"
)

const shutdownTimeout = 10 * time.Second

// serveCmd runs the JSON API.
type serveCmd struct {
	commonCmd
	port     string
	promPort string
}

// ServeCommand returns a [*cli.Command] that runs the HTTP server.
func ServeCommand() *cli.Command {
	cmd := &serveCmd{}
	return &cli.Command{
		Name:        "serve",
		Description: "serve runs the signature parsing JSON API.",
		Usage:       "funcsig serve --port :8000 --prom_port :20000",
		Flags:       cmd.flags(),
		Action:      cmd.action,
	}
}

func (cmd *serveCmd) flags() []cli.Flag {
	fl := []cli.Flag{
		&cli.StringFlag{
			Name:        portFlagName,
			Value:       ":8000",
			Usage:       "HTTP service address (e.g., ':8000')",
			Destination: &cmd.port,
		},
		&cli.StringFlag{
			Name:        promPortFlagName,
			Value:       ":20000",
			Usage:       "Metrics service address (e.g., ':20000'). Empty disables it.",
			Destination: &cmd.promPort,
		},
	}
	return append(fl, cmd.commonCmd.flags()...)
}

func (cmd *serveCmd) action(cliCtx *cli.Context) error {
	cfg, err := cmd.loadConfig(cliCtx)
	if err != nil {
		return err
	}
	f, err := frontend.New(cfg)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              cmd.port,
		Handler:           f.Handler(),
		ReadHeaderTimeout: time.Minute,
	}
	servers := []*http.Server{srv}

	if cmd.promPort != "" {
		promSrv := &http.Server{
			Addr:              cmd.promPort,
			Handler:           promhttp.Handler(),
			ReadHeaderTimeout: time.Minute,
		}
		servers = append(servers, promSrv)
		go func() {
			sklog.Infof("Serving metrics on %s", cmd.promPort)
			if err := promSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				sklog.Errorf("Metrics server: %s", err)
			}
		}()
	}

	ctx := cliCtx.Context
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		for _, s := range servers {
			if err := s.Shutdown(shutdownCtx); err != nil {
				sklog.Errorf("Shutdown %s: %s", s.Addr, err)
			}
		}
	}()

	sklog.Infof("Ready to serve on %s", cmd.port)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return skerr.Wrap(err)
	}
	return nil
}
