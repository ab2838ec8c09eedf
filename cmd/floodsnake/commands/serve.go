package commands

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/tonobo/floodsnake/config"
	"github.com/tonobo/floodsnake/policy"
	"github.com/tonobo/floodsnake/server"
)

var (
	port          = config.Port
	moveBudget    = config.MoveBudget
	requestLogDir = config.RequestLogDir
	staticDir     = config.StaticDir
	color         = config.Color
	headType      = config.HeadType
	tailType      = config.TailType
	promListen    = config.PrometheusListen
)

var serveCmd = &cobra.Command{
	Use:    "serve",
	Short:  "serve the snake API over http",
	PreRun: func(c *cobra.Command, args []string) { prometheus() },
	RunE: func(c *cobra.Command, args []string) error {
		opts, err := policyOptions()
		if err != nil {
			return err
		}
		var recorder *server.Recorder
		if requestLogDir != "" {
			if recorder, err = server.NewRecorder(requestLogDir); err != nil {
				return err
			}
		}
		if !log.IsLevelEnabled(log.DebugLevel) {
			gin.SetMode(gin.ReleaseMode)
		}
		s := server.New(server.Options{
			Policy:     policy.New(opts),
			MoveBudget: moveBudget,
			Color:      color,
			HeadType:   headType,
			TailType:   tailType,
			StaticDir:  staticDir,
			Recorder:   recorder,
			Log:        log.StandardLogger(),
		})
		return s.Run(fmt.Sprintf(":%d", port))
	},
}

func init() {
	f := serveCmd.Flags()
	f.IntVar(&port, "port", port, "port to listen on")
	f.DurationVar(&moveBudget, "move-budget", moveBudget, "time allowed per move before answering with the first safe direction")
	f.StringVar(&requestLogDir, "request-log-dir", requestLogDir, "append every request to per-game access logs in this directory")
	f.StringVar(&staticDir, "static-dir", staticDir, "serve files from this directory under /static")
	f.StringVar(&color, "color", color, "snake color")
	f.StringVar(&headType, "head", headType, "snake head type")
	f.StringVar(&tailType, "tail", tailType, "snake tail type")
	f.StringVar(&promListen, "prometheus-listen", promListen, "prometheus http endpoint, disabled when empty")
}

func prometheus() {
	if promListen == "" {
		log.Info("prometheus exporter not enabled")
		return
	}

	log.WithField("addr", promListen).Info("starting prometheus exporter")
	go func() {
		r := http.NewServeMux()
		r.Handle("/metrics", promhttp.Handler())
		if err := http.ListenAndServe(promListen, r); err != nil {
			log.WithError(err).Warn("prometheus failed to listen")
		}
	}()
}
