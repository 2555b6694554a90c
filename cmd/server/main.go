package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"golang.org/x/time/rate"

	"unitengine/internal/api"
	"unitengine/internal/engine"
	"unitengine/internal/units/catalog"
	"unitengine/internal/watcher"
)

type config struct {
	Addr      string
	Data      string
	LogLevel  log.Lvl
	RateLimit float64
	Watch     bool
	Workers   int
}

// loadConfig reads flags, then UNITENGINE_* environment variables for any
// flag left unset.
func loadConfig(args []string) (config, error) {
	flags := pflag.NewFlagSet("unitengine", pflag.ContinueOnError)
	flags.String("addr", ":8080", "address to listen on")
	flags.String("data", "quantities.csv", "CSV file of quantity columns (header: name:unit,...)")
	flags.String("log-level", "info", "debug, info, warn, error or off")
	flags.Float64("rate-limit", 20, "requests per second per client; 0 disables limiting")
	flags.Bool("watch", true, "reload the data file when it changes")
	flags.Int("workers", 0, "parallel workers per kernel; 0 means one per CPU")
	if err := flags.Parse(args); err != nil {
		return config{}, err
	}

	v := viper.New()
	v.SetEnvPrefix("unitengine")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(flags); err != nil {
		return config{}, err
	}

	lvl, err := parseLevel(v.GetString("log-level"))
	if err != nil {
		return config{}, err
	}
	cfg := config{
		Addr:      v.GetString("addr"),
		Data:      v.GetString("data"),
		LogLevel:  lvl,
		RateLimit: v.GetFloat64("rate-limit"),
		Watch:     v.GetBool("watch"),
		Workers:   v.GetInt("workers"),
	}
	if cfg.RateLimit < 0 {
		return config{}, fmt.Errorf("rate-limit must not be negative, got %g", cfg.RateLimit)
	}
	return cfg, nil
}

func parseLevel(s string) (log.Lvl, error) {
	switch strings.ToLower(s) {
	case "debug":
		return log.DEBUG, nil
	case "info":
		return log.INFO, nil
	case "warn":
		return log.WARN, nil
	case "error":
		return log.ERROR, nil
	case "off":
		return log.OFF, nil
	}
	return 0, fmt.Errorf("unknown log level %q", s)
}

func main() {
	cfg, err := loadConfig(os.Args[1:])
	if errors.Is(err, pflag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatal(err)
	}
	log.SetLevel(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 1. Registry and engine (the catalog is built once and frozen)
	reg := catalog.New()
	eng := engine.New(reg, cfg.Workers)
	metrics := api.NewMetrics()

	// 2. Initialize Echo
	e := echo.New()
	e.Logger.SetLevel(cfg.LogLevel)
	e.JSONSerializer = api.JSONSerializer{}
	e.Use(middleware.CORS())
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())
	if cfg.RateLimit > 0 {
		e.Use(middleware.RateLimiter(middleware.NewRateLimiterMemoryStore(rate.Limit(cfg.RateLimit))))
	}

	// Unit routes are live at once; column routes answer 503 until the
	// first load lands.
	h := api.NewHandler(eng, metrics)
	h.RegisterRoutes(e)

	load := func() {
		store, err := engine.LoadColumnar(cfg.Data, reg)
		metrics.ObserveLoad(err)
		if err != nil {
			log.Errorf("load failed, keeping previous data: %v", err)
			return
		}
		h.SetData(store)
	}

	// 3. Load in background, then follow the file if asked
	go func() {
		t0 := time.Now()
		load()
		log.Infof("initial load finished in %v", time.Since(t0))

		if !cfg.Watch {
			return
		}
		w, err := watcher.New(cfg.Data, watcher.DefaultSettle)
		if err != nil {
			log.Errorf("not watching %s: %v", cfg.Data, err)
			return
		}
		defer w.Stop()
		for range w.Watch(ctx) {
			log.Infof("%s changed, reloading", cfg.Data)
			load()
		}
	}()

	// 4. Start Server
	go func() {
		log.Infof("server ready on %s (%d units, data loading in background)", cfg.Addr, reg.Len())
		if err := e.Start(cfg.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			e.Logger.Fatal(err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		e.Logger.Fatal(err)
	}
}
