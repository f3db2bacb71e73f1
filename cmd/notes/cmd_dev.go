package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/brain-hol/notes/internal/site"
	"github.com/brain-hol/notes/internal/watch"
)

func runDev(args []string, stdout io.Writer) error {
	fs, c := newFlagSet("dev")
	addr := fs.String("addr", "localhost:5173", "address to serve the site on")
	if err := parse(fs, c, args); err != nil {
		return err
	}

	cfg, err := site.LoadConfig(c.config)
	if err != nil {
		return err
	}
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	prev, err := site.Build(ctx, cfg, cwd)
	if err != nil {
		return err
	}

	// Each change rebuilds from scratch, re-reading the config so edits to
	// it apply too. prev is only touched on the trigger's worker.
	rebuild := func(ctx context.Context) error {
		cfg, err := site.LoadConfig(c.config)
		if err != nil {
			return err
		}
		res, err := site.Build(ctx, cfg, cwd)
		if err != nil {
			return err
		}
		d, err := site.Diff(prev, res)
		if err != nil {
			return err
		}
		if d != "" {
			slog.Info("navigation changed")
			fmt.Fprint(stdout, d)
		}
		prev = res
		return nil
	}
	trigger := watch.NewTrigger(rebuild, watch.WithResults(func(r watch.Result) {
		if r.Err == nil {
			slog.Info("rebuilt", "path", r.Event.Path, "took", r.Took.Round(time.Millisecond))
		}
	}))

	srv := &http.Server{
		Addr:              *addr,
		Handler:           siteHandler(cfg.Base, cfg.OutputDir(cwd)),
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("serving site", "url", "http://"+*addr+cfg.Base)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	g.Go(func() error {
		return watch.Run(ctx, cfg.ContentRoot(cwd), cfg.IgnoreSet(cwd), trigger)
	})
	return g.Wait()
}

// siteHandler serves outDir below base.
func siteHandler(base, outDir string) http.Handler {
	files := http.FileServer(http.Dir(outDir))
	prefix := strings.TrimSuffix(base, "/")
	mux := http.NewServeMux()
	mux.Handle(base, http.StripPrefix(prefix, files))
	if base != "/" {
		mux.Handle("/", http.RedirectHandler(base, http.StatusFound))
	}
	return mux
}
