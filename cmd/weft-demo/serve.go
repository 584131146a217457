package main

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/weft-dev/weft/pkg/live"
	"github.com/weft-dev/weft/pkg/middleware"
	"github.com/weft-dev/weft/pkg/vdom"
)

func serveCmd() *cobra.Command {
	var (
		address  string
		interval time.Duration
		items    int
		verbose  bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the demo server",
		Long: `Start the demo server.

The server publishes a mutating keyed list on a timer and exposes:

  /          rendered HTML snapshot of the current tree
  /live      websocket patch stream
  /metrics   Prometheus reconcile metrics
  /healthz   health check

Examples:
  weft-demo serve
  weft-demo serve --address=:3000 --interval=250ms`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(address, interval, items, verbose)
		},
	}

	cmd.Flags().StringVarP(&address, "address", "a", ":8080", "HTTP listen address")
	cmd.Flags().DurationVarP(&interval, "interval", "i", time.Second, "Publish interval")
	cmd.Flags().IntVarP(&items, "items", "n", 10, "Initial list size")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	return cmd
}

func runServe(address string, interval time.Duration, items int, verbose bool) error {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	feed := newFeed(items)

	config := live.DefaultConfig()
	config.Address = address
	config.Title = "Weft demo"

	srv := live.New(feed.tree(), config)
	srv.Use(middleware.Prometheus())
	srv.Use(middleware.OpenTelemetry())

	router := chi.NewRouter()
	router.Handle("/metrics", promhttp.Handler())
	router.Mount("/", srv.Router())

	httpServer := &http.Server{
		Addr:              address,
		Handler:           router,
		ReadHeaderTimeout: config.ReadHeaderTimeout,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go feed.run(ctx, srv, interval)

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		logger.Info("demo server starting", "address", address, "interval", interval)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != http.ErrServerClosed {
			return err
		}
		return nil
	case <-shutdown:
		logger.Info("shutting down...")
		cancel()
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
		defer shutdownCancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return httpServer.Shutdown(shutdownCtx)
	}
}

// feed produces a mutating keyed list. Surviving items keep their node
// pointers between ticks so the differ's shared-entry fast paths apply.
type feed struct {
	rng     *rand.Rand
	items   []*vdom.VNode
	nextKey int
	tick    int
}

func newFeed(n int) *feed {
	f := &feed{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
	for i := 0; i < n; i++ {
		f.items = append(f.items, f.newItem())
	}
	return f
}

func (f *feed) newItem() *vdom.VNode {
	f.nextKey++
	key := fmt.Sprintf("item-%d", f.nextKey)
	return vdom.Li(vdom.Key(key), vdom.Class("item"), vdom.Text(key))
}

func (f *feed) tree() *vdom.VNode {
	children := make([]*vdom.VNode, len(f.items))
	copy(children, f.items)
	return vdom.Div(vdom.Class("app"),
		vdom.H1(vdom.Text("Weft demo")),
		vdom.P(vdom.Text(fmt.Sprintf("tick %d", f.tick))),
		vdom.Ul(vdom.Class("feed"), children),
	)
}

// mutate applies one list operation, cycling through the shapes the
// differ has fast paths for plus a shuffle for the general case.
func (f *feed) mutate() {
	f.tick++
	switch f.tick % 6 {
	case 0: // append
		f.items = append(f.items, f.newItem())
	case 1: // prepend
		f.items = append([]*vdom.VNode{f.newItem()}, f.items...)
	case 2: // remove from start
		if len(f.items) > 1 {
			f.items = f.items[1:]
		}
	case 3: // remove from end
		if len(f.items) > 1 {
			f.items = f.items[:len(f.items)-1]
		}
	case 4: // reverse
		for i, j := 0, len(f.items)-1; i < j; i, j = i+1, j-1 {
			f.items[i], f.items[j] = f.items[j], f.items[i]
		}
	case 5: // shuffle
		f.rng.Shuffle(len(f.items), func(i, j int) {
			f.items[i], f.items[j] = f.items[j], f.items[i]
		})
	}
}

func (f *feed) run(ctx context.Context, srv *live.Server, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			f.mutate()
			srv.Publish(ctx, f.tree())
		}
	}
}
