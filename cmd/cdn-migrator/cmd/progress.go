package cmd

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/vbauerster/mpb/v4"
	"github.com/vbauerster/mpb/v4/decor"
)

// progress renders one bar advancing per completed tenant. The bar is created
// on the first update, once the tenant count is known.
type progress struct {
	p    *mpb.Progress
	bar  *mpb.Bar
	done int
}

func newProgress(w io.Writer) *progress {
	return &progress{p: mpb.New(mpb.WithOutput(w), mpb.WithWidth(40))}
}

func (t *progress) update(done, total int) {
	if t.bar == nil {
		t.bar = t.p.AddBar(int64(total),
			mpb.PrependDecorators(decor.Name("tenants "), decor.CountersNoUnit("%d / %d")),
			mpb.AppendDecorators(decor.Percentage()),
		)
	}
	t.bar.Increment()
	t.done = done
}

// wait flushes the bar. An unfinished bar is completed at its current count
// so Wait returns.
func (t *progress) wait() {
	if t.bar != nil {
		t.bar.SetTotal(int64(t.done), true)
	}
	t.p.Wait()
}

// serveMetrics exposes the Prometheus registry on addr until the returned
// func is called. An empty addr serves nothing.
func serveMetrics(addr string) func() {
	if addr == "" {
		return func() {}
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 10 * time.Second}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Errorf("Serving metrics on %s: %v", addr, err)
		}
	}()
	log.Infof("Serving metrics on %s/metrics", addr)

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}
}
