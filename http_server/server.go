package http_server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/voyage-finance/ask-server/http_server/controllers"
	"github.com/voyage-finance/ask-server/http_server/routes"
	"github.com/voyage-finance/ask-server/service"
)

const (
	minShutdownTimeout = 10 * time.Second
	shutdownMargin     = 5 * time.Second
)

// ShutdownTimeout is how long in-flight requests get to drain. Upstream
// calls are detached from the client, so the window covers a full upstream
// timeout. An unbounded upstream (0) gets the minimum.
func ShutdownTimeout(upstreamTimeout time.Duration) time.Duration {
	if d := upstreamTimeout + shutdownMargin; upstreamTimeout > 0 && d > minShutdownTimeout {
		return d
	}
	return minShutdownTimeout
}

func NewRouter(s *service.Service) *mux.Router {
	router := mux.NewRouter().StrictSlash(true)
	router.Use(controllers.RequestLogger(s.Logger))
	routes.PageRoute(router)
	routes.AskRoute(router, s)
	return router
}

// HandleRequests serves the router on addr until ctx is cancelled, then
// drains in-flight requests for up to drain. Requests still running after
// that are cut off and logged, not reported as a server error.
func HandleRequests(ctx context.Context, addr string, s *service.Service, drain time.Duration) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           NewRouter(s),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.Logger.Info("server is running", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.Logger.Info("shutting down server", "drain", drain.String())
	shutdownCtx, cancel := context.WithTimeout(context.Background(), drain)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		if !errors.Is(err, context.DeadlineExceeded) {
			return err
		}
		s.Logger.Warn("requests still in flight after drain, closing connections", "drain", drain.String())
		return srv.Close()
	}
	return nil
}
