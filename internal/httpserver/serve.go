package httpserver

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/lmoreau/intranet/internal/logutil"
)

// Serve runs handler on bind until ctx is cancelled, then drains
// in-flight requests before returning.
func Serve(ctx context.Context, bind string, handler http.Handler) error {
	log := logutil.GetOrDefault(ctx).With().Str("server.addr", bind).Logger()
	server := http.Server{
		Handler:           handler,
		Addr:              bind,
		ReadTimeout:       time.Minute,
		WriteTimeout:      time.Minute,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       time.Minute * 5,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}
	errch := make(chan error, 1)
	go func() {
		log.Info().Msg("Starting HTTP server")
		err := server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			// shutdown called, ignore the error
			err = nil
		}
		errch <- err
	}()
	select {
	case err := <-errch:
		return err
	case <-ctx.Done():
		log.Info().Msg("Initiating shutdown process")
		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancelShutdown()
		server.Shutdown(shutdownCtx)
		log.Info().Msg("Shutdown completed")
		return <-errch
	}
}
