package cli

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	apperrors "github.com/mvollmer/turbograph/pkg/errors"
	"github.com/mvollmer/turbograph/pkg/graph"
	"github.com/mvollmer/turbograph/pkg/turbine"
)

// shutdownTimeout bounds graceful shutdown after the context is canceled.
const shutdownTimeout = 5 * time.Second

// newServeCmd creates the serve command exposing the converter over HTTP.
func newServeCmd(cfg config) *cobra.Command {
	listen := cfg.Listen

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the XML→JSON converter over HTTP",
		Long: `Serve the converter as an HTTP endpoint.

POST turbine XML to /convert to receive the JSON graph document; the
shape query parameter selects the node layout:

  curl --data-binary @plant.xml 'localhost:8080/convert?shape=list'`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			return runServe(c.Context(), listen)
		},
	}

	cmd.Flags().StringVar(&listen, "listen", listen, "listen address")
	return cmd
}

func runServe(ctx context.Context, addr string) error {
	logger := loggerFromContext(ctx)

	srv := &http.Server{
		Addr:              addr,
		Handler:           newRouter(logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()
	logger.Infof("Listening on %s", addr)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errc:
		return err
	}
}

// newRouter builds the HTTP routes. Split out from runServe so tests can
// exercise the handlers without binding a socket.
func newRouter(logger *log.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(requestLogger(logger))
	r.Get("/healthz", handleHealth)
	r.Post("/convert", handleConvert)
	return r
}

// requestLogger tags each request with an id and logs method, path, and
// elapsed time at debug level.
func requestLogger(logger *log.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			id := uuid.NewString()
			start := time.Now()
			next.ServeHTTP(w, req)
			logger.Debugf("%s %s request=%s (%s)", req.Method, req.URL.Path, id, time.Since(start).Round(time.Millisecond))
		})
	}
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// handleConvert converts the XML request body to the JSON graph document.
// Malformed documents map to 422 with the error code in the body.
func handleConvert(w http.ResponseWriter, req *http.Request) {
	shape := graph.ShapeMap
	if q := req.URL.Query().Get("shape"); q != "" {
		s, err := graph.ParseShape(q)
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		shape = s
	}

	g, err := turbine.Parse(req.Body)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = graph.WriteJSON(g, w, shape)
}

func writeError(w http.ResponseWriter, status int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"code":  string(apperrors.GetCode(err)),
		"error": apperrors.UserMessage(err),
	})
}
