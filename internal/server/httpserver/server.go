// Package httpserver exposes the users API over HTTP/JSON.
package httpserver

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/dmitrijs2005/usercatalog/internal/logging"
	"github.com/dmitrijs2005/usercatalog/internal/server/models"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

const shutdownTimeout = 5 * time.Second

// UserService is what the handlers need from the service layer.
type UserService interface {
	List(ctx context.Context, q string) ([]models.User, error)
	Create(ctx context.Context, in models.UserInput) (*models.User, error)
	Update(ctx context.Context, id string, in models.UserInput) (*models.User, error)
	Delete(ctx context.Context, id string) error
}

type HTTPServer struct {
	address        string
	users          UserService
	logger         logging.Logger
	allowedOrigins []string
}

// listen is a seam for tests.
var listen = net.Listen

func NewHTTPServer(address string, l logging.Logger, us UserService, allowedOrigins []string) *HTTPServer {
	return &HTTPServer{
		address:        address,
		logger:         l.With("module", "http_server"),
		users:          us,
		allowedOrigins: allowedOrigins,
	}
}

// Handler returns the router wrapped with CORS and request logging.
func (s *HTTPServer) Handler() http.Handler {
	r := mux.NewRouter()
	// ids arrive path-escaped; match on the raw path and unescape in handlers
	r.UseEncodedPath()

	r.HandleFunc("/users", s.listUsers).Methods(http.MethodGet)
	r.HandleFunc("/users", s.createUser).Methods(http.MethodPost)
	r.HandleFunc("/users/{id}", s.updateUser).Methods(http.MethodPut)
	r.HandleFunc("/users/{id}", s.deleteUser).Methods(http.MethodDelete)

	c := cors.New(cors.Options{
		AllowedOrigins: s.allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Accept"},
	})

	return s.requestLogger(c.Handler(r))
}

// Run serves until ctx is done, then shuts down gracefully.
func (s *HTTPServer) Run(ctx context.Context) error {
	ln, err := listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown failed", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", ln.Addr().String())

	if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
