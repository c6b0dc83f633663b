package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"

	"github.com/ggbd-labs/finance-server/internal/auth"
	"github.com/ggbd-labs/finance-server/internal/handlers/v1/status"
	"github.com/ggbd-labs/finance-server/internal/handlers/v1/transaction"
	"github.com/ggbd-labs/finance-server/internal/logging"
	"github.com/ggbd-labs/finance-server/internal/service"
)

type Rest struct {
	Logger     *logrus.Logger
	Port       string
	CORSOrigin string
	Service    *service.Service
	Verifier   auth.TokenVerifier

	server *http.Server
}

func (r *Rest) Serve() error {
	mux := http.NewServeMux()

	humaAPI := humago.New(mux, huma.DefaultConfig("finance-server", "1.0.0"))
	humaAPI.UseMiddleware(logging.Middleware(r.Logger))

	// Reads stay public; mutations require a verified bearer credential.
	requireAuth := huma.Middlewares{auth.NewMiddleware(humaAPI, r.Verifier)}

	svc := r.Service.Transaction

	transaction.NewListAllTransactionsHandler(svc).Register(humaAPI)
	transaction.NewListTransactionsHandler(svc).Register(humaAPI)
	transaction.NewTotalsHandler(svc).Register(humaAPI)
	transaction.NewGetTransactionHandler(svc).Register(humaAPI)

	createHandler := transaction.NewCreateTransactionHandler(svc)
	createHandler.Middlewares = requireAuth
	createHandler.Register(humaAPI)

	updateHandler := transaction.NewUpdateTransactionHandler(svc)
	updateHandler.Middlewares = requireAuth
	updateHandler.Register(humaAPI)

	deleteHandler := transaction.NewDeleteTransactionHandler(svc)
	deleteHandler.Middlewares = requireAuth
	deleteHandler.Register(humaAPI)

	statusHandler := status.NewHandler()
	mux.HandleFunc("GET /{$}", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))

	r.server = &http.Server{
		Addr:              ":" + r.Port,
		Handler:           withCORS(r.CORSOrigin, mux),
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	r.Logger.Info("HttpServer.Serve.listening")
	err := r.server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
		return err
	}
	r.Logger.Info("HttpServer.Serve.shutting down")
	return nil
}

// Shutdown stops accepting new requests and drains in-flight ones.
func (r *Rest) Shutdown(ctx context.Context) error {
	if r.server == nil {
		return nil
	}
	return r.server.Shutdown(ctx)
}

func withCORS(origin string, next http.Handler) http.Handler {
	if origin == "" {
		origin = "*"
	}

	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization")
		w.Header().Set("Access-Control-Allow-Methods", "GET,POST,PUT,DELETE,OPTIONS")

		if req.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, req)
	})
}
