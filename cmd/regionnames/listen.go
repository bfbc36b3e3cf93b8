package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"time"

	"go.uber.org/zap"
)

type Server struct {
	log *zap.Logger
	srv *http.Server
}

// ListenAndServe listens on the given address and serves handler in the background. If the
// listener fails, a signal is sent to stop.
func ListenAndServe(log *zap.Logger, network, addr string, handler http.Handler, stop chan<- os.Signal) *Server {
	var srv = &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		listener, err := net.Listen(network, addr)
		if err != nil {
			log.Error("listen failed", zap.String("addr", addr), zap.Error(err))
			notify(stop)
			return
		}
		if err := srv.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("serve failed", zap.String("addr", addr), zap.Error(err))
			notify(stop)
		}
	}()
	return &Server{
		log: log,
		srv: srv,
	}
}

func notify(stop chan<- os.Signal) {
	select {
	case stop <- os.Interrupt:
	default:
	}
}

func (s *Server) Shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := s.srv.Shutdown(ctx); err != nil {
		s.log.Error("shutdown failed", zap.Error(err))
	}
}
