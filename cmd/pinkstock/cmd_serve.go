package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"

	"github.com/rl1809/pinkstock/internal/adapter/handler"
)

func (a *app) serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the inventory over HTTP and gRPC until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			httpLis, err := net.Listen("tcp", a.cfg.HTTPAddr)
			if err != nil {
				return err
			}
			grpcLis, err := net.Listen("tcp", a.cfg.GRPCAddr)
			if err != nil {
				httpLis.Close()
				return err
			}
			return a.serve(cmd.Context(), httpLis, grpcLis)
		},
	}
}

// serve blocks until ctx is done or a server fails, then shuts both down.
func (a *app) serve(ctx context.Context, httpLis, grpcLis net.Listener) error {
	httpServer := &http.Server{
		Handler:           handler.NewHTTPHandler(a.inventory, a.logger, a.cfg.ExportStem).Routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	grpcServer := grpc.NewServer()
	handler.RegisterInventoryServiceServer(grpcServer, handler.NewGRPCHandler(a.inventory, a.logger))

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.logger.Info("gRPC server listening", zap.String("addr", grpcLis.Addr().String()))
		if err := grpcServer.Serve(grpcLis); !errors.Is(err, grpc.ErrServerStopped) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		a.logger.Info("HTTP server listening", zap.String("addr", httpLis.Addr().String()))
		if err := httpServer.Serve(httpLis); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		a.logger.Info("shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
		defer cancel()
		err := httpServer.Shutdown(shutdownCtx)
		a.logger.Info("HTTP server stopped")

		grpcServer.GracefulStop()
		a.logger.Info("gRPC server stopped")
		return err
	})

	return g.Wait()
}
