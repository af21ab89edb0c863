package config

import (
	"context"
	"log"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

type Bootstrap struct {
	Router         *chi.Mux
	Logger         *zap.Logger
	Registry       *prometheus.Registry
	InternalConfig *InternalConfig
	DriverConfig   *DriverConfig
	// SessionStop if set will be called during Shutdown to stop the viewer session janitor
	SessionStop func()
}

func (b *Bootstrap) Shutdown(ctx context.Context) error {
	if b.SessionStop != nil {
		b.SessionStop()
		log.Println("Successfully stopped viewer session store")
	}

	err := b.Logger.Sync()
	if err != nil {
		return err
	}
	log.Println("Successfully closing Logger")

	return nil
}
