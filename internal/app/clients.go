package app

import (
	"fmt"

	redisclient "github.com/bloomhaus/floristry-backend/internal/clients/redis"
	"github.com/bloomhaus/floristry-backend/internal/clients/twilio"
	"github.com/bloomhaus/floristry-backend/internal/pkg/logger"
)

type Clients struct {
	CodeStore redisclient.CodeStore
	SMS       twilio.Client
}

func wireClients(log *logger.Logger) (Clients, error) {
	log.Info("Wiring clients...")

	codeStore, err := redisclient.NewCodeStoreFromEnv(log)
	if err != nil {
		return Clients{}, fmt.Errorf("init redis code store: %w", err)
	}

	sms, err := twilio.NewFromEnv(log)
	if err != nil {
		return Clients{}, fmt.Errorf("init twilio client: %w", err)
	}

	return Clients{
		CodeStore: codeStore,
		SMS:       sms,
	}, nil
}
