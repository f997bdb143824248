package infrastructure

import (
	"fmt"

	"github.com/dgraph-io/badger/v4"

	"github.com/saksham-app/delivery-agent/internal/domains/advisor"
	"github.com/saksham-app/delivery-agent/internal/domains/catalog"
	"github.com/saksham-app/delivery-agent/internal/domains/debug"
	"github.com/saksham-app/delivery-agent/internal/domains/delivery"
	"github.com/saksham-app/delivery-agent/internal/environment"
)

type IInjector interface {
	InjectAdvisorWSHandler() *advisor.WSHandler
	InjectDeliveryHandler() *delivery.Handler

	// MQ handlers.

	InjectAdvisorMQHandler() *advisor.MQHandler
	InjectDebugMQHandler() *debug.MQHandler
}

type Kernel struct {
	env environment.Environment

	DB *badger.DB
}

func Inject(env environment.Environment) (k *Kernel, err error) {
	k = &Kernel{
		env: env,
	}

	if k.DB, err = catalog.OpenDB(env.Catalog.DBPath); err != nil {
		return k, fmt.Errorf("Inject: %w", err)
	}

	return k, nil
}

func (k *Kernel) InjectAdvisorWSHandler() *advisor.WSHandler {
	return advisor.NewWSHandler(
		k.InjectWebsocketService(),
		k.InjectAdvisorService(),
	)
}

func (k *Kernel) InjectDeliveryHandler() *delivery.Handler {
	return delivery.NewHandler(
		k.InjectWebsocketService(),
		k.InjectDeliveryService(),
	)
}

// MQ handlers.

func (k *Kernel) InjectAdvisorMQHandler() *advisor.MQHandler {
	return advisor.NewMQHandler(
		k.InjectAdvisorService(),
	)
}

func (k *Kernel) InjectDebugMQHandler() *debug.MQHandler {
	return debug.NewMQHandler(
		k.InjectReportService(),
	)
}
