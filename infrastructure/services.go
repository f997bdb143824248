package infrastructure

import (
	"context"
	"sync"

	"github.com/saksham-app/delivery-agent/internal/constants"
	"github.com/saksham-app/delivery-agent/internal/domains/advisor"
	"github.com/saksham-app/delivery-agent/internal/domains/advisor/advisorevent"
	"github.com/saksham-app/delivery-agent/internal/domains/api"
	"github.com/saksham-app/delivery-agent/internal/domains/catalog"
	"github.com/saksham-app/delivery-agent/internal/domains/delivery"
	"github.com/saksham-app/delivery-agent/internal/domains/mq"
	"github.com/saksham-app/delivery-agent/internal/domains/netstate"
	"github.com/saksham-app/delivery-agent/internal/domains/report"
	"github.com/saksham-app/delivery-agent/internal/domains/shell"
	ws "github.com/saksham-app/delivery-agent/internal/domains/websocket"
	"github.com/saksham-app/delivery-agent/internal/entities"
)

var (
	shellService     *shell.Service
	shellServiceOnce sync.Once
)

func (k *Kernel) InjectShellService() *shell.Service {
	shellServiceOnce.Do(func() {
		shellService = shell.NewService()
	})

	return shellService
}

var (
	linkProbe     *netstate.LinkProbe
	linkProbeOnce sync.Once
)

func (k *Kernel) InjectLinkProbe() *netstate.LinkProbe {
	linkProbeOnce.Do(func() {
		linkProbe = netstate.NewLinkProbe(
			k.InjectShellService(),
		)
	})

	return linkProbe
}

var (
	reachabilityChecker     netstate.IReachabilityChecker
	reachabilityCheckerOnce sync.Once
)

// InjectReachabilityChecker returns nil when reachability check is disabled.
func (k *Kernel) InjectReachabilityChecker() netstate.IReachabilityChecker {
	reachabilityCheckerOnce.Do(func() {
		switch k.env.Probe.Reachability {
		case constants.ReachabilityHTTP:
			reachabilityChecker = netstate.NewHTTPReachability(k.env.Probe.CheckURL, k.env.Probe.Timeout)
		case constants.ReachabilityICMP:
			reachabilityChecker = netstate.NewICMPReachability(k.env.Probe.CheckHost, k.env.Probe.Timeout, k.env.Probe.Privileged)
		}
	})

	return reachabilityChecker
}

var (
	probe     advisor.IProbe
	probeOnce sync.Once
)

func (k *Kernel) InjectProbe() advisor.IProbe {
	probeOnce.Do(func() {
		if k.env.Probe.Kind == constants.ProbeKindStatic {
			probe = netstate.NewStaticProbe(entities.ProbeResult{
				Connected:         !k.env.Probe.StaticOffline,
				InternetReachable: !k.env.Probe.StaticOffline,
				Type:              k.env.Probe.StaticType,
			})
			return
		}

		probe = netstate.NewProbe(
			k.InjectLinkProbe(),
			k.InjectReachabilityChecker(),
		)
	})

	return probe
}

var (
	advisorService     *advisor.Service
	advisorServiceOnce sync.Once
)

func (k *Kernel) InjectAdvisorService() *advisor.Service {
	advisorServiceOnce.Do(func() {
		advisorService = advisor.NewService(
			k.InjectProbe(),
			k.env.Probe.Interval,
			k.env.Probe.Timeout,
			k.env.Probe.SlowTypes,
		)
	})

	return advisorService
}

var (
	advisorEventService     *advisorevent.Service
	advisorEventServiceOnce sync.Once
)

func (k *Kernel) InjectAdvisorEventService() *advisorevent.Service {
	advisorEventServiceOnce.Do(func() {
		advisorEventService = advisorevent.NewService(
			k.InjectAdvisorService(),
			k.InjectWebsocketService(),
			k.InjectMQService(),
		)
	})

	return advisorEventService
}

var (
	catalogService     *catalog.Service
	catalogServiceOnce sync.Once
)

func (k *Kernel) InjectCatalogService() *catalog.Service {
	catalogServiceOnce.Do(func() {
		catalogService = catalog.NewService(k.DB)
	})

	return catalogService
}

var (
	deliveryService     *delivery.Service
	deliveryServiceOnce sync.Once
)

func (k *Kernel) InjectDeliveryService() *delivery.Service {
	deliveryServiceOnce.Do(func() {
		deliveryService = delivery.NewService(
			k.InjectAdvisorService(),
			k.InjectCatalogService(),
		)
	})

	return deliveryService
}

var (
	reportService     *report.Service
	reportServiceOnce sync.Once
)

func (k *Kernel) InjectReportService() *report.Service {
	reportServiceOnce.Do(func() {
		reportService = report.NewService(
			k.InjectAdvisorService(),
			k.InjectDeliveryService(),
		)
	})

	return reportService
}

var (
	websocketService     *ws.Service
	websocketServiceOnce sync.Once
)

func (k *Kernel) InjectWebsocketService() *ws.Service {
	websocketServiceOnce.Do(func() {
		websocketService = ws.NewService(
			constants.WSPingPeriod,
			constants.WSPongWait,
			constants.WSWriteWait,
		)
	})

	return websocketService
}

var (
	mqService     *mq.Service
	mqServiceOnce sync.Once
)

func (k *Kernel) InjectMQService() *mq.Service {
	mqServiceOnce.Do(func() {
		mqService = mq.NewService(k.env.Transport.NatsURL)
	})

	return mqService
}

var (
	apiServer     *api.Server
	apiServerOnce sync.Once
)

func (k *Kernel) InjectAPIServer() *api.Server {
	apiServerOnce.Do(func() {
		apiServer = api.NewServer(
			k.env.Transport.ListenAddr,
			k.InjectAdvisorService(),
			k.InjectDeliveryService(),
			k.InjectCatalogService(),
			k.InjectWebsocketService(),
		)

		apiServer.AddChecker(api.NewAdvisorChecker(k.InjectAdvisorService(), constants.StateMaxAgeFactor*k.env.Probe.Interval))
		if k.env.Transport.MQEnabled() {
			apiServer.AddChecker(api.NewFuncChecker("mq", mqHealth(k.InjectMQService())))
		}
	})

	return apiServer
}

func mqHealth(mqService *mq.Service) func(ctx context.Context) (api.Status, string) {
	return func(_ context.Context) (api.Status, string) {
		if !mqService.IsConnected() {
			return api.StatusDegraded, "not connected to MQ broker"
		}

		return api.StatusHealthy, ""
	}
}
