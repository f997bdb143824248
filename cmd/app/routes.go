package main

import (
	"github.com/saksham-app/delivery-agent/infrastructure"
	"github.com/saksham-app/delivery-agent/internal/constants"
	"github.com/saksham-app/delivery-agent/internal/domains/mq"
	"github.com/saksham-app/delivery-agent/internal/domains/websocket"
)

func getWebsocketRoutes(injector infrastructure.IInjector) map[string]websocket.WsHandler {
	advisorHandler := injector.InjectAdvisorWSHandler()
	deliveryHandler := injector.InjectDeliveryHandler()

	return map[string]websocket.WsHandler{
		constants.MethodGetNetworkState: advisorHandler.GetNetworkState,
		constants.MethodGetDeliveryPlan: deliveryHandler.GetDeliveryPlan,
		constants.MethodListFeed:        deliveryHandler.ListFeed,
	}
}

func getMQRoutes(injector infrastructure.IInjector) map[string]mq.Handler {
	advisorMQHandler := injector.InjectAdvisorMQHandler()
	debugMQHandler := injector.InjectDebugMQHandler()

	return map[string]mq.Handler{
		constants.MQAdvisorGetState:      advisorMQHandler.GetState,
		constants.MQAdvisorDebugStatus:   debugMQHandler.Status,
		constants.MQAdvisorDebugDumpHeap: debugMQHandler.DumpHeap,
	}
}
