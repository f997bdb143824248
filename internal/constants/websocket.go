package constants

import (
	"time"
)

const (
	// in requests.
	MethodGetNetworkState = "get_network_state"
	MethodGetDeliveryPlan = "get_delivery_plan"
	MethodListFeed        = "list_feed"

	// out notifications.
	MethodNetworkStateChanged = "network_state_changed"
)

const (
	WSPingPeriod = 4 * time.Second
	WSPongWait   = 6 * time.Second
	WSWriteWait  = 2 * time.Second
)
