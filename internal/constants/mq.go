package constants

const (
	// in requests.
	MQAdvisorGetState      = "advisor.get_state"
	MQAdvisorDebugStatus   = "advisor.debug.status"
	MQAdvisorDebugDumpHeap = "advisor.debug.dump_heap"

	// out events.
	MQAdvisorStateChanged = "advisor.state_changed"
)
