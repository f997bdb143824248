package constants

const (
	DefaultLogfilePath = "/var/log/saksham/delivery_agent.log"
)
