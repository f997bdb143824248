package environment

import (
	"fmt"
	"strings"
	"time"

	"github.com/samber/lo"
	"github.com/spf13/viper"

	"github.com/saksham-app/delivery-agent/internal/constants"
	"github.com/saksham-app/delivery-agent/internal/entities"
	"github.com/saksham-app/delivery-agent/internal/errs"
)

type Environment struct {
	Agent
	Probe
	Transport
	Catalog
}

type Agent struct {
	LogfilePath string
	LogLevel    string
}

type Probe struct {
	Kind          string
	Interval      time.Duration
	Timeout       time.Duration
	Reachability  string
	CheckURL      string
	CheckHost     string
	Privileged    bool
	SlowTypes     []entities.ConnectionType
	StaticType    string
	StaticOffline bool
}

type Transport struct {
	ListenAddr string
	NatsURL    string
}

type Catalog struct {
	SeedFile string
	DBPath   string
}

func New() (e Environment, err error) {
	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvPrefix("ADVISOR")

	// agent settings
	e.Agent.LogfilePath = v.GetString("LOG_FILE")
	if lo.IsEmpty(e.Agent.LogfilePath) {
		e.Agent.LogfilePath = constants.DefaultLogfilePath
	}
	e.Agent.LogLevel = v.GetString("LOG_LEVEL")
	if lo.IsEmpty(e.Agent.LogLevel) {
		e.Agent.LogLevel = "info"
	}

	// probe settings
	e.Probe.Kind = strings.ToLower(v.GetString("PROBE"))
	if lo.IsEmpty(e.Probe.Kind) {
		e.Probe.Kind = constants.ProbeKindNmcli
	}
	if !lo.Contains([]string{constants.ProbeKindNmcli, constants.ProbeKindStatic}, e.Probe.Kind) {
		return e, fmt.Errorf("New: %w %q", errs.ErrUnknownProbe, e.Probe.Kind)
	}

	e.Probe.Interval = v.GetDuration("PROBE_INTERVAL")
	if e.Probe.Interval <= 0 {
		e.Probe.Interval = constants.DefaultProbeInterval
	}
	e.Probe.Timeout = v.GetDuration("PROBE_TIMEOUT")
	if e.Probe.Timeout <= 0 {
		e.Probe.Timeout = constants.DefaultProbeTimeout
	}
	if e.Probe.Timeout >= e.Probe.Interval {
		return e, fmt.Errorf("New: probe timeout %s must be shorter than probe interval %s", e.Probe.Timeout, e.Probe.Interval)
	}

	e.Probe.Reachability = strings.ToLower(v.GetString("REACHABILITY"))
	if lo.IsEmpty(e.Probe.Reachability) {
		e.Probe.Reachability = constants.ReachabilityHTTP
	}
	if !lo.Contains([]string{constants.ReachabilityHTTP, constants.ReachabilityICMP, constants.ReachabilityNone}, e.Probe.Reachability) {
		return e, fmt.Errorf("New: unsupported reachability check %q", e.Probe.Reachability)
	}

	e.Probe.CheckURL = v.GetString("CHECK_URL")
	if lo.IsEmpty(e.Probe.CheckURL) {
		e.Probe.CheckURL = constants.DefaultCheckURL
	}
	e.Probe.CheckHost = v.GetString("CHECK_HOST")
	if lo.IsEmpty(e.Probe.CheckHost) {
		e.Probe.CheckHost = constants.DefaultCheckHost
	}
	e.Probe.Privileged = v.GetBool("ICMP_PRIVILEGED")

	slowTypes := v.GetString("SLOW_TYPES")
	if lo.IsEmpty(slowTypes) {
		slowTypes = constants.DefaultSlowTypes
	}
	e.Probe.SlowTypes = ParseSlowTypes(slowTypes)

	e.Probe.StaticType = v.GetString("STATIC_TYPE")
	if lo.IsEmpty(e.Probe.StaticType) {
		e.Probe.StaticType = string(entities.ConnectionTypeWifi)
	}
	e.Probe.StaticOffline = v.GetBool("STATIC_OFFLINE")

	// transport settings
	e.Transport.ListenAddr = v.GetString("LISTEN_ADDR")
	if lo.IsEmpty(e.Transport.ListenAddr) {
		e.Transport.ListenAddr = constants.DefaultListenAddr
	}
	e.Transport.NatsURL = v.GetString("NATS_URL")

	// catalog settings
	e.Catalog.SeedFile = v.GetString("CATALOG_FILE")
	e.Catalog.DBPath = v.GetString("CATALOG_DB")

	return e, nil
}

// ParseSlowTypes parses comma separated connection type list.
func ParseSlowTypes(value string) []entities.ConnectionType {
	parts := lo.FilterMap(strings.Split(value, ","), func(item string, _ int) (entities.ConnectionType, bool) {
		item = strings.TrimSpace(item)
		if lo.IsEmpty(item) {
			return "", false
		}

		return entities.ParseConnectionType(item), true
	})

	return lo.Uniq(parts)
}

func (e Agent) IsDebug() bool {
	return e.LogLevel == "debug"
}

func (e Transport) MQEnabled() bool {
	return lo.IsNotEmpty(e.NatsURL)
}
