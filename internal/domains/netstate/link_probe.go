package netstate

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/saksham-app/delivery-agent/internal/constants"
)

// connectedStatePrefix covers "connected" and "connected (externally)".
const connectedStatePrefix = "connected"

var (
	virtualDeviceTypes = map[string]bool{
		"loopback":  true,
		"bridge":    true,
		"bond":      true,
		"team":      true,
		"vlan":      true,
		"tun":       true,
		"dummy":     true,
		"veth":      true,
		"macvlan":   true,
		"wireguard": true,
		"ip-tunnel": true,
		"wifi-p2p":  true,
		"vpn":       true,
	}

	// lower rank wins when several physical devices are connected.
	deviceTypeRanks = map[string]int{
		"ethernet": 0,
		"wifi":     1,
		"gsm":      3,
		"cdma":     3,
		"modem":    3,
	}
	otherDeviceRank = 2
)

type (
	IShellService interface {
		ExecOutput(ctx context.Context, name string, args ...string) (output []byte, err error)
	}

	// Link is the local link layer view of connectivity.
	Link struct {
		Connected bool
		Type      string
	}

	LinkProbe struct {
		shellService IShellService
	}
)

func NewLinkProbe(shellService IShellService) *LinkProbe {
	return &LinkProbe{
		shellService: shellService,
	}
}

// ProbeLink reads device states from network manager.
func (p *LinkProbe) ProbeLink(ctx context.Context) (link Link, err error) {
	output, err := p.shellService.ExecOutput(ctx, constants.NmcliExecutable, "--terse", "--fields", "TYPE,STATE", "device")
	if err != nil {
		return link, fmt.Errorf("ProbeLink: %w", err)
	}

	if link, err = parseDeviceStates(output); err != nil {
		return link, fmt.Errorf("ProbeLink: %w", err)
	}

	return link, nil
}

// parseDeviceStates parses terse nmcli output, one "TYPE:STATE" pair per line.
func parseDeviceStates(output []byte) (link Link, err error) {
	var (
		bestRank = -1
		scanner  = bufio.NewScanner(bytes.NewReader(output))
	)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if lo.IsEmpty(line) {
			continue
		}

		deviceType, state, found := strings.Cut(line, ":")
		if !found {
			continue
		}

		deviceType = strings.ToLower(strings.TrimSpace(deviceType))
		state = strings.ToLower(strings.TrimSpace(state))
		if virtualDeviceTypes[deviceType] || !strings.HasPrefix(state, connectedStatePrefix) {
			continue
		}

		rank, ok := deviceTypeRanks[deviceType]
		if !ok {
			rank = otherDeviceRank
		}

		if bestRank == -1 || rank < bestRank {
			bestRank = rank
			link = Link{
				Connected: true,
				Type:      deviceType,
			}
		}
	}

	if err = scanner.Err(); err != nil {
		return link, fmt.Errorf("parseDeviceStates: %w", err)
	}

	return link, nil
}
