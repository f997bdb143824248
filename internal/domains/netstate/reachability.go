package netstate

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	probing "github.com/prometheus-community/pro-bing"
)

const (
	noContentCheckPath = "/generate_204"
)

type HTTPReachability struct {
	client   *resty.Client
	checkURL string

	// captive portals answer generate_204 endpoints with 200 and a login page
	expectNoContent bool
}

func NewHTTPReachability(checkURL string, timeout time.Duration) *HTTPReachability {
	client := resty.New().
		SetTimeout(timeout).
		SetRetryCount(0)

	// Close connection after each request
	// Device can switch between wifi and cellular, kept alive connection would stick to the old path
	client.OnBeforeRequest(func(_ *resty.Client, r *resty.Request) error {
		r.SetHeader("Connection", "close")
		return nil
	})

	return &HTTPReachability{
		client:   client,
		checkURL: checkURL,

		expectNoContent: isNoContentCheck(checkURL),
	}
}

// CheckReachable requests check url. For generate_204 endpoints only 204 means internet is reachable,
// for other urls any non error status does.
func (c *HTTPReachability) CheckReachable(ctx context.Context) (reachable bool, err error) {
	resp, err := c.client.R().
		SetContext(ctx).
		Get(c.checkURL)
	if err != nil {
		return false, fmt.Errorf("CheckReachable: %w", err)
	}

	if c.expectNoContent {
		return resp.StatusCode() == http.StatusNoContent, nil
	}

	return !resp.IsError(), nil
}

func isNoContentCheck(checkURL string) bool {
	u, err := url.Parse(checkURL)
	if err != nil {
		return false
	}

	return strings.HasSuffix(u.Path, noContentCheckPath)
}

type ICMPReachability struct {
	host       string
	timeout    time.Duration
	privileged bool
}

func NewICMPReachability(host string, timeout time.Duration, privileged bool) *ICMPReachability {
	return &ICMPReachability{
		host:       host,
		timeout:    timeout,
		privileged: privileged,
	}
}

// CheckReachable sends single echo request to host.
func (c *ICMPReachability) CheckReachable(ctx context.Context) (reachable bool, err error) {
	pinger, err := probing.NewPinger(c.host)
	if err != nil {
		return false, fmt.Errorf("CheckReachable: %w", err)
	}

	pinger.Count = 1
	pinger.Timeout = c.timeout
	pinger.SetPrivileged(c.privileged)

	stop := context.AfterFunc(ctx, pinger.Stop)
	defer stop()

	if err = pinger.Run(); err != nil {
		return false, fmt.Errorf("CheckReachable: %w", err)
	}

	return pinger.Statistics().PacketsRecv > 0, nil
}
