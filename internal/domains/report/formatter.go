package report

import (
	"strconv"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/saksham-app/delivery-agent/internal/entities"
)

const (
	emptyValue = "-"
)

var (
	networkHeaderKeys = table.Row{"KNOWN", "CONNECTED", "INTERNET", "TYPE", "SLOW", "QUALITY", "PRELOAD", "PROBED AT"}
	feedHeaderKeys    = table.Row{"#", "SHORT", "TITLE", "QUALITY", "PRELOAD", "URL"}
)

// formatNetworkStatus formats advisor state to pretty table.
func formatNetworkStatus(status entities.NetworkStatus) string {
	t := table.NewWriter()
	t.AppendHeader(networkHeaderKeys)

	probedAt := emptyValue
	if status.ProbedAt != nil {
		probedAt = status.ProbedAt.Format(time.RFC3339)
	}

	t.AppendRow(table.Row{
		status.Known,
		status.Connected,
		status.InternetReachable,
		status.Type,
		status.SlowConnection,
		status.Quality,
		status.ShouldPreload,
		probedAt,
	})

	return t.Render()
}

// formatDeliveryPlans formats feed delivery plans to pretty table.
func formatDeliveryPlans(plans entities.DeliveryPlans) string {
	t := table.NewWriter()
	t.AppendHeader(feedHeaderKeys)

	for i, plan := range plans {
		url := plan.URL
		if plan.Offline || url == "" {
			url = emptyValue
		}

		t.AppendRow(table.Row{
			strconv.Itoa(i + 1),
			plan.ShortID,
			plan.Title,
			plan.Quality,
			plan.Preload,
			url,
		})
	}

	return t.Render()
}

func joinSections(sections ...string) string {
	return strings.Join(sections, "\n")
}
