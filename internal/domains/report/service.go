package report

import (
	"fmt"

	"github.com/saksham-app/delivery-agent/internal/entities"
)

type (
	IAdvisorService interface {
		State() (state entities.NetworkState, known bool)
	}

	IFeedService interface {
		Feed() (plans entities.DeliveryPlans, err error)
	}

	// Service renders human readable agent status for debug requests and shutdown log.
	Service struct {
		advisorService IAdvisorService
		feedService    IFeedService
	}
)

func NewService(advisorService IAdvisorService, feedService IFeedService) *Service {
	return &Service{
		advisorService: advisorService,
		feedService:    feedService,
	}
}

// NetworkStatus renders current network state only.
func (s *Service) NetworkStatus() string {
	return formatNetworkStatus(entities.NewNetworkStatus(s.advisorService.State()))
}

// Status renders network state followed by delivery plans of the whole feed.
func (s *Service) Status() (output string, err error) {
	plans, err := s.feedService.Feed()
	if err != nil {
		return output, fmt.Errorf("Status: %w", err)
	}

	return joinSections(s.NetworkStatus(), formatDeliveryPlans(plans)), nil
}
