package delivery

import (
	"fmt"
	"net/url"

	"github.com/samber/lo"

	"github.com/saksham-app/delivery-agent/internal/entities"
)

const (
	qualityQueryParam = "quality"
)

type (
	IAdvisorService interface {
		State() (state entities.NetworkState, known bool)
	}

	ICatalogService interface {
		Get(id string) (short entities.CareerShort, err error)
		List() (shorts entities.CareerShorts, err error)
	}
)

// Service picks source variant and preload policy for shorts from the latest network snapshot.
type Service struct {
	advisorService IAdvisorService
	catalogService ICatalogService
}

func NewService(advisorService IAdvisorService, catalogService ICatalogService) *Service {
	return &Service{
		advisorService: advisorService,
		catalogService: catalogService,
	}
}

// Plan builds delivery plan for single short.
func (s *Service) Plan(shortID string) (plan entities.DeliveryPlan, err error) {
	short, err := s.catalogService.Get(shortID)
	if err != nil {
		return plan, fmt.Errorf("Plan: %w", err)
	}

	state, _ := s.advisorService.State()
	if plan, err = buildPlan(short, state); err != nil {
		return plan, fmt.Errorf("Plan: %w", err)
	}

	return plan, nil
}

// Feed builds delivery plans for the whole catalog against one snapshot.
func (s *Service) Feed() (plans entities.DeliveryPlans, err error) {
	shorts, err := s.catalogService.List()
	if err != nil {
		return plans, fmt.Errorf("Feed: %w", err)
	}

	state, _ := s.advisorService.State()
	plans = make(entities.DeliveryPlans, 0, len(shorts))
	for _, short := range shorts {
		plan, err := buildPlan(short, state)
		if err != nil {
			return plans, fmt.Errorf("Feed: %w", err)
		}

		plans = append(plans, plan)
	}

	return plans, nil
}

func buildPlan(short entities.CareerShort, state entities.NetworkState) (plan entities.DeliveryPlan, err error) {
	quality := state.Quality()
	plan = entities.DeliveryPlan{
		ShortID:        short.ID,
		Title:          short.Title,
		Quality:        quality,
		Thumbnail:      short.Thumbnail,
		Preload:        state.ShouldPreload(),
		Offline:        quality == entities.QualityOffline,
		SlowConnection: state.IsSlowConnection(),
	}

	if plan.Offline {
		return plan, nil
	}

	if plan.URL, err = variantURL(short.VideoURL, quality); err != nil {
		return plan, fmt.Errorf("buildPlan: %w", err)
	}

	if quality == entities.QualityLow {
		plan.Headers = map[string]string{
			"Accept-Encoding": "gzip",
		}
	}

	return plan, nil
}

func variantURL(videoURL string, quality entities.Quality) (variant string, err error) {
	u, err := url.Parse(videoURL)
	if err != nil {
		return variant, fmt.Errorf("variantURL: %w", err)
	}

	if lo.IsEmpty(u.Scheme) || lo.IsEmpty(u.Host) {
		return variant, fmt.Errorf("variantURL: %q is not absolute", videoURL)
	}

	query := u.Query()
	query.Set(qualityQueryParam, quality.String())
	u.RawQuery = query.Encode()

	return u.String(), nil
}
