package advisor

import (
	"github.com/nats-io/nats.go"

	"github.com/saksham-app/delivery-agent/internal/entities"
	"github.com/saksham-app/delivery-agent/internal/objects/dto"
)

type MQHandler struct {
	advisorService IAdvisorService
}

func NewMQHandler(advisorService IAdvisorService) *MQHandler {
	return &MQHandler{
		advisorService: advisorService,
	}
}

// GetState returns latest network status.
func (h *MQHandler) GetState(_ *nats.Msg) (resp any) {
	state, known := h.advisorService.State()

	response := struct {
		dto.MQResponse

		Network entities.NetworkStatus `json:"network"`
	}{
		MQResponse: dto.NewOkResponse(),
		Network:    entities.NewNetworkStatus(state, known),
	}

	return response
}
