package advisor

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/saksham-app/delivery-agent/internal/entities"
	"github.com/saksham-app/delivery-agent/internal/objects/dto"
)

type (
	IMessagePublisher interface {
		PublishResponse(sourceMessage dto.WebsocketMessage, body any) (err error)
		PublishErrorResponse(sourceMessage dto.WebsocketMessage, statusCode int, errMsg string) (err error)
	}

	IAdvisorService interface {
		State() (state entities.NetworkState, known bool)
	}

	WSHandler struct {
		publisher      IMessagePublisher
		advisorService IAdvisorService
	}
)

func NewWSHandler(publisher IMessagePublisher, advisorService IAdvisorService) *WSHandler {
	return &WSHandler{
		publisher:      publisher,
		advisorService: advisorService,
	}
}

// GetNetworkState returns latest network snapshot with derived recommendations.
func (h *WSHandler) GetNetworkState(message dto.WebsocketMessage) (err error) {
	defer func() {
		if err != nil {
			if sendErr := h.publisher.PublishErrorResponse(message, http.StatusInternalServerError, err.Error()); sendErr != nil {
				err = errors.Join(sendErr, err)
			}
		}
	}()

	state, known := h.advisorService.State()
	if err = h.publisher.PublishResponse(message, entities.NewNetworkStatus(state, known)); err != nil {
		return fmt.Errorf("GetNetworkState: %w", err)
	}

	return nil
}
