package delivery

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/saksham-app/delivery-agent/internal/entities"
	"github.com/saksham-app/delivery-agent/internal/errs"
	"github.com/saksham-app/delivery-agent/internal/objects/dto"
)

type (
	IMessagePublisher interface {
		PublishResponse(sourceMessage dto.WebsocketMessage, body any) (err error)
		PublishErrorResponse(sourceMessage dto.WebsocketMessage, statusCode int, errMsg string) (err error)
	}

	IDeliveryService interface {
		Plan(shortID string) (plan entities.DeliveryPlan, err error)
		Feed() (plans entities.DeliveryPlans, err error)
	}

	Handler struct {
		messagePublisher IMessagePublisher
		deliveryService  IDeliveryService

		validate *validator.Validate
	}
)

func NewHandler(messagePublisher IMessagePublisher, deliveryService IDeliveryService) *Handler {
	return &Handler{
		messagePublisher: messagePublisher,
		deliveryService:  deliveryService,

		validate: validator.New(),
	}
}

// GetDeliveryPlan returns source variant and preload decision for requested short.
func (h *Handler) GetDeliveryPlan(request dto.WebsocketMessage) (err error) {
	statusCode := http.StatusInternalServerError
	defer func() {
		if err != nil {
			if sendErr := h.messagePublisher.PublishErrorResponse(request, statusCode, err.Error()); sendErr != nil {
				err = errors.Join(sendErr, err)
			}
		}
	}()

	var requestBody struct {
		ShortID string `json:"shortId" validate:"required"`
	}
	if err = json.Unmarshal(request.Body, &requestBody); err != nil {
		statusCode = http.StatusBadRequest
		return fmt.Errorf("GetDeliveryPlan: %w", err)
	}

	if err = h.validate.Struct(requestBody); err != nil {
		statusCode = http.StatusBadRequest
		return fmt.Errorf("GetDeliveryPlan: %w", err)
	}

	plan, err := h.deliveryService.Plan(requestBody.ShortID)
	if err != nil {
		if errors.Is(err, errs.ErrShortNotFound) {
			statusCode = http.StatusNotFound
		}

		return fmt.Errorf("GetDeliveryPlan: %w", err)
	}

	if err = h.messagePublisher.PublishResponse(request, plan); err != nil {
		return fmt.Errorf("GetDeliveryPlan: %w", err)
	}

	return nil
}

// ListFeed returns delivery plans for all shorts.
func (h *Handler) ListFeed(request dto.WebsocketMessage) (err error) {
	defer func() {
		if err != nil {
			if sendErr := h.messagePublisher.PublishErrorResponse(request, http.StatusInternalServerError, err.Error()); sendErr != nil {
				err = errors.Join(sendErr, err)
			}
		}
	}()

	plans, err := h.deliveryService.Feed()
	if err != nil {
		return fmt.Errorf("ListFeed: %w", err)
	}

	if err = h.messagePublisher.PublishResponse(request, plans); err != nil {
		return fmt.Errorf("ListFeed: %w", err)
	}

	return nil
}
