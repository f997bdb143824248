package debug

import (
	"bytes"
	"runtime/pprof"

	"github.com/nats-io/nats.go"

	"github.com/saksham-app/delivery-agent/internal/objects/dto"
)

type (
	IReportService interface {
		Status() (output string, err error)
	}

	MQHandler struct {
		reportService IReportService
	}
)

func NewMQHandler(reportService IReportService) *MQHandler {
	return &MQHandler{
		reportService: reportService,
	}
}

// DumpHeap dumps heap memory using pprof.
func (h *MQHandler) DumpHeap(_ *nats.Msg) (resp any) {
	var buf bytes.Buffer
	if err := pprof.WriteHeapProfile(&buf); err != nil {
		return dto.NewInternalErrorResponse(err.Error())
	}

	response := struct {
		dto.MQResponse

		Data []byte `json:"data"`
	}{
		MQResponse: dto.NewOkResponse(),
		Data:       buf.Bytes(),
	}

	return response
}

// Status returns advisor state and feed delivery plans as text tables.
func (h *MQHandler) Status(_ *nats.Msg) (resp any) {
	output, err := h.reportService.Status()
	if err != nil {
		return dto.NewInternalErrorResponse(err.Error())
	}

	response := struct {
		dto.MQResponse

		Report string `json:"report"`
	}{
		MQResponse: dto.NewOkResponse(),
		Report:     output,
	}

	return response
}
