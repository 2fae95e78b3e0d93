package queries

import (
	"context"

	"printflow/internal/core/domain/model/order"
	"printflow/internal/core/domain/services"
)

// GetStatusSummaryQueryHandler counts visible orders per status.
type GetStatusSummaryQueryHandler struct {
	reader OrderReader
	policy services.AccessPolicy
}

func NewGetStatusSummaryQueryHandler(reader OrderReader, policy services.AccessPolicy) GetStatusSummaryQueryHandler {
	return GetStatusSummaryQueryHandler{reader: reader, policy: policy}
}

func (h GetStatusSummaryQueryHandler) Handle(
	ctx context.Context,
	query GetStatusSummaryQuery,
) (GetStatusSummaryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetStatusSummaryQueryResponse{}, err
	}

	orders, err := h.reader.List(ctx)
	if err != nil {
		return GetStatusSummaryQueryResponse{}, err
	}
	visible := h.policy.VisibleOrders(query.Viewer(), orders)

	counts := make(map[order.Status]int, len(order.Pipeline()))
	for _, o := range visible {
		counts[o.Status()]++
	}

	resp := GetStatusSummaryQueryResponse{
		Total:    len(visible),
		ByStatus: make([]StatusCount, 0, len(order.Pipeline())),
	}
	for _, s := range order.Pipeline() {
		resp.ByStatus = append(resp.ByStatus, StatusCount{Status: s, Label: s.Label(), Count: counts[s]})
	}
	return resp, nil
}
