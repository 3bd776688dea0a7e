package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/zubairatha/CalBridge/pkg/agent"
	"github.com/zubairatha/CalBridge/pkg/calbridge"
	"github.com/zubairatha/CalBridge/pkg/scheduler"
	"github.com/zubairatha/CalBridge/pkg/services"
)

// mapServiceError maps service-layer errors to an HTTP status and body.
func mapServiceError(err error) (int, ErrorResponse) {
	var validErr *services.ValidationError
	if errors.As(err, &validErr) {
		return http.StatusBadRequest, ErrorResponse{Error: validErr.Error()}
	}
	if errors.Is(err, services.ErrNotFound) {
		return http.StatusNotFound, ErrorResponse{Error: "resource not found"}
	}

	var stageErr *agent.StageError
	if errors.As(err, &stageErr) {
		switch stageErr.Stage {
		case agent.StageQuery:
			return http.StatusBadRequest, ErrorResponse{Error: stageErr.Error()}
		case agent.StageAllotter:
			return mapAllotterError(stageErr)
		case agent.StageCreator:
			if isBridgeError(stageErr.Err) {
				return http.StatusBadGateway, ErrorResponse{Error: stageErr.Error()}
			}
		}
	}

	slog.Error("Unexpected service error", "error", err)
	return http.StatusInternalServerError, ErrorResponse{Error: "internal server error"}
}

// Infeasible and placement failures are caller-fixable: the window, the
// deadline, or the calendar load has to change. They are not server faults.
func mapAllotterError(stageErr *agent.StageError) (int, ErrorResponse) {
	var infeasible *scheduler.InfeasibleError
	var placement *scheduler.PlacementError
	switch {
	case errors.Is(stageErr.Err, scheduler.ErrNoEligibleDays),
		errors.As(stageErr.Err, &infeasible),
		errors.As(stageErr.Err, &placement):
		return http.StatusUnprocessableEntity, ErrorResponse{Error: stageErr.Error()}
	case isBridgeError(stageErr.Err):
		return http.StatusBadGateway, ErrorResponse{Error: stageErr.Error()}
	default:
		slog.Error("Unexpected allotter error", "error", stageErr)
		return http.StatusInternalServerError, ErrorResponse{Error: "internal server error"}
	}
}

// isBridgeError matches non-2xx bridge responses. Transport-level failures
// do not carry a type, so they fall to the generic 500 path.
func isBridgeError(err error) bool {
	var statusErr *calbridge.StatusError
	return errors.As(err, &statusErr)
}
