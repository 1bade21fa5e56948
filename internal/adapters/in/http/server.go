package http

import (
	"errors"
	"net/http"

	"geodispatch/internal/core/application/usecases/commands"
	"geodispatch/internal/core/application/usecases/queries"
	"geodispatch/internal/core/application/usecases/sessions"
	"geodispatch/internal/core/domain/model/assignment"
	"geodispatch/internal/core/domain/model/kernel"
	"geodispatch/internal/core/ports"
	"geodispatch/internal/generated/servers"
	"geodispatch/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	sessionFactory sessions.Factory

	// Command handlers
	submitAssignmentHandler commands.SubmitAssignmentCommandHandler

	// Query handlers
	getActiveBranchesHandler queries.GetActiveBranchesQueryHandler
	getDeliveryZonesHandler  queries.GetDeliveryZonesQueryHandler
}

// NewServer creates a new HTTP server with the required session factory and
// command and query handlers.
func NewServer(
	sessionFactory sessions.Factory,
	submitAssignmentHandler commands.SubmitAssignmentCommandHandler,
	getActiveBranchesHandler queries.GetActiveBranchesQueryHandler,
	getDeliveryZonesHandler queries.GetDeliveryZonesQueryHandler,
) *Server {
	return &Server{
		sessionFactory:           sessionFactory,
		submitAssignmentHandler:  submitAssignmentHandler,
		getActiveBranchesHandler: getActiveBranchesHandler,
		getDeliveryZonesHandler:  getDeliveryZonesHandler,
	}
}

// GetBranches handles GET /api/v1/branches - retrieves a partner's accepting branches.
func (s *Server) GetBranches(ctx echo.Context, params servers.GetBranchesParams) error {
	partnerID, err := kernel.UUIDFromBytes(params.PartnerId[:])
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid partner identifier",
		})
	}

	query, err := queries.NewGetActiveBranchesQuery(partnerID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid partner identifier",
		})
	}

	branches, err := s.getActiveBranchesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve branches",
		})
	}

	response := make([]servers.Branch, len(branches))
	for i, branch := range branches {
		response[i] = servers.Branch{
			Id:        branch.ID.Bytes(),
			Name:      branch.Name,
			Address:   branch.Address,
			Latitude:  branch.Latitude,
			Longitude: branch.Longitude,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetZones handles GET /api/v1/zones - retrieves a partner's active delivery zones.
func (s *Server) GetZones(ctx echo.Context, params servers.GetZonesParams) error {
	partnerID, err := kernel.UUIDFromBytes(params.PartnerId[:])
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid partner identifier",
		})
	}

	query, err := queries.NewGetDeliveryZonesQuery(partnerID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid partner identifier",
		})
	}

	zones, err := s.getDeliveryZonesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve delivery zones",
		})
	}

	response := make([]servers.DeliveryZone, len(zones))
	for i, zone := range zones {
		response[i] = servers.DeliveryZone{
			Id:                    zone.ID.Bytes(),
			Name:                  zone.Name,
			FlatPrice:             zone.FlatPrice,
			MinOrderAmount:        zone.MinOrderAmount,
			FreeDeliveryThreshold: zone.FreeDeliveryThreshold,
			CreationOrder:         zone.CreationOrder,
			RingCount:             zone.RingCount,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateAssignment handles POST /api/v1/assignments - resolves the delivery
// point, ranks branches, detects the zone and quotes the price in one pass.
// When orderId is present the outcome is also submitted to the draft order.
func (s *Server) CreateAssignment(ctx echo.Context) error {
	var request servers.AssignmentRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	partnerID, err := kernel.UUIDFromBytes(request.PartnerId[:])
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid partner identifier",
		})
	}

	fulfillment, err := assignment.ParseFulfillmentType(string(request.Fulfillment))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid fulfillment type: " + err.Error(),
		})
	}

	requestCtx := ctx.Request().Context()

	session, err := s.sessionFactory.NewSession(requestCtx, partnerID)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to start assignment session",
		})
	}

	switch {
	case request.AddressText != nil:
		err = session.AssignFromAddress(requestCtx, *request.AddressText, request.SubtotalAmount, fulfillment)
	case request.Latitude != nil && request.Longitude != nil:
		var point kernel.Coordinate
		point, err = kernel.NewCoordinate(*request.Latitude, *request.Longitude)
		if err == nil {
			err = session.AssignFromCoordinate(requestCtx, point, request.SubtotalAmount, fulfillment)
		}
	default:
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Either addressText or latitude/longitude is required",
		})
	}
	if err != nil {
		status, message := assignErrorStatus(err)
		return ctx.JSON(status, servers.Error{Code: status, Message: message})
	}

	if request.ManualZoneId != nil {
		zoneID, idErr := kernel.UUIDFromBytes(request.ManualZoneId[:])
		if idErr != nil {
			return ctx.JSON(http.StatusBadRequest, servers.Error{
				Code:    http.StatusBadRequest,
				Message: "Invalid manual zone identifier",
			})
		}

		if err = session.SetManualZone(requestCtx, zoneID, request.SubtotalAmount, fulfillment); err != nil {
			if errors.Is(err, sessions.ErrZoneNotFound) {
				return ctx.JSON(http.StatusNotFound, servers.Error{
					Code:    http.StatusNotFound,
					Message: "Delivery zone not found",
				})
			}
			return ctx.JSON(http.StatusBadRequest, servers.Error{
				Code:    http.StatusBadRequest,
				Message: "Failed to apply manual zone: " + err.Error(),
			})
		}
	}

	result := session.Result()

	if request.OrderId != nil {
		orderID, idErr := kernel.UUIDFromBytes(request.OrderId[:])
		if idErr != nil {
			return ctx.JSON(http.StatusBadRequest, servers.Error{
				Code:    http.StatusBadRequest,
				Message: "Invalid order identifier",
			})
		}

		cmd, cmdErr := commands.NewSubmitAssignmentCommand(orderID, result, fulfillment)
		if cmdErr != nil {
			return ctx.JSON(http.StatusUnprocessableEntity, servers.Error{
				Code:    http.StatusUnprocessableEntity,
				Message: "Assignment is not submittable: " + cmdErr.Error(),
			})
		}

		if err = s.submitAssignmentHandler.Handle(requestCtx, cmd); err != nil {
			if errors.Is(err, errs.ErrObjectNotFound) {
				return ctx.JSON(http.StatusNotFound, servers.Error{
					Code:    http.StatusNotFound,
					Message: "Order not found",
				})
			}
			return ctx.JSON(http.StatusInternalServerError, servers.Error{
				Code:    http.StatusInternalServerError,
				Message: "Failed to submit assignment",
			})
		}
	}

	return ctx.JSON(http.StatusOK, toAssignmentResult(result))
}

// assignErrorStatus maps session resolution failures to HTTP statuses.
// Customer-correctable input maps to 4xx, provider outages to 502.
func assignErrorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, ports.ErrAddressNotFound):
		return http.StatusUnprocessableEntity, "Address could not be geocoded"
	case errors.Is(err, ports.ErrProviderUnavailable):
		return http.StatusBadGateway, "Geo provider is unavailable"
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest, "Invalid assignment input: " + err.Error()
	default:
		return http.StatusInternalServerError, "Failed to compute assignment"
	}
}

func toAssignmentResult(result assignment.Result) servers.AssignmentResult {
	response := servers.AssignmentResult{
		FormattedAddress:    result.FormattedAddress,
		DistanceKm:          result.DistanceKm,
		DurationMinutes:     result.DurationMinutes,
		DeliveryPrice:       result.DeliveryPrice,
		IsManualZone:        result.IsManualZone,
		IsFreeDelivery:      result.IsFreeDelivery,
		IsBelowMinimumOrder: result.IsBelowMinimumOrder,
	}

	if result.Coordinate != nil {
		response.Latitude = result.Coordinate.Latitude()
		response.Longitude = result.Coordinate.Longitude()
	}

	if result.Branch != nil {
		branchID := result.Branch.ID().Bytes()
		branchName := result.Branch.Name()
		response.BranchId = &branchID
		response.BranchName = &branchName
	}

	if result.Zone != nil {
		zoneID := result.Zone.ID().Bytes()
		zoneName := result.Zone.Name()
		response.ZoneId = &zoneID
		response.ZoneName = &zoneName
	}

	return response
}
