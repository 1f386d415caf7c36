package impl

import (
	"context"
	"log/slog"

	"petmart/internal/domain/entity"
	domainerrors "petmart/internal/domain/errors"
	"petmart/internal/domain/repository"
	"petmart/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// shipmentService implements the ShipmentUsecase interface. It reads two
// stores: shipments from the operations store, their orders from the
// storefront store, joined in application code.
type shipmentService struct {
	shipmentRepo repository.ShipmentRepository
	orderRepo    repository.OrderRepository
	logger       *slog.Logger
}

// NewShipmentService is the constructor for shipmentService.
func NewShipmentService(
	shipmentRepo repository.ShipmentRepository,
	orderRepo repository.OrderRepository,
	logger *slog.Logger,
) usecase.ShipmentUsecase {
	return &shipmentService{
		shipmentRepo: shipmentRepo,
		orderRepo:    orderRepo,
		logger:       logger,
	}
}

// Create records a shipment for an order. The uniqueness constraint on
// order_id turns a second create into a Conflict.
func (srv *shipmentService) Create(ctx context.Context, input *usecase.CreateShipmentInput) (*entity.Shipment, error) {
	srv.logger.Info("Creating shipment", "orderID", input.OrderID)

	status := input.Status
	if status == "" {
		status = entity.ShipmentStatusAwaitingPickup
	}

	shipment := &entity.Shipment{
		OrderID:               input.OrderID,
		TrackingNumber:        input.TrackingNumber,
		Carrier:               input.Carrier,
		Status:                status,
		EstimatedDeliveryTime: input.EstimatedDeliveryTime,
	}

	if err := srv.shipmentRepo.Create(ctx, shipment); err != nil {
		return nil, errors.Wrap(err, "failed to create shipment")
	}

	return shipment, nil
}

// Get returns a shipment by its ID.
func (srv *shipmentService) Get(ctx context.Context, id uint) (*entity.Shipment, error) {
	shipment, err := srv.shipmentRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrShipmentNotFound) {
			return nil, domainerrors.ErrShipmentNotFound
		}

		return nil, errors.Wrap(err, "failed to find shipment")
	}

	return shipment, nil
}

// GetByOrder returns the shipment recorded for an order.
func (srv *shipmentService) GetByOrder(ctx context.Context, orderID uuid.UUID) (*entity.Shipment, error) {
	shipment, err := srv.shipmentRepo.FindByOrderID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrShipmentNotFound) {
			return nil, domainerrors.ErrShipmentNotFound
		}

		return nil, errors.Wrap(err, "failed to find shipment by order")
	}

	return shipment, nil
}

// Update applies a partial update to a shipment.
func (srv *shipmentService) Update(ctx context.Context, id uint, input *usecase.UpdateShipmentInput) (*entity.Shipment, error) {
	update := repository.ShipmentUpdate{
		TrackingNumber:        input.TrackingNumber,
		Carrier:               input.Carrier,
		Status:                input.Status,
		EstimatedDeliveryTime: input.EstimatedDeliveryTime,
	}

	if err := srv.shipmentRepo.Update(ctx, id, update); err != nil {
		if errors.Is(err, repository.ErrShipmentNotFound) {
			return nil, domainerrors.ErrShipmentNotFound
		}

		return nil, errors.Wrap(err, "failed to update shipment")
	}

	shipment, err := srv.shipmentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload shipment")
	}

	return shipment, nil
}

// Delete removes a shipment record.
func (srv *shipmentService) Delete(ctx context.Context, id uint) error {
	if err := srv.shipmentRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrShipmentNotFound) {
			return domainerrors.ErrShipmentNotFound
		}

		return errors.Wrap(err, "failed to delete shipment")
	}

	return nil
}

// ListWithOrders returns one page of shipments with orders batch-fetched
// from the storefront store. A shipment whose order does not resolve keeps a
// nil Order reference; cross-store reads deliver partial results, never
// errors.
func (srv *shipmentService) ListWithOrders(ctx context.Context, offset, limit int) (*usecase.ShipmentPage, error) {
	shipments, total, err := srv.shipmentRepo.List(ctx, offset, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list shipments")
	}

	orderIDs := make([]uuid.UUID, 0, len(shipments))
	for _, shipment := range shipments {
		orderIDs = append(orderIDs, shipment.OrderID)
	}

	orderByID := make(map[uuid.UUID]*entity.Order, len(orderIDs))
	if len(orderIDs) > 0 {
		orders, err := srv.orderRepo.FindByIDs(ctx, orderIDs)
		if err != nil {
			return nil, errors.Wrap(err, "failed to resolve orders for shipments")
		}
		for _, order := range orders {
			orderByID[order.ID] = order
		}
	}

	items := make([]*usecase.ShipmentWithOrder, 0, len(shipments))
	for _, shipment := range shipments {
		items = append(items, &usecase.ShipmentWithOrder{
			Shipment: shipment,
			Order:    orderByID[shipment.OrderID],
		})
	}

	return &usecase.ShipmentPage{Items: items, Total: total}, nil
}
