package postgres

import (
	"context"

	"petmart/internal/domain/entity"
	domainerrors "petmart/internal/domain/errors"
	"petmart/internal/domain/repository"
	"petmart/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// shipmentRepository implements the repository.ShipmentRepository interface
// against the operations store.
type shipmentRepository struct {
	db *gorm.DB
}

// NewShipmentRepository is the constructor for shipmentRepository.
func NewShipmentRepository(db *gorm.DB) repository.ShipmentRepository {
	return &shipmentRepository{db: db}
}

// Create persists a new shipment. The uniqueness constraint on order_id
// surfaces a second shipment for the same order as ErrShipmentExists.
func (repo *shipmentRepository) Create(ctx context.Context, shipment *entity.Shipment) error {
	shipmentM := fromShipmentDomain(shipment)

	if err := repo.db.WithContext(ctx).Create(shipmentM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrShipmentExists
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create shipment")
	}

	shipment.ID = shipmentM.ID
	shipment.ShippingTime = shipmentM.ShippingTime

	return nil
}

// FindByID returns a shipment or ErrShipmentNotFound.
func (repo *shipmentRepository) FindByID(ctx context.Context, id uint) (*entity.Shipment, error) {
	var shipmentM model.ShipmentModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&shipmentM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrShipmentNotFound
		}

		return nil, errors.Wrap(err, "failed to find shipment by id")
	}

	return toShipmentDomain(&shipmentM), nil
}

// FindByOrderID returns the shipment for an order or ErrShipmentNotFound.
func (repo *shipmentRepository) FindByOrderID(ctx context.Context, orderID uuid.UUID) (*entity.Shipment, error) {
	var shipmentM model.ShipmentModel

	if err := repo.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		First(&shipmentM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrShipmentNotFound
		}

		return nil, errors.Wrap(err, "failed to find shipment by order id")
	}

	return toShipmentDomain(&shipmentM), nil
}

// List returns one page of shipments plus the total count, newest first.
func (repo *shipmentRepository) List(ctx context.Context, offset, limit int) ([]*entity.Shipment, int64, error) {
	var total int64
	if err := repo.db.WithContext(ctx).
		Model(&model.ShipmentModel{}).
		Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count shipments")
	}

	query := repo.db.WithContext(ctx).Order("shipping_time DESC")
	if offset > 0 {
		query = query.Offset(offset)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	var shipmentModels []*model.ShipmentModel
	if err := query.Find(&shipmentModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list shipments")
	}

	shipments := make([]*entity.Shipment, 0, len(shipmentModels))
	for _, shipmentM := range shipmentModels {
		shipments = append(shipments, toShipmentDomain(shipmentM))
	}

	return shipments, total, nil
}

// Update applies a partial update; nil fields stay untouched.
func (repo *shipmentRepository) Update(ctx context.Context, id uint, update repository.ShipmentUpdate) error {
	changes := map[string]any{}
	if update.TrackingNumber != nil {
		changes["tracking_number"] = *update.TrackingNumber
	}
	if update.Carrier != nil {
		changes["carrier"] = *update.Carrier
	}
	if update.Status != nil {
		changes["status"] = *update.Status
	}
	if update.EstimatedDeliveryTime != nil {
		changes["estimated_delivery_time"] = *update.EstimatedDeliveryTime
	}
	if len(changes) == 0 {
		return nil
	}

	result := repo.db.WithContext(ctx).
		Model(&model.ShipmentModel{}).
		Where("id = ?", id).
		Updates(changes)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update shipment")
	}
	if result.RowsAffected == 0 {
		return repository.ErrShipmentNotFound
	}

	return nil
}

// Delete removes a shipment record.
func (repo *shipmentRepository) Delete(ctx context.Context, id uint) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ShipmentModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete shipment")
	}
	if result.RowsAffected == 0 {
		return repository.ErrShipmentNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toShipmentDomain(data *model.ShipmentModel) *entity.Shipment {
	if data == nil {
		return nil
	}

	return &entity.Shipment{
		ID:                    data.ID,
		OrderID:               data.OrderID,
		TrackingNumber:        data.TrackingNumber,
		Carrier:               data.Carrier,
		Status:                data.Status,
		ShippingTime:          data.ShippingTime,
		EstimatedDeliveryTime: data.EstimatedDeliveryTime,
	}
}

func fromShipmentDomain(data *entity.Shipment) *model.ShipmentModel {
	if data == nil {
		return nil
	}

	return &model.ShipmentModel{
		ID:                    data.ID,
		OrderID:               data.OrderID,
		TrackingNumber:        data.TrackingNumber,
		Carrier:               data.Carrier,
		Status:                data.Status,
		ShippingTime:          data.ShippingTime,
		EstimatedDeliveryTime: data.EstimatedDeliveryTime,
	}
}
