package postgres

import (
	"context"
	"time"

	"petmart/internal/domain/entity"
	domainerrors "petmart/internal/domain/errors"
	"petmart/internal/domain/repository"
	"petmart/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// orderRepository implements the repository.OrderRepository interface against
// the storefront store.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

// Create persists the order and its lines in one insert unit. GORM inserts
// the association rows alongside the parent.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrOrderNumberConflict
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.ID = orderM.ID
	order.CreateTime = orderM.CreateTime
	for i, itemM := range orderM.Items {
		if i < len(order.Lines) {
			order.Lines[i].ID = itemM.ID
			order.Lines[i].OrderID = itemM.OrderID
		}
	}

	return nil
}

// FindByID returns an order with its lines and their products.
func (repo *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.db.WithContext(ctx).
		Preload("Items.Product").
		Where("id = ?", id).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by id")
	}

	return toOrderDomain(&orderM), nil
}

// FindByIDs returns the orders whose IDs are in ids, lines included.
func (repo *orderRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Order, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var orderModels []*model.OrderModel
	if err := repo.db.WithContext(ctx).
		Preload("Items.Product").
		Where("id IN ?", ids).
		Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find orders by ids")
	}

	return toOrderDomainList(orderModels), nil
}

// FindByUser returns the user's orders, newest first.
func (repo *orderRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel

	if err := repo.db.WithContext(ctx).
		Preload("Items.Product").
		Where("user_id = ?", userID).
		Order("create_time DESC").
		Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find orders by user")
	}

	return toOrderDomainList(orderModels), nil
}

// List returns one page of orders plus the total matching count.
func (repo *orderRepository) List(ctx context.Context, filter repository.OrderListFilter) ([]*entity.Order, int64, error) {
	base := repo.db.WithContext(ctx).Model(&model.OrderModel{})

	if filter.Status != "" {
		base = base.Where("status = ?", string(filter.Status))
	}
	if filter.OrderNumber != "" {
		base = base.Where("order_number LIKE ?", "%"+filter.OrderNumber+"%")
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count orders")
	}

	query := base.Session(&gorm.Session{}).Preload("Items.Product")
	switch filter.SortBy {
	case repository.OrderSortAmountDesc:
		query = query.Order("total_amount DESC")
	case repository.OrderSortAmountAsc:
		query = query.Order("total_amount ASC")
	default:
		query = query.Order("create_time DESC")
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var orderModels []*model.OrderModel
	if err := query.Find(&orderModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list orders")
	}

	return toOrderDomainList(orderModels), total, nil
}

// UpdateStatus overwrites the order's status.
func (repo *orderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", id).
		Update("status", string(status))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update order status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// UpdatePayment sets status to paid and records the payment method.
func (repo *orderRepository) UpdatePayment(ctx context.Context, id uuid.UUID, paymentMethod string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":         string(entity.OrderStatusPaid),
			"payment_method": paymentMethod,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update order payment")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// Delete removes the order and its lines. Lines go first so no orphan rows
// survive a partial failure.
func (repo *orderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("order_id = ?", id).
		Delete(&model.OrderItemModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete order items")
	}

	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.OrderModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete order")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// Count returns the total number of orders, any status.
func (repo *orderRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count orders")
	}

	return count, nil
}

// CountByUser returns the number of orders placed by a user.
func (repo *orderRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count orders by user")
	}

	return count, nil
}

// SumTotalAmountByUser sums total_amount across a user's orders.
func (repo *orderRepository) SumTotalAmountByUser(ctx context.Context, userID uuid.UUID) (float64, error) {
	var total float64
	if err := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Select("COALESCE(SUM(total_amount), 0)").
		Where("user_id = ?", userID).
		Scan(&total).Error; err != nil {
		return 0, errors.Wrap(err, "failed to sum order amounts by user")
	}

	return total, nil
}

// SumTotalAmount sums total_amount across all orders, any status.
func (repo *orderRepository) SumTotalAmount(ctx context.Context) (float64, error) {
	var total float64
	if err := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&total).Error; err != nil {
		return 0, errors.Wrap(err, "failed to sum order amounts")
	}

	return total, nil
}

// SumTotalAmountBetween sums total_amount for orders created in [start, end).
func (repo *orderRepository) SumTotalAmountBetween(ctx context.Context, start, end time.Time) (float64, error) {
	var total float64
	if err := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Select("COALESCE(SUM(total_amount), 0)").
		Where("create_time >= ? AND create_time < ?", start, end).
		Scan(&total).Error; err != nil {
		return 0, errors.Wrap(err, "failed to sum order amounts in range")
	}

	return total, nil
}

// SumTotalAmountByVIPLevelSince sums total_amount for orders placed by users
// of the given VIP level since the given time.
func (repo *orderRepository) SumTotalAmountByVIPLevelSince(ctx context.Context, vipLevelID uuid.UUID, since time.Time) (float64, error) {
	var total float64
	if err := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Select("COALESCE(SUM(orders.total_amount), 0)").
		Joins("JOIN users ON users.id = orders.user_id").
		Where("users.vip_level_id = ?", vipLevelID).
		Where("orders.create_time >= ?", since).
		Scan(&total).Error; err != nil {
		return 0, errors.Wrap(err, "failed to sum order amounts by vip level")
	}

	return total, nil
}

// Recent returns the latest orders, newest first.
func (repo *orderRepository) Recent(ctx context.Context, limit int) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel

	if err := repo.db.WithContext(ctx).
		Preload("Items.Product").
		Order("create_time DESC").
		Limit(limit).
		Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list recent orders")
	}

	return toOrderDomainList(orderModels), nil
}

// --- Mapper Functions ---

func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	lines := make([]*entity.OrderLine, 0, len(data.Items))
	for _, itemM := range data.Items {
		lines = append(lines, &entity.OrderLine{
			ID:        itemM.ID,
			OrderID:   itemM.OrderID,
			ProductID: itemM.ProductID,
			Quantity:  itemM.Quantity,
			Price:     itemM.Price,
			Product:   toProductDomain(itemM.Product),
		})
	}

	return &entity.Order{
		ID:            data.ID,
		OrderNumber:   data.OrderNumber,
		UserID:        data.UserID,
		PaymentMethod: data.PaymentMethod,
		TotalAmount:   data.TotalAmount,
		Status:        entity.OrderStatus(data.Status),
		CreateTime:    data.CreateTime,
		Address: entity.AddressSnapshot{
			Name:     data.AddressSnapshot.Name,
			Phone:    data.AddressSnapshot.Phone,
			Province: data.AddressSnapshot.Province,
			City:     data.AddressSnapshot.City,
			District: data.AddressSnapshot.District,
			Detail:   data.AddressSnapshot.Detail,
		},
		Lines: lines,
	}
}

func toOrderDomainList(data []*model.OrderModel) []*entity.Order {
	orders := make([]*entity.Order, 0, len(data))
	for _, orderM := range data {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders
}

func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	items := make([]*model.OrderItemModel, 0, len(data.Lines))
	for _, line := range data.Lines {
		items = append(items, &model.OrderItemModel{
			ID:        line.ID,
			OrderID:   line.OrderID,
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			Price:     line.Price,
		})
	}

	return &model.OrderModel{
		ID:            data.ID,
		OrderNumber:   data.OrderNumber,
		UserID:        data.UserID,
		PaymentMethod: data.PaymentMethod,
		TotalAmount:   data.TotalAmount,
		Status:        string(data.Status),
		CreateTime:    data.CreateTime,
		AddressSnapshot: model.AddressSnapshotModel{
			Name:     data.Address.Name,
			Phone:    data.Address.Phone,
			Province: data.Address.Province,
			City:     data.Address.City,
			District: data.Address.District,
			Detail:   data.Address.Detail,
		},
		Items: items,
	}
}
