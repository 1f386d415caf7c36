package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"petmart/internal/domain/entity"
	domainerrors "petmart/internal/domain/errors"
	"petmart/internal/domain/repository"
	"petmart/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const defaultOrderPageSize = 10

// orderService implements the OrderUsecase interface. The transaction
// manager covers the storefront store only; the shipment repository writes
// to the operations store outside any storefront transaction.
type orderService struct {
	txManager    repository.TransactionManager
	orderRepo    repository.OrderRepository
	shipmentRepo repository.ShipmentRepository
	logger       *slog.Logger
	now          func() time.Time
}

// NewOrderService is the constructor for orderService.
func NewOrderService(
	txManager repository.TransactionManager,
	orderRepo repository.OrderRepository,
	shipmentRepo repository.ShipmentRepository,
	logger *slog.Logger,
) usecase.OrderUsecase {
	return &orderService{
		txManager:    txManager,
		orderRepo:    orderRepo,
		shipmentRepo: shipmentRepo,
		logger:       logger,
		now:          time.Now,
	}
}

// newOrderNumber derives the business order number from the current wall
// clock. Uniqueness is enforced by the order_number constraint; a same-
// millisecond collision surfaces as a Conflict.
func (srv *orderService) newOrderNumber() string {
	return fmt.Sprintf("PET%d", srv.now().UnixMilli())
}

// Checkout converts the user's cart into an order in one storefront
// transaction: order + lines inserted, sales counters incremented, cart
// cleared. Prices are read once; later catalog changes never affect the
// created order.
func (srv *orderService) Checkout(ctx context.Context, userID uuid.UUID, input *usecase.CheckoutInput) (*entity.Order, error) {
	srv.logger.Info("Checking out cart", "userID", userID)

	var order *entity.Order

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cartRepo := repoFactory.NewCartRepository()
		productRepo := repoFactory.NewProductRepository()
		orderRepo := repoFactory.NewOrderRepository()

		items, err := cartRepo.FindByUser(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to read cart")
		}
		if len(items) == 0 {
			return domainerrors.ErrEmptyCart
		}

		productIDs := make([]uuid.UUID, 0, len(items))
		for _, item := range items {
			productIDs = append(productIDs, item.ProductID)
		}

		products, err := productRepo.FindByIDs(ctx, productIDs)
		if err != nil {
			return errors.Wrap(err, "failed to load products")
		}
		productByID := make(map[uuid.UUID]*entity.Product, len(products))
		for _, product := range products {
			productByID[product.ID] = product
		}

		var total float64
		lines := make([]*entity.OrderLine, 0, len(items))
		for _, item := range items {
			product, ok := productByID[item.ProductID]
			if !ok {
				return domainerrors.ErrProductNotFound.WrapMessage("cart references a missing product")
			}

			lines = append(lines, &entity.OrderLine{
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
				Price:     product.Price,
			})
			total += product.Price * float64(item.Quantity)
		}

		order = &entity.Order{
			OrderNumber:   srv.newOrderNumber(),
			UserID:        userID,
			PaymentMethod: input.PaymentMethod,
			TotalAmount:   total,
			Status:        entity.OrderStatusPending,
			Address: entity.AddressSnapshot{
				Name:     input.Address.Name,
				Phone:    input.Address.Phone,
				Province: input.Address.Province,
				City:     input.Address.City,
				District: input.Address.District,
				Detail:   input.Address.Detail,
			},
			Lines: lines,
		}

		if err := orderRepo.Create(ctx, order); err != nil {
			return errors.Wrap(err, "failed to create order")
		}

		for _, line := range lines {
			if err := productRepo.IncrementSales(ctx, line.ProductID, line.Quantity); err != nil {
				return errors.Wrap(err, "failed to increment product sales")
			}
		}

		if err := cartRepo.ClearByUser(ctx, userID); err != nil {
			return errors.Wrap(err, "failed to clear cart")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "checkout failed")
	}

	srv.logger.Info("Order created", "orderID", order.ID, "orderNumber", order.OrderNumber, "totalAmount", order.TotalAmount)

	return order, nil
}

// Pay marks a pending order as paid. Any other current status is rejected
// with an InvalidTransition error.
func (srv *orderService) Pay(ctx context.Context, orderID uuid.UUID, paymentMethod string) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	if !order.Status.CanTransitionTo(entity.OrderStatusPaid) {
		return nil, domainerrors.ErrInvalidTransition.WithDetails(
			fmt.Sprintf("order is %q, only pending orders can be paid", order.Status))
	}

	if err := srv.orderRepo.UpdatePayment(ctx, orderID, paymentMethod); err != nil {
		return nil, errors.Wrap(err, "failed to record payment")
	}

	order.Status = entity.OrderStatusPaid
	order.PaymentMethod = paymentMethod

	return order, nil
}

// SetStatus overwrites the order's status unconditionally; admin correction
// flows rely on the write being unrestricted. A transition to "shipped"
// additionally derives a shipment record in the operations store.
func (srv *orderService) SetStatus(ctx context.Context, orderID uuid.UUID, status string) (*entity.Order, error) {
	if status == "" {
		return nil, domainerrors.ErrStatusRequired
	}

	if _, err := srv.orderRepo.FindByID(ctx, orderID); err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	if err := srv.orderRepo.UpdateStatus(ctx, orderID, entity.OrderStatus(status)); err != nil {
		return nil, errors.Wrap(err, "failed to update order status")
	}

	if entity.OrderStatus(status) == entity.OrderStatusShipped {
		srv.ensureShipment(ctx, orderID)
	}

	order, err := srv.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload order")
	}

	return order, nil
}

// ensureShipment creates the derived shipment record for a shipped order if
// none exists yet. The status commit and this write hit different stores, so
// "shipped with no shipment yet" is a valid transient state: a failure here
// is logged and swallowed. Under two concurrent shipped-transitions the
// uniqueness constraint on shippings.order_id picks the winner, and the
// loser's Conflict is equally a no-op success.
func (srv *orderService) ensureShipment(ctx context.Context, orderID uuid.UUID) {
	_, err := srv.shipmentRepo.FindByOrderID(ctx, orderID)
	if err == nil {
		return
	}
	if !errors.Is(err, repository.ErrShipmentNotFound) {
		srv.logger.Warn("failed to check shipment for shipped order", "orderID", orderID, "error", err)

		return
	}

	shipment := &entity.Shipment{
		OrderID: orderID,
		Status:  entity.ShipmentStatusAwaitingPickup,
	}
	if err := srv.shipmentRepo.Create(ctx, shipment); err != nil {
		if errors.Is(err, domainerrors.ErrShipmentExists) {
			srv.logger.Debug("shipment already created by concurrent writer", "orderID", orderID)

			return
		}
		srv.logger.Warn("failed to create shipment for shipped order", "orderID", orderID, "error", err)

		return
	}

	srv.logger.Info("Shipment derived for shipped order", "orderID", orderID, "shipmentID", shipment.ID)
}

// Get returns an order with its lines.
func (srv *orderService) Get(ctx context.Context, orderID uuid.UUID) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	return order, nil
}

// ListByUser returns the user's order history, newest first.
func (srv *orderService) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list user orders")
	}

	return orders, nil
}

// AdminList returns one page of orders for the admin surface.
func (srv *orderService) AdminList(ctx context.Context, input *usecase.AdminOrderListInput) (*usecase.OrderPage, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}
	pageSize := input.PageSize
	if pageSize < 1 {
		pageSize = defaultOrderPageSize
	}

	filter := repository.OrderListFilter{
		Status:      entity.OrderStatus(input.Status),
		OrderNumber: input.OrderNumber,
		SortBy:      repository.OrderSort(input.SortBy),
		Offset:      (page - 1) * pageSize,
		Limit:       pageSize,
	}

	orders, total, err := srv.orderRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return &usecase.OrderPage{Orders: orders, Total: total}, nil
}

// Delete removes the order and its lines in one storefront transaction. A
// shipment row for the order is deliberately left behind; cross-store
// cleanup would need a transaction boundary the two stores do not share.
func (srv *orderService) Delete(ctx context.Context, orderID uuid.UUID) error {
	srv.logger.Info("Deleting order", "orderID", orderID)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.NewOrderRepository()

		if err := orderRepo.Delete(ctx, orderID); err != nil {
			if errors.Is(err, repository.ErrOrderNotFound) {
				return domainerrors.ErrOrderNotFound
			}

			return errors.Wrap(err, "failed to delete order")
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to delete order")
	}

	return nil
}
