package services_test

import (
	"fmt"
	"regexp"
	"testing"
	"time"

	"gbstore/internal/models"
	"gbstore/internal/repositories"
	"gbstore/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockOrderRepository is a mock implementation of repositories.OrderRepository
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) GetAll() ([]models.Order, error) {
	args := m.Called()
	return args.Get(0).([]models.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByID(id string) (*models.Order, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *MockOrderRepository) Create(order *models.Order) error {
	args := m.Called(order)
	return args.Error(0)
}

func (m *MockOrderRepository) UpdateStatus(id string, status models.OrderStatus) error {
	args := m.Called(id, status)
	return args.Error(0)
}

func (m *MockOrderRepository) Count() (int, error) {
	args := m.Called()
	return args.Int(0), args.Error(1)
}

// MockPublisher is a mock implementation of services.EventPublisher
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(routingKey string, body []byte) error {
	args := m.Called(routingKey, body)
	return args.Error(0)
}

type orderFixture struct {
	service   *services.OrderService
	orders    *MockOrderRepository
	products  *MockProductRepository
	cart      *services.CartService
	publisher *MockPublisher
}

func newOrderFixture() *orderFixture {
	orders := new(MockOrderRepository)
	products := new(MockProductRepository)
	publisher := new(MockPublisher)
	cart := services.NewCartService(products, repositories.NewMemorySessionStore())
	return &orderFixture{
		service:   services.NewOrderService(orders, products, cart, publisher),
		orders:    orders,
		products:  products,
		cart:      cart,
		publisher: publisher,
	}
}

func TestOrderService_CreateOrderEmptyCart(t *testing.T) {
	f := newOrderFixture()

	orderID, err := f.service.CreateOrder("sess-1", "John Doe", "555-123-4567", "123 Main St")

	assert.ErrorIs(t, err, services.ErrEmptyCart)
	assert.Empty(t, orderID)
	f.orders.AssertNotCalled(t, "Create", mock.Anything)
}

func TestOrderService_CreateOrder(t *testing.T) {
	f := newOrderFixture()
	session := "sess-1"

	f.products.On("GetByID", "1").Return(jordan, nil)
	f.products.On("GetByID", "6").Return(earbud, nil)
	assert.NoError(t, f.cart.AddItem(session, jordan, 2, "Blue", "10"))
	assert.NoError(t, f.cart.AddItem(session, earbud, 1, "Black", ""))

	f.orders.On("Count").Return(3, nil).Once()

	var created models.Order
	f.orders.On("Create", mock.AnythingOfType("*models.Order")).Run(func(args mock.Arguments) {
		created = *args.Get(0).(*models.Order)
	}).Return(nil).Once()
	f.publisher.On("Publish", "order.created", mock.Anything).Return(nil).Once()

	orderID, err := f.service.CreateOrder(session, "Jane Smith", "555-987-6543", "456 Oak Ave")
	assert.NoError(t, err)

	// Identifier format and sequencing
	assert.Regexp(t, regexp.MustCompile(`^ORD-\d{4}-\d{4}$`), orderID)
	assert.Equal(t, fmt.Sprintf("ORD-%d-0004", time.Now().Year()), orderID)

	// Denormalized snapshot with checkout-time prices
	assert.Equal(t, orderID, created.ID)
	assert.Len(t, created.Items, 2)
	assert.Equal(t, "Nike Air Jordan 1 Retro High", created.Items[0].ProductName)
	assert.InDelta(t, 189.99, created.Items[0].Price, 0.001)
	assert.Equal(t, 2, created.Items[0].Quantity)
	assert.InDelta(t, 479.97, created.Total, 0.001)
	assert.Equal(t, models.StatusProcessing, created.Status)
	assert.Equal(t, "Jane Smith", created.CustomerName)

	// The cart is cleared exactly when the order is created
	assert.Empty(t, f.cart.Items(session))

	f.orders.AssertExpectations(t)
	f.publisher.AssertExpectations(t)
}

func TestOrderService_CreateOrderUnknownProductAborts(t *testing.T) {
	f := newOrderFixture()
	session := "sess-1"

	ghost := &models.Product{ID: "99", Name: "Discontinued", Price: 10.0}
	assert.NoError(t, f.cart.AddItem(session, jordan, 1, "Blue", ""))
	assert.NoError(t, f.cart.AddItem(session, ghost, 1, "Grey", ""))

	f.products.On("GetByID", "1").Return(jordan, nil)
	f.products.On("GetByID", "99").Return(nil, fmt.Errorf("product with ID 99 not found"))

	orderID, err := f.service.CreateOrder(session, "John Doe", "555-123-4567", "123 Main St")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
	assert.Empty(t, orderID)
	f.orders.AssertNotCalled(t, "Create", mock.Anything)

	// A failed checkout must not clear the cart
	assert.Len(t, f.cart.Items(session), 2)
}

func TestOrderService_CreateOrderSkipsPublisherWhenNil(t *testing.T) {
	orders := new(MockOrderRepository)
	products := new(MockProductRepository)
	cart := services.NewCartService(products, repositories.NewMemorySessionStore())
	service := services.NewOrderService(orders, products, cart, nil)

	products.On("GetByID", "1").Return(jordan, nil)
	assert.NoError(t, cart.AddItem("sess-1", jordan, 1, "Blue", ""))
	orders.On("Count").Return(0, nil).Once()
	orders.On("Create", mock.AnythingOfType("*models.Order")).Return(nil).Once()

	orderID, err := service.CreateOrder("sess-1", "John Doe", "555-123-4567", "123 Main St")
	assert.NoError(t, err)
	assert.NotEmpty(t, orderID)
	orders.AssertExpectations(t)
}

func TestOrderService_GetOrderByID(t *testing.T) {
	f := newOrderFixture()

	expected := &models.Order{ID: "ORD-2023-0001", Status: models.StatusProcessing}
	f.orders.On("GetByID", "ORD-2023-0001").Return(expected, nil).Once()

	order, err := f.service.GetOrderByID("ORD-2023-0001")
	assert.NoError(t, err)
	assert.Equal(t, expected, order)

	f.orders.On("GetByID", "ORD-2023-9999").Return(nil, fmt.Errorf("order with ID ORD-2023-9999 not found")).Once()
	order, err = f.service.GetOrderByID("ORD-2023-9999")
	assert.Error(t, err)
	assert.Nil(t, order)
	f.orders.AssertExpectations(t)
}

func TestOrderService_UpdateOrderStatus(t *testing.T) {
	f := newOrderFixture()

	processing := &models.Order{ID: "ORD-2023-0001", Status: models.StatusProcessing}

	// Allowed forward transition
	f.orders.On("GetByID", "ORD-2023-0001").Return(processing, nil).Once()
	f.orders.On("UpdateStatus", "ORD-2023-0001", models.StatusOutForDelivery).Return(nil).Once()
	f.publisher.On("Publish", "order.status_updated", mock.Anything).Return(nil).Once()

	err := f.service.UpdateOrderStatus("ORD-2023-0001", models.StatusOutForDelivery)
	assert.NoError(t, err)
	f.orders.AssertExpectations(t)
	f.publisher.AssertExpectations(t)
}

func TestOrderService_UpdateOrderStatusUnknownOrder(t *testing.T) {
	f := newOrderFixture()

	f.orders.On("GetByID", "ORD-2023-9999").Return(nil, fmt.Errorf("order with ID ORD-2023-9999 not found")).Once()

	err := f.service.UpdateOrderStatus("ORD-2023-9999", models.StatusDelivered)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
	f.orders.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything)
}

func TestOrderService_UpdateOrderStatusRejectsRegression(t *testing.T) {
	f := newOrderFixture()

	delivered := &models.Order{ID: "ORD-2023-0003", Status: models.StatusDelivered}
	f.orders.On("GetByID", "ORD-2023-0003").Return(delivered, nil).Once()

	err := f.service.UpdateOrderStatus("ORD-2023-0003", models.StatusProcessing)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "cannot move from")
	f.orders.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything)
}

func TestOrderService_UpdateOrderStatusRejectsUnknownStatus(t *testing.T) {
	f := newOrderFixture()

	err := f.service.UpdateOrderStatus("ORD-2023-0001", "shipped")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid order status")
	f.orders.AssertNotCalled(t, "GetByID", mock.Anything)
}

func TestOrderService_UpdateOrderStatusAllowsNoOp(t *testing.T) {
	f := newOrderFixture()

	processing := &models.Order{ID: "ORD-2023-0001", Status: models.StatusProcessing}
	f.orders.On("GetByID", "ORD-2023-0001").Return(processing, nil).Once()
	f.orders.On("UpdateStatus", "ORD-2023-0001", models.StatusProcessing).Return(nil).Once()
	f.publisher.On("Publish", "order.status_updated", mock.Anything).Return(nil).Once()

	err := f.service.UpdateOrderStatus("ORD-2023-0001", models.StatusProcessing)
	assert.NoError(t, err)
	f.orders.AssertExpectations(t)
}
