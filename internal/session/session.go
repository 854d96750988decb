// Package session holds the state of one authenticated dashboard session:
// the user's identity, the cached product and order lists, the local cart
// and the notification feed.
//
// Network calls run outside the session lock. Overlapping identical
// requests (a double submitted order, for example) are not deduplicated.
package session

import (
	"context"
	stderrors "errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/enset/dashboard/internal/auth"
	"github.com/enset/dashboard/internal/cart"
	"github.com/enset/dashboard/internal/domain"
	"github.com/enset/dashboard/internal/service"
	apperrors "github.com/enset/dashboard/pkg/errors"
)

type State string

const (
	StateInitializing    State = "initializing"
	StateAuthenticated   State = "authenticated"
	StateUnauthenticated State = "unauthenticated"
	StateFailed          State = "failed"
)

// Authenticator is the identity provider binding
type Authenticator interface {
	Init(ctx context.Context) (bool, error)
	Identity() auth.Identity
	Logout(ctx context.Context) error
}

// Catalog loads the product list
type Catalog interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
}

// Orders loads, creates and updates orders
type Orders interface {
	ListOrders(ctx context.Context) ([]domain.Order, error)
	CreateOrderFromCart(ctx context.Context, customer domain.Customer, c *cart.Cart) (*domain.Order, error)
	UpdateStatus(ctx context.Context, orderID int64, status domain.OrderStatus) (*domain.Order, error)
}

// CartView is a snapshot of the cart and the order form
type CartView struct {
	Items    []domain.CartLineItem `json:"items"`
	Total    float64               `json:"total"`
	Customer domain.Customer       `json:"customer"`
}

type Session struct {
	id       uuid.UUID
	auth     Authenticator
	catalog  Catalog
	orderSvc Orders
	feed     *Feed
	logger   *zap.Logger

	mu       sync.Mutex
	epoch    uint64
	state    State
	identity auth.Identity
	products []domain.Product
	orders   []domain.Order
	cart     *cart.Cart
	customer domain.Customer
}

// New creates a session in the initializing state
func New(authenticator Authenticator, catalog Catalog, orders Orders, logger *zap.Logger) *Session {
	id := uuid.New()
	return &Session{
		id:       id,
		auth:     authenticator,
		catalog:  catalog,
		orderSvc: orders,
		feed:     NewFeed(DefaultFeedSize),
		logger:   logger.With(zap.String("session_id", id.String())),
		state:    StateInitializing,
		products: []domain.Product{},
		orders:   []domain.Order{},
		cart:     cart.New(),
	}
}

func (s *Session) ID() string {
	return s.id.String()
}

// Init resolves authentication and, once authenticated, loads the product
// and order lists. Only an authentication failure is returned; load failures
// become notifications.
func (s *Session) Init(ctx context.Context) error {
	s.mu.Lock()
	s.epoch++
	s.state = StateInitializing
	s.mu.Unlock()

	ok, err := s.auth.Init(ctx)
	if err != nil {
		s.logger.Error("Authentication initialization failed", zap.Error(err))
		s.mu.Lock()
		s.state = StateFailed
		s.mu.Unlock()
		s.feed.Push(LevelError, "Authentication failed. Please try again")
		return err
	}
	if !ok {
		s.mu.Lock()
		s.state = StateUnauthenticated
		s.mu.Unlock()
		return nil
	}

	identity := s.auth.Identity()
	s.mu.Lock()
	s.state = StateAuthenticated
	s.identity = identity
	s.customer = domain.Customer{Name: identity.Username, Email: identity.Email}
	s.mu.Unlock()

	s.logger.Info("Session authenticated",
		zap.String("username", identity.Username),
		zap.Bool("admin", identity.Admin),
	)

	s.LoadProducts(ctx)
	s.LoadOrders(ctx)
	return nil
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Session) Identity() auth.Identity {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.identity
}

// IsAdmin reports the admin role claim. It gates which controls are shown;
// the storefront API enforces the real authorization.
func (s *Session) IsAdmin() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state == StateAuthenticated && s.identity.Admin
}

func (s *Session) Navigation() []NavItem {
	return NavigationFor(s.IsAdmin())
}

func (s *Session) Notifications() []Notification {
	return s.feed.List()
}

func (s *Session) DismissNotification(id string) bool {
	return s.feed.Dismiss(id)
}

// LoadProducts replaces the cached catalog. On failure the previous cache is
// kept and an error notification is pushed.
func (s *Session) LoadProducts(ctx context.Context) ([]domain.Product, error) {
	epoch, err := s.authenticatedEpoch()
	if err != nil {
		return nil, err
	}

	products, err := s.catalog.ListProducts(ctx)
	if err != nil {
		s.feed.Push(LevelError, "Failed to load products")
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.currentLocked(epoch) {
		return nil, &apperrors.ErrNotAuthenticated{}
	}
	s.products = products
	return copyProducts(products), nil
}

// LoadOrders replaces the cached order list, with the same failure
// behaviour as LoadProducts.
func (s *Session) LoadOrders(ctx context.Context) ([]domain.Order, error) {
	epoch, err := s.authenticatedEpoch()
	if err != nil {
		return nil, err
	}

	orders, err := s.orderSvc.ListOrders(ctx)
	if err != nil {
		s.feed.Push(LevelError, "Failed to load orders")
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.currentLocked(epoch) {
		return nil, &apperrors.ErrNotAuthenticated{}
	}
	s.orders = orders
	return copyOrders(orders), nil
}

// Products returns the cached catalog
func (s *Session) Products() []domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyProducts(s.products)
}

// Orders returns the cached order list
func (s *Session) Orders() []domain.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyOrders(s.orders)
}

// Order returns one cached order
func (s *Session) Order(id int64) (domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	order, ok := service.FindOrderByID(s.orders, id)
	if !ok {
		return domain.Order{}, &apperrors.ErrNotFound{Resource: "order", ID: id}
	}
	return order, nil
}

// QueryOrders computes a filtered page of the cached order list
func (s *Session) QueryOrders(q service.OrderQuery) service.OrderPage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return service.QueryOrders(s.orders, q)
}

func (s *Session) Stats() service.Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return service.ComputeStats(s.products, s.orders)
}

func (s *Session) RevenueByDay() []service.DailyRevenue {
	s.mu.Lock()
	defer s.mu.Unlock()
	return service.RevenueByDay(s.orders)
}

func (s *Session) RecentOrders() []domain.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return service.RecentOrders(s.orders, service.RecentOrdersLimit)
}

// AddToCart adds one unit of a cached product to the cart. Products that are
// unknown or out of stock are refused.
func (s *Session) AddToCart(productID int64) (domain.CartLineItem, error) {
	if err := s.requireAuthenticated(); err != nil {
		return domain.CartLineItem{}, err
	}

	s.mu.Lock()
	product, ok := service.FindProductByID(s.products, productID)
	if !ok {
		s.mu.Unlock()
		return domain.CartLineItem{}, &apperrors.ErrNotFound{Resource: "product", ID: productID}
	}
	if product.StockLevel() == domain.StockLevelOut {
		s.mu.Unlock()
		msg := fmt.Sprintf("%s is out of stock", product.Name)
		s.feed.Push(LevelError, msg)
		return domain.CartLineItem{}, &apperrors.ErrValidation{Message: msg}
	}
	line := s.cart.Add(product)
	s.mu.Unlock()

	s.feed.Push(LevelSuccess, fmt.Sprintf("%s added to cart", product.Name))
	return line, nil
}

// SetCartQuantity sets a line's quantity; zero or less removes it
func (s *Session) SetCartQuantity(productID int64, quantity int) error {
	if err := s.requireAuthenticated(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.cart.SetQuantity(productID, quantity) {
		return &apperrors.ErrNotFound{Resource: "cart item", ID: productID}
	}
	return nil
}

// SetCustomer updates the name and email submitted with the next order
func (s *Session) SetCustomer(customer domain.Customer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.customer = customer
}

func (s *Session) Cart() CartView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return CartView{
		Items:    s.cart.Items(),
		Total:    s.cart.Total(),
		Customer: s.customer,
	}
}

// SubmitOrder submits the cart as an order. An empty cart fails locally
// without a network call. On success the submitted lines are removed from
// the cart and the order list reloaded; on failure the cart is left
// untouched.
func (s *Session) SubmitOrder(ctx context.Context) (*domain.Order, error) {
	epoch, err := s.authenticatedEpoch()
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	snapshot := s.cart.Clone()
	customer := s.customer
	s.mu.Unlock()

	order, err := s.orderSvc.CreateOrderFromCart(ctx, customer, snapshot)
	if err != nil {
		var validationErr *apperrors.ErrValidation
		if stderrors.As(err, &validationErr) {
			s.feed.Push(LevelError, validationErr.Message)
		} else {
			s.feed.Push(LevelError, "Failed to create order")
		}
		return nil, err
	}

	s.mu.Lock()
	current := s.currentLocked(epoch)
	if current {
		s.cart.Subtract(snapshot)
	}
	s.mu.Unlock()
	if !current {
		// the order exists remotely, but the session that placed it is gone
		s.logger.Info("Order created after session ended", zap.Int64("order_id", order.ID))
		return order, nil
	}

	s.feed.Push(LevelSuccess, fmt.Sprintf("Order #%d created successfully!", order.ID))
	s.LoadOrders(ctx)
	return order, nil
}

// UpdateOrderStatus requests a status change for an order and reloads the
// order list. It is only offered to admins.
func (s *Session) UpdateOrderStatus(ctx context.Context, orderID int64, status domain.OrderStatus) (*domain.Order, error) {
	if err := s.requireAuthenticated(); err != nil {
		return nil, err
	}
	if !s.IsAdmin() {
		return nil, &apperrors.ErrForbidden{Action: "updating order status"}
	}

	order, err := s.orderSvc.UpdateStatus(ctx, orderID, status)
	if err != nil {
		s.feed.Push(LevelError, "Failed to update order status")
		return nil, err
	}

	s.feed.Push(LevelSuccess, fmt.Sprintf("Order #%d updated to %s", orderID, status))
	s.LoadOrders(ctx)
	return order, nil
}

// Logout ends the session at the identity provider and drops all local
// state.
func (s *Session) Logout(ctx context.Context) error {
	err := s.auth.Logout(ctx)
	if err != nil {
		s.logger.Warn("Remote logout failed", zap.Error(err))
	}

	s.mu.Lock()
	s.epoch++
	s.state = StateUnauthenticated
	s.identity = auth.Identity{}
	s.products = []domain.Product{}
	s.orders = []domain.Order{}
	s.cart.Clear()
	s.customer = domain.Customer{}
	s.mu.Unlock()

	s.feed.Clear()
	return err
}

func (s *Session) requireAuthenticated() error {
	_, err := s.authenticatedEpoch()
	return err
}

// authenticatedEpoch returns the epoch of the current authenticated session.
// Logout and Init advance the epoch, so results of calls started before them
// are discarded.
func (s *Session) authenticatedEpoch() (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateAuthenticated {
		return 0, &apperrors.ErrNotAuthenticated{}
	}
	return s.epoch, nil
}

func (s *Session) currentLocked(epoch uint64) bool {
	return s.state == StateAuthenticated && s.epoch == epoch
}

func copyProducts(in []domain.Product) []domain.Product {
	out := make([]domain.Product, len(in))
	copy(out, in)
	return out
}

func copyOrders(in []domain.Order) []domain.Order {
	out := make([]domain.Order, len(in))
	copy(out, in)
	return out
}
