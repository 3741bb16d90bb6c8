package services_test

import (
	"context"
	"errors"
	"sort"

	"github.com/shashiranjanraj/freshbasket/app/models"
	"github.com/shashiranjanraj/freshbasket/app/services"
)

// memState is the in-memory database shared by the fake stores.
type memState struct {
	products   map[uint]models.Product
	cart       []models.CartItem
	orders     []models.Order
	orderItems []models.OrderItem
	users      map[uint]models.User

	nextOrderID uint
	nextCartID  uint

	failOn string // store method name that should return an error
}

func newMemState() *memState {
	return &memState{
		products:    map[uint]models.Product{},
		users:       map[uint]models.User{},
		nextOrderID: 1,
		nextCartID:  1,
	}
}

func (s *memState) clone() *memState {
	c := &memState{
		products:    make(map[uint]models.Product, len(s.products)),
		cart:        append([]models.CartItem(nil), s.cart...),
		orders:      append([]models.Order(nil), s.orders...),
		orderItems:  append([]models.OrderItem(nil), s.orderItems...),
		users:       make(map[uint]models.User, len(s.users)),
		nextOrderID: s.nextOrderID,
		nextCartID:  s.nextCartID,
		failOn:      s.failOn,
	}
	for k, v := range s.products {
		c.products[k] = v
	}
	for k, v := range s.users {
		c.users[k] = v
	}
	return c
}

func (s *memState) copyFrom(o *memState) {
	s.products = o.products
	s.cart = o.cart
	s.orders = o.orders
	s.orderItems = o.orderItems
	s.users = o.users
	s.nextOrderID = o.nextOrderID
	s.nextCartID = o.nextCartID
}

func (s *memState) stores() services.Stores {
	return services.Stores{
		Catalog: &fakeCatalog{s},
		Cart:    &fakeCart{s},
		Orders:  &fakeOrders{s},
		Users:   &fakeUsers{s},
	}
}

// fakeUnitOfWork runs fn against a clone and commits it only on success,
// mirroring transactional rollback.
type fakeUnitOfWork struct {
	state *memState
}

func (u *fakeUnitOfWork) Atomically(_ context.Context, fn func(s services.Stores) error) error {
	working := u.state.clone()
	if err := fn(working.stores()); err != nil {
		return err
	}
	u.state.copyFrom(working)
	return nil
}

type fakeCatalog struct{ s *memState }

func (f *fakeCatalog) GetProduct(_ context.Context, id uint) (models.Product, bool, error) {
	if f.s.failOn == "GetProduct" {
		return models.Product{}, false, errors.New("store down")
	}
	p, ok := f.s.products[id]
	return p, ok, nil
}

func (f *fakeCatalog) GetProductForUpdate(ctx context.Context, id uint) (models.Product, bool, error) {
	if f.s.failOn == "GetProductForUpdate" {
		return models.Product{}, false, errors.New("store down")
	}
	return f.GetProduct(ctx, id)
}

func (f *fakeCatalog) ListProducts(_ context.Context) ([]models.Product, error) {
	ids := make([]uint, 0, len(f.s.products))
	for id := range f.s.products {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := make([]models.Product, 0, len(ids))
	for _, id := range ids {
		out = append(out, f.s.products[id])
	}
	return out, nil
}

func (f *fakeCatalog) DecrementStock(_ context.Context, id uint, amount int64) (bool, error) {
	if f.s.failOn == "DecrementStock" {
		return false, errors.New("store down")
	}
	p, ok := f.s.products[id]
	if !ok || p.StockQuantity < amount {
		return false, nil
	}
	p.StockQuantity -= amount
	f.s.products[id] = p
	return true, nil
}

type fakeCart struct{ s *memState }

func (f *fakeCart) ListCart(_ context.Context, userID uint) ([]models.CartItem, error) {
	var out []models.CartItem
	for _, line := range f.s.cart {
		if line.UserID == userID {
			out = append(out, line)
		}
	}
	return out, nil
}

func (f *fakeCart) GetLine(_ context.Context, userID, productID uint) (models.CartItem, bool, error) {
	for _, line := range f.s.cart {
		if line.UserID == userID && line.ProductID == productID {
			return line, true, nil
		}
	}
	return models.CartItem{}, false, nil
}

func (f *fakeCart) GetLineForUpdate(ctx context.Context, userID, productID uint) (models.CartItem, bool, error) {
	return f.GetLine(ctx, userID, productID)
}

func (f *fakeCart) UpsertLine(_ context.Context, userID, productID uint, quantity int64) (models.CartItem, error) {
	for i, line := range f.s.cart {
		if line.UserID == userID && line.ProductID == productID {
			f.s.cart[i].Quantity = quantity
			return f.s.cart[i], nil
		}
	}
	line := models.CartItem{
		CartID:    f.s.nextCartID,
		UserID:    userID,
		ProductID: productID,
		Quantity:  quantity,
	}
	f.s.nextCartID++
	f.s.cart = append(f.s.cart, line)
	return line, nil
}

func (f *fakeCart) DeleteLine(_ context.Context, cartID uint) error {
	for i, line := range f.s.cart {
		if line.CartID == cartID {
			f.s.cart = append(f.s.cart[:i], f.s.cart[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeCart) DeleteCart(_ context.Context, userID uint) error {
	if f.s.failOn == "DeleteCart" {
		return errors.New("store down")
	}
	var keep []models.CartItem
	for _, line := range f.s.cart {
		if line.UserID != userID {
			keep = append(keep, line)
		}
	}
	f.s.cart = keep
	return nil
}

type fakeOrders struct{ s *memState }

func (f *fakeOrders) CreateOrder(_ context.Context, order *models.Order, items []models.OrderItem) error {
	if f.s.failOn == "CreateOrder" {
		return errors.New("store down")
	}
	order.OrderID = f.s.nextOrderID
	f.s.nextOrderID++
	f.s.orders = append(f.s.orders, *order)
	for i := range items {
		items[i].OrderID = order.OrderID
		f.s.orderItems = append(f.s.orderItems, items[i])
	}
	return nil
}

func (f *fakeOrders) ListOrders(_ context.Context, userID uint) ([]models.Order, error) {
	var out []models.Order
	for _, o := range f.s.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}

type fakeUsers struct{ s *memState }

func (f *fakeUsers) GetUser(_ context.Context, id uint) (models.User, bool, error) {
	u, ok := f.s.users[id]
	return u, ok, nil
}

func (f *fakeUsers) GetUserByEmail(_ context.Context, email string) (models.User, bool, error) {
	for _, u := range f.s.users {
		if u.Email == email {
			return u, true, nil
		}
	}
	return models.User{}, false, nil
}

func (f *fakeUsers) CreateUser(_ context.Context, user *models.User) error {
	user.UserID = uint(len(f.s.users) + 1)
	f.s.users[user.UserID] = *user
	return nil
}

func (f *fakeUsers) MarkVerified(_ context.Context, userID uint) error {
	u, ok := f.s.users[userID]
	if !ok {
		return errors.New("no such user")
	}
	u.Verified = true
	f.s.users[userID] = u
	return nil
}
