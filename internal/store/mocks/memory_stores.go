// internal/store/mocks/memory_stores.go

// Package mocks provides in-memory repository implementations for tests.
package mocks

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/drivegear/autoparts-backend/internal/models"
	"github.com/drivegear/autoparts-backend/internal/store"
)

type MemoryUserStore struct {
	mtx   sync.Mutex
	users map[uuid.UUID]models.User
}

func NewMemoryUserStore() *MemoryUserStore {
	return &MemoryUserStore{users: make(map[uuid.UUID]models.User)}
}

func (s *MemoryUserStore) Create(user *models.User) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	user.CreatedAt = time.Now()
	s.users[user.ID] = *user
	return nil
}

func (s *MemoryUserStore) FindByEmail(email string) (*models.User, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	for _, user := range s.users {
		if user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *MemoryUserStore) FindByID(id uuid.UUID) (*models.User, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	user, ok := s.users[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	u := user
	return &u, nil
}

func (s *MemoryUserStore) Update(user *models.User) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	if _, ok := s.users[user.ID]; !ok {
		return store.ErrNotFound
	}
	s.users[user.ID] = *user
	return nil
}

func (s *MemoryUserStore) Delete(id uuid.UUID) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	delete(s.users, id)
	return nil
}

type MemoryProductStore struct {
	Products []models.Product
}

func (s *MemoryProductStore) All() ([]models.Product, error) {
	out := make([]models.Product, len(s.Products))
	copy(out, s.Products)
	return out, nil
}

func (s *MemoryProductStore) FindByID(id uuid.UUID) (*models.Product, error) {
	for _, p := range s.Products {
		if p.ID == id {
			product := p
			return &product, nil
		}
	}
	return nil, store.ErrNotFound
}

type MemoryOrderStore struct {
	mtx    sync.Mutex
	Orders []models.Order
}

func (s *MemoryOrderStore) Create(order *models.Order) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	s.Orders = append(s.Orders, *order)
	return nil
}

func (s *MemoryOrderStore) FindByUser(userID uuid.UUID) ([]models.Order, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	var out []models.Order
	for _, order := range s.Orders {
		if order.UserID == userID {
			out = append(out, order)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].OrderDate.After(out[j].OrderDate)
	})
	return out, nil
}

func (s *MemoryOrderStore) FindByID(id uuid.UUID) (*models.Order, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	for _, order := range s.Orders {
		if order.ID == id {
			o := order
			return &o, nil
		}
	}
	return nil, store.ErrNotFound
}

type MemoryCartStore struct {
	mtx   sync.Mutex
	carts map[uuid.UUID]*models.Cart

	// Products, when set, hydrates each item's Product on reads the way the
	// gorm store's preload does.
	Products *MemoryProductStore
}

func NewMemoryCartStore() *MemoryCartStore {
	return &MemoryCartStore{carts: make(map[uuid.UUID]*models.Cart)}
}

func (s *MemoryCartStore) Create(cart *models.Cart) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	if cart.ID == uuid.Nil {
		cart.ID = uuid.New()
	}
	stored := *cart
	s.carts[cart.ID] = &stored
	return nil
}

func (s *MemoryCartStore) FindByID(id uuid.UUID) (*models.Cart, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	cart, ok := s.carts[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	out := *cart
	out.Items = make([]models.CartItem, len(cart.Items))
	copy(out.Items, cart.Items)
	if s.Products != nil {
		for i := range out.Items {
			if product, err := s.Products.FindByID(out.Items[i].ProductID); err == nil {
				out.Items[i].Product = *product
			}
		}
	}
	return &out, nil
}

func (s *MemoryCartStore) AddItem(cartID uuid.UUID, item *models.CartItem) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	cart, ok := s.carts[cartID]
	if !ok {
		return store.ErrNotFound
	}
	for i := range cart.Items {
		if cart.Items[i].ProductID == item.ProductID {
			cart.Items[i].Quantity += item.Quantity
			return nil
		}
	}
	item.CartID = cartID
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	cart.Items = append(cart.Items, *item)
	return nil
}

func (s *MemoryCartStore) UpdateItemQuantity(cartID, productID uuid.UUID, quantity int) error {
	if quantity <= 0 {
		return s.RemoveItem(cartID, productID)
	}
	s.mtx.Lock()
	defer s.mtx.Unlock()
	cart, ok := s.carts[cartID]
	if !ok {
		return store.ErrNotFound
	}
	for i := range cart.Items {
		if cart.Items[i].ProductID == productID {
			cart.Items[i].Quantity = quantity
			return nil
		}
	}
	return store.ErrNotFound
}

func (s *MemoryCartStore) RemoveItem(cartID, productID uuid.UUID) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	cart, ok := s.carts[cartID]
	if !ok {
		return store.ErrNotFound
	}
	filtered := cart.Items[:0]
	for _, item := range cart.Items {
		if item.ProductID != productID {
			filtered = append(filtered, item)
		}
	}
	cart.Items = filtered
	return nil
}

func (s *MemoryCartStore) Clear(cartID uuid.UUID) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	cart, ok := s.carts[cartID]
	if !ok {
		return store.ErrNotFound
	}
	cart.Items = nil
	return nil
}

type MemoryWishlistStore struct {
	mtx   sync.Mutex
	items map[uuid.UUID][]models.WishlistItem
}

func NewMemoryWishlistStore() *MemoryWishlistStore {
	return &MemoryWishlistStore{items: make(map[uuid.UUID][]models.WishlistItem)}
}

func (s *MemoryWishlistStore) List(userID uuid.UUID) ([]models.WishlistItem, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	out := make([]models.WishlistItem, len(s.items[userID]))
	copy(out, s.items[userID])
	return out, nil
}

func (s *MemoryWishlistStore) Add(userID, productID uuid.UUID) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	for _, item := range s.items[userID] {
		if item.ProductID == productID {
			return nil
		}
	}
	s.items[userID] = append(s.items[userID], models.WishlistItem{
		UserID:    userID,
		ProductID: productID,
	})
	return nil
}

func (s *MemoryWishlistStore) Remove(userID, productID uuid.UUID) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	filtered := s.items[userID][:0]
	for _, item := range s.items[userID] {
		if item.ProductID != productID {
			filtered = append(filtered, item)
		}
	}
	s.items[userID] = filtered
	return nil
}

func (s *MemoryWishlistStore) Contains(userID, productID uuid.UUID) (bool, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	for _, item := range s.items[userID] {
		if item.ProductID == productID {
			return true, nil
		}
	}
	return false, nil
}

type MemoryContactStore struct {
	mtx      sync.Mutex
	Messages []models.ContactMessage
}

func (s *MemoryContactStore) Create(message *models.ContactMessage) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	if message.ID == uuid.Nil {
		message.ID = uuid.New()
	}
	s.Messages = append(s.Messages, *message)
	return nil
}
