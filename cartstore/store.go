package cartstore

import (
	"context"
	"fmt"
	"log"
	"math"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/i-iangurazov/roksosh/models"
)

type EventKind string

const (
	EventItemAdded       EventKind = "item_added"
	EventItemRemoved     EventKind = "item_removed"
	EventAllItemsRemoved EventKind = "all_items_removed"
)

// Event is the store's notification to the presentation layer (rendered as a
// toast there; the store does not care).
type Event struct {
	Kind       EventKind
	CartItemID string
}

// Selection optionally pins the variant axes on AddItem. Empty fields fall
// back to the product's first listed color/size, in catalog order.
type Selection struct {
	ColorID string `json:"colorId,omitempty"`
	SizeID  string `json:"sizeId,omitempty"`
}

// Store owns the cart state. All mutations go through its methods; reads
// return copies. The snapshot is loaded exactly once at construction, after
// which state flows one way: memory -> storage. Persistence is best-effort —
// a failing storage never fails an operation.
type Store struct {
	mu      sync.Mutex
	items   []models.CartLine
	storage SnapshotStorage
	notify  func(Event)
}

type Option func(*Store)

// WithNotifier registers a callback for cart events. Called outside the
// store's lock.
func WithNotifier(fn func(Event)) Option {
	return func(s *Store) { s.notify = fn }
}

// NewStore rehydrates the cart from storage, migrating old snapshots.
func NewStore(storage SnapshotStorage, opts ...Option) *Store {
	s := &Store{storage: storage}
	for _, opt := range opts {
		opt(s)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	snap, found, err := storage.Load(ctx)
	if err != nil {
		log.Printf("[cartstore] load failed, starting with an empty cart: %v", err)
		return s
	}
	if found {
		snap = migrate(snap)
		s.items = snap.Items
	}
	return s
}

// AddItem merges the product into the cart: an existing line for the same
// variant key gets its count bumped, otherwise a new line starts at 1. There
// is no upper bound on count here — any cap is presentation policy.
func (s *Store) AddItem(product models.Product, sel *Selection) {
	colorID, sizeID := resolveSelection(product, sel)
	key := Resolve(product.ID, colorID, sizeID)

	s.mu.Lock()
	if line := s.findLocked(key); line != nil {
		line.Count++
	} else {
		s.items = append(s.items, models.CartLine{
			Product:         product,
			CartItemID:      key,
			Count:           1,
			SelectedColorID: colorID,
			SelectedSizeID:  sizeID,
		})
	}
	s.persistLocked()
	s.mu.Unlock()

	s.emit(Event{Kind: EventItemAdded, CartItemID: key})
}

// RemoveItem decrements the referenced line, deleting it when the count hits
// zero. An unknown id is a silent no-op.
func (s *Store) RemoveItem(cartItemID string) {
	s.mu.Lock()
	idx := s.indexLocked(cartItemID)
	if idx < 0 {
		s.mu.Unlock()
		return
	}
	if s.items[idx].Count > 1 {
		s.items[idx].Count--
	} else {
		s.items = append(s.items[:idx], s.items[idx+1:]...)
	}
	s.persistLocked()
	s.mu.Unlock()

	s.emit(Event{Kind: EventItemRemoved, CartItemID: cartItemID})
}

// RemoveAll clears the cart.
func (s *Store) RemoveAll() {
	s.mu.Lock()
	s.items = nil
	s.persistLocked()
	s.mu.Unlock()

	s.emit(Event{Kind: EventAllItemsRemoved})
}

// TotalItemCount sums count across all lines.
func (s *Store) TotalItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0
	for i := range s.items {
		total += s.items[i].Count
	}
	return total
}

// TotalPrice sums price*count across all lines. A non-finite price is a
// data-integrity error and is reported instead of silently becoming 0.
func (s *Store) TotalPrice() (decimal.Decimal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := decimal.Zero
	for i := range s.items {
		line := &s.items[i]
		if math.IsNaN(line.Price) || math.IsInf(line.Price, 0) {
			return decimal.Zero, fmt.Errorf("cart line %s has invalid price %v", line.CartItemID, line.Price)
		}
		price := decimal.NewFromFloat(line.Price)
		total = total.Add(price.Mul(decimal.NewFromInt(int64(line.Count))))
	}
	return total, nil
}

// Items returns a copy of the cart lines in insertion order.
func (s *Store) Items() []models.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.CartLine, len(s.items))
	copy(out, s.items)
	return out
}

// OrderItems projects the cart into the backend order submission shape.
func (s *Store) OrderItems() []models.OrderItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.OrderItem, 0, len(s.items))
	for i := range s.items {
		line := &s.items[i]
		out = append(out, models.OrderItem{
			ID:      line.Product.ID,
			Count:   line.Count,
			ColorID: line.SelectedColorID,
			SizeID:  line.SelectedSizeID,
		})
	}
	return out
}

func resolveSelection(product models.Product, sel *Selection) (colorID, sizeID string) {
	if sel != nil {
		colorID, sizeID = sel.ColorID, sel.SizeID
	}
	if colorID == "" && len(product.Colors) > 0 {
		colorID = product.Colors[0].ID
	}
	if sizeID == "" && len(product.Sizes) > 0 {
		sizeID = product.Sizes[0].ID
	}
	return colorID, sizeID
}

func (s *Store) findLocked(cartItemID string) *models.CartLine {
	if idx := s.indexLocked(cartItemID); idx >= 0 {
		return &s.items[idx]
	}
	return nil
}

func (s *Store) indexLocked(cartItemID string) int {
	for i := range s.items {
		if s.items[i].CartItemID == cartItemID {
			return i
		}
	}
	return -1
}

func (s *Store) persistLocked() {
	snap := models.CartSnapshot{Version: SchemaVersion}
	snap.Items = make([]models.CartLine, len(s.items))
	copy(snap.Items, s.items)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.storage.Save(ctx, snap); err != nil {
		log.Printf("[cartstore] persist failed, in-memory state stays authoritative: %v", err)
	}
}

func (s *Store) emit(e Event) {
	if s.notify != nil {
		s.notify(e)
	}
}
