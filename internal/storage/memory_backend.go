package storage

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/grachmannico95/wallet-import/internal/domain"
)

var ErrUnknownReference = errors.New("unknown category or wallet")

// Transaction is a created transaction as held by MemoryBackend.
type Transaction struct {
	ID        string
	UserID    string
	Candidate domain.Candidate
	CreatedAt time.Time
}

// MemoryBackend stands in for the hosted backend: it owns categories, wallets,
// transactions and notifications per user.
type MemoryBackend struct {
	categories    map[string][]domain.Category
	wallets       map[string][]domain.Wallet
	transactions  map[string][]Transaction
	notifications map[string][]domain.Notification
	mu            sync.RWMutex
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{
		categories:    make(map[string][]domain.Category),
		wallets:       make(map[string][]domain.Wallet),
		transactions:  make(map[string][]Transaction),
		notifications: make(map[string][]domain.Notification),
	}
}

func (b *MemoryBackend) AddCategory(userID, name string, kind domain.Kind) domain.Category {
	b.mu.Lock()
	defer b.mu.Unlock()

	c := domain.Category{ID: uuid.New().String(), Name: name, Kind: kind}
	b.categories[userID] = append(b.categories[userID], c)
	return c
}

func (b *MemoryBackend) AddWallet(userID, name string) domain.Wallet {
	b.mu.Lock()
	defer b.mu.Unlock()

	w := domain.Wallet{ID: uuid.New().String(), Name: name}
	b.wallets[userID] = append(b.wallets[userID], w)
	return w
}

func (b *MemoryBackend) FetchCategories(ctx context.Context, userID string) ([]domain.Category, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return append([]domain.Category{}, b.categories[userID]...), nil
}

func (b *MemoryBackend) FetchWallets(ctx context.Context, userID string) ([]domain.Wallet, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return append([]domain.Wallet{}, b.wallets[userID]...), nil
}

// CreateTransaction rejects candidates whose category or wallet the user does
// not own, the way a foreign key would.
func (b *MemoryBackend) CreateTransaction(ctx context.Context, userID string, candidate domain.Candidate) (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.ownsCategory(userID, candidate.CategoryID) || !b.ownsWallet(userID, candidate.WalletID) {
		return "", ErrUnknownReference
	}

	tx := Transaction{
		ID:        uuid.New().String(),
		UserID:    userID,
		Candidate: candidate,
		CreatedAt: time.Now(),
	}
	b.transactions[userID] = append(b.transactions[userID], tx)

	return tx.ID, nil
}

func (b *MemoryBackend) Transactions(userID string) []Transaction {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return append([]Transaction{}, b.transactions[userID]...)
}

func (b *MemoryBackend) AddNotification(ctx context.Context, n domain.Notification) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if n.ID == "" {
		n.ID = uuid.New().String()
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now()
	}
	b.notifications[n.UserID] = append(b.notifications[n.UserID], n)

	return nil
}

// ListNotifications returns the newest notifications first.
func (b *MemoryBackend) ListNotifications(ctx context.Context, userID string) ([]domain.Notification, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := append([]domain.Notification{}, b.notifications[userID]...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (b *MemoryBackend) ownsCategory(userID, id string) bool {
	for _, c := range b.categories[userID] {
		if c.ID == id {
			return true
		}
	}
	return false
}

func (b *MemoryBackend) ownsWallet(userID, id string) bool {
	for _, w := range b.wallets[userID] {
		if w.ID == id {
			return true
		}
	}
	return false
}
