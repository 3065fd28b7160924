package importer

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/grachmannico95/wallet-import/internal/domain"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"golang.org/x/sync/errgroup"
)

type CategoryRef struct {
	ID   string
	Name string
	Kind domain.Kind
}

// References is a read-only snapshot of the user's categories and wallets,
// indexed by lowercased, trimmed name. It is not refreshed while a session lives.
type References struct {
	categoryByName map[string]CategoryRef
	walletByName   map[string]string
	categoryNames  []string
	walletNames    []string
}

func NewReferences(categories []domain.Category, wallets []domain.Wallet) *References {
	refs := &References{
		categoryByName: make(map[string]CategoryRef, len(categories)),
		walletByName:   make(map[string]string, len(wallets)),
	}

	for _, c := range categories {
		key := normalizeName(c.Name)
		if key == "" {
			continue
		}
		if _, dup := refs.categoryByName[key]; !dup {
			refs.categoryNames = append(refs.categoryNames, c.Name)
		}
		refs.categoryByName[key] = CategoryRef{ID: c.ID, Name: c.Name, Kind: c.Kind}
	}

	for _, w := range wallets {
		key := normalizeName(w.Name)
		if key == "" {
			continue
		}
		if _, dup := refs.walletByName[key]; !dup {
			refs.walletNames = append(refs.walletNames, w.Name)
		}
		refs.walletByName[key] = w.ID
	}

	return refs
}

// LoadReferences fetches categories and wallets in parallel. Either failure
// fails the whole load; there is no retry.
func LoadReferences(ctx context.Context, source domain.ReferenceSource, userID string) (*References, error) {
	var (
		categories []domain.Category
		wallets    []domain.Wallet
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		categories, err = source.FetchCategories(gctx, userID)
		if err != nil {
			return fmt.Errorf("fetch categories: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		wallets, err = source.FetchWallets(gctx, userID)
		if err != nil {
			return fmt.Errorf("fetch wallets: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrReferenceLoad, err)
	}

	return NewReferences(categories, wallets), nil
}

func (r *References) Category(name string) (CategoryRef, bool) {
	c, ok := r.categoryByName[normalizeName(name)]
	return c, ok
}

func (r *References) Wallet(name string) (string, bool) {
	id, ok := r.walletByName[normalizeName(name)]
	return id, ok
}

func (r *References) CategoryCount() int { return len(r.categoryByName) }

func (r *References) WalletCount() int { return len(r.walletByName) }

// SuggestCategory returns the closest known category name, or "" when nothing is close.
func (r *References) SuggestCategory(name string) string {
	return suggest(name, r.categoryNames)
}

// SuggestWallet returns the closest known wallet name, or "" when nothing is close.
func (r *References) SuggestWallet(name string) string {
	return suggest(name, r.walletNames)
}

func suggest(name string, known []string) string {
	name = strings.TrimSpace(name)
	if name == "" || len(known) == 0 {
		return ""
	}

	ranks := fuzzy.RankFindNormalizedFold(name, known)
	if len(ranks) > 0 {
		sort.Sort(ranks)
		return ranks[0].Target
	}

	best, bestDistance := "", -1
	for _, k := range known {
		d := fuzzy.LevenshteinDistance(strings.ToLower(name), strings.ToLower(k))
		if bestDistance < 0 || d < bestDistance {
			best, bestDistance = k, d
		}
	}

	limit := len([]rune(name)) / 3
	if limit < 2 {
		limit = 2
	}
	if bestDistance > limit {
		return ""
	}
	return best
}

func normalizeName(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
