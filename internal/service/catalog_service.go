package service

import (
	"context"
	"fmt"
	"log"

	"golang.org/x/sync/errgroup"

	"github.com/mfadvisor/Mutual-Fund-Advisor-Backend/internal/amfi"
	"github.com/mfadvisor/Mutual-Fund-Advisor-Backend/internal/apperrors"
	"github.com/mfadvisor/Mutual-Fund-Advisor-Backend/internal/catalog"
	"github.com/mfadvisor/Mutual-Fund-Advisor-Backend/internal/model"
	"github.com/mfadvisor/Mutual-Fund-Advisor-Backend/internal/repository"
)

// NAVFetcher fetches current NAVs keyed by scheme code. Satisfied by
// amfi.Client; nil disables the overlay.
type NAVFetcher interface {
	FetchNAVs(ctx context.Context) (map[string]amfi.NAV, error)
}

// CatalogService builds catalog snapshots from the fund table and publishes
// them. Refreshes are whole-snapshot: either a complete new catalog is
// swapped in or the previous one stays, never a partial update.
type CatalogService struct {
	fundRepo   *repository.FundRepository
	navFetcher NAVFetcher
	store      *catalog.Store
}

// NewCatalogService creates a CatalogService. navFetcher may be nil to
// disable the NAV overlay.
func NewCatalogService(fundRepo *repository.FundRepository, navFetcher NAVFetcher) *CatalogService {
	return &CatalogService{
		fundRepo:   fundRepo,
		navFetcher: navFetcher,
		store:      catalog.NewStore(catalog.New(nil)),
	}
}

// Store returns the snapshot store readers consume.
func (s *CatalogService) Store() *catalog.Store {
	return s.store
}

// Refresh builds a complete new catalog snapshot and publishes it
// atomically. The fund rows and the NAV feed are loaded concurrently; a
// failed NAV fetch only skips the overlay, it never fails the refresh.
func (s *CatalogService) Refresh(ctx context.Context) error {
	var funds []model.FundRecord
	var navs map[string]amfi.NAV

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		funds, err = s.fundRepo.GetAllFunds()
		return err
	})
	if s.navFetcher != nil {
		g.Go(func() error {
			var err error
			navs, err = s.navFetcher.FetchNAVs(gctx)
			if err != nil {
				// Feed outages must not block catalog loads.
				log.Printf("catalog: NAV overlay skipped: %v", err)
				navs = nil
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrFailedToLoadCatalog, err)
	}

	valid := funds[:0:0]
	for _, f := range funds {
		if err := validateFund(f); err != nil {
			log.Printf("catalog: skipping fund %s: %v", f.ID, err)
			continue
		}
		if nav, ok := navs[f.SchemeCode]; ok && f.SchemeCode != "" {
			f.NAV = nav.NAV
		}
		valid = append(valid, f)
	}
	if len(valid) == 0 {
		return apperrors.ErrEmptyCatalog
	}

	s.store.Swap(catalog.New(valid))
	log.Printf("catalog: published snapshot with %d funds", len(valid))
	return nil
}

// validateFund applies the catalog's sanity ranges. Rows outside them are
// treated as feed corruption and skipped rather than loaded.
func validateFund(f model.FundRecord) error {
	if f.Name == "" {
		return fmt.Errorf("missing name")
	}
	if f.AUMCr <= 0 || f.AUMCr >= 100_000 {
		return fmt.Errorf("aum %.1f out of range", f.AUMCr)
	}
	if f.ExpenseRatio <= 0 || f.ExpenseRatio >= 5 {
		return fmt.Errorf("expense ratio %.2f out of range", f.ExpenseRatio)
	}
	if f.SIP5YrReturn <= -50 || f.SIP5YrReturn >= 50 {
		return fmt.Errorf("5yr return %.1f out of range", f.SIP5YrReturn)
	}
	return nil
}
