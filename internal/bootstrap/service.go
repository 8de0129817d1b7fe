// Package bootstrap loads the full CRM snapshot, creating the schema and the
// sample data the first time it runs against an empty store.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/qawafel/crm-backend/internal/activities"
	"github.com/qawafel/crm-backend/internal/deals"
	"github.com/qawafel/crm-backend/internal/leads"
	"github.com/qawafel/crm-backend/internal/profile"
	"github.com/qawafel/crm-backend/internal/proposals"
	"github.com/qawafel/crm-backend/internal/retailers"
	"github.com/qawafel/crm-backend/internal/tickets"
	"github.com/qawafel/crm-backend/internal/vendors"
	"github.com/qawafel/crm-backend/pkg/db"
	pkgerrors "github.com/qawafel/crm-backend/pkg/errors"
	"github.com/qawafel/crm-backend/pkg/logger"
	"github.com/qawafel/crm-backend/pkg/metrics"
	"github.com/qawafel/crm-backend/pkg/migrate"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// Service is the init loader.
type Service interface {
	// Initialize ensures the schema, seeds an empty store once and returns
	// the snapshot.
	Initialize(ctx context.Context) (Snapshot, error)
	// Load returns the snapshot without touching the schema or seed.
	Load(ctx context.Context) (Snapshot, error)
}

type ServiceParams struct {
	Client  *db.Client
	Logger  *logger.Logger
	Metrics *metrics.BootstrapMetrics
	Clock   func() time.Time
	// EnsureSchema defaults to migrate.EnsureSchema.
	EnsureSchema func(ctx context.Context, client *db.Client) error
	// Seed defaults to the built-in sample data.
	Seed func(ctx context.Context, tx *gorm.DB, now time.Time) error
}

type service struct {
	client       *db.Client
	logg         *logger.Logger
	metrics      *metrics.BootstrapMetrics
	now          func() time.Time
	ensureSchema func(ctx context.Context, client *db.Client) error
	seed         func(ctx context.Context, tx *gorm.DB, now time.Time) error

	mu          sync.Mutex
	schemaReady bool
}

func NewService(params ServiceParams) (Service, error) {
	if params.Client == nil {
		return nil, errors.New("db client required")
	}
	if params.Logger == nil {
		return nil, errors.New("logger required")
	}
	s := &service{
		client:       params.Client,
		logg:         params.Logger,
		metrics:      params.Metrics,
		now:          params.Clock,
		ensureSchema: params.EnsureSchema,
		seed:         params.Seed,
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.ensureSchema == nil {
		s.ensureSchema = migrate.EnsureSchema
	}
	if s.seed == nil {
		s.seed = seed
	}
	return s, nil
}

func (s *service) Initialize(ctx context.Context) (Snapshot, error) {
	if err := s.prepare(ctx); err != nil {
		s.logg.Error(s.logg.WithFields(ctx, pkgerrors.Dump(err).Fields()), "init.prepare_failed", err)
		return Snapshot{}, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "initialize store")
	}
	return s.Load(ctx)
}

// prepare runs schema creation and the one-time seed. Callers in this process
// are serialized; other processes are fenced by the profile primary key.
func (s *service) prepare(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.schemaReady {
		if err := s.ensureSchema(ctx, s.client); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
		s.schemaReady = true
	}

	profiles := profile.NewRepository(s.client.DB())
	seeded, err := profiles.Exists(ctx)
	if err != nil {
		return fmt.Errorf("check profile: %w", err)
	}
	if seeded {
		return nil
	}

	err = s.client.WithTx(ctx, func(tx *gorm.DB) error {
		return s.seed(ctx, tx, s.now())
	})
	if err != nil {
		// another process may have seeded between our check and insert
		if exists, checkErr := profiles.Exists(ctx); checkErr == nil && exists {
			s.logg.Info(ctx, "init.seed_lost_race")
			return nil
		}
		s.metrics.IncSeed(err)
		return fmt.Errorf("seed: %w", err)
	}
	s.metrics.IncSeed(nil)
	s.logg.Info(ctx, "init.seeded")
	return nil
}

func (s *service) Load(ctx context.Context) (Snapshot, error) {
	start := time.Now()
	snap, err := s.load(ctx)
	s.metrics.ObserveSnapshot(time.Since(start), err)
	if err != nil {
		s.logg.Error(s.logg.WithFields(ctx, pkgerrors.Dump(err).Fields()), "init.load_failed", err)
		return Snapshot{}, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load snapshot")
	}
	return snap, nil
}

func (s *service) load(ctx context.Context) (Snapshot, error) {
	conn := s.client.DB()
	var snap Snapshot

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		snap.Retailers, err = retailers.NewRepository(conn).List(gctx)
		return wrapList("retailers", err)
	})
	g.Go(func() (err error) {
		snap.Vendors, err = vendors.NewRepository(conn).List(gctx)
		return wrapList("vendors", err)
	})
	g.Go(func() (err error) {
		snap.Tickets, err = tickets.NewRepository(conn).List(gctx)
		return wrapList("tickets", err)
	})
	g.Go(func() (err error) {
		snap.Proposals, err = proposals.NewRepository(conn).List(gctx)
		return wrapList("proposals", err)
	})
	g.Go(func() (err error) {
		snap.Leads, err = leads.NewRepository(conn).List(gctx)
		return wrapList("leads", err)
	})
	g.Go(func() (err error) {
		snap.Deals, err = deals.NewRepository(conn).List(gctx)
		return wrapList("deals", err)
	})
	g.Go(func() (err error) {
		snap.Activities, err = activities.NewRepository(conn).List(gctx)
		return wrapList("activities", err)
	})
	g.Go(func() (err error) {
		snap.UserProfile, err = profile.NewRepository(conn).Get(gctx)
		return wrapList("user_profile", err)
	})
	if err := g.Wait(); err != nil {
		return Snapshot{}, err
	}
	return snap, nil
}

func wrapList(collection string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("list %s: %w", collection, err)
}
