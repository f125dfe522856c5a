package app

import (
	"context"
	"fmt"

	"debris-risk-economics/internal/catalog"
	"debris-risk-economics/internal/config"
	"debris-risk-economics/internal/storage"
)

// Dataset returns the dataset for the configured source, loading it on first use.
func (a *App) Dataset(ctx context.Context) (*catalog.Dataset, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.dataset != nil {
		return a.dataset, nil
	}

	ds, err := a.loadDataset(ctx)
	if err != nil {
		return nil, err
	}

	a.Logger.Debug().
		Str("source", a.Config.Dataset.Source).
		Int("conjunctions", len(ds.Conjunctions())).
		Int("debris", len(ds.Debris())).
		Msg("dataset loaded")

	a.dataset = ds
	return ds, nil
}

func (a *App) loadDataset(ctx context.Context) (*catalog.Dataset, error) {
	switch a.Config.Dataset.Source {
	case config.SourceFile:
		return catalog.LoadFile(a.Config.Dataset.Path)
	case config.SourcePostgres:
		return a.loadFromPostgres(ctx)
	default:
		return catalog.Builtin()
	}
}

func (a *App) loadFromPostgres(ctx context.Context) (*catalog.Dataset, error) {
	builtin, err := catalog.Builtin()
	if err != nil {
		return nil, err
	}

	store, closeStore, err := a.openStore(ctx)
	if err != nil {
		return nil, err
	}
	defer closeStore()

	ctx, cancel := context.WithTimeout(ctx, a.Config.Database.QueryTimeout)
	defer cancel()

	ds, err := store.LoadDataset(ctx, builtin.Analytics())
	if err != nil {
		return nil, fmt.Errorf("load dataset from postgres: %w", err)
	}
	return ds, nil
}

func (a *App) openStore(ctx context.Context) (*storage.Store, func(), error) {
	if a.Config.Database.DSN == "" {
		return nil, nil, storage.ErrNotConfigured
	}

	pool, err := storage.NewPool(ctx, a.Config.Database)
	if err != nil {
		return nil, nil, err
	}

	store := storage.NewStore(pool)
	return store, store.Close, nil
}

// ImportCatalog seeds the PostgreSQL catalog from a dataset file or the
// built-in dataset.
func (a *App) ImportCatalog(ctx context.Context, opts ImportOptions) error {
	var (
		ds  *catalog.Dataset
		err error
	)
	if opts.From != "" {
		ds, err = catalog.LoadFile(opts.From)
	} else {
		ds, err = catalog.Builtin()
	}
	if err != nil {
		return err
	}

	store, closeStore, err := a.openStore(ctx)
	if err != nil {
		return err
	}
	defer closeStore()

	if opts.Migrate {
		if err := store.Migrate(ctx); err != nil {
			return err
		}
	}

	if err := store.ImportDataset(ctx, ds); err != nil {
		return err
	}

	a.Logger.Info().
		Int("conjunctions", len(ds.Conjunctions())).
		Int("debris", len(ds.Debris())).
		Msg("catalog imported")
	return nil
}
