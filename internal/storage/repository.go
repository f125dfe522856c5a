package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"debris-risk-economics/internal/catalog"
)

var (
	// ErrNotConfigured indicates the storage pool was not initialised.
	ErrNotConfigured = errors.New("storage: pool not configured")
)

const (
	listConjunctionsSQL = `SELECT
        id,
        satellite,
        debris,
        tca,
        miss_distance_km,
        collision_probability,
        risk_level,
        relative_velocity_km_s
    FROM conjunction_events
    ORDER BY position, id;`

	listDebrisSQL = `SELECT
        name,
        norad_id,
        size_cm,
        altitude_km,
        inclination_deg,
        annual_conjunctions,
        threatened_satellites,
        economic_risk_score,
        estimated_annual_impact_million
    FROM debris_objects
    ORDER BY position, name;`

	upsertConjunctionSQL = `INSERT INTO conjunction_events (
        id,
        satellite,
        debris,
        tca,
        miss_distance_km,
        collision_probability,
        risk_level,
        relative_velocity_km_s,
        position
    ) VALUES (
        $1,$2,$3,$4,$5,$6,$7,$8,$9
    )
    ON CONFLICT (id) DO UPDATE
    SET
        satellite              = EXCLUDED.satellite,
        debris                 = EXCLUDED.debris,
        tca                    = EXCLUDED.tca,
        miss_distance_km       = EXCLUDED.miss_distance_km,
        collision_probability  = EXCLUDED.collision_probability,
        risk_level             = EXCLUDED.risk_level,
        relative_velocity_km_s = EXCLUDED.relative_velocity_km_s,
        position               = EXCLUDED.position;`

	pruneConjunctionsSQL = `DELETE FROM conjunction_events WHERE NOT (id = ANY($1));`

	pruneDebrisSQL = `DELETE FROM debris_objects WHERE NOT (name = ANY($1));`

	upsertDebrisSQL = `INSERT INTO debris_objects (
        name,
        norad_id,
        size_cm,
        altitude_km,
        inclination_deg,
        annual_conjunctions,
        threatened_satellites,
        economic_risk_score,
        estimated_annual_impact_million,
        position
    ) VALUES (
        $1,$2,$3,$4,$5,$6,$7,$8,$9,$10
    )
    ON CONFLICT (name) DO UPDATE
    SET
        norad_id                        = EXCLUDED.norad_id,
        size_cm                         = EXCLUDED.size_cm,
        altitude_km                     = EXCLUDED.altitude_km,
        inclination_deg                 = EXCLUDED.inclination_deg,
        annual_conjunctions             = EXCLUDED.annual_conjunctions,
        threatened_satellites           = EXCLUDED.threatened_satellites,
        economic_risk_score             = EXCLUDED.economic_risk_score,
        estimated_annual_impact_million = EXCLUDED.estimated_annual_impact_million,
        position                        = EXCLUDED.position;`
)

// CatalogStore reads and seeds the conjunction/debris catalog.
type CatalogStore interface {
	ListConjunctions(ctx context.Context) ([]catalog.ConjunctionEvent, error)
	ListDebris(ctx context.Context) ([]catalog.DebrisObject, error)
	LoadDataset(ctx context.Context, analytics catalog.Analytics) (*catalog.Dataset, error)
	ImportDataset(ctx context.Context, ds *catalog.Dataset) error
}

// Store is the PostgreSQL-backed catalog.
type Store struct {
	pool *pgxpool.Pool
}

// NewStore wires a pgx pool into a Store.
func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// Close releases the underlying pool resources.
func (s *Store) Close() {
	if s == nil || s.pool == nil {
		return
	}
	s.pool.Close()
}

func (s *Store) getPool() (*pgxpool.Pool, error) {
	if s == nil || s.pool == nil {
		return nil, ErrNotConfigured
	}
	return s.pool, nil
}

// ListConjunctions lists conjunction events in catalog order.
func (s *Store) ListConjunctions(ctx context.Context) ([]catalog.ConjunctionEvent, error) {
	pool, err := s.getPool()
	if err != nil {
		return nil, err
	}

	rows, queryErr := pool.Query(ctx, listConjunctionsSQL)
	if queryErr != nil {
		return nil, fmt.Errorf("list conjunctions: %w", queryErr)
	}
	defer rows.Close()

	events := make([]catalog.ConjunctionEvent, 0)
	for rows.Next() {
		ev, scanErr := scanConjunction(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		events = append(events, ev)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return events, nil
}

// ListDebris lists debris objects in catalog order.
func (s *Store) ListDebris(ctx context.Context) ([]catalog.DebrisObject, error) {
	pool, err := s.getPool()
	if err != nil {
		return nil, err
	}

	rows, queryErr := pool.Query(ctx, listDebrisSQL)
	if queryErr != nil {
		return nil, fmt.Errorf("list debris: %w", queryErr)
	}
	defer rows.Close()

	objects := make([]catalog.DebrisObject, 0)
	for rows.Next() {
		var obj catalog.DebrisObject
		if err := rows.Scan(
			&obj.Name,
			&obj.NoradID,
			&obj.SizeCm,
			&obj.AltitudeKm,
			&obj.InclinationDeg,
			&obj.AnnualConjunctions,
			&obj.ThreatenedSatellites,
			&obj.EconomicRiskScore,
			&obj.EstimatedAnnualImpactMillion,
		); err != nil {
			return nil, fmt.Errorf("scan debris: %w", err)
		}
		objects = append(objects, obj)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return objects, nil
}

// LoadDataset reads both tables into a validated dataset. Analytics series
// are not stored in the database and are supplied by the caller.
func (s *Store) LoadDataset(ctx context.Context, analytics catalog.Analytics) (*catalog.Dataset, error) {
	events, err := s.ListConjunctions(ctx)
	if err != nil {
		return nil, err
	}
	objects, err := s.ListDebris(ctx)
	if err != nil {
		return nil, err
	}
	return catalog.NewDataset(events, objects, analytics)
}

// ImportDataset replaces the catalog with ds in one transaction. Rows absent
// from ds are deleted; the rest are upserted with their dataset position.
func (s *Store) ImportDataset(ctx context.Context, ds *catalog.Dataset) error {
	pool, err := s.getPool()
	if err != nil {
		return err
	}

	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin import: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	events := ds.Conjunctions()
	ids := make([]string, 0, len(events))
	for _, ev := range events {
		ids = append(ids, ev.ID)
	}
	if _, err := tx.Exec(ctx, pruneConjunctionsSQL, ids); err != nil {
		return fmt.Errorf("prune conjunctions: %w", err)
	}

	objects := ds.Debris()
	names := make([]string, 0, len(objects))
	for _, obj := range objects {
		names = append(names, obj.Name)
	}
	if _, err := tx.Exec(ctx, pruneDebrisSQL, names); err != nil {
		return fmt.Errorf("prune debris: %w", err)
	}

	for i, ev := range events {
		if _, execErr := tx.Exec(ctx, upsertConjunctionSQL,
			ev.ID,
			ev.Satellite,
			ev.Debris,
			ev.TCA,
			ev.MissDistanceKm,
			ev.CollisionProbability,
			string(ev.RiskLevel),
			ev.RelativeVelocityKmS,
			i,
		); execErr != nil {
			return fmt.Errorf("upsert conjunction %s: %w", ev.ID, execErr)
		}
	}

	for i, obj := range objects {
		if _, execErr := tx.Exec(ctx, upsertDebrisSQL,
			obj.Name,
			obj.NoradID,
			obj.SizeCm,
			obj.AltitudeKm,
			obj.InclinationDeg,
			obj.AnnualConjunctions,
			obj.ThreatenedSatellites,
			obj.EconomicRiskScore,
			obj.EstimatedAnnualImpactMillion,
			i,
		); execErr != nil {
			return fmt.Errorf("upsert debris %s: %w", obj.Name, execErr)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit import: %w", err)
	}
	return nil
}

func scanConjunction(rows pgx.Rows) (catalog.ConjunctionEvent, error) {
	var (
		ev    catalog.ConjunctionEvent
		level string
	)
	if err := rows.Scan(
		&ev.ID,
		&ev.Satellite,
		&ev.Debris,
		&ev.TCA,
		&ev.MissDistanceKm,
		&ev.CollisionProbability,
		&level,
		&ev.RelativeVelocityKmS,
	); err != nil {
		return catalog.ConjunctionEvent{}, fmt.Errorf("scan conjunction: %w", err)
	}
	ev.RiskLevel = catalog.RiskLevel(level)
	ev.TCA = ev.TCA.UTC()
	return ev, nil
}

var _ CatalogStore = (*Store)(nil)
