package catalog

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrNotFound is returned when a lookup target does not exist in the dataset.
	ErrNotFound = errors.New("catalog: not found")
	// ErrInvalidDataset wraps every validation failure raised while loading.
	ErrInvalidDataset = errors.New("catalog: invalid dataset")
)

// Lookup resolves conjunction events by identifier.
type Lookup interface {
	Conjunction(id string) (ConjunctionEvent, error)
}

// Dataset is an immutable snapshot of conjunction events, debris objects and
// analytics series. Accessors hand out copies.
type Dataset struct {
	conjunctions []ConjunctionEvent
	debris       []DebrisObject
	analytics    Analytics

	conjunctionIdx map[string]int
	debrisIdx      map[string]int
}

// NewDataset validates the inputs and builds a dataset that owns copies of them.
func NewDataset(conjunctions []ConjunctionEvent, debris []DebrisObject, analytics Analytics) (*Dataset, error) {
	ds := &Dataset{
		conjunctions:   append([]ConjunctionEvent(nil), conjunctions...),
		debris:         append([]DebrisObject(nil), debris...),
		analytics:      analytics.clone(),
		conjunctionIdx: make(map[string]int, len(conjunctions)),
		debrisIdx:      make(map[string]int, len(debris)),
	}

	for i, ev := range ds.conjunctions {
		if err := validateConjunction(ev); err != nil {
			return nil, err
		}
		if _, dup := ds.conjunctionIdx[ev.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate conjunction id %q", ErrInvalidDataset, ev.ID)
		}
		ds.conjunctionIdx[ev.ID] = i
	}

	for i, obj := range ds.debris {
		if err := validateDebris(obj); err != nil {
			return nil, err
		}
		if _, dup := ds.debrisIdx[obj.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate debris name %q", ErrInvalidDataset, obj.Name)
		}
		ds.debrisIdx[obj.Name] = i
	}

	if err := validateAnalytics(ds.analytics); err != nil {
		return nil, err
	}

	return ds, nil
}

// Conjunctions returns all events in load order.
func (d *Dataset) Conjunctions() []ConjunctionEvent {
	return append([]ConjunctionEvent(nil), d.conjunctions...)
}

// Debris returns all debris objects in load order.
func (d *Dataset) Debris() []DebrisObject {
	return append([]DebrisObject(nil), d.debris...)
}

// Analytics returns the static analytics series.
func (d *Dataset) Analytics() Analytics {
	return d.analytics.clone()
}

// Conjunction looks up an event by identifier.
func (d *Dataset) Conjunction(id string) (ConjunctionEvent, error) {
	idx, ok := d.conjunctionIdx[id]
	if !ok {
		return ConjunctionEvent{}, fmt.Errorf("conjunction %q: %w", id, ErrNotFound)
	}
	return d.conjunctions[idx], nil
}

// DebrisByName looks up a debris object by its catalog name.
func (d *Dataset) DebrisByName(name string) (DebrisObject, error) {
	idx, ok := d.debrisIdx[name]
	if !ok {
		return DebrisObject{}, fmt.Errorf("debris %q: %w", name, ErrNotFound)
	}
	return d.debris[idx], nil
}

// WithAnalytics returns a copy of d carrying a different analytics block.
func (d *Dataset) WithAnalytics(a Analytics) *Dataset {
	out := *d
	out.analytics = a.clone()
	return &out
}

func validateConjunction(ev ConjunctionEvent) error {
	switch {
	case ev.ID == "":
		return fmt.Errorf("%w: conjunction without id", ErrInvalidDataset)
	case !ev.RiskLevel.Valid():
		return fmt.Errorf("%w: conjunction %s has unknown risk level %q", ErrInvalidDataset, ev.ID, ev.RiskLevel)
	case !finite(ev.CollisionProbability, ev.MissDistanceKm, ev.RelativeVelocityKmS):
		return fmt.Errorf("%w: conjunction %s has a non-finite value", ErrInvalidDataset, ev.ID)
	case ev.CollisionProbability < 0 || ev.CollisionProbability > 1:
		return fmt.Errorf("%w: conjunction %s probability %g outside [0,1]", ErrInvalidDataset, ev.ID, ev.CollisionProbability)
	case ev.MissDistanceKm < 0:
		return fmt.Errorf("%w: conjunction %s has negative miss distance", ErrInvalidDataset, ev.ID)
	case ev.RelativeVelocityKmS < 0:
		return fmt.Errorf("%w: conjunction %s has negative relative velocity", ErrInvalidDataset, ev.ID)
	}
	return nil
}

func validateDebris(obj DebrisObject) error {
	switch {
	case obj.Name == "":
		return fmt.Errorf("%w: debris object without name", ErrInvalidDataset)
	case !finite(obj.SizeCm, obj.AltitudeKm, obj.InclinationDeg, obj.EstimatedAnnualImpactMillion):
		return fmt.Errorf("%w: debris %s has a non-finite value", ErrInvalidDataset, obj.Name)
	case obj.AnnualConjunctions < 0:
		return fmt.Errorf("%w: debris %s has negative annual conjunctions", ErrInvalidDataset, obj.Name)
	case obj.ThreatenedSatellites < 0:
		return fmt.Errorf("%w: debris %s has negative threatened satellites", ErrInvalidDataset, obj.Name)
	}
	return nil
}

func validateAnalytics(a Analytics) error {
	for _, series := range []AnalyticsSeries{a.CostBreakdown, a.MonthlyManeuvers, a.OrbitalImpact} {
		for _, p := range series.Points {
			if !finite(p.Value) {
				return fmt.Errorf("%w: series %q point %q is not finite", ErrInvalidDataset, series.Title, p.Label)
			}
		}
	}
	return nil
}

func finite(values ...float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
