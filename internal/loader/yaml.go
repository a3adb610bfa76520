package loader

import (
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"omegraph/internal/domain"
	"omegraph/internal/store"
)

// ErrInvalidAssertion is returned for assertions that cannot be replayed
var ErrInvalidAssertion = errors.New("invalid assertion")

// LogYAML is a recorded assertion stream
type LogYAML struct {
	Version    string          `yaml:"version"`
	Source     string          `yaml:"source,omitempty"`
	Assertions []AssertionYAML `yaml:"assertions"`
}

// AssertionYAML is one entry of the stream. Entity assertions name a type,
// its positional coordinates, an optional external id and attribute values;
// reference assertions carry only Ref.
type AssertionYAML struct {
	Entity domain.EntityType `yaml:"entity,omitempty"`
	At     []int             `yaml:"at,omitempty"`
	ID     string            `yaml:"id,omitempty"`
	Set    yaml.Node         `yaml:"set,omitempty"`
	Ref    *RefYAML          `yaml:"ref,omitempty"`
}

// RefYAML is a directed link between two canonical or external ids
type RefYAML struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
	Role string `yaml:"role,omitempty"`
}

// Sink receives replayed assertions. *service.Unit implements it.
type Sink interface {
	GetOrCreate(t domain.EntityType, coords ...domain.Coord) (*store.Container, error)
	SetExternalID(c *store.Container, external string) error
	AddRoleReference(from, to domain.EntityID, role store.Role) error
}

// LoadYAML loads an assertion log from a YAML file
func LoadYAML(path string) (*LogYAML, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	log, err := ParseYAML(data)
	if err != nil {
		return nil, err
	}
	if log.Source == "" {
		log.Source = path
	}
	return log, nil
}

// ParseYAML parses an assertion log from YAML bytes
func ParseYAML(data []byte) (*LogYAML, error) {
	var log LogYAML
	if err := yaml.Unmarshal(data, &log); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return &log, nil
}

// Replayer feeds assertion logs into a sink in order
type Replayer struct {
	normalizer *Normalizer
	logger     *zap.Logger
}

// NewReplayer creates a replayer. A nil normalizer leaves vocabulary terms
// as recorded.
func NewReplayer(normalizer *Normalizer, logger *zap.Logger) *Replayer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Replayer{normalizer: normalizer, logger: logger.Named("loader")}
}

// Replay applies every assertion of log to sink, stopping at the first
// failure
func (r *Replayer) Replay(log *LogYAML, sink Sink) error {
	entities, refs := 0, 0
	for i := range log.Assertions {
		a := &log.Assertions[i]
		switch {
		case a.Ref != nil && a.Entity != "":
			return fmt.Errorf("%w %d: both entity and ref given", ErrInvalidAssertion, i)
		case a.Ref != nil:
			if err := r.replayRef(a.Ref, sink); err != nil {
				return fmt.Errorf("assertion %d: %w", i, err)
			}
			refs++
		case a.Entity != "":
			if err := r.replayEntity(a, sink); err != nil {
				return fmt.Errorf("assertion %d (%s): %w", i, a.Entity, err)
			}
			entities++
		default:
			return fmt.Errorf("%w %d: neither entity nor ref given", ErrInvalidAssertion, i)
		}
	}

	r.logger.Info("Replayed assertion log",
		zap.String("source", log.Source),
		zap.Int("entity_assertions", entities),
		zap.Int("references", refs))
	return nil
}

func (r *Replayer) replayEntity(a *AssertionYAML, sink Sink) error {
	coords, err := domain.Layout(a.Entity, a.At...)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAssertion, err)
	}
	c, err := sink.GetOrCreate(a.Entity, coords...)
	if err != nil {
		return err
	}

	if a.Set.Kind != 0 {
		if a.Set.Kind != yaml.MappingNode {
			return fmt.Errorf("%w: set must be a mapping", ErrInvalidAssertion)
		}
		prev := c.Entity.ExternalID()
		if err := a.Set.Decode(c.Entity); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidAssertion, err)
		}
		// an id inside set must go through the sink to register its alias
		if id := c.Entity.ExternalID(); id != prev {
			c.Entity.SetExternalID(prev)
			if err := sink.SetExternalID(c, id); err != nil {
				return err
			}
		}
		if r.normalizer != nil {
			if err := r.normalizer.Normalize(c.Entity); err != nil {
				return err
			}
		}
	}

	if a.ID != "" {
		if err := sink.SetExternalID(c, a.ID); err != nil {
			return err
		}
	}
	return nil
}

func (r *Replayer) replayRef(ref *RefYAML, sink Sink) error {
	if ref.From == "" || ref.To == "" {
		return fmt.Errorf("%w: ref needs from and to", ErrInvalidAssertion)
	}
	role, ok := parseRole(ref.Role)
	if !ok {
		return fmt.Errorf("%w: unknown role %q", ErrInvalidAssertion, ref.Role)
	}
	return sink.AddRoleReference(domain.ParseID(ref.From), domain.ParseID(ref.To), role)
}

func parseRole(s string) (store.Role, bool) {
	for _, role := range store.Roles {
		if string(role) == s {
			return role, true
		}
	}
	return "", false
}
