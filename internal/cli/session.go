package cli

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/calvinalkan/h5fixture/internal/config"
	"github.com/calvinalkan/h5fixture/pkg/gen"
	"github.com/calvinalkan/h5fixture/pkg/h5type"
	"github.com/calvinalkan/h5fixture/pkg/ndarray"
)

// session is the state commands share: the resolved config and one random
// source seeded from it. The REPL keeps a session across lines, so
// consecutive commands continue the same random stream.
type session struct {
	cfg *config.Config
	src *rand.Rand
}

func newSession(cfg *config.Config) *session {
	return &session{cfg: cfg, src: gen.NewSource(cfg.Seed)}
}

func (s *session) reseed(seed uint64) {
	s.cfg.Seed = seed
	s.src = gen.NewSource(seed)
}

// descriptor parses expr, or returns the configured type when expr is
// empty.
func (s *session) descriptor(expr string) (h5type.Descriptor, error) {
	if expr == "" {
		return s.cfg.Descriptor, nil
	}

	return h5type.Parse(expr)
}

// maxArrayElements bounds the arrays the CLI materializes.
const maxArrayElements = 1 << 24

func checkNdim(ndim int) error {
	if ndim < 0 {
		return fmt.Errorf("--ndim cannot be negative (got %d)", ndim)
	}

	if ndim > config.MaxNdim {
		return fmt.Errorf("--ndim cannot exceed %d (got %d)", config.MaxNdim, ndim)
	}

	return nil
}

// checkArrayNdim rejects ndim when a generated shape of that many axes
// could hold more than maxArrayElements.
func checkArrayNdim(ndim int) error {
	err := checkNdim(ndim)
	if err != nil {
		return err
	}

	worst := 1
	for range ndim {
		worst *= gen.MaxExtent - 1
		if worst > maxArrayElements {
			return fmt.Errorf("--ndim %d can exceed %d array elements", ndim, maxArrayElements)
		}
	}

	return nil
}

// checkArraySize rejects shapes too large to materialize.
func checkArraySize(shape ndarray.Shape) (int, error) {
	size, err := shape.CheckedSize()
	if err != nil {
		return 0, err
	}

	if size > maxArrayElements {
		return 0, fmt.Errorf("shape %v has %d elements, at most %d can be materialized", shape, size, maxArrayElements)
	}

	return size, nil
}

// parseShape parses "3,0,4" into a shape. An empty string is a
// 0-dimensional shape. The rank is limited to config.MaxNdim and the
// element count must fit in an int.
func parseShape(s string) (ndarray.Shape, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return ndarray.Shape{}, nil
	}

	parts := strings.Split(s, ",")
	shape := make(ndarray.Shape, len(parts))

	for i, p := range parts {
		e, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || e < 0 {
			return nil, fmt.Errorf("invalid extent %q in shape %q", p, s)
		}

		shape[i] = e
	}

	if len(shape) > config.MaxNdim {
		return nil, fmt.Errorf("shape %q has %d axes, at most %d are allowed", s, len(shape), config.MaxNdim)
	}

	_, err := shape.CheckedSize()
	if err != nil {
		return nil, fmt.Errorf("invalid shape %q: %w", s, err)
	}

	return shape, nil
}
