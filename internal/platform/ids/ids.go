package ids

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/google/uuid"
)

type Strategy string

const (
	StrategySequence Strategy = "sequence"
	StrategyUUID     Strategy = "uuid"
)

func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(strings.ToLower(strings.TrimSpace(s))) {
	case "", StrategySequence:
		return StrategySequence, nil
	case StrategyUUID:
		return StrategyUUID, nil
	default:
		return "", fmt.Errorf("unknown id strategy %q", s)
	}
}

// Generator produce identificadores para una colección.
// Observe informa ids que ya existen (seed o datos cargados) para no repetirlos.
type Generator interface {
	Next() string
	Observe(id string)
	Reset()
}

func New(strategy Strategy, prefix string) Generator {
	if strategy == StrategyUUID {
		return NewRandom(prefix)
	}
	return NewSequence(prefix)
}

// Sequence genera <prefix><N> con un contador monotónico.
// Un ordinal entregado nunca se vuelve a usar, aunque el registro se borre.
type Sequence struct {
	mu     sync.Mutex
	prefix string
	next   int
}

func NewSequence(prefix string) *Sequence {
	return &Sequence{prefix: prefix}
}

func (s *Sequence) Next() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.prefix + strconv.Itoa(s.next)
	s.next++
	return id
}

func (s *Sequence) Observe(id string) {
	n, ok := ordinal(s.prefix, id)
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if n >= s.next {
		s.next = n + 1
	}
}

func (s *Sequence) Reset() {
	s.mu.Lock()
	s.next = 0
	s.mu.Unlock()
}

// ordinal extrae N de "<prefix>N". Solo acepta dígitos decimales.
func ordinal(prefix, id string) (int, bool) {
	rest, ok := strings.CutPrefix(id, prefix)
	if !ok || rest == "" {
		return 0, false
	}
	for _, c := range rest {
		if c < '0' || c > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(rest)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Random genera <prefix><uuid>. No necesita estado.
type Random struct {
	prefix string
}

func NewRandom(prefix string) *Random {
	return &Random{prefix: prefix}
}

func (r *Random) Next() string     { return r.prefix + uuid.NewString() }
func (r *Random) Observe(id string) {}
func (r *Random) Reset()            {}
