/*
network.go Owning store for a panel network. Every panel and combiner lives here and
is referenced by PID. Combiners may only be built from nodes that already exist, so a
network can never contain a cycle.
*/

package network

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/ohowland/pvnet/internal/pkg/source"
	"github.com/ohowland/pvnet/internal/pkg/source/combiner"
	"github.com/ohowland/pvnet/internal/pkg/source/panel"
)

var (
	// ErrUnknownNode is returned when a PID does not belong to the network.
	ErrUnknownNode = errors.New("unknown node")
	// ErrDuplicateName is returned when a node name is already taken.
	ErrDuplicateName = errors.New("duplicate node name")
)

// Network holds every node of a panel network.
type Network struct {
	config Config
	nodes  map[uuid.UUID]node
	names  map[string]uuid.UUID
}

type node struct {
	name string
	src  source.Source
}

// Config contains the static configuration of a network
type Config struct {
	Static StaticConfig `json:"StaticConfig"`
}

// StaticConfig represents the static properties of a network. Ceiling seeds the
// minimum fold of every combiner the network builds and must be above every rating
// in the network; zero selects source.Ceiling, negative values are rejected.
type StaticConfig struct {
	Name    string  `json:"Name"`
	Ceiling float64 `json:"Ceiling"`
}

// New configures and returns an empty network.
func New(jsonConfig []byte) (Network, error) {
	config := Config{}
	if err := json.Unmarshal(jsonConfig, &config); err != nil {
		return Network{}, err
	}
	return NewWithConfig(config)
}

// NewWithConfig returns an empty network using config.
func NewWithConfig(config Config) (Network, error) {
	if config.Static.Ceiling == 0 {
		config.Static.Ceiling = source.Ceiling
	}
	if config.Static.Ceiling < 0 {
		return Network{}, fmt.Errorf("network %q ceiling %v: %w",
			config.Static.Name, config.Static.Ceiling, combiner.ErrInvalidCeiling)
	}
	return Network{
		config: config,
		nodes:  make(map[uuid.UUID]node),
		names:  make(map[string]uuid.UUID),
	}, nil
}

// AddPanel adds a panel rated at current amps and voltage volts.
func (n *Network) AddPanel(name string, current float64, voltage float64) (uuid.UUID, error) {
	if err := n.checkName(name); err != nil {
		return uuid.UUID{}, err
	}

	p, err := panel.NewNamed(name, current, voltage)
	if err != nil {
		return uuid.UUID{}, err
	}

	n.insert(p.PID(), name, p)
	log.Printf("[Network %v] added panel %q (%v A, %v V)\n", n.Name(), name, current, voltage)
	return p.PID(), nil
}

// AddParallel adds a parallel combiner over the given members.
func (n *Network) AddParallel(name string, members ...uuid.UUID) (uuid.UUID, error) {
	return n.addCombiner(combiner.Parallel, name, members)
}

// AddSeries adds a series combiner over the given members.
func (n *Network) AddSeries(name string, members ...uuid.UUID) (uuid.UUID, error) {
	return n.addCombiner(combiner.Series, name, members)
}

func (n *Network) addCombiner(kind combiner.Kind, name string, members []uuid.UUID) (uuid.UUID, error) {
	if err := n.checkName(name); err != nil {
		return uuid.UUID{}, err
	}

	srcs := make([]source.Source, 0, len(members))
	for _, pid := range members {
		s, err := n.Source(pid)
		if err != nil {
			return uuid.UUID{}, fmt.Errorf("%v %q: %w", kind, name, err)
		}
		srcs = append(srcs, s)
	}

	c, err := combiner.New(kind, n.config.Static.Ceiling, srcs...)
	if err != nil {
		return uuid.UUID{}, fmt.Errorf("%v %q: %w", kind, name, err)
	}

	n.insert(c.PID(), name, c)
	log.Printf("[Network %v] added %v %q with %d members\n", n.Name(), kind, name, len(members))
	return c.PID(), nil
}

func (n Network) checkName(name string) error {
	if name == "" {
		return nil
	}
	if _, ok := n.names[name]; ok {
		return fmt.Errorf("%q: %w", name, ErrDuplicateName)
	}
	return nil
}

func (n *Network) insert(pid uuid.UUID, name string, s source.Source) {
	n.nodes[pid] = node{name, s}
	if name != "" {
		n.names[name] = pid
	}
}

// Source returns the node stored under pid.
func (n Network) Source(pid uuid.UUID) (source.Source, error) {
	nd, ok := n.nodes[pid]
	if !ok {
		return nil, fmt.Errorf("%v: %w", pid, ErrUnknownNode)
	}
	return nd.src, nil
}

// Lookup returns the PID of the node called name.
func (n Network) Lookup(name string) (uuid.UUID, bool) {
	pid, ok := n.names[name]
	return pid, ok
}

// Current returns the current of the node stored under pid.
func (n Network) Current(pid uuid.UUID) (float64, error) {
	s, err := n.Source(pid)
	if err != nil {
		return 0, err
	}
	return s.Current(), nil
}

// Voltage returns the voltage of the node stored under pid.
func (n Network) Voltage(pid uuid.UUID) (float64, error) {
	s, err := n.Source(pid)
	if err != nil {
		return 0, err
	}
	return s.Voltage(), nil
}

// Power returns the power of the node stored under pid.
func (n Network) Power(pid uuid.UUID) (float64, error) {
	s, err := n.Source(pid)
	if err != nil {
		return 0, err
	}
	return source.Power(s), nil
}

// Len returns the number of nodes.
func (n Network) Len() int {
	return len(n.nodes)
}

// Name is an accessor for the network's configured name.
func (n Network) Name() string {
	return n.config.Static.Name
}

// Ceiling returns the fold seed used for combiners built by this network.
func (n Network) Ceiling() float64 {
	return n.config.Static.Ceiling
}
