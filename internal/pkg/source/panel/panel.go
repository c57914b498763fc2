package panel

import (
	"encoding/json"

	"github.com/google/uuid"
)

// Panel is a single solar panel supplying its nameplate current and voltage.
type Panel struct {
	pid    uuid.UUID
	config Config
}

// Config differentiates between two types of configurations, static and dynamic.
// A panel only has a static configuration.
type Config struct {
	Static StaticConfig `json:"StaticConfig"`
}

// StaticConfig is a data structure representing a panel nameplate
type StaticConfig struct {
	Name  string  `json:"Name"`
	Amps  float64 `json:"Amps"`
	Volts float64 `json:"Volts"`
}

// New returns an unnamed panel rated at current amps and voltage volts.
// Ratings are not validated.
func New(current float64, voltage float64) (Panel, error) {
	return NewNamed("", current, voltage)
}

// NewNamed returns a panel with a display name.
func NewNamed(name string, current float64, voltage float64) (Panel, error) {
	return newPanel(Config{StaticConfig{name, current, voltage}})
}

// NewFromConfig returns a panel configured from a JSON nameplate.
func NewFromConfig(jsonConfig []byte) (Panel, error) {
	config := Config{}
	err := json.Unmarshal(jsonConfig, &config)
	if err != nil {
		return Panel{}, err
	}
	return newPanel(config)
}

func newPanel(config Config) (Panel, error) {
	pid, err := uuid.NewUUID()
	if err != nil {
		return Panel{}, err
	}
	return Panel{pid, config}, nil
}

// Current returns the rated current.
func (p Panel) Current() float64 {
	return p.config.Static.Amps
}

// Voltage returns the rated voltage.
func (p Panel) Voltage() float64 {
	return p.config.Static.Volts
}

// PID is a getter for the unique identifier field
func (p Panel) PID() uuid.UUID {
	return p.pid
}

// Name is an accessor for the configured name.
// Use this only when displaying information. PID is used internally.
func (p Panel) Name() string {
	return p.config.Static.Name
}

// Config is a getter for the panel configuration
func (p Panel) Config() Config {
	return p.config
}
