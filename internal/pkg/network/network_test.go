package network

import (
	"errors"
	"io/ioutil"
	"testing"

	"github.com/google/uuid"
	"github.com/ohowland/pvnet/internal/pkg/source"
	"github.com/ohowland/pvnet/internal/pkg/source/combiner"
	"gonum.org/v1/gonum/floats/scalar"
	"gotest.tools/v3/assert"
)

func newNetwork() Network {
	configPath := "./network_test_config.json"
	jsonConfig, err := ioutil.ReadFile(configPath)
	if err != nil {
		panic(err)
	}

	n, err := New(jsonConfig)
	if err != nil {
		panic(err)
	}
	return n
}

func TestNewNetwork(t *testing.T) {
	n := newNetwork()
	assert.Equal(t, n.Name(), "TEST_Panel Network")
	assert.Equal(t, n.Ceiling(), 1000.0)
	assert.Equal(t, n.Len(), 0)
}

func TestNewNetworkDefaultCeiling(t *testing.T) {
	n, err := New([]byte(`{"StaticConfig": {"Name": "default"}}`))
	assert.NilError(t, err)
	assert.Equal(t, n.Ceiling(), source.Ceiling)
}

func TestNewNetworkBadJSON(t *testing.T) {
	_, err := New([]byte(`{"StaticConfig": `))
	assert.Assert(t, err != nil)
}

func TestNewNetworkNegativeCeiling(t *testing.T) {
	_, err := New([]byte(`{"StaticConfig": {"Name": "bad", "Ceiling": -5}}`))
	assert.ErrorIs(t, err, combiner.ErrInvalidCeiling)
}

func TestCeilingBelowRatings(t *testing.T) {
	n, err := New([]byte(`{"StaticConfig": {"Name": "low", "Ceiling": 10}}`))
	assert.NilError(t, err)

	kc50t, err := n.AddPanel("kc50t", 3.11, 17.4)
	assert.NilError(t, err)

	_, err = n.AddParallel("2P kc50t", kc50t, kc50t)
	assert.ErrorIs(t, err, combiner.ErrInvalidCeiling)
	_, ok := n.Lookup("2P kc50t")
	assert.Assert(t, !ok)

	s, err := n.AddSeries("1S kc50t", kc50t)
	assert.NilError(t, err)
	c, err := n.Current(s)
	assert.NilError(t, err)
	assert.Equal(t, c, 3.11)
}

func TestAddPanel(t *testing.T) {
	n := newNetwork()

	pid, err := n.AddPanel("kc50t", 3.11, 17.4)
	assert.NilError(t, err)
	assert.Equal(t, n.Len(), 1)

	found, ok := n.Lookup("kc50t")
	assert.Assert(t, ok)
	assert.Equal(t, found, pid)

	c, err := n.Current(pid)
	assert.NilError(t, err)
	assert.Equal(t, c, 3.11)

	v, err := n.Voltage(pid)
	assert.NilError(t, err)
	assert.Equal(t, v, 17.4)

	w, err := n.Power(pid)
	assert.NilError(t, err)
	assert.Assert(t, scalar.EqualWithinAbs(w, 54.114, 1e-9))
}

func TestDuplicateName(t *testing.T) {
	n := newNetwork()

	_, err := n.AddPanel("kc50t", 3.11, 17.4)
	assert.NilError(t, err)

	_, err = n.AddPanel("kc50t", 1, 1)
	assert.ErrorIs(t, err, ErrDuplicateName)

	pid, err := n.AddPanel("", 1, 1)
	assert.NilError(t, err)
	_, err = n.AddParallel("kc50t", pid)
	assert.ErrorIs(t, err, ErrDuplicateName)

	_, err = n.AddPanel("", 2, 2)
	assert.NilError(t, err)
	assert.Equal(t, n.Len(), 3)
}

func TestUnknownMember(t *testing.T) {
	n := newNetwork()

	pid, err := n.AddPanel("kc50t", 3.11, 17.4)
	assert.NilError(t, err)

	stranger, err := uuid.NewUUID()
	assert.NilError(t, err)

	_, err = n.AddSeries("broken", pid, stranger)
	assert.ErrorIs(t, err, ErrUnknownNode)
	assert.Equal(t, n.Len(), 1)

	_, ok := n.Lookup("broken")
	assert.Assert(t, !ok)
}

func TestUnknownNodeEvaluation(t *testing.T) {
	n := newNetwork()
	stranger, err := uuid.NewUUID()
	assert.NilError(t, err)

	_, err = n.Current(stranger)
	assert.Assert(t, errors.Is(err, ErrUnknownNode))
	_, err = n.Voltage(stranger)
	assert.Assert(t, errors.Is(err, ErrUnknownNode))
	_, err = n.Power(stranger)
	assert.Assert(t, errors.Is(err, ErrUnknownNode))
}

func TestCeilingFlowsIntoCombiners(t *testing.T) {
	n := newNetwork()

	p, err := n.AddParallel("empty parallel")
	assert.NilError(t, err)
	s, err := n.AddSeries("empty series")
	assert.NilError(t, err)

	v, err := n.Voltage(p)
	assert.NilError(t, err)
	assert.Equal(t, v, 1000.0)

	c, err := n.Current(s)
	assert.NilError(t, err)
	assert.Equal(t, c, 1000.0)

	w, err := n.Power(p)
	assert.NilError(t, err)
	assert.Equal(t, w, 0.0)
}

func TestNestedNetwork(t *testing.T) {
	n := newNetwork()

	kc50t, err := n.AddPanel("kc50t", 3.11, 17.4)
	assert.NilError(t, err)
	newpowa, err := n.AddPanel("newpowa220", 12.6, 17.52)
	assert.NilError(t, err)

	fourP, err := n.AddParallel("4P kc50t", kc50t, kc50t, kc50t, kc50t)
	assert.NilError(t, err)
	fourS, err := n.AddSeries("4S newpowa220", newpowa, newpowa, newpowa, newpowa)
	assert.NilError(t, err)
	str, err := n.AddSeries("string", fourP, fourS)
	assert.NilError(t, err)

	assert.Equal(t, n.Len(), 5)

	v, err := n.Voltage(str)
	assert.NilError(t, err)
	assert.Assert(t, scalar.EqualWithinAbs(v, 17.4+4*17.52, 1e-9))

	c, err := n.Current(str)
	assert.NilError(t, err)
	assert.Assert(t, scalar.EqualWithinAbs(c, 12.44, 1e-9))

	w, err := n.Power(str)
	assert.NilError(t, err)
	assert.Assert(t, scalar.EqualWithinAbs(w, c*v, 1e-9))
}
