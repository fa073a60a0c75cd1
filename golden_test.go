package screech

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type oscillatorFixture struct {
	SampleRate int       `yaml:"sample_rate"`
	Frequency  float32   `yaml:"frequency"`
	Samples    []float32 `yaml:"samples"`
}

// TestGolden_scenarioDOscillator checks the saw oscillator fixture
// against the exact sample-by-sample expectation, rather than hardcoding
// the sequence a second time in Go.
func TestGolden_scenarioDOscillator(t *testing.T) {
	raw, err := os.ReadFile("testdata/scenario_d_oscillator.yaml")
	require.NoError(t, err)

	var fixture oscillatorFixture
	require.NoError(t, yaml.Unmarshal(raw, &fixture))

	pb := NewPatchbay(1)
	point, ok := pb.Point()
	require.True(t, ok)
	signal := point.Signal()

	osc := newOscillatorModule(point, fixture.Frequency)
	p := NewProcessor(fixture.SampleRate, []Module{osc})

	for i, want := range fixture.Samples {
		p.ProcessModules(pb)
		require.InDeltaf(t, want, pb.Get(signal), 1e-6, "sample %d", i)
	}
}
