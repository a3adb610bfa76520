package codec

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"

	"omegraph/internal/domain"
)

func sampleGraph() *domain.Graph {
	wavelength := 488.0
	id := domain.Structural(domain.TypeChannel, domain.At(domain.ImageIndex, 0), domain.At(domain.ChannelIndex, 1))
	color := domain.Green
	ch := &domain.Channel{Name: "GFP", EmissionWavelength: &wavelength, Color: &color}
	return &domain.Graph{
		Unit:     "unit-1",
		Entities: []domain.GraphEntity{domain.NewGraphEntity(id, id.Coordinates(), ch)},
		References: []domain.GraphReference{
			{From: "Channel:0:1", To: "LightSource:0:0", Role: "light_source"},
		},
		Counts: map[domain.EntityType]int{domain.TypeChannel: 1},
	}
}

func TestForFormat(t *testing.T) {
	for _, f := range []string{"json", "YAML", "yml", " msgpack "} {
		t.Run(f, func(t *testing.T) {
			e, err := ForFormat(f)
			require.NoError(t, err)
			assert.NotEmpty(t, e.Format())
		})
	}

	_, err := ForFormat("xml")
	assert.ErrorIs(t, err, ErrUnknownFormat)
	assert.Equal(t, []string{"json", "msgpack", "yaml"}, Formats())
}

func TestJSONExport(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewJSONCodec().Export(sampleGraph(), &buf))

	var doc struct {
		Unit string `json:"unit"`
		Entities []struct {
			ID         string           `json:"id"`
			Label      string           `json:"label"`
			Coords     []map[string]any `json:"coords"`
			Attributes map[string]any   `json:"attributes"`
		} `json:"entities"`
		Counts map[string]int `json:"counts"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))

	assert.Equal(t, "unit-1", doc.Unit)
	require.Len(t, doc.Entities, 1)
	e := doc.Entities[0]
	assert.Equal(t, "Channel:0:1", e.ID)
	assert.Equal(t, "GFP", e.Label)
	assert.Equal(t, "channel", e.Coords[1]["kind"])
	assert.Equal(t, 488.0, e.Attributes["emission_wavelength"])
	assert.NotContains(t, e.Attributes, "excitation_wavelength")
	assert.Equal(t, 1, doc.Counts["Channel"])
}

func TestYAMLExport(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewYAMLCodec().Export(sampleGraph(), &buf))

	var doc map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))
	refs := doc["references"].([]any)
	require.Len(t, refs, 1)
	assert.Equal(t, "light_source", refs[0].(map[string]any)["role"])

	entity := doc["entities"].([]any)[0].(map[string]any)
	attrs := entity["attributes"].(map[string]any)
	assert.Equal(t, "GFP", attrs["name"])
	assert.Equal(t, 255, attrs["color"].(map[string]any)["g"])
}

func TestMsgpackExport(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewMsgpackCodec().Export(sampleGraph(), &buf))

	var doc map[string]any
	require.NoError(t, msgpack.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, "unit-1", doc["unit"])

	entity := doc["entities"].([]any)[0].(map[string]any)
	assert.Equal(t, "Channel:0:1", entity["id"])
	attrs := entity["attributes"].(map[string]any)
	assert.Equal(t, 488.0, attrs["emission_wavelength"])
	assert.NotContains(t, attrs, "pinhole_size")
}
