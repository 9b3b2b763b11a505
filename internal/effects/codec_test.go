package effects

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/arm5e-effects/internal/errors"
)

func TestRecord_UnmarshalHostDocument(t *testing.T) {
	raw := `{
		"_id": "ae-7",
		"name": "Gift of Vigor",
		"origin": "Actor.x.Item.y",
		"disabled": false,
		"changes": [
			{"key": "system.bonuses.characteristic.sta", "mode": 2, "value": "1", "priority": null},
			{"key": "system.bonuses.ability.craft", "mode": 1, "value": -2}
		],
		"flags": {"arm5e": {
			"type": ["characteristic", "ability"],
			"subtype": ["sta", "craft"],
			"option": [null, "Smith"],
			"hidden": true
		}}
	}`

	var r Record
	require.NoError(t, json.Unmarshal([]byte(raw), &r))

	assert.Equal(t, "ae-7", r.ID)
	assert.Equal(t, "Actor.x.Item.y", r.Origin)
	assert.True(t, r.Hidden)
	require.Equal(t, 2, r.Len())
	assert.Equal(t, float64(1), r.Entry(0).Value)
	assert.Equal(t, ModeAdd, r.Entry(0).Mode)
	assert.Equal(t, float64(-2), r.Entry(1).Value)
	assert.Equal(t, "", r.Entry(0).Option)
	assert.Equal(t, "Smith", r.Entry(1).Option)
}

func TestRecord_UnmarshalRejectsMisalignedTags(t *testing.T) {
	raw := `{
		"_id": "ae-8",
		"name": "Broken",
		"changes": [{"key": "a", "mode": 2, "value": 1}, {"key": "b", "mode": 2, "value": 1}],
		"flags": {"arm5e": {"type": ["vitals"], "subtype": ["soak"], "option": [""]}}
	}`

	var r Record
	err := json.Unmarshal([]byte(raw), &r)
	require.Error(t, err)
	assert.True(t, errors.IsAlignmentViolation(err))
}

func TestRecord_UnmarshalWithoutFlags(t *testing.T) {
	raw := `{"_id": "ae-9", "name": "Foreign", "changes": [{"key": "a", "mode": 2, "value": "3"}], "flags": {}}`

	var r Record
	require.NoError(t, json.Unmarshal([]byte(raw), &r))
	assert.Equal(t, 1, r.Len())
	assert.Empty(t, ByType([]*Record{&r}, "vitals"))
}

func TestRecord_UnmarshalWithoutSubtypeTags(t *testing.T) {
	raw := `{
		"_id": "ae-12",
		"name": "Half Tagged",
		"changes": [{"key": "system.bonuses.characteristic.str", "mode": 2, "value": 1}],
		"flags": {"arm5e": {"type": ["characteristic"]}}
	}`

	var r Record
	require.NoError(t, json.Unmarshal([]byte(raw), &r))
	require.Equal(t, 1, r.Len())
	assert.Equal(t, "characteristic", r.Entry(0).Type)
	assert.Equal(t, "", r.Entry(0).Subtype)

	recs := []*Record{&r}
	assert.Len(t, ByType(recs, "characteristic"), 1)
	assert.Empty(t, BySubtype(recs, "str"))
	assert.Empty(t, ByTypeAndSubtypeFiltered(recs, "characteristic", "str"))
}

func TestRecord_UnmarshalRejectsNonNumericValue(t *testing.T) {
	raw := `{"_id": "ae-10", "name": "Bad", "changes": [{"key": "a", "mode": 2, "value": "lots"}]}`

	var r Record
	assert.Error(t, json.Unmarshal([]byte(raw), &r))
}

func TestRecord_JSONRoundTripKeepsAlignment(t *testing.T) {
	orig := NewBuilder("Parma Magica").
		WithID("ae-11").
		Temporary().
		Hidden().
		AddChange("form", "ig", ModeAdd, 5).
		AddChangeWithOption("ability", "areaLore", "Normandy", ModeOverride, 2.5).
		Build()

	data, err := json.Marshal(orig)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"type":["form","ability"]`)
	assert.Contains(t, string(data), `"value":2.5`)

	var got Record
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, orig.Entries(), got.Entries())
	assert.Equal(t, orig.Temporary, got.Temporary)
	assert.Equal(t, orig.Hidden, got.Hidden)
}
