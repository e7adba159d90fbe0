package handler

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/special-brownies/booster-pack/internal/domain"
)

func decodeAddCards(t *testing.T, body string) AddCardsRequest {
	t.Helper()
	var req AddCardsRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))
	return req
}

func TestOpenPackRequest_SetID(t *testing.T) {
	tests := []struct {
		name string
		req  OpenPackRequest
		want string
	}{
		{"camel", OpenPackRequest{SetIDCamel: "base2"}, "base2"},
		{"snake", OpenPackRequest{SetIDSnake: "jungle"}, "jungle"},
		{"camel wins", OpenPackRequest{SetIDCamel: "base2", SetIDSnake: "jungle"}, "base2"},
		{"blank camel falls through", OpenPackRequest{SetIDCamel: "  ", SetIDSnake: " jungle "}, "jungle"},
		{"neither", OpenPackRequest{}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.req.SetID())
		})
	}
}

func TestAddCardsRequest_Normalize(t *testing.T) {
	req, err := decodeAddCards(t, `{
		"pack_result": {
			"set_id": "base2",
			"slots": [
				{"card_id": "c1"},
				{"card_id": 42},
				{"card_id": ""},
				{"card_name": "no id"},
				{"card_id": null},
				"not a slot",
				7,
				null
			],
			"extra": true
		}
	}`).Normalize()

	require.NoError(t, err)
	assert.Equal(t, "base2", req.SetID)
	assert.Equal(t, 3, req.IgnoredSlots)
	assert.Equal(t, []domain.IngestSlot{
		{CardID: "c1"},
		{CardID: "42", Malformed: true},
		{CardID: ""},
		{CardID: "null", Malformed: true},
		{CardID: "null", Malformed: true},
	}, req.Slots)
}

func TestAddCardsRequest_NormalizeSpellings(t *testing.T) {
	req, err := decodeAddCards(t, `{"packResult": {"set_id": "jungle", "slots": []}}`).Normalize()
	require.NoError(t, err)
	assert.Equal(t, "jungle", req.SetID)
	assert.Empty(t, req.Slots)

	req, err = decodeAddCards(t, `{"packResult": {}, "pack_result": {"set_id": "fossil", "slots": []}}`).Normalize()
	require.NoError(t, err)
	assert.Equal(t, "fossil", req.SetID, "empty camel object falls through to snake")
}

func TestAddCardsRequest_NormalizeErrors(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		missing bool
		wantErr error
	}{
		{"no payload", `{}`, true, nil},
		{"null payload", `{"packResult": null}`, true, nil},
		{"list payload", `{"pack_result": [1, 2]}`, true, nil},
		{"slots missing", `{"pack_result": {"set_id": "base2"}}`, false, domain.ErrSlotsNotList},
		{"slots object", `{"pack_result": {"set_id": "base2", "slots": {"0": {}}}}`, false, domain.ErrSlotsNotList},
		{"slots null", `{"pack_result": {"set_id": "base2", "slots": null}}`, false, domain.ErrSlotsNotList},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := decodeAddCards(t, tt.body).Normalize()
			require.Error(t, err)
			if tt.missing {
				assert.IsType(t, errMissingPackResult{}, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAddCardsRequest_NonStringSetID(t *testing.T) {
	req, err := decodeAddCards(t, `{"pack_result": {"set_id": 5, "slots": []}}`).Normalize()

	require.NoError(t, err)
	assert.Empty(t, req.SetID)
}
