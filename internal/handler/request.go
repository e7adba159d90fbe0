package handler

import (
	"bytes"
	"encoding/json"

	"github.com/special-brownies/booster-pack/internal/domain"
)

// OpenPackRequest is the open-pack body. Either set id spelling is accepted;
// config keeps its raw form so unknown keys can be reported by name.
type OpenPackRequest struct {
	SetIDCamel string          `json:"setId" validate:"max=128"`
	SetIDSnake string          `json:"set_id" validate:"max=128"`
	Config     json.RawMessage `json:"config,omitempty" swaggertype:"object"`
	Seed       *int64          `json:"seed,omitempty"`
}

// SetID returns the normalised set id, or "" when neither spelling is set.
func (r OpenPackRequest) SetID() string {
	return firstNonBlank(r.SetIDCamel, r.SetIDSnake)
}

// AddCardsRequest is the add-cards body. The pack result is decoded lazily
// because its slots may hold values of any shape.
type AddCardsRequest struct {
	PackResultCamel json.RawMessage `json:"packResult,omitempty" swaggertype:"object"`
	PackResultSnake json.RawMessage `json:"pack_result,omitempty" swaggertype:"object"`
}

// errMissingPackResult marks a body without a usable pack result object.
type errMissingPackResult struct{}

func (errMissingPackResult) Error() string { return ErrMsgMissingPackResult }

// Normalize converts the permissive body into a typed ingest request.
//
// The first pack result spelling holding a non-empty object wins. A non-string
// set_id becomes "" and is rejected as unknown by the binder. Slots that are
// not objects are counted in IgnoredSlots; a card_id that is missing or not
// a string is kept as its JSON text and marked malformed. An empty card_id
// passes through as "" and is rejected by the binder.
func (r AddCardsRequest) Normalize() (domain.IngestRequest, error) {
	fields, ok := packResultObject(r.PackResultCamel)
	if !ok {
		fields, ok = packResultObject(r.PackResultSnake)
	}
	if !ok {
		return domain.IngestRequest{}, errMissingPackResult{}
	}

	var req domain.IngestRequest
	if raw, found := fields[KeySetID]; found {
		var setID string
		if json.Unmarshal(raw, &setID) == nil {
			req.SetID = setID
		}
	}

	var slots []json.RawMessage
	raw, found := fields[KeySlots]
	if !found || isNull(raw) || json.Unmarshal(raw, &slots) != nil {
		return req, domain.ErrSlotsNotList
	}

	req.Slots = make([]domain.IngestSlot, 0, len(slots))
	for _, rawSlot := range slots {
		var slot map[string]json.RawMessage
		if isNull(rawSlot) || json.Unmarshal(rawSlot, &slot) != nil {
			req.IgnoredSlots++
			continue
		}
		req.Slots = append(req.Slots, ingestSlot(slot[KeyCardID]))
	}
	return req, nil
}

func ingestSlot(raw json.RawMessage) domain.IngestSlot {
	if len(raw) == 0 {
		return domain.IngestSlot{CardID: "null", Malformed: true}
	}
	var cardID string
	if json.Unmarshal(raw, &cardID) == nil {
		return domain.IngestSlot{CardID: cardID}
	}
	var compact bytes.Buffer
	if err := json.Compact(&compact, raw); err != nil {
		return domain.IngestSlot{CardID: string(raw), Malformed: true}
	}
	return domain.IngestSlot{CardID: compact.String(), Malformed: true}
}

func packResultObject(raw json.RawMessage) (map[string]json.RawMessage, bool) {
	if len(raw) == 0 || isNull(raw) {
		return nil, false
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil || len(fields) == 0 {
		return nil, false
	}
	return fields, true
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
