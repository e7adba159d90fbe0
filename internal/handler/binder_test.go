package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/special-brownies/booster-pack/internal/domain"
	"github.com/special-brownies/booster-pack/mocks"
)

func TestHandleAddCards(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setupMocks     func(*mocks.MockBinderService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Success",
			body: `{"packResult": {"set_id": "base2", "slots": [{"card_id": "c1"}, "junk", {"card_id": 9}]}}`,
			setupMocks: func(m *mocks.MockBinderService) {
				m.On("AddCards", mock.Anything, domain.IngestRequest{
					SetID:        "base2",
					Slots:        []domain.IngestSlot{{CardID: "c1"}, {CardID: "9", Malformed: true}},
					IgnoredSlots: 1,
				}).Return(&domain.IngestSummary{SetID: "base2", TotalSlotsProcessed: 3, CardsWritten: 1, InvalidCardIDs: []string{"9"}}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"invalid_card_ids":["9"]`,
		},
		{
			name:           "Missing Payload",
			body:           `{"other": {}}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgMissingPackResult,
		},
		{
			name:           "Slots Not A List",
			body:           `{"pack_result": {"set_id": "base2", "slots": "c1"}}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   domain.ErrMsgSlotsNotList,
		},
		{
			name: "Unknown Set",
			body: `{"pack_result": {"set_id": "nope", "slots": []}}`,
			setupMocks: func(m *mocks.MockBinderService) {
				m.On("AddCards", mock.Anything, mock.Anything).
					Return(nil, fmt.Errorf("%w: %q", domain.ErrUnknownSet, "nope"))
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   domain.ErrMsgUnknownSet,
		},
		{
			name: "Store Failure",
			body: `{"pack_result": {"set_id": "base2", "slots": []}}`,
			setupMocks: func(m *mocks.MockBinderService) {
				m.On("AddCards", mock.Anything, mock.Anything).Return(nil, assert.AnError)
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   ErrMsgAddCardsFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewMockBinderService(t)
			if tt.setupMocks != nil {
				tt.setupMocks(svc)
			}

			req := httptest.NewRequest(http.MethodPost, "/add-cards-to-binder", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()

			NewBinderHandler(svc).HandleAddCards(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
		})
	}
}

func TestHandleCollectionProgress(t *testing.T) {
	t.Run("Success With Snake Case", func(t *testing.T) {
		svc := mocks.NewMockBinderService(t)
		svc.On("CollectionProgress", mock.Anything, "jungle").
			Return(&domain.CollectionProgress{SetID: "jungle", OwnedUnique: 2, TotalAvailable: 4, CompletionPercentage: 50, Remaining: 2}, nil)

		w := httptest.NewRecorder()
		NewBinderHandler(svc).HandleCollectionProgress(w, httptest.NewRequest(http.MethodGet, "/collection-progress?set_id=jungle", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		var got domain.CollectionProgress
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, 50.0, got.CompletionPercentage)
	})

	t.Run("Missing Query", func(t *testing.T) {
		w := httptest.NewRecorder()
		NewBinderHandler(mocks.NewMockBinderService(t)).
			HandleCollectionProgress(w, httptest.NewRequest(http.MethodGet, "/collection-progress?setId=%20", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgMissingSetIDQuery)
	})

	t.Run("Unknown Set", func(t *testing.T) {
		svc := mocks.NewMockBinderService(t)
		svc.On("CollectionProgress", mock.Anything, "nope").
			Return(nil, fmt.Errorf("%w: nope", domain.ErrSetNotFound))

		w := httptest.NewRecorder()
		NewBinderHandler(svc).HandleCollectionProgress(w, httptest.NewRequest(http.MethodGet, "/collection-progress?setId=nope", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestBinderReadEndpoints(t *testing.T) {
	svc := mocks.NewMockBinderService(t)
	svc.On("GlobalProgress", mock.Anything).Return(&domain.GlobalProgress{
		OwnedUnique: 1, TotalAvailable: 2, CompletionPercentage: 50, Remaining: 1,
		PerSet: map[string]domain.CollectionProgress{"base2": {SetID: "base2"}},
	})
	svc.On("UnlockedSets", mock.Anything).Return([]string{"base2", "jungle"})
	state := domain.NewBinderState()
	state.UnlockedSets = []string{"base2"}
	svc.On("State", mock.Anything).Return(state)

	h := NewBinderHandler(svc)

	w := httptest.NewRecorder()
	h.HandleGlobalProgress(w, httptest.NewRequest(http.MethodGet, "/global-progress", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"per_set":{"base2"`)

	w = httptest.NewRecorder()
	h.HandleUnlockedSets(w, httptest.NewRequest(http.MethodGet, "/unlocked-sets", nil))
	assert.JSONEq(t, `["base2","jungle"]`, w.Body.String())

	w = httptest.NewRecorder()
	h.HandleBinderState(w, httptest.NewRequest(http.MethodGet, "/binder-state", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"unlocked_sets":["base2"]`)
}
