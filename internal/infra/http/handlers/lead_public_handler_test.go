package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tropicoretreats/leads-api/internal/entity"
	"github.com/tropicoretreats/leads-api/internal/usecase"
)

type stubPublisher struct {
	published []*entity.Lead
}

func (s *stubPublisher) PublishLeadCreated(ctx context.Context, lead *entity.Lead) error {
	s.published = append(s.published, lead)
	return nil
}

func newPublicHandler() (*LeadPublicHandler, *stubLeadStore, *stubPublisher) {
	store := &stubLeadStore{leads: map[string]*entity.Lead{}}
	publisher := &stubPublisher{}
	uc := usecase.NewCreateLeadUseCase(store, stubIDs{next: "generated-id"}, stubClock{t: time.Now()}, publisher)
	return NewLeadPublicHandler(uc), store, publisher
}

func TestHandleCreateAcceptsValidSubmission(t *testing.T) {
	handler, store, publisher := newPublicHandler()

	payload := `{"firstName":"Ana","lastName":"Torres","email":"ana@example.com","message":"Retreat for 15"}`
	req := httptest.NewRequest(http.MethodPost, "/leads", strings.NewReader(payload))
	rec := httptest.NewRecorder()
	handler.HandleCreate(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	var out usecase.CreateLeadOutput
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&out))
	assert.Equal(t, "generated-id", out.ID)

	saved, err := store.Get(context.Background(), "generated-id")
	require.NoError(t, err)
	assert.Equal(t, entity.StatusNew, saved.Status)
	require.Len(t, publisher.published, 1)
	assert.Equal(t, "generated-id", publisher.published[0].ID)
}

func TestHandleCreateRejectsMalformedJSON(t *testing.T) {
	handler, _, _ := newPublicHandler()

	req := httptest.NewRequest(http.MethodPost, "/leads", strings.NewReader("{broken"))
	rec := httptest.NewRecorder()
	handler.HandleCreate(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleCreateReportsValidationFields(t *testing.T) {
	handler, _, publisher := newPublicHandler()

	req := httptest.NewRequest(http.MethodPost, "/leads", strings.NewReader(`{"firstName":"Ana"}`))
	rec := httptest.NewRecorder()
	handler.HandleCreate(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeErrorBody(t, rec)
	assert.Equal(t, "Validation failed", body.Error)
	assert.Contains(t, body.Fields, "lastName")
	assert.Contains(t, body.Fields, "email")
	assert.Contains(t, body.Fields, "message")
	assert.Empty(t, publisher.published)
}

func TestRateLimiterBlocksPastTheWindowLimit(t *testing.T) {
	rl := NewRateLimiter(3, time.Minute)

	for i := 0; i < 3; i++ {
		assert.True(t, rl.Allow("203.0.113.7"))
	}
	assert.False(t, rl.Allow("203.0.113.7"))
	// Other clients are unaffected.
	assert.True(t, rl.Allow("203.0.113.8"))
}
