package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stvol/waitline/internal/domain"
	"github.com/stvol/waitline/internal/handler/dto"
	hmocks "github.com/stvol/waitline/internal/handler/mocks"
	"github.com/wb-go/wbf/ginext"
)

func setupRouter(t *testing.T) (*hmocks.MockSessionSvc, *hmocks.MockAdmissionSvc, *hmocks.MockOfferSvc, *hmocks.MockCancellationSvc, http.Handler) {
	t.Helper()
	sessionSvc := hmocks.NewMockSessionSvc(t)
	admissionSvc := hmocks.NewMockAdmissionSvc(t)
	offerSvc := hmocks.NewMockOfferSvc(t)
	cancellationSvc := hmocks.NewMockCancellationSvc(t)

	h := NewHandler(sessionSvc, admissionSvc, offerSvc, cancellationSvc)

	r := ginext.New("test")
	api := r.Group("/api")
	{
		api.POST("/sessions", h.CreateSession)
		api.GET("/sessions", h.ListSessions)
		api.GET("/sessions/:id", h.GetSession)
		api.PATCH("/sessions/:id/capacity", h.UpdateCapacity)
		api.PATCH("/sessions/:id/status", h.UpdateSessionStatus)
		api.POST("/sessions/:id/cancel", h.CancelSession)
		api.POST("/sessions/:id/signups", h.CreateSignup)
		api.GET("/sessions/:id/waitlist", h.GetWaitlist)
		api.POST("/signups/:id/cancel", h.CancelSignup)
		api.POST("/sessions/:id/promote", h.Promote)
		api.POST("/sessions/:id/sweep", h.Sweep)
		api.POST("/claims/:token", h.ClaimOffer)
	}

	return sessionSvc, admissionSvc, offerSvc, cancellationSvc, r
}

// --- Sessions ---

func TestHandler_CreateSession_Success(t *testing.T) {
	sessionSvc, _, _, _, r := setupRouter(t)

	startsAt := time.Now().Add(24 * time.Hour)
	session := &domain.Session{
		ID:         uuid.New().String(),
		Title:      "Yoga",
		StartsAt:   startsAt,
		Capacity:   10,
		PriceCents: 2500,
		Currency:   "eur",
		Status:     domain.SessionStatusUpcoming,
		CreatedAt:  time.Now(),
	}

	sessionSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(session, nil)

	body, _ := json.Marshal(dto.CreateSessionRequest{
		Title:      "Yoga",
		StartsAt:   startsAt.Format(time.RFC3339),
		Capacity:   10,
		PriceCents: 2500,
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/sessions", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.SessionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Yoga", resp.Title)
	assert.Equal(t, "upcoming", resp.Status)
}

func TestHandler_CreateSession_BadRequest(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	body := []byte(`{"title":""}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/sessions", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateSession_InvalidDate(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	body := []byte(`{"title":"Yoga","starts_at":"not-a-date","capacity":10}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/sessions", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetSession_Success(t *testing.T) {
	sessionSvc, _, _, _, r := setupRouter(t)

	sessionID := uuid.New().String()
	details := &domain.SessionDetails{
		Session:  domain.Session{ID: sessionID, Title: "Yoga", Capacity: 10, StartsAt: time.Now(), CreatedAt: time.Now()},
		Snapshot: domain.CapacitySnapshot{Capacity: 10, Confirmed: 4, PendingOffers: 1, Waitlisted: 2},
		Signups:  []domain.Signup{},
	}

	sessionSvc.EXPECT().GetDetails(mock.Anything, sessionID).Return(details, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/sessions/"+sessionID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.SessionDetailsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, sessionID, resp.Session.ID)
	assert.Equal(t, 4, resp.Snapshot.Confirmed)
	assert.Equal(t, 1, resp.Snapshot.PendingOffers)
}

func TestHandler_GetSession_NotFound(t *testing.T) {
	sessionSvc, _, _, _, r := setupRouter(t)

	sessionID := uuid.New().String()
	sessionSvc.EXPECT().GetDetails(mock.Anything, sessionID).Return(nil, domain.ErrSessionNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/sessions/"+sessionID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_GetSession_InvalidID(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/sessions/not-a-uuid", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_UpdateCapacity_Success(t *testing.T) {
	sessionSvc, _, _, _, r := setupRouter(t)

	sessionID := uuid.New().String()
	sessionSvc.EXPECT().UpdateCapacity(mock.Anything, sessionID, 12).Return([]domain.Promotion{
		{SignupID: uuid.New().String(), ClaimToken: "tok", ExpiresAt: time.Now().Add(24 * time.Hour)},
	}, nil)

	body := []byte(`{"capacity":12}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/sessions/"+sessionID+"/capacity", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_UpdateCapacity_MissingBody(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	sessionID := uuid.New().String()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/sessions/"+sessionID+"/capacity", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_UpdateSessionStatus_Rejected(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	sessionID := uuid.New().String()
	body := []byte(`{"status":"cancelled"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/sessions/"+sessionID+"/status", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	// Cancellation has a dedicated endpoint; the binding rejects it here.
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CancelSession_Success(t *testing.T) {
	_, _, _, cancellationSvc, r := setupRouter(t)

	sessionID := uuid.New().String()
	cancellationSvc.EXPECT().CancelSession(mock.Anything, sessionID).Return(&domain.BulkCancellationResult{
		RefundsProcessed:  4,
		RefundsFailed:     1,
		NotificationsSent: 5,
	}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/sessions/"+sessionID+"/cancel", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.BulkCancellationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 4, resp.RefundsProcessed)
	assert.Equal(t, 1, resp.RefundsFailed)
	assert.Equal(t, 5, resp.NotificationsSent)
}

// --- Signups ---

func TestHandler_CreateSignup_Admitted(t *testing.T) {
	_, admissionSvc, _, _, r := setupRouter(t)

	sessionID := uuid.New().String()
	signup := &domain.Signup{
		ID:            uuid.New().String(),
		SessionID:     sessionID,
		Name:          "Alice",
		Email:         "alice@example.com",
		Status:        domain.SignupStatusConfirmed,
		PaymentStatus: domain.PaymentStatusPaid,
		AmountCents:   2500,
		ManageToken:   "mtok_1",
		CreatedAt:     time.Now(),
	}

	admissionSvc.EXPECT().
		TryAdmit(mock.Anything, sessionID, mock.Anything, int64(0), "pm_card").
		Return(&domain.AdmissionResult{Signup: signup, Admitted: true}, nil)

	body, _ := json.Marshal(dto.SignupRequest{
		Name:          "Alice",
		Email:         "alice@example.com",
		PaymentMethod: "pm_card",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/sessions/"+sessionID+"/signups", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.AdmissionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Admitted)
	assert.Equal(t, "mtok_1", resp.ManageToken)
}

func TestHandler_CreateSignup_Waitlisted(t *testing.T) {
	_, admissionSvc, _, _, r := setupRouter(t)

	sessionID := uuid.New().String()
	pos := 3
	signup := &domain.Signup{
		ID:               uuid.New().String(),
		SessionID:        sessionID,
		Name:             "Bob",
		Email:            "bob@example.com",
		Status:           domain.SignupStatusWaitlist,
		PaymentStatus:    domain.PaymentStatusUnpaid,
		WaitlistPosition: &pos,
		CreatedAt:        time.Now(),
	}

	admissionSvc.EXPECT().
		TryAdmit(mock.Anything, sessionID, mock.Anything, int64(0), "").
		Return(&domain.AdmissionResult{Signup: signup, Admitted: false, Position: 3}, nil)

	body, _ := json.Marshal(dto.SignupRequest{Name: "Bob", Email: "bob@example.com"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/sessions/"+sessionID+"/signups", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.AdmissionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Admitted)
	assert.Equal(t, 3, resp.Position)
}

func TestHandler_CreateSignup_PaymentDeclined(t *testing.T) {
	_, admissionSvc, _, _, r := setupRouter(t)

	sessionID := uuid.New().String()
	admissionSvc.EXPECT().
		TryAdmit(mock.Anything, sessionID, mock.Anything, int64(0), "pm_bad").
		Return(nil, domain.ErrPaymentAuthorization)

	body, _ := json.Marshal(dto.SignupRequest{
		Name:          "Alice",
		Email:         "alice@example.com",
		PaymentMethod: "pm_bad",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/sessions/"+sessionID+"/signups", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestHandler_CreateSignup_SessionNotBookable(t *testing.T) {
	_, admissionSvc, _, _, r := setupRouter(t)

	sessionID := uuid.New().String()
	admissionSvc.EXPECT().
		TryAdmit(mock.Anything, sessionID, mock.Anything, int64(0), "").
		Return(nil, domain.ErrSessionNotBookable)

	body, _ := json.Marshal(dto.SignupRequest{Name: "Alice", Email: "alice@example.com"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/sessions/"+sessionID+"/signups", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_CancelSignup_Success(t *testing.T) {
	_, _, _, cancellationSvc, r := setupRouter(t)

	signupID := uuid.New().String()
	signup := &domain.Signup{
		ID:            signupID,
		SessionID:     uuid.New().String(),
		Status:        domain.SignupStatusCancelled,
		PaymentStatus: domain.PaymentStatusRefunded,
		CreatedAt:     time.Now(),
	}

	cancellationSvc.EXPECT().
		CancelSignup(mock.Anything, signupID, domain.Actor{ManageToken: "mtok_1"}, false).
		Return(&domain.CancellationResult{Signup: signup, Refunded: true}, nil)

	body, _ := json.Marshal(dto.CancelSignupRequest{ManageToken: "mtok_1"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/signups/"+signupID+"/cancel", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.CancellationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Refunded)
	assert.Equal(t, "cancelled", resp.Signup.Status)
}

func TestHandler_CancelSignup_Forbidden(t *testing.T) {
	_, _, _, cancellationSvc, r := setupRouter(t)

	signupID := uuid.New().String()
	cancellationSvc.EXPECT().
		CancelSignup(mock.Anything, signupID, mock.Anything, false).
		Return(nil, domain.ErrForbidden)

	body, _ := json.Marshal(dto.CancelSignupRequest{ManageToken: "wrong"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/signups/"+signupID+"/cancel", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_CancelSignup_RefundFailed(t *testing.T) {
	_, _, _, cancellationSvc, r := setupRouter(t)

	signupID := uuid.New().String()
	cancellationSvc.EXPECT().
		CancelSignup(mock.Anything, signupID, mock.Anything, false).
		Return(nil, domain.ErrRefundFailed)

	body, _ := json.Marshal(dto.CancelSignupRequest{ManageToken: "mtok_1"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/signups/"+signupID+"/cancel", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestHandler_GetWaitlist_Success(t *testing.T) {
	sessionSvc, _, _, _, r := setupRouter(t)

	sessionID := uuid.New().String()
	pos := 1
	sessionSvc.EXPECT().Waitlist(mock.Anything, sessionID).Return([]*domain.Signup{
		{ID: uuid.New().String(), SessionID: sessionID, Status: domain.SignupStatusWaitlist, WaitlistPosition: &pos, CreatedAt: time.Now()},
	}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/sessions/"+sessionID+"/waitlist", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.SignupResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "waitlist", resp[0].Status)
}

// --- Offers ---

func TestHandler_Promote_Success(t *testing.T) {
	_, _, offerSvc, _, r := setupRouter(t)

	sessionID := uuid.New().String()
	offerSvc.EXPECT().PromoteMany(mock.Anything, sessionID, 2).Return([]domain.Promotion{
		{SignupID: uuid.New().String(), ClaimToken: "tok1", ExpiresAt: time.Now().Add(24 * time.Hour)},
		{SignupID: uuid.New().String(), ClaimToken: "tok2", ExpiresAt: time.Now().Add(24 * time.Hour)},
	}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/sessions/"+sessionID+"/promote?n=2", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.PromotionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}

func TestHandler_Promote_BadCount(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	sessionID := uuid.New().String()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/sessions/"+sessionID+"/promote?n=zero", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_Sweep_Success(t *testing.T) {
	_, _, offerSvc, _, r := setupRouter(t)

	sessionID := uuid.New().String()
	offerSvc.EXPECT().SweepSession(mock.Anything, sessionID).Return(domain.SweepResult{ExpiredCount: 2}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/sessions/"+sessionID+"/sweep", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.SweepResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.ExpiredCount)
}

func TestHandler_ClaimOffer_Success(t *testing.T) {
	_, _, offerSvc, _, r := setupRouter(t)

	signup := &domain.Signup{
		ID:            uuid.New().String(),
		SessionID:     uuid.New().String(),
		Status:        domain.SignupStatusConfirmed,
		PaymentStatus: domain.PaymentStatusUnpaid,
		CreatedAt:     time.Now(),
	}
	offerSvc.EXPECT().Claim(mock.Anything, "tok_1").Return(signup, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/claims/tok_1", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.SignupResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "confirmed", resp.Status)
}

func TestHandler_ClaimOffer_Expired(t *testing.T) {
	_, _, offerSvc, _, r := setupRouter(t)

	offerSvc.EXPECT().Claim(mock.Anything, "tok_old").Return(nil, domain.ErrOfferExpired)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/claims/tok_old", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_ClaimOffer_Invalid(t *testing.T) {
	_, _, offerSvc, _, r := setupRouter(t)

	offerSvc.EXPECT().Claim(mock.Anything, "nope").Return(nil, domain.ErrOfferInvalid)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/claims/nope", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}
