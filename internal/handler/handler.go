package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/stvol/waitline/internal/domain"
	"github.com/stvol/waitline/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

type SessionSvc interface {
	Create(ctx context.Context, input domain.CreateSessionInput) (*domain.Session, error)
	List(ctx context.Context) ([]*domain.Session, error)
	GetDetails(ctx context.Context, id string) (*domain.SessionDetails, error)
	Waitlist(ctx context.Context, id string) ([]*domain.Signup, error)
	UpdateCapacity(ctx context.Context, id string, capacity int) ([]domain.Promotion, error)
	UpdateStatus(ctx context.Context, id string, status domain.SessionStatus) error
}

type AdmissionSvc interface {
	TryAdmit(ctx context.Context, sessionID string, p domain.Participant, amountCents int64, paymentMethod string) (*domain.AdmissionResult, error)
}

type OfferSvc interface {
	PromoteNext(ctx context.Context, sessionID string) (*domain.Promotion, error)
	PromoteMany(ctx context.Context, sessionID string, n int) ([]domain.Promotion, error)
	Claim(ctx context.Context, token string) (*domain.Signup, error)
	SweepSession(ctx context.Context, sessionID string) (domain.SweepResult, error)
}

type CancellationSvc interface {
	CancelSignup(ctx context.Context, signupID string, actor domain.Actor, wantRefund bool) (*domain.CancellationResult, error)
	CancelSession(ctx context.Context, sessionID string) (*domain.BulkCancellationResult, error)
}

type Handler struct {
	sessionService      SessionSvc
	admissionService    AdmissionSvc
	offerService        OfferSvc
	cancellationService CancellationSvc
}

func NewHandler(
	sessionService SessionSvc,
	admissionService AdmissionSvc,
	offerService OfferSvc,
	cancellationService CancellationSvc,
) *Handler {
	return &Handler{
		sessionService:      sessionService,
		admissionService:    admissionService,
		offerService:        offerService,
		cancellationService: cancellationService,
	}
}

// Sessions

func (h *Handler) CreateSession(c *ginext.Context) {
	var req dto.CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	startsAt, err := time.Parse(time.RFC3339, req.StartsAt)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid starts_at format, expected RFC3339",
		})
		return
	}

	input := domain.CreateSessionInput{
		Title:          req.Title,
		Description:    req.Description,
		StartsAt:       startsAt,
		Capacity:       req.Capacity,
		PriceCents:     req.PriceCents,
		Currency:       req.Currency,
		OrganizerEmail: req.OrganizerEmail,
	}

	session, err := h.sessionService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToSessionResponse(session))
}

func (h *Handler) ListSessions(c *ginext.Context) {
	sessions, err := h.sessionService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.SessionResponse, 0, len(sessions))
	for _, s := range sessions {
		resp = append(resp, dto.ToSessionResponse(s))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetSession(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid session id"})
		return
	}

	details, err := h.sessionService.GetDetails(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSessionDetailsResponse(details))
}

func (h *Handler) UpdateCapacity(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid session id"})
		return
	}

	var req dto.UpdateCapacityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	promotions, err := h.sessionService.UpdateCapacity(c.Request.Context(), id, *req.Capacity)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.PromotionResponse, 0, len(promotions))
	for _, p := range promotions {
		resp = append(resp, dto.ToPromotionResponse(p))
	}

	c.JSON(http.StatusOK, ginext.H{"capacity": *req.Capacity, "promotions": resp})
}

func (h *Handler) UpdateSessionStatus(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid session id"})
		return
	}

	var req dto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.sessionService.UpdateStatus(c.Request.Context(), id, domain.SessionStatus(req.Status)); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": req.Status})
}

func (h *Handler) CancelSession(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid session id"})
		return
	}

	result, err := h.cancellationService.CancelSession(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.BulkCancellationResponse{
		RefundsProcessed:  result.RefundsProcessed,
		RefundsFailed:     result.RefundsFailed,
		NotificationsSent: result.NotificationsSent,
	})
}

// Signups

func (h *Handler) CreateSignup(c *ginext.Context) {
	sessionID := c.Param("id")
	if _, err := uuid.Parse(sessionID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid session id"})
		return
	}

	var req dto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	participant := domain.Participant{
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		AccountID: req.AccountID,
	}

	result, err := h.admissionService.TryAdmit(
		c.Request.Context(), sessionID, participant, req.AmountCents, req.PaymentMethod,
	)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToAdmissionResponse(result))
}

func (h *Handler) GetWaitlist(c *ginext.Context) {
	sessionID := c.Param("id")
	if _, err := uuid.Parse(sessionID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid session id"})
		return
	}

	entries, err := h.sessionService.Waitlist(c.Request.Context(), sessionID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.SignupResponse, 0, len(entries))
	for _, e := range entries {
		resp = append(resp, dto.ToSignupResponse(e))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) CancelSignup(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid signup id"})
		return
	}

	var req dto.CancelSignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	actor := domain.Actor{
		Operator:    req.Operator,
		AccountID:   req.AccountID,
		ManageToken: req.ManageToken,
	}

	result, err := h.cancellationService.CancelSignup(c.Request.Context(), id, actor, req.WantRefund)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCancellationResponse(result))
}

// Offers

func (h *Handler) Promote(c *ginext.Context) {
	sessionID := c.Param("id")
	if _, err := uuid.Parse(sessionID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid session id"})
		return
	}

	n := 1
	if raw := c.Query("n"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "n must be a positive integer"})
			return
		}
		n = parsed
	}

	promotions, err := h.offerService.PromoteMany(c.Request.Context(), sessionID, n)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.PromotionResponse, 0, len(promotions))
	for _, p := range promotions {
		resp = append(resp, dto.ToPromotionResponse(p))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) Sweep(c *ginext.Context) {
	sessionID := c.Param("id")
	if _, err := uuid.Parse(sessionID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid session id"})
		return
	}

	result, err := h.offerService.SweepSession(c.Request.Context(), sessionID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SweepResponse{ExpiredCount: result.ExpiredCount})
}

func (h *Handler) ClaimOffer(c *ginext.Context) {
	token := c.Param("token")
	if token == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "missing claim token"})
		return
	}

	signup, err := h.offerService.Claim(c.Request.Context(), token)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSignupResponse(signup))
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrSessionNotFound),
		errors.Is(err, domain.ErrSignupNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrNoAvailableSpots),
		errors.Is(err, domain.ErrSessionNotBookable),
		errors.Is(err, domain.ErrAlreadyCancelled),
		errors.Is(err, domain.ErrOfferInvalid),
		errors.Is(err, domain.ErrOfferExpired),
		errors.Is(err, domain.ErrNoEligibleEntries):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrPaymentAuthorization),
		errors.Is(err, domain.ErrRefundFailed):
		c.JSON(http.StatusBadGateway, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
