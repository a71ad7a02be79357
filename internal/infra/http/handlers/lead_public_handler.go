package handlers

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/tropicoretreats/leads-api/internal/infra/http/middleware"
	"github.com/tropicoretreats/leads-api/internal/usecase"
)

// LeadPublicHandler exposes the contact-form capture endpoint. It is the
// only unauthenticated surface, so submissions are rate limited per IP.
type LeadPublicHandler struct {
	createLead  *usecase.CreateLeadUseCase
	rateLimiter *RateLimiter
}

func NewLeadPublicHandler(createLead *usecase.CreateLeadUseCase) *LeadPublicHandler {
	return &LeadPublicHandler{
		createLead:  createLead,
		rateLimiter: NewRateLimiter(10, time.Minute), // 10 req/min per IP
	}
}

// HandleCreate (POST /leads) receives a contact-form submission.
func (h *LeadPublicHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	clientIP := getClientIP(r)
	if !h.rateLimiter.Allow(clientIP) {
		writeJSON(w, http.StatusTooManyRequests, errorResponse{
			Error: "Too many requests. Please try again later.",
		})
		return
	}

	var input usecase.CreateLeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid JSON in request body"})
		return
	}

	output, err := h.createLead.Execute(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}

	middleware.RecordLeadCreated()
	writeJSON(w, http.StatusCreated, output)
}

func getClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		return xff
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}
	return r.RemoteAddr
}

type RateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    int
	window   time.Duration
}

type visitor struct {
	count     int
	lastReset time.Time
}

func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		visitors: make(map[string]*visitor),
		limit:    limit,
		window:   window,
	}

	go rl.cleanup()
	return rl
}

func (rl *RateLimiter) Allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	v, exists := rl.visitors[ip]
	now := time.Now()

	if !exists {
		rl.visitors[ip] = &visitor{count: 1, lastReset: now}
		return true
	}

	if now.Sub(v.lastReset) > rl.window {
		v.count = 1
		v.lastReset = now
		return true
	}

	v.count++
	return v.count <= rl.limit
}

func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		rl.mu.Lock()
		now := time.Now()
		for ip, v := range rl.visitors {
			if now.Sub(v.lastReset) > rl.window*2 {
				delete(rl.visitors, ip)
			}
		}
		rl.mu.Unlock()
	}
}
