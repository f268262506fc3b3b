// internal/app/features/subscribe/handler.go
package subscribe

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"

	uierrors "github.com/dalemusser/folio/internal/app/features/errors"
	"github.com/dalemusser/folio/internal/app/system/limits"
	"github.com/dalemusser/folio/internal/app/system/normalize"
	"github.com/dalemusser/folio/internal/app/system/ratelimit"
	"github.com/dalemusser/folio/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// UserAgent identifies the server to the newsletter provider.
const UserAgent = "Mozilla/5.0 (compatible; NewsletterSubscribe/1.0)"

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// User-facing messages.
const (
	msgInvalidEmail   = "Please enter a valid email."
	msgNotConfigured  = "Subscription service is not configured yet."
	msgUpstreamFailed = "Subscription failed. Please try again."
	msgInvalidRequest = "Invalid request."
)

// ErrUpstream is returned by Forward when the provider rejects the request.
var ErrUpstream = errors.New("subscribe: upstream rejected request")

// Handler forwards newsletter signups to an external provider.
type Handler struct {
	// Endpoint is the provider's subscribe form URL. Empty disables the
	// feature.
	Endpoint string
	Client   *http.Client
	// Limiter throttles submissions; nil disables throttling.
	Limiter *ratelimit.SignupLimiter
	Log     *zap.Logger
}

// NewHandler constructs a subscribe Handler.
func NewHandler(endpoint string, limiter *ratelimit.SignupLimiter, logger *zap.Logger) *Handler {
	return &Handler{
		Endpoint: strings.TrimSpace(endpoint),
		Client:   &http.Client{},
		Limiter:  limiter,
		Log:      logger,
	}
}

type request struct {
	Email string `json:"email"`
}

type response struct {
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

// NormalizeEmail trims and lowercases s and reports whether the result looks
// like an address.
func NormalizeEmail(s string) (string, bool) {
	e := normalize.Email(s)
	return e, emailPattern.MatchString(e)
}

// FormURL returns the provider URL with any trailing slash removed and the
// no-JavaScript flag added when no query is present.
func FormURL(endpoint string) string {
	u := strings.TrimRight(endpoint, "/")
	if !strings.Contains(u, "?") {
		u += "?nojs=true"
	}
	return u
}

// Subscribe handles POST /api/subscribe.
func (h *Handler) Subscribe(w http.ResponseWriter, r *http.Request) {
	var in request
	if err := json.NewDecoder(io.LimitReader(r.Body, limits.MaxSubscribeBody)).Decode(&in); err != nil {
		h.reply(w, http.StatusBadRequest, msgInvalidRequest)
		return
	}
	email, ok := NormalizeEmail(in.Email)
	if !ok {
		h.reply(w, http.StatusBadRequest, msgInvalidEmail)
		return
	}
	if h.Endpoint == "" {
		h.reply(w, http.StatusServiceUnavailable, msgNotConfigured)
		return
	}
	if h.Limiter != nil {
		if ok, reason := h.Limiter.Check(r, email); !ok {
			h.reply(w, http.StatusTooManyRequests, reason)
			return
		}
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Upstream(), h.Log, "newsletter subscribe")
	defer cancel()

	if err := h.Forward(ctx, email); err != nil {
		h.Log.Warn("newsletter subscribe failed", zap.Error(err))
		h.reply(w, http.StatusBadGateway, msgUpstreamFailed)
		return
	}
	uierrors.WriteJSON(w, http.StatusOK, response{OK: true})
}

// Forward posts email to the provider form.
func (h *Handler) Forward(ctx context.Context, email string) error {
	form := url.Values{}
	form.Set("email", email)
	form.Set("source", "subscribe_page")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, FormURL(h.Endpoint), strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", UserAgent)

	resp, err := h.Client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, limits.MaxUpstreamDrain))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: status %d", ErrUpstream, resp.StatusCode)
	}
	return nil
}

func (h *Handler) reply(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Cache-Control", "no-store")
	uierrors.WriteJSON(w, status, response{OK: false, Error: msg})
}
