package service

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	apperrors "github.com/chainsafe/claim-registry/pkg/app/errors"
	apphttp "github.com/chainsafe/claim-registry/pkg/app/http"
	"github.com/chainsafe/claim-registry/pkg/claim"
)

const maxBodyBytes = 1 << 20

// HTTP wraps the Service to provide HTTP endpoints
type HTTP struct {
	service Service
	logger  *zap.Logger
}

// RegisterRoutes registers the claim endpoints on the given chi router
func RegisterRoutes(r chi.Router, service Service, logger *zap.Logger) {
	h := &HTTP{
		service: service,
		logger:  logger,
	}

	r.Route("/claims", func(r chi.Router) {
		r.Post("/", h.handle(h.create))
		r.Get("/{fingerprint}", h.handle(h.get))
		r.Delete("/{fingerprint}", h.handle(h.revoke))
		r.Post("/{fingerprint}/transfer", h.handle(h.transfer))
	})
}

// handle logs failures the client did not cause before they are rendered.
func (h *HTTP) handle(fn apphttp.HandlerFunc) http.HandlerFunc {
	return apphttp.HandleError(func(w http.ResponseWriter, r *http.Request) error {
		err := fn(w, r)
		if err != nil && apperrors.IsInternalError(err) {
			h.logger.Error("Claim request failed",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Error(err),
			)
		}
		return err
	})
}

func (h *HTTP) create(w http.ResponseWriter, r *http.Request) error {
	var req claim.CreateRequest
	if err := decodeBody(r, &req); err != nil {
		return err
	}
	req.Credentials = credentials(r, req.Credentials)

	resp, err := h.service.CreateClaim(r.Context(), &req)
	if err != nil {
		return err
	}

	w.Header().Set("Location", "/claims/"+resp.Fingerprint)
	h.writeJSON(w, http.StatusCreated, resp)
	return nil
}

func (h *HTTP) get(w http.ResponseWriter, r *http.Request) error {
	resp, err := h.service.GetClaim(r.Context(), chi.URLParam(r, "fingerprint"))
	if err != nil {
		return err
	}

	h.writeJSON(w, http.StatusOK, resp)
	return nil
}

func (h *HTTP) revoke(w http.ResponseWriter, r *http.Request) error {
	var req claim.RevokeRequest
	if err := decodeBody(r, &req); err != nil {
		return err
	}
	req.Fingerprint = chi.URLParam(r, "fingerprint")
	req.Credentials = credentials(r, req.Credentials)

	if err := h.service.RevokeClaim(r.Context(), &req); err != nil {
		return err
	}

	h.writeJSON(w, http.StatusOK, map[string]string{"fingerprint": req.Fingerprint, "status": "revoked"})
	return nil
}

func (h *HTTP) transfer(w http.ResponseWriter, r *http.Request) error {
	var req claim.TransferRequest
	if err := decodeBody(r, &req); err != nil {
		return err
	}
	req.Fingerprint = chi.URLParam(r, "fingerprint")
	req.Credentials = credentials(r, req.Credentials)

	resp, err := h.service.TransferClaim(r.Context(), &req)
	if err != nil {
		return err
	}

	h.writeJSON(w, http.StatusOK, resp)
	return nil
}

// decodeBody reads an optional JSON body into dst. An empty body leaves dst untouched.
func decodeBody(r *http.Request, dst any) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		return apperrors.BadRequestError(err, "failed to read request")
	}
	if len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return apperrors.BadRequestError(err, "invalid JSON")
	}
	return nil
}

// credentials falls back to headers when the body carried no signature.
func credentials(r *http.Request, c claim.Credentials) claim.Credentials {
	if token, ok := bearerToken(r); ok {
		c.BearerToken = token
	}
	if c.Signature == "" {
		c.Signature = r.Header.Get("X-Signature")
	}
	return c
}

func bearerToken(r *http.Request) (string, bool) {
	const prefix = "Bearer "
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, prefix) {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(header, prefix))
	return token, token != ""
}

func (h *HTTP) writeJSON(w http.ResponseWriter, status int, data any) {
	if err := apphttp.WriteJSON(w, status, data); err != nil {
		h.logger.Warn("Failed to write response", zap.Error(err))
	}
}
