package api

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"time"
)

const webhookTypeBackendUpdate = "backend.update"

type webhookPayload struct {
	Type         string `json:"type"`
	Version      string `json:"version"`
	FetchNewSpec bool   `json:"fetchNewSpec"`
}

// webhookBackendUpdate handles backend change notifications:
// signature → payload type → invalidate, failing closed at each step.
// The optional eager refetch never fails the webhook, invalidation
// already happened and the next page view refetches anyway.
func webhookBackendUpdate(secret string) interface{} {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) {

		body, err := io.ReadAll(r.Body)
		if err != nil {
			writeWebhookError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		signature := r.Header.Get("x-webhook-signature")
		if signature == "" {
			writeWebhookError(w, http.StatusUnauthorized, "Missing signature")
			return
		}

		mac := hmac.New(sha256.New, []byte(secret))
		mac.Write(body)
		expected := hex.EncodeToString(mac.Sum(nil))

		if !hmac.Equal([]byte(signature), []byte(expected)) {
			writeWebhookError(w, http.StatusUnauthorized, "Invalid signature")
			return
		}

		payload := webhookPayload{}
		err = json.Unmarshal(body, &payload)
		if err != nil {
			writeWebhookError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		if payload.Type != webhookTypeBackendUpdate {
			writeWebhookError(w, http.StatusBadRequest, "Invalid webhook type")
			return
		}

		s := GetServicer(ctx)

		paths := s.Invalidate(payload.Version)
		log.Println("webhook: revalidated", paths)

		response := map[string]any{
			"message":     "Documentation updated successfully",
			"revalidated": true,
			"timestamp":   time.Now().UTC().Format(time.RFC3339),
		}

		if payload.FetchNewSpec {
			err := s.Refresh(ctx, payload.Version)
			if err != nil {
				// non-fatal, invalidation already succeeded
				log.Println("webhook: failed to fetch new API spec:", err.Error())
				response["warning"] = "failed to fetch new API spec"
			}
		}

		json.NewEncoder(w).Encode(response)
	}
}

func writeWebhookError(w http.ResponseWriter, status int, message string) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]any{
		"error": message,
	})
}
