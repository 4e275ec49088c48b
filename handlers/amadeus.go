package handlers

import (
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"techtonic/services"
)

type AmadeusCheckRequest struct {
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
}

type AmadeusHandler struct {
	client *services.AmadeusClient
}

func NewAmadeusHandler(client *services.AmadeusClient) *AmadeusHandler {
	return &AmadeusHandler{client: client}
}

// Check handles POST /amadeus/check. The body is optional; configured
// credentials are used for missing fields. Secrets are never echoed.
func (h *AmadeusHandler) Check(c *gin.Context) {
	var req AmadeusCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	info, err := h.client.CheckCredentials(c.Request.Context(), req.ClientID, req.ClientSecret)
	if err != nil {
		var perr *services.ProviderError
		switch {
		case errors.Is(err, services.ErrMissingCredentials):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Amadeus client id and secret are required (env or payload)."})
		case errors.As(err, &perr):
			c.JSON(http.StatusUnauthorized, gin.H{"status": "invalid_credentials", "provider": perr.Message})
		default:
			log.Printf("⚠️  Amadeus check failed: %v", err)
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":     "success",
		"token_type": info.TokenType,
		"expires_in": info.ExpiresIn,
		"scope":      info.Scope,
		"source":     h.client.Source(),
	})
}
