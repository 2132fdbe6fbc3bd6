// Chat request orchestration: validate, authenticate, resolve tier, gate
// on quota, record usage, compose the prompt, invoke the model, respond.
// Each step is terminal on failure; nothing past a failing gate runs.
package app

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/kbrown517/Veteran-Compass-Corps/app/models"
	"github.com/kbrown517/Veteran-Compass-Corps/prompts"
)

// Chat handles POST /api/chat.
func (s *Server) Chat(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidRequest(c)
		return
	}
	if !validMessages(req.Messages) {
		respondInvalidRequest(c)
		return
	}

	userID, ok := s.resolveIdentity(c.GetHeader("Authorization"))
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error":        "Authentication required",
			"message":      "Please sign in to use the AI Claims Assistant. Create a free account to get 5 free messages per month.",
			"requiresAuth": true,
		})
		return
	}

	ctx := c.Request.Context()
	tier := s.resolveTier(ctx, userID)
	limit := tier.MonthlyLimit()

	// One clock read per request: the gate and the increment below must
	// land in the same month bucket.
	month := monthKey(s.now())
	count := s.readUsage(ctx, userID, month)

	if count >= limit {
		message := "You have used all 5 free AI messages this month. Upgrade to VCC Membership for unlimited access."
		if tier.IsMember() {
			message = "You have reached your monthly AI usage limit. Your limit resets at the start of next month."
		}
		c.JSON(http.StatusTooManyRequests, gin.H{
			"error":           "Usage limit reached",
			"message":         message,
			"usageCount":      count,
			"limit":           limit,
			"isMember":        tier.IsMember(),
			"upgradeRequired": !tier.IsMember(),
		})
		return
	}

	// Increment before the provider call to bound abuse from concurrent
	// in-flight requests. A provider failure after this point still
	// consumes a quota unit; accounting favors resource protection.
	if !s.recordUsage(ctx, userID, month) {
		log.Printf("proceeding without recorded usage user=%s request=%s", userID, requestID(c))
	}
	newCount := count + 1

	systemPrompt := prompts.Compose(tier, req.RetrievedContext)

	reply, err := s.complete(ctx, systemPrompt, req.Messages, tier)
	if err != nil {
		s.respondProviderError(c, err)
		return
	}

	remaining := limit - newCount
	if remaining < 0 {
		remaining = 0
	}
	c.JSON(http.StatusOK, models.ChatResponse{
		Message: reply,
		Usage: models.UsageSummary{
			Count:     newCount,
			Limit:     limit,
			Remaining: remaining,
			IsMember:  tier.IsMember(),
		},
	})
}

// resolveIdentity defers to the configured resolver; a missing resolver
// means every request is unauthenticated, same as a failed verification.
func (s *Server) resolveIdentity(authHeader string) (string, bool) {
	if s.identity == nil {
		return "", false
	}
	return s.identity.Resolve(authHeader)
}

func (s *Server) complete(ctx context.Context, systemPrompt string, messages []models.Message, tier models.Tier) (string, error) {
	if s.completer == nil {
		return "", ErrProviderUnavailable
	}
	return s.completer.Complete(ctx, systemPrompt, messages, tier)
}

func validMessages(messages []models.Message) bool {
	if len(messages) == 0 {
		return false
	}
	for _, m := range messages {
		if m.Role == "" || strings.TrimSpace(m.Content) == "" {
			return false
		}
	}
	return true
}

func respondInvalidRequest(c *gin.Context) {
	c.JSON(http.StatusBadRequest, gin.H{
		"error":   "Invalid request",
		"message": "messages array is required and must not be empty",
	})
}

// respondProviderError maps the provider error taxonomy onto client-facing
// responses. Only the error tag and a short human message ever leave the
// process; details go to the server log.
func (s *Server) respondProviderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrProviderThrottled):
		c.JSON(http.StatusTooManyRequests, gin.H{
			"error":   "Rate limit exceeded",
			"message": "OpenAI API rate limit reached. Please try again in a moment.",
		})
	case errors.Is(err, ErrProviderUnavailable), errors.Is(err, ErrProviderAuth):
		log.Printf("chat provider misconfigured request=%s err=%v", requestID(c), err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Configuration error",
			"message": "OpenAI API authentication failed. Please contact support.",
		})
	default:
		log.Printf("chat completion failed request=%s err=%v", requestID(c), err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Internal server error",
			"message": "An unexpected error occurred. Please try again.",
		})
	}
}
