package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Maca31/IFPhub/config"
	"github.com/Maca31/IFPhub/internal/dto"
)

// ErrNewsletterDisabled: no relay API key configured.
var ErrNewsletterDisabled = errors.New("newsletter relay not configured")

// NewsletterService relays signups to MailerLite. The portal never talks
// to MailerLite from the browser; the API key stays server-side.
type NewsletterService interface {
	Subscribe(ctx context.Context, req *dto.SubscribeRequest) error
}

type newsletterService struct {
	cfg        *config.NewsletterConfig
	httpClient *http.Client
	logger     *zap.Logger
}

// NewNewsletterService creates the NewsletterService.
func NewNewsletterService(cfg *config.NewsletterConfig, logger *zap.Logger) NewsletterService {
	return &newsletterService{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: 15 * time.Second},
		logger:     logger,
	}
}

func (s *newsletterService) Subscribe(ctx context.Context, req *dto.SubscribeRequest) error {
	if s.cfg.APIKey == "" {
		return ErrNewsletterDisabled
	}

	payload := map[string]any{
		"email":       req.Email,
		"resubscribe": true,
	}
	if s.cfg.GroupID != "" {
		payload["groups"] = []string{s.cfg.GroupID}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encoding subscription: %w", err)
	}

	// cfg.APIURL is the API base; subscriptions live under /subscribers.
	endpoint := strings.TrimRight(s.cfg.APIURL, "/") + "/subscribers"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("building subscription request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+s.cfg.APIKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(httpReq)
	if err != nil {
		s.logger.Error("newsletter relay unreachable", zap.Error(err))
		return fmt.Errorf("relaying subscription: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		s.logger.Warn("newsletter relay rejected signup",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", msg),
		)
		return fmt.Errorf("newsletter relay failed: status %d", resp.StatusCode)
	}

	return nil
}
