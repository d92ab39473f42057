package apiclient

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/Fivegen-LLC/pfsense-client/internal/entities"
)

const (
	authScheme      = "Bearer"
	jsonContentType = "application/json"
)

// Service is a pfsense REST API client, every call returns the validated response envelope.
type Service struct {
	client     *resty.Client
	httpClient *http.Client
	baseURL    string
}

func NewService(cfg entities.Config, options ...Option) *Service {
	s := &Service{
		baseURL: cfg.BaseURL(),
	}
	for _, option := range options {
		option(s)
	}

	var client *resty.Client
	if s.httpClient != nil {
		client = resty.NewWithClient(s.httpClient)
	} else {
		client = resty.New()
	}

	// appliance expects both client id and token in one bearer value
	client.
		SetBaseURL(strings.TrimRight(s.baseURL, "/")).
		SetAuthScheme(authScheme).
		SetAuthToken(BuildToken(cfg.ClientID, cfg.ClientToken)).
		SetHeader("Content-Type", jsonContentType).
		SetHeader("Accept", jsonContentType)

	s.client = client
	return s
}

// BuildToken joins client id and client token into bearer token value.
func BuildToken(clientID, clientToken string) string {
	return fmt.Sprintf("%s %s", clientID, clientToken)
}

// DefaultHeaders returns headers applied to every request.
func (s *Service) DefaultHeaders() map[string]string {
	headers := lo.MapEntries(s.client.Header, func(key string, values []string) (string, string) {
		return key, strings.Join(values, ", ")
	})
	headers["Authorization"] = fmt.Sprintf("%s %s", s.client.AuthScheme, s.client.Token)

	return headers
}

func (s *Service) BaseURL() string {
	return s.client.BaseURL
}

func (s *Service) Get(ctx context.Context, path string) (envelope entities.Envelope, err error) {
	if envelope, err = s.do(ctx, resty.MethodGet, path, nil); err != nil {
		return envelope, fmt.Errorf("Get: %w", err)
	}

	return envelope, nil
}

func (s *Service) Post(ctx context.Context, path string, body any) (envelope entities.Envelope, err error) {
	if envelope, err = s.do(ctx, resty.MethodPost, path, body); err != nil {
		return envelope, fmt.Errorf("Post: %w", err)
	}

	return envelope, nil
}

func (s *Service) Put(ctx context.Context, path string, body any) (envelope entities.Envelope, err error) {
	if envelope, err = s.do(ctx, resty.MethodPut, path, body); err != nil {
		return envelope, fmt.Errorf("Put: %w", err)
	}

	return envelope, nil
}

func (s *Service) Patch(ctx context.Context, path string, body any) (envelope entities.Envelope, err error) {
	if envelope, err = s.do(ctx, resty.MethodPatch, path, body); err != nil {
		return envelope, fmt.Errorf("Patch: %w", err)
	}

	return envelope, nil
}

func (s *Service) Delete(ctx context.Context, path string, body any) (envelope entities.Envelope, err error) {
	if envelope, err = s.do(ctx, resty.MethodDelete, path, body); err != nil {
		return envelope, fmt.Errorf("Delete: %w", err)
	}

	return envelope, nil
}

func (s *Service) do(ctx context.Context, method, path string, body any) (envelope entities.Envelope, err error) {
	request := s.client.R().
		SetContext(ctx).
		ForceContentType(jsonContentType).
		SetResult(&envelope).
		SetError(&envelope)
	if body != nil {
		request.SetBody(body)
	}

	resp, err := request.Execute(method, path)
	if err != nil {
		return envelope, fmt.Errorf("do: %w", err)
	}

	log.Debug().
		Str("method", method).
		Str("url", resp.Request.URL).
		Int("status", resp.StatusCode()).
		Int("code", envelope.Code).
		Str("message", envelope.Message).
		Msg("do: api response")

	if err = envelope.Validate(); err != nil {
		return envelope, fmt.Errorf("do: %w", err)
	}

	return envelope, nil
}
