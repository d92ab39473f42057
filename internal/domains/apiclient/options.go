package apiclient

import (
	"net/http"
)

type Option func(s *Service)

// WithHTTPClient replaces the default transport session used for api calls.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(s *Service) {
		s.httpClient = httpClient
	}
}

// WithBaseURL overrides the base url derived from config hostname and port.
func WithBaseURL(baseURL string) Option {
	return func(s *Service) {
		s.baseURL = baseURL
	}
}
