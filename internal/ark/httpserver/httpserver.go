// Package httpserver exposes the resolver's single catch-all HTTP route.
// It is intentionally stateless: every request is parsed, redirected,
// and responded to with no session state, no cookies, and no logging
// of identifiers beyond what the host's access log already emits.
package httpserver

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/dasch-swiss/ark-resolver/internal/ark/arkerr"
	"github.com/dasch-swiss/ark-resolver/internal/ark/grammar"
	"github.com/dasch-swiss/ark-resolver/internal/ark/redirector"
	"github.com/dasch-swiss/ark-resolver/internal/ark/settings"
)

// Server resolves incoming ARK URLs and redirects or rejects them.
type Server struct {
	settings   *settings.Settings
	grammar    *grammar.Grammar
	redirector *redirector.Redirector
	logger     *slog.Logger
}

// New builds a Server bound to settings.
func New(s *settings.Settings, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		settings:   s,
		grammar:    grammar.New(s.ArkResolverHost, s.ArkNaan),
		redirector: redirector.New(s),
		logger:     logger,
	}
}

// Handler returns the single catch-all handler for GET requests.
func (s *Server) Handler() http.Handler {
	return http.HandlerFunc(s.handle)
}

func (s *Server) handle(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "only GET is supported", http.StatusBadRequest)
		return
	}

	// The incoming request's path already contains "ark:/..."; reconstruct
	// the full URL text the way ArkGrammar expects it.
	arkURL := fmt.Sprintf("http://%s%s", s.settings.ArkResolverHost, r.URL.Path)

	info, err := s.grammar.Parse(arkURL)
	if err != nil {
		s.reject(w, err)
		return
	}

	target, err := s.redirector.Resolve(info)
	if err != nil {
		s.reject(w, err)
		return
	}

	http.Redirect(w, r, target, http.StatusFound)
}

// reject writes a 400 response for a parse or redirect failure. The body
// names the reason but carries no stack trace or internal identifier.
// TemplateError is deliberately not in the named set: it is a configuration
// bug that Settings.Validate catches before the server ever binds, so it
// cannot reach a live server. Anything unexpected still gets a generic 400
// body rather than a 5xx or a leaked internal detail.
func (s *Server) reject(w http.ResponseWriter, err error) {
	s.logger.Debug("rejecting ARK URL", "reason", err.Error())
	switch err.(type) {
	case *arkerr.MalformedUrlError, *arkerr.BadCheckDigitError, *arkerr.UnknownProjectError:
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, "Invalid ARK URL", http.StatusBadRequest)
	}
}
