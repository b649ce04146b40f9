// Package redirector selects a project's redirect template for a parsed
// ARK URL and renders it by substituting the fixed variable vocabulary.
//
// Templates are authored as simple $identifier placeholders (per the
// project's Non-goals: no richer expression language). raymond, the
// project's Handlebars implementation, does the actual substitution —
// this package translates $identifier tokens to {{{identifier}}} once,
// up front, and fails closed on any variable raymond would otherwise
// silently render as empty.
package redirector

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/aymerick/raymond"

	"github.com/dasch-swiss/ark-resolver/internal/ark/arkerr"
	"github.com/dasch-swiss/ark-resolver/internal/ark/arkformat"
	"github.com/dasch-swiss/ark-resolver/internal/ark/settings"
	"github.com/dasch-swiss/ark-resolver/internal/ark/urlinfo"
)

// unreserved is the RFC 3986 unreserved character set; every other byte in
// a string being embedded into a redirect URL is percent-encoded, including '/'.
const unreserved = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-._~"

var dollarVarPattern = regexp.MustCompile(`\$([A-Za-z_][A-Za-z0-9_]*)`)

// Redirector maps a parsed ARK URL to its absolute redirect target.
type Redirector struct {
	settings *settings.Settings
}

// New builds a Redirector bound to settings, which must outlive it.
func New(s *settings.Settings) *Redirector {
	return &Redirector{settings: s}
}

// Resolve implements the algorithm in the redirect-selection component:
// the bare top-level URL redirects to Settings.TopLevelObjectUrl; any
// other URL selects and substitutes a per-project template.
func (r *Redirector) Resolve(info urlinfo.UrlInfo) (string, error) {
	if !info.HasProject() {
		return r.settings.TopLevelObjectUrl, nil
	}

	project, err := r.settings.Project(info.ProjectID)
	if err != nil {
		return "", err
	}

	env := info.Substitutions()
	env["host"] = project.Host

	if project.UsePhp {
		return r.resolvePhp(info, project, env)
	}
	return r.resolveKnora(info, project, env)
}

func (r *Redirector) resolveKnora(info urlinfo.UrlInfo, project settings.ProjectConfig, env map[string]string) (string, error) {
	var tmpl string
	switch {
	case !info.HasResource():
		tmpl = project.KnoraProjectRedirectUrl
	case !info.HasTimestamp():
		tmpl = project.KnoraResourceRedirectUrl
	default:
		tmpl = project.KnoraResourceVersionRedirectUrl
	}

	resourceIri, err := substitute(project.KnoraResourceIri, env)
	if err != nil {
		return "", err
	}
	env["resource_iri"] = percentEncode(resourceIri)

	projectIri, err := substitute(project.KnoraProjectIri, env)
	if err != nil {
		return "", err
	}
	env["project_iri"] = percentEncode(projectIri)

	return substitute(tmpl, env)
}

func (r *Redirector) resolvePhp(info urlinfo.UrlInfo, project settings.ProjectConfig, env map[string]string) (string, error) {
	var tmpl string
	if !info.HasTimestamp() {
		tmpl = project.PhpResourceRedirectUrl
	} else {
		tmpl = project.PhpResourceVersionRedirectUrl
		// The legacy backend only understands dates, not full timestamps.
		if len(info.Timestamp) >= 8 {
			env["timestamp"] = info.Timestamp[:8]
		}
	}

	// Legacy resource ids are hex-encoded integers; anything else is bad
	// caller input, not a configuration problem.
	resourceIDValue, err := strconv.ParseInt(info.ResourceID, 16, 64)
	if err != nil {
		return "", arkerr.NewMalformedUrlError("resource id is not valid hexadecimal: " + info.ResourceID)
	}
	env["resource_int_id"] = strconv.FormatInt(resourceIDValue/arkformat.LegacyIDFactor-1, 10)

	return substitute(tmpl, env)
}

// substitute translates template's $identifier tokens to {{identifier}}
// and renders it through raymond. Any identifier absent from env is a
// TemplateError rather than a silently-empty substitution.
func substitute(tmpl string, env map[string]string) (string, error) {
	if tmpl == "" {
		return "", arkerr.NewTemplateError("empty template")
	}

	var missing []string
	for _, m := range dollarVarPattern.FindAllStringSubmatch(tmpl, -1) {
		name := m[1]
		if _, ok := env[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return "", arkerr.NewTemplateError("undefined template variable(s): " + strings.Join(missing, ", "))
	}

	// Triple-stash so raymond substitutes values raw; HTML entity escaping
	// would corrupt URLs.
	handlebarsTmpl := dollarVarPattern.ReplaceAllString(tmpl, "{{{$1}}}")

	ctx := make(map[string]any, len(env))
	for k, v := range env {
		ctx[k] = v
	}

	rendered, err := raymond.Render(handlebarsTmpl, ctx)
	if err != nil {
		return "", arkerr.NewTemplateError(err.Error())
	}
	return rendered, nil
}

// percentEncode escapes every byte outside the RFC 3986 unreserved set,
// including '/', so a full IRI can be embedded as a single path segment
// of the redirect URL.
func percentEncode(s string) string {
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if strings.IndexByte(unreserved, c) >= 0 {
			sb.WriteByte(c)
		} else {
			sb.WriteByte('%')
			sb.WriteByte(hexDigitsUpper[c>>4])
			sb.WriteByte(hexDigitsUpper[c&0x0f])
		}
	}
	return sb.String()
}

const hexDigitsUpper = "0123456789ABCDEF"
