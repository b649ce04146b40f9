// Package urlinfo defines the value object produced by parsing an ARK URL.
package urlinfo

import "strconv"

// UrlInfo carries the semantic content of a parsed ARK URL: its version,
// and, if present, the project id, resource id, and version timestamp.
//
// A zero-value UrlInfo (ProjectID absent) represents the bare top-level
// ark:/NAAN/version URL. Invariant: a non-empty Timestamp never appears
// without a ResourceID (enforced by the grammar, not by this type).
type UrlInfo struct {
	URLVersion int
	ProjectID  string
	ResourceID string
	Timestamp  string
}

// HasProject reports whether the URL named a project.
func (u UrlInfo) HasProject() bool { return u.ProjectID != "" }

// HasResource reports whether the URL named a resource within its project.
func (u UrlInfo) HasResource() bool { return u.ResourceID != "" }

// HasTimestamp reports whether the URL carried a version timestamp.
func (u UrlInfo) HasTimestamp() bool { return u.Timestamp != "" }

// Substitutions returns the fixed variable vocabulary available to redirect
// templates from this UrlInfo: url_version, project_id, resource_id, timestamp.
func (u UrlInfo) Substitutions() map[string]string {
	return map[string]string{
		"url_version": strconv.Itoa(u.URLVersion),
		"project_id":  u.ProjectID,
		"resource_id": u.ResourceID,
		"timestamp":   u.Timestamp,
	}
}
