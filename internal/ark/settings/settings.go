// Package settings loads the resolver's configuration: the resolver host,
// naming-authority number, default redirect, local server bind address,
// and a per-project table of redirect templates.
//
// The on-disk format is an INI file with a DEFAULT section holding the
// top-level keys and one section per project id. A project section that
// omits a key inherits it from DEFAULT.
package settings

import (
	"fmt"
	"regexp"

	"gopkg.in/ini.v1"

	"github.com/dasch-swiss/ark-resolver/internal/ark/arkerr"
)

// ProjectConfig holds the redirect templates for one project.
type ProjectConfig struct {
	Host   string
	UsePhp bool

	// Native-flavor templates, used when UsePhp is false.
	KnoraProjectRedirectUrl         string
	KnoraResourceRedirectUrl        string
	KnoraResourceVersionRedirectUrl string
	KnoraResourceIri                string
	KnoraProjectIri                 string

	// Legacy-flavor templates, used when UsePhp is true.
	PhpResourceRedirectUrl        string
	PhpResourceVersionRedirectUrl string
}

// Settings is the resolver's top-level, read-only configuration.
// Constructed once at startup and safe to share across concurrent requests.
type Settings struct {
	ArkResolverHost   string
	ArkNaan           string
	TopLevelObjectUrl string
	LocalServerHost   string
	LocalServerPort   string
	Projects          map[string]ProjectConfig
}

// Project looks up the configuration for projectID.
func (s *Settings) Project(projectID string) (ProjectConfig, error) {
	cfg, ok := s.Projects[projectID]
	if !ok {
		return ProjectConfig{}, arkerr.NewUnknownProjectError(projectID)
	}
	return cfg, nil
}

var templateVarPattern = regexp.MustCompile(`\$([A-Za-z_][A-Za-z0-9_]*)`)

// baseTemplateVars are the variables every redirect template may reference.
var baseTemplateVars = []string{"host", "url_version", "project_id", "resource_id", "timestamp"}

// Validate checks every project's templates against the fixed variable
// vocabulary for its flavor. The vocabulary is fully known without any
// request: native IRI templates see only the base variables, native
// redirect templates additionally see the computed IRIs, and legacy
// templates additionally see the numeric resource id. A template that is
// empty or references anything else is a configuration error; callers
// must treat it as fatal before serving requests.
func (s *Settings) Validate() error {
	for projectID, project := range s.Projects {
		if err := validateProject(projectID, project); err != nil {
			return err
		}
	}
	return nil
}

type templateCheck struct {
	key   string
	text  string
	extra []string
}

func validateProject(projectID string, project ProjectConfig) error {
	var checks []templateCheck
	if project.UsePhp {
		legacy := []string{"resource_int_id"}
		checks = []templateCheck{
			{keyPhpResourceRedirectUrl, project.PhpResourceRedirectUrl, legacy},
			{keyPhpResourceVersionRedirectUrl, project.PhpResourceVersionRedirectUrl, legacy},
		}
	} else {
		iris := []string{"resource_iri", "project_iri"}
		checks = []templateCheck{
			{keyKnoraResourceIri, project.KnoraResourceIri, nil},
			{keyKnoraProjectIri, project.KnoraProjectIri, nil},
			{keyKnoraProjectRedirectUrl, project.KnoraProjectRedirectUrl, iris},
			{keyKnoraResourceRedirectUrl, project.KnoraResourceRedirectUrl, iris},
			{keyKnoraResourceVersionRedirectUrl, project.KnoraResourceVersionRedirectUrl, iris},
		}
	}

	for _, check := range checks {
		if check.text == "" {
			return arkerr.NewTemplateError(fmt.Sprintf("project %s: %s is missing", projectID, check.key))
		}
		allowed := make(map[string]bool, len(baseTemplateVars)+len(check.extra))
		for _, name := range baseTemplateVars {
			allowed[name] = true
		}
		for _, name := range check.extra {
			allowed[name] = true
		}
		for _, match := range templateVarPattern.FindAllStringSubmatch(check.text, -1) {
			if !allowed[match[1]] {
				return arkerr.NewTemplateError(fmt.Sprintf("project %s: %s references undefined variable $%s", projectID, check.key, match[1]))
			}
		}
	}
	return nil
}

const (
	keyArkResolverHost   = "ArkResolverHost"
	keyArkNaan           = "ArkNaan"
	keyTopLevelObjectUrl = "TopLevelObjectUrl"
	keyLocalServerHost   = "LocalServerHost"
	keyLocalServerPort   = "LocalServerPort"

	keyHost   = "Host"
	keyUsePhp = "UsePhp"

	keyKnoraProjectRedirectUrl         = "KnoraProjectRedirectUrl"
	keyKnoraResourceRedirectUrl        = "KnoraResourceRedirectUrl"
	keyKnoraResourceVersionRedirectUrl = "KnoraResourceVersionRedirectUrl"
	keyKnoraResourceIri                = "KnoraResourceIri"
	keyKnoraProjectIri                 = "KnoraProjectIri"

	keyPhpResourceRedirectUrl        = "PhpResourceRedirectUrl"
	keyPhpResourceVersionRedirectUrl = "PhpResourceVersionRedirectUrl"
)

// Load reads and parses an ARK config file at path.
// It is opened and fully read exactly once; the handle is released before
// this function returns.
func Load(path string) (*Settings, error) {
	file, err := ini.LoadSources(ini.LoadOptions{AllowShadows: false}, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	defaultSection := file.Section(ini.DefaultSection)

	top := &Settings{
		ArkResolverHost:   defaultSection.Key(keyArkResolverHost).String(),
		ArkNaan:           defaultSection.Key(keyArkNaan).String(),
		TopLevelObjectUrl: defaultSection.Key(keyTopLevelObjectUrl).String(),
		LocalServerHost:   defaultSection.Key(keyLocalServerHost).String(),
		LocalServerPort:   defaultSection.Key(keyLocalServerPort).String(),
		Projects:          map[string]ProjectConfig{},
	}

	for _, section := range file.Sections() {
		name := section.Name()
		if name == ini.DefaultSection {
			continue
		}
		top.Projects[name] = ProjectConfig{
			Host:                            lookup(section, defaultSection, keyHost),
			UsePhp:                          lookupBool(section, defaultSection, keyUsePhp),
			KnoraProjectRedirectUrl:         lookup(section, defaultSection, keyKnoraProjectRedirectUrl),
			KnoraResourceRedirectUrl:        lookup(section, defaultSection, keyKnoraResourceRedirectUrl),
			KnoraResourceVersionRedirectUrl: lookup(section, defaultSection, keyKnoraResourceVersionRedirectUrl),
			KnoraResourceIri:                lookup(section, defaultSection, keyKnoraResourceIri),
			KnoraProjectIri:                 lookup(section, defaultSection, keyKnoraProjectIri),
			PhpResourceRedirectUrl:          lookup(section, defaultSection, keyPhpResourceRedirectUrl),
			PhpResourceVersionRedirectUrl:   lookup(section, defaultSection, keyPhpResourceVersionRedirectUrl),
		}
	}

	return top, nil
}

// lookup reads key from section, falling back to defaultSection if section
// does not define it.
func lookup(section, defaultSection *ini.Section, key string) string {
	if section.HasKey(key) {
		return section.Key(key).String()
	}
	return defaultSection.Key(key).String()
}

func lookupBool(section, defaultSection *ini.Section, key string) bool {
	if section.HasKey(key) {
		v, _ := section.Key(key).Bool()
		return v
	}
	v, _ := defaultSection.Key(key).Bool()
	return v
}
