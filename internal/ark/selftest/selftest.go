// Package selftest runs hard-coded vectors covering every conversion and
// redirect path against a fixed stock configuration, independent of whatever
// config file the CLI was invoked with. It performs no network I/O.
package selftest

import (
	"fmt"

	"github.com/dasch-swiss/ark-resolver/internal/ark/arkformat"
	"github.com/dasch-swiss/ark-resolver/internal/ark/checkdigit"
	"github.com/dasch-swiss/ark-resolver/internal/ark/grammar"
	"github.com/dasch-swiss/ark-resolver/internal/ark/redirector"
	"github.com/dasch-swiss/ark-resolver/internal/ark/settings"
)

const (
	stockResolverHost = "ark.dasch.swiss"
	stockNaan         = "72163"
)

func stockSettings() *settings.Settings {
	return &settings.Settings{
		ArkResolverHost:   stockResolverHost,
		ArkNaan:           stockNaan,
		TopLevelObjectUrl: "http://dasch.swiss",
		Projects: map[string]settings.ProjectConfig{
			"0001": {
				Host:                            "0.0.0.0:3333",
				KnoraProjectRedirectUrl:         "http://$host/admin/projects/$project_iri",
				KnoraResourceRedirectUrl:        "http://$host/v2/resources/$resource_iri",
				KnoraResourceVersionRedirectUrl: "http://$host/v2/resources/$resource_iri?version=$timestamp",
				KnoraResourceIri:                "http://rdfh.ch/$project_id/$resource_id",
				KnoraProjectIri:                 "http://rdfh.ch/projects/$project_id",
			},
			"0803": {
				Host:                          "data.dasch.swiss",
				UsePhp:                        true,
				PhpResourceRedirectUrl:        "http://$host/resources/$resource_int_id",
				PhpResourceVersionRedirectUrl: "http://$host/resources/$resource_int_id?citdate=$timestamp",
			},
		},
	}
}

// Failure describes one failed assertion.
type Failure struct {
	Name     string
	Expected string
	Actual   string
}

func (f Failure) String() string {
	return fmt.Sprintf("%s: expected %q, got %q", f.Name, f.Expected, f.Actual)
}

type check struct {
	name string
	run  func() (string, error)
	want string
}

// Run executes every vector and returns the failures, if any. A non-empty
// result means the process should exit non-zero.
func Run() []Failure {
	s := stockSettings()
	g := grammar.New(stockResolverHost, stockNaan)
	r := redirector.New(s)

	resolve := func(arkURL string) (string, error) {
		info, err := g.Parse(arkURL)
		if err != nil {
			return "", err
		}
		return r.Resolve(info)
	}

	checks := []check{
		{
			name: "T1: check digit of cmfk1DMHRBiR4-_6HXpEFA",
			run: func() (string, error) {
				digit, err := checkdigit.CalculateCheckDigit("cmfk1DMHRBiR4-_6HXpEFA")
				return string(digit), err
			},
			want: "n",
		},
		{
			name: "T2: fromResourceIri without timestamp",
			run: func() (string, error) {
				return arkformat.FromResourceIri(stockResolverHost, stockNaan, "http://rdfh.ch/0001/cmfk1DMHRBiR4-_6HXpEFA", "")
			},
			want: "http://ark.dasch.swiss/ark:/72163/1/0001/cmfk1DMHRBiR4=_6HXpEFAn",
		},
		{
			name: "T3: fromResourceIri with timestamp",
			run: func() (string, error) {
				return arkformat.FromResourceIri(stockResolverHost, stockNaan, "http://rdfh.ch/0001/cmfk1DMHRBiR4-_6HXpEFA", "20190118T102919000031660Z")
			},
			want: "http://ark.dasch.swiss/ark:/72163/1/0001/cmfk1DMHRBiR4=_6HXpEFAn.20190118T102919000031660Z",
		},
		{
			name: "T4: fromLegacyNumericId",
			run: func() (string, error) {
				return arkformat.FromLegacyNumericId(stockResolverHost, stockNaan, 1, "0803", "")
			},
			want: "http://ark.dasch.swiss/ark:/72163/1/0803/751e0b8am",
		},
		{
			name: "T5: redirect of top-level URL",
			run:  func() (string, error) { return resolve("http://ark.dasch.swiss/ark:/72163/1") },
			want: "http://dasch.swiss",
		},
		{
			name: "T6: redirect of project-only URL",
			run:  func() (string, error) { return resolve("http://ark.dasch.swiss/ark:/72163/1/0001") },
			want: "http://0.0.0.0:3333/admin/projects/http%3A%2F%2Frdfh.ch%2Fprojects%2F0001",
		},
		{
			name: "T7: redirect of native resource URL",
			run: func() (string, error) {
				return resolve("http://ark.dasch.swiss/ark:/72163/1/0001/cmfk1DMHRBiR4=_6HXpEFAn")
			},
			want: "http://0.0.0.0:3333/v2/resources/http%3A%2F%2Frdfh.ch%2F0001%2Fcmfk1DMHRBiR4-_6HXpEFA",
		},
		{
			name: "T8: redirect of native resource URL with timestamp",
			run: func() (string, error) {
				return resolve("http://ark.dasch.swiss/ark:/72163/1/0001/cmfk1DMHRBiR4=_6HXpEFAn.20190118T102919000031660Z")
			},
			want: "http://0.0.0.0:3333/v2/resources/http%3A%2F%2Frdfh.ch%2F0001%2Fcmfk1DMHRBiR4-_6HXpEFA?version=20190118T102919000031660Z",
		},
		{
			name: "T9: redirect of legacy resource URL with timestamp",
			run: func() (string, error) {
				return resolve("http://ark.dasch.swiss/ark:/72163/1/0803/751e0b8am.20190118T102919000031660Z")
			},
			want: "http://data.dasch.swiss/resources/1?citdate=20190118",
		},
	}

	var failures []Failure
	for _, c := range checks {
		got, err := c.run()
		if err != nil {
			failures = append(failures, Failure{Name: c.name, Expected: c.want, Actual: "error: " + err.Error()})
			continue
		}
		if got != c.want {
			failures = append(failures, Failure{Name: c.name, Expected: c.want, Actual: got})
		}
	}

	// T10: a character-substituted resource tail must be rejected, not resolved.
	const t10Name = "T10: reject check-digit mismatch"
	if _, err := resolve("http://ark.dasch.swiss/ark:/72163/1/0001/cmfk1DMHRBir4=_6HXpEFAn"); err == nil {
		failures = append(failures, Failure{Name: t10Name, Expected: "error", Actual: "no error"})
	}

	return failures
}
