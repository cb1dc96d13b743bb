package config

import (
	"fmt"
	"strings"
)

// RemoteJobsCap bounds how many remote summaries a listing may carry.
const RemoteJobsCap = 10

type Validation struct {
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

func (v *Validation) addErr(format string, args ...any) {
	v.Errors = append(v.Errors, fmt.Sprintf(format, args...))
}
func (v *Validation) addWarn(format string, args ...any) {
	v.Warnings = append(v.Warnings, fmt.Sprintf(format, args...))
}
func (v Validation) OK() bool { return len(v.Errors) == 0 }

// NormalizeAndValidate trims free-text fields and checks the invariants the
// rest of the engine assumes. Callers persist only the normalized copy.
func NormalizeAndValidate(cfg Config) (Config, Validation) {
	out := cfg
	var res Validation

	out.Remote.BaseURL = strings.TrimSpace(out.Remote.BaseURL)
	out.Remote.Query = strings.TrimSpace(out.Remote.Query)
	out.Remote.Location = strings.TrimSpace(out.Remote.Location)
	out.Remote.Country = strings.TrimSpace(out.Remote.Country)

	if out.App.Port <= 0 || out.App.Port > 65535 {
		res.addErr("app.port must be 1..65535")
	}

	if out.Remote.Enabled {
		if out.Remote.BaseURL == "" {
			res.addErr("remote.base_url is required when remote.enabled=true")
		} else if !strings.HasPrefix(out.Remote.BaseURL, "http") {
			res.addErr("remote.base_url must be an http(s) URL")
		}
		if out.Remote.MaxJobs <= 0 || out.Remote.MaxJobs > RemoteJobsCap {
			res.addErr("remote.max_jobs must be 1..%d", RemoteJobsCap)
		}
		if out.Remote.RefreshSeconds <= 0 {
			res.addErr("remote.refresh_seconds must be > 0")
		} else if out.Remote.RefreshSeconds < 30 {
			res.addWarn("remote.refresh_seconds is very low (%d) and may cause rate limits.", out.Remote.RefreshSeconds)
		}
		if out.Remote.Query == "" {
			res.addWarn("remote.query is empty; the upstream search may return unrelated jobs.")
		}
	}

	return out, res
}
