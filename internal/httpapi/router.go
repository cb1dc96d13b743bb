package httpapi

import "net/http"

// NewMux returns the raw mux so main() can still attach /shutdown (needs srv+token).
func NewMux(d Deps) *http.ServeMux {
	mux := http.NewServeMux()

	// Health
	hh := HealthHandler{}
	mux.HandleFunc("/health", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: hh.Health,
	}))

	// Auth
	ah := AuthHandler{Repos: d.Repos, Hub: d.Hub}
	mux.HandleFunc("/auth/register", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: ah.Register,
	}))
	mux.HandleFunc("/auth/login", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: ah.Login,
	}))

	// Jobs
	jh := JobsHandler{D: d}
	mux.HandleFunc("/jobs", methodMux(map[string]http.HandlerFunc{
		http.MethodGet:  jh.List,
		http.MethodPost: jh.Create,
	}))
	mux.HandleFunc("/jobs/", methodMux(map[string]http.HandlerFunc{
		http.MethodGet:  jh.GetByPath,  // /jobs/{id}, /jobs/{id}/applicants
		http.MethodPost: jh.PostByPath, // /jobs/{id}/apply
	}))

	// Profiles
	ph := ProfilesHandler{Repos: d.Repos}
	mux.HandleFunc("/profiles/", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: ph.GetByPath,
		http.MethodPut: ph.PutByPath,
	}))

	// Mock tests
	th := TestsHandler{Repos: d.Repos, Hub: d.Hub}
	mux.HandleFunc("/tests", methodMux(map[string]http.HandlerFunc{
		http.MethodGet:  th.List,
		http.MethodPost: th.Create,
	}))
	mux.HandleFunc("/tests/", methodMux(map[string]http.HandlerFunc{
		http.MethodGet:  th.GetByPath,  // /tests/{id}, /tests/{id}/results
		http.MethodPost: th.PostByPath, // /tests/{id}/submit
	}))

	// Remote fetch
	rh := RemoteHandler{Remote: d.Remote, Hub: d.Hub, RunRefresh: d.RunRefresh}
	mux.HandleFunc("/remote/status", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: rh.Status,
	}))
	mux.HandleFunc("/remote/refresh", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: rh.Run,
	}))

	// Config
	ch := ConfigHandler{
		CfgVal:      d.CfgVal,
		UserCfgPath: d.UserCfgPath,
		LoadCfg:     d.LoadCfg,
	}
	mux.HandleFunc("/config", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: ch.Get,
		http.MethodPut: ch.Put,
	}))
	mux.HandleFunc("/config/path", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: ch.Path,
	}))

	// SSE events
	eh := EventsHandler{Hub: d.Hub}
	mux.HandleFunc("/events", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: eh.ServeSSE,
	}))

	return mux
}
