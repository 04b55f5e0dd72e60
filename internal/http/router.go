package httpserver

import "net/http"

// Routes groups HTTP handlers.
type Routes struct {
	CreateAccount http.HandlerFunc
	ListAccounts  http.HandlerFunc
	DetectMeter   http.HandlerFunc
	NearestMeter  http.HandlerFunc
	SubmitUsage   http.HandlerFunc
	Health        http.HandlerFunc
	Metrics       http.Handler
}

// NewRouter registers service endpoints.
func NewRouter(routes Routes) http.Handler {
	mux := http.NewServeMux()
	if routes.CreateAccount != nil {
		mux.Handle("/create-account", method(http.MethodPost, routes.CreateAccount))
	}
	if routes.ListAccounts != nil {
		mux.Handle("/account", method(http.MethodGet, routes.ListAccounts))
	}
	if routes.DetectMeter != nil {
		mux.Handle("/detect-meter", method(http.MethodPost, routes.DetectMeter))
	}
	if routes.NearestMeter != nil {
		mux.Handle("/nearest-meter", method(http.MethodGet, routes.NearestMeter))
	}
	if routes.SubmitUsage != nil {
		mux.Handle("/submit_usage", method(http.MethodPost, routes.SubmitUsage))
	}
	if routes.Health != nil {
		mux.Handle("/health", method(http.MethodGet, routes.Health))
	}
	if routes.Metrics != nil {
		mux.Handle("/metrics", routes.Metrics)
	}
	return mux
}

func method(expected string, handler http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != expected {
			w.Header().Set("Allow", expected)
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		handler(w, r)
	}
}
