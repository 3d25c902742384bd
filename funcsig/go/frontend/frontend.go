// Package frontend serves the signature parser as a JSON API.
package frontend

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/interviewkickstart/funcsig/funcsig/go/config"
	"github.com/interviewkickstart/funcsig/funcsig/go/sigcache"
	"github.com/interviewkickstart/funcsig/funcsig/go/signature"
	"github.com/interviewkickstart/funcsig/funcsig/go/types"
	"github.com/interviewkickstart/funcsig/go/httputils"
	"github.com/interviewkickstart/funcsig/go/metrics2"
	"github.com/interviewkickstart/funcsig/go/skerr"
	"github.com/interviewkickstart/funcsig/go/sklog"
)

// maxRequestBytes bounds the size of a parse request body.
const maxRequestBytes = 64 * 1024

// ParseRequest is the body of POST /_/parse.
type ParseRequest struct {
	Signature string `json:"signature"`

	// AllowUppercaseNames overrides the server's configured default if set.
	AllowUppercaseNames *bool `json:"allow_uppercase_names,omitempty"`
}

// ParseResponse is returned for a signature that parses.
type ParseResponse struct {
	Signature *signature.Dict `json:"signature"`
}

// ErrorResponse is returned for a signature that does not parse.
type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}

// TypesResponse lists the recognized type names.
type TypesResponse struct {
	Primitive []string `json:"primitive"`
	Composite []string `json:"composite"`
	Custom    []string `json:"custom"`
}

// Frontend handles the HTTP API.
type Frontend struct {
	cache    *sigcache.Cache
	defaults signature.Options
}

// New returns a Frontend configured by cfg.
func New(cfg *config.Config) (*Frontend, error) {
	cache, err := sigcache.New("frontend", cfg.CacheSize)
	if err != nil {
		return nil, skerr.Wrap(err)
	}
	return &Frontend{
		cache:    cache,
		defaults: cfg.Options(),
	}, nil
}

// RegisterHandlers registers the api handlers for their respective routes.
func (f *Frontend) RegisterHandlers(router *chi.Mux) {
	router.Post("/_/parse", f.parseHandler)
	router.Get("/_/types", f.typesHandler)
}

// Handler returns the complete handler chain of the server.
func (f *Frontend) Handler() http.Handler {
	router := chi.NewRouter()
	f.RegisterHandlers(router)
	return httputils.LoggingRequestResponse(httputils.Healthz(router))
}

func sendJSONResponse(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		sklog.Errorf("Failed to write JSON response: %s", err)
	}
}

func (f *Frontend) parseHandler(w http.ResponseWriter, r *http.Request) {
	var req ParseRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBytes)).Decode(&req); err != nil {
		httputils.ReportError(w, err, "Failed to decode JSON.", http.StatusBadRequest)
		return
	}
	opts := f.defaults
	if req.AllowUppercaseNames != nil {
		opts.AllowUppercaseNames = *req.AllowUppercaseNames
	}

	sig, err := f.cache.Parse(req.Signature, opts)
	if err != nil {
		kind, ok := signature.KindOf(err)
		if !ok {
			httputils.ReportError(w, err, "Failed to parse signature.", http.StatusInternalServerError)
			return
		}
		metrics2.GetCounter("funcsig_parse", map[string]string{"result": kind.String()}).Inc(1)
		sendJSONResponse(w, http.StatusBadRequest, ErrorResponse{
			Error: err.Error(),
			Kind:  kind.String(),
		})
		return
	}
	metrics2.GetCounter("funcsig_parse", map[string]string{"result": "ok"}).Inc(1)
	sendJSONResponse(w, http.StatusOK, ParseResponse{Signature: sig.Dict()})
}

func (f *Frontend) typesHandler(w http.ResponseWriter, r *http.Request) {
	sendJSONResponse(w, http.StatusOK, TypesResponse{
		Primitive: types.PrimitiveTypeNames(),
		Composite: types.CompositeTypeNames(),
		Custom:    types.CustomTypeNames(),
	})
}
