// Package explorer serves a loaded program's canonical name surface over
// HTTP, for browsing bundles and probing how paths render and link.
package explorer

import (
	"log/slog"
	"net/http"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/schema"

	"github.com/tarnlang/tarnir/ir"
	"github.com/tarnlang/tarnir/printer"
)

var (
	validate      = validator.New()
	schemaDecoder = schema.NewDecoder()
)

func init() {
	schemaDecoder.IgnoreUnknownKeys(true)
}

// Service exposes one loaded program.
type Service struct {
	program *ir.Program
	logger  *slog.Logger
}

// New creates a service for the program. A nil logger falls back to
// slog.Default().
func New(p *ir.Program, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{program: p, logger: logger}
}

// Handler returns the service's HTTP handler with request logging and
// panic recovery installed.
func (s *Service) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/status", s.handleStatus)
	mux.HandleFunc("/api/libraries", s.handleLibraries)
	mux.HandleFunc("/api/names", s.handleNames)
	mux.HandleFunc("/api/resolve", s.handleResolve)
	return withLogging(s.logger, mux)
}

// StatusResponse reports program-level counts.
type StatusResponse struct {
	OK        bool `json:"ok"`
	Libraries int  `json:"libraries"`
	Names     int  `json:"names"`
}

func (s *Service) handleStatus(w http.ResponseWriter, r *http.Request) {
	if !s.requireGet(w, r) {
		return
	}
	names := 0
	s.program.Root().Walk(func(cn *ir.CanonicalName) {
		if !cn.IsRoot() {
			names++
		}
	})
	s.writeResult(w, StatusResponse{
		OK:        true,
		Libraries: len(s.program.Libraries),
		Names:     names,
	})
}

// LibrarySummary describes one library's declaration counts.
type LibrarySummary struct {
	URI        string `json:"uri"`
	Name       string `json:"name,omitempty"`
	Classes    int    `json:"classes"`
	Extensions int    `json:"extensions"`
	Typedefs   int    `json:"typedefs"`
	Fields     int    `json:"fields"`
	Procedures int    `json:"procedures"`
}

func (s *Service) handleLibraries(w http.ResponseWriter, r *http.Request) {
	if !s.requireGet(w, r) {
		return
	}
	summaries := make([]LibrarySummary, 0, len(s.program.Libraries))
	for _, lib := range s.program.Libraries {
		summaries = append(summaries, LibrarySummary{
			URI:        lib.ImportURI,
			Name:       lib.Name,
			Classes:    len(lib.Classes),
			Extensions: len(lib.Extensions),
			Typedefs:   len(lib.Typedefs),
			Fields:     len(lib.Fields),
			Procedures: len(lib.Procedures),
		})
	}
	sort.Slice(summaries, func(i, j int) bool { return summaries[i].URI < summaries[j].URI })
	s.writeResult(w, summaries)
}

// NamesRequest filters the interned name list.
type NamesRequest struct {
	Prefix string `schema:"prefix"`
	// Limit caps the returned names. Zero means no cap.
	Limit int `schema:"limit" validate:"gte=0,lte=100000"`
}

// NamesResponse lists interned canonical paths. Total counts every match
// regardless of the limit.
type NamesResponse struct {
	Names []string `json:"names"`
	Total int      `json:"total"`
}

func (s *Service) handleNames(w http.ResponseWriter, r *http.Request) {
	if !s.requireGet(w, r) {
		return
	}
	var req NamesRequest
	if err := s.decodeQuery(r, &req); err != nil {
		writeError(w, transformError(err), s.logger)
		return
	}

	res := NamesResponse{Names: []string{}}
	s.program.Root().Walk(func(cn *ir.CanonicalName) {
		if cn.IsRoot() {
			return
		}
		path := cn.String()
		if req.Prefix != "" && !strings.HasPrefix(path, req.Prefix) {
			return
		}
		res.Total++
		if req.Limit == 0 || len(res.Names) < req.Limit {
			res.Names = append(res.Names, path)
		}
	})
	s.writeResult(w, res)
}

// ResolveRequest names one canonical path, segment by segment, plus the
// qualification flags for rendering it.
type ResolveRequest struct {
	Segments     []string `schema:"seg" validate:"required,min=1"`
	Qualify      bool     `schema:"qualify"`
	QualifyTypes bool     `schema:"qualifyTypes"`
}

// ResolveResponse renders one canonical path.
type ResolveResponse struct {
	// Display is the qualified rendering under the requested flags.
	Display string `json:"display"`
	// Path is the raw canonical path.
	Path string `json:"path"`
	// Linked reports whether a declaration is bound to the path.
	Linked bool `json:"linked"`
	// Kind is the bound declaration's kind, empty when unlinked.
	Kind string `json:"kind,omitempty"`
}

func (s *Service) handleResolve(w http.ResponseWriter, r *http.Request) {
	if !s.requireGet(w, r) {
		return
	}
	var req ResolveRequest
	if err := s.decodeQuery(r, &req); err != nil {
		writeError(w, transformError(err), s.logger)
		return
	}

	cn := s.program.Root()
	for _, seg := range req.Segments {
		cn = cn.PeekChild(seg)
		if cn == nil {
			writeError(w, Errorf(CodeNotFound, "canonical name %q not found", strings.Join(req.Segments, "::")), s.logger)
			return
		}
	}

	res := ResolveResponse{
		Display: printer.QualifiedCanonicalName(cn, req.Qualify, req.QualifyTypes),
		Path:    cn.String(),
	}
	if node := cn.BoundReference().Node(); node != nil {
		res.Linked = true
		res.Kind = node.Kind().String()
	}
	s.writeResult(w, res)
}

func (s *Service) requireGet(w http.ResponseWriter, r *http.Request) bool {
	if r.Method != http.MethodGet {
		writeError(w, Errorf(CodeMethodNotAllowed, "method %s not allowed", r.Method), s.logger)
		return false
	}
	return true
}

func (s *Service) decodeQuery(r *http.Request, dst any) error {
	if err := schemaDecoder.Decode(dst, r.URL.Query()); err != nil {
		return Errorf(CodeInvalidArgument, "failed to decode query: %v", err)
	}
	return validate.Struct(dst)
}

func (s *Service) writeResult(w http.ResponseWriter, result any) {
	w.Header().Set("Content-Type", "application/json")
	if err := encodeResponse(w, result); err != nil {
		s.logger.Error("failed to encode response", slog.Any("error", err))
	}
}
