package server

import (
	"compress/gzip"
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/gorilla/mux"
	"github.com/jacobpatterson1549/selene-mahjongg/db/catalog"
	"github.com/jacobpatterson1549/selene-mahjongg/game"
	"github.com/jacobpatterson1549/selene-mahjongg/game/board"
	"github.com/jacobpatterson1549/selene-mahjongg/game/controller"
	"github.com/jacobpatterson1549/selene-mahjongg/game/generator"
	"github.com/jacobpatterson1549/selene-mahjongg/game/layout"
	"github.com/jacobpatterson1549/selene-mahjongg/server/log"
)

type (
	// dealResponse is sent to players when a board is dealt.
	dealResponse struct {
		Game  game.Info    `json:"game"`
		Token string       `json:"token"`
		Board *board.Board `json:"board"`
	}

	// wrappedResponseWriter wraps response writing with another writer.
	wrappedResponseWriter struct {
		io.Writer
		http.ResponseWriter
	}
)

// router creates the routes of the site.
// The play route is not compressed because the websocket upgrade must hijack the connection.
func (p Parameters) router(cfg Config, monitor http.Handler, wg *sync.WaitGroup, sessions *atomic.Int64) http.Handler {
	r := mux.NewRouter()
	r.Handle("/play", p.playHandler(cfg.DealConfig, wg, sessions)).Methods(http.MethodGet)
	api := r.NewRoute().Subrouter()
	api.Use(gzipHandler)
	api.Handle("/", versionHandler(cfg.Version)).Methods(http.MethodGet)
	api.Handle("/deal", p.dealHandler(cfg.DealConfig)).Methods(http.MethodGet)
	api.Handle("/layouts", p.layoutListHandler()).Methods(http.MethodGet)
	api.Handle("/layouts", p.adminHandler(p.layoutCreateHandler(cfg.MaxLayoutBytes))).Methods(http.MethodPost)
	api.Handle("/layouts/{name}", p.layoutReadHandler()).Methods(http.MethodGet)
	api.Handle("/layouts/{name}", p.adminHandler(p.layoutDeleteHandler())).Methods(http.MethodDelete)
	api.Handle("/monitor", monitor).Methods(http.MethodGet)
	return r
}

// versionHandler writes the version of the server.
func versionHandler(version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(HeaderContentType, "text/plain; charset=utf-8")
		io.WriteString(w, version)
	}
}

// dealHandler deals a solvable board of the requested layout and seed.
// A random seed is used if the request does not specify one.
func (p Parameters) dealHandler(cfg generator.DealConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		name := q.Get("layout")
		if len(name) == 0 {
			name = layout.DefaultName
		}
		seed := p.SeedFunc()
		if s := q.Get("seed"); len(s) != 0 {
			var err error
			seed, err = strconv.ParseInt(s, 10, 64)
			if err != nil {
				httpError(w, http.StatusBadRequest)
				return
			}
		}
		l, err := p.LayoutDao.Read(r.Context(), name)
		if err != nil {
			p.layoutError(w, err)
			return
		}
		d, err := cfg.Deal(l.Positions, seed)
		if err != nil {
			p.dealError(w, err)
			return
		}
		token, err := p.Tokenizer.Create(l.Name, d.Seed)
		if err != nil {
			writeInternalError(err, p.Logger, w)
			return
		}
		info := controller.New(d.Board).Info()
		info.Layout = l.Name
		info.Seed = d.Seed
		resp := dealResponse{
			Game:  info,
			Token: token,
			Board: d.Board,
		}
		p.writeJSON(w, http.StatusOK, resp)
	}
}

// playHandler redeals the board named by the token and plays it over a websocket.
// Only the seed in the token is tried because it is known to deal the board.
func (p Parameters) playHandler(cfg generator.DealConfig, wg *sync.WaitGroup, sessions *atomic.Int64) http.HandlerFunc {
	cfg.Retries = 0
	return func(w http.ResponseWriter, r *http.Request) {
		name, seed, err := p.Tokenizer.Read(r.URL.Query().Get("token"))
		if err != nil {
			p.Logger.Printf("reading play token: %v", err)
			httpError(w, http.StatusForbidden)
			return
		}
		l, err := p.LayoutDao.Read(r.Context(), name)
		if err != nil {
			p.layoutError(w, err)
			return
		}
		d, err := cfg.Deal(l.Positions, seed)
		if err != nil {
			p.dealError(w, err)
			return
		}
		deal := game.Info{
			Layout: l.Name,
			Seed:   d.Seed,
		}
		wg.Add(1)
		defer wg.Done()
		sessions.Add(1)
		defer sessions.Add(-1)
		if err := p.Player.Play(w, r, deal, d.Board); err != nil {
			p.Logger.Printf("playing %v deal %v: %v", deal.Layout, deal.Seed, err)
		}
	}
}

// layoutListHandler writes the names of the layouts.
func (p Parameters) layoutListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		names, err := p.LayoutDao.List(r.Context())
		if err != nil {
			writeInternalError(err, p.Logger, w)
			return
		}
		p.writeJSON(w, http.StatusOK, names)
	}
}

// layoutReadHandler writes the layout named in the path.
func (p Parameters) layoutReadHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := mux.Vars(r)["name"]
		l, err := p.LayoutDao.Read(r.Context(), name)
		if err != nil {
			p.layoutError(w, err)
			return
		}
		p.writeJSON(w, http.StatusOK, l)
	}
}

// layoutCreateHandler stores the layouts in the request body.
// XML bodies can contain many gnome layouts.  Other bodies are read as a single json layout.
func (p Parameters) layoutCreateHandler(maxBytes int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body := http.MaxBytesReader(w, r.Body, maxBytes)
		var layouts []layout.Layout
		mediaType, _, _ := mime.ParseMediaType(r.Header.Get(HeaderContentType))
		switch mediaType {
		case "application/xml", "text/xml":
			var err error
			layouts, err = layout.ReadGnome(body)
			if err != nil {
				p.Logger.Printf("reading gnome layouts: %v", err)
				httpError(w, http.StatusBadRequest)
				return
			}
		default:
			var l layout.Layout
			if err := json.NewDecoder(body).Decode(&l); err != nil {
				p.Logger.Printf("reading json layout: %v", err)
				httpError(w, http.StatusBadRequest)
				return
			}
			layouts = append(layouts, l)
		}
		names := make([]string, 0, len(layouts))
		for _, l := range layouts {
			if err := p.LayoutDao.Create(r.Context(), l); err != nil {
				p.layoutError(w, err)
				return
			}
			names = append(names, l.Name)
		}
		p.writeJSON(w, http.StatusCreated, names)
	}
}

// layoutDeleteHandler removes the layout named in the path.
func (p Parameters) layoutDeleteHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := mux.Vars(r)["name"]
		if err := p.LayoutDao.Delete(r.Context(), name); err != nil {
			p.layoutError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// adminHandler only serves requests that carry the administrator password as a bearer token.
func (p Parameters) adminHandler(h http.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if len(p.AdminPasswordHash) == 0 {
			httpError(w, http.StatusForbidden)
			return
		}
		password, ok := strings.CutPrefix(r.Header.Get(HeaderAuthorization), "Bearer ")
		if !ok {
			httpError(w, http.StatusUnauthorized)
			return
		}
		ok, err := p.PasswordHandler.IsCorrect(p.AdminPasswordHash, password)
		switch {
		case err != nil:
			writeInternalError(err, p.Logger, w)
			return
		case !ok:
			p.Logger.Printf("incorrect admin password from %v", r.RemoteAddr)
			httpError(w, http.StatusUnauthorized)
			return
		}
		h.ServeHTTP(w, r)
	}
}

// layoutError writes the status of the layout storage error.
func (p Parameters) layoutError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, catalog.ErrNotFound):
		httpError(w, http.StatusNotFound)
	case errors.Is(err, catalog.ErrExists):
		httpError(w, http.StatusConflict)
	case errors.Is(err, catalog.ErrBuiltin):
		httpError(w, http.StatusForbidden)
	case errors.Is(err, catalog.ErrInvalid):
		p.Logger.Printf("invalid layout: %v", err)
		httpError(w, http.StatusBadRequest)
	default:
		writeInternalError(err, p.Logger, w)
	}
}

// dealError writes the status of the dealing error.
// Layouts that cannot be dealt within the search limits are not server errors.
func (p Parameters) dealError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, board.ErrOddTileCount),
		errors.Is(err, generator.ErrUnsolvable),
		errors.Is(err, generator.ErrSearchLimit):
		p.Logger.Printf("could not deal board: %v", err)
		httpError(w, http.StatusUnprocessableEntity)
	default:
		writeInternalError(err, p.Logger, w)
	}
}

// writeJSON writes the value as a json response with the status code.
func (p Parameters) writeJSON(w http.ResponseWriter, statusCode int, v interface{}) {
	w.Header().Set(HeaderContentType, "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		p.Logger.Printf("writing json response: %v", err)
	}
}

// gzipHandler compresses responses if the request accepts gzip encoding.
func gzipHandler(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Add(HeaderVary, HeaderAcceptEncoding)
		if !strings.Contains(r.Header.Get(HeaderAcceptEncoding), "gzip") {
			h.ServeHTTP(w, r)
			return
		}
		gzw := gzip.NewWriter(w)
		defer gzw.Close()
		w.Header().Set(HeaderContentEncoding, "gzip")
		wrw := wrappedResponseWriter{
			Writer:         gzw,
			ResponseWriter: w,
		}
		h.ServeHTTP(wrw, r)
	})
}

// httpError writes the error status code.
func httpError(w http.ResponseWriter, statusCode int) {
	http.Error(w, http.StatusText(statusCode), statusCode)
}

// writeInternalError logs and writes the error as an internal server error (500).
func writeInternalError(err error, l log.Logger, w http.ResponseWriter) {
	l.Printf("server error: %v", err)
	httpError(w, http.StatusInternalServerError)
}

// Write delegates the write to the wrapped writer.
func (wrw wrappedResponseWriter) Write(p []byte) (n int, err error) {
	return wrw.Writer.Write(p)
}
