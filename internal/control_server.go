package internal

import (
	"chat-notifier/auth"
	"chat-notifier/contract"
	"chat-notifier/domain"
	"chat-notifier/errors"
	"chat-notifier/observability"
	"chat-notifier/runtime"
	"chat-notifier/services"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"slices"
	"strconv"
	"time"
)

// Pipeline is the part of the orchestrator driven by the control surface.
type Pipeline interface {
	Commands() []domain.Command
	AddCommand(cmd domain.Command) error
	RemoveCommand(name string) error
	RenameCallString(name, callString string) error
	ApprovedUsers() []string
	AddApprovedUser(user string) error
	RemoveApprovedUser(user string) error
	ConnectionStatus() bool
	Channel() string
	ConnectTransport() error
	DisconnectTransport() error
}

type ScriptReloader interface {
	Reload() (int, error)
	Scripts() []string
}

// SoundLibrary holds the sound assets the player knows about.
type SoundLibrary interface {
	SetSounds(sounds map[string]string)
	Sounds() []string
}

type Display interface {
	SetShowTime(d time.Duration) error
	ShowTime() time.Duration
	Current() (domain.Notification, bool)
}

type ControlDeps struct {
	Pipeline         Pipeline
	Notifier         contract.INotifier
	Player           contract.IPlayer
	Sounds           SoundLibrary
	SoundsDir        string
	Scripts          ScriptReloader
	History          contract.IHistoryRepository
	Auth             services.IAuthService
	Tokens           *auth.Tokens
	Display          Display
	Stats            func() observability.Stats
	TestNotification func() domain.Notification
}

// ControlServer is the JSON API used to drive the notifier at runtime.
// Every route but /login requires a bearer token.
type ControlServer struct {
	log  *slog.Logger
	addr string
	deps ControlDeps
}

func NewControlServer(log *slog.Logger, addr string, deps ControlDeps) *ControlServer {
	return &ControlServer{log: log, addr: addr, deps: deps}
}

// Run serves until ctx is done, then shuts down gracefully.
func (s *ControlServer) Run(ctx context.Context) error {
	server := &http.Server{
		Addr:              s.addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	errChan := make(chan error, 1)
	go func() {
		s.log.Info("Starting control server", "address", s.addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
		close(errChan)
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

func (s *ControlServer) Handler() http.Handler {
	protected := http.NewServeMux()
	protected.HandleFunc("GET /commands", s.listCommands)
	protected.HandleFunc("POST /commands", s.addCommand)
	protected.HandleFunc("PUT /commands/{name}", s.renameCommand)
	protected.HandleFunc("DELETE /commands/{name}", s.removeCommand)
	protected.HandleFunc("GET /users", s.listUsers)
	protected.HandleFunc("POST /users", s.addUser)
	protected.HandleFunc("DELETE /users/{user}", s.removeUser)
	protected.HandleFunc("GET /status", s.status)
	protected.HandleFunc("PUT /settings/show-time", s.setShowTime)
	protected.HandleFunc("POST /notifications/test", s.testNotification)
	protected.HandleFunc("POST /sounds/stop", s.stopSounds)
	protected.HandleFunc("POST /sounds/rescan", s.rescanSounds)
	protected.HandleFunc("POST /twitch/connect", s.connectTwitch)
	protected.HandleFunc("POST /twitch/disconnect", s.disconnectTwitch)
	protected.HandleFunc("POST /scripts/reload", s.reloadScripts)
	protected.HandleFunc("GET /history", s.history)
	protected.HandleFunc("GET /history/search", s.searchHistory)

	mux := http.NewServeMux()
	mux.HandleFunc("POST /login", s.login)
	mux.Handle("/", auth.Middleware(s.deps.Tokens, protected))
	return mux
}

type loginRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

func (s *ControlServer) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decode(w, r, &req) {
		return
	}
	token, err := s.deps.Auth.Login(req.Name, req.Password)
	if err != nil {
		s.log.Debug("Login refused", "operator", req.Name, "error", err)
		writeError(w, err)
		return
	}
	s.log.Info("Operator logged in", "operator", req.Name)
	writeJSON(w, http.StatusOK, map[string]string{"token": string(token)})
}

func (s *ControlServer) listCommands(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.deps.Pipeline.Commands())
}

func (s *ControlServer) addCommand(w http.ResponseWriter, r *http.Request) {
	var cmd domain.Command
	if !decode(w, r, &cmd) {
		return
	}
	if err := s.deps.Pipeline.AddCommand(cmd); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, cmd)
}

type renameRequest struct {
	CallString string `json:"call_string"`
}

func (s *ControlServer) renameCommand(w http.ResponseWriter, r *http.Request) {
	var req renameRequest
	if !decode(w, r, &req) {
		return
	}
	if err := s.deps.Pipeline.RenameCallString(r.PathValue("name"), req.CallString); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *ControlServer) removeCommand(w http.ResponseWriter, r *http.Request) {
	if err := s.deps.Pipeline.RemoveCommand(r.PathValue("name")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *ControlServer) listUsers(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.deps.Pipeline.ApprovedUsers())
}

type userRequest struct {
	User string `json:"user"`
}

func (s *ControlServer) addUser(w http.ResponseWriter, r *http.Request) {
	var req userRequest
	if !decode(w, r, &req) {
		return
	}
	if err := s.deps.Pipeline.AddApprovedUser(req.User); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, s.deps.Pipeline.ApprovedUsers())
}

func (s *ControlServer) removeUser(w http.ResponseWriter, r *http.Request) {
	if err := s.deps.Pipeline.RemoveApprovedUser(r.PathValue("user")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type statusResponse struct {
	Connected bool                 `json:"connected"`
	Channel   string               `json:"channel"`
	ShowTime  string               `json:"show_time,omitempty"`
	Current   *domain.Notification `json:"current,omitempty"`
	Scripts   []string             `json:"scripts,omitempty"`
	Stats     *observability.Stats `json:"stats,omitempty"`
}

func (s *ControlServer) status(w http.ResponseWriter, _ *http.Request) {
	res := statusResponse{
		Connected: s.deps.Pipeline.ConnectionStatus(),
		Channel:   s.deps.Pipeline.Channel(),
	}
	if s.deps.Display != nil {
		res.ShowTime = s.deps.Display.ShowTime().String()
		if n, ok := s.deps.Display.Current(); ok {
			res.Current = &n
		}
	}
	if s.deps.Scripts != nil {
		res.Scripts = s.deps.Scripts.Scripts()
	}
	if s.deps.Stats != nil {
		stats := s.deps.Stats()
		res.Stats = &stats
	}
	writeJSON(w, http.StatusOK, res)
}

type showTimeRequest struct {
	Seconds int `json:"seconds"`
}

func (s *ControlServer) setShowTime(w http.ResponseWriter, r *http.Request) {
	var req showTimeRequest
	if !decode(w, r, &req) {
		return
	}
	if s.deps.Display == nil {
		writeError(w, errors.ErrNotFound)
		return
	}
	if err := s.deps.Display.SetShowTime(time.Duration(req.Seconds) * time.Second); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *ControlServer) testNotification(w http.ResponseWriter, _ *http.Request) {
	n := s.deps.TestNotification()
	s.deps.Notifier.Launch(n)
	writeJSON(w, http.StatusAccepted, n)
}

func (s *ControlServer) stopSounds(w http.ResponseWriter, _ *http.Request) {
	s.deps.Player.StopAll()
	w.WriteHeader(http.StatusNoContent)
}

// rescanSounds picks up sound files added to the sounds directory since start.
func (s *ControlServer) rescanSounds(w http.ResponseWriter, _ *http.Request) {
	sounds, err := runtime.FindSounds(s.deps.SoundsDir)
	if err != nil {
		writeError(w, err)
		return
	}
	s.deps.Sounds.SetSounds(sounds)
	names := s.deps.Sounds.Sounds()
	slices.Sort(names)
	s.log.Info("Sound assets rescanned", "dir", s.deps.SoundsDir, "count", len(names))
	writeJSON(w, http.StatusOK, map[string][]string{"sounds": names})
}

func (s *ControlServer) connectTwitch(w http.ResponseWriter, _ *http.Request) {
	if err := s.deps.Pipeline.ConnectTransport(); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusAccepted)
}

func (s *ControlServer) disconnectTwitch(w http.ResponseWriter, _ *http.Request) {
	if err := s.deps.Pipeline.DisconnectTransport(); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusAccepted)
}

func (s *ControlServer) reloadScripts(w http.ResponseWriter, _ *http.Request) {
	count, err := s.deps.Scripts.Reload()
	res := map[string]any{"loaded": count}
	if err != nil {
		res["error"] = err.Error()
	}
	writeJSON(w, http.StatusOK, res)
}

type historyResponse struct {
	Items      []domain.Notification `json:"items"`
	NextCursor *string               `json:"next_cursor,omitempty"`
}

func (s *ControlServer) history(w http.ResponseWriter, r *http.Request) {
	var cursor *string
	if c := r.URL.Query().Get("cursor"); c != "" {
		cursor = &c
	}
	items, next, err := s.deps.History.List(cursor)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, historyResponse{Items: items, NextCursor: next})
}

func (s *ControlServer) searchHistory(w http.ResponseWriter, r *http.Request) {
	limit := 20
	if l := r.URL.Query().Get("limit"); l != "" {
		n, err := strconv.Atoi(l)
		if err != nil || n <= 0 {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
		limit = n
	}
	items, err := s.deps.History.Search(r.Context(), r.URL.Query().Get("q"), limit)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, historyResponse{Items: items})
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		http.Error(w, "invalid JSON body", http.StatusBadRequest)
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	http.Error(w, err.Error(), statusOf(err))
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, errors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, errors.ErrDuplicateName),
		errors.Is(err, errors.ErrAlreadyConnected),
		errors.Is(err, errors.ErrNotConnected),
		errors.Is(err, errors.ErrMissingCredentials):
		return http.StatusConflict
	case errors.Is(err, errors.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, errors.ErrInvalidCommand),
		errors.Is(err, errors.ErrInvalidUsername),
		errors.Is(err, errors.ErrUnknownAction),
		errors.Is(err, errors.ErrInvalidShowTime):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
