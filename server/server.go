package server

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"aisle/floorplan"
	"aisle/nav"
)

// Server serves a floor plan and its planner over HTTP. All planner
// access goes through the server mutex: the path finder reuses search
// scratch, so queries are serialized alongside plan swaps.
type Server struct {
	mu       sync.Mutex
	planner  *nav.Planner
	planFile string
	navOpts  nav.Options
	hub      *hub
	log      *zap.Logger
	upgrader websocket.Upgrader
}

// New creates a server around an existing planner. planFile may be
// empty; PUT /api/plan then keeps changes in memory only.
func New(planner *nav.Planner, planFile string, navOpts nav.Options, log *zap.Logger) *Server {
	return &Server{
		planner:  planner,
		planFile: planFile,
		navOpts:  navOpts,
		hub:      newHub(log),
		log:      log,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

// Handler returns the route table. Mounted on a mux rather than the
// default ServeMux so tests can run several servers side by side.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", s.logged(s.handleHealth))
	mux.HandleFunc("/api/plan", s.logged(s.handlePlan))
	mux.HandleFunc("/api/route", s.logged(s.handleRoute))
	mux.HandleFunc("/ws", s.handleWS)
	return mux
}

// Run serves until the context is cancelled, then shuts down cleanly.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: s.Handler()}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("listening", zap.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// logged wraps a handler with a per-request id and timing log line.
func (s *Server) logged(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		reqID := uuid.NewString()[:8]
		next(w, r)
		s.log.Debug("request",
			zap.String("id", reqID),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Duration("elapsed", time.Since(start)))
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte("ok"))
}

func (s *Server) handlePlan(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.mu.Lock()
		plan := s.planner.Plan().Clone()
		s.mu.Unlock()
		writeJSON(w, plan)

	case http.MethodPut:
		var plan floorplan.FloorPlan
		if err := json.NewDecoder(r.Body).Decode(&plan); err != nil {
			http.Error(w, "malformed plan JSON", http.StatusBadRequest)
			return
		}
		if err := plan.Validate(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		s.swapPlan(&plan)
		if s.planFile != "" {
			if err := floorplan.Save(s.planFile, &plan); err != nil {
				s.log.Error("persist plan", zap.String("file", s.planFile), zap.Error(err))
			}
		}
		s.hub.broadcast("plan_updated")
		w.WriteHeader(http.StatusNoContent)

	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

// routeRequest is a route query between two world-coordinate points,
// in inches.
type routeRequest struct {
	From floorplan.Point `json:"from"`
	To   floorplan.Point `json:"to"`
}

// routeResponse flattens the route for the wire. Found false with an
// otherwise empty body is the "no route" answer; it is not an error.
type routeResponse struct {
	Found             bool           `json:"found"`
	Path              []nav.Waypoint `json:"path,omitempty"`
	Directions        []nav.Step     `json:"directions,omitempty"`
	TotalDistanceFeet int            `json:"totalDistanceFeet"`
	EstimatedMinutes  int            `json:"estimatedMinutes"`
}

func (s *Server) handleRoute(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req routeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "malformed route request", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	route := s.planner.Route(req.From, req.To)
	s.mu.Unlock()

	if route == nil {
		writeJSON(w, routeResponse{Found: false})
		return
	}
	writeJSON(w, routeResponse{
		Found:             true,
		Path:              route.Path.Points,
		Directions:        route.Directions.Steps,
		TotalDistanceFeet: route.Directions.TotalDistanceFeet,
		EstimatedMinutes:  route.Directions.EstimatedMinutes,
	})
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	sub := s.hub.add(conn)

	// Subscribers only listen; the read loop just detects the close.
	go func() {
		defer s.hub.remove(sub)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

// swapPlan replaces the planner with one built from the new plan.
func (s *Server) swapPlan(plan *floorplan.FloorPlan) {
	planner := nav.NewPlanner(plan, s.navOpts)
	s.mu.Lock()
	s.planner = planner
	s.mu.Unlock()
	s.log.Info("plan replaced",
		zap.String("plan", plan.Name),
		zap.Int("obstacles", len(plan.Obstacles())),
		zap.Int("locations", len(plan.Locations)))
}

// Subscribers returns the number of connected websocket clients.
func (s *Server) Subscribers() int {
	return s.hub.count()
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		http.Error(w, "failed to encode", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}
