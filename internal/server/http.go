package server

import (
	"encoding/json"
	"net/http"

	"github.com/Astreocclu/arc-citadel-sub002/internal/engine"
	"github.com/Astreocclu/arc-citadel-sub002/internal/version"
	"github.com/Astreocclu/arc-citadel-sub002/pkg/logger"

	"github.com/gorilla/mux"
)

type Server struct {
	Engine *engine.BattleService
	Port   string
}

func New(engine *engine.BattleService, port string) *Server {
	return &Server{
		Engine: engine,
		Port:   port,
	}
}

// Run запускает HTTP сервер
func (s *Server) Run() error {
	router := mux.NewRouter()

	// Регистрируем роуты
	router.HandleFunc("/ws", enableCORS(s.handleWS))
	router.HandleFunc("/health", enableCORS(s.handleHealth)).Methods(http.MethodGet)
	router.HandleFunc("/version", enableCORS(s.handleVersion)).Methods(http.MethodGet)
	router.HandleFunc("/battles", enableCORS(s.handleBattles)).Methods(http.MethodGet)

	logger.Log.Infof("🛡️  Battle server running on :%s", s.Port)
	return http.ListenAndServe(":"+s.Port, router)
}

func enableCORS(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Разрешаем запросы с фронтенда
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		next(w, r)
	}
}

// handleWS подключает наблюдателя к ленте боевых событий
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Log.Error("Upgrade error:", err)
		return
	}

	client := NewClient(s.Engine, conn)

	// Запускаем пампы
	go client.writePump()
	go client.readPump()
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(version.Info())
}

// handleBattles отдает сводки всех боев
func (s *Server) handleBattles(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(s.Engine.Snapshots()); err != nil {
		logger.Log.WithError(err).Warn("failed to encode battle snapshots")
	}
}
