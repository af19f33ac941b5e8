package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"runtime/debug"
	"strconv"
	"sync"

	"github.com/cricklet/chessbits/internal/game"
	. "github.com/cricklet/chessbits/internal/helpers"
	"github.com/cricklet/chessbits/internal/movegen"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
)

type UpdateToWeb struct {
	State         string   `json:"state"`
	Player        string   `json:"player"`
	LastMove      string   `json:"lastMove"`
	Selection     string   `json:"selection"`
	PossibleMoves []string `json:"possibleMoves"`
	Error         string   `json:"error,omitempty"`
}

func (u UpdateToWeb) String() string {
	return fmt.Sprint("UpdateToWeb: ", u.State, ", ", u.Player, ", ", u.LastMove, ", ", u.Selection, ", ", u.PossibleMoves)
}

type MessageFromWeb struct {
	State     *string `json:"state"`
	Player    *string `json:"player"`
	Selection *string `json:"selection"`
	Move      *string `json:"move"`
	Rewind    *int    `json:"rewind"`
}

func (u MessageFromWeb) String() string {
	if u.State != nil {
		return fmt.Sprint("MessageFromWeb State: ", *u.State)
	}
	if u.Player != nil {
		return fmt.Sprint("MessageFromWeb Player: ", *u.Player)
	}
	if u.Selection != nil {
		return fmt.Sprint("MessageFromWeb Selection: ", *u.Selection)
	}
	if u.Move != nil {
		return fmt.Sprint("MessageFromWeb Move: ", *u.Move)
	}
	if u.Rewind != nil {
		return fmt.Sprint("MessageFromWeb Rewind: ", *u.Rewind)
	}
	return "MessageFromWeb unknown"
}

// session is the per-connection game. Messages from one socket are handled
// one at a time under mu.
type session struct {
	mu     sync.Mutex
	game   *game.GameState
	logger Logger
}

func newSession(generator *movegen.Generator, logger Logger) *session {
	return &session{
		game:   game.NewGameState(StartingBoard, White, generator),
		logger: logger,
	}
}

func (s *session) handle(message MessageFromWeb) UpdateToWeb {
	s.mu.Lock()
	defer s.mu.Unlock()

	var update UpdateToWeb
	var err Error

	if message.State != nil {
		player := s.game.Player
		if message.Player != nil {
			player, err = PlayerFromString(*message.Player)
		}
		if IsNil(err) {
			var g *game.GameState
			g, err = game.NewGameStateFromString(*message.State, player, s.game.Generator())
			if IsNil(err) {
				s.game = g
			}
		}
	} else if message.Player != nil {
		var player Player
		player, err = PlayerFromString(*message.Player)
		if IsNil(err) {
			s.game.Player = player
			s.game.Regenerate()
		}
	} else if message.Selection != nil {
		if *message.Selection != "" {
			update.Selection = *message.Selection
			update.PossibleMoves, err = s.game.SelectionMoves(*message.Selection)
		}
	} else if message.Move != nil {
		err = s.game.PerformMoveFromString(*message.Move)
	} else if message.Rewind != nil {
		s.game.Rewind(*message.Rewind)
	}

	if !IsNil(err) {
		s.logger.Println("handle:", message, err)
		update.Error = err.Error()
	}

	update.State = s.game.StateString()
	update.Player = s.game.Player.String()
	if lastMove := s.game.LastMove(); lastMove.HasValue() {
		update.LastMove = lastMove.Value().String()
	}
	if update.PossibleMoves == nil {
		update.PossibleMoves = []string{}
	}
	return update
}

func websocketHandler(generator *movegen.Generator, upgrader websocket.Upgrader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := upgrader.Upgrade(w, r, nil)
		if !IsNil(err) {
			log.Println("upgrade:", err)
			return
		}
		defer c.Close()

		logger := FuncLogger(func(message string) {
			log.Print("server: ", message)
		})
		s := newSession(generator, logger)

		var send = func(update UpdateToWeb) {
			logger.Println("sending", update)
			bytes, err := json.Marshal(update)
			if !IsNil(err) {
				logger.Println("update: json marshal:", err)
				return
			}
			err = c.WriteMessage(websocket.TextMessage, bytes)
			if !IsNil(err) {
				logger.Println("websocket:", err)
			}
		}

		send(s.handle(MessageFromWeb{}))

		for {
			_, bytes, err := c.ReadMessage()
			if !IsNil(err) {
				logger.Printf("read: %v", err)
				break
			}

			var message MessageFromWeb
			err = json.Unmarshal(bytes, &message)
			if !IsNil(err) {
				logger.Println("json unmarshal:", err)
				continue
			}
			logger.Println("received", message)
			send(s.handle(message))
		}
	}
}

func newRouter(generator *movegen.Generator) *mux.Router {
	var index = func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, RootDir()+"/static/index.html")
	}

	router := mux.NewRouter()
	router.HandleFunc("/ws", websocketHandler(generator, websocket.Upgrader{}))
	router.PathPrefix("/static").Handler(
		http.StripPrefix("/static", http.FileServer(http.Dir(RootDir()+"/static"))))
	router.HandleFunc("/", index)
	return router
}

func main() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintln(os.Stderr, fmt.Sprint(r))
			fmt.Fprintln(os.Stderr, string(debug.Stack()))
		}
	}()

	port := 8002

	args := os.Args[1:]
	for _, arg := range args {
		if parsed, err := strconv.ParseInt(arg, 10, 64); err == nil {
			port = int(parsed)
		}
	}

	var err Error
	log.Println("serving at", port)

	router := newRouter(movegen.DefaultGenerator())
	err = Wrap(http.ListenAndServe(fmt.Sprintf(":%v", port), router))
	if !IsNil(err) {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
