package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/coder/websocket"

	mandel "github.com/jccutler/mathvis"
)

// webServer creates the http server with the irpc websocket endpoint, the
// JSON websocket endpoint, and the landmark listing.
func webServer(port int, svc *renderService, l *wsListener) *http.Server {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           newMux(svc, l),
		ReadHeaderTimeout: 5 * time.Second,
	}

	log.Printf("listening on http://localhost:%d", port)
	return srv
}

func newMux(svc *renderService, l *wsListener) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", irpcHandler(l))
	mux.HandleFunc("/json", jsonHandler(svc))
	mux.HandleFunc("GET /regions", regionsHandler)
	return mux
}

func accept(w http.ResponseWriter, r *http.Request) (*websocket.Conn, error) {
	return websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: []string{"*"}, // TODO: restrict once the service sits behind a known front end
	})
}

// irpcHandler upgrades the connection and passes it to the irpc server
// through l.
func irpcHandler(l *wsListener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := accept(w, r)
		if err != nil {
			log.Println(err)
			return
		}
		if !l.offer(c) {
			c.Close(websocket.StatusGoingAway, "server shutting down")
		}
	}
}

// jsonHandler upgrades the connection and serves JSON render requests on it
// until the client goes away.
func jsonHandler(svc *renderService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := accept(w, r)
		if err != nil {
			log.Println(err)
			return
		}
		defer c.CloseNow()

		log.Printf("got json connection from: %s", r.RemoteAddr)
		err = svc.serve(r.Context(), c)
		switch websocket.CloseStatus(err) {
		case websocket.StatusNormalClosure, websocket.StatusGoingAway:
			log.Printf("json connection from %s closed", r.RemoteAddr)
			return
		}
		if err != nil {
			log.Printf("json connection from %s: %v", r.RemoteAddr, err)
		}
	}
}

func regionsHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(mandel.Landmarks()); err != nil {
		log.Printf("regions: %v", err)
	}
}
