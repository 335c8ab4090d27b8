package main

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"
)

const wsMaxMessageBytes = 16 << 10

func (s *server) serveWS(w http.ResponseWriter, r *http.Request) {
	upgrader := websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", slog.Any("error", err))
		return
	}
	conn.SetReadLimit(wsMaxMessageBytes)
	client := &Client{hub: s.hub, send: make(chan []byte, 16)}
	s.hub.Register(client)
	client.sendJSON(wsMessage{Type: "settings", Payload: mustMarshal(s.configs.Get())})

	go func() {
		defer conn.Close()
		if err := writeWSWithHeartbeat(conn, client.send); err != nil {
			s.logger.Debug("websocket writer stopped", slog.Any("error", err))
		}
	}()

	for {
		_, message, err := conn.ReadMessage()
		if err != nil {
			s.hub.Unregister(client)
			return
		}
		var msg wsMessage
		if err := json.Unmarshal(message, &msg); err != nil {
			client.sendJSON(wsMessage{Type: "error", Payload: mustMarshal(errorBody("invalid message"))})
			continue
		}
		s.handleWSMessage(client, msg)
	}
}

func (s *server) handleWSMessage(client *Client, msg wsMessage) {
	switch msg.Type {
	case "choose":
		var req chooseRequest
		if err := json.Unmarshal(msg.Payload, &req); err != nil {
			client.sendJSON(wsMessage{Type: "error", ID: msg.ID, Payload: mustMarshal(errorBody("invalid payload"))})
			return
		}
		decision, err := decide(s.configs.Get(), req, s.logger)
		if err != nil {
			client.sendJSON(wsMessage{Type: "error", ID: msg.ID, Payload: mustMarshal(errorBody(err.Error()))})
			return
		}
		client.sendJSON(wsMessage{Type: "decision", ID: msg.ID, Payload: mustMarshal(decision)})
		s.hub.Publish(decision)
	case "request_settings":
		client.sendJSON(wsMessage{Type: "settings", ID: msg.ID, Payload: mustMarshal(s.configs.Get())})
	default:
		client.sendJSON(wsMessage{Type: "error", ID: msg.ID, Payload: mustMarshal(errorBody("unknown message type"))})
	}
}
