/*
 * Copyright 2025 Carver Automation Corporation.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package api

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/gorilla/websocket"
)

const (
	streamWriteWait = 10 * time.Second
	streamPongWait  = 60 * time.Second
)

// StreamMessage is one frame of the status stream.
type StreamMessage struct {
	Type      string          `json:"type"` // "status" or "error"
	Data      *StatusResponse `json:"data,omitempty"`
	Error     string          `json:"error,omitempty"`
	Timestamp time.Time       `json:"timestamp"`
}

// streamStatus pushes a status snapshot over a WebSocket every StatusInterval until the
// client goes away.
func (s *Server) streamStatus(w http.ResponseWriter, r *http.Request) {
	upgrader := websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     s.checkWebSocketOrigin,
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("remote_addr", r.RemoteAddr).
			Str("origin", r.Header.Get("Origin")).
			Msg("Failed to upgrade to WebSocket")

		return
	}

	defer func() {
		s.logger.Debug().Str("remote_addr", r.RemoteAddr).Msg("Closing status stream")
		_ = conn.Close()
	}()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	go s.drainClient(conn, cancel)

	ticker := time.NewTicker(time.Duration(s.cfg.StatusInterval))
	defer ticker.Stop()

	for {
		if err := s.sendStatus(ctx, conn); err != nil {
			s.logger.Debug().Err(err).Str("remote_addr", r.RemoteAddr).Msg("Status stream ended")
			return
		}

		select {
		case <-ctx.Done():
			_ = conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
				time.Now().Add(streamWriteWait))

			return
		case <-ticker.C:
		}
	}
}

func (s *Server) sendStatus(ctx context.Context, conn *websocket.Conn) error {
	awaitCtx, cancel := context.WithTimeout(ctx, defaultAwaitTimeout)
	defer cancel()

	msg := StreamMessage{Type: "status", Timestamp: time.Now()}

	resp, err := s.snapshot(awaitCtx)
	if err != nil {
		msg.Type = "error"
		msg.Error = err.Error()
	} else {
		msg.Data = resp
	}

	if err := conn.SetWriteDeadline(time.Now().Add(streamWriteWait)); err != nil {
		return err
	}

	if err := conn.WriteJSON(msg); err != nil {
		return err
	}

	return conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(streamWriteWait))
}

// drainClient reads until the client closes so control frames are processed.
func (*Server) drainClient(conn *websocket.Conn, cancel context.CancelFunc) {
	defer cancel()

	_ = conn.SetReadDeadline(time.Now().Add(streamPongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(streamPongWait))
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}

		_ = conn.SetReadDeadline(time.Now().Add(streamPongWait))
	}
}

func (s *Server) checkWebSocketOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}

	if u, err := url.Parse(origin); err == nil && u.Host == r.Host {
		return true
	}

	for _, allowed := range s.cfg.CORS.AllowedOrigins {
		if allowed == "*" || allowed == origin {
			return true
		}
	}

	s.logger.Warn().Str("origin", origin).Msg("Rejected WebSocket origin")

	return false
}
