package server

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"

	"github.com/go-home-io/gluehome/plugins/common"
	"github.com/go-home-io/gluehome/plugins/device/enums"
	"github.com/go-home-io/gluehome/providers"
	"github.com/gorilla/websocket"
)

// Incoming WS command.
type wsCmd struct {
	ID    string `json:"id"`
	State string `json:"state"`
}

// Outgoing WS lock update.
type wsLockUpdate struct {
	ID        string                         `json:"id"`
	Name      string                         `json:"name"`
	State     map[enums.Property]interface{} `json:"state"`
	FirstSeen bool                           `json:"first_seen"`
}

// Single WS connection.
type wsConnection struct {
	sync.Mutex
	conn *websocket.Conn
	usr  *providers.AuthenticatedUser
}

// Serializes writes into the connection.
func (c *wsConnection) writeJSON(v interface{}) {
	c.Lock()
	defer c.Unlock()
	c.conn.WriteJSON(v) // nolint: gosec, errcheck
}

// Handles WS upgrade request.
func (s *GlueServer) handleWS(writer http.ResponseWriter, request *http.Request) {
	usr := getContextUser(request)
	c, err := s.wsSettings.Upgrade(writer, request, nil)
	if err != nil {
		s.Logger.Error("Failed to establish a WS connection", err, common.LogUserNameToken, usr.Username)
		return
	}

	go s.processWSConnection(&wsConnection{conn: c, usr: usr})
}

// Processes WS connection: streams lock updates until either side closes.
//noinspection GoUnhandledErrorResult
func (s *GlueServer) processWSConnection(c *wsConnection) {
	ctx, cancel := context.WithCancel(s.ctx)
	defer cancel()

	stop := make(chan bool, 1)
	go s.processIncomingWSMessages(ctx, c, stop)
	subID, updates := s.Settings.FanOut().SubscribeLockUpdates()
	defer s.Settings.FanOut().UnSubscribeLockUpdates(subID)
	defer c.conn.Close() // nolint: errcheck

	for {
		select {
		case <-stop:
			return
		case <-ctx.Done():
			return
		case msg, ok := <-updates:
			if !ok {
				return
			}

			if c.usr.LockGet(msg.ID) {
				c.writeJSON(&wsLockUpdate{
					ID:        msg.ID,
					Name:      msg.Name,
					State:     msg.State,
					FirstSeen: msg.FirstSeen,
				})
			}
		}
	}
}

// Processes incoming WS messages.
//noinspection GoUnhandledErrorResult
func (s *GlueServer) processIncomingWSMessages(ctx context.Context, c *wsConnection, stop chan bool) {
	defer c.conn.Close() // nolint: errcheck
	for {
		mt, message, err := c.conn.ReadMessage()
		if err != nil {
			s.Logger.Info("Closing WS connection for user", common.LogUserNameToken, c.usr.Username)
			stop <- true
			return
		}

		// Ping request comes as a un-wrapped string
		if 4 == len(message) {
			c.Lock()
			c.conn.WriteMessage(mt, []byte("pong")) // nolint: gosec, errcheck
			c.Unlock()
			continue
		}

		cmd := &wsCmd{}
		err = json.Unmarshal(message, cmd)
		if err != nil {
			s.Logger.Error("Failed to un-marshal WS command", err, common.LogUserNameToken, c.usr.Username)
			continue
		}

		go func() {
			c.writeJSON(s.commandSetState(ctx, c.usr, cmd.ID, cmd.State))
		}()
	}
}
