package api

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/glancix/glancix/lib/metrics"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(req *http.Request) bool {
		return true
	},
}

// StatePacket is one websocket message: a scene name and its freshly
// generated state document.
type StatePacket struct {
	Event string      `json:"event"`
	Scene string      `json:"scene"`
	State interface{} `json:"state"`
}

// @Summary	Open websocket streaming regenerated viewer states
// @Router		/api/ws [get]
// @Param		Upgrade	header	string	true	"websocket"
// @Tags		base
// @Success	101
func (a *Api) handleWebsocket(w http.ResponseWriter, req *http.Request) {
	ws, err := upgrader.Upgrade(w, req, nil)
	if err != nil {
		http.Error(w, fmt.Sprintf("couldn't make websocket: %s", err), 400)
		return
	}
	defer func(ws *websocket.Conn) {
		err := ws.Close()
		if err != nil {
			log.Printf("could not close websocket: %s\n", err.Error())
		}
	}(ws)
	a.wsClients[ws] = true

	go a.websocketWriter(ws)

	a.Stats.WsClients = len(a.wsClients)
	metrics.WsClients.Set(float64(len(a.wsClients)))

	for {
		_, _, err := ws.ReadMessage()
		if err != nil {
			delete(a.wsClients, ws)
			a.Stats.WsClients = len(a.wsClients)
			metrics.WsClients.Set(float64(len(a.wsClients)))
			break
		}
	}
}

func (a *Api) websocketWriter(ws *websocket.Conn) {
	timeout := 10 * time.Second

	// send every current state on connect
	for _, name := range a.gallery.SceneNames() {
		packet, err := json.Marshal(StatePacket{Event: "state", Scene: name, State: a.gallery.Scene(name)})
		if err != nil {
			continue
		}
		err = ws.SetWriteDeadline(time.Now().Add(timeout))
		if err != nil {
			log.Printf("could not set write deadline: %s\n", err.Error())
			return
		}
		if err := ws.WriteMessage(websocket.TextMessage, packet); err != nil {
			return
		}
	}

	pingTicker := time.NewTicker(2 * time.Second)
	defer func() {
		pingTicker.Stop()
		err := ws.Close()
		if err != nil {
			log.Printf("could not close websocket: %s\n", err.Error())
			return
		}
	}()
	for range pingTicker.C {
		a.Stats.Update()
		packet, err := json.Marshal(a.Stats)
		if err != nil {
			return
		}
		err = ws.SetWriteDeadline(time.Now().Add(timeout))
		if err != nil {
			log.Printf("could not set write deadline: %s\n", err.Error())
			return
		}
		if err := ws.WriteMessage(websocket.TextMessage, packet); err != nil {
			return
		}
	}
}

func (a *Api) pushStateUpdate(sceneName string) {
	scene := a.gallery.Scene(sceneName)
	if scene == nil {
		return
	}
	packet, err := json.Marshal(StatePacket{Event: "state-updated", Scene: sceneName, State: scene})
	if err != nil {
		return
	}
	for ws := range a.wsClients {
		err = ws.SetWriteDeadline(time.Now().Add(10 * time.Second))
		if err != nil {
			log.Printf("could not set write deadline: %s\n", err.Error())
			continue
		}
		if err := ws.WriteMessage(websocket.TextMessage, packet); err != nil {
			continue
		}
	}
}
