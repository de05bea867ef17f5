// Package api serves generated viewer states over HTTP: plain JSON
// endpoints for tooling, a websocket that pushes regenerated states, and
// the usual operational endpoints (stats, metrics, swagger).
package api

import (
	"fmt"
	"log"
	"net/http"
	"runtime/pprof"
	"time"

	"github.com/gorilla/websocket"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/glancix/glancix/docs"
	"github.com/glancix/glancix/lib/config"
	"github.com/glancix/glancix/lib/gallery"
	"github.com/glancix/glancix/lib/metrics"
	"github.com/glancix/glancix/lib/stats"
)

type Api struct {
	srv     http.Server
	mux     *http.ServeMux
	cfg     *config.ApiCfg
	gallery *gallery.Gallery

	Stats *stats.Stats

	wsClients map[*websocket.Conn]bool
}

func New(cfg *config.ApiCfg, g *gallery.Gallery) *Api {
	a := &Api{}
	a.cfg = cfg
	a.mux = http.NewServeMux()
	a.gallery = g
	a.srv.Addr = cfg.Bind
	a.srv.Handler = a.mux
	a.wsClients = make(map[*websocket.Conn]bool)

	g.AddEventListener("state-updated", func(g *gallery.Gallery, data interface{}) {
		event := data.(gallery.EventDataStateUpdated)
		a.pushStateUpdate(event.Scene)
	})

	a.Stats = stats.New()
	return a
}

func (a *Api) Serve() error {
	if a.cfg.EnableProfiler {
		a.mux.HandleFunc("/prof", a.profileCPU)
	}
	a.mux.HandleFunc("/api/kill", a.suicide)
	a.mux.HandleFunc("/api/stats", a.getStats)
	a.mux.HandleFunc("/api/scenes", a.handleScenes)
	a.mux.HandleFunc("/api/state/{scene}", a.handleState)
	a.mux.HandleFunc("/api/config", a.handleConfig)
	a.mux.HandleFunc("/api/ws", a.handleWebsocket)
	a.mux.Handle("/metrics", metrics.Handler())
	a.mux.Handle("/swagger/", httpSwagger.Handler())
	return a.srv.ListenAndServe()
}

func (a *Api) profileCPU(w http.ResponseWriter, _ *http.Request) {
	err := pprof.StartCPUProfile(w)
	if err != nil {
		http.Error(w, fmt.Sprintf("Could not start CPU profile: %s", err), http.StatusInternalServerError)
		return
	}
	time.Sleep(10 * time.Second)
	pprof.StopCPUProfile()
}

// @Summary	Ask the server to shut down
// @Router		/api/kill [post]
// @Tags		base
// @Success	200
func (a *Api) suicide(w http.ResponseWriter, _ *http.Request) {
	log.Printf("shutting down as per api request")
	a.gallery.ShutdownRequested = true
	_, err := fmt.Fprintf(w, "\"ok\"\n")
	if err != nil {
		log.Printf("could not write response: %s\n", err.Error())
		return
	}
}

func ServeInBackground(g *gallery.Gallery, cfg *config.ApiCfg) *Api {
	var theApi *Api
	if cfg != nil {
		theApi = New(cfg, g)

		log.Printf("starting web server\n")
		go func() {
			err := theApi.Serve()
			if err != nil {
				log.Fatalf("could not start web server: %s", err)
			}
		}()
	}
	return theApi
}
