package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	StatesGenerated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "glancix_states_generated_total",
		Help: "Total number of scene state documents generated",
	}, []string{"scene"})
	LayersBuilt = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "glancix_layers_built_total",
		Help: "Total number of layer definitions built, by layer type",
	}, []string{"type"})
	RecipeReloads = promauto.NewCounter(prometheus.CounterOpts{
		Name: "glancix_recipe_reloads_total",
		Help: "Total number of recipe reloads triggered by file changes",
	})
	WsClients = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "glancix_websocket_clients",
		Help: "Number of connected websocket clients",
	})
)

// Handler should usually be mounted at /metrics
func Handler() http.Handler {
	return promhttp.Handler()
}
