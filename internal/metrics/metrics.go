package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

const (
	namespace = "tictactoe"

	resultOK    = "ok"
	resultError = "error"
)

// Metrics collects game counters on a dedicated registry.
type Metrics struct {
	registry *prometheus.Registry

	gamesCreated  prometheus.Counter
	playersJoined *prometheus.CounterVec
	moves         *prometheus.CounterVec
	gamesFinished *prometheus.CounterVec
	// activeGames is created minus finished in this process. Games that are
	// abandoned or outlive a restart are not tracked.
	activeGames prometheus.Gauge
}

func New() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,

		gamesCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "games_created_total",
			Help:      "Total number of games created",
		}),
		playersJoined: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "players_joined_total",
				Help:      "Total number of add player attempts by result",
			},
			[]string{"result"},
		),
		moves: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "moves_total",
				Help:      "Total number of moves by result",
			},
			[]string{"result"},
		),
		gamesFinished: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "games_finished_total",
				Help:      "Total number of finished games by outcome",
			},
			[]string{"outcome"},
		),
		activeGames: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "active_games",
			Help:      "Games created minus games finished by this process; abandoned games stay counted",
		}),
	}

	registry.MustRegister(
		m.gamesCreated,
		m.playersJoined,
		m.moves,
		m.gamesFinished,
		m.activeGames,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

func (that *Metrics) GameCreated() {
	that.gamesCreated.Inc()
	that.activeGames.Inc()
}

func (that *Metrics) PlayerJoined(err error) {
	that.playersJoined.WithLabelValues(result(err)).Inc()
}

func (that *Metrics) MoveExecuted(err error) {
	that.moves.WithLabelValues(result(err)).Inc()
}

func (that *Metrics) GameFinished(state tictactoe.State) {
	that.gamesFinished.WithLabelValues(state.String()).Inc()
	that.activeGames.Dec()
}

// Handler serves the registry in the Prometheus exposition format.
func (that *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(that.registry, promhttp.HandlerOpts{Registry: that.registry})
}

func (that *Metrics) Registry() *prometheus.Registry {
	return that.registry
}

// result labels a game error by its code.
func result(err error) string {
	if err == nil {
		return resultOK
	}

	if code := apperror.Code(err); code != "" {
		return code
	}

	return resultError
}
