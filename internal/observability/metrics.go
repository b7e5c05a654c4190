package observability

import (
	"log"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	SearchesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dealfinder_searches_total",
			Help: "Buscas realizadas, por resultado (ok, empty, error)",
		},
		[]string{"outcome"},
	)

	ProductsKept = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "dealfinder_products_kept_total",
			Help: "Produtos que passaram pela normalização",
		},
	)

	ProductsDropped = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dealfinder_products_dropped_total",
			Help: "Produtos descartados na normalização, por motivo",
		},
		[]string{"reason"},
	)

	SearchDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "dealfinder_search_duration_seconds",
			Help:    "Duração da chamada ao provedor de busca",
			Buckets: prometheus.DefBuckets,
		},
	)
)

func Register(reg prometheus.Registerer) {
	reg.MustRegister(SearchesTotal, ProductsKept, ProductsDropped, SearchDuration)
}

func Start(port string) {
	Register(prometheus.DefaultRegisterer)

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	go func() {
		if err := http.ListenAndServe(":"+port, mux); err != nil {
			log.Printf("[Metrics] Servidor de métricas parou: %v", err)
		}
	}()
}
