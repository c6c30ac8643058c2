package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"

	"campusnav/pkg/campusdata"
	"campusnav/pkg/server/rest"
	"campusnav/pkg/server/rest/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	listenAddr = flag.String("listenaddr", defaultListenAddr(), "server listen address")
)

func defaultListenAddr() string {
	// .env overrides are optional, absence is fine
	_ = godotenv.Load()
	if addr := os.Getenv("CAMPUSNAV_LISTEN_ADDR"); addr != "" {
		return addr
	}
	return ":5000"
}

func main() {
	flag.Parse()

	nv, err := campusdata.BuildNavigator()
	if err != nil {
		log.Fatal(err)
	}

	navigatorSvc, err := service.NewNavigationService(nv)
	if err != nil {
		log.Fatal(err)
	}

	reg := prometheus.NewRegistry()
	m := rest.NewMetrics(reg)

	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(rest.PromeHttpMiddleware(m))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	rest.NavigatorRouter(r, navigatorSvc)

	fmt.Printf("\ncampus navigator ready: %d locations, %d walkways\n",
		len(nv.GetAllLocations()), len(campusdata.Paths))
	fmt.Printf("server started at %s\n", *listenAddr)

	log.Fatal(http.ListenAndServe(*listenAddr, r))
}
