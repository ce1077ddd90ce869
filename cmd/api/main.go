package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/FedeLo13/ceramic-affair-web/cmd/app"
	"github.com/FedeLo13/ceramic-affair-web/internal/config"
	handlers "github.com/FedeLo13/ceramic-affair-web/internal/handler"
	"github.com/FedeLo13/ceramic-affair-web/internal/middleware"
)

func main() {
	cfg := config.LoadConfig()

	if cfg.JWTSecretKey == "" {
		log.Fatal("JWT_SECRET_KEY is not set")
	}

	db, _, services := app.App(cfg)
	defer db.CloseDB()

	handler := handlers.NewHandlers(services, cfg)

	router := mux.NewRouter()
	router.HandleFunc("/health", handlers.HealthHandler).Methods(http.MethodGet)

	public := router.PathPrefix("/api/public").Subrouter()

	public.HandleFunc("/login/login", handler.Login).Methods(http.MethodPost)

	public.HandleFunc("/productos/filtrar", handler.FilterProducts).Methods(http.MethodGet)
	public.HandleFunc("/productos/todos", handler.GetAllProducts).Methods(http.MethodGet)
	public.HandleFunc("/productos/{id:[0-9]+}", handler.GetProduct).Methods(http.MethodGet)

	public.HandleFunc("/categorias/todas", handler.GetAllCategories).Methods(http.MethodGet)
	public.HandleFunc("/categorias/{id:[0-9]+}", handler.GetCategory).Methods(http.MethodGet)

	public.HandleFunc("/imagenes/{id:[0-9]+}", handler.GetImage).Methods(http.MethodGet)

	public.HandleFunc("/find-me-posts/todos", handler.GetAllFindMePosts).Methods(http.MethodGet)
	public.HandleFunc("/find-me-posts/{id:[0-9]+}", handler.GetFindMePost).Methods(http.MethodGet)

	// unauthenticated form endpoints get a per-IP rate cap
	limited := middleware.RateLimitMiddleware(5, time.Minute)
	public.Handle("/contacto/enviar",
		limited(http.HandlerFunc(handler.SendContact))).Methods(http.MethodPost)
	public.Handle("/suscriptores/suscribir",
		limited(http.HandlerFunc(handler.Subscribe))).Methods(http.MethodPost)
	public.HandleFunc("/suscriptores/verificar", handler.VerifySubscriber).Methods(http.MethodGet)
	public.HandleFunc("/suscriptores/desuscribir", handler.Unsubscribe).Methods(http.MethodGet)

	admin := router.PathPrefix("/api/admin").Subrouter()
	admin.Use(mux.MiddlewareFunc(middleware.AuthMiddleware(services.Auth)))

	admin.HandleFunc("/productos/crear", handler.CreateProduct).Methods(http.MethodPost)
	admin.HandleFunc("/productos/{id:[0-9]+}", handler.UpdateProduct).Methods(http.MethodPut)
	admin.HandleFunc("/productos/{id:[0-9]+}/stock", handler.UpdateProductStock).Methods(http.MethodPatch)
	admin.HandleFunc("/productos/{id:[0-9]+}", handler.DeleteProduct).Methods(http.MethodDelete)

	admin.HandleFunc("/categorias/crear", handler.CreateCategory).Methods(http.MethodPost)
	admin.HandleFunc("/categorias/{id:[0-9]+}", handler.UpdateCategory).Methods(http.MethodPut)
	admin.HandleFunc("/categorias/{id:[0-9]+}", handler.DeleteCategory).Methods(http.MethodDelete)

	admin.HandleFunc("/imagenes/crear", handler.UploadImage).Methods(http.MethodPost)
	admin.HandleFunc("/imagenes/{id:[0-9]+}", handler.DeleteImage).Methods(http.MethodDelete)

	admin.HandleFunc("/find-me-posts/crear", handler.CreateFindMePost).Methods(http.MethodPost)
	admin.HandleFunc("/find-me-posts/{id:[0-9]+}", handler.UpdateFindMePost).Methods(http.MethodPut)
	admin.HandleFunc("/find-me-posts/{id:[0-9]+}", handler.DeleteFindMePost).Methods(http.MethodDelete)

	admin.HandleFunc("/newsletter/enviar", handler.SendNewsletter).Methods(http.MethodPost)
	admin.HandleFunc("/plantilla/obtener", handler.GetNewsletterTemplate).Methods(http.MethodGet)
	admin.HandleFunc("/plantilla/modificar", handler.UpdateNewsletterTemplate).Methods(http.MethodPut)

	handlerChain := middleware.Chain(
		router,
		middleware.LoggingMiddleware,
		middleware.CORSMiddleware,
	)

	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	log.Printf("Server listening on %s", addr)

	if err := http.ListenAndServe(addr, handlerChain); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
