package handler

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

// NewRouter creates a new HTTP router with all routes configured
func NewRouter(
	pdfHandler *PDFHandler,
	uiHandler *UIHandler,
	allowedOrigins []string,
	middlewares ...mux.MiddlewareFunc,
) http.Handler {
	router := mux.NewRouter()

	// Health check endpoint
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok","service":"pdf-toolkit"}`))
	}).Methods(http.MethodGet)

	router.HandleFunc("/", uiHandler.Index).Methods(http.MethodGet)

	// PDF operations. Registered on the root router so that a wrong method
	// reaches MethodNotAllowedHandler.
	const pdfPrefix = "/api/v1/pdf"
	router.HandleFunc(pdfPrefix+"/merge", pdfHandler.Merge).Methods(http.MethodPost)
	router.HandleFunc(pdfPrefix+"/rotate", pdfHandler.Rotate).Methods(http.MethodPost)
	router.HandleFunc(pdfPrefix+"/split", pdfHandler.Split).Methods(http.MethodPost)
	router.HandleFunc(pdfPrefix+"/compress", pdfHandler.Compress).Methods(http.MethodPost)
	router.HandleFunc(pdfPrefix+"/extract", pdfHandler.Extract).Methods(http.MethodPost)
	router.HandleFunc(pdfPrefix+"/info", pdfHandler.Inspect).Methods(http.MethodPost)

	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "Not found")
	})
	router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
	})

	// Configure CORS
	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Accept",
			"Accept-Language",
			"Content-Type",
			"X-Request-ID",
		},
		ExposedHeaders: []string{
			"Content-Disposition",
			"X-Page-Count",
			"X-Request-ID",
		},
		MaxAge: 300, // Maximum value not ignored by any of major browsers
	})

	// Middlewares wrap everything, unmatched routes and preflights included
	handler := c.Handler(router)
	for i := len(middlewares) - 1; i >= 0; i-- {
		handler = middlewares[i](handler)
	}
	return handler
}
