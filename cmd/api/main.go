package main

import (
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tropicoretreats/leads-api/internal/infra/database"
	"github.com/tropicoretreats/leads-api/internal/infra/http/handlers"
	"github.com/tropicoretreats/leads-api/internal/infra/http/middleware"
	"github.com/tropicoretreats/leads-api/internal/infra/identity"
	"github.com/tropicoretreats/leads-api/internal/infra/mail"
	"github.com/tropicoretreats/leads-api/internal/infra/queue"
	"github.com/tropicoretreats/leads-api/internal/usecase"
)

func main() {
	godotenv.Load()

	db, err := database.NewDBConnection(os.Getenv("DATABASE_URL"))
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	rabbitMQ, err := queue.NewRabbitMQ(
		envOr("RABBITMQ_USER", "guest"),
		envOr("RABBITMQ_PASS", "guest"),
		envOr("RABBITMQ_HOST", "localhost"),
		envOr("RABBITMQ_PORT", "5672"),
	)
	if err != nil {
		log.Fatal(err)
	}
	defer rabbitMQ.Conn.Close()
	defer rabbitMQ.Ch.Close()

	// Stores
	leadStore := database.NewLeadStore(db)
	noteStore := database.NewNoteStore(db)
	teamStore := database.NewTeamMemberStore(db)

	// Collaborators: one long-lived instance each, injected explicitly.
	ids := identity.Generator{}
	clock := identity.UTCClock{}
	producer := queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)

	mailPort, _ := strconv.Atoi(envOr("MAIL_PORT", "587"))
	sender := mail.NewEmailSender(os.Getenv("MAIL_HOST"), mailPort, os.Getenv("MAIL_USER"), os.Getenv("MAIL_PASS"))
	sender.FromName = envOr("FROM_NAME", "Tropico Retreats")
	sender.TeamFrom = envOr("FROM_EMAIL_TEAM", "leads@tropicoretreat.com")
	sender.CustomerFrom = envOr("FROM_EMAIL_CUSTOMER", "hello@tropicoretreat.com")
	sender.TeamRecipients = splitEmails(os.Getenv("TEAM_EMAILS"))
	sender.DashboardURL = envOr("ADMIN_DASHBOARD_URL", "https://admin.tropicoretreat.com")
	sender.WhatsAppNumber = envOr("WHATSAPP_NUMBER", "+447000000000")

	// Notification worker (consumes the queue, sends both emails)
	worker := queue.NewWorker(rabbitMQ.Ch, sender)
	go worker.Start(queue.QueueName)

	// Engine
	paginator := usecase.NewPaginator(leadStore)
	audit := usecase.NewAuditTrail(noteStore, ids, clock)

	createLeadUC := usecase.NewCreateLeadUseCase(leadStore, ids, clock, producer)
	listLeadsUC := usecase.NewListLeadsUseCase(paginator)
	getLeadUC := usecase.NewGetLeadUseCase(leadStore, noteStore)
	updateLeadUC := usecase.NewUpdateLeadUseCase(leadStore, audit, clock)
	notesUC := usecase.NewNotesUseCase(leadStore, noteStore, ids, clock)
	listUsersUC := usecase.NewListTeamMembersUseCase(teamStore)

	// Handlers
	publicHandler := handlers.NewLeadPublicHandler(createLeadUC)
	adminHandler := handlers.NewLeadAdminHandler(listLeadsUC, getLeadUC, updateLeadUC, notesUC)
	userHandler := handlers.NewUserHandler(listUsersUC)
	healthHandler := handlers.NewHealthHandler(db, rabbitMQ.Conn)

	// Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"https://tropicoretreat.com", "https://admin.tropicoretreat.com", "http://localhost:5173"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization", "X-User-Id", "X-User-Name"},
	}))

	r.Post("/leads", publicHandler.HandleCreate)

	r.Route("/admin/leads", func(r chi.Router) {
		r.Get("/", adminHandler.HandleList)
		r.Get("/{id}", adminHandler.HandleGet)
		r.Patch("/{id}", adminHandler.HandleUpdate)
		r.Post("/{id}/notes", adminHandler.HandleAddNote)
		r.Patch("/{id}/notes/{noteId}", adminHandler.HandleEditNote)
	})

	r.Get("/admin/users", userHandler.HandleList)

	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	port := ":" + envOr("PORT", "8080")
	log.Printf("leads API listening on %s", port)
	http.ListenAndServe(port, r)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitEmails(raw string) []string {
	var emails []string
	for _, e := range strings.Split(raw, ",") {
		if e = strings.TrimSpace(e); e != "" {
			emails = append(emails, e)
		}
	}
	return emails
}
