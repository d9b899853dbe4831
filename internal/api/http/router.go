package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/fotos-express/internal/api/http/handlers"
	"github.com/spec-kit/fotos-express/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health          *handlers.HealthHandler
	Zones           *handlers.ZonesHandler
	Businesses      *handlers.BusinessesHandler
	Activities      *handlers.ActivitiesHandler
	AmbulantClients *handlers.AmbulantClientsHandler
	ActivityClients *handlers.ActivityClientsHandler
	Services        *handlers.ServicesHandler
	Staff           *handlers.StaffHandler
	AuthMiddleware  *auth.AuthMiddleware
	// Seed is nil when the demo loader must not be exposed.
	Seed *handlers.SeedHandler
}

// RegisterRoutes wires HTTP routes under /api.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	api := app.Group("/api")

	api.Get("/health", cfg.Health.Live)
	api.Get("/health/ready", cfg.Health.Ready)

	zones := api.Group("/zones")
	zones.Get("/", cfg.Zones.List)
	zones.Get("/active", cfg.Zones.ListActive)
	zones.Post("/", cfg.Zones.Create)
	zones.Put("/:id", cfg.Zones.Update)
	zones.Put("/:id/staff", cfg.Zones.AssignStaff)
	zones.Delete("/:id", cfg.Zones.Delete)

	businesses := api.Group("/businesses")
	businesses.Get("/", cfg.Businesses.List)
	businesses.Get("/active", cfg.Businesses.ListActive)
	businesses.Post("/", cfg.Businesses.Create)
	businesses.Put("/:id", cfg.Businesses.Update)
	businesses.Delete("/:id", cfg.Businesses.Delete)

	activities := api.Group("/activities")
	activities.Get("/", cfg.Activities.List)
	activities.Get("/active", cfg.Activities.ListActive)
	activities.Get("/business/:businessId", cfg.Activities.ListByBusiness)
	activities.Post("/", cfg.Activities.Create)
	activities.Put("/:id", cfg.Activities.Update)
	activities.Put("/:id/staff", cfg.Activities.AssignStaff)
	activities.Delete("/:id", cfg.Activities.Delete)

	ambulant := api.Group("/ambulant-clients")
	ambulant.Get("/", cfg.AmbulantClients.List)
	ambulant.Get("/zone/:zoneId", cfg.AmbulantClients.ListByZone)
	ambulant.Get("/phone/:phone", cfg.AmbulantClients.FindByPhone)
	ambulant.Get("/staff/:staffId", cfg.AmbulantClients.ListForStaff)
	ambulant.Get("/:id", cfg.AmbulantClients.Get)
	ambulant.Post("/", cfg.AmbulantClients.Create)
	ambulant.Put("/:id", cfg.AmbulantClients.Update)
	ambulant.Put("/:id/photos", cfg.AmbulantClients.UploadPhotos)
	ambulant.Delete("/:id", cfg.AmbulantClients.Delete)

	activityClients := api.Group("/activity-clients")
	activityClients.Get("/", cfg.ActivityClients.List)
	activityClients.Get("/activity/:activityId", cfg.ActivityClients.ListByActivity)
	activityClients.Get("/phone/:phone", cfg.ActivityClients.FindByPhone)
	activityClients.Get("/staff/:staffId", cfg.ActivityClients.ListForStaff)
	activityClients.Get("/:id", cfg.ActivityClients.Get)
	activityClients.Post("/", cfg.ActivityClients.Create)
	activityClients.Put("/:id", cfg.ActivityClients.Update)
	activityClients.Put("/:id/photos", cfg.ActivityClients.UploadPhotos)
	activityClients.Delete("/:id", cfg.ActivityClients.Delete)

	services := api.Group("/services")
	services.Get("/", cfg.Services.List)
	services.Post("/", cfg.Services.Create)
	services.Put("/:id", cfg.Services.Update)
	services.Delete("/:id", cfg.Services.Delete)

	staff := api.Group("/staff")
	staff.Get("/", cfg.Staff.ListApplications)
	staff.Post("/", cfg.Staff.SubmitApplication)
	staff.Post("/approve/:applicationId", cfg.Staff.Approve)
	staff.Get("/validate-token", cfg.Staff.ValidateToken)
	staff.Post("/activate", cfg.Staff.Activate)
	staff.Post("/login", cfg.Staff.Login)
	staff.Post("/change-password", cfg.Staff.ChangePassword)
	staff.Get("/user/:email", cfg.Staff.GetUser)
	staff.Get("/users", cfg.Staff.ListUsers)

	me := staff.Group("/me", cfg.AuthMiddleware.Handle, auth.RequireActiveStaff())
	me.Get("/", cfg.Staff.Me)
	me.Get("/clients", cfg.Staff.MyClients)

	staff.Put("/:id/status", cfg.Staff.UpdateApplicationStatus)
	staff.Delete("/:id", cfg.Staff.DeleteApplication)

	if cfg.Seed != nil {
		api.Post("/seed", cfg.Seed.Seed)
	}
}
