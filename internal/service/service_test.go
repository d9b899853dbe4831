package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/fotos-express/internal/auth"
	"github.com/spec-kit/fotos-express/internal/config"
	"github.com/spec-kit/fotos-express/internal/domain"
	"github.com/spec-kit/fotos-express/internal/events"
	"github.com/spec-kit/fotos-express/internal/notification"
	"github.com/spec-kit/fotos-express/internal/persistence"
	"github.com/spec-kit/fotos-express/internal/repository"
	apperrors "github.com/spec-kit/fotos-express/pkg/util"
)

type fakeMailer struct {
	mu   sync.Mutex
	sent []notification.Email
	err  error
}

func (m *fakeMailer) Send(_ context.Context, email notification.Email) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, email)
	return nil
}

type fixture struct {
	repos       *repository.Repositories
	catalog     *CatalogService
	clients     *ClientService
	assignments *AssignmentService
	onboarding  *OnboardingService
	auth        *AuthService
	requests    *RequestService
	seed        *SeedService
	mailer      *fakeMailer
	dispatcher  events.Dispatcher
	clock       *time.Time
}

func testConfig() config.Config {
	return config.Config{
		App: config.AppConfig{BaseURL: "http://fotos.test"},
		Auth: config.AuthConfig{
			JWTSecret:             "test-secret",
			AccessTokenTTLMinutes: 60,
			ActivationTTLHours:    168,
			PasswordMinLength:     8,
			BcryptCost:            bcrypt.MinCost,
		},
		Notification: config.NotificationConfig{TimeoutSeconds: 1},
	}
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	cfg := testConfig()
	store := persistence.NewRedisFromClient(client)
	repos := repository.NewRepositories(store)
	logger := zap.NewNop()
	dispatcher := events.NewInMemoryDispatcher()
	mailer := &fakeMailer{}

	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	clock := &now
	tick := func() time.Time { return *clock }

	denorm := NewDenormalizer(repos.Zones, repos.Businesses, repos.Activities)
	assignments := NewAssignmentService(AssignmentDependencies{
		ZoneRepo:           repos.Zones,
		ActivityRepo:       repos.Activities,
		AmbulantClientRepo: repos.AmbulantClients,
		ActivityClientRepo: repos.ActivityClients,
		Denormalizer:       denorm,
	})
	notifications := NewNotificationService(dispatcher, mailer, logger, cfg.Notification)
	notifications.RegisterHandlers()

	return &fixture{
		repos: repos,
		catalog: NewCatalogService(CatalogDependencies{
			ZoneRepo: repos.Zones, BusinessRepo: repos.Businesses, ActivityRepo: repos.Activities,
			Denormalizer: denorm, Dispatcher: dispatcher, Logger: logger,
		}),
		clients: NewClientService(ClientDependencies{
			AmbulantClientRepo: repos.AmbulantClients, ActivityClientRepo: repos.ActivityClients,
			ZoneRepo: repos.Zones, BusinessRepo: repos.Businesses, ActivityRepo: repos.Activities,
			Denormalizer: denorm, Dispatcher: dispatcher, Logger: logger, Clock: tick,
		}),
		assignments: assignments,
		onboarding: NewOnboardingService(cfg, OnboardingDependencies{
			ApplicationRepo: repos.StaffApplications, StaffUserRepo: repos.StaffUsers,
			NotificationService: notifications, Dispatcher: dispatcher, Logger: logger, Clock: tick,
		}),
		auth: NewAuthService(cfg, AuthDependencies{
			StaffUserRepo: repos.StaffUsers, AssignmentService: assignments, Logger: logger, Clock: tick,
		}),
		requests:   NewRequestService(RequestDependencies{ServiceRequestRepo: repos.ServiceRequests, ApplicationRepo: repos.StaffApplications, Clock: tick}),
		seed:       NewSeedService(repos, logger),
		mailer:     mailer,
		dispatcher: dispatcher,
		clock:      clock,
	}
}

func (f *fixture) submitJavier(t *testing.T) *domain.StaffApplication {
	t.Helper()
	app, err := f.requests.SubmitApplication(context.Background(), &domain.StaffApplication{
		Name:  "Javier Rodriguez",
		Email: "javier@cam.pr",
		Phone: "787-999-8888",
	})
	require.NoError(t, err)
	return app
}

func TestOnboarding_ApproveActivateLogin(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	app := f.submitJavier(t)

	approval, err := f.onboarding.Approve(ctx, app.ID)
	require.NoError(t, err)
	assert.True(t, approval.EmailSent)
	assert.Empty(t, approval.EmailError)
	assert.Contains(t, approval.ActivationLink, "http://fotos.test/activar-cuenta?token=")
	assert.Equal(t, f.clock.Add(7*24*time.Hour), approval.TokenExpiry)
	require.Len(t, f.mailer.sent, 1)
	assert.Equal(t, "javier@cam.pr", f.mailer.sent[0].To)

	user, err := f.repos.StaffUsers.GetByEmail(ctx, "javier@cam.pr")
	require.NoError(t, err)
	assert.False(t, user.IsActive)
	assert.Nil(t, user.PasswordHash)
	require.NotNil(t, user.ActivationToken)
	require.NotNil(t, user.ApplicationID)
	assert.Equal(t, app.ID, *user.ApplicationID)

	stored, err := f.repos.StaffApplications.GetByID(ctx, app.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ApplicationApproved, stored.Status)

	token := *user.ActivationToken
	status, err := f.onboarding.ValidateToken(ctx, token)
	require.NoError(t, err)
	assert.True(t, status.Valid)
	assert.Equal(t, "javier@cam.pr", status.Email)

	_, err = f.onboarding.Activate(ctx, token, "short")
	assert.True(t, apperrors.IsCode(err, apperrors.CodeValidation))
	user, err = f.repos.StaffUsers.GetByEmail(ctx, "javier@cam.pr")
	require.NoError(t, err)
	assert.False(t, user.IsActive)

	activated, err := f.onboarding.Activate(ctx, token, "password123")
	require.NoError(t, err)
	assert.True(t, activated.IsActive)
	assert.Nil(t, activated.ActivationToken)
	assert.Nil(t, activated.TokenExpiry)
	assert.NotNil(t, activated.ActivatedAt)

	_, err = f.onboarding.ValidateToken(ctx, token)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeNotFound))
	_, err = f.onboarding.Activate(ctx, token, "password123")
	assert.True(t, apperrors.IsCode(err, apperrors.CodeNotFound))

	login, err := f.auth.Login(ctx, "javier@cam.pr", "password123")
	require.NoError(t, err)
	assert.Equal(t, "Login successful", login.Message)
	assert.NotEmpty(t, login.Token)
	assert.Empty(t, login.User.AssignedZones)
	assert.Empty(t, login.User.AssignedActivities)
}

func TestOnboarding_Expiry(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	app := f.submitJavier(t)

	_, err := f.onboarding.Approve(ctx, app.ID)
	require.NoError(t, err)
	user, err := f.repos.StaffUsers.GetByEmail(ctx, app.Email)
	require.NoError(t, err)

	*f.clock = f.clock.Add(7*24*time.Hour + time.Minute)

	_, err = f.onboarding.ValidateToken(ctx, *user.ActivationToken)
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeExpired))
	assert.Contains(t, err.Error(), "expired")

	_, err = f.onboarding.Activate(ctx, *user.ActivationToken, "password123")
	assert.True(t, apperrors.IsCode(err, apperrors.CodeExpired))
}

func TestOnboarding_ApproveGuards(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.onboarding.Approve(ctx, "P404")
	assert.True(t, apperrors.IsCode(err, apperrors.CodeNotFound))

	app := f.submitJavier(t)
	_, err = f.onboarding.Approve(ctx, app.ID)
	require.NoError(t, err)

	_, err = f.onboarding.Approve(ctx, app.ID)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeConflict))
	assert.Equal(t, 400, apperrors.ToDomainError(err).HTTPStatus)
}

func TestOnboarding_EmailFailureKeepsAccount(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.mailer.err = errors.New("smtp down")
	app := f.submitJavier(t)

	approval, err := f.onboarding.Approve(ctx, app.ID)
	require.NoError(t, err)
	assert.False(t, approval.EmailSent)
	assert.Equal(t, "smtp down", approval.EmailError)

	_, err = f.repos.StaffUsers.GetByID(ctx, approval.ID)
	assert.NoError(t, err)
}

type failingStatusApplications struct {
	repository.StaffApplicationRepository
}

func (failingStatusApplications) UpdateStatus(context.Context, string, domain.ApplicationStatus) (*domain.StaffApplication, error) {
	return nil, errors.New("store unavailable")
}

func TestOnboarding_StatusUpdateFailureKeepsApproval(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	app := f.submitJavier(t)

	onboarding := NewOnboardingService(testConfig(), OnboardingDependencies{
		ApplicationRepo: failingStatusApplications{f.repos.StaffApplications},
		StaffUserRepo:   f.repos.StaffUsers,
		Clock:           func() time.Time { return *f.clock },
	})

	approval, err := onboarding.Approve(ctx, app.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, approval.ActivationLink)

	user, err := f.repos.StaffUsers.GetByEmail(ctx, "javier@cam.pr")
	require.NoError(t, err)
	assert.Equal(t, approval.ID, user.ID)

	stored, err := f.repos.StaffApplications.GetByID(ctx, app.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ApplicationPending, stored.Status)
}

func TestAuth_LoginFailures(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	_, err := f.seed.Seed(ctx)
	require.NoError(t, err)

	_, err = f.auth.Login(ctx, "nobody@fx.pr", "x")
	assert.True(t, apperrors.IsCode(err, apperrors.CodeUnauthorized))

	_, err = f.auth.Login(ctx, "ziu@fotosexpresspr.com", "wrong-password")
	assert.True(t, apperrors.IsCode(err, apperrors.CodeUnauthorized))

	app := f.submitJavier(t)
	_, err = f.onboarding.Approve(ctx, app.ID)
	require.NoError(t, err)
	_, err = f.auth.Login(ctx, "javier@cam.pr", "")
	assert.True(t, apperrors.IsCode(err, apperrors.CodeUnauthorized))
}

func TestAuth_SeededLegacyCredentials(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	_, err := f.seed.Seed(ctx)
	require.NoError(t, err)

	login, err := f.auth.Login(ctx, "ziu@fotosexpresspr.com", "Fotosexpresspr01@")
	require.NoError(t, err)
	assert.Equal(t, "SU002", login.User.ID)
	require.Len(t, login.User.AssignedZones, 1)
	assert.Equal(t, "Z01", login.User.AssignedZones[0].ID)
	require.Len(t, login.User.AssignedActivities, 1)
	assert.Equal(t, "Hotel El Conquistador", login.User.AssignedActivities[0].BusinessName)

	stored, err := f.repos.StaffUsers.GetByID(ctx, "SU002")
	require.NoError(t, err)
	require.NotNil(t, stored.PasswordHash)
	assert.False(t, auth.IsLegacyDigest(*stored.PasswordHash))

	_, err = f.auth.Login(ctx, "ziu@fotosexpresspr.com", "Fotosexpresspr01@")
	require.NoError(t, err)
}

func TestAuth_ChangePassword(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	_, err := f.seed.Seed(ctx)
	require.NoError(t, err)

	err = f.auth.ChangePassword(ctx, "missing@fx.pr", "a", "newpassword")
	assert.True(t, apperrors.IsCode(err, apperrors.CodeNotFound))

	err = f.auth.ChangePassword(ctx, "staff@fotosexpress.com", "bad", "newpassword")
	assert.True(t, apperrors.IsCode(err, apperrors.CodeUnauthorized))

	err = f.auth.ChangePassword(ctx, "staff@fotosexpress.com", "Fotosexpress@", "short")
	assert.True(t, apperrors.IsCode(err, apperrors.CodeValidation))

	require.NoError(t, f.auth.ChangePassword(ctx, "staff@fotosexpress.com", "Fotosexpress@", "newpassword"))

	_, err = f.auth.Login(ctx, "staff@fotosexpress.com", "Fotosexpress@")
	assert.True(t, apperrors.IsCode(err, apperrors.CodeUnauthorized))
	_, err = f.auth.Login(ctx, "staff@fotosexpress.com", "newpassword")
	require.NoError(t, err)

	user, err := f.repos.StaffUsers.GetByEmail(ctx, "staff@fotosexpress.com")
	require.NoError(t, err)
	assert.NotNil(t, user.PasswordChangedAt)
}

func TestAssignment_ClientsForStaff(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	zone, err := f.catalog.CreateZone(ctx, &domain.Zone{Name: "Isabela", Active: true})
	require.NoError(t, err)
	_, err = f.assignments.AssignZone(ctx, zone.ID, []string{"SU1"})
	require.NoError(t, err)

	client, err := f.clients.CreateAmbulantClient(ctx, &domain.AmbulantClient{Name: "Ana", Phone: "787", ZoneID: zone.ID})
	require.NoError(t, err)
	assert.Equal(t, "Isabela", client.ZoneName)
	assert.Equal(t, domain.ClientStatusWaiting, client.Status)
	assert.Equal(t, "2025-03-01", client.RegisteredAt)

	queue, err := f.assignments.ClientsForStaff(ctx, "SU1")
	require.NoError(t, err)
	require.Len(t, queue.AmbulantClients, 1)
	assert.Equal(t, client.ID, queue.AmbulantClients[0].ID)
	assert.Equal(t, "Isabela", queue.AmbulantClients[0].ZoneName)
	assert.Empty(t, queue.ActivityClients)

	none, err := f.assignments.AmbulantClientsForStaff(ctx, "SU-unknown")
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)

	cleared, err := f.assignments.AssignZone(ctx, zone.ID, []string{})
	require.NoError(t, err)
	assert.Empty(t, cleared.AssignedStaff)
	queue, err = f.assignments.ClientsForStaff(ctx, "SU1")
	require.NoError(t, err)
	assert.Empty(t, queue.AmbulantClients)

	_, err = f.assignments.AssignZone(ctx, "Z404", []string{"SU1"})
	assert.True(t, apperrors.IsCode(err, apperrors.CodeNotFound))
}

func TestAssignment_InactiveZonesIgnoredAndDuplicatesKept(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	zone, err := f.catalog.CreateZone(ctx, &domain.Zone{Name: "Rincón", Active: false})
	require.NoError(t, err)
	updated, err := f.assignments.AssignZone(ctx, zone.ID, []string{"SU1", "SU1"})
	require.NoError(t, err)
	assert.Equal(t, []string{"SU1", "SU1"}, updated.AssignedStaff)

	_, err = f.clients.CreateAmbulantClient(ctx, &domain.AmbulantClient{Name: "Ana", Phone: "787", ZoneID: zone.ID})
	require.NoError(t, err)

	zones, err := f.assignments.AssignedZones(ctx, "SU1")
	require.NoError(t, err)
	assert.Empty(t, zones)
	clients, err := f.assignments.AmbulantClientsForStaff(ctx, "SU1")
	require.NoError(t, err)
	assert.Empty(t, clients)
}

func TestAssignment_LoginReflectsNewAssignment(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	_, err := f.seed.Seed(ctx)
	require.NoError(t, err)

	login, err := f.auth.Login(ctx, "staff@fotosexpress.com", "Fotosexpress@")
	require.NoError(t, err)
	assert.Len(t, login.User.AssignedActivities, 0)

	_, err = f.assignments.AssignActivity(ctx, "A02", []string{"SU001"})
	require.NoError(t, err)

	login, err = f.auth.Login(ctx, "staff@fotosexpress.com", "Fotosexpress@")
	require.NoError(t, err)
	require.Len(t, login.User.AssignedActivities, 1)
	assert.Equal(t, "A02", login.User.AssignedActivities[0].ID)
}

func TestAssignment_ActivityClientsForStaff(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	_, err := f.seed.Seed(ctx)
	require.NoError(t, err)

	clients, err := f.assignments.ActivityClientsForStaff(ctx, "SU002")
	require.NoError(t, err)
	require.Len(t, clients, 1)
	assert.Equal(t, "CN01", clients[0].ID)
	assert.Equal(t, "Noche de gala", clients[0].ActivityName)
	assert.Equal(t, "Hotel El Conquistador", clients[0].BusinessName)
}

func TestCatalog_ActivityRequiresBusiness(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.catalog.CreateActivity(ctx, &domain.Activity{Name: "Boda", BusinessID: "N404"})
	assert.True(t, apperrors.IsCode(err, apperrors.CodeNotFound))

	activities, err := f.catalog.ListActivities(ctx, ActivityQuery{})
	require.NoError(t, err)
	assert.Empty(t, activities)
}

func TestCatalog_DeleteBusinessCascades(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	var deleted []events.Event
	f.dispatcher.Subscribe(events.EventBusinessDeleted, func(_ context.Context, e events.Event) error {
		deleted = append(deleted, e)
		return nil
	})

	keep, err := f.catalog.CreateBusiness(ctx, &domain.Business{Name: "Keep", Active: true})
	require.NoError(t, err)
	drop, err := f.catalog.CreateBusiness(ctx, &domain.Business{Name: "Drop", Active: true})
	require.NoError(t, err)

	kept, err := f.catalog.CreateActivity(ctx, &domain.Activity{Name: "A", BusinessID: keep.ID, Active: true})
	require.NoError(t, err)
	assert.Equal(t, "Keep", kept.BusinessName)
	_, err = f.catalog.CreateActivity(ctx, &domain.Activity{Name: "B", BusinessID: drop.ID})
	require.NoError(t, err)
	_, err = f.catalog.CreateActivity(ctx, &domain.Activity{Name: "C", BusinessID: drop.ID})
	require.NoError(t, err)

	require.NoError(t, f.catalog.DeleteBusiness(ctx, drop.ID))

	left, err := f.catalog.ListActivities(ctx, ActivityQuery{})
	require.NoError(t, err)
	require.Len(t, left, 1)
	assert.Equal(t, kept.ID, left[0].ID)

	require.Len(t, deleted, 1)
	assert.Equal(t, events.BusinessDeletedPayload{ActivitiesDeleted: 2}, deleted[0].Payload)

	err = f.catalog.DeleteBusiness(ctx, drop.ID)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeNotFound))
}

func TestDenormalizer_DanglingReferences(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	business, err := f.catalog.CreateBusiness(ctx, &domain.Business{Name: "Gone"})
	require.NoError(t, err)
	activity, err := f.catalog.CreateActivity(ctx, &domain.Activity{Name: "Act", BusinessID: business.ID})
	require.NoError(t, err)
	_, err = f.clients.CreateActivityClient(ctx, &domain.ActivityClient{Name: "Ana", Phone: "1", BusinessID: business.ID, ActivityID: activity.ID})
	require.NoError(t, err)

	require.NoError(t, f.repos.Businesses.Delete(ctx, business.ID))

	views, err := f.clients.ListActivityClients(ctx, ActivityClientQuery{})
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, UnknownName, views[0].BusinessName)
	assert.Equal(t, "Act", views[0].ActivityName)

	activities, err := f.catalog.ListActivities(ctx, ActivityQuery{BusinessID: business.ID})
	require.NoError(t, err)
	require.Len(t, activities, 1)
	assert.Equal(t, UnknownName, activities[0].BusinessName)
}

func TestClients_ParentValidationAndPhotos(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	_, err := f.seed.Seed(ctx)
	require.NoError(t, err)

	_, err = f.clients.CreateAmbulantClient(ctx, &domain.AmbulantClient{Name: "X", Phone: "1", ZoneID: "Z404"})
	assert.True(t, apperrors.IsCode(err, apperrors.CodeNotFound))
	_, err = f.clients.CreateActivityClient(ctx, &domain.ActivityClient{Name: "X", Phone: "1", BusinessID: "N01", ActivityID: "A404"})
	assert.True(t, apperrors.IsCode(err, apperrors.CodeNotFound))

	var served []events.Event
	f.dispatcher.Subscribe(events.EventClientServed, func(_ context.Context, e events.Event) error {
		served = append(served, e)
		return nil
	})

	view, err := f.clients.DeliverAmbulantPhotos(ctx, "CA02", PhotoDelivery{Photos: []string{"a.jpg", "b.jpg"}, StaffID: "SU002"})
	require.NoError(t, err)
	assert.Equal(t, domain.ClientStatusServed, view.Status)
	assert.Equal(t, "SU002", view.ServedBy)
	assert.Equal(t, []string{"a.jpg", "b.jpg"}, view.UploadedPhotos)
	assert.Equal(t, "Isabela", view.ZoneName)
	require.Len(t, served, 1)
	assert.Equal(t, "SU002", served[0].ActorID)

	_, err = f.clients.DeliverActivityPhotos(ctx, "CN404", PhotoDelivery{Photos: []string{"a"}, StaffID: "SU002"})
	assert.True(t, apperrors.IsCode(err, apperrors.CodeNotFound))

	found, err := f.clients.FindActivityClientByPhone(ctx, "7875551010", ActivityClientQuery{BusinessID: "N01"})
	require.NoError(t, err)
	assert.Equal(t, "CN01", found.ID)
	_, err = f.clients.FindActivityClientByPhone(ctx, "7875551010", ActivityClientQuery{BusinessID: "N02"})
	assert.True(t, apperrors.IsCode(err, apperrors.CodeNotFound))
}

func TestRequests_ServiceRequestUpdateReplacesNested(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	created, err := f.requests.CreateServiceRequest(ctx, &domain.ServiceRequest{
		Type:    "boda",
		Details: domain.ServiceRequestDetails{Location: "exterior", Description: "playa", Hours: 6, Headcount: 100},
		Contact: domain.ServiceRequestContact{Name: "Valeria", Phone: "787", Email: "v@x.pr"},
	})
	require.NoError(t, err)
	assert.Equal(t, domain.ServiceRequestPending, created.Status)

	updated, err := f.requests.UpdateServiceRequest(ctx, created.ID, repository.Patch{
		"detalles": map[string]any{"locacion": "interior"},
		"status":   domain.ServiceRequestQuoted,
	})
	require.NoError(t, err)
	assert.Equal(t, "interior", updated.Details.Location)
	assert.Empty(t, updated.Details.Description)
	assert.Zero(t, updated.Details.Hours)
	assert.Equal(t, "Valeria", updated.Contact.Name)
	assert.Equal(t, domain.ServiceRequestQuoted, updated.Status)
}

func TestRequests_ApplicationStatus(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	app := f.submitJavier(t)
	assert.Equal(t, domain.ApplicationPending, app.Status)
	assert.Equal(t, []string{}, app.Specialties)

	_, err := f.requests.SetApplicationStatus(ctx, app.ID, "archivado")
	assert.True(t, apperrors.IsCode(err, apperrors.CodeValidation))

	updated, err := f.requests.SetApplicationStatus(ctx, app.ID, domain.ApplicationRejected)
	require.NoError(t, err)
	assert.Equal(t, domain.ApplicationRejected, updated.Status)

	_, err = f.requests.SetApplicationStatus(ctx, "P404", domain.ApplicationApproved)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeNotFound))
}

func TestSeed_IsRepeatable(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	first, err := f.seed.Seed(ctx)
	require.NoError(t, err)
	second, err := f.seed.Seed(ctx)
	require.NoError(t, err)
	assert.Equal(t, first.Counts, second.Counts)

	zones, err := f.catalog.ListZones(ctx, false)
	require.NoError(t, err)
	assert.Len(t, zones, 3)
	active, err := f.catalog.ListZones(ctx, true)
	require.NoError(t, err)
	assert.Len(t, active, 2)
}
