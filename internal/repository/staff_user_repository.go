package repository

import (
	"context"
	"net/http"

	"github.com/spec-kit/fotos-express/internal/domain"
	"github.com/spec-kit/fotos-express/internal/persistence"
	"github.com/spec-kit/fotos-express/pkg/util"
)

// StaffUserRepository handles persistence for photographer accounts.
type StaffUserRepository interface {
	Create(ctx context.Context, user *domain.StaffUser) error
	Insert(ctx context.Context, user *domain.StaffUser) error
	GetByID(ctx context.Context, id string) (*domain.StaffUser, error)
	GetByEmail(ctx context.Context, email string) (*domain.StaffUser, error)
	GetByActivationToken(ctx context.Context, token string) (*domain.StaffUser, error)
	List(ctx context.Context) ([]domain.StaffUser, error)
	Update(ctx context.Context, id string, patch Patch) (*domain.StaffUser, error)
	Clear(ctx context.Context) error
}

var errInvalidToken = util.NewDomainError(util.CodeNotFound, "Invalid activation token", http.StatusNotFound, nil)

type staffUserRepository struct {
	docs documents[domain.StaffUser]
}

// NewStaffUserRepository constructs the repository on a document store.
func NewStaffUserRepository(store persistence.DocumentStore) StaffUserRepository {
	return &staffUserRepository{docs: newDocuments[domain.StaffUser](store, persistence.CollectionStaffUsers, util.PrefixStaffUser, "User")}
}

func (r *staffUserRepository) Create(ctx context.Context, user *domain.StaffUser) error {
	return r.docs.create(ctx, user, func(id string) { user.ID = id })
}

func (r *staffUserRepository) Insert(ctx context.Context, user *domain.StaffUser) error {
	return r.docs.insert(ctx, user.ID, user)
}

func (r *staffUserRepository) GetByID(ctx context.Context, id string) (*domain.StaffUser, error) {
	return r.docs.get(ctx, id)
}

func (r *staffUserRepository) GetByEmail(ctx context.Context, email string) (*domain.StaffUser, error) {
	return r.docs.findOne(ctx, persistence.Where("email", email))
}

// GetByActivationToken finds the account holding an unredeemed token. An empty
// token never matches.
func (r *staffUserRepository) GetByActivationToken(ctx context.Context, token string) (*domain.StaffUser, error) {
	if token == "" {
		return nil, errInvalidToken
	}
	user, err := r.docs.findOne(ctx, persistence.Where("activationToken", token))
	if util.IsCode(err, util.CodeNotFound) {
		return nil, errInvalidToken
	}
	return user, err
}

func (r *staffUserRepository) List(ctx context.Context) ([]domain.StaffUser, error) {
	return r.docs.find(ctx, persistence.All())
}

func (r *staffUserRepository) Update(ctx context.Context, id string, patch Patch) (*domain.StaffUser, error) {
	return r.docs.update(ctx, id, patch)
}

func (r *staffUserRepository) Clear(ctx context.Context) error {
	return r.docs.drop(ctx)
}
