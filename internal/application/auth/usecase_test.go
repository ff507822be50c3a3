package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agrocampo/agroadmin-api/internal/application/dto"
	"github.com/agrocampo/agroadmin-api/internal/domain"
	"github.com/agrocampo/agroadmin-api/internal/domain/entity"
	"github.com/agrocampo/agroadmin-api/internal/domain/repository"
)

type fakeUserRepo struct {
	byEmail map[string]*entity.User
	byID    map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byEmail: make(map[string]*entity.User),
		byID:    make(map[string]*entity.User),
	}
}

func (f *fakeUserRepo) Create(u *entity.User) error {
	if _, exists := f.byEmail[u.Email]; exists {
		return domain.ErrDuplicate
	}
	f.byEmail[u.Email] = u
	f.byID[u.ID] = u
	return nil
}
func (f *fakeUserRepo) GetByID(id string) (*entity.User, error)          { return f.byID[id], nil }
func (f *fakeUserRepo) FindByEmail(email string) (*entity.User, error)   { return f.byEmail[email], nil }

var _ repository.UserRepository = (*fakeUserRepo)(nil)

func newTestUseCase() (*UseCase, *fakeUserRepo) {
	repo := newFakeUserRepo()
	return NewUseCase(repo, "secreto-de-prueba", "agroadmin-api", 60), repo
}

func TestRegisterYLogin_FlujoCompleto(t *testing.T) {
	uc, _ := newTestUseCase()

	user, err := uc.Register(dto.RegisterRequest{
		Email:    "Ventas@AgroCampo.co",
		Password: "contrasena123",
		Name:     "Vendedor Uno",
	})
	require.NoError(t, err)
	assert.Equal(t, "ventas@agrocampo.co", user.Email, "el email se normaliza a minúsculas")
	assert.Equal(t, entity.RoleVendedor, user.Role, "rol por defecto vendedor")

	out, err := uc.Login(dto.LoginRequest{Email: "ventas@agrocampo.co", Password: "contrasena123"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, user.ID, out.User.ID)
}

func TestRegister_EmailDuplicado(t *testing.T) {
	uc, _ := newTestUseCase()

	_, err := uc.Register(dto.RegisterRequest{Email: "admin@agrocampo.co", Password: "contrasena123"})
	require.NoError(t, err)

	_, err = uc.Register(dto.RegisterRequest{Email: "admin@agrocampo.co", Password: "otraclave456"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestLogin_CredencialesInvalidas(t *testing.T) {
	uc, _ := newTestUseCase()

	_, err := uc.Register(dto.RegisterRequest{Email: "admin@agrocampo.co", Password: "contrasena123", Role: entity.RoleAdmin})
	require.NoError(t, err)

	// Contraseña incorrecta y email inexistente devuelven el mismo error.
	_, err = uc.Login(dto.LoginRequest{Email: "admin@agrocampo.co", Password: "incorrecta"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(dto.LoginRequest{Email: "nadie@agrocampo.co", Password: "contrasena123"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioDeshabilitado(t *testing.T) {
	uc, repo := newTestUseCase()

	user, err := uc.Register(dto.RegisterRequest{Email: "baja@agrocampo.co", Password: "contrasena123"})
	require.NoError(t, err)
	repo.byID[user.ID].Status = "disabled"

	_, err = uc.Login(dto.LoginRequest{Email: "baja@agrocampo.co", Password: "contrasena123"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
