package auth_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/crm-pro/internal/application/auth"
	"github.com/tu-usuario/crm-pro/internal/application/dto"
	"github.com/tu-usuario/crm-pro/internal/domain"
	"github.com/tu-usuario/crm-pro/internal/domain/entity"
	pkgjwt "github.com/tu-usuario/crm-pro/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake en memoria del repositorio de usuarios.
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	byID    map[string]*entity.User
	byEmail map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byID:    make(map[string]*entity.User),
		byEmail: make(map[string]*entity.User),
	}
}

func (r *fakeUserRepo) Create(user *entity.User) error {
	if _, ok := r.byEmail[user.Email]; ok {
		return domain.ErrEmailAlreadyExists
	}
	cp := *user
	r.byID[user.ID] = &cp
	r.byEmail[user.Email] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

// failingUserRepo simula almacenamiento caído: toda lectura falla.
type failingUserRepo struct {
	fakeUserRepo
	err error
}

func (r *failingUserRepo) GetByEmail(email string) (*entity.User, error) {
	return nil, r.err
}

const testSecret = "test-secret-key-for-unit-tests"

func newAuthUC() *auth.AuthUseCase {
	return auth.NewAuthUseCase(newFakeUserRepo(), auth.JWTConfig{
		Secret:     testSecret,
		ExpMinutes: 60,
		Issuer:     "crm-pro-test",
	})
}

// ──────────────────────────────────────────────────────────────────────────────
// Signup
// ──────────────────────────────────────────────────────────────────────────────

func TestSignup_CreaUsuarioYTokenUtilizable(t *testing.T) {
	uc := newAuthUC()

	out, err := uc.Signup(dto.SignupRequest{
		Email:    "ana@example.com",
		Password: "super-secreta-123",
		Name:     "Ana",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, out.User.ID)
	assert.Equal(t, "ana@example.com", out.User.Email)
	require.NotEmpty(t, out.Token)

	// El token debe parsearse y apuntar al usuario recién creado.
	userID, err := pkgjwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, out.User.ID, userID)
}

// El email se normaliza a minúsculas y sin espacios antes de registrar.
func TestSignup_EmailSeNormaliza(t *testing.T) {
	uc := newAuthUC()

	out, err := uc.Signup(dto.SignupRequest{
		Email:    "  Ana@Example.COM ",
		Password: "super-secreta-123",
	})
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", out.User.Email)
}

func TestSignup_EmailRepetido_RetornaEmailAlreadyExists(t *testing.T) {
	uc := newAuthUC()

	_, err := uc.Signup(dto.SignupRequest{Email: "ana@example.com", Password: "super-secreta-123"})
	require.NoError(t, err)

	_, err = uc.Signup(dto.SignupRequest{Email: "ANA@example.com", Password: "otra-clave-larga"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists,
		"el mismo email con otra capitalización sigue siendo duplicado")
}

// Un fallo de almacenamiento en la verificación de email se propaga: no se
// intenta crear el usuario ni se reporta como duplicado.
func TestSignup_ErrorDeAlmacenamiento_SePropaga(t *testing.T) {
	repoErr := errors.New("conexión perdida")
	uc := auth.NewAuthUseCase(&failingUserRepo{err: repoErr}, auth.JWTConfig{
		Secret:     testSecret,
		ExpMinutes: 60,
		Issuer:     "crm-pro-test",
	})

	_, err := uc.Signup(dto.SignupRequest{Email: "ana@example.com", Password: "super-secreta-123"})
	assert.ErrorIs(t, err, repoErr)
	assert.NotErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_CredencialesCorrectas_RetornaToken(t *testing.T) {
	uc := newAuthUC()

	created, err := uc.Signup(dto.SignupRequest{Email: "ana@example.com", Password: "super-secreta-123"})
	require.NoError(t, err)

	out, err := uc.Login(dto.LoginRequest{Email: "ana@example.com", Password: "super-secreta-123"})
	require.NoError(t, err)

	assert.Equal(t, created.User.ID, out.User.ID)
	assert.NotEmpty(t, out.Token)
}

// Email desconocido y password incorrecto devuelven el mismo error: no se
// filtra qué cuentas existen.
func TestLogin_EmailDesconocido_RetornaUnauthorized(t *testing.T) {
	uc := newAuthUC()
	_, err := uc.Login(dto.LoginRequest{Email: "nadie@example.com", Password: "lo-que-sea"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_PasswordIncorrecto_RetornaUnauthorized(t *testing.T) {
	uc := newAuthUC()

	_, err := uc.Signup(dto.SignupRequest{Email: "ana@example.com", Password: "super-secreta-123"})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Email: "ana@example.com", Password: "incorrecta"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

// ──────────────────────────────────────────────────────────────────────────────
// Me
// ──────────────────────────────────────────────────────────────────────────────

func TestMe_UsuarioExistente_RetornaPerfil(t *testing.T) {
	uc := newAuthUC()

	created, err := uc.Signup(dto.SignupRequest{Email: "ana@example.com", Password: "super-secreta-123", Name: "Ana"})
	require.NoError(t, err)

	out, err := uc.Me(created.User.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ana", out.Name)
	assert.Equal(t, "ana@example.com", out.Email)
}

func TestMe_UsuarioInexistente_RetornaUserNotFound(t *testing.T) {
	uc := newAuthUC()
	_, err := uc.Me("33333333-3333-3333-3333-333333333333")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
