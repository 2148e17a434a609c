package serviceImp_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"msitumum/database/dbtest"
	"msitumum/entities"
	"msitumum/pkg/apperr"
	"msitumum/pkg/auth/identity"
	"msitumum/pkg/auth/repository"
	"msitumum/pkg/auth/repositoryImp"
	"msitumum/pkg/auth/service"
	"msitumum/pkg/auth/serviceImp"
)

func newAuth(t *testing.T) (service.AuthService, *identity.JWTProvider) {
	db := dbtest.Open(t)
	tokens := identity.NewJWT("test-secret", time.Hour, repositoryImp.NewSQLRevocations(db))
	return serviceImp.NewAuthServiceWithCost(repositoryImp.New(db), tokens, bcrypt.MinCost), tokens
}

var amina = service.RegisterInput{
	Username: "amina",
	Email:    "Amina@Example.org",
	Password: "s3cret!",
	FullName: "Amina Wanjiru",
}

func TestRegisterDefaultsRoleAndIssuesToken(t *testing.T) {
	s, tokens := newAuth(t)
	ctx := context.Background()

	sess, err := s.Register(ctx, amina)
	require.NoError(t, err)
	assert.Equal(t, entities.RoleFarmer, sess.User.Role)
	assert.Equal(t, "amina@example.org", sess.User.Email)
	assert.NotEqual(t, amina.Password, sess.User.PasswordHash)

	p, err := tokens.Verify(ctx, sess.Token)
	require.NoError(t, err)
	assert.Equal(t, sess.User.ID, p.ID)
}

func TestRegisterDuplicate(t *testing.T) {
	s, _ := newAuth(t)
	ctx := context.Background()
	_, err := s.Register(ctx, amina)
	require.NoError(t, err)

	dup := amina
	dup.Username = "someone-else"
	_, err = s.Register(ctx, dup)
	assert.True(t, apperr.Is(err, apperr.KindValidation))
	assert.Equal(t, "Username or email already exists", apperr.Message(err))
}

func TestRegisterRejectsUnknownRole(t *testing.T) {
	s, _ := newAuth(t)
	in := amina
	in.Role = "ranger"
	_, err := s.Register(context.Background(), in)
	assert.True(t, apperr.Is(err, apperr.KindValidation))
}

func TestLogin(t *testing.T) {
	s, _ := newAuth(t)
	ctx := context.Background()
	_, err := s.Register(ctx, amina)
	require.NoError(t, err)

	byName, err := s.Login(ctx, service.LoginInput{Username: "amina", Password: amina.Password})
	require.NoError(t, err)
	assert.NotEmpty(t, byName.Token)

	byEmail, err := s.Login(ctx, service.LoginInput{Username: "AMINA@example.org", Password: amina.Password})
	require.NoError(t, err)
	assert.Equal(t, byName.User.ID, byEmail.User.ID)

	_, err = s.Login(ctx, service.LoginInput{Username: "amina", Password: "wrong"})
	assert.True(t, apperr.Is(err, apperr.KindAuthentication))
	assert.Equal(t, "Invalid credentials", apperr.Message(err))

	_, err = s.Login(ctx, service.LoginInput{Username: "nobody", Password: "x"})
	assert.True(t, apperr.Is(err, apperr.KindAuthentication))
}

func TestLogoutRevokesToken(t *testing.T) {
	s, tokens := newAuth(t)
	ctx := context.Background()
	sess, err := s.Register(ctx, amina)
	require.NoError(t, err)

	require.NoError(t, s.Logout(ctx, sess.Token))
	_, err = tokens.Verify(ctx, sess.Token)
	assert.True(t, apperr.Is(err, apperr.KindAuthentication))

	// logging out twice is harmless
	require.NoError(t, s.Logout(ctx, sess.Token))
}

func TestMe(t *testing.T) {
	s, _ := newAuth(t)
	ctx := context.Background()
	sess, err := s.Register(ctx, amina)
	require.NoError(t, err)

	u, err := s.Me(ctx, sess.User.ID)
	require.NoError(t, err)
	assert.Equal(t, "amina", u.Username)

	_, err = s.Me(ctx, 999)
	assert.True(t, apperr.Is(err, apperr.KindNotFound))
}

// missedLookup reports every login as free, as a concurrent registration
// would see it before the other insert commits.
type missedLookup struct{ repository.UserRepository }

func (missedLookup) Exists(context.Context, string, string) (bool, error) { return false, nil }

func TestRegisterRaceOnUniqueIndexIsValidation(t *testing.T) {
	db := dbtest.Open(t)
	tokens := identity.NewJWT("test-secret", time.Hour, repositoryImp.NewSQLRevocations(db))
	users := repositoryImp.New(db)
	ctx := context.Background()

	_, err := serviceImp.NewAuthServiceWithCost(users, tokens, bcrypt.MinCost).Register(ctx, amina)
	require.NoError(t, err)

	racer := serviceImp.NewAuthServiceWithCost(missedLookup{users}, tokens, bcrypt.MinCost)
	_, err = racer.Register(ctx, amina)
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.KindValidation))
	assert.Equal(t, "Username or email already exists", apperr.Message(err))

	var n int64
	require.NoError(t, db.Model(&entities.User{}).Count(&n).Error)
	assert.EqualValues(t, 1, n)
}
