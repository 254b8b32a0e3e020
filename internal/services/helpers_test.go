package services_test

import (
	"testing"

	"cvhub/internal/database"
	"cvhub/internal/dto"
	"cvhub/internal/models"
	"cvhub/internal/repositories"
	"cvhub/internal/services"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fixture struct {
	db     *gorm.DB
	users  *repositories.GORMUserRepository
	cvs    *repositories.GORMCVRepository
	shares *repositories.GORMShareLinkRepository
	guard  *services.OwnershipGuard
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db, err := database.OpenSQLite("file:" + uuid.NewString() + "?mode=memory&cache=shared")
	require.NoError(t, err)

	cvs := repositories.NewGORMCVRepository(db)
	return &fixture{
		db:     db,
		users:  repositories.NewGORMUserRepository(db),
		cvs:    cvs,
		shares: repositories.NewGORMShareLinkRepository(db),
		guard:  services.NewOwnershipGuard(cvs),
	}
}

func (f *fixture) user(t *testing.T, email string) *models.User {
	t.Helper()
	u := &models.User{Email: email, HashedPassword: "x", IsActive: true}
	require.NoError(t, f.users.Create(u))
	return u
}

func (f *fixture) cv(t *testing.T, owner *models.User, title string) *models.CV {
	t.Helper()
	cv, err := services.NewCVService(f.cvs, f.guard, nil).Create(owner.ID, dto.CVCreate{
		Title:    title,
		FullName: "Jane Doe",
		Email:    "jane@example.com",
	})
	require.NoError(t, err)
	return cv
}

func strPtr(s string) *string { return &s }
