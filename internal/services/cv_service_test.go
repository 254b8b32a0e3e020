package services_test

import (
	"errors"
	"testing"
	"time"

	"cvhub/internal/dto"
	"cvhub/internal/models"
	"cvhub/internal/repositories"
	"cvhub/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCVService_CreatePublishesEvent(t *testing.T) {
	f := newFixture(t)
	owner := f.user(t, "owner@example.com")
	events := new(MockPublisher)
	events.On("Publish", services.EventCVCreated, mock.Anything).Return(nil).Once()

	svc := services.NewCVService(f.cvs, f.guard, events)
	cv, err := svc.Create(owner.ID, dto.CVCreate{
		Title:    "<b>Backend</b> CV",
		FullName: "Jane Doe",
		Email:    "jane@example.com",
		Summary:  strPtr("Tom & Jerry"),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, cv.ID)
	assert.Equal(t, owner.ID, cv.UserID)
	assert.Equal(t, "Backend CV", cv.Title)
	assert.Equal(t, "Tom & Jerry", *cv.Summary)
	events.AssertExpectations(t)
}

func TestCVService_GetHidesOtherUsersCVs(t *testing.T) {
	f := newFixture(t)
	alice := f.user(t, "alice@example.com")
	bob := f.user(t, "bob@example.com")
	cv := f.cv(t, alice, "Alice CV")

	svc := services.NewCVService(f.cvs, f.guard, nil)

	got, err := svc.Get(alice.ID, cv.ID)
	require.NoError(t, err)
	assert.Equal(t, cv.ID, got.ID)
	assert.NotNil(t, got.WorkExperiences)
	assert.Empty(t, got.WorkExperiences)

	_, err = svc.Get(bob.ID, cv.ID)
	assert.True(t, errors.Is(err, services.ErrAccessDenied))

	_, err = svc.Get(alice.ID, "missing")
	assert.True(t, errors.Is(err, services.ErrAccessDenied))
	assert.Equal(t, "CV not found", err.Error())
}

func TestCVService_ListPagination(t *testing.T) {
	f := newFixture(t)
	owner := f.user(t, "owner@example.com")
	other := f.user(t, "other@example.com")
	for _, title := range []string{"one", "two", "three"} {
		f.cv(t, owner, title)
	}
	f.cv(t, other, "foreign")

	svc := services.NewCVService(f.cvs, f.guard, nil)

	all, err := svc.List(owner.ID, 0, services.DefaultListLimit)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	page, err := svc.List(owner.ID, 1, 1)
	require.NoError(t, err)
	assert.Len(t, page, 1)

	_, err = svc.List(owner.ID, -1, 10)
	assert.True(t, errors.Is(err, services.ErrValidation))
	_, err = svc.List(owner.ID, 0, 0)
	assert.True(t, errors.Is(err, services.ErrValidation))
}

func TestCVService_UpdateIsPartial(t *testing.T) {
	f := newFixture(t)
	owner := f.user(t, "owner@example.com")
	cv := f.cv(t, owner, "Original")
	before := cv.UpdatedAt

	time.Sleep(5 * time.Millisecond)
	svc := services.NewCVService(f.cvs, f.guard, nil)
	updated, err := svc.Update(owner.ID, cv.ID, dto.CVUpdate{Summary: dto.Some("Now with a summary")})
	require.NoError(t, err)
	assert.Equal(t, "Original", updated.Title)
	assert.Equal(t, "Now with a summary", *updated.Summary)
	assert.True(t, updated.UpdatedAt.After(before))

	stored, err := f.cvs.GetByID(cv.ID)
	require.NoError(t, err)
	assert.Equal(t, "Original", stored.Title)
	assert.Equal(t, "Jane Doe", stored.FullName)
}

func TestCVService_DeleteCascades(t *testing.T) {
	f := newFixture(t)
	owner := f.user(t, "owner@example.com")
	intruder := f.user(t, "intruder@example.com")
	cv := f.cv(t, owner, "Doomed")

	skills := services.NewSectionService[models.Skill](
		repositories.NewGORMSectionRepository[models.Skill](f.db, "skill"), f.guard, "Skill")
	skill, err := skills.Create(owner.ID, dto.SkillCreate{CVID: cv.ID, Name: "Go"})
	require.NoError(t, err)

	svc := services.NewCVService(f.cvs, f.guard, nil)
	err = svc.Delete(intruder.ID, cv.ID)
	assert.True(t, errors.Is(err, services.ErrAccessDenied))

	require.NoError(t, svc.Delete(owner.ID, cv.ID))

	_, err = f.cvs.GetByID(cv.ID)
	assert.True(t, errors.Is(err, repositories.ErrRecordNotFound))
	_, err = skills.Get(owner.ID, skill.ID)
	assert.True(t, errors.Is(err, services.ErrNotFound))
}

func TestCVService_NullClearsPhone(t *testing.T) {
	f := newFixture(t)
	owner := f.user(t, "owner@example.com")
	svc := services.NewCVService(f.cvs, f.guard, nil)
	cv, err := svc.Create(owner.ID, dto.CVCreate{
		Title:    "With phone",
		FullName: "Jane Doe",
		Email:    "jane@example.com",
		Phone:    strPtr("123"),
		Location: strPtr("Berlin"),
	})
	require.NoError(t, err)

	_, err = svc.Update(owner.ID, cv.ID, dto.CVUpdate{Phone: dto.Null[string]()})
	require.NoError(t, err)

	stored, err := f.cvs.GetByID(cv.ID)
	require.NoError(t, err)
	assert.Nil(t, stored.Phone)
	if assert.NotNil(t, stored.Location) {
		assert.Equal(t, "Berlin", *stored.Location)
	}

	_, err = svc.Update(owner.ID, cv.ID, dto.CVUpdate{Title: dto.Null[string](), Summary: dto.Some("ignored")})
	assert.True(t, errors.Is(err, services.ErrValidation))
	stored, err = f.cvs.GetByID(cv.ID)
	require.NoError(t, err)
	assert.Equal(t, "With phone", stored.Title)
	assert.Nil(t, stored.Summary)
}
