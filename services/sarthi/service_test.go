package sarthi

import (
	"context"
	"testing"

	catalogRepo "astromarket/database/repository/catalog"
	consultationRepo "astromarket/database/repository/consultation"
	"astromarket/models"
	"astromarket/services/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() (*DefaultSarthiService, *consultationRepo.MemoryRequestRepo) {
	repo := catalogRepo.NewStaticCatalogRepoWith(
		[]models.Problem{{ID: "p1", Title: "Delay in marriage", Category: "Relationships"}},
		nil,
	)
	requests := consultationRepo.NewMemoryRequestRepo()
	return &DefaultSarthiService{
		Catalog:  &catalog.DefaultCatalogService{Repo: repo},
		Requests: requests,
	}, requests
}

func TestSelectProblemRecordsRequest(t *testing.T) {
	svc, requests := newTestService()
	ctx := context.Background()

	req, err := svc.SelectProblem(ctx, "user-1", "p1")
	require.NoError(t, err)
	assert.Equal(t, "Delay in marriage", req.Selection.Title)
	assert.Equal(t, "p1", req.Selection.ProblemID)
	assert.NotEmpty(t, req.ID)

	stored, err := requests.ListByUser(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, req.ID, stored[0].ID)
}

func TestSelectUnknownProblem(t *testing.T) {
	svc, _ := newTestService()
	_, err := svc.SelectProblem(context.Background(), "user-1", "missing")
	assert.ErrorIs(t, err, ErrUnknownProblem)
}

func TestSubmitCustom(t *testing.T) {
	svc, requests := newTestService()
	ctx := context.Background()

	req, err := svc.SubmitCustom(ctx, "user-2", "  I keep losing sleep over exams ")
	require.NoError(t, err)
	assert.Equal(t, CustomProblemTitle, req.Selection.Title)
	assert.Equal(t, "I keep losing sleep over exams", req.Selection.Description)

	_, err = svc.SubmitCustom(ctx, "user-2", "   ")
	assert.ErrorIs(t, err, ErrCannotSubmit)
	_, err = svc.SubmitCustom(ctx, "user-2", words(51))
	assert.ErrorIs(t, err, ErrCannotSubmit)

	stored, err := requests.ListByUser(ctx, "user-2")
	require.NoError(t, err)
	assert.Len(t, stored, 1)
}

func TestCheckCustom(t *testing.T) {
	svc, _ := newTestService()
	assert.Equal(t, CustomCheck{WordCount: 3, Limit: 50, CanSubmit: true}, svc.CheckCustom("one two three"))
	assert.Equal(t, CustomCheck{WordCount: 0, Limit: 50, CanSubmit: false}, svc.CheckCustom(""))
	assert.Equal(t, CustomCheck{WordCount: 60, Limit: 50, CanSubmit: false}, svc.CheckCustom(words(60)))
}
