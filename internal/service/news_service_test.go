package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/brunosduarte/sindestiva-api/internal/domain"
	"github.com/brunosduarte/sindestiva-api/internal/mocks"
	"github.com/brunosduarte/sindestiva-api/internal/service"
	"github.com/brunosduarte/sindestiva-api/internal/validator"
)

var (
	editorClaims = domain.Claims{UserID: "u1", Email: "ana@x.com", Role: domain.RoleEditor}
	otherClaims  = domain.Claims{UserID: "u2", Email: "bob@x.com", Role: domain.RoleEditor}
	adminClaims  = domain.Claims{UserID: "u9", Email: "root@x.com", Role: domain.RoleAdmin}
)

func TestNewsServiceCreate(t *testing.T) {
	t.Run("author is forced to caller, defaults applied", func(t *testing.T) {
		logs := captureLog(t)
		repo := &mocks.NewsRepository{}
		svc := service.NewNewsService(repo)

		before := time.Now()
		repo.On("Create", mock.Anything, mock.MatchedBy(func(n *domain.News) bool {
			return n.AuthorID == "u1" &&
				n.Published &&
				!n.PublishDate.Before(before) &&
				n.Tags != nil
		})).Return(&domain.News{ID: "n1", AuthorID: "u1", Published: true}, nil)

		news, err := svc.Create(context.Background(), editorClaims, validator.NewsInput{
			Title:   "Assembleia geral",
			Content: "A assembleia acontece na sede.",
			Summary: "Assembleia na sede",
		})
		require.NoError(t, err)
		assert.Equal(t, "u1", news.AuthorID)
		assert.Contains(t, logs.String(), `"msg":"news created"`)
		assert.Contains(t, logs.String(), `"user_id":"u1"`)
		repo.AssertExpectations(t)
	})

	t.Run("explicit publish state and date are honoured", func(t *testing.T) {
		repo := &mocks.NewsRepository{}
		svc := service.NewNewsService(repo)

		published := false
		date := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
		repo.On("Create", mock.Anything, mock.MatchedBy(func(n *domain.News) bool {
			return !n.Published && n.PublishDate.Equal(date)
		})).Return(&domain.News{ID: "n1", Published: false}, nil)

		_, err := svc.Create(context.Background(), editorClaims, validator.NewsInput{
			Title:       "Rascunho de pauta",
			Content:     "Pauta em elaboracao para a reuniao.",
			Summary:     "Pauta da reuniao",
			Published:   &published,
			PublishDate: &date,
		})
		require.NoError(t, err)
		repo.AssertExpectations(t)
	})
}

func TestNewsServiceUpdate(t *testing.T) {
	title := "Novo titulo"

	t.Run("author may update", func(t *testing.T) {
		repo := &mocks.NewsRepository{}
		svc := service.NewNewsService(repo)

		repo.On("FindByID", mock.Anything, "n1").Return(&domain.News{ID: "n1", AuthorID: "u1"}, nil)
		repo.On("Update", mock.Anything, "n1", mock.Anything).
			Return(&domain.News{ID: "n1", AuthorID: "u1", Title: title}, nil)

		news, err := svc.Update(context.Background(), editorClaims, "n1", validator.NewsUpdateInput{Title: &title})
		require.NoError(t, err)
		assert.Equal(t, title, news.Title)
	})

	t.Run("admin may update another author's article", func(t *testing.T) {
		repo := &mocks.NewsRepository{}
		svc := service.NewNewsService(repo)

		repo.On("FindByID", mock.Anything, "n1").Return(&domain.News{ID: "n1", AuthorID: "u1"}, nil)
		repo.On("Update", mock.Anything, "n1", mock.Anything).
			Return(&domain.News{ID: "n1", AuthorID: "u1", Title: title}, nil)

		_, err := svc.Update(context.Background(), adminClaims, "n1", validator.NewsUpdateInput{Title: &title})
		require.NoError(t, err)
	})

	t.Run("other editor is forbidden", func(t *testing.T) {
		repo := &mocks.NewsRepository{}
		svc := service.NewNewsService(repo)

		repo.On("FindByID", mock.Anything, "n1").Return(&domain.News{ID: "n1", AuthorID: "u1"}, nil)

		_, err := svc.Update(context.Background(), otherClaims, "n1", validator.NewsUpdateInput{Title: &title})
		assert.ErrorIs(t, err, domain.ErrForbidden)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("missing article", func(t *testing.T) {
		repo := &mocks.NewsRepository{}
		svc := service.NewNewsService(repo)

		repo.On("FindByID", mock.Anything, "ghost").Return(nil, nil)

		_, err := svc.Update(context.Background(), editorClaims, "ghost", validator.NewsUpdateInput{Title: &title})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestNewsServiceDelete(t *testing.T) {
	t.Run("author may delete", func(t *testing.T) {
		repo := &mocks.NewsRepository{}
		svc := service.NewNewsService(repo)

		repo.On("FindByID", mock.Anything, "n1").Return(&domain.News{ID: "n1", AuthorID: "u1"}, nil)
		repo.On("Delete", mock.Anything, "n1").Return(true, nil)

		require.NoError(t, svc.Delete(context.Background(), editorClaims, "n1"))
	})

	t.Run("other editor is forbidden", func(t *testing.T) {
		repo := &mocks.NewsRepository{}
		svc := service.NewNewsService(repo)

		repo.On("FindByID", mock.Anything, "n1").Return(&domain.News{ID: "n1", AuthorID: "u1"}, nil)

		err := svc.Delete(context.Background(), otherClaims, "n1")
		assert.ErrorIs(t, err, domain.ErrForbidden)
		repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("missing article", func(t *testing.T) {
		repo := &mocks.NewsRepository{}
		svc := service.NewNewsService(repo)

		repo.On("FindByID", mock.Anything, "ghost").Return(nil, nil)

		assert.ErrorIs(t, svc.Delete(context.Background(), editorClaims, "ghost"), domain.ErrNotFound)
	})
}

func TestNewsServiceGetPublished(t *testing.T) {
	repo := &mocks.NewsRepository{}
	svc := service.NewNewsService(repo)

	repo.On("FindByID", mock.Anything, "n1").Return(&domain.News{ID: "n1", Published: true}, nil)
	repo.On("FindByID", mock.Anything, "n2").Return(&domain.News{ID: "n2", Published: false}, nil)
	repo.On("FindByID", mock.Anything, "ghost").Return(nil, nil)

	news, err := svc.GetPublished(context.Background(), "n1")
	require.NoError(t, err)
	assert.Equal(t, "n1", news.ID)

	// Unpublished articles are indistinguishable from absent ones
	_, err = svc.GetPublished(context.Background(), "n2")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = svc.GetPublished(context.Background(), "ghost")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestNewsServiceListPublished(t *testing.T) {
	repo := &mocks.NewsRepository{}
	svc := service.NewNewsService(repo)

	repo.On("List", mock.Anything, mock.MatchedBy(func(f domain.NewsFilter) bool {
		return f.Published != nil && *f.Published && f.Tag == "strike" && f.Search == "dock" && f.AuthorID == ""
	}), 1, 10, domain.SortByPublishDate).Return([]domain.News{{ID: "n1"}}, 11, nil)

	items, pagination, err := svc.ListPublished(context.Background(), "strike", "dock", 1, 10)
	require.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, 11, pagination.Total)
	assert.Equal(t, 2, pagination.TotalPages)
	repo.AssertExpectations(t)
}

func TestNewsServiceListOwn(t *testing.T) {
	repo := &mocks.NewsRepository{}
	svc := service.NewNewsService(repo)

	repo.On("List", mock.Anything, mock.MatchedBy(func(f domain.NewsFilter) bool {
		// Publish state left open so the owner sees drafts
		return f.Published == nil && f.AuthorID == "u1"
	}), 1, 10, domain.SortByCreatedAt).Return([]domain.News{
		{ID: "n1", Published: true},
		{ID: "n2", Published: false},
	}, 2, nil)

	items, pagination, err := svc.ListOwn(context.Background(), editorClaims, "", "", 1, 10)
	require.NoError(t, err)
	assert.Len(t, items, 2)
	assert.Equal(t, 1, pagination.TotalPages)
	repo.AssertExpectations(t)
}
