package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"toolhub/internal/model"
)

func TestFavoritesService_Add(t *testing.T) {
	userID := uuid.New()
	toolID := uuid.New()

	t.Run("adds and returns the id list", func(t *testing.T) {
		favorites := new(MockFavoriteRepository)
		tools := new(MockToolRepository)
		tools.On("FindByID", mock.Anything, toolID).Return(&model.Tool{ID: toolID}, nil)
		favorites.On("Add", mock.Anything, userID, toolID).Return(nil)
		favorites.On("ListToolIDs", mock.Anything, userID).Return([]uuid.UUID{toolID}, nil)
		svc := NewFavoritesService(favorites, tools)

		ids, err := svc.Add(context.Background(), userID, toolID)
		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{toolID}, ids)
		favorites.AssertExpectations(t)
	})

	t.Run("unknown tool", func(t *testing.T) {
		favorites := new(MockFavoriteRepository)
		tools := new(MockToolRepository)
		tools.On("FindByID", mock.Anything, toolID).Return(nil, gorm.ErrRecordNotFound)
		svc := NewFavoritesService(favorites, tools)

		_, err := svc.Add(context.Background(), userID, toolID)
		assert.Equal(t, http.StatusNotFound, statusOf(t, err))
		favorites.AssertNotCalled(t, "Add", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestFavoritesService_Remove(t *testing.T) {
	userID := uuid.New()
	toolID := uuid.New()

	// removing an id that was never favorited is a success with the
	// unchanged list
	favorites := new(MockFavoriteRepository)
	favorites.On("Remove", mock.Anything, userID, toolID).Return(nil)
	favorites.On("ListToolIDs", mock.Anything, userID).Return([]uuid.UUID{}, nil)
	svc := NewFavoritesService(favorites, new(MockToolRepository))

	ids, err := svc.Remove(context.Background(), userID, toolID)
	require.NoError(t, err)
	assert.Empty(t, ids)
	favorites.AssertExpectations(t)
}

func TestFavoritesService_List(t *testing.T) {
	userID := uuid.New()
	resolved := []model.Tool{{Name: "ChatGPT"}, {Name: "Runway"}}

	favorites := new(MockFavoriteRepository)
	favorites.On("ListTools", mock.Anything, userID).Return(resolved, nil)
	svc := NewFavoritesService(favorites, new(MockToolRepository))

	tools, err := svc.List(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, resolved, tools)
}
