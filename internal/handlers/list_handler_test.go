// internal/handlers/list_handler_test.go
package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"vocab_forge/internal/handlers"
	"vocab_forge/internal/model"
	"vocab_forge/internal/service/mocks"
)

// withTestUser fakes the auth middleware by planting a user in the context.
func withTestUser(user *model.User) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), model.UserContextKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func testUser() *model.User {
	name := "Tester"
	return &model.User{
		UserID: uuid.New(),
		Name:   &name,
		Email:  "tester@example.com",
	}
}

func newListRouter(user *model.User, svc *mocks.MockListService) http.Handler {
	handler := handlers.NewListHandler(svc, nil)
	r := chi.NewRouter()
	r.Use(withTestUser(user))
	r.Post("/api/v1/lists", handler.SaveList)
	r.Get("/api/v1/lists", handler.GetLists)
	r.Get("/api/v1/lists/{list_id}", handler.GetList)
	r.Patch("/api/v1/lists/{list_id}", handler.RenameList)
	r.Delete("/api/v1/lists/{list_id}", handler.DeleteList)
	r.Patch("/api/v1/entries/{entry_id}", handler.UpdateEntry)
	r.Delete("/api/v1/entries/{entry_id}", handler.DeleteEntry)
	return r
}

func TestListHandler_SaveList(t *testing.T) {
	user := testUser()

	t.Run("creates a new list", func(t *testing.T) {
		mockSvc := mocks.NewMockListService(t)
		router := newListRouter(user, mockSvc)

		listID := uuid.New()
		mockSvc.On("SaveList", mock.Anything, user, mock.AnythingOfType("*model.SaveListRequest")).
			Return(&model.SaveListResponse{ListID: listID, ListName: "Animals", IsNewList: true, NumSaved: 1}, nil).Once()

		body, _ := json.Marshal(model.SaveListRequest{
			ListName: "Animals",
			Words:    []model.SaveEntryItem{{OriginalWord: "cat"}},
		})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/lists", bytes.NewReader(body))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		var resp model.SaveListResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, listID, resp.ListID)
		assert.True(t, resp.IsNewList)
	})

	t.Run("appending returns 200", func(t *testing.T) {
		mockSvc := mocks.NewMockListService(t)
		router := newListRouter(user, mockSvc)

		mockSvc.On("SaveList", mock.Anything, user, mock.AnythingOfType("*model.SaveListRequest")).
			Return(&model.SaveListResponse{ListID: uuid.New(), ListName: "Animals", IsNewList: false, NumSaved: 1}, nil).Once()

		existing := uuid.New()
		body, _ := json.Marshal(model.SaveListRequest{
			ExistingListID: &existing,
			Words:          []model.SaveEntryItem{{OriginalWord: "dog"}},
		})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/lists", bytes.NewReader(body))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("empty words rejected before the service", func(t *testing.T) {
		mockSvc := mocks.NewMockListService(t)
		router := newListRouter(user, mockSvc)

		body, _ := json.Marshal(map[string]interface{}{"list_name": "Animals", "words": []interface{}{}})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/lists", bytes.NewReader(body))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		var errResp model.APIErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
		assert.Equal(t, "VALIDATION_ERROR", errResp.Error.Code)
	})

	t.Run("conflict maps to 409", func(t *testing.T) {
		mockSvc := mocks.NewMockListService(t)
		router := newListRouter(user, mockSvc)

		appErr := model.NewAppError("CONFLICT", "A list with this name already exists.", "list_name", model.ErrConflict)
		mockSvc.On("SaveList", mock.Anything, user, mock.AnythingOfType("*model.SaveListRequest")).
			Return(nil, appErr).Once()

		body, _ := json.Marshal(model.SaveListRequest{
			ListName: "Animals",
			Words:    []model.SaveEntryItem{{OriginalWord: "cat"}},
		})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/lists", bytes.NewReader(body))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusConflict, rec.Code)
		var errResp model.APIErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
		assert.Equal(t, "CONFLICT", errResp.Error.Code)
		assert.Equal(t, "list_name", errResp.Error.Field)
	})
}

func TestListHandler_GetList(t *testing.T) {
	user := testUser()

	t.Run("returns detail", func(t *testing.T) {
		mockSvc := mocks.NewMockListService(t)
		router := newListRouter(user, mockSvc)

		listID := uuid.New()
		detail := &model.ListDetailResponse{
			List:    &model.VocabularyList{ListID: listID, Name: "Animals", UserID: user.UserID},
			Entries: []*model.VocabularyEntry{},
		}
		mockSvc.On("GetListDetail", mock.Anything, user, listID).Return(detail, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/v1/lists/"+listID.String(), nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("forbidden maps to 403", func(t *testing.T) {
		mockSvc := mocks.NewMockListService(t)
		router := newListRouter(user, mockSvc)

		listID := uuid.New()
		mockSvc.On("GetListDetail", mock.Anything, user, listID).Return(nil, model.ErrForbidden).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/v1/lists/"+listID.String(), nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("malformed id rejected without service call", func(t *testing.T) {
		mockSvc := mocks.NewMockListService(t)
		router := newListRouter(user, mockSvc)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/lists/not-a-uuid", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestListHandler_DeleteList(t *testing.T) {
	user := testUser()
	mockSvc := mocks.NewMockListService(t)
	router := newListRouter(user, mockSvc)

	listID := uuid.New()
	mockSvc.On("DeleteList", mock.Anything, user, listID).Return(nil).Once()

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/lists/"+listID.String(), nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestListHandler_UpdateEntry(t *testing.T) {
	user := testUser()
	mockSvc := mocks.NewMockListService(t)
	router := newListRouter(user, mockSvc)

	entryID := uuid.New()
	vi := "con mèo"
	updated := &model.VocabularyEntry{EntryID: entryID, OriginalWord: "cat", DefinitionVI: &vi, UserID: user.UserID}
	mockSvc.On("UpdateEntry", mock.Anything, user, entryID, mock.AnythingOfType("*model.UpdateEntryRequest")).
		Return(updated, nil).Once()

	body, _ := json.Marshal(model.UpdateEntryRequest{DefinitionVI: &vi})
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/entries/"+entryID.String(), bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var resp model.VocabularyEntry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "cat", resp.OriginalWord)
	require.NotNil(t, resp.DefinitionVI)
	assert.Equal(t, vi, *resp.DefinitionVI)
}
