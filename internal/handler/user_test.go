package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minjae-ko/habitquest/internal/domain"
	"github.com/minjae-ko/habitquest/internal/handler"
)

type fakeUserService struct {
	user    *domain.User
	profile *domain.UserProfile
	err     error
}

func (f *fakeUserService) Register(_ context.Context, username string) (*domain.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	u := *f.user
	u.Username = username
	return &u, nil
}

func (f *fakeUserService) GetUser(context.Context, string) (*domain.User, error) {
	return f.user, f.err
}

func (f *fakeUserService) GetProfile(context.Context, string) (*domain.UserProfile, error) {
	return f.profile, f.err
}

func (f *fakeUserService) InvalidateCache(string) {}

func TestHandleRegisterUser(t *testing.T) {
	handler.InitValidator()

	tests := []struct {
		name           string
		body           interface{}
		svc            *fakeUserService
		expectedStatus int
	}{
		{
			name:           "success",
			body:           handler.RegisterUserRequest{Username: "minjae"},
			svc:            &fakeUserService{user: &domain.User{ID: "user-1", TotalPoints: 0}},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "missing username",
			body:           handler.RegisterUserRequest{},
			svc:            &fakeUserService{},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "username with spaces rejected",
			body:           handler.RegisterUserRequest{Username: "two words"},
			svc:            &fakeUserService{},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "duplicate username",
			body:           handler.RegisterUserRequest{Username: "minjae"},
			svc:            &fakeUserService{err: domain.ErrInvalidInput},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postJSON(t, handler.HandleRegisterUser(tt.svc), tt.body)
			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestHandleRegisterUser_ResponseShape(t *testing.T) {
	handler.InitValidator()

	svc := &fakeUserService{user: &domain.User{ID: "user-1", TotalPoints: 0}}
	rec := postJSON(t, handler.HandleRegisterUser(svc), handler.RegisterUserRequest{Username: "minjae"})

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp handler.RegisterUserResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "user-1", resp.UserID)
	assert.Equal(t, "minjae", resp.Username)
	assert.Zero(t, resp.TotalPoints)
}

func TestHandleGetProfile(t *testing.T) {
	handler.InitValidator()

	svc := &fakeUserService{profile: &domain.UserProfile{
		User: domain.User{ID: "user-1", Username: "minjae", TotalPoints: domain.Points(75)},
		Progress: domain.LevelProgress{
			Level:        2,
			Title:        domain.TitleBeginner,
			TotalPoints:  domain.Points(75),
			PointsToNext: domain.Points(25),
		},
	}}

	req := httptest.NewRequest(http.MethodGet, "/user/profile?user_id=user-1", nil)
	rec := httptest.NewRecorder()
	handler.HandleGetProfile(svc)(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data domain.UserProfile `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, domain.Level(2), resp.Data.Progress.Level)
	assert.Equal(t, 25, resp.Data.Progress.PointsToNext.Int())
}

func TestHandleGetProfile_UnknownUser(t *testing.T) {
	handler.InitValidator()

	svc := &fakeUserService{err: domain.ErrUserNotFound}
	req := httptest.NewRequest(http.MethodGet, "/user/profile?user_id=ghost", nil)
	rec := httptest.NewRecorder()
	handler.HandleGetProfile(svc)(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), handler.ErrMsgUserNotFoundError)
}
