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
	"github.com/minjae-ko/habitquest/internal/stats"
)

type fakeStatsService struct {
	graded []stats.GradedStat
	one    *stats.GradedStat
	err    error

	gotStatType domain.StatType
	gotPoints   int
}

func (f *fakeStatsService) GetUserStats(context.Context, string) ([]stats.GradedStat, error) {
	return f.graded, f.err
}

func (f *fakeStatsService) Allocate(_ context.Context, _ string, statType domain.StatType, points int) (*stats.GradedStat, error) {
	f.gotStatType = statType
	f.gotPoints = points
	return f.one, f.err
}

func (f *fakeStatsService) Earn(_ context.Context, _ string, statType domain.StatType, points int) (*stats.GradedStat, error) {
	f.gotStatType = statType
	f.gotPoints = points
	return f.one, f.err
}

func TestHandleGetStats(t *testing.T) {
	handler.InitValidator()

	svc := &fakeStatsService{graded: []stats.GradedStat{
		{Type: domain.StatStrength, Current: 120, Grade: domain.GradeApprentice},
		{Type: domain.StatDiscipline, Current: 0, Grade: domain.GradeNovice},
	}}

	req := httptest.NewRequest(http.MethodGet, "/stats?user_id=user-1", nil)
	rec := httptest.NewRecorder()
	handler.HandleGetStats(svc)(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp handler.StatsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "user-1", resp.UserID)
	require.Len(t, resp.Stats, 2)
	assert.Equal(t, domain.StatStrength, resp.Stats[0].Type)
}

func TestHandleAllocateStat(t *testing.T) {
	handler.InitValidator()

	tests := []struct {
		name           string
		body           interface{}
		svc            *fakeStatsService
		expectedStatus int
		expectedError  string
	}{
		{
			name: "success normalizes stat type",
			body: handler.AllocateStatRequest{UserID: "user-1", StatType: "strength", Points: 5},
			svc: &fakeStatsService{one: &stats.GradedStat{
				Type: domain.StatStrength, Current: 15, Allocated: 5, Base: 10, Grade: domain.GradeNovice,
			}},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "unknown stat type fails validation",
			body:           handler.AllocateStatRequest{UserID: "user-1", StatType: "LUCK", Points: 5},
			svc:            &fakeStatsService{},
			expectedStatus: http.StatusBadRequest,
			expectedError:  handler.ErrMsgInvalidStatTypeError,
		},
		{
			name:           "capacity exceeded",
			body:           handler.AllocateStatRequest{UserID: "user-1", StatType: "STRENGTH", Points: 5},
			svc:            &fakeStatsService{err: domain.ErrStatCapacityExceeded},
			expectedStatus: http.StatusBadRequest,
			expectedError:  handler.ErrMsgStatCapacityError,
		},
		{
			name:           "non-positive points",
			body:           handler.AllocateStatRequest{UserID: "user-1", StatType: "STRENGTH", Points: -3},
			svc:            &fakeStatsService{err: domain.ErrNonPositiveStatPoints},
			expectedStatus: http.StatusBadRequest,
			expectedError:  handler.ErrMsgStatPointsPositiveErr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postJSON(t, handler.HandleAllocateStat(tt.svc), tt.body)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedError != "" {
				assert.Contains(t, rec.Body.String(), tt.expectedError)
			}
		})
	}
}
