package api_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/limbo/streakmate/internal/api"
	errorvalues "github.com/limbo/streakmate/internal/error_values"
	"github.com/limbo/streakmate/internal/service/mocks"
	"github.com/limbo/streakmate/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetStreaks(t *testing.T) {
	ctrl := gomock.NewController(t)
	sService := mocks.NewMockStatsServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		StatsService: sService,
	})
	habitID := uuid.New()
	streak := &entity.HabitStreak{
		HabitID:          habitID,
		CurrentStreak:    3,
		BestStreak:       7,
		TotalCompletions: 12,
	}
	testCases := []struct {
		Desc         string
		Query        string
		ExpectedCode int
		MockPrepFunc func()
	}{
		{
			Desc:         "on given date",
			Query:        "?habitId=" + habitID.String() + "&localDate=2024-05-20",
			ExpectedCode: http.StatusOK,
			MockPrepFunc: func() {
				sService.EXPECT().GetStreaks(gomock.Any(), userID, habitID, "2024-05-20").Return(streak, nil)
			},
		},
		{
			Desc:         "valid offset alongside date",
			Query:        "?habitId=" + habitID.String() + "&localDate=2024-05-20&tzOffsetMinutes=-600",
			ExpectedCode: http.StatusOK,
			MockPrepFunc: func() {
				sService.EXPECT().GetStreaks(gomock.Any(), userID, habitID, "2024-05-20").Return(streak, nil)
			},
		},
		{
			Desc:         "missing date",
			Query:        "?habitId=" + habitID.String(),
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {},
		},
		{
			Desc:         "missing date with offset",
			Query:        "?habitId=" + habitID.String() + "&tzOffsetMinutes=-600",
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {},
		},
		{
			Desc:         "non-numeric offset with date",
			Query:        "?habitId=" + habitID.String() + "&localDate=2024-05-20&tzOffsetMinutes=abc",
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {},
		},
		{
			Desc:         "offset out of range with date",
			Query:        "?habitId=" + habitID.String() + "&localDate=2024-05-20&tzOffsetMinutes=5000",
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {},
		},
		{
			Desc:         "unexist habit",
			Query:        "?habitId=" + habitID.String() + "&localDate=2024-05-20",
			ExpectedCode: http.StatusNotFound,
			MockPrepFunc: func() {
				sService.EXPECT().GetStreaks(gomock.Any(), userID, habitID, "2024-05-20").Return(nil, errorvalues.ErrHabitNotFound)
			},
		},
		{
			Desc:         "service error",
			Query:        "?habitId=" + habitID.String() + "&localDate=2024-05-20",
			ExpectedCode: http.StatusInternalServerError,
			MockPrepFunc: func() {
				sService.EXPECT().GetStreaks(gomock.Any(), userID, habitID, "2024-05-20").Return(nil, errors.New("mocked error"))
			},
		},
		{
			Desc:         "missing habit id",
			Query:        "?localDate=2024-05-20",
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {},
		},
		{
			Desc:         "invalid offset",
			Query:        "?habitId=" + habitID.String() + "&tzOffsetMinutes=abc",
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			rr := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "/api/v1/streaks"+tc.Query, nil)
			serv.GetStreaks(rr, withUID(r, userID))
			require.Equal(t, tc.ExpectedCode, rr.Result().StatusCode)
			if tc.ExpectedCode == http.StatusOK {
				var resp entity.HabitStreak
				require.NoError(t, sonic.ConfigDefault.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, *streak, resp)
			}
		})
	}
}

func TestGetAllStreaks(t *testing.T) {
	ctrl := gomock.NewController(t)
	sService := mocks.NewMockStatsServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		StatsService: sService,
	})
	streaks := []entity.HabitStreak{
		{HabitID: uuid.New(), CurrentStreak: 1, BestStreak: 1, TotalCompletions: 1},
		{HabitID: uuid.New()},
	}
	t.Run("listed", func(t *testing.T) {
		sService.EXPECT().GetAllStreaks(gomock.Any(), userID, "2024-05-20").Return(streaks, nil)
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/v1/streaks/all?localDate=2024-05-20", nil)
		serv.GetAllStreaks(rr, withUID(r, userID))
		require.Equal(t, http.StatusOK, rr.Result().StatusCode)
		var resp api.AllStreaksResponse
		require.NoError(t, sonic.ConfigDefault.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, "2024-05-20", resp.LocalDate)
		assert.Len(t, resp.Streaks, 2)
	})
	t.Run("service error", func(t *testing.T) {
		sService.EXPECT().GetAllStreaks(gomock.Any(), userID, "2024-05-20").Return(nil, errors.New("mocked error"))
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/v1/streaks/all?localDate=2024-05-20", nil)
		serv.GetAllStreaks(rr, withUID(r, userID))
		assert.Equal(t, http.StatusInternalServerError, rr.Result().StatusCode)
	})
	t.Run("invalid date", func(t *testing.T) {
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/v1/streaks/all?localDate=20-05-2024", nil)
		serv.GetAllStreaks(rr, withUID(r, userID))
		assert.Equal(t, http.StatusBadRequest, rr.Result().StatusCode)
	})
}

func TestGetCalendar(t *testing.T) {
	ctrl := gomock.NewController(t)
	sService := mocks.NewMockStatsServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		StatsService: sService,
	})
	habitID := uuid.New()
	cal := &entity.CalendarMonth{
		HabitID:   habitID,
		Month:     "2024-05",
		StartDate: "2024-05-15",
		EndDate:   "2024-05-20",
		Dates:     []string{"2024-05-16", "2024-05-18"},
	}
	testCases := []struct {
		Desc         string
		Query        string
		ExpectedCode int
		MockPrepFunc func()
	}{
		{
			Desc:         "given month",
			Query:        "?habitId=" + habitID.String() + "&month=2024-05&tzOffsetMinutes=720",
			ExpectedCode: http.StatusOK,
			MockPrepFunc: func() {
				sService.EXPECT().GetCalendar(gomock.Any(), userID, habitID, "2024-05", 720).Return(cal, nil)
			},
		},
		{
			Desc:         "current month",
			Query:        "?habitId=" + habitID.String(),
			ExpectedCode: http.StatusOK,
			MockPrepFunc: func() {
				sService.EXPECT().GetCalendar(gomock.Any(), userID, habitID, "", 0).Return(cal, nil)
			},
		},
		{
			Desc:         "invalid month",
			Query:        "?habitId=" + habitID.String() + "&month=2024-13",
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {
				sService.EXPECT().GetCalendar(gomock.Any(), userID, habitID, "2024-13", 0).Return(nil, errorvalues.ErrInvalidMonth)
			},
		},
		{
			Desc:         "another owner",
			Query:        "?habitId=" + habitID.String() + "&month=2024-05",
			ExpectedCode: http.StatusNotFound,
			MockPrepFunc: func() {
				sService.EXPECT().GetCalendar(gomock.Any(), userID, habitID, "2024-05", 0).Return(nil, errorvalues.ErrWrongOwner)
			},
		},
		{
			Desc:         "invalid offset",
			Query:        "?habitId=" + habitID.String() + "&tzOffsetMinutes=841",
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			rr := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "/api/v1/calendar"+tc.Query, nil)
			serv.GetCalendar(rr, withUID(r, userID))
			require.Equal(t, tc.ExpectedCode, rr.Result().StatusCode)
			if tc.ExpectedCode == http.StatusOK {
				var resp entity.CalendarMonth
				require.NoError(t, sonic.ConfigDefault.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, cal.Dates, resp.Dates)
				assert.Equal(t, "2024-05-15", resp.StartDate)
			}
		})
	}
}
