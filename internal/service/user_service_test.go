package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/streakmate/internal/error_values"
	"github.com/limbo/streakmate/internal/repository"
	"github.com/limbo/streakmate/internal/repository/mocks"
	"github.com/limbo/streakmate/internal/service"
	"github.com/limbo/streakmate/pkg/entity"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestRegisterValidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockUsersRepositoryI(ctrl)
	us := service.NewUserService(repo)
	testCases := []struct {
		Desc string
		Req  service.RegisterRequest
	}{
		{Desc: "short name", Req: service.RegisterRequest{Name: "ab", Password: "long_enough"}},
		{Desc: "bad symbols in name", Req: service.RegisterRequest{Name: "bad name!", Password: "long_enough"}},
		{Desc: "short password", Req: service.RegisterRequest{Name: "good_name", Password: "short"}},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			_, err := us.Register(context.Background(), &tc.Req)
			assert.ErrorIs(t, err, errorvalues.ErrValidation)
		})
	}
}

func TestLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockUsersRepositoryI(ctrl)
	us := service.NewUserService(repo)
	hash, err := service.Hash("test_password")
	assert.NoError(t, err)
	user := &entity.User{ID: uuid.New(), Name: "test_user", PasswordHash: hash}
	t.Run("success", func(t *testing.T) {
		repo.EXPECT().FindByName(gomock.Any(), user.Name).Return(user, nil)
		res, err := us.Login(context.Background(), user.Name, "test_password")
		assert.NoError(t, err)
		assert.Equal(t, user, res)
	})
	t.Run("wrong password", func(t *testing.T) {
		repo.EXPECT().FindByName(gomock.Any(), user.Name).Return(user, nil)
		_, err := us.Login(context.Background(), user.Name, "wrong_password")
		assert.ErrorIs(t, err, errorvalues.ErrWrongCredentials)
	})
	t.Run("user not found", func(t *testing.T) {
		repo.EXPECT().FindByName(gomock.Any(), "nobody").Return(nil, errorvalues.ErrUserNotFound)
		_, err := us.Login(context.Background(), "nobody", "test_password")
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		repo.EXPECT().FindByName(gomock.Any(), user.Name).Return(nil, errors.New("db error"))
		_, err := us.Login(context.Background(), user.Name, "test_password")
		assert.Error(t, err)
		assert.NotErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
}

func TestUpdateReminderSettings(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockUsersRepositoryI(ctrl)
	us := service.NewUserService(repo)
	uid := uuid.New()
	testCases := []struct {
		Desc         string
		Req          service.ReminderRequest
		Error        error
		MockPrepFunc func()
	}{
		{
			Desc: "success",
			Req:  service.ReminderRequest{Enabled: true, Time: "20:30", TzOffsetMinutes: -180},
			MockPrepFunc: func() {
				settings := &entity.ReminderSettings{UserID: uid, Enabled: true, Time: "20:30", TzOffsetMinutes: -180}
				repo.EXPECT().UpdateReminderSettings(gomock.Any(), settings).Return(nil)
				repo.EXPECT().GetReminderSettings(gomock.Any(), uid).Return(settings, nil)
			},
		},
		{
			Desc:         "invalid time",
			Req:          service.ReminderRequest{Enabled: true, Time: "24:00"},
			Error:        errorvalues.ErrValidation,
			MockPrepFunc: func() {},
		},
		{
			Desc:         "offset out of range",
			Req:          service.ReminderRequest{Enabled: true, Time: "08:00", TzOffsetMinutes: 900},
			Error:        errorvalues.ErrValidation,
			MockPrepFunc: func() {},
		},
		{
			Desc:  "user not found",
			Req:   service.ReminderRequest{Time: "08:00"},
			Error: errorvalues.ErrUserNotFound,
			MockPrepFunc: func() {
				repo.EXPECT().UpdateReminderSettings(gomock.Any(), gomock.Any()).Return(errorvalues.ErrUserNotFound)
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			res, err := us.UpdateReminderSettings(context.Background(), uid, tc.Req)
			if tc.Error != nil {
				assert.ErrorIs(t, err, tc.Error)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.Req.Time, res.Time)
			assert.Equal(t, tc.Req.TzOffsetMinutes, res.TzOffsetMinutes)
		})
	}
}

func TestUserServiceIntegrational(t *testing.T) {
	dbCfg := setupTestDB(t)
	repo := repository.NewUsersRepoWithConn(repository.NewPool(dbCfg))
	us := service.NewUserService(repo)
	ctx := context.Background()
	username := "test_user"
	password := "test_password"
	var user *entity.User
	var err error
	t.Run("registered user", func(t *testing.T) {
		user, err = us.Register(ctx, &service.RegisterRequest{
			Name:     username,
			Password: password,
		})
		assert.NoError(t, err)
		assert.Equal(t, username, user.Name)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)))
	})
	t.Run("error registering already existed user", func(t *testing.T) {
		_, err = us.Register(ctx, &service.RegisterRequest{
			Name:     username,
			Password: password,
		})
		assert.ErrorIs(t, err, errorvalues.ErrUserExists)
	})
	t.Run("login", func(t *testing.T) {
		res, err := us.Login(ctx, username, password)
		assert.NoError(t, err)
		assert.Equal(t, *user, *res)
	})
	t.Run("error login on unexisted user", func(t *testing.T) {
		_, err := us.Login(ctx, "aaaaaaa", "bbbbb")
		assert.Error(t, err)
	})
	t.Run("found by name", func(t *testing.T) {
		res, err := us.GetByName(ctx, username)
		assert.NoError(t, err)
		assert.Equal(t, *user, *res)
	})
	t.Run("not found by name", func(t *testing.T) {
		_, err := us.GetByName(ctx, "unexisted")
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
	t.Run("found by id", func(t *testing.T) {
		res, err := us.GetByID(ctx, user.ID)
		assert.NoError(t, err)
		assert.Equal(t, *user, *res)
	})
	t.Run("not found by id", func(t *testing.T) {
		_, err := us.GetByID(ctx, uuid.New())
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
	t.Run("reminder settings", func(t *testing.T) {
		res, err := us.GetReminderSettings(ctx, user.ID)
		assert.NoError(t, err)
		assert.False(t, res.Enabled)
		res, err = us.UpdateReminderSettings(ctx, user.ID, service.ReminderRequest{
			Enabled:         true,
			Time:            "21:15",
			TzOffsetMinutes: 300,
		})
		assert.NoError(t, err)
		assert.True(t, res.Enabled)
		assert.Equal(t, "21:15", res.Time)
		assert.Equal(t, 300, res.TzOffsetMinutes)
	})
	t.Run("failed to delete w/ wrong password", func(t *testing.T) {
		err := us.DeleteAccount(ctx, user.ID, "dasdasd")
		assert.ErrorIs(t, err, errorvalues.ErrWrongCredentials)
	})
	t.Run("deleted", func(t *testing.T) {
		err := us.DeleteAccount(ctx, user.ID, password)
		assert.NoError(t, err)
	})
	t.Run("failed to delete unexist user", func(t *testing.T) {
		err := us.DeleteAccount(ctx, user.ID, password)
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
}
