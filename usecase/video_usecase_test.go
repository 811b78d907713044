package usecase_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"my-videos/domain/dto"
	"my-videos/domain/model"
	"my-videos/usecase"
)

type MockVideoRepository struct {
	mock.Mock
}

func (m *MockVideoRepository) FindAll(ctx context.Context) ([]model.Video, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Video), args.Error(1)
}

func (m *MockVideoRepository) FindByCode(ctx context.Context, code string) (model.Video, error) {
	args := m.Called(ctx, code)
	return args.Get(0).(model.Video), args.Error(1)
}

func (m *MockVideoRepository) Create(ctx context.Context, title, code string) (model.Video, error) {
	args := m.Called(ctx, title, code)
	return args.Get(0).(model.Video), args.Error(1)
}

func (m *MockVideoRepository) UpdateTitle(ctx context.Context, code, title string) (model.Video, error) {
	args := m.Called(ctx, code, title)
	return args.Get(0).(model.Video), args.Error(1)
}

func (m *MockVideoRepository) Delete(ctx context.Context, code string) error {
	args := m.Called(ctx, code)
	return args.Error(0)
}

func TestVideoUsecase_GetAll(t *testing.T) {
	videoRepository := new(MockVideoRepository)
	videoRepository.On("FindAll", mock.Anything).Return([]model.Video{
		{ID: 1, Title: "Boris Brejcha - I Take It Smart", Code: "XA4vo1kef6g"},
		{ID: 2, Title: "Noku Mana - Curawaka", Code: "DU64jmOPL5k"},
	}, nil)

	videoUsecase := usecase.NewVideoUsecase(videoRepository)

	res, err := videoUsecase.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, res, 2)
	require.Equal(t, "XA4vo1kef6g", res[0].Code)
	require.Equal(t, "https://www.youtube.com/watch?v=XA4vo1kef6g", res[0].Link)
	require.Equal(t, "https://www.youtube.com/watch?v=DU64jmOPL5k", res[1].Link)
	videoRepository.AssertExpectations(t)
}

func TestVideoUsecase_GetAll_RepositoryError(t *testing.T) {
	videoRepository := new(MockVideoRepository)
	videoRepository.On("FindAll", mock.Anything).Return(nil, fmt.Errorf("db is down"))

	videoUsecase := usecase.NewVideoUsecase(videoRepository)

	_, err := videoUsecase.GetAll(context.Background())
	require.Error(t, err)
	videoRepository.AssertExpectations(t)
}

func TestVideoUsecase_GetByCode_NotFound(t *testing.T) {
	videoRepository := new(MockVideoRepository)
	videoRepository.On("FindByCode", mock.Anything, "doesnotexist").
		Return(model.Video{}, model.ErrNotFound)

	videoUsecase := usecase.NewVideoUsecase(videoRepository)

	_, err := videoUsecase.GetByCode(context.Background(), "doesnotexist")
	require.ErrorIs(t, err, model.ErrNotFound)
	videoRepository.AssertExpectations(t)
}

func TestVideoUsecase_Add(t *testing.T) {
	videoRepository := new(MockVideoRepository)
	videoRepository.On("Create", mock.Anything, "A", "abc123").
		Return(model.Video{ID: 3, Title: "A", Code: "abc123"}, nil)

	videoUsecase := usecase.NewVideoUsecase(videoRepository)

	res, err := videoUsecase.Add(context.Background(), dto.ReqCreateVideo{Title: "A", Code: "abc123"})
	require.NoError(t, err)
	require.Equal(t, int64(3), res.ID)
	require.Equal(t, "https://www.youtube.com/watch?v=abc123", res.Link)
	videoRepository.AssertExpectations(t)
}

func TestVideoUsecase_Add_DuplicateCode(t *testing.T) {
	videoRepository := new(MockVideoRepository)
	videoRepository.On("Create", mock.Anything, "A", "abc123").
		Return(model.Video{}, model.ErrDuplicateCode)

	videoUsecase := usecase.NewVideoUsecase(videoRepository)

	_, err := videoUsecase.Add(context.Background(), dto.ReqCreateVideo{Title: "A", Code: "abc123"})
	require.ErrorIs(t, err, model.ErrDuplicateCode)
	videoRepository.AssertExpectations(t)
}

func TestVideoUsecase_UpdateTitle(t *testing.T) {
	videoRepository := new(MockVideoRepository)
	videoRepository.On("UpdateTitle", mock.Anything, "abc123", "B").
		Return(model.Video{ID: 3, Title: "B", Code: "abc123"}, nil)

	videoUsecase := usecase.NewVideoUsecase(videoRepository)

	res, err := videoUsecase.UpdateTitle(context.Background(), "abc123", "B")
	require.NoError(t, err)
	require.Equal(t, "B", res.Title)
	videoRepository.AssertExpectations(t)
}

func TestVideoUsecase_Delete(t *testing.T) {
	videoRepository := new(MockVideoRepository)
	videoRepository.On("Delete", mock.Anything, "abc123").Return(nil)

	videoUsecase := usecase.NewVideoUsecase(videoRepository)

	require.NoError(t, videoUsecase.Delete(context.Background(), "abc123"))
	videoRepository.AssertExpectations(t)
}
