package author_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/taibuivan/bookstore/internal/catalog/author"
	"github.com/taibuivan/bookstore/internal/catalog/repository"
)

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) FindAll(ctx context.Context) ([]*author.Author, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*author.Author), args.Error(1)
}

func (m *mockRepository) FindByID(ctx context.Context, id int64) (*author.Author, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*author.Author), args.Error(1)
}

func (m *mockRepository) IsInDatabase(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockRepository) Create(ctx context.Context, a *author.Author) (repository.Outcome, error) {
	args := m.Called(ctx, a)
	return args.Get(0).(repository.Outcome), args.Error(1)
}

func (m *mockRepository) Update(ctx context.Context, a *author.Author) (repository.Outcome, error) {
	args := m.Called(ctx, a)
	return args.Get(0).(repository.Outcome), args.Error(1)
}

func (m *mockRepository) Delete(ctx context.Context, a *author.Author) (repository.Outcome, error) {
	args := m.Called(ctx, a)
	return args.Get(0).(repository.Outcome), args.Error(1)
}

func (m *mockRepository) DeleteByID(ctx context.Context, id int64) (repository.Outcome, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(repository.Outcome), args.Error(1)
}
