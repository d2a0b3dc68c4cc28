// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/guttosm/translate-service/internal/domain/model"
)

type MockJobsRepositoryInterface struct {
	mock.Mock
}

func (m *MockJobsRepositoryInterface) Create(ctx context.Context, record *model.JobRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockJobsRepositoryInterface) CreateMany(ctx context.Context, records []*model.JobRecord) error {
	args := m.Called(ctx, records)
	return args.Error(0)
}

func (m *MockJobsRepositoryInterface) Query(ctx context.Context, opts model.JobQueryOptions) ([]*model.JobRecord, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.JobRecord), args.Error(1)
}

func (m *MockJobsRepositoryInterface) Count(ctx context.Context, opts model.JobQueryOptions) (int64, error) {
	args := m.Called(ctx, opts)
	return args.Get(0).(int64), args.Error(1)
}
