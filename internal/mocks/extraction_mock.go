// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/guttosm/translate-service/internal/upload"
)

type MockDocumentExtractor struct {
	mock.Mock
}

func (m *MockDocumentExtractor) Supports(ext string) bool {
	args := m.Called(ext)
	return args.Bool(0)
}

func (m *MockDocumentExtractor) Extract(ctx context.Context, path string) (string, error) {
	args := m.Called(ctx, path)
	return args.String(0), args.Error(1)
}

type MockRecognizer struct {
	mock.Mock
}

func (m *MockRecognizer) Recognize(ctx context.Context, path string) (string, error) {
	args := m.Called(ctx, path)
	return args.String(0), args.Error(1)
}

type MockStager struct {
	mock.Mock
}

func (m *MockStager) Stage(f upload.File) (string, func(), error) {
	args := m.Called(f)
	cleanup, _ := args.Get(1).(func())
	if cleanup == nil {
		cleanup = func() {}
	}
	return args.String(0), cleanup, args.Error(2)
}
