// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/guttosm/translate-service/internal/domain/model"
	"github.com/guttosm/translate-service/internal/upload"
)

type MockTranslator struct {
	mock.Mock
}

func (m *MockTranslator) TranslateText(ctx context.Context, req model.TranslationRequest) (model.TextResult, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(model.TextResult), args.Error(1)
}

func (m *MockTranslator) TranslateDocuments(ctx context.Context, files []upload.File, targetLang string) (model.DocumentJobResult, error) {
	args := m.Called(ctx, files, targetLang)
	return args.Get(0).(model.DocumentJobResult), args.Error(1)
}

func (m *MockTranslator) TranslateImage(ctx context.Context, file upload.File, targetLang string) (model.ImageResult, error) {
	args := m.Called(ctx, file, targetLang)
	return args.Get(0).(model.ImageResult), args.Error(1)
}

type MockJobRecorder struct {
	mock.Mock
}

func (m *MockJobRecorder) Record(record *model.JobRecord) bool {
	args := m.Called(record)
	return args.Bool(0)
}
