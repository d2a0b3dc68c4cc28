// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/guttosm/translate-service/internal/domain/model"
)

type MockChunkTranslator struct {
	mock.Mock
}

func (m *MockChunkTranslator) TranslateChunk(ctx context.Context, chunk model.Chunk, from, to string, creds model.Credentials) (model.TranslatedChunk, error) {
	args := m.Called(ctx, chunk, from, to, creds)
	return args.Get(0).(model.TranslatedChunk), args.Error(1)
}
