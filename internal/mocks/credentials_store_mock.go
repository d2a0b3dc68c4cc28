// Code generated manually. DO NOT EDIT.

package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/guttosm/translate-service/internal/domain/model"
)

type MockCredentialsStore struct {
	mock.Mock
}

func (m *MockCredentialsStore) Get() (model.Credentials, error) {
	args := m.Called()
	return args.Get(0).(model.Credentials), args.Error(1)
}

func (m *MockCredentialsStore) Set(creds model.Credentials) error {
	args := m.Called(creds)
	return args.Error(0)
}
