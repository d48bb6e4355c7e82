package mocks

import (
	"querydrills/internal/model"
	"querydrills/internal/service"

	"github.com/stretchr/testify/mock"
)

type MockDrillService struct {
	mock.Mock
}

func (m *MockDrillService) Greet(req service.GreetingRequest) (string, error) {
	args := m.Called(req)
	return args.String(0), args.Error(1)
}

func (m *MockDrillService) Sum(req service.SumRequest) (*model.SumResult, error) {
	args := m.Called(req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SumResult), args.Error(1)
}

func (m *MockDrillService) Cipher(req service.CipherRequest) (string, error) {
	args := m.Called(req)
	return args.String(0), args.Error(1)
}

func (m *MockDrillService) Lotto(req service.LottoRequest) (*model.LottoResult, error) {
	args := m.Called(req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.LottoResult), args.Error(1)
}
