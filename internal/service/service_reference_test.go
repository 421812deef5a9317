// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/maritime-transport/internal/logger"
	"github.com/MKhiriev/maritime-transport/internal/mock"
	"github.com/MKhiriev/maritime-transport/internal/store"
	"github.com/MKhiriev/maritime-transport/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestPortService_ListPorts(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockPortRepository(ctrl)
	svc := NewPortService(repo, logger.Nop())

	ports := []models.Port{{ID: 1, PortName: "Rotterdam", PortUsage: &models.PortUsage{ID: 1, PortID: 1}}}
	repo.EXPECT().ListPorts(gomock.Any()).Return(ports, nil)

	got, err := svc.ListPorts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, ports, got)
}

func TestPortService_ListPorts_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockPortRepository(ctrl)
	svc := NewPortService(repo, logger.Nop())

	repo.EXPECT().ListPorts(gomock.Any()).Return(nil, store.ErrExecutingQuery)

	got, err := svc.ListPorts(context.Background())
	assert.Nil(t, got)
	assert.ErrorIs(t, err, store.ErrExecutingQuery)
}

func TestPortService_ListPortUsage(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockPortRepository(ctrl)
	svc := NewPortService(repo, logger.Nop())

	usages := []models.PortUsage{{ID: 1, CargoVessels: 3, PortID: 2}}
	repo.EXPECT().ListPortUsage(gomock.Any()).Return(usages, nil)

	got, err := svc.ListPortUsage(context.Background())
	require.NoError(t, err)
	assert.Equal(t, usages, got)
}

func TestPortService_ListPortUsage_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockPortRepository(ctrl)
	svc := NewPortService(repo, logger.Nop())

	repo.EXPECT().ListPortUsage(gomock.Any()).Return(nil, store.ErrScanningRows)

	_, err := svc.ListPortUsage(context.Background())
	assert.ErrorIs(t, err, store.ErrScanningRows)
}

func TestShipService_ListShips(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockShipRepository(ctrl)
	svc := NewShipService(repo, logger.Nop())

	ships := []models.Ship{{ID: 1, ShipName: "Ever Given"}, {ID: 2, ShipName: "Maersk Alabama"}}
	repo.EXPECT().ListShips(gomock.Any()).Return(ships, nil)

	got, err := svc.ListShips(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestShipService_ListShips_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockShipRepository(ctrl)
	svc := NewShipService(repo, logger.Nop())

	repo.EXPECT().ListShips(gomock.Any()).Return(nil, store.ErrExecutingQuery)

	_, err := svc.ListShips(context.Background())
	assert.ErrorIs(t, err, store.ErrExecutingQuery)
}

func TestNewServices(t *testing.T) {
	ctrl := gomock.NewController(t)
	storages := &store.Storages{
		CredentialRepository: mock.NewMockCredentialRepository(ctrl),
		PortRepository:       mock.NewMockPortRepository(ctrl),
		ShipRepository:       mock.NewMockShipRepository(ctrl),
	}

	services := NewServices(storages, testAppConfig, logger.Nop())

	require.NotNil(t, services)
	assert.IsType(t, &AuthValidationService{}, services.AuthService)
	assert.NotNil(t, services.PortService)
	assert.NotNil(t, services.ShipService)
}
