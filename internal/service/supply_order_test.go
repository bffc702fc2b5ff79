package service_test

import (
	"encoding/json"
	"testing"

	"camp-records-backend/internal/database/models"
	apperrors "camp-records-backend/internal/errors"
	"camp-records-backend/internal/mocks"
	"camp-records-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// SupplyOrderServiceTestSuite defines the test suite for SupplyOrderService
type SupplyOrderServiceTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockRepo     *mocks.MockSupplyOrderRepositoryInterface
	mockUnitRepo *mocks.MockUnitRepositoryInterface
	svc          *service.SupplyOrderService
	validator    *validator.Validate
}

// SetupTest sets up the test suite
func (suite *SupplyOrderServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockSupplyOrderRepositoryInterface(suite.ctrl)
	suite.mockUnitRepo = mocks.NewMockUnitRepositoryInterface(suite.ctrl)
	suite.validator = validator.New()

	suite.svc = service.NewSupplyOrderService(suite.mockRepo, suite.mockUnitRepo, suite.validator)
}

// TearDownTest cleans up after each test
func (suite *SupplyOrderServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateSupplyOrder tests creating a supply order
func (suite *SupplyOrderServiceTestSuite) TestCreateSupplyOrder() {
	requestedBy := uuid.New()
	req := &service.CreateSupplyOrderRequest{
		UnitID: uuid.New(),
		Items:  json.RawMessage(`[{"name":"sunscreen","quantity":12}]`),
		Notes:  "Running low before the hike",
	}

	suite.mockUnitRepo.EXPECT().
		GetByID(req.UnitID).
		Return(&models.Unit{}, nil).
		Times(1)
	suite.mockRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(order *models.SupplyOrder) error {
			assert.Equal(suite.T(), requestedBy, order.RequestedBy)
			assert.Equal(suite.T(), models.SupplyOrderStatusPending, order.Status)
			return nil
		}).
		Times(1)

	response, err := suite.svc.CreateSupplyOrder(requestedBy, req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "pending", response.Status)
	assert.Equal(suite.T(), requestedBy, response.RequestedBy)
}

// TestSetSupplyOrderStatus tests a valid status transition
func (suite *SupplyOrderServiceTestSuite) TestSetSupplyOrderStatus() {
	id := uuid.New()
	order := &models.SupplyOrder{
		UnitID:      uuid.New(),
		RequestedBy: uuid.New(),
		Status:      models.SupplyOrderStatusPending,
	}
	order.ID = id

	suite.mockRepo.EXPECT().GetByID(id).Return(order, nil).Times(1)
	suite.mockRepo.EXPECT().SetStatus(id, models.SupplyOrderStatusApproved).Return(nil).Times(1)

	response, err := suite.svc.SetSupplyOrderStatus(id, &service.SetSupplyOrderStatusRequest{Status: "approved"})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "approved", response.Status)
}

// TestSetSupplyOrderStatusInvalid tests an unknown status value
func (suite *SupplyOrderServiceTestSuite) TestSetSupplyOrderStatusInvalid() {
	response, err := suite.svc.SetSupplyOrderStatus(uuid.New(), &service.SetSupplyOrderStatusRequest{Status: "teleported"})

	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidStatus)
	assert.Nil(suite.T(), response)
}

// TestListSupplyOrdersScoped tests that scoped listing passes the unit set through
func (suite *SupplyOrderServiceTestSuite) TestListSupplyOrdersScoped() {
	unitIDs := []uuid.UUID{uuid.New()}

	suite.mockRepo.EXPECT().
		ListByUnits(unitIDs, 20, 0).
		Return([]models.SupplyOrder{}, int64(0), nil).
		Times(1)

	responses, total, err := suite.svc.ListSupplyOrders(unitIDs, false, 20, 0)

	assert.NoError(suite.T(), err)
	assert.Empty(suite.T(), responses)
	assert.Zero(suite.T(), total)
}

// TestSupplyOrderServiceTestSuite runs the test suite
func TestSupplyOrderServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SupplyOrderServiceTestSuite))
}
