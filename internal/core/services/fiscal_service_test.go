package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/ledgerhouse/general_ledger_app/internal/apperrors"
	"github.com/ledgerhouse/general_ledger_app/internal/core/domain"
	portsrepo "github.com/ledgerhouse/general_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/ledgerhouse/general_ledger_app/internal/core/ports/services"
	"github.com/ledgerhouse/general_ledger_app/internal/core/services"
	"github.com/ledgerhouse/general_ledger_app/internal/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock FiscalRepository ---
type MockFiscalRepository struct {
	mock.Mock
}

var _ portsrepo.FiscalRepository = (*MockFiscalRepository)(nil)

func (m *MockFiscalRepository) SaveFiscalYear(ctx context.Context, year domain.FiscalYear, periods []domain.FiscalPeriod) error {
	args := m.Called(ctx, year, periods)
	return args.Error(0)
}

func (m *MockFiscalRepository) FindFiscalYearByID(ctx context.Context, fiscalYearID string) (*domain.FiscalYear, error) {
	args := m.Called(ctx, fiscalYearID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FiscalYear), args.Error(1)
}

func (m *MockFiscalRepository) ListFiscalYearsByOrganization(ctx context.Context, organizationID string) ([]domain.FiscalYear, error) {
	args := m.Called(ctx, organizationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FiscalYear), args.Error(1)
}

func (m *MockFiscalRepository) FindPeriodByID(ctx context.Context, periodID string) (*domain.FiscalPeriod, error) {
	args := m.Called(ctx, periodID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FiscalPeriod), args.Error(1)
}

func (m *MockFiscalRepository) FindOpenPeriodForDate(ctx context.Context, organizationID string, date time.Time) (*domain.FiscalPeriod, error) {
	args := m.Called(ctx, organizationID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FiscalPeriod), args.Error(1)
}

func (m *MockFiscalRepository) HasOverlappingPeriods(ctx context.Context, organizationID string, start, end time.Time) (bool, error) {
	args := m.Called(ctx, organizationID, start, end)
	return args.Bool(0), args.Error(1)
}

func (m *MockFiscalRepository) UpdatePeriodStatus(ctx context.Context, periodID string, status domain.PeriodStatus, userID string, now time.Time) error {
	args := m.Called(ctx, periodID, status, userID, now)
	return args.Error(0)
}

// --- Test Suite Setup ---

type FiscalServiceTestSuite struct {
	suite.Suite
	mockRepo   *MockFiscalRepository
	mockOrgSvc *MockOrganizationService
	service    portssvc.FiscalSvcFacade
	orgID      string
}

func (suite *FiscalServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockFiscalRepository)
	suite.mockOrgSvc = new(MockOrganizationService)
	suite.service = services.NewFiscalService(suite.mockRepo, suite.mockOrgSvc)
	suite.orgID = uuid.NewString()
}

func (suite *FiscalServiceTestSuite) orgWithStartMonth(month int) *domain.Organization {
	return &domain.Organization{
		OrganizationID:       suite.orgID,
		BaseCurrencyCode:     "USD",
		FiscalYearStartMonth: month,
	}
}

// --- Test Cases ---

func (suite *FiscalServiceTestSuite) TestGenerateFiscalYear_AprilStart() {
	ctx := context.Background()
	creatorUserID := uuid.NewString()
	req := dto.GenerateFiscalYearRequest{StartYear: 2026}

	expectedStart := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	expectedEnd := time.Date(2027, 3, 31, 0, 0, 0, 0, time.UTC)

	suite.mockOrgSvc.On("GetOrganizationByID", ctx, suite.orgID).Return(suite.orgWithStartMonth(4), nil).Once()
	suite.mockRepo.On("HasOverlappingPeriods", ctx, suite.orgID, expectedStart, expectedEnd).Return(false, nil).Once()
	suite.mockRepo.On("SaveFiscalYear", ctx, mock.AnythingOfType("domain.FiscalYear"), mock.AnythingOfType("[]domain.FiscalPeriod")).Return(nil).Once()

	year, err := suite.service.GenerateFiscalYear(ctx, suite.orgID, req, creatorUserID)

	suite.Require().NoError(err)
	suite.Require().NotNil(year)
	suite.Equal("FY2026", year.Name) // Defaulted
	suite.Equal(expectedStart, year.StartDate)
	suite.Equal(expectedEnd, year.EndDate)
	suite.Equal(domain.PeriodOpen, year.Status)
	suite.Require().Len(year.Periods, 12)

	first := year.Periods[0]
	suite.Equal("2026-04", first.Name)
	suite.Equal(expectedStart, first.StartDate)
	suite.Equal(time.Date(2026, 4, 30, 0, 0, 0, 0, time.UTC), first.EndDate)
	suite.Equal(domain.PeriodOpen, first.Status)

	last := year.Periods[11]
	suite.Equal("2027-03", last.Name)
	suite.Equal(time.Date(2027, 3, 1, 0, 0, 0, 0, time.UTC), last.StartDate)
	suite.Equal(expectedEnd, last.EndDate)

	// Consecutive periods must tile the year without gaps or overlaps
	for i := 1; i < 12; i++ {
		suite.Equal(year.Periods[i-1].EndDate.AddDate(0, 0, 1), year.Periods[i].StartDate)
	}

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *FiscalServiceTestSuite) TestGenerateFiscalYear_Overlap() {
	ctx := context.Background()
	req := dto.GenerateFiscalYearRequest{StartYear: 2026, Name: "FY2026"}

	suite.mockOrgSvc.On("GetOrganizationByID", ctx, suite.orgID).Return(suite.orgWithStartMonth(1), nil).Once()
	suite.mockRepo.On("HasOverlappingPeriods", ctx, suite.orgID, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).Return(true, nil).Once()

	year, err := suite.service.GenerateFiscalYear(ctx, suite.orgID, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(year)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveFiscalYear", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *FiscalServiceTestSuite) TestFindPeriodForDate_NoOpenPeriod() {
	ctx := context.Background()
	date := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)

	suite.mockRepo.On("FindOpenPeriodForDate", ctx, suite.orgID, date).Return(nil, apperrors.ErrNotFound).Once()

	period, err := suite.service.FindPeriodForDate(ctx, suite.orgID, date)

	suite.Require().Error(err)
	suite.Nil(period)
	suite.ErrorIs(err, apperrors.ErrNoOpenPeriod)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *FiscalServiceTestSuite) TestFindPeriodForDate_Success() {
	ctx := context.Background()
	date := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)
	expected := &domain.FiscalPeriod{
		PeriodID:       uuid.NewString(),
		OrganizationID: suite.orgID,
		Status:         domain.PeriodOpen,
	}

	suite.mockRepo.On("FindOpenPeriodForDate", ctx, suite.orgID, date).Return(expected, nil).Once()

	period, err := suite.service.FindPeriodForDate(ctx, suite.orgID, date)

	suite.Require().NoError(err)
	suite.Equal(expected, period)
}

func (suite *FiscalServiceTestSuite) TestGetPeriodByID_WrongOrganization() {
	ctx := context.Background()
	periodID := uuid.NewString()
	foreign := &domain.FiscalPeriod{
		PeriodID:       periodID,
		OrganizationID: uuid.NewString(),
	}

	suite.mockRepo.On("FindPeriodByID", ctx, periodID).Return(foreign, nil).Once()

	period, err := suite.service.GetPeriodByID(ctx, suite.orgID, periodID)

	suite.Require().Error(err)
	suite.Nil(period)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *FiscalServiceTestSuite) TestClosePeriod_Success() {
	ctx := context.Background()
	periodID := uuid.NewString()
	userID := uuid.NewString()
	open := &domain.FiscalPeriod{
		PeriodID:       periodID,
		OrganizationID: suite.orgID,
		Status:         domain.PeriodOpen,
	}

	suite.mockRepo.On("FindPeriodByID", ctx, periodID).Return(open, nil).Once()
	suite.mockRepo.On("UpdatePeriodStatus", ctx, periodID, domain.PeriodClosed, userID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	err := suite.service.ClosePeriod(ctx, suite.orgID, periodID, userID)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *FiscalServiceTestSuite) TestClosePeriod_AlreadyClosed() {
	ctx := context.Background()
	periodID := uuid.NewString()
	closed := &domain.FiscalPeriod{
		PeriodID:       periodID,
		OrganizationID: suite.orgID,
		Status:         domain.PeriodClosed,
	}

	suite.mockRepo.On("FindPeriodByID", ctx, periodID).Return(closed, nil).Once()

	err := suite.service.ClosePeriod(ctx, suite.orgID, periodID, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInvalidState)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdatePeriodStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *FiscalServiceTestSuite) TestReopenPeriod_AlreadyOpen() {
	ctx := context.Background()
	periodID := uuid.NewString()
	open := &domain.FiscalPeriod{
		PeriodID:       periodID,
		OrganizationID: suite.orgID,
		Status:         domain.PeriodOpen,
	}

	suite.mockRepo.On("FindPeriodByID", ctx, periodID).Return(open, nil).Once()

	err := suite.service.ReopenPeriod(ctx, suite.orgID, periodID, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInvalidState)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdatePeriodStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *FiscalServiceTestSuite) TestReopenPeriod_Success() {
	ctx := context.Background()
	periodID := uuid.NewString()
	userID := uuid.NewString()
	closed := &domain.FiscalPeriod{
		PeriodID:       periodID,
		OrganizationID: suite.orgID,
		Status:         domain.PeriodClosed,
	}

	suite.mockRepo.On("FindPeriodByID", ctx, periodID).Return(closed, nil).Once()
	suite.mockRepo.On("UpdatePeriodStatus", ctx, periodID, domain.PeriodOpen, userID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	err := suite.service.ReopenPeriod(ctx, suite.orgID, periodID, userID)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

// --- Run Test Suite ---

func TestFiscalService(t *testing.T) {
	suite.Run(t, new(FiscalServiceTestSuite))
}
