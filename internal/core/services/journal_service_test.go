package services_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/ledgerhouse/general_ledger_app/internal/apperrors"
	"github.com/ledgerhouse/general_ledger_app/internal/core/domain"
	portsrepo "github.com/ledgerhouse/general_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/ledgerhouse/general_ledger_app/internal/core/ports/services"
	"github.com/ledgerhouse/general_ledger_app/internal/core/services"
	"github.com/ledgerhouse/general_ledger_app/internal/dto"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock JournalRepository ---
type MockJournalRepository struct {
	mock.Mock
}

var _ portsrepo.JournalRepositoryFacade = (*MockJournalRepository)(nil)

func (m *MockJournalRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalRepository) FindLinesByEntryID(ctx context.Context, entryID string) ([]domain.JournalLine, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalLine), args.Error(1)
}

func (m *MockJournalRepository) ListEntriesByOrganization(ctx context.Context, organizationID string, limit int, nextToken *string) ([]domain.JournalEntry, *string, error) {
	args := m.Called(ctx, organizationID, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var returnedNextToken *string
	if args.Get(1) != nil {
		tokenVal := args.Get(1).(string)
		returnedNextToken = &tokenVal
	}
	return args.Get(0).([]domain.JournalEntry), returnedNextToken, args.Error(2)
}

func (m *MockJournalRepository) SaveDraftEntry(ctx context.Context, entry domain.JournalEntry, lines []domain.JournalLine) (int64, error) {
	args := m.Called(ctx, entry, lines)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockJournalRepository) UpdateDraftEntry(ctx context.Context, entry domain.JournalEntry, lines []domain.JournalLine, replaceLines bool) error {
	args := m.Called(ctx, entry, lines, replaceLines)
	return args.Error(0)
}

func (m *MockJournalRepository) DeleteDraftEntry(ctx context.Context, entryID string) error {
	args := m.Called(ctx, entryID)
	return args.Error(0)
}

func (m *MockJournalRepository) MarkEntryPosted(ctx context.Context, entryID string, actorID string, deltas map[string]decimal.Decimal, now time.Time) error {
	args := m.Called(ctx, entryID, actorID, deltas, now)
	return args.Error(0)
}

func (m *MockJournalRepository) MarkEntryVoided(ctx context.Context, entryID string, actorID string, deltas map[string]decimal.Decimal, now time.Time) error {
	args := m.Called(ctx, entryID, actorID, deltas, now)
	return args.Error(0)
}

// --- Mock AccountService (as used by JournalService and PostingService) ---
type MockAccountService struct {
	mock.Mock
}

var _ portssvc.AccountSvcFacade = (*MockAccountService)(nil)

func (m *MockAccountService) CreateAccount(ctx context.Context, organizationID string, req dto.CreateAccountRequest, creatorUserID string) (*domain.Account, error) {
	args := m.Called(ctx, organizationID, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) GetAccountByID(ctx context.Context, organizationID string, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, organizationID, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) GetAccountsByIDs(ctx context.Context, organizationID string, accountIDs []string) (map[string]domain.Account, error) {
	args := m.Called(ctx, organizationID, accountIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Account), args.Error(1)
}

func (m *MockAccountService) ListAccounts(ctx context.Context, organizationID string, limit int, offset int) ([]domain.Account, error) {
	args := m.Called(ctx, organizationID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountService) UpdateAccount(ctx context.Context, organizationID string, accountID string, req dto.UpdateAccountRequest, userID string) (*domain.Account, error) {
	args := m.Called(ctx, organizationID, accountID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) DeactivateAccount(ctx context.Context, organizationID string, accountID string, userID string) error {
	args := m.Called(ctx, organizationID, accountID, userID)
	return args.Error(0)
}

func (m *MockAccountService) DeleteAccount(ctx context.Context, organizationID string, accountID string, userID string) error {
	args := m.Called(ctx, organizationID, accountID, userID)
	return args.Error(0)
}

// --- Mock FiscalService ---
type MockFiscalService struct {
	mock.Mock
}

var _ portssvc.FiscalSvcFacade = (*MockFiscalService)(nil)

func (m *MockFiscalService) GenerateFiscalYear(ctx context.Context, organizationID string, req dto.GenerateFiscalYearRequest, creatorUserID string) (*domain.FiscalYear, error) {
	args := m.Called(ctx, organizationID, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FiscalYear), args.Error(1)
}

func (m *MockFiscalService) FindPeriodForDate(ctx context.Context, organizationID string, date time.Time) (*domain.FiscalPeriod, error) {
	args := m.Called(ctx, organizationID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FiscalPeriod), args.Error(1)
}

func (m *MockFiscalService) ListFiscalYears(ctx context.Context, organizationID string) ([]domain.FiscalYear, error) {
	args := m.Called(ctx, organizationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FiscalYear), args.Error(1)
}

func (m *MockFiscalService) GetPeriodByID(ctx context.Context, organizationID string, periodID string) (*domain.FiscalPeriod, error) {
	args := m.Called(ctx, organizationID, periodID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FiscalPeriod), args.Error(1)
}

func (m *MockFiscalService) ClosePeriod(ctx context.Context, organizationID string, periodID string, userID string) error {
	args := m.Called(ctx, organizationID, periodID, userID)
	return args.Error(0)
}

func (m *MockFiscalService) ReopenPeriod(ctx context.Context, organizationID string, periodID string, userID string) error {
	args := m.Called(ctx, organizationID, periodID, userID)
	return args.Error(0)
}

// --- Test Suite Setup ---

type JournalServiceTestSuite struct {
	suite.Suite
	mockRepo       *MockJournalRepository
	mockAccountSvc *MockAccountService
	mockFiscalSvc  *MockFiscalService
	mockOrgSvc     *MockOrganizationService
	service        portssvc.JournalSvcFacade

	orgID      string
	org        *domain.Organization
	openPeriod *domain.FiscalPeriod
	cashID     string
	revenueID  string
}

func (suite *JournalServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockJournalRepository)
	suite.mockAccountSvc = new(MockAccountService)
	suite.mockFiscalSvc = new(MockFiscalService)
	suite.mockOrgSvc = new(MockOrganizationService)
	suite.service = services.NewJournalService(suite.mockRepo, suite.mockAccountSvc, suite.mockFiscalSvc, suite.mockOrgSvc)

	suite.orgID = uuid.NewString()
	suite.org = &domain.Organization{
		OrganizationID:       suite.orgID,
		BaseCurrencyCode:     "USD",
		FiscalYearStartMonth: 1,
	}
	suite.openPeriod = &domain.FiscalPeriod{
		PeriodID:       uuid.NewString(),
		OrganizationID: suite.orgID,
		Name:           "2026-08",
		StartDate:      time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		EndDate:        time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC),
		Status:         domain.PeriodOpen,
	}
	suite.cashID = uuid.NewString()
	suite.revenueID = uuid.NewString()
}

func (suite *JournalServiceTestSuite) activeAccounts() map[string]domain.Account {
	return map[string]domain.Account{
		suite.cashID:    {AccountID: suite.cashID, OrganizationID: suite.orgID, AccountType: domain.Asset, IsActive: true},
		suite.revenueID: {AccountID: suite.revenueID, OrganizationID: suite.orgID, AccountType: domain.Revenue, IsActive: true},
	}
}

func (suite *JournalServiceTestSuite) balancedCreateRequest() dto.CreateJournalEntryRequest {
	return dto.CreateJournalEntryRequest{
		EntryDate:   time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC),
		Description: "Cash sale",
		Lines: []dto.CreateJournalLineRequest{
			{AccountID: suite.cashID, Debit: decimal.NewFromInt(100)},
			{AccountID: suite.revenueID, Credit: decimal.NewFromInt(100)},
		},
	}
}

// --- Test Cases ---

func (suite *JournalServiceTestSuite) TestCreateDraftEntry_Success() {
	ctx := context.Background()
	creatorUserID := uuid.NewString()
	req := suite.balancedCreateRequest()

	suite.mockOrgSvc.On("GetOrganizationByID", ctx, suite.orgID).Return(suite.org, nil).Once()
	suite.mockAccountSvc.On("GetAccountsByIDs", ctx, suite.orgID, mock.AnythingOfType("[]string")).Return(suite.activeAccounts(), nil).Once()
	suite.mockFiscalSvc.On("FindPeriodForDate", ctx, suite.orgID, req.EntryDate).Return(suite.openPeriod, nil).Once()
	suite.mockRepo.On("SaveDraftEntry", ctx, mock.MatchedBy(func(e domain.JournalEntry) bool {
		return e.OrganizationID == suite.orgID &&
			e.Status == domain.Draft &&
			e.EntryType == domain.Standard &&
			e.FiscalPeriodID == suite.openPeriod.PeriodID &&
			e.TotalDebit.Equal(decimal.NewFromInt(100)) &&
			e.TotalCredit.Equal(decimal.NewFromInt(100))
	}), mock.AnythingOfType("[]domain.JournalLine")).Return(int64(42), nil).Once()

	entry, err := suite.service.CreateDraftEntry(ctx, suite.orgID, req, creatorUserID)

	suite.Require().NoError(err)
	suite.Require().NotNil(entry)
	suite.Equal(int64(42), entry.EntryNumber) // Allocated by the repository
	suite.Equal(domain.Draft, entry.Status)
	suite.Require().Len(entry.Lines, 2)
	suite.Equal(1, entry.Lines[0].LineNumber)
	suite.Equal(2, entry.Lines[1].LineNumber)
	suite.Equal("USD", entry.Lines[0].CurrencyCode) // Defaulted from the organization
	suite.True(entry.Lines[0].ExchangeRate.Equal(decimal.NewFromInt(1)))
	suite.True(entry.Lines[0].BaseDebit.Equal(decimal.NewFromInt(100)))

	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockFiscalSvc.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestCreateDraftEntry_ExplicitNumberCollision() {
	ctx := context.Background()
	req := suite.balancedCreateRequest()
	taken := int64(42)
	req.EntryNumber = &taken

	suite.mockOrgSvc.On("GetOrganizationByID", ctx, suite.orgID).Return(suite.org, nil).Once()
	suite.mockAccountSvc.On("GetAccountsByIDs", ctx, suite.orgID, mock.AnythingOfType("[]string")).Return(suite.activeAccounts(), nil).Once()
	suite.mockFiscalSvc.On("FindPeriodForDate", ctx, suite.orgID, req.EntryDate).Return(suite.openPeriod, nil).Once()
	// The number already exists in the organization; the unique violation
	// surfaces as a duplicate, not a raw database error
	suite.mockRepo.On("SaveDraftEntry", ctx, mock.MatchedBy(func(e domain.JournalEntry) bool {
		return e.EntryNumber == taken
	}), mock.AnythingOfType("[]domain.JournalLine")).
		Return(int64(0), fmt.Errorf("%w: entry number %d already exists in organization", apperrors.ErrDuplicate, taken)).Once()

	entry, err := suite.service.CreateDraftEntry(ctx, suite.orgID, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(entry)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestCreateDraftEntry_Unbalanced() {
	ctx := context.Background()
	req := suite.balancedCreateRequest()
	req.Lines[1].Credit = decimal.NewFromInt(90) // 100 vs 90

	suite.mockOrgSvc.On("GetOrganizationByID", ctx, suite.orgID).Return(suite.org, nil).Once()

	entry, err := suite.service.CreateDraftEntry(ctx, suite.orgID, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(entry)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveDraftEntry", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *JournalServiceTestSuite) TestCreateDraftEntry_DeclaredTotalMismatch() {
	ctx := context.Background()
	req := suite.balancedCreateRequest()
	wrongTotal := decimal.NewFromInt(250)
	req.TotalDebit = &wrongTotal

	suite.mockOrgSvc.On("GetOrganizationByID", ctx, suite.orgID).Return(suite.org, nil).Once()

	entry, err := suite.service.CreateDraftEntry(ctx, suite.orgID, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(entry)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *JournalServiceTestSuite) TestCreateDraftEntry_TooFewLines() {
	ctx := context.Background()
	req := suite.balancedCreateRequest()
	req.Lines = req.Lines[:1]

	entry, err := suite.service.CreateDraftEntry(ctx, suite.orgID, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(entry)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockOrgSvc.AssertNotCalled(suite.T(), "GetOrganizationByID", mock.Anything, mock.Anything)
}

func (suite *JournalServiceTestSuite) TestCreateDraftEntry_InactiveAccount() {
	ctx := context.Background()
	req := suite.balancedCreateRequest()
	accounts := suite.activeAccounts()
	frozen := accounts[suite.revenueID]
	frozen.IsActive = false
	accounts[suite.revenueID] = frozen

	suite.mockOrgSvc.On("GetOrganizationByID", ctx, suite.orgID).Return(suite.org, nil).Once()
	suite.mockAccountSvc.On("GetAccountsByIDs", ctx, suite.orgID, mock.AnythingOfType("[]string")).Return(accounts, nil).Once()

	entry, err := suite.service.CreateDraftEntry(ctx, suite.orgID, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(entry)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveDraftEntry", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *JournalServiceTestSuite) TestCreateDraftEntry_UnknownAccount() {
	ctx := context.Background()
	req := suite.balancedCreateRequest()
	accounts := suite.activeAccounts()
	delete(accounts, suite.revenueID)

	suite.mockOrgSvc.On("GetOrganizationByID", ctx, suite.orgID).Return(suite.org, nil).Once()
	suite.mockAccountSvc.On("GetAccountsByIDs", ctx, suite.orgID, mock.AnythingOfType("[]string")).Return(accounts, nil).Once()

	entry, err := suite.service.CreateDraftEntry(ctx, suite.orgID, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(entry)
	suite.ErrorIs(err, apperrors.ErrAccountNotFound)
}

func (suite *JournalServiceTestSuite) TestCreateDraftEntry_ForeignCurrencyWithoutRate() {
	ctx := context.Background()
	req := suite.balancedCreateRequest()
	eur := "EUR"
	req.Lines[0].CurrencyCode = &eur // No exchange rate supplied

	suite.mockOrgSvc.On("GetOrganizationByID", ctx, suite.orgID).Return(suite.org, nil).Once()

	entry, err := suite.service.CreateDraftEntry(ctx, suite.orgID, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(entry)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *JournalServiceTestSuite) TestCreateDraftEntry_ForeignCurrencyBaseAmounts() {
	ctx := context.Background()
	req := suite.balancedCreateRequest()
	eur := "EUR"
	rate := decimal.NewFromFloat(1.1)
	req.Lines[0].CurrencyCode = &eur
	req.Lines[0].ExchangeRate = &rate

	suite.mockOrgSvc.On("GetOrganizationByID", ctx, suite.orgID).Return(suite.org, nil).Once()
	suite.mockAccountSvc.On("GetAccountsByIDs", ctx, suite.orgID, mock.AnythingOfType("[]string")).Return(suite.activeAccounts(), nil).Once()
	suite.mockFiscalSvc.On("FindPeriodForDate", ctx, suite.orgID, req.EntryDate).Return(suite.openPeriod, nil).Once()
	suite.mockRepo.On("SaveDraftEntry", ctx, mock.AnythingOfType("domain.JournalEntry"), mock.MatchedBy(func(lines []domain.JournalLine) bool {
		// 100 EUR at 1.1 lands as 110 in base currency
		return len(lines) == 2 && lines[0].BaseDebit.Equal(decimal.NewFromInt(110))
	})).Return(int64(7), nil).Once()

	entry, err := suite.service.CreateDraftEntry(ctx, suite.orgID, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.Require().NotNil(entry)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestCreateDraftEntry_ExplicitClosedPeriod() {
	ctx := context.Background()
	closed := &domain.FiscalPeriod{
		PeriodID:       uuid.NewString(),
		OrganizationID: suite.orgID,
		StartDate:      suite.openPeriod.StartDate,
		EndDate:        suite.openPeriod.EndDate,
		Status:         domain.PeriodClosed,
	}
	req := suite.balancedCreateRequest()
	req.FiscalPeriodID = &closed.PeriodID

	suite.mockOrgSvc.On("GetOrganizationByID", ctx, suite.orgID).Return(suite.org, nil).Once()
	suite.mockAccountSvc.On("GetAccountsByIDs", ctx, suite.orgID, mock.AnythingOfType("[]string")).Return(suite.activeAccounts(), nil).Once()
	suite.mockFiscalSvc.On("GetPeriodByID", ctx, suite.orgID, closed.PeriodID).Return(closed, nil).Once()

	entry, err := suite.service.CreateDraftEntry(ctx, suite.orgID, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(entry)
	suite.ErrorIs(err, apperrors.ErrNoOpenPeriod)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveDraftEntry", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *JournalServiceTestSuite) TestCreateDraftEntry_DateOutsideExplicitPeriod() {
	ctx := context.Background()
	req := suite.balancedCreateRequest()
	req.EntryDate = time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC) // Outside the August period
	req.FiscalPeriodID = &suite.openPeriod.PeriodID

	suite.mockOrgSvc.On("GetOrganizationByID", ctx, suite.orgID).Return(suite.org, nil).Once()
	suite.mockAccountSvc.On("GetAccountsByIDs", ctx, suite.orgID, mock.AnythingOfType("[]string")).Return(suite.activeAccounts(), nil).Once()
	suite.mockFiscalSvc.On("GetPeriodByID", ctx, suite.orgID, suite.openPeriod.PeriodID).Return(suite.openPeriod, nil).Once()

	entry, err := suite.service.CreateDraftEntry(ctx, suite.orgID, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(entry)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *JournalServiceTestSuite) TestCreateDraftEntry_NoOpenPeriod() {
	ctx := context.Background()
	req := suite.balancedCreateRequest()

	suite.mockOrgSvc.On("GetOrganizationByID", ctx, suite.orgID).Return(suite.org, nil).Once()
	suite.mockAccountSvc.On("GetAccountsByIDs", ctx, suite.orgID, mock.AnythingOfType("[]string")).Return(suite.activeAccounts(), nil).Once()
	suite.mockFiscalSvc.On("FindPeriodForDate", ctx, suite.orgID, req.EntryDate).Return(nil, apperrors.ErrNoOpenPeriod).Once()

	entry, err := suite.service.CreateDraftEntry(ctx, suite.orgID, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(entry)
	suite.ErrorIs(err, apperrors.ErrNoOpenPeriod)
}

func (suite *JournalServiceTestSuite) TestUpdateDraftEntry_NotADraft() {
	ctx := context.Background()
	entryID := uuid.NewString()
	posted := &domain.JournalEntry{
		EntryID:        entryID,
		OrganizationID: suite.orgID,
		Status:         domain.Posted,
	}
	newDesc := "Edited"
	req := dto.UpdateJournalEntryRequest{Description: &newDesc}

	suite.mockRepo.On("FindEntryByID", ctx, entryID).Return(posted, nil).Once()
	suite.mockRepo.On("FindLinesByEntryID", ctx, entryID).Return([]domain.JournalLine{}, nil).Once()

	entry, err := suite.service.UpdateDraftEntry(ctx, suite.orgID, entryID, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(entry)
	suite.ErrorIs(err, apperrors.ErrInvalidState)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateDraftEntry", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *JournalServiceTestSuite) TestDeleteDraftEntry_Posted() {
	ctx := context.Background()
	entryID := uuid.NewString()
	posted := &domain.JournalEntry{
		EntryID:        entryID,
		OrganizationID: suite.orgID,
		Status:         domain.Posted,
	}

	suite.mockRepo.On("FindEntryByID", ctx, entryID).Return(posted, nil).Once()

	err := suite.service.DeleteDraftEntry(ctx, suite.orgID, entryID, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInvalidState)
	suite.mockRepo.AssertNotCalled(suite.T(), "DeleteDraftEntry", mock.Anything, mock.Anything)
}

func (suite *JournalServiceTestSuite) TestDeleteDraftEntry_Success() {
	ctx := context.Background()
	entryID := uuid.NewString()
	draft := &domain.JournalEntry{
		EntryID:        entryID,
		OrganizationID: suite.orgID,
		Status:         domain.Draft,
	}

	suite.mockRepo.On("FindEntryByID", ctx, entryID).Return(draft, nil).Once()
	suite.mockRepo.On("DeleteDraftEntry", ctx, entryID).Return(nil).Once()

	err := suite.service.DeleteDraftEntry(ctx, suite.orgID, entryID, uuid.NewString())

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestGetEntryByID_WrongOrganization() {
	ctx := context.Background()
	entryID := uuid.NewString()
	foreign := &domain.JournalEntry{
		EntryID:        entryID,
		OrganizationID: uuid.NewString(),
		Status:         domain.Draft,
	}

	suite.mockRepo.On("FindEntryByID", ctx, entryID).Return(foreign, nil).Once()

	entry, err := suite.service.GetEntryByID(ctx, suite.orgID, entryID)

	suite.Require().Error(err)
	suite.Nil(entry)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertNotCalled(suite.T(), "FindLinesByEntryID", mock.Anything, mock.Anything)
}

func (suite *JournalServiceTestSuite) TestListEntries_PassesToken() {
	ctx := context.Background()
	token := "opaque-token"
	nextToken := "next-opaque-token"
	params := dto.ListEntriesParams{Limit: 10, NextToken: &token}
	entries := []domain.JournalEntry{
		{EntryID: uuid.NewString(), OrganizationID: suite.orgID, EntryNumber: 2, Status: domain.Posted},
		{EntryID: uuid.NewString(), OrganizationID: suite.orgID, EntryNumber: 1, Status: domain.Draft},
	}

	suite.mockRepo.On("ListEntriesByOrganization", ctx, suite.orgID, 10, &token).Return(entries, nextToken, nil).Once()

	resp, err := suite.service.ListEntries(ctx, suite.orgID, params)

	suite.Require().NoError(err)
	suite.Require().NotNil(resp)
	suite.Len(resp.Entries, 2)
	suite.Require().NotNil(resp.NextToken)
	suite.Equal(nextToken, *resp.NextToken)
	suite.mockRepo.AssertExpectations(suite.T())
}

// --- Run Test Suite ---

func TestJournalService(t *testing.T) {
	suite.Run(t, new(JournalServiceTestSuite))
}
