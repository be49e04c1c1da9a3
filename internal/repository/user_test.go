//go:build integration
// +build integration

package repository

import (
	"testing"

	"pickup-sports-backend/internal/database/models"
	apperrors "pickup-sports-backend/internal/errors"
	"pickup-sports-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// UserRepositoryTestSuite tests the UserRepository
type UserRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *UserRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *UserRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewUserRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *UserRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *UserRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *UserRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreate tests creating a new user
func (suite *UserRepositoryTestSuite) TestCreate() {
	user := suite.factories.User.Create()

	err := suite.repo.Create(user)

	suite.NoError(err)
	suite.NotZero(user.ID)
	suite.NotZero(user.CreatedAt)
}

// TestCreateDuplicateEmail tests that a non-blank email is unique
func (suite *UserRepositoryTestSuite) TestCreateDuplicateEmail() {
	suite.Require().NoError(suite.repo.Create(suite.factories.User.WithEmail("same@example.com")))

	err := suite.repo.Create(suite.factories.User.WithEmail("same@example.com"))

	suite.Error(err)
	suite.Equal(apperrors.ErrUserEmailExists, err)
	suite.True(apperrors.IsAlreadyExists(err))
}

// TestCreateBlankEmails tests that any number of users may leave email blank
func (suite *UserRepositoryTestSuite) TestCreateBlankEmails() {
	for i := 0; i < 3; i++ {
		suite.NoError(suite.repo.Create(suite.factories.User.WithEmail("")))
	}

	var count int64
	suite.NoError(suite.baseTestSuite.DB.Model(&models.User{}).Count(&count).Error)
	suite.Equal(int64(3), count)
}

// TestCreateDuplicateUsername tests that usernames are unique
func (suite *UserRepositoryTestSuite) TestCreateDuplicateUsername() {
	first := suite.factories.User.Create()
	suite.Require().NoError(suite.repo.Create(first))

	second := suite.factories.User.Create()
	second.Username = first.Username

	err := suite.repo.Create(second)
	suite.Equal(apperrors.ErrUsernameExists, err)
}

// TestUpdateToTakenEmail tests that uniqueness is also checked on update
func (suite *UserRepositoryTestSuite) TestUpdateToTakenEmail() {
	first := suite.factories.User.WithEmail("taken@example.com")
	second := suite.factories.User.Create()
	suite.Require().NoError(suite.repo.Create(first))
	suite.Require().NoError(suite.repo.Create(second))

	second.Email = "taken@example.com"
	err := suite.repo.Update(second)

	suite.Equal(apperrors.ErrUserEmailExists, err)
}

// TestGetByID tests retrieving a user by ID
func (suite *UserRepositoryTestSuite) TestGetByID() {
	user := suite.factories.User.Create()
	suite.Require().NoError(suite.repo.Create(user))

	found, err := suite.repo.GetByID(user.ID)

	suite.NoError(err)
	suite.Equal(user.Username, found.Username)
	suite.Equal(user.Email, found.Email)
}

// TestGetByIDNotFound tests retrieving a non-existent user
func (suite *UserRepositoryTestSuite) TestGetByIDNotFound() {
	user, err := suite.repo.GetByID(4242)

	suite.Equal(gorm.ErrRecordNotFound, err)
	suite.Nil(user)
}

// TestGetByEmailAndUsername tests the lookup helpers
func (suite *UserRepositoryTestSuite) TestGetByEmailAndUsername() {
	user := suite.factories.User.Create()
	suite.Require().NoError(suite.repo.Create(user))

	byEmail, err := suite.repo.GetByEmail(user.Email)
	suite.NoError(err)
	suite.Equal(user.ID, byEmail.ID)

	byName, err := suite.repo.GetByUsername(user.Username)
	suite.NoError(err)
	suite.Equal(user.ID, byName.ID)
}

// TestGetWithManagedTeams tests loading the teams a user manages
func (suite *UserRepositoryTestSuite) TestGetWithManagedTeams() {
	user := suite.factories.User.Create()
	suite.Require().NoError(suite.repo.Create(user))

	teams := NewTeamRepository(suite.baseTestSuite.DB)
	team := suite.factories.Team.Create()
	suite.Require().NoError(teams.Create(team))
	suite.Require().NoError(teams.AddManager(team.ID, user.ID))

	found, err := suite.repo.GetWithManagedTeams(user.ID)

	suite.NoError(err)
	suite.Require().Len(found.ManagedTeams, 1)
	suite.Equal(team.ID, found.ManagedTeams[0].ID)
}

// TestUserRepositoryTestSuite runs the test suite
func TestUserRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(UserRepositoryTestSuite))
}
