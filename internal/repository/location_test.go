//go:build integration
// +build integration

package repository

import (
	"testing"

	"pickup-sports-backend/internal/database/models"
	apperrors "pickup-sports-backend/internal/errors"
	"pickup-sports-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
)

// LocationRepositoryTestSuite tests the LocationRepository
type LocationRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *LocationRepository
}

func (suite *LocationRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewLocationRepository(suite.baseTestSuite.DB)
}

func (suite *LocationRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *LocationRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

func (suite *LocationRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreateDuplicateNameAddress tests the (name, address) uniqueness
func (suite *LocationRepositoryTestSuite) TestCreateDuplicateNameAddress() {
	suite.Require().NoError(suite.repo.Create(&models.Location{Name: "Dolores Park", Address: "Dolores St"}))

	err := suite.repo.Create(&models.Location{Name: "Dolores Park", Address: "Dolores St"})
	suite.Equal(apperrors.ErrLocationExists, err)

	suite.NoError(suite.repo.Create(&models.Location{Name: "Dolores Park", Address: "18th St"}))
}

// TestGetOrCreate tests that an existing location is reused
func (suite *LocationRepositoryTestSuite) TestGetOrCreate() {
	first, err := suite.repo.GetOrCreate("Kezar", "755 Stanyan St")
	suite.Require().NoError(err)
	suite.NotZero(first.ID)

	again, err := suite.repo.GetOrCreate("Kezar", "755 Stanyan St")
	suite.Require().NoError(err)
	suite.Equal(first.ID, again.ID)
}

// TestSearch tests matching name or address case-insensitively
func (suite *LocationRepositoryTestSuite) TestSearch() {
	suite.Require().NoError(suite.repo.Create(&models.Location{Name: "Beach Chalet", Address: "Great Hwy"}))
	suite.Require().NoError(suite.repo.Create(&models.Location{Name: "Crocker Amazon", Address: "Moscow St"}))

	found, err := suite.repo.Search("beach")
	suite.NoError(err)
	suite.Require().Len(found, 1)
	suite.Equal("Beach Chalet", found[0].Name)

	found, err = suite.repo.Search("moscow")
	suite.NoError(err)
	suite.Len(found, 1)

	all, err := suite.repo.Search("")
	suite.NoError(err)
	suite.Len(all, 2)
}

func TestLocationRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(LocationRepositoryTestSuite))
}
