package postgres_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/restoration-tracker/internal/domain"
	"github.com/restoration-tracker/internal/domain/repository"
	apperrors "github.com/restoration-tracker/internal/pkg/errors"
	"github.com/restoration-tracker/internal/repository/postgres/testhelpers"
	"github.com/restoration-tracker/internal/usecase/dto"
)

// ProjectRepositoryTestSuite tests ProjectRepository against a real database
type ProjectRepositoryTestSuite struct {
	suite.Suite
	testDB *testhelpers.TestDB
	repo   repository.ProjectRepository
	ctx    context.Context
}

// SetupSuite runs once before all tests in the suite
func (s *ProjectRepositoryTestSuite) SetupSuite() {
	s.testDB = testhelpers.SetupTestDB(s.T())

	migrationsDir, err := testhelpers.MigrationsDir()
	s.NoError(err, "Failed to locate migrations directory")

	err = testhelpers.ApplyMigrations(s.testDB.DB.DB, migrationsDir)
	s.NoError(err, "Failed to apply migrations")

	err = s.testDB.SeedReferenceData(context.Background())
	s.NoError(err, "Failed to seed reference data")

	s.repo = testhelpers.NewProjectRepositoryForTest(s.testDB.DB, s.testDB.Logger)
}

// TearDownSuite runs once after all tests in the suite
func (s *ProjectRepositoryTestSuite) TearDownSuite() {
	if s.testDB != nil {
		s.testDB.Close()
	}
}

// SetupTest runs before each test
func (s *ProjectRepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.NoError(s.testDB.Cleanup(s.ctx))
}

func (s *ProjectRepositoryTestSuite) insertProject(name string) int64 {
	id, err := s.repo.InsertProject(s.ctx, dto.PostProjectData{
		Name:      name,
		IsProject: true,
		StateCode: domain.StatePlanning,
	})
	s.NoError(err)
	s.Greater(id, int64(0))
	return id
}

func strPtr(s string) *string     { return &s }
func int64Ptr(i int64) *int64     { return &i }
func floatPtr(f float64) *float64 { return &f }

// ============================================================================
// Project root row
// ============================================================================

func (s *ProjectRepositoryTestSuite) TestInsertProject_AndGetByID() {
	id, err := s.repo.InsertProject(s.ctx, dto.PostProjectData{
		Name:               "Oyster Reef Restoration",
		IsProject:          true,
		StateCode:          domain.StatePlanning,
		StartDate:          strPtr("2026-04-01"),
		EndDate:            strPtr("2027-04-01"),
		PeopleInvolved:     int64Ptr(12),
		IsPartOfPublicPlan: true,
	})

	s.NoError(err)

	project, err := s.repo.GetProjectByID(s.ctx, id)
	s.NoError(err)
	s.Equal("Oyster Reef Restoration", project.Name)
	s.True(project.IsProject)
	s.Equal(domain.StatePlanning, project.StateCode)
	s.Equal("2026-04-01", *project.StartDate)
	s.Equal(int64(12), *project.PeopleInvolved)
	s.True(project.IsPartOfPublicPlan)
	s.Equal(0, project.RevisionCount)
}

func (s *ProjectRepositoryTestSuite) TestGetProjectByID_NotFound() {
	_, err := s.repo.GetProjectByID(s.ctx, 999999)

	s.Error(err)
	s.True(apperrors.IsNotFound(err))
}

func (s *ProjectRepositoryTestSuite) TestUpdateProject_BumpsRevision() {
	id := s.insertProject("Dune Grass Planting")

	err := s.repo.UpdateProject(s.ctx, id, dto.PutProjectData{
		Name:          "Dune Grass Planting Phase 2",
		IsProject:     true,
		RevisionCount: 0,
	})
	s.NoError(err)

	project, err := s.repo.GetProjectByID(s.ctx, id)
	s.NoError(err)
	s.Equal("Dune Grass Planting Phase 2", project.Name)
	s.Equal(1, project.RevisionCount)
}

func (s *ProjectRepositoryTestSuite) TestUpdateProject_StaleRevisionRejected() {
	id := s.insertProject("Dune Grass Planting")

	err := s.repo.UpdateProject(s.ctx, id, dto.PutProjectData{
		Name: "first writer", IsProject: true, RevisionCount: 0,
	})
	s.NoError(err)

	// Second writer still holds revision 0
	err = s.repo.UpdateProject(s.ctx, id, dto.PutProjectData{
		Name: "second writer", IsProject: true, RevisionCount: 0,
	})
	s.Error(err)
	s.True(apperrors.IsNotFound(err))
}

func (s *ProjectRepositoryTestSuite) TestUpdateStateCode() {
	id := s.insertProject("Wetland Buffer")

	err := s.repo.UpdateStateCode(s.ctx, id, domain.StateArchived)
	s.NoError(err)

	project, err := s.repo.GetProjectByID(s.ctx, id)
	s.NoError(err)
	s.Equal(domain.StateArchived, project.StateCode)
}

func (s *ProjectRepositoryTestSuite) TestUpdateProjectFocus() {
	id := s.insertProject("Watershed Recovery")

	err := s.repo.UpdateProjectFocus(s.ctx, id, dto.PostFocusData{
		IsHealingLand:    true,
		IsLandInitiative: true,
		PeopleInvolved:   int64Ptr(30),
	})
	s.NoError(err)

	project, err := s.repo.GetProjectByID(s.ctx, id)
	s.NoError(err)
	s.True(project.IsHealingLand)
	s.False(project.IsHealingPeople)
	s.True(project.IsLandInitiative)
	s.Equal(int64(30), *project.PeopleInvolved)
}

func (s *ProjectRepositoryTestSuite) TestDeleteProject() {
	id := s.insertProject("Short Lived")

	s.NoError(s.repo.DeleteProject(s.ctx, id))

	_, err := s.repo.GetProjectByID(s.ctx, id)
	s.True(apperrors.IsNotFound(err))
}

// ============================================================================
// ListProjects filters
// ============================================================================

func (s *ProjectRepositoryTestSuite) TestListProjects_Filters() {
	riparian := s.insertProject("Riparian Corridor")
	s.insertProject("Kelp Forest")

	planID, err := s.repo.InsertProject(s.ctx, dto.PostProjectData{
		Name:      "Regional Recovery Plan",
		IsProject: false,
		StateCode: domain.StateArchived,
	})
	s.NoError(err)

	_, err = s.repo.InsertProjectRegion(s.ctx, riparian, 3640)
	s.NoError(err)

	s.Run("no filter returns everything", func() {
		projects, err := s.repo.ListProjects(s.ctx, domain.ProjectFilter{})
		s.NoError(err)
		s.Len(projects, 3)
	})

	s.Run("keyword is a case-insensitive substring", func() {
		projects, err := s.repo.ListProjects(s.ctx, domain.ProjectFilter{Keyword: "riparian"})
		s.NoError(err)
		s.Len(projects, 1)
		s.Equal(riparian, projects[0].ID)
	})

	s.Run("region matches through nrm_region", func() {
		projects, err := s.repo.ListProjects(s.ctx, domain.ProjectFilter{RegionObjectID: 3640})
		s.NoError(err)
		s.Len(projects, 1)
		s.Equal(riparian, projects[0].ID)
	})

	s.Run("state codes", func() {
		projects, err := s.repo.ListProjects(s.ctx, domain.ProjectFilter{StateCodes: []int{domain.StateArchived}})
		s.NoError(err)
		s.Len(projects, 1)
		s.Equal(planID, projects[0].ID)
	})

	s.Run("plans only", func() {
		isProject := false
		projects, err := s.repo.ListProjects(s.ctx, domain.ProjectFilter{IsProject: &isProject})
		s.NoError(err)
		s.Len(projects, 1)
		s.Equal(planID, projects[0].ID)
	})
}

// ============================================================================
// Contacts
// ============================================================================

func (s *ProjectRepositoryTestSuite) TestContacts_InsertGetDelete() {
	id := s.insertProject("Salmon Habitat")

	_, err := s.repo.InsertContact(s.ctx, id, dto.PostContactItem{
		FirstName:    "Pat",
		LastName:     "Rivers",
		EmailAddress: "pat@example.org",
		Organization: "Streamkeepers",
		IsPublic:     true,
		IsPrimary:    true,
	})
	s.NoError(err)
	_, err = s.repo.InsertContact(s.ctx, id, dto.PostContactItem{
		FirstName:    "Lee",
		LastName:     "Stone",
		EmailAddress: "lee@example.org",
		Organization: "Streamkeepers",
	})
	s.NoError(err)

	contacts, err := s.repo.GetContacts(s.ctx, id)
	s.NoError(err)
	s.Len(contacts, 2)
	s.Equal("Pat", contacts[0].FirstName)
	s.Equal("Y", contacts[0].IsPublic)
	s.Equal("N", contacts[1].IsPublic)

	s.NoError(s.repo.DeleteContacts(s.ctx, id))

	contacts, err = s.repo.GetContacts(s.ctx, id)
	s.NoError(err)
	s.Len(contacts, 0)
}

// ============================================================================
// Funding sources
// ============================================================================

func (s *ProjectRepositoryTestSuite) TestFundingSources_InsertGetDeleteByID() {
	id := s.insertProject("Salmon Habitat")

	fsID, err := s.repo.InsertFundingSource(s.ctx, id, dto.PostFundingSource{
		OrganizationName: "Habitat Trust",
		FundingAmount:    25000,
		StartDate:        strPtr("2026-01-01"),
		IsPublic:         true,
	})
	s.NoError(err)

	sources, err := s.repo.GetFundingSources(s.ctx, id)
	s.NoError(err)
	s.Len(sources, 1)
	s.Equal("Habitat Trust", sources[0].OrganizationName)
	s.Equal(float64(25000), sources[0].FundingAmount)
	s.Equal("2026-01-01", *sources[0].StartDate)
	s.Equal("Y", sources[0].IsPublic)

	s.NoError(s.repo.DeleteFundingSourceByID(s.ctx, id, fsID))

	err = s.repo.DeleteFundingSourceByID(s.ctx, id, fsID)
	s.True(apperrors.IsNotFound(err))
}

func (s *ProjectRepositoryTestSuite) TestDeleteFundingSourceByID_WrongProject() {
	id := s.insertProject("Salmon Habitat")
	other := s.insertProject("Other Project")

	fsID, err := s.repo.InsertFundingSource(s.ctx, id, dto.PostFundingSource{
		OrganizationName: "Habitat Trust",
		FundingAmount:    1000,
	})
	s.NoError(err)

	err = s.repo.DeleteFundingSourceByID(s.ctx, other, fsID)
	s.True(apperrors.IsNotFound(err))

	// Row survives the mismatched delete
	sources, err := s.repo.GetFundingSources(s.ctx, id)
	s.NoError(err)
	s.Len(sources, 1)
}

// ============================================================================
// Location and region
// ============================================================================

func (s *ProjectRepositoryTestSuite) TestProjectLocation_RoundTrip() {
	id := s.insertProject("Estuary Revival")

	_, err := s.repo.InsertProjectLocation(s.ctx, id, dto.PostLocationData{
		Geometry:    []byte(`{"type":"FeatureCollection","features":[]}`),
		NumberSites: 3,
		SizeHa:      floatPtr(12.5),
		ConservationAreas: []dto.ConservationArea{
			{ConservationArea: "Estuary Reserve"},
		},
	})
	s.NoError(err)

	location, err := s.repo.GetProjectLocation(s.ctx, id)
	s.NoError(err)
	s.NotNil(location)
	s.Equal(3, location.NumberSites)
	s.Equal(12.5, *location.SizeHa)
	s.JSONEq(`{"type":"FeatureCollection","features":[]}`, string(location.Geometry))
	s.JSONEq(`[{"conservationArea":"Estuary Reserve"}]`, string(location.ConservationAreas))

	s.NoError(s.repo.DeleteProjectLocation(s.ctx, id))

	location, err = s.repo.GetProjectLocation(s.ctx, id)
	s.NoError(err)
	s.Nil(location)
}

func (s *ProjectRepositoryTestSuite) TestProjectRegion_RoundTrip() {
	id := s.insertProject("Estuary Revival")

	region, err := s.repo.GetProjectRegion(s.ctx, id)
	s.NoError(err)
	s.Nil(region)

	_, err = s.repo.InsertProjectRegion(s.ctx, id, 3640)
	s.NoError(err)

	region, err = s.repo.GetProjectRegion(s.ctx, id)
	s.NoError(err)
	s.NotNil(region)
	s.Equal(int64(3640), region.ObjectID)
}

// ============================================================================
// Remaining child collections
// ============================================================================

func (s *ProjectRepositoryTestSuite) TestChildCollections() {
	id := s.insertProject("Grassland Mosaic")

	_, err := s.repo.InsertPartnership(s.ctx, id, "Local Stewardship Society")
	s.NoError(err)
	_, err = s.repo.InsertObjective(s.ctx, id, "Re-establish native grasses on 40ha")
	s.NoError(err)
	_, err = s.repo.InsertProjectSpecies(s.ctx, id, 180543)
	s.NoError(err)
	_, err = s.repo.InsertPermit(s.ctx, id, dto.AuthorizationItem{
		AuthorizationRef:  "PRM-2026-011",
		AuthorizationType: "Water Use",
	})
	s.NoError(err)
	_, err = s.repo.InsertClassificationDetail(s.ctx, id, dto.IUCNItem{
		Classification:     int64Ptr(2),
		SubClassification1: int64Ptr(21),
		SubClassification2: int64Ptr(213),
	})
	s.NoError(err)

	partnerships, err := s.repo.GetPartnerships(s.ctx, id)
	s.NoError(err)
	s.Len(partnerships, 1)
	s.Equal("Local Stewardship Society", partnerships[0].Partnership)

	objectives, err := s.repo.GetObjectives(s.ctx, id)
	s.NoError(err)
	s.Len(objectives, 1)

	species, err := s.repo.GetProjectSpecies(s.ctx, id)
	s.NoError(err)
	s.Len(species, 1)
	s.Equal(int64(180543), species[0].TSN)

	permits, err := s.repo.GetPermits(s.ctx, id)
	s.NoError(err)
	s.Len(permits, 1)
	s.Equal("PRM-2026-011", permits[0].Number)

	details, err := s.repo.GetClassificationDetails(s.ctx, id)
	s.NoError(err)
	s.Len(details, 1)
	s.Equal(int64(213), details[0].SubClassification2)

	s.NoError(s.repo.DeletePartnerships(s.ctx, id))
	s.NoError(s.repo.DeleteObjectives(s.ctx, id))
	s.NoError(s.repo.DeleteProjectSpecies(s.ctx, id))
	s.NoError(s.repo.DeletePermits(s.ctx, id))
	s.NoError(s.repo.DeleteClassificationDetails(s.ctx, id))

	species, err = s.repo.GetProjectSpecies(s.ctx, id)
	s.NoError(err)
	s.Len(species, 0)
}

// ============================================================================
// Transaction boundary
// ============================================================================

func (s *ProjectRepositoryTestSuite) TestWithTransaction_RollsBackOnError() {
	db := testhelpers.NewDBForTest(s.testDB.DB, s.testDB.Logger)
	repo := testhelpers.NewProjectRepositoryForTest(s.testDB.DB, s.testDB.Logger)

	var insertedID int64
	err := db.WithTransaction(s.ctx, func(ctx context.Context) error {
		id, err := repo.InsertProject(ctx, dto.PostProjectData{
			Name:      "Doomed Project",
			IsProject: true,
			StateCode: domain.StatePlanning,
		})
		if err != nil {
			return err
		}
		insertedID = id
		return fmt.Errorf("child write failed")
	})

	s.Error(err)
	s.Greater(insertedID, int64(0))

	_, err = s.repo.GetProjectByID(s.ctx, insertedID)
	s.True(apperrors.IsNotFound(err))
}

func TestProjectRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ProjectRepositoryTestSuite))
}
