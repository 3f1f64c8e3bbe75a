package integration

import (
	"context"
	"testing"

	"voter-registry-be/internal/dto"
	"voter-registry-be/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

// relationshipsFor flattens a connection listing into target-id keyed labels.
func relationshipsFor(res []*dto.FamilyConnectionResponse) map[uint]string {
	out := make(map[uint]string, len(res))
	for _, link := range res {
		out[link.Target.Id] = link.Relationship
	}
	return out
}

func TestFamilyTreeScenario(t *testing.T) {
	_, uowFactory := setupServices(t)

	sysLogger := testLogger(t)
	// Both services share one cache set, exactly as wired in the container.
	caches := service.NewCaches()
	registryService := service.NewRegistryService(uowFactory, sysLogger, caches)
	familyService := service.NewFamilyService(uowFactory, sysLogger, caches)
	ctx := context.Background()

	batchName := "Family Batch " + uuid.New().String()

	karim, err := registryService.CreateRecord(ctx, &dto.CreateRecordRequest{
		BatchName: batchName,
		RecordFields: dto.RecordFields{
			Name:    "Abdul Karim",
			VoterNo: "ft-karim-" + uuid.New().String(),
			Gender:  "Male",
		},
	})
	assert.NoError(t, err)

	rahim, err := registryService.CreateRecord(ctx, &dto.CreateRecordRequest{
		BatchName: batchName,
		RecordFields: dto.RecordFields{
			Name:    "Rahim Uddin",
			VoterNo: "ft-rahim-" + uuid.New().String(),
			Gender:  "Male",
		},
	})
	assert.NoError(t, err)

	// Quick-added members land in the shared "Family Tree Additions" batch,
	// so they are removed record by record; the fixture batch goes wholesale.
	var memberIDs []uint
	t.Cleanup(func() {
		uow := uowFactory.NewUnitOfWork(ctx)
		for _, id := range memberIDs {
			_ = uow.RecordRepository().Delete(ctx, id)
		}
		_ = uow.BatchRepository().Delete(ctx, karim.BatchId)
	})

	connectionsOf := func(t *testing.T, id uint) map[uint]string {
		res, err := familyService.Connections(ctx, id)
		assert.NoError(t, err)
		return relationshipsFor(res)
	}

	t.Run("Linking Writes Both Directions", func(t *testing.T) {
		// Karim is Rahim's father: recorded from Rahim's point of view.
		res, err := familyService.AddExistingMember(ctx, &dto.AddExistingMemberRequest{
			SourceRecordId: rahim.Id,
			TargetRecordId: karim.Id,
			Relationship:   "Father",
		})
		assert.NoError(t, err)
		assert.Equal(t, "Father", res.Forward)
		assert.Equal(t, "Child", res.Reverse)

		assert.Equal(t, "Father", connectionsOf(t, rahim.Id)[karim.Id])
		assert.Equal(t, "Child", connectionsOf(t, karim.Id)[rahim.Id])
	})

	t.Run("Relinking The Same Pair Is Idempotent", func(t *testing.T) {
		uow := uowFactory.NewUnitOfWork(ctx)
		before, err := uow.FamilyConnectionRepository().Count(ctx)
		assert.NoError(t, err)

		_, err = familyService.AddExistingMember(ctx, &dto.AddExistingMemberRequest{
			SourceRecordId: rahim.Id,
			TargetRecordId: karim.Id,
			Relationship:   "Father",
		})
		assert.NoError(t, err)

		after, err := uow.FamilyConnectionRepository().Count(ctx)
		assert.NoError(t, err)
		assert.Equal(t, before, after)
	})

	t.Run("Self Link Is Rejected", func(t *testing.T) {
		_, err := familyService.AddExistingMember(ctx, &dto.AddExistingMemberRequest{
			SourceRecordId: karim.Id,
			TargetRecordId: karim.Id,
			Relationship:   "Brother",
		})
		assert.Error(t, err)
	})

	t.Run("Quick Add Creates Record And Both Edges", func(t *testing.T) {
		res, err := familyService.AddNewMember(ctx, &dto.AddNewMemberRequest{
			SourceRecordId: karim.Id,
			Name:           "Fatema Begum " + uuid.New().String(),
			Gender:         "Female",
			Relationship:   "Wife",
		})
		assert.NoError(t, err)
		assert.NotZero(t, res.TargetRecordId)
		assert.Equal(t, "Wife", res.Forward)
		assert.Equal(t, "Husband", res.Reverse)
		memberIDs = append(memberIDs, res.TargetRecordId)

		member, err := registryService.GetRecordByID(ctx, res.TargetRecordId)
		assert.NoError(t, err)
		assert.Equal(t, "Family Tree Additions", member.BatchName)
		assert.Equal(t, "family_tree_manual", member.FileName)

		assert.Equal(t, "Wife", connectionsOf(t, karim.Id)[res.TargetRecordId])
		assert.Equal(t, "Husband", connectionsOf(t, res.TargetRecordId)[karim.Id])
	})

	t.Run("Unknown Label Falls Back On The Reverse Side", func(t *testing.T) {
		res, err := familyService.AddNewMember(ctx, &dto.AddNewMemberRequest{
			SourceRecordId: karim.Id,
			Name:           "Named Neighbour " + uuid.New().String(),
			Relationship:   "Neighbour",
		})
		assert.NoError(t, err)
		assert.Equal(t, "Neighbour", res.Forward)
		assert.Equal(t, "Related Person", res.Reverse)
		memberIDs = append(memberIDs, res.TargetRecordId)
	})

	t.Run("Removing Deletes Both Directions", func(t *testing.T) {
		err := familyService.RemoveConnection(ctx, &dto.RemoveConnectionRequest{
			SourceRecordId: rahim.Id,
			TargetRecordId: karim.Id,
			Relationship:   "Father",
		})
		assert.NoError(t, err)

		assert.NotContains(t, connectionsOf(t, rahim.Id), karim.Id)
		assert.NotContains(t, connectionsOf(t, karim.Id), rahim.Id)

		// Removing again is a no-op, not an error.
		err = familyService.RemoveConnection(ctx, &dto.RemoveConnectionRequest{
			SourceRecordId: rahim.Id,
			TargetRecordId: karim.Id,
			Relationship:   "Father",
		})
		assert.NoError(t, err)
	})

	t.Run("Deleting A Record Cascades Its Edges", func(t *testing.T) {
		res, err := familyService.AddNewMember(ctx, &dto.AddNewMemberRequest{
			SourceRecordId: karim.Id,
			Name:           "Cascade Target " + uuid.New().String(),
			Relationship:   "Brother",
		})
		assert.NoError(t, err)

		uow := uowFactory.NewUnitOfWork(ctx)
		err = uow.RecordRepository().Delete(ctx, res.TargetRecordId)
		assert.NoError(t, err)

		// Cache was primed above, bypass it by asking the repository.
		links, err := uow.FamilyConnectionRepository().ListForRecord(ctx, karim.Id)
		assert.NoError(t, err)
		for _, link := range links {
			assert.NotEqual(t, res.TargetRecordId, link.Target.Id)
		}
	})

	t.Run("Quick Add Shows Up In Searches", func(t *testing.T) {
		marker := "Cachemark " + uuid.New().String()

		// Prime the search cache with an empty result for the marker.
		before, err := registryService.SearchRecords(ctx, &dto.SearchRecordsRequest{Name: marker})
		assert.NoError(t, err)
		assert.Empty(t, before)

		res, err := familyService.AddNewMember(ctx, &dto.AddNewMemberRequest{
			SourceRecordId: karim.Id,
			Name:           marker,
			Relationship:   "Brother",
		})
		assert.NoError(t, err)
		memberIDs = append(memberIDs, res.TargetRecordId)

		after, err := registryService.SearchRecords(ctx, &dto.SearchRecordsRequest{Name: marker})
		assert.NoError(t, err)
		assert.Len(t, after, 1)
		assert.Equal(t, res.TargetRecordId, after[0].Id)
	})

	t.Run("Record Update Refreshes Connection Listings", func(t *testing.T) {
		added, err := familyService.AddNewMember(ctx, &dto.AddNewMemberRequest{
			SourceRecordId: karim.Id,
			Name:           "Before Rename " + uuid.New().String(),
			Relationship:   "Sister",
		})
		assert.NoError(t, err)
		memberIDs = append(memberIDs, added.TargetRecordId)

		// Prime the connections cache before renaming.
		assert.Equal(t, "Sister", connectionsOf(t, karim.Id)[added.TargetRecordId])

		renamed := "After Rename " + uuid.New().String()
		_, err = registryService.UpdateRecord(ctx, &dto.UpdateRecordRequest{
			Id:           added.TargetRecordId,
			RecordFields: dto.RecordFields{Name: renamed},
		})
		assert.NoError(t, err)

		links, err := familyService.Connections(ctx, karim.Id)
		assert.NoError(t, err)
		var found bool
		for _, link := range links {
			if link.Target.Id == added.TargetRecordId {
				found = true
				assert.Equal(t, renamed, link.Target.Name)
			}
		}
		assert.True(t, found)
	})
}
