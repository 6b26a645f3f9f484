package stores_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/securevoice/securevoice-core/models"
	"github.com/securevoice/securevoice-core/stores"
)

func TestComplaintStoreInsertKeepsOrder(t *testing.T) {
	s := stores.NewComplaintStore()
	for i := 0; i < 5; i++ {
		s.Insert(models.Complaint{ID: fmt.Sprintf("C%d", i)})
	}

	all := s.All()
	require.Len(t, all, 5)
	for i, c := range all {
		assert.Equal(t, fmt.Sprintf("C%d", i), c.ID)
	}
}

func TestComplaintStoreFindByID(t *testing.T) {
	s := stores.NewComplaintStore()
	s.Insert(models.Complaint{ID: "C1", Subject: "Broken elevator"})

	c, ok := s.FindByID("C1")
	require.True(t, ok)
	assert.Equal(t, "Broken elevator", c.Subject)

	_, ok = s.FindByID("C404")
	assert.False(t, ok)
}

func TestComplaintStoreUpdateKeepsPosition(t *testing.T) {
	s := stores.NewComplaintStore()
	s.Insert(models.Complaint{ID: "C1", Status: models.StatusPending})
	s.Insert(models.Complaint{ID: "C2", Status: models.StatusPending})

	ok := s.Update(models.Complaint{ID: "C1", Status: models.StatusReviewing})
	require.True(t, ok)

	all := s.All()
	assert.Equal(t, "C1", all[0].ID)
	assert.Equal(t, models.StatusReviewing, all[0].Status)

	assert.False(t, s.Update(models.Complaint{ID: "C404"}))
}

func TestComplaintStoreDelete(t *testing.T) {
	s := stores.NewComplaintStore()
	s.Insert(models.Complaint{ID: "C1"})
	s.Insert(models.Complaint{ID: "C2"})

	assert.True(t, s.Delete("C1"))
	assert.False(t, s.Delete("C1"))
	assert.Equal(t, 1, s.Len())

	_, ok := s.FindByID("C1")
	assert.False(t, ok)
}

func TestComplaintStoreAllReturnsSnapshot(t *testing.T) {
	s := stores.NewComplaintStore()
	s.Insert(models.Complaint{ID: "C1", Subject: "original"})

	snapshot := s.All()
	snapshot[0].Subject = "mutated"

	c, _ := s.FindByID("C1")
	assert.Equal(t, "original", c.Subject)
}

func TestUserStoreFindByUsername(t *testing.T) {
	s := stores.NewUserStore()
	s.Insert(models.User{ID: "1", Username: "admin"})

	u, ok := s.FindByUsername("admin")
	require.True(t, ok)
	assert.Equal(t, "1", u.ID)

	_, ok = s.FindByUsername("nobody")
	assert.False(t, ok)
}

func TestAuditTrailRecentMostRecentFirst(t *testing.T) {
	trail := stores.NewAuditTrail()
	for i := 0; i < 5; i++ {
		trail.Append(models.AuditRecord{ID: fmt.Sprintf("r%d", i), Timestamp: time.Now()})
	}

	recent := trail.Recent(3)
	require.Len(t, recent, 3)
	assert.Equal(t, "r4", recent[0].ID)
	assert.Equal(t, "r3", recent[1].ID)
	assert.Equal(t, "r2", recent[2].ID)
}

func TestAuditTrailRecentCapsAtLength(t *testing.T) {
	trail := stores.NewAuditTrail()
	trail.Append(models.AuditRecord{ID: "only"})

	recent := trail.Recent(50)
	require.Len(t, recent, 1)
	assert.Equal(t, 1, trail.Len())
}

func TestDraftSlotLastSaveWins(t *testing.T) {
	slot := stores.NewDraftSlot()
	assert.False(t, slot.HasDraft())

	slot.Save(models.Draft{Step: 2})
	slot.Save(models.Draft{Step: 3})

	d, ok := slot.Load()
	require.True(t, ok)
	assert.Equal(t, 3, d.Step)
}

func TestDraftSlotClear(t *testing.T) {
	slot := stores.NewDraftSlot()
	slot.Save(models.Draft{Step: 2})
	slot.Clear()

	assert.False(t, slot.HasDraft())
	_, ok := slot.Load()
	assert.False(t, ok)
}
