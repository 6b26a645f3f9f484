package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/securevoice/securevoice-core/auth"
	"github.com/securevoice/securevoice-core/complaints"
	"github.com/securevoice/securevoice-core/notify"
	"github.com/securevoice/securevoice-core/stores"
	"github.com/securevoice/securevoice-core/wizard"
)

func runConsole(t *testing.T, input string) (string, stores.ComplaintStore) {
	t.Helper()
	store := stores.NewComplaintStore()
	users := stores.NewUserStore()
	trail := stores.NewAuditTrail()
	auth.SeedUsers(users)
	session := auth.NewSession(users, trail)
	notifier := notify.NewMemoryNotifier()
	wiz := wizard.New(store, stores.NewDraftSlot(), notifier)
	svc := complaints.NewService(store, session, notifier)

	var out bytes.Buffer
	newConsole(strings.NewReader(input), &out, session, wiz, svc).run()
	return out.String(), store
}

func TestConsoleQuickSubmit(t *testing.T) {
	input := strings.Join([]string{
		"quicksubmit",
		"safety",
		"high",
		"Broken elevator",
		strings.Repeat("x", 25),
		"", // location
		"", // email
		"quit",
	}, "\n")

	out, store := runConsole(t, input)

	assert.Contains(t, out, "Complaint submitted successfully")
	require.Equal(t, 1, store.Len())
	c := store.All()[0]
	assert.Equal(t, "Broken elevator", c.Subject)
}

func TestConsoleQuickSubmitShowsValidationErrors(t *testing.T) {
	input := strings.Join([]string{
		"quicksubmit",
		"", // category
		"",
		"Hi",    // subject too short
		"short", // description too short
		"",
		"",
		"quit",
	}, "\n")

	out, store := runConsole(t, input)

	assert.Contains(t, out, "Please fix the errors")
	assert.Equal(t, 0, store.Len())
}

func TestConsoleStatsListsEveryStatus(t *testing.T) {
	input := strings.Join([]string{
		"login moderator mod123",
		"stats",
		"quit",
	}, "\n")

	out, _ := runConsole(t, input)

	assert.Contains(t, out, "pending: 0")
	assert.Contains(t, out, "reviewing: 0")
	assert.Contains(t, out, "resolved: 0")
}
