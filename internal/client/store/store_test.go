package store

import (
	"testing"

	"github.com/dmitrijs2005/usercatalog/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seed() []models.User {
	return []models.User{
		{ID: "1", Name: "Bob", Email: "b@x.com", Role: models.RoleUser},
		{ID: "2", Name: "amy", Email: "a@x.com", Role: models.RoleAdmin},
		{ID: "3", Name: "Cid", Email: "c@x.com", Role: models.RoleManager},
	}
}

func TestNew_IsIdleAndEmpty(t *testing.T) {
	s := New()
	snap := s.Snapshot()
	assert.Equal(t, Idle, snap.State.Phase)
	assert.NotNil(t, snap.Users)
	assert.Empty(t, snap.Users)
}

func TestRefresh_ReplacesListAndMarksLoaded(t *testing.T) {
	s := New()
	s.BeginLoad()
	assert.Equal(t, Loading, s.State().Phase)

	s.Refresh(seed())
	assert.Equal(t, seed(), s.Users())
	assert.Equal(t, FetchState{Phase: Loaded}, s.State())

	s.Refresh(nil)
	assert.NotNil(t, s.Users())
	assert.Empty(t, s.Users())
}

func TestFail_KeepsCachedList(t *testing.T) {
	s := New()
	s.Refresh(seed())
	s.BeginLoad()
	s.Fail("HTTP 500")

	assert.Equal(t, FetchState{Phase: Errored, Message: "HTTP 500"}, s.State())
	assert.Equal(t, seed(), s.Users())
}

func TestInsertFront_PrependsOnlyOne(t *testing.T) {
	s := New()
	s.Refresh(seed())
	nu := models.User{ID: "9", Name: "Zed", Email: "z@x.com", Role: models.RoleUser}

	s.InsertFront(nu)

	got := s.Users()
	require.Len(t, got, 4)
	assert.Equal(t, nu, got[0])
	assert.Equal(t, seed(), got[1:])
}

func TestReplace_InPlace(t *testing.T) {
	s := New()
	s.Refresh(seed())
	upd := models.User{ID: "2", Name: "Amy", Email: "amy@x.com", Role: models.RoleManager}

	require.NoError(t, s.Replace("2", upd))

	want := seed()
	want[1] = upd
	assert.Equal(t, want, s.Users())
}

func TestReplace_UnknownIDLeavesList(t *testing.T) {
	s := New()
	s.Refresh(seed())
	before := s.Snapshot().Version

	require.ErrorIs(t, s.Replace("42", models.User{ID: "42"}), ErrNotFound)
	assert.Equal(t, seed(), s.Users())
	assert.Equal(t, before, s.Snapshot().Version)
}

func TestRemove_OnlyMatchingID(t *testing.T) {
	s := New()
	s.Refresh(seed())

	require.NoError(t, s.Remove("1"))

	want := seed()[1:]
	assert.Equal(t, want, s.Users())
	require.ErrorIs(t, s.Remove("1"), ErrNotFound)
	assert.Equal(t, want, s.Users())
}

func TestSnapshot_IsNotAffectedByLaterChanges(t *testing.T) {
	s := New()
	s.Refresh(seed())
	snap := s.Snapshot()

	require.NoError(t, s.Replace("1", models.User{ID: "1", Name: "Robert"}))
	require.NoError(t, s.Remove("2"))
	s.InsertFront(models.User{ID: "0"})

	assert.Equal(t, seed(), snap.Users)
	assert.Greater(t, s.Snapshot().Version, snap.Version)
}

func TestFind(t *testing.T) {
	s := New()
	s.Refresh(seed())

	u, ok := s.Find("3")
	require.True(t, ok)
	assert.Equal(t, "Cid", u.Name)

	_, ok = s.Find("x")
	assert.False(t, ok)
}

func TestPhase_String(t *testing.T) {
	assert.Equal(t, "idle", Idle.String())
	assert.Equal(t, "loading", Loading.String())
	assert.Equal(t, "loaded", Loaded.String())
	assert.Equal(t, "errored", Errored.String())
	assert.Equal(t, "unknown", Phase(99).String())
}
