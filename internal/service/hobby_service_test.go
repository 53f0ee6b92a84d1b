package service

import (
	"testing"

	"community-system/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedHobbyCatalog(t *testing.T, env *testEnv, names ...string) {
	t.Helper()
	for _, name := range names {
		require.NoError(t, env.db.Create(&model.Hobby{Name: name}).Error)
	}
}

func TestAddHobby(t *testing.T) {
	env := newTestEnv(t)
	seedHobbyCatalog(t, env, "Gardening", "Cooking")
	alice := env.createProfile(t, "alice", "91234567", 0)

	require.NoError(t, env.hobbies.Add(alice.ID, "Gardening"))
	// 首尾空白不影响匹配
	require.NoError(t, env.hobbies.Add(alice.ID, "  Cooking "))

	names, err := env.hobbies.MyHobbies(alice.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Gardening", "Cooking"}, names)
}

func TestAddHobbyDuplicate(t *testing.T) {
	env := newTestEnv(t)
	seedHobbyCatalog(t, env, "Gardening")
	alice := env.createProfile(t, "alice", "91234567", 0)

	require.NoError(t, env.hobbies.Add(alice.ID, "Gardening"))
	assert.ErrorIs(t, env.hobbies.Add(alice.ID, "Gardening"), ErrHobbyExists)
}

func TestAddHobbyNotInCatalog(t *testing.T) {
	env := newTestEnv(t)
	alice := env.createProfile(t, "alice", "91234567", 0)

	assert.ErrorIs(t, env.hobbies.Add(alice.ID, "Skydiving"), ErrHobbyNotFound)
}

func TestRemoveHobby(t *testing.T) {
	env := newTestEnv(t)
	seedHobbyCatalog(t, env, "Gardening")
	alice := env.createProfile(t, "alice", "91234567", 0)

	require.NoError(t, env.hobbies.Add(alice.ID, "Gardening"))
	require.NoError(t, env.hobbies.Remove(alice.ID, "Gardening"))

	names, err := env.hobbies.MyHobbies(alice.ID)
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestHobbyMatches(t *testing.T) {
	env := newTestEnv(t)
	seedHobbyCatalog(t, env, "Gardening", "Cooking", "Badminton")
	alice := env.createProfile(t, "alice", "91234567", 0)
	bob := env.createProfile(t, "bob", "98765432", 0)
	carol := env.createProfile(t, "carol", "90001111", 0)
	dave := env.createProfile(t, "dave", "90002222", 0)

	require.NoError(t, env.hobbies.Add(alice.ID, "Gardening"))
	require.NoError(t, env.hobbies.Add(alice.ID, "Cooking"))

	// bob 重合两项，carol 重合一项，dave 无重合
	require.NoError(t, env.hobbies.Add(bob.ID, "Gardening"))
	require.NoError(t, env.hobbies.Add(bob.ID, "Cooking"))
	require.NoError(t, env.hobbies.Add(carol.ID, "Cooking"))
	require.NoError(t, env.hobbies.Add(dave.ID, "Badminton"))

	matches, err := env.hobbies.Matches(alice.ID)
	require.NoError(t, err)
	require.Len(t, matches, 2)

	// 重合多的排前，且不包含本人
	assert.Equal(t, bob.ID, matches[0].Profile.ID)
	assert.ElementsMatch(t, []string{"Gardening", "Cooking"}, matches[0].SharedHobbies)
	assert.Equal(t, carol.ID, matches[1].Profile.ID)
	assert.Equal(t, []string{"Cooking"}, matches[1].SharedHobbies)
}

func TestHobbyMatchesWithoutHobbies(t *testing.T) {
	env := newTestEnv(t)
	alice := env.createProfile(t, "alice", "91234567", 0)

	matches, err := env.hobbies.Matches(alice.ID)
	require.NoError(t, err)
	assert.Empty(t, matches)
}
