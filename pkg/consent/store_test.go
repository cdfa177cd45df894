package consent

import (
	"context"
	"encoding/json"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blizbi/blizbi/pkg/consent/mocks"
	"github.com/blizbi/blizbi/pkg/domain"
	"github.com/blizbi/blizbi/pkg/storage"
)

var fixedNow = time.Date(2025, 5, 17, 10, 30, 0, 0, time.UTC)

type testEnv struct {
	durable *storage.Memory
	session *storage.Memory
	remote  *mocks.RemoteMock
	eraser  *mocks.EraserMock
	user    *domain.User
	store   *Store
}

// newTestEnv makes a store over in-memory storage with a remote keeping one record
func newTestEnv(t *testing.T, signedIn bool) *testEnv {
	t.Helper()
	env := &testEnv{durable: storage.NewMemory(), session: storage.NewMemory()}
	if signedIn {
		env.user = &domain.User{ID: "user_1", Name: "Kari"}
	}

	var stored *domain.ConsentRecord
	env.remote = &mocks.RemoteMock{
		GetConsentFunc: func(context.Context) (*domain.ConsentRecord, error) { return stored, nil },
		UpsertConsentFunc: func(_ context.Context, rec domain.ConsentRecord) error {
			stored = &rec
			return nil
		},
		DeleteConsentFunc: func(context.Context) error {
			stored = nil
			return nil
		},
	}
	env.eraser = &mocks.EraserMock{DeleteUserDataFunc: func(context.Context, string) error { return nil }}

	env.store = New(Params{
		Durable:  env.durable,
		Session:  env.session,
		Remote:   env.remote,
		Eraser:   env.eraser,
		Identity: &mocks.IdentityMock{UserFunc: func() *domain.User { return env.user }},
		Now:      func() time.Time { return fixedNow },
	})
	return env
}

func (e *testEnv) localState(t *testing.T) *domain.ConsentState {
	t.Helper()
	raw, ok, err := e.durable.Get(context.Background(), domain.ConsentStorageKey)
	require.NoError(t, err)
	if !ok {
		return nil
	}
	var st domain.ConsentState
	require.NoError(t, json.Unmarshal([]byte(raw), &st))
	return &st
}

func boolPtr(v bool) *bool { return &v }

func TestStore_EssentialAlwaysGranted(t *testing.T) {
	env := newTestEnv(t, false)
	ctx := context.Background()

	updates := []domain.PartialPreferences{
		{},
		{Essential: boolPtr(false)},
		{Essential: boolPtr(false), Functional: boolPtr(true)},
		{Analytics: boolPtr(true), Personalization: boolPtr(false)},
	}
	for _, upd := range updates {
		st := env.store.UpdateConsent(ctx, upd)
		assert.True(t, st.Preferences.Essential)
		assert.True(t, env.localState(t).Preferences.Essential)
	}
	assert.True(t, env.store.AcceptAll(ctx).Preferences.Essential)
	assert.True(t, env.store.RejectAll(ctx).Preferences.Essential)
	assert.True(t, env.store.HasConsent(domain.CategoryEssential))
}

func TestStore_FailClosed(t *testing.T) {
	env := newTestEnv(t, false)

	assert.True(t, env.store.IsConsentRequired())
	assert.Nil(t, env.store.State())
	for _, c := range domain.OptionalCategories {
		assert.False(t, env.store.HasConsent(c), "category %s", c)
	}
	assert.True(t, env.store.HasConsent(domain.CategoryEssential))

	// not responded state still refuses everything optional
	env.store.setState(&domain.ConsentState{HasResponded: false, Preferences: domain.AllGranted(), Version: domain.ConsentVersion})
	assert.True(t, env.store.IsConsentRequired())
	for _, c := range domain.OptionalCategories {
		assert.False(t, env.store.HasConsent(c), "category %s", c)
	}
}

func TestStore_AcceptAllFromAbsent(t *testing.T) {
	env := newTestEnv(t, false)
	ctx := context.Background()

	st := env.store.AcceptAll(ctx)
	assert.True(t, st.HasResponded)
	assert.Equal(t, domain.AllGranted(), st.Preferences)
	assert.Equal(t, domain.ConsentVersion, st.Version)
	assert.Equal(t, "2025-05-17T10:30:00Z", st.Timestamp)

	assert.True(t, env.store.HasConsent(domain.CategoryPersonalization))
	assert.False(t, env.store.IsConsentRequired())

	local := env.localState(t)
	require.NotNil(t, local)
	assert.True(t, local.HasResponded)
	assert.Equal(t, domain.AllGranted(), local.Preferences)

	assert.Empty(t, env.remote.UpsertConsentCalls(), "anonymous user keeps consent locally only")
}

func TestStore_UpdateConsent(t *testing.T) {
	env := newTestEnv(t, true)
	ctx := context.Background()

	st := env.store.UpdateConsent(ctx, domain.PartialPreferences{Functional: boolPtr(true)})
	assert.Equal(t, domain.ConsentPreferences{Essential: true, Functional: true}, st.Preferences)

	st = env.store.UpdateConsent(ctx, domain.PartialPreferences{Analytics: boolPtr(true)})
	assert.Equal(t, domain.ConsentPreferences{Essential: true, Functional: true, Analytics: true}, st.Preferences,
		"merged onto the previous decision")

	st = env.store.RejectAll(ctx)
	assert.Equal(t, domain.DefaultPreferences(), st.Preferences)
	assert.True(t, st.HasResponded)

	calls := env.remote.UpsertConsentCalls()
	require.Len(t, calls, 3)
	assert.Equal(t, "user_1", calls[2].Rec.UserID)
	assert.Equal(t, domain.ConsentVersion, calls[2].Rec.Version)
	assert.Equal(t, domain.DefaultPreferences(), calls[2].Rec.Preferences)
	assert.True(t, fixedNow.Equal(calls[2].Rec.UpdatedAt))
}

func TestStore_RemoteFailureKeepsLocal(t *testing.T) {
	env := newTestEnv(t, true)
	env.remote.UpsertConsentFunc = func(context.Context, domain.ConsentRecord) error { return errors.New("network down") }

	st := env.store.AcceptAll(context.Background())
	assert.True(t, st.HasResponded)
	assert.True(t, env.store.HasConsent(domain.CategoryAnalytics))
	require.NotNil(t, env.localState(t))
	assert.Len(t, env.remote.UpsertConsentCalls(), 1)
}

func TestStore_Load(t *testing.T) {
	localState := func(version string, prefs domain.ConsentPreferences) string {
		data, err := json.Marshal(domain.ConsentState{HasResponded: true, Preferences: prefs,
			Timestamp: "2025-01-01T00:00:00Z", Version: version})
		require.NoError(t, err)
		return string(data)
	}
	functionalOnly := domain.ConsentPreferences{Essential: true, Functional: true}

	tests := []struct {
		name      string
		signedIn  bool
		local     string
		remote    *domain.ConsentRecord
		remoteErr error
		want      *domain.ConsentPreferences
	}{
		{name: "nothing stored", want: nil},
		{name: "local current", local: localState(domain.ConsentVersion, functionalOnly), want: &functionalOnly},
		{name: "local outdated", local: localState("0.9.0", functionalOnly), want: nil},
		{name: "local broken", local: "{not json", want: nil},
		{name: "remote wins", signedIn: true, local: localState(domain.ConsentVersion, functionalOnly),
			remote: &domain.ConsentRecord{Preferences: domain.AllGranted(), Version: domain.ConsentVersion, UpdatedAt: fixedNow},
			want:   func() *domain.ConsentPreferences { p := domain.AllGranted(); return &p }()},
		{name: "remote outdated falls back to local", signedIn: true, local: localState(domain.ConsentVersion, functionalOnly),
			remote: &domain.ConsentRecord{Preferences: domain.AllGranted(), Version: "0.9.0"}, want: &functionalOnly},
		{name: "remote failure falls back to local", signedIn: true, local: localState(domain.ConsentVersion, functionalOnly),
			remoteErr: errors.New("timeout"), want: &functionalOnly},
		{name: "remote failure and no local", signedIn: true, remoteErr: errors.New("timeout"), want: nil},
		{name: "remote ignored when signed out", remote: &domain.ConsentRecord{Preferences: domain.AllGranted(),
			Version: domain.ConsentVersion}, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t, tt.signedIn)
			ctx := context.Background()
			if tt.local != "" {
				require.NoError(t, env.durable.Set(ctx, domain.ConsentStorageKey, tt.local))
			}
			env.remote.GetConsentFunc = func(context.Context) (*domain.ConsentRecord, error) { return tt.remote, tt.remoteErr }

			env.store.Load(ctx)

			st := env.store.State()
			if tt.want == nil {
				assert.Nil(t, st)
				assert.True(t, env.store.IsConsentRequired())
				return
			}
			require.NotNil(t, st)
			assert.True(t, st.HasResponded)
			assert.Equal(t, *tt.want, st.Preferences)
			if tt.signedIn {
				assert.Len(t, env.remote.GetConsentCalls(), 1)
			}
		})
	}
}

func TestStore_LoadRemoteTimestamp(t *testing.T) {
	env := newTestEnv(t, true)
	env.remote.GetConsentFunc = func(context.Context) (*domain.ConsentRecord, error) {
		return &domain.ConsentRecord{UserID: "user_1", Preferences: domain.AllGranted(), Version: domain.ConsentVersion,
			UpdatedAt: time.Date(2025, 2, 3, 4, 5, 6, 0, time.UTC)}, nil
	}
	env.store.Load(context.Background())
	require.NotNil(t, env.store.State())
	assert.Equal(t, "2025-02-03T04:05:06Z", env.store.State().Timestamp)
}

func TestStore_ResetConsent(t *testing.T) {
	env := newTestEnv(t, true)
	ctx := context.Background()

	env.store.AcceptAll(ctx)
	env.store.Functional().SetItem(KeyLanguage, "en")
	env.store.Analytics().SetItem(KeyUsageStats, "42")
	env.store.Essential().SetItem("session_token", "t")

	env.store.ResetConsent(ctx)

	assert.Nil(t, env.store.State())
	assert.True(t, env.store.IsConsentRequired())
	assert.Nil(t, env.localState(t))
	assert.Len(t, env.remote.DeleteConsentCalls(), 1)

	_, ok := env.store.Functional().GetItem(KeyLanguage)
	assert.False(t, ok)
	for _, key := range []string{KeyLanguage, KeyUsageStats} {
		_, ok, err := env.durable.Get(ctx, key)
		require.NoError(t, err)
		assert.False(t, ok, "key %s", key)
	}
	v, ok := env.store.Essential().GetItem("session_token")
	assert.True(t, ok, "essential data survives withdrawal")
	assert.Equal(t, "t", v)
}

func TestStore_ResetConsentRemoteFailure(t *testing.T) {
	env := newTestEnv(t, true)
	ctx := context.Background()
	env.remote.DeleteConsentFunc = func(context.Context) error { return errors.New("network down") }

	env.store.AcceptAll(ctx)
	env.store.ResetConsent(ctx)
	assert.Nil(t, env.store.State())
	assert.Nil(t, env.localState(t))
}

func TestStore_ResetConsentSignedOut(t *testing.T) {
	env := newTestEnv(t, false)
	env.store.AcceptAll(context.Background())
	env.store.ResetConsent(context.Background())
	assert.Empty(t, env.remote.DeleteConsentCalls())
}

func TestStore_RequestDataDeletion(t *testing.T) {
	t.Run("signed out", func(t *testing.T) {
		env := newTestEnv(t, false)
		res := env.store.RequestDataDeletion(context.Background())
		assert.False(t, res.Success)
		assert.Equal(t, "Must be signed in to request data deletion", res.Message)
		assert.Empty(t, env.eraser.DeleteUserDataCalls())
	})

	t.Run("all deleted", func(t *testing.T) {
		env := newTestEnv(t, true)
		ctx := context.Background()
		env.store.AcceptAll(ctx)
		env.store.Personalization().SetItem(KeyChatHistory, "[]")

		res := env.store.RequestDataDeletion(ctx)
		assert.True(t, res.Success)
		assert.Equal(t, "All your data has been successfully deleted.", res.Message)

		var collections []string
		for _, c := range env.eraser.DeleteUserDataCalls() {
			collections = append(collections, c.Collection)
		}
		assert.ElementsMatch(t, domain.UserCollections, collections)

		assert.Nil(t, env.store.State())
		assert.Nil(t, env.localState(t))
		_, ok, err := env.durable.Get(ctx, KeyChatHistory)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("partial failure attempts everything", func(t *testing.T) {
		env := newTestEnv(t, true)
		ctx := context.Background()
		env.store.AcceptAll(ctx)
		env.store.Functional().SetItem(KeyLanguage, "en")

		var attempted atomic.Int32
		env.eraser.DeleteUserDataFunc = func(_ context.Context, collection string) error {
			attempted.Add(1)
			if collection == domain.CollectionBookmarks {
				return errors.New("permission denied")
			}
			return nil
		}

		res := env.store.RequestDataDeletion(ctx)
		assert.False(t, res.Success)
		assert.Equal(t, "Some data could not be deleted. Please contact support.", res.Message)
		assert.Equal(t, int32(len(domain.UserCollections)), attempted.Load())

		// nothing cleaned locally on failure
		require.NotNil(t, env.store.State())
		v, ok := env.store.Functional().GetItem(KeyLanguage)
		assert.True(t, ok)
		assert.Equal(t, "en", v)
	})

	t.Run("no eraser", func(t *testing.T) {
		env := newTestEnv(t, true)
		env.store.eraser = nil
		res := env.store.RequestDataDeletion(context.Background())
		assert.False(t, res.Success)
	})
}

func TestStore_OnChange(t *testing.T) {
	env := newTestEnv(t, false)
	ctx := context.Background()

	var got []*domain.ConsentState
	env.store.OnChange(func(st *domain.ConsentState) { got = append(got, st) })

	env.store.Load(ctx)
	env.store.AcceptAll(ctx)
	env.store.ResetConsent(ctx)

	require.Len(t, got, 3)
	assert.Nil(t, got[0])
	require.NotNil(t, got[1])
	assert.True(t, got[1].HasResponded)
	assert.Nil(t, got[2])

	// listeners get copies
	env.store.AcceptAll(ctx)
	got[3].Preferences.Analytics = false
	assert.True(t, env.store.HasConsent(domain.CategoryAnalytics))
}

func TestNew_RequiresStorage(t *testing.T) {
	assert.Panics(t, func() { New(Params{Durable: storage.NewMemory()}) })
}
