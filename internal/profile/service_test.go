package profile_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"lg/fitcalc-api/internal/profile"
)

// memStore is an in-memory profile.Store. failGet/failPut/failDelete make
// the matching call return errStore.
type memStore struct {
	data       map[string][]byte
	failGet    bool
	failPut    bool
	failDelete bool
}

var errStore = errors.New("store unavailable")

func newMemStore() *memStore {
	return &memStore{data: map[string][]byte{}}
}

func (m *memStore) Get(_ context.Context, key string) ([]byte, error) {
	if m.failGet {
		return nil, errStore
	}
	v, ok := m.data[key]
	if !ok {
		return nil, profile.ErrNotFound
	}
	return v, nil
}

func (m *memStore) Put(_ context.Context, key string, value []byte) error {
	if m.failPut {
		return errStore
	}
	m.data[key] = value
	return nil
}

func (m *memStore) Delete(_ context.Context, key string) error {
	if m.failDelete {
		return errStore
	}
	delete(m.data, key)
	return nil
}

func testProfile() profile.Profile {
	return profile.Profile{
		Name:              "Asha",
		Age:               34,
		Weight:            62.5,
		Height:            168,
		Gender:            profile.Female,
		ActivityLevel:     profile.Active,
		FitnessGoal:       profile.GainMuscle,
		Steps:             10000,
		PlanDuration:      60,
		DietaryPreference: profile.Indian,
		Allergies:         []string{"peanuts", "shellfish"},
		MealCount:         4,
	}
}

func TestService_LoadEmpty(t *testing.T) {
	svc := profile.NewService(newMemStore())
	if _, ok := svc.Load(t.Context()); ok {
		t.Fatal("Load on empty store: ok=true, want false")
	}
	if _, ok := svc.Profile(); ok {
		t.Fatal("Profile after empty Load: ok=true, want false")
	}
}

// TestService_SaveThenGet verifies the snapshot is updated without another
// read from the store.
func TestService_SaveThenGet(t *testing.T) {
	store := newMemStore()
	svc := profile.NewService(store)
	want := testProfile()

	if err := svc.Save(t.Context(), want); err != nil {
		t.Fatalf("Save: %v", err)
	}
	store.failGet = true

	got, ok := svc.Profile()
	if !ok {
		t.Fatal("Profile after Save: ok=false")
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("profile mismatch (-want +got):\n%s", diff)
	}
}

// TestService_ReloadFromStore simulates a restart: a new service over the
// same store sees the saved profile.
func TestService_ReloadFromStore(t *testing.T) {
	store := newMemStore()
	want := testProfile()
	if err := profile.NewService(store).Save(t.Context(), want); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, ok := profile.NewService(store).Load(t.Context())
	if !ok {
		t.Fatal("Load after restart: ok=false")
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("profile mismatch (-want +got):\n%s", diff)
	}
}

func TestService_SaveReplacesWholeProfile(t *testing.T) {
	svc := profile.NewService(newMemStore())
	first := testProfile()
	if err := svc.Save(t.Context(), first); err != nil {
		t.Fatalf("Save: %v", err)
	}
	second := profile.Profile{Name: "Ben", Age: 50, Weight: 90, Height: 180, Gender: profile.Male}
	if err := svc.Save(t.Context(), second); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, _ := svc.Load(t.Context())
	if diff := cmp.Diff(second, got); diff != "" {
		t.Errorf("profile mismatch (-want +got):\n%s", diff)
	}
}

func TestService_Clear(t *testing.T) {
	store := newMemStore()
	svc := profile.NewService(store)
	if err := svc.Save(t.Context(), testProfile()); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := svc.Clear(t.Context()); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if _, ok := svc.Profile(); ok {
		t.Error("Profile after Clear: ok=true")
	}
	if _, ok := svc.Load(t.Context()); ok {
		t.Error("Load after Clear: ok=true")
	}
	// Clearing twice is fine.
	if err := svc.Clear(t.Context()); err != nil {
		t.Errorf("second Clear: %v", err)
	}
}

// TestService_MalformedIsAbsent verifies bad stored values never surface as
// errors or zero-valued profiles.
func TestService_MalformedIsAbsent(t *testing.T) {
	cases := map[string]string{
		"not json":     "{name: oops",
		"null":         "null",
		"empty":        "",
		"wrong shape":  `[1, 2, 3]`,
		"wrong type":   `{"name": "A", "age": "thirty"}`,
		"empty object": `{}`,
		"unrelated":    `{"unrelated": true}`,
		"other app":    `{"theme":"dark"}`,
		"no height":    `{"name":"A","age":30,"weight":70}`,
		"null weight":  `{"name":"A","age":30,"weight":null,"height":175}`,
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			store := newMemStore()
			store.data[profile.Key] = []byte(raw)
			svc := profile.NewService(store)
			if p, ok := svc.Load(t.Context()); ok {
				t.Errorf("Load(%q) = %+v, ok=true; want absent", raw, p)
			}
		})
	}
}

// TestService_MinimalObjectLoads verifies a value carrying only the required
// keys still loads; other fields fall back to their zero values.
func TestService_MinimalObjectLoads(t *testing.T) {
	store := newMemStore()
	store.data[profile.Key] = []byte(`{"name":"A","age":30,"weight":70,"height":175}`)
	p, ok := profile.NewService(store).Load(t.Context())
	if !ok {
		t.Fatal("Load: ok=false, want true")
	}
	if p.Name != "A" || p.Age != 30 || p.Weight != 70 || p.Height != 175 {
		t.Errorf("Load = %+v", p)
	}
}

func TestService_UnavailableStoreIsAbsent(t *testing.T) {
	store := newMemStore()
	store.failGet = true
	if _, ok := profile.NewService(store).Load(t.Context()); ok {
		t.Error("Load with failing store: ok=true, want false")
	}
}

// TestService_FailedSaveKeepsSnapshot verifies a rejected write leaves the
// previous profile in place.
func TestService_FailedSaveKeepsSnapshot(t *testing.T) {
	store := newMemStore()
	svc := profile.NewService(store)
	want := testProfile()
	if err := svc.Save(t.Context(), want); err != nil {
		t.Fatalf("Save: %v", err)
	}

	store.failPut = true
	next := testProfile()
	next.Name = "Someone Else"
	if err := svc.Save(t.Context(), next); !errors.Is(err, errStore) {
		t.Fatalf("Save error = %v, want wrapped errStore", err)
	}

	got, _ := svc.Profile()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("snapshot changed after failed save (-want +got):\n%s", diff)
	}
}

func TestService_FailedClear(t *testing.T) {
	store := newMemStore()
	svc := profile.NewService(store)
	if err := svc.Save(t.Context(), testProfile()); err != nil {
		t.Fatalf("Save: %v", err)
	}
	store.failDelete = true
	if err := svc.Clear(t.Context()); !errors.Is(err, errStore) {
		t.Fatalf("Clear error = %v, want wrapped errStore", err)
	}
	if _, ok := svc.Profile(); !ok {
		t.Error("snapshot dropped after failed clear")
	}
}

// TestService_SnapshotIsolated verifies callers cannot mutate the stored
// snapshot through slices they passed in or got back.
func TestService_SnapshotIsolated(t *testing.T) {
	svc := profile.NewService(newMemStore())
	p := testProfile()
	if err := svc.Save(t.Context(), p); err != nil {
		t.Fatalf("Save: %v", err)
	}
	p.Allergies[0] = "changed"

	got, _ := svc.Profile()
	got.Allergies[1] = "changed too"

	again, _ := svc.Profile()
	if diff := cmp.Diff([]string{"peanuts", "shellfish"}, again.Allergies); diff != "" {
		t.Errorf("allergies mutated (-want +got):\n%s", diff)
	}
}

func TestService_StoredLayout(t *testing.T) {
	store := newMemStore()
	p := profile.Profile{
		Name: "A", Age: 1, Weight: 2, Height: 3,
		Gender: profile.Other, ActivityLevel: profile.VeryActive, FitnessGoal: profile.LoseWeight,
		Steps: 4, PlanDuration: 5, DietaryPreference: profile.NonVegetarian,
		Allergies: []string{"gluten"}, MealCount: 6,
	}
	if err := profile.NewService(store).Save(t.Context(), p); err != nil {
		t.Fatalf("Save: %v", err)
	}
	want := `{"name":"A","age":1,"weight":2,"height":3,"gender":"other","activityLevel":"very-active",` +
		`"fitnessGoal":"lose-weight","steps":4,"planDuration":5,"dietaryPreference":"non-vegetarian",` +
		`"allergies":["gluten"],"mealCount":6}`
	if got := string(store.data[profile.Key]); got != want {
		t.Errorf("stored value =\n%s\nwant\n%s", got, want)
	}
}
