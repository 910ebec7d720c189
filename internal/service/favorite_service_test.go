package service

import (
	"errors"
	"testing"

	"github.com/avtorazbor/internal/constants"
	"github.com/avtorazbor/internal/models"
	"github.com/avtorazbor/internal/repository"
)

func newTestFavoriteService() *FavoriteService {
	return NewFavoriteService(
		repository.NewFavoriteRepository(models.DB),
		repository.NewPartRepository(models.DB),
	)
}

func TestAddFavoriteOnePerUserAndPart(t *testing.T) {
	setupTestDB(t)
	svc := newTestFavoriteService()

	user := createTestUser(t, "alice", constants.RoleClient)
	part := createTestPart(t, "Spoiler", "45.00", 1)

	if _, err := svc.AddFavorite(user.ID, part.ID); err != nil {
		t.Fatalf("add favorite failed: %v", err)
	}
	if _, err := svc.AddFavorite(user.ID, part.ID); !errors.Is(err, ErrFavoriteExists) {
		t.Fatalf("duplicate favorite: want ErrFavoriteExists got %v", err)
	}
	if _, err := svc.AddFavorite(user.ID, 9999); !errors.Is(err, ErrPartNotFound) {
		t.Fatalf("missing part: want ErrPartNotFound got %v", err)
	}

	other := createTestUser(t, "bob", constants.RoleClient)
	if _, err := svc.AddFavorite(other.ID, part.ID); err != nil {
		t.Fatalf("second user failed: %v", err)
	}
}

func TestFavoriteUniqueIndexMapsToConflict(t *testing.T) {
	setupTestDB(t)
	svc := newTestFavoriteService()

	user := createTestUser(t, "alice", constants.RoleClient)
	part := createTestPart(t, "Spoiler", "45.00", 1)

	if _, err := svc.AddFavorite(user.ID, part.ID); err != nil {
		t.Fatalf("add favorite: %v", err)
	}

	// A concurrent duplicate bypasses the service pre-check and lands on
	// the unique index; the constraint error must surface as the same
	// conflict sentinel.
	err := repository.NewFavoriteRepository(models.DB).Create(&models.Favorite{
		UserID: user.ID, PartID: part.ID,
	})
	if err == nil {
		t.Fatalf("duplicate insert should fail on the unique index")
	}
	if !errors.Is(translateDuplicate(err, ErrFavoriteExists), ErrFavoriteExists) {
		t.Fatalf("constraint error should map to ErrFavoriteExists, got %v", err)
	}
}

func TestListFavoritesScopedToUser(t *testing.T) {
	setupTestDB(t)
	svc := newTestFavoriteService()

	alice := createTestUser(t, "alice", constants.RoleClient)
	bob := createTestUser(t, "bob", constants.RoleClient)
	partA := createTestPart(t, "A", "10.00", 1)
	partB := createTestPart(t, "B", "20.00", 1)

	for _, seed := range []struct{ user, part uint }{
		{alice.ID, partA.ID},
		{alice.ID, partB.ID},
		{bob.ID, partA.ID},
	} {
		if _, err := svc.AddFavorite(seed.user, seed.part); err != nil {
			t.Fatalf("seed favorite: %v", err)
		}
	}

	favorites, total, err := svc.ListFavorites(alice.ID, 1, 10)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 2 || len(favorites) != 2 {
		t.Fatalf("alice favorites want 2 got total=%d len=%d", total, len(favorites))
	}
	for _, f := range favorites {
		if f.UserID != alice.ID {
			t.Fatalf("favorite of user %d leaked into alice's list", f.UserID)
		}
	}
}

func TestRemoveFavorite(t *testing.T) {
	setupTestDB(t)
	svc := newTestFavoriteService()

	user := createTestUser(t, "alice", constants.RoleClient)
	part := createTestPart(t, "Antenna", "5.00", 1)

	if _, err := svc.AddFavorite(user.ID, part.ID); err != nil {
		t.Fatalf("add favorite: %v", err)
	}
	if err := svc.RemoveFavorite(user.ID, part.ID); err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if err := svc.RemoveFavorite(user.ID, part.ID); !errors.Is(err, ErrFavoriteNotFound) {
		t.Fatalf("second remove: want ErrFavoriteNotFound got %v", err)
	}
}
