package service

import (
	"errors"
	"testing"

	"github.com/avtorazbor/internal/constants"
	"github.com/avtorazbor/internal/models"
	"github.com/avtorazbor/internal/repository"
)

func newTestReviewService() *ReviewService {
	return NewReviewService(
		repository.NewReviewRepository(models.DB),
		repository.NewPartRepository(models.DB),
	)
}

func TestCreateReviewOnePerUserAndPart(t *testing.T) {
	setupTestDB(t)
	svc := newTestReviewService()

	user := createTestUser(t, "alice", constants.RoleClient)
	part := createTestPart(t, "Headlight", "75.00", 2)

	review, err := svc.CreateReview(user.ID, constants.RoleClient, ReviewInput{
		PartID: part.ID, Rating: 5, Comment: "  fits perfectly  ",
	})
	if err != nil {
		t.Fatalf("create review failed: %v", err)
	}
	if review.Comment != "fits perfectly" {
		t.Fatalf("comment should be trimmed, got %q", review.Comment)
	}

	_, err = svc.CreateReview(user.ID, constants.RoleClient, ReviewInput{PartID: part.ID, Rating: 3})
	if !errors.Is(err, ErrReviewExists) {
		t.Fatalf("duplicate review: want ErrReviewExists got %v", err)
	}

	// A different user may still review the same part.
	other := createTestUser(t, "bob", constants.RoleClient)
	if _, err := svc.CreateReview(other.ID, constants.RoleClient, ReviewInput{PartID: part.ID, Rating: 4}); err != nil {
		t.Fatalf("second author failed: %v", err)
	}
}

func TestReviewUniqueIndexMapsToConflict(t *testing.T) {
	setupTestDB(t)
	svc := newTestReviewService()

	user := createTestUser(t, "alice", constants.RoleClient)
	part := createTestPart(t, "Headlight", "75.00", 2)

	if _, err := svc.CreateReview(user.ID, constants.RoleClient, ReviewInput{PartID: part.ID, Rating: 5}); err != nil {
		t.Fatalf("create review: %v", err)
	}

	// A concurrent duplicate bypasses the service pre-check and lands on
	// the unique index; the constraint error must surface as the same
	// conflict sentinel.
	err := repository.NewReviewRepository(models.DB).Create(&models.Review{
		UserID: user.ID, PartID: part.ID, Rating: 3,
	})
	if err == nil {
		t.Fatalf("duplicate insert should fail on the unique index")
	}
	if !errors.Is(translateDuplicate(err, ErrReviewExists), ErrReviewExists) {
		t.Fatalf("constraint error should map to ErrReviewExists, got %v", err)
	}
}

func TestCreateReviewValidation(t *testing.T) {
	setupTestDB(t)
	svc := newTestReviewService()

	user := createTestUser(t, "alice", constants.RoleClient)
	part := createTestPart(t, "Mirror", "20.00", 1)

	if _, err := svc.CreateReview(user.ID, constants.RoleOperator, ReviewInput{PartID: part.ID, Rating: 5}); !errors.Is(err, ErrRoleNotAllowed) {
		t.Fatalf("operator review: want ErrRoleNotAllowed got %v", err)
	}
	if _, err := svc.CreateReview(user.ID, constants.RoleClient, ReviewInput{PartID: part.ID, Rating: 0}); !errors.Is(err, ErrInvalidRating) {
		t.Fatalf("rating 0: want ErrInvalidRating got %v", err)
	}
	if _, err := svc.CreateReview(user.ID, constants.RoleClient, ReviewInput{PartID: part.ID, Rating: 6}); !errors.Is(err, ErrInvalidRating) {
		t.Fatalf("rating 6: want ErrInvalidRating got %v", err)
	}
	if _, err := svc.CreateReview(user.ID, constants.RoleClient, ReviewInput{PartID: 9999, Rating: 5}); !errors.Is(err, ErrPartNotFound) {
		t.Fatalf("missing part: want ErrPartNotFound got %v", err)
	}
}

func TestUpdateReviewAuthorOrOperator(t *testing.T) {
	setupTestDB(t)
	svc := newTestReviewService()

	author := createTestUser(t, "author", constants.RoleClient)
	stranger := createTestUser(t, "stranger", constants.RoleClient)
	part := createTestPart(t, "Bumper", "60.00", 1)

	review, err := svc.CreateReview(author.ID, constants.RoleClient, ReviewInput{PartID: part.ID, Rating: 2})
	if err != nil {
		t.Fatalf("create review: %v", err)
	}

	if _, err := svc.UpdateReview(review.ID, stranger.ID, false, 5, "nope"); !errors.Is(err, ErrReviewAccessDenied) {
		t.Fatalf("foreign edit: want ErrReviewAccessDenied got %v", err)
	}
	if _, err := svc.UpdateReview(review.ID, author.ID, false, 9, ""); !errors.Is(err, ErrInvalidRating) {
		t.Fatalf("bad rating: want ErrInvalidRating got %v", err)
	}

	updated, err := svc.UpdateReview(review.ID, stranger.ID, true, 4, "moderated")
	if err != nil {
		t.Fatalf("operator edit failed: %v", err)
	}
	if updated.Rating != 4 || updated.Comment != "moderated" {
		t.Fatalf("operator edit not applied: %+v", updated)
	}

	if _, err := svc.UpdateReview(9999, author.ID, false, 3, ""); !errors.Is(err, ErrReviewNotFound) {
		t.Fatalf("missing review: want ErrReviewNotFound got %v", err)
	}
}

func TestDeleteReviewAuthorOrOperator(t *testing.T) {
	setupTestDB(t)
	svc := newTestReviewService()

	author := createTestUser(t, "author", constants.RoleClient)
	stranger := createTestUser(t, "stranger", constants.RoleClient)
	part := createTestPart(t, "Grille", "35.00", 1)

	review, err := svc.CreateReview(author.ID, constants.RoleClient, ReviewInput{PartID: part.ID, Rating: 3})
	if err != nil {
		t.Fatalf("create review: %v", err)
	}

	if err := svc.DeleteReview(review.ID, stranger.ID, false); !errors.Is(err, ErrReviewAccessDenied) {
		t.Fatalf("foreign delete: want ErrReviewAccessDenied got %v", err)
	}
	if err := svc.DeleteReview(review.ID, author.ID, false); err != nil {
		t.Fatalf("author delete failed: %v", err)
	}
	if err := svc.DeleteReview(review.ID, author.ID, false); !errors.Is(err, ErrReviewNotFound) {
		t.Fatalf("second delete: want ErrReviewNotFound got %v", err)
	}
}

func TestListReviewsFilters(t *testing.T) {
	setupTestDB(t)
	svc := newTestReviewService()

	alice := createTestUser(t, "alice", constants.RoleClient)
	bob := createTestUser(t, "bob", constants.RoleClient)
	partA := createTestPart(t, "A", "10.00", 1)
	partB := createTestPart(t, "B", "20.00", 1)

	for _, seed := range []struct {
		user uint
		part uint
	}{
		{alice.ID, partA.ID},
		{alice.ID, partB.ID},
		{bob.ID, partA.ID},
	} {
		if _, err := svc.CreateReview(seed.user, constants.RoleClient, ReviewInput{PartID: seed.part, Rating: 4}); err != nil {
			t.Fatalf("seed review: %v", err)
		}
	}

	_, total, err := svc.ListReviews(repository.ReviewListFilter{Page: 1, PageSize: 10, PartID: partA.ID})
	if err != nil {
		t.Fatalf("list by part failed: %v", err)
	}
	if total != 2 {
		t.Fatalf("part A reviews want 2 got %d", total)
	}

	_, total, err = svc.ListReviews(repository.ReviewListFilter{Page: 1, PageSize: 10, UserID: alice.ID})
	if err != nil {
		t.Fatalf("list by user failed: %v", err)
	}
	if total != 2 {
		t.Fatalf("alice reviews want 2 got %d", total)
	}
}
