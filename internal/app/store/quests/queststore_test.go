package queststore_test

import (
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	queststore "github.com/jvetere1999/passion-os/internal/app/store/quests"
	"github.com/jvetere1999/passion-os/internal/domain/models"
	"github.com/jvetere1999/passion-os/internal/testutil"
)

func TestStore_ActiveCount(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := queststore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	userID := primitive.NewObjectID()
	future := time.Now().UTC().Add(24 * time.Hour)
	past := time.Now().UTC().Add(-24 * time.Hour)

	progress := []any{
		// counts: open, no expiry
		models.QuestProgress{ID: primitive.NewObjectID(), UserID: userID, QuestID: primitive.NewObjectID()},
		// counts: open, future expiry
		models.QuestProgress{ID: primitive.NewObjectID(), UserID: userID, QuestID: primitive.NewObjectID(), ExpiresAt: &future},
		// excluded: completed
		models.QuestProgress{ID: primitive.NewObjectID(), UserID: userID, QuestID: primitive.NewObjectID(), Completed: true},
		// excluded: expired
		models.QuestProgress{ID: primitive.NewObjectID(), UserID: userID, QuestID: primitive.NewObjectID(), ExpiresAt: &past},
		// excluded: other user
		models.QuestProgress{ID: primitive.NewObjectID(), UserID: primitive.NewObjectID(), QuestID: primitive.NewObjectID()},
	}
	if _, err := db.Collection("user_quest_progress").InsertMany(ctx, progress); err != nil {
		t.Fatalf("insert progress: %v", err)
	}

	count, err := store.ActiveCount(ctx, userID)
	if err != nil {
		t.Fatalf("ActiveCount failed: %v", err)
	}
	if count != 2 {
		t.Errorf("ActiveCount: got %d, want 2", count)
	}
}
