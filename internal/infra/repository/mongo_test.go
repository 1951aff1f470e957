package repository_test

import (
	"context"
	"os"
	"testing"

	"github.com/clinica/appointments-api/internal/db"
	"github.com/clinica/appointments-api/internal/infra/repository"
)

func TestMongoStore(t *testing.T) {
	uri := os.Getenv("TEST_MONGODB_URI")
	if uri == "" {
		t.Skip("TEST_MONGODB_URI not set")
	}

	ctx := context.Background()
	client, database, err := db.NewMongo(ctx, uri, "clinica_test")
	if err != nil {
		t.Fatalf("mongo: %v", err)
	}
	t.Cleanup(func() {
		_ = database.Drop(context.Background())
		_ = client.Disconnect(context.Background())
	})

	// start from an empty database, then restore the indexes
	if err := database.Drop(ctx); err != nil {
		t.Fatalf("drop: %v", err)
	}
	if err := db.EnsureMongoIndexes(ctx, database); err != nil {
		t.Fatalf("indexes: %v", err)
	}

	runStoreContract(
		t,
		repository.NewAppointmentMongoRepository(database),
		repository.NewCenterMongoRepository(database),
		repository.NewUserMongoRepository(database),
	)
}
