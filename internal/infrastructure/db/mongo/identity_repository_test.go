package mongo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/datalab/sample-tracker/internal/core/domain"
)

func TestIdentityMapping_RoundTrip(t *testing.T) {
	for _, id := range domain.Registry() {
		got, err := toDomain(fromDomain(id))
		if err != nil {
			t.Fatalf("toDomain(%s): %v", id.ID, err)
		}
		if *got != id {
			t.Fatalf("round trip mismatch: %+v vs %+v", *got, id)
		}
	}
}

func TestToDomain_RejectsTierMismatch(t *testing.T) {
	doc := fromDomain(domain.Registry()[2])
	doc.AccessLevel = string(domain.LevelHandler)

	if _, err := toDomain(doc); err == nil {
		t.Fatalf("expected member ID stored with handler tier to be rejected")
	}
}

func identityNamespace(mt *mtest.T) string {
	return mt.DB.Name() + "." + identityCollection
}

func identityDoc(id domain.Identity) bson.D {
	return bson.D{
		{Key: "_id", Value: id.ID},
		{Key: "name", Value: id.Name},
		{Key: "role", Value: id.Role},
		{Key: "department", Value: id.Department},
		{Key: "access_level", Value: string(id.AccessLevel)},
		{Key: "email", Value: id.Email},
	}
}

func TestIdentityRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()

	mt.Run("find by id", func(mt *mtest.T) {
		repo := NewIdentityRepository(mt.DB)
		jamie := domain.Registry()[2]
		mt.AddMockResponses(mtest.CreateCursorResponse(0, identityNamespace(mt), mtest.FirstBatch, identityDoc(jamie)))

		got, err := repo.FindByID(ctx, jamie.ID)
		require.NoError(mt, err)
		require.Equal(mt, jamie, *got)

		evt := mt.GetStartedEvent()
		require.Equal(mt, "find", evt.CommandName)
		require.Equal(mt, jamie.ID, evt.Command.Lookup("filter", "_id").StringValue())
	})

	mt.Run("unknown id maps to not found", func(mt *mtest.T) {
		repo := NewIdentityRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, identityNamespace(mt), mtest.FirstBatch))

		_, err := repo.FindByID(ctx, "99hd999")
		require.ErrorIs(mt, err, domain.ErrIdentityNotFound)
	})

	mt.Run("backend failure is not a miss", func(mt *mtest.T) {
		repo := NewIdentityRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    2,
			Name:    "BadValue",
			Message: "unexpected filter",
		}))

		_, err := repo.FindByID(ctx, "25hd001")
		require.Error(mt, err)
		require.NotErrorIs(mt, err, domain.ErrIdentityNotFound)
	})

	mt.Run("stored tier mismatch is rejected", func(mt *mtest.T) {
		repo := NewIdentityRepository(mt.DB)
		doc := identityDoc(domain.Registry()[2])
		doc[4].Value = string(domain.LevelHandler)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, identityNamespace(mt), mtest.FirstBatch, doc))

		_, err := repo.FindByID(ctx, "25mb001")
		require.Error(mt, err)
	})

	mt.Run("list sorts by id", func(mt *mtest.T) {
		repo := NewIdentityRepository(mt.DB)
		reg := domain.Registry()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, identityNamespace(mt), mtest.FirstBatch,
			identityDoc(reg[0]), identityDoc(reg[3]), identityDoc(reg[2])))

		got, err := repo.List(ctx)
		require.NoError(mt, err)
		require.Equal(mt, []domain.Identity{reg[0], reg[3], reg[2]}, got)

		evt := mt.GetStartedEvent()
		require.Equal(mt, "find", evt.CommandName)
		require.EqualValues(mt, 1, evt.Command.Lookup("sort", "_id").Int32())
	})

	mt.Run("seed upserts every identity", func(mt *mtest.T) {
		repo := NewIdentityRepository(mt.DB)
		reg := domain.Registry()
		for range reg {
			mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}, bson.E{Key: "nModified", Value: 1}))
		}

		require.NoError(mt, repo.Seed(ctx, reg))

		for _, id := range reg {
			evt := mt.GetStartedEvent()
			require.NotNil(mt, evt)
			require.Equal(mt, "update", evt.CommandName)
			require.Equal(mt, id.ID, evt.Command.Lookup("updates", "0", "q", "_id").StringValue())
			require.True(mt, evt.Command.Lookup("updates", "0", "upsert").Boolean())
		}
	})

	mt.Run("seed validates before writing", func(mt *mtest.T) {
		repo := NewIdentityRepository(mt.DB)
		bad := domain.Registry()[0]
		bad.AccessLevel = domain.LevelMember

		require.Error(mt, repo.Seed(ctx, []domain.Identity{bad}))
		require.Nil(mt, mt.GetStartedEvent())
	})
}
