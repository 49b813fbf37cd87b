package stores

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"vital-be/apperrors"
)

func TestTranslate(t *testing.T) {
	t.Run("nil stays nil", func(t *testing.T) {
		assert.NoError(t, translate(nil))
	})

	t.Run("missing document", func(t *testing.T) {
		assert.ErrorIs(t, translate(mongo.ErrNoDocuments), ErrNotFound)
	})

	t.Run("duplicate key", func(t *testing.T) {
		dup := mongo.WriteException{WriteErrors: []mongo.WriteError{{Code: 11000, Message: "E11000 duplicate key"}}}
		assert.ErrorIs(t, translate(dup), ErrConflict)
	})

	t.Run("deadline becomes backend unavailable", func(t *testing.T) {
		err := translate(context.DeadlineExceeded)
		assert.True(t, apperrors.IsKind(err, apperrors.KindBackendUnavailable))
	})

	t.Run("other errors pass through", func(t *testing.T) {
		boom := errors.New("boom")
		assert.Same(t, boom, translate(boom))
	})
}

func TestJurisdictionSkipsEmptyValues(t *testing.T) {
	filter := jurisdiction("panchayatId", "pan-1", "talukId", "", "districtId", "d-1")
	assert.Equal(t, bson.M{"panchayatId": "pan-1", "districtId": "d-1"}, filter)
	assert.Empty(t, jurisdiction("talukId", ""))
}

func TestIndexPlanCoversQueriedCollections(t *testing.T) {
	for _, name := range []string{AuthoritiesCollection, IssuesCollection, FundRequestsCollection, VillagersCollection} {
		assert.NotEmpty(t, indexPlan[name], name)
	}
}
