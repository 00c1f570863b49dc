package author_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/bookstore/internal/catalog/author"
	"github.com/taibuivan/bookstore/internal/catalog/repository"
	"github.com/taibuivan/bookstore/internal/platform/apperr"
	"github.com/taibuivan/bookstore/internal/platform/dberr"
	"github.com/taibuivan/bookstore/internal/platform/postgres"
	"github.com/taibuivan/bookstore/internal/platform/postgres/pgtest"
)

func TestPostgresRepository_Lifecycle(t *testing.T) {
	pool := pgtest.Open(t)
	ctx := context.Background()

	repo := author.NewPostgresRepository(postgres.NewSession(pool))

	created := &author.Author{FirstName: "Chinua", LastName: "Achebe", Bio: "Nigerian novelist."}
	outcome, err := repo.Create(ctx, created)
	require.NoError(t, err)
	assert.Equal(t, repository.Applied, outcome)
	require.NotZero(t, created.ID)

	found, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, found)

	exists, err := repo.IsInDatabase(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Contains(t, all, created)

	found.Bio = "Author of Things Fall Apart."
	outcome, err = repo.Update(ctx, found)
	require.NoError(t, err)
	assert.Equal(t, repository.Applied, outcome)

	reloaded, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Author of Things Fall Apart.", reloaded.Bio)

	outcome, err = repo.Delete(ctx, reloaded)
	require.NoError(t, err)
	assert.Equal(t, repository.Applied, outcome)

	_, err = repo.FindByID(ctx, created.ID)
	assert.ErrorIs(t, err, dberr.ErrNotFound)
}

func TestPostgresRepository_Absent(t *testing.T) {
	pool := pgtest.Open(t)
	ctx := context.Background()

	repo := author.NewPostgresRepository(postgres.NewSession(pool))
	var missing int64 = math.MaxInt64

	_, err := repo.FindByID(ctx, missing)
	assert.ErrorIs(t, err, dberr.ErrNotFound)

	exists, err := repo.IsInDatabase(ctx, missing)
	require.NoError(t, err)
	assert.False(t, exists)

	outcome, err := repo.DeleteByID(ctx, missing)
	require.NoError(t, err)
	assert.Equal(t, repository.NoOp, outcome)

	outcome, err = repo.Update(ctx, &author.Author{ID: missing, FirstName: "No", LastName: "One", Bio: "Ghost."})
	require.NoError(t, err)
	assert.Equal(t, repository.NoOp, outcome)
}

func TestPostgresRepository_RejectsOverlongName(t *testing.T) {
	pool := pgtest.Open(t)
	ctx := context.Background()

	repo := author.NewPostgresRepository(postgres.NewSession(pool))
	long := "Wolfeschlegelsteinhausenbergerdorffwelchevoralternwaren"

	_, err := repo.Create(ctx, &author.Author{FirstName: "Hubert", LastName: long, Bio: "Long name."})

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "VALIDATION_ERROR", ae.Code)
}
