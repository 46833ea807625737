package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-punch-tracker/internal/logger"
	"github.com/MKhiriev/go-punch-tracker/models"
)

func newTestCoachRepo() CoachRepository {
	return newCoachRepository(newMemoryDB(), logger.Nop())
}

func TestCoachRepository_InviteAndAccept(t *testing.T) {
	repo := newTestCoachRepo()
	ctx := context.Background()

	inv, err := repo.CreateInvitation(ctx, models.Invitation{Code: "AB12CD34", CoachID: 1, AthleteID: 2})
	require.NoError(t, err)
	assert.False(t, inv.CreatedAt.IsZero())
	assert.Nil(t, inv.AcceptedAt)

	links, err := repo.ListLinks(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, links, "a pending invitation is not a link")

	_, err = repo.AcceptInvitation(ctx, "AB12CD34", 3)
	assert.ErrorIs(t, err, ErrInvitationNotFound, "only the invited athlete can accept")

	link, err := repo.AcceptInvitation(ctx, "AB12CD34", 2)
	require.NoError(t, err)
	assert.EqualValues(t, 1, link.CoachID)
	assert.EqualValues(t, 2, link.AthleteID)

	_, err = repo.AcceptInvitation(ctx, "AB12CD34", 2)
	assert.ErrorIs(t, err, ErrInvitationNotFound, "an invitation is accepted once")

	links, err = repo.ListLinks(ctx, 1)
	require.NoError(t, err)
	require.Len(t, links, 1)
	assert.Equal(t, link, links[0])

	_, err = repo.CreateInvitation(ctx, models.Invitation{Code: "ZZ99ZZ99", CoachID: 1, AthleteID: 2})
	assert.ErrorIs(t, err, ErrAlreadyLinked)
}

func TestCoachRepository_Errors(t *testing.T) {
	repo := newTestCoachRepo()
	ctx := context.Background()

	_, err := repo.AcceptInvitation(ctx, "NOPE0000", 2)
	assert.ErrorIs(t, err, ErrInvitationNotFound)

	_, err = repo.CreateInvitation(ctx, models.Invitation{Code: "SAME0000", CoachID: 1, AthleteID: 2})
	require.NoError(t, err)
	_, err = repo.CreateInvitation(ctx, models.Invitation{Code: "SAME0000", CoachID: 5, AthleteID: 6})
	assert.ErrorIs(t, err, ErrInviteCodeTaken)

	// two pending invitations for one pair: the second accept finds the link
	_, err = repo.CreateInvitation(ctx, models.Invitation{Code: "OTHER000", CoachID: 1, AthleteID: 2})
	require.NoError(t, err)
	_, err = repo.AcceptInvitation(ctx, "SAME0000", 2)
	require.NoError(t, err)
	_, err = repo.AcceptInvitation(ctx, "OTHER000", 2)
	assert.ErrorIs(t, err, ErrAlreadyLinked)

	links, err := repo.ListLinks(ctx, 42)
	require.NoError(t, err)
	assert.NotNil(t, links)
	assert.Empty(t, links)
}
