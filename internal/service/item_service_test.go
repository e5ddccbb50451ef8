package service

import (
	"context"
	"testing"
	"time"

	"github.com/sharer-labs/shareit-server/internal/dto"
	"github.com/sharer-labs/shareit-server/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddItem(t *testing.T) {
	e := newEnv()
	owner := e.addUser(t, "Owner", "owner@example.com")

	item, err := e.itemSvc.Add(context.Background(), owner.ID, dto.CreateItemRequest{
		Name:        strPtr("Drill"),
		Description: strPtr("Cordless drill"),
		Available:   boolPtr(true),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), item.ID)
	assert.Equal(t, owner.ID, item.OwnerID)
	assert.Nil(t, item.RequestID)
}

func TestAddItem_Validation(t *testing.T) {
	e := newEnv()
	owner := e.addUser(t, "Owner", "owner@example.com")

	cases := []struct {
		name string
		req  dto.CreateItemRequest
	}{
		{"missing name", dto.CreateItemRequest{Description: strPtr("d"), Available: boolPtr(true)}},
		{"blank name", dto.CreateItemRequest{Name: strPtr("   "), Description: strPtr("d"), Available: boolPtr(true)}},
		{"missing description", dto.CreateItemRequest{Name: strPtr("Drill"), Available: boolPtr(true)}},
		{"missing available", dto.CreateItemRequest{Name: strPtr("Drill"), Description: strPtr("d")}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := e.itemSvc.Add(context.Background(), owner.ID, tc.req)
			assert.ErrorIs(t, err, ErrInvalidItem)
		})
	}
}

func TestAddItem_UnknownOwner(t *testing.T) {
	e := newEnv()

	_, err := e.itemSvc.Add(context.Background(), 42, dto.CreateItemRequest{
		Name:        strPtr("Drill"),
		Description: strPtr("Cordless drill"),
		Available:   boolPtr(true),
	})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestAddItem_ForRequest(t *testing.T) {
	e := newEnv()
	owner := e.addUser(t, "Owner", "owner@example.com")
	requestor := e.addUser(t, "Requestor", "requestor@example.com")
	request, err := e.requestSvc.Add(context.Background(), requestor.ID, dto.CreateItemRequestRequest{
		Description: strPtr("Need a drill"),
	})
	require.NoError(t, err)

	item, err := e.itemSvc.Add(context.Background(), owner.ID, dto.CreateItemRequest{
		Name:        strPtr("Drill"),
		Description: strPtr("Cordless drill"),
		Available:   boolPtr(true),
		RequestID:   int64Ptr(request.ID),
	})
	require.NoError(t, err)
	require.NotNil(t, item.RequestID)
	assert.Equal(t, request.ID, *item.RequestID)

	_, err = e.itemSvc.Add(context.Background(), owner.ID, dto.CreateItemRequest{
		Name:        strPtr("Saw"),
		Description: strPtr("Hand saw"),
		Available:   boolPtr(true),
		RequestID:   int64Ptr(99),
	})
	assert.ErrorIs(t, err, ErrRequestNotFound)
}

func TestUpdateItem(t *testing.T) {
	e := newEnv()
	owner := e.addUser(t, "Owner", "owner@example.com")
	item := e.addItem(t, owner.ID, "Drill", "Cordless drill", true)

	updated, err := e.itemSvc.Update(context.Background(), item.ID, owner.ID, dto.UpdateItemRequest{
		Available: boolPtr(false),
	})
	require.NoError(t, err)
	assert.Equal(t, "Drill", updated.Name)
	assert.Equal(t, "Cordless drill", updated.Description)
	assert.False(t, updated.Available)

	updated, err = e.itemSvc.Update(context.Background(), item.ID, owner.ID, dto.UpdateItemRequest{
		Name:        strPtr("Hammer drill"),
		Description: strPtr("Heavy duty"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Hammer drill", updated.Name)
	assert.Equal(t, "Heavy duty", updated.Description)
	assert.False(t, updated.Available)
}

func TestUpdateItem_NotOwner(t *testing.T) {
	e := newEnv()
	owner := e.addUser(t, "Owner", "owner@example.com")
	other := e.addUser(t, "Other", "other@example.com")
	item := e.addItem(t, owner.ID, "Drill", "Cordless drill", true)

	_, err := e.itemSvc.Update(context.Background(), item.ID, other.ID, dto.UpdateItemRequest{
		Name: strPtr("Stolen drill"),
	})
	assert.ErrorIs(t, err, ErrNotOwner)

	_, err = e.itemSvc.Update(context.Background(), 99, owner.ID, dto.UpdateItemRequest{
		Name: strPtr("Ghost"),
	})
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestSearchItems(t *testing.T) {
	e := newEnv()
	owner := e.addUser(t, "Owner", "owner@example.com")
	drill := e.addItem(t, owner.ID, "Cordless DRILL", "Compact", true)
	e.addItem(t, owner.ID, "Saw", "Hand saw", true)
	byDescription := e.addItem(t, owner.ID, "Toolbox", "Comes with a drill bit set", true)
	e.addItem(t, owner.ID, "Broken drill", "Does not spin", false)

	found, err := e.itemSvc.Search(context.Background(), "dRiLl", 0, 10)
	require.NoError(t, err)
	require.Len(t, found, 2)
	assert.Equal(t, drill.ID, found[0].ID)
	assert.Equal(t, byDescription.ID, found[1].ID)
}

func TestSearchItems_BlankText(t *testing.T) {
	e := newEnv()
	owner := e.addUser(t, "Owner", "owner@example.com")
	e.addItem(t, owner.ID, "Drill", "Cordless drill", true)

	found, err := e.itemSvc.Search(context.Background(), "   ", 0, 10)
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestGetItem_BookingsOnlyForOwner(t *testing.T) {
	e := newEnv()
	owner := e.addUser(t, "Owner", "owner@example.com")
	booker := e.addUser(t, "Booker", "booker@example.com")
	item := e.addItem(t, owner.ID, "Drill", "Cordless drill", true)

	now := time.Now()
	last := e.addBooking(t, booker.ID, item.ID, now.Add(-2*time.Hour), now.Add(-time.Hour), models.StatusApproved)
	next := e.addBooking(t, booker.ID, item.ID, now.Add(time.Hour), now.Add(2*time.Hour), models.StatusApproved)

	detail, err := e.itemSvc.GetByID(context.Background(), owner.ID, item.ID)
	require.NoError(t, err)
	require.NotNil(t, detail.LastBooking)
	require.NotNil(t, detail.NextBooking)
	assert.Equal(t, last.ID, detail.LastBooking.ID)
	assert.Equal(t, next.ID, detail.NextBooking.ID)

	detail, err = e.itemSvc.GetByID(context.Background(), booker.ID, item.ID)
	require.NoError(t, err)
	assert.Nil(t, detail.LastBooking)
	assert.Nil(t, detail.NextBooking)

	_, err = e.itemSvc.GetByID(context.Background(), owner.ID, 99)
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestGetItem_OnlyApprovedBookingsCount(t *testing.T) {
	e := newEnv()
	owner := e.addUser(t, "Owner", "owner@example.com")
	booker := e.addUser(t, "Booker", "booker@example.com")
	item := e.addItem(t, owner.ID, "Drill", "Cordless drill", true)

	now := time.Now()
	e.addBooking(t, booker.ID, item.ID, now.Add(-2*time.Hour), now.Add(-time.Hour), models.StatusRejected)
	e.addBooking(t, booker.ID, item.ID, now.Add(time.Hour), now.Add(2*time.Hour), models.StatusWaiting)

	detail, err := e.itemSvc.GetByID(context.Background(), owner.ID, item.ID)
	require.NoError(t, err)
	assert.Nil(t, detail.LastBooking)
	assert.Nil(t, detail.NextBooking)
}

func TestGetAllByOwner(t *testing.T) {
	e := newEnv()
	owner := e.addUser(t, "Owner", "owner@example.com")
	other := e.addUser(t, "Other", "other@example.com")
	first := e.addItem(t, owner.ID, "Drill", "Cordless drill", true)
	second := e.addItem(t, owner.ID, "Saw", "Hand saw", true)
	e.addItem(t, other.ID, "Ladder", "Step ladder", true)

	items, err := e.itemSvc.GetAllByOwner(context.Background(), owner.ID, 0, 10)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, first.ID, items[0].ID)
	assert.Equal(t, second.ID, items[1].ID)

	_, err = e.itemSvc.GetAllByOwner(context.Background(), 99, 0, 10)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestAddComment(t *testing.T) {
	e := newEnv()
	owner := e.addUser(t, "Owner", "owner@example.com")
	booker := e.addUser(t, "Booker", "booker@example.com")
	item := e.addItem(t, owner.ID, "Drill", "Cordless drill", true)

	now := time.Now()
	e.addBooking(t, booker.ID, item.ID, now.Add(-2*time.Hour), now.Add(-time.Hour), models.StatusApproved)

	comment, err := e.itemSvc.AddComment(context.Background(), booker.ID, item.ID, "Worked great")
	require.NoError(t, err)
	assert.Equal(t, "Worked great", comment.Text)
	require.NotNil(t, comment.Author)
	assert.Equal(t, "Booker", comment.Author.Name)

	detail, err := e.itemSvc.GetByID(context.Background(), booker.ID, item.ID)
	require.NoError(t, err)
	require.Len(t, detail.Comments, 1)
	assert.Equal(t, "Booker", detail.Comments[0].AuthorName)
}

func TestAddComment_Rules(t *testing.T) {
	e := newEnv()
	owner := e.addUser(t, "Owner", "owner@example.com")
	booker := e.addUser(t, "Booker", "booker@example.com")
	stranger := e.addUser(t, "Stranger", "stranger@example.com")
	item := e.addItem(t, owner.ID, "Drill", "Cordless drill", true)

	now := time.Now()
	e.addBooking(t, booker.ID, item.ID, now.Add(-2*time.Hour), now.Add(-time.Hour), models.StatusApproved)
	// An ongoing booking does not yet entitle the stranger to comment.
	e.addBooking(t, stranger.ID, item.ID, now.Add(-time.Hour), now.Add(time.Hour), models.StatusApproved)

	_, err := e.itemSvc.AddComment(context.Background(), booker.ID, item.ID, "   ")
	assert.ErrorIs(t, err, ErrEmptyComment)

	_, err = e.itemSvc.AddComment(context.Background(), stranger.ID, item.ID, "Looks nice")
	assert.ErrorIs(t, err, ErrCommentNotAllowed)

	_, err = e.itemSvc.AddComment(context.Background(), owner.ID, item.ID, "My own drill")
	assert.ErrorIs(t, err, ErrCommentNotAllowed)
}
