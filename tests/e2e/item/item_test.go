//go:build e2e

package item_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"gearshare/internal/handler/dto/request"
	"gearshare/internal/handler/dto/response"
	"gearshare/tests/common/dbtest"
	"gearshare/tests/common/httptest"
	"gearshare/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const itemsURL = "/items"

type ItemSuite struct {
	e2e.SharedSuite
}

func TestItemSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(ItemSuite))
}

func boolPtr(b bool) *bool { return &b }

func (s *ItemSuite) TestItemLifecycle() {
	s.Run("Normal case: create, update and list items", func() {
		t := s.T()
		ownerID := dbtest.CreateTestUser(t, s.DB, "owner", "owner@example.com")

		reqBody := request.CreateItemRequest{
			Name:        "Tent",
			Description: "4-person tent",
			Available:   boolPtr(true),
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, itemsURL, reqBody, ownerID)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var created response.ItemResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
		require.Equal(t, "Tent", created.Name)
		require.True(t, created.Available)

		patch := request.UpdateItemRequest{Available: boolPtr(false)}
		w = httptest.PerformRequest(t, s.Router, http.MethodPatch,
			fmt.Sprintf("%s/%d", itemsURL, created.ID), patch, ownerID)
		require.Equal(t, http.StatusOK, w.Code)

		var updated response.ItemResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &updated))
		require.False(t, updated.Available)
		require.Equal(t, "Tent", updated.Name, "untouched fields survive a partial update")

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, itemsURL, nil, ownerID)
		require.Equal(t, http.StatusOK, w.Code)
		var listed []response.ItemResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &listed))
		require.Len(t, listed, 1)
	})

	s.Run("Error case: only the owner can update", func() {
		t := s.T()
		ownerID := dbtest.CreateTestUser(t, s.DB, "owner", "owner@example.com")
		otherID := dbtest.CreateTestUser(t, s.DB, "other", "other@example.com")
		itemID := dbtest.CreateTestItem(t, s.DB, ownerID, "Kayak", true)

		patch := request.UpdateItemRequest{Available: boolPtr(false)}
		w := httptest.PerformRequest(t, s.Router, http.MethodPatch,
			fmt.Sprintf("%s/%d", itemsURL, itemID), patch, otherID)
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "not owned")
	})

	s.Run("Normal case: search matches name and description of available items", func() {
		t := s.T()
		ownerID := dbtest.CreateTestUser(t, s.DB, "owner", "owner@example.com")
		dbtest.CreateTestItem(t, s.DB, ownerID, "Cordless Drill", true)
		dbtest.CreateTestItem(t, s.DB, ownerID, "Hand Saw", false)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, itemsURL+"/search?text=dRiLl", nil, 0)
		require.Equal(t, http.StatusOK, w.Code)
		var found []response.ItemResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &found))
		require.Len(t, found, 1)

		// Unavailable items never match, regardless of text.
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, itemsURL+"/search?text=saw", nil, 0)
		require.Equal(t, http.StatusOK, w.Code)
		found = nil
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &found))
		require.Empty(t, found)

		// A blank query is an empty result, not an error.
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, itemsURL+"/search?text=", nil, 0)
		require.Equal(t, http.StatusOK, w.Code)
		found = nil
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &found))
		require.Empty(t, found)
	})
}

func (s *ItemSuite) TestComment() {
	commentURL := func(itemID int64) string {
		return fmt.Sprintf("%s/%d/comment", itemsURL, itemID)
	}

	s.Run("Normal case: renter comments after a completed approved booking", func() {
		t := s.T()
		ownerID := dbtest.CreateTestUser(t, s.DB, "owner", "owner@example.com")
		renterID := dbtest.CreateTestUser(t, s.DB, "renter", "renter@example.com")
		itemID := dbtest.CreateTestItem(t, s.DB, ownerID, "Projector", true)

		now := time.Now()
		dbtest.CreateTestBooking(t, s.DB, itemID, renterID,
			now.Add(-72*time.Hour), now.Add(-48*time.Hour), "APPROVED")

		reqBody := request.CreateCommentRequest{Text: "Bright picture, easy setup."}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, commentURL(itemID), reqBody, renterID)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var created response.CommentResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))

		expected := &response.CommentResponse{
			Text:       "Bright picture, easy setup.",
			AuthorName: "renter",
		}
		opts := []cmp.Option{
			cmpopts.IgnoreFields(response.CommentResponse{}, "ID", "Created"),
		}
		if diff := cmp.Diff(expected, &created, opts...); diff != "" {
			t.Errorf("Comment response mismatch (-want +got):\n%s", diff)
		}

		// The comment shows up on the item detail.
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf("%s/%d", itemsURL, itemID), nil, 0)
		require.Equal(t, http.StatusOK, w.Code)
		var detail response.ItemResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &detail))
		require.Len(t, detail.Comments, 1)
	})

	s.Run("Error case: ineligible renters cannot comment", func() {
		t := s.T()
		ownerID := dbtest.CreateTestUser(t, s.DB, "owner", "owner@example.com")
		renterID := dbtest.CreateTestUser(t, s.DB, "renter", "renter@example.com")
		itemID := dbtest.CreateTestItem(t, s.DB, ownerID, "Projector", true)
		now := time.Now()

		reqBody := request.CreateCommentRequest{Text: "nope"}

		// No booking at all.
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, commentURL(itemID), reqBody, renterID)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "No completed booking")

		// Rejected booking in the past does not qualify.
		dbtest.CreateTestBooking(t, s.DB, itemID, renterID,
			now.Add(-72*time.Hour), now.Add(-48*time.Hour), "REJECTED")
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, commentURL(itemID), reqBody, renterID)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "No completed booking")

		// Approved but still running does not qualify either.
		dbtest.CreateTestBooking(t, s.DB, itemID, renterID,
			now.Add(-time.Hour), now.Add(time.Hour), "APPROVED")
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, commentURL(itemID), reqBody, renterID)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "No completed booking")
	})
}
