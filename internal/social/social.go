// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

// Package social manages friend requests, friendships and recipe shares.
package social

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"golang.org/x/sync/errgroup"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/curioswitch/peakplates/internal/peakplatesdb"
)

var (
	ErrSelfRequest      = errors.New("cannot send a friend request to yourself")
	ErrUserNotFound     = errors.New("user not found")
	ErrAlreadyFriends   = errors.New("already friends")
	ErrAlreadySent      = errors.New("friend request already sent")
	ErrRequestIncoming  = errors.New("user already sent you a friend request")
	ErrRequestNotFound  = errors.New("friend request not found")
	ErrNotRecipient     = errors.New("friend request is addressed to another user")
	ErrNotPending       = errors.New("friend request is no longer pending")
	ErrNotFriends       = errors.New("not friends")
	ErrRecipeNotFound   = errors.New("recipe not found")
	ErrAlreadyShared    = errors.New("recipe already shared with user")
	ErrShareWithOneself = errors.New("cannot share a recipe with yourself")
)

// Graph is the social graph stored in Firestore.
type Graph struct {
	store *firestore.Client
	now   func() time.Time
}

func NewGraph(store *firestore.Client) *Graph {
	return &Graph{
		store: store,
		now:   time.Now,
	}
}

// Friend is a user the caller is friends with.
type Friend struct {
	UserID   string
	Username string
}

// UserMatch is a user returned from a search.
type UserMatch struct {
	UserID   string
	Username string
	IsFriend bool
}

func (g *Graph) users() *firestore.CollectionRef {
	return g.store.Collection(peakplatesdb.CollectionUsers)
}

func (g *Graph) requests() *firestore.CollectionRef {
	return g.store.Collection(peakplatesdb.CollectionFriendRequests)
}

func (g *Graph) friendships() *firestore.CollectionRef {
	return g.store.Collection(peakplatesdb.CollectionFriendships)
}

func getUser(tx *firestore.Transaction, ref *firestore.DocumentRef) (*peakplatesdb.User, error) {
	doc, err := tx.Get(ref)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("social: getting user: %w", err)
	}
	return peakplatesdb.ParseUser(doc)
}

// SendRequest creates a pending friend request from one user to another. A
// previously declined request may be sent again. It fails when the users are
// already friends or a pending request exists in either direction.
func (g *Graph) SendRequest(ctx context.Context, from string, to string) (*peakplatesdb.FriendRequest, error) {
	if from == to {
		return nil, ErrSelfRequest
	}

	reqRef := g.requests().Doc(peakplatesdb.FriendRequestID(from, to))

	var req *peakplatesdb.FriendRequest
	err := g.store.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		fromUser, err := getUser(tx, g.users().Doc(from))
		if err != nil {
			return err
		}
		toUser, err := getUser(tx, g.users().Doc(to))
		if err != nil {
			return err
		}

		// Older clients stored friendships and requests under random IDs, so
		// look them up by field rather than by canonical ID.
		checks := []struct {
			q   firestore.Query
			err error
		}{
			{q: g.friendshipQuery(from, to), err: ErrAlreadyFriends},
			{q: g.friendshipQuery(to, from), err: ErrAlreadyFriends},
			{q: g.pendingQuery(from, to), err: ErrAlreadySent},
			{q: g.pendingQuery(to, from), err: ErrRequestIncoming},
		}
		for _, c := range checks {
			found, err := txExists(tx, c.q)
			if err != nil {
				return err
			}
			if found {
				return c.err
			}
		}

		req = &peakplatesdb.FriendRequest{
			FromUserID:   from,
			FromUsername: fromUser.Username,
			ToUserID:     to,
			ToUsername:   toUser.Username,
			Status:       peakplatesdb.FriendRequestStatusPending,
			CreatedAt:    g.now(),
		}
		if err := tx.Set(reqRef, req); err != nil {
			return fmt.Errorf("social: saving friend request: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return req, nil
}

func (g *Graph) friendshipQuery(user1 string, user2 string) firestore.Query {
	return g.friendships().Where("user1", "==", user1).Where("user2", "==", user2)
}

func (g *Graph) pendingQuery(from string, to string) firestore.Query {
	return g.requests().
		Where("fromUserId", "==", from).
		Where("toUserId", "==", to).
		Where("status", "==", string(peakplatesdb.FriendRequestStatusPending))
}

func txExists(tx *firestore.Transaction, q firestore.Query) (bool, error) {
	docs, err := tx.Documents(q.Limit(1)).GetAll()
	if err != nil {
		return false, fmt.Errorf("social: querying existing relationships: %w", err)
	}
	return len(docs) > 0, nil
}

// Accept marks a pending request as accepted and creates the friendship. Only
// the recipient may accept.
func (g *Graph) Accept(ctx context.Context, requestID string, uid string) error {
	return g.respond(ctx, requestID, uid, peakplatesdb.FriendRequestStatusAccepted)
}

// Decline marks a pending request as declined. Only the recipient may decline.
func (g *Graph) Decline(ctx context.Context, requestID string, uid string) error {
	return g.respond(ctx, requestID, uid, peakplatesdb.FriendRequestStatusDeclined)
}

func (g *Graph) respond(ctx context.Context, requestID string, uid string, st peakplatesdb.FriendRequestStatus) error {
	reqRef := g.requests().Doc(requestID)
	return g.store.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(reqRef)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return ErrRequestNotFound
			}
			return fmt.Errorf("social: getting friend request: %w", err)
		}
		req, err := peakplatesdb.ParseFriendRequest(doc)
		if err != nil {
			return err
		}
		if req.ToUserID != uid {
			return ErrNotRecipient
		}
		if req.Status != peakplatesdb.FriendRequestStatusPending {
			return ErrNotPending
		}

		if err := tx.Update(reqRef, []firestore.Update{{Path: "status", Value: st}}); err != nil {
			return fmt.Errorf("social: updating friend request: %w", err)
		}
		if st != peakplatesdb.FriendRequestStatusAccepted {
			return nil
		}
		friendship := peakplatesdb.Friendship{
			User1:     req.FromUserID,
			User2:     req.ToUserID,
			CreatedAt: g.now(),
		}
		if err := tx.Set(g.friendships().Doc(peakplatesdb.FriendshipID(req.FromUserID, req.ToUserID)), friendship); err != nil {
			return fmt.Errorf("social: saving friendship: %w", err)
		}
		return nil
	})
}

// PendingRequest is a pending friend request with its document ID.
type PendingRequest struct {
	ID string
	peakplatesdb.FriendRequest
}

// PendingRequests returns the pending requests addressed to uid, oldest first.
func (g *Graph) PendingRequests(ctx context.Context, uid string) ([]PendingRequest, error) {
	iter := g.requests().
		Where("toUserId", "==", uid).
		Where("status", "==", peakplatesdb.FriendRequestStatusPending).
		Documents(ctx)
	defer iter.Stop()

	var res []PendingRequest
	for {
		doc, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("social: reading friend requests: %w", err)
		}
		req, err := peakplatesdb.ParseFriendRequest(doc)
		if err != nil {
			return nil, err
		}
		if req.FromUsername == "" {
			req.FromUsername = req.FromUserID
		}
		res = append(res, PendingRequest{ID: doc.Ref.ID, FriendRequest: *req})
	}
	slices.SortFunc(res, func(a, b PendingRequest) int {
		return a.CreatedAt.Compare(b.CreatedAt)
	})
	return res, nil
}

// friendshipDocs returns the friendship documents involving uid, optionally
// restricted to those with other. Both orientations are queried concurrently.
func (g *Graph) friendshipDocs(ctx context.Context, uid string, other string) ([]*firestore.DocumentSnapshot, error) {
	queries := []firestore.Query{
		g.friendships().Where("user1", "==", uid),
		g.friendships().Where("user2", "==", uid),
	}
	if other != "" {
		queries[0] = queries[0].Where("user2", "==", other)
		queries[1] = queries[1].Where("user1", "==", other)
	}

	results := make([][]*firestore.DocumentSnapshot, len(queries))
	var grp errgroup.Group
	for i, q := range queries {
		grp.Go(func() error {
			docs, err := q.Documents(ctx).GetAll()
			if err != nil {
				return fmt.Errorf("social: reading friendships: %w", err)
			}
			results[i] = docs
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return nil, err
	}
	return slices.Concat(results...), nil
}

// FriendIDs returns the IDs of uid's friends, sorted.
func (g *Graph) FriendIDs(ctx context.Context, uid string) ([]string, error) {
	docs, err := g.friendshipDocs(ctx, uid, "")
	if err != nil {
		return nil, err
	}
	var ids []string
	for _, doc := range docs {
		var f peakplatesdb.Friendship
		if err := doc.DataTo(&f); err != nil {
			return nil, fmt.Errorf("social: decoding friendship %s: %w", doc.Ref.ID, err)
		}
		if other := f.Other(uid); other != "" && other != uid {
			ids = append(ids, other)
		}
	}
	slices.Sort(ids)
	return slices.Compact(ids), nil
}

// Friends returns uid's friends sorted by username.
func (g *Graph) Friends(ctx context.Context, uid string) ([]Friend, error) {
	ids, err := g.FriendIDs(ctx, uid)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, nil
	}

	refs := make([]*firestore.DocumentRef, len(ids))
	for i, id := range ids {
		refs[i] = g.users().Doc(id)
	}
	docs, err := g.store.GetAll(ctx, refs)
	if err != nil {
		return nil, fmt.Errorf("social: getting friend users: %w", err)
	}

	friends := make([]Friend, 0, len(docs))
	for i, doc := range docs {
		username := ids[i]
		if doc.Exists() {
			if u, err := peakplatesdb.ParseUser(doc); err == nil {
				username = u.Username
			}
		}
		friends = append(friends, Friend{UserID: ids[i], Username: username})
	}
	slices.SortFunc(friends, func(a, b Friend) int {
		return strings.Compare(strings.ToLower(a.Username), strings.ToLower(b.Username))
	})
	return friends, nil
}

// Remove deletes the friendship between uid and friendID in either orientation.
func (g *Graph) Remove(ctx context.Context, uid string, friendID string) error {
	docs, err := g.friendshipDocs(ctx, uid, friendID)
	if err != nil {
		return err
	}
	if len(docs) == 0 {
		return ErrNotFriends
	}

	batch := g.store.Batch()
	for _, doc := range docs {
		batch.Delete(doc.Ref)
	}
	if _, err := batch.Commit(ctx); err != nil {
		return fmt.Errorf("social: deleting friendship: %w", err)
	}
	return nil
}

// SearchUsers returns users other than uid whose username contains query,
// ignoring case, sorted by username.
func (g *Graph) SearchUsers(ctx context.Context, uid string, query string) ([]UserMatch, error) {
	var (
		grp       errgroup.Group
		userDocs  []*firestore.DocumentSnapshot
		friendIDs []string
	)
	grp.Go(func() error {
		docs, err := g.users().Documents(ctx).GetAll()
		if err != nil {
			return fmt.Errorf("social: reading users: %w", err)
		}
		userDocs = docs
		return nil
	})
	grp.Go(func() error {
		ids, err := g.FriendIDs(ctx, uid)
		friendIDs = ids
		return err
	})
	if err := grp.Wait(); err != nil {
		return nil, err
	}

	query = strings.ToLower(strings.TrimSpace(query))
	var res []UserMatch
	for _, doc := range userDocs {
		if doc.Ref.ID == uid {
			continue
		}
		u, err := peakplatesdb.ParseUser(doc)
		if err != nil {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(u.Username), query) {
			continue
		}
		_, isFriend := slices.BinarySearch(friendIDs, u.ID)
		res = append(res, UserMatch{UserID: u.ID, Username: u.Username, IsFriend: isFriend})
	}
	slices.SortFunc(res, func(a, b UserMatch) int {
		return strings.Compare(strings.ToLower(a.Username), strings.ToLower(b.Username))
	})
	return res, nil
}
