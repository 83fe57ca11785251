// Package admission admits actors into bounded-capacity collections.
//
// A Gate runs its checks in a fixed order and inserts only after all of them pass:
//
//  1. the parent exists (and is locked for the rest of the transaction)
//  2. every precondition passes (actor exists, owns the referenced resource, ...)
//  3. the actor is not already a member
//  4. the member count is below the parent's capacity
//  5. the membership row is inserted
//
// The parent row lock serializes concurrent admissions to the same parent, so two
// callers can never both pass step 4 for the last free slot. Admissions to
// different parents do not contend.
package admission

import (
	"context"
	"fmt"

	"github.com/appdotbuilder/dragon-nest-guild-portal/pkg/pgerr"
	"github.com/appdotbuilder/dragon-nest-guild-portal/pkg/results"
	"github.com/uptrace/bun"
)

// Check is a precondition. It returns a non-nil failure to reject the request and
// a non-nil err for infrastructure problems.
type Check func(ctx context.Context, db bun.IDB) (failure error, err error)

// Gate describes one admission request against one parent.
type Gate[M any] struct {
	// LockParent locks the parent row and returns its capacity. found is false
	// when the parent does not exist.
	LockParent func(ctx context.Context, db bun.IDB) (capacity int, found bool, err error)

	// Preconditions run after the parent is locked, in order.
	Preconditions []Check

	// IsMember reports whether the actor already belongs to the parent.
	IsMember func(ctx context.Context, db bun.IDB) (bool, error)

	// CountMembers returns the current member count of the parent.
	CountMembers func(ctx context.Context, db bun.IDB) (int, error)

	// Insert persists the membership row.
	Insert func(ctx context.Context, db bun.IDB) (M, error)

	// ParentMissing is the failure reported when the parent does not exist.
	ParentMissing error

	// AlreadyMember is the failure reported for a duplicate admission.
	AlreadyMember error

	// Full builds the failure reported when no capacity is left.
	Full func(current, capacity int) error
}

// Admit runs the gate. It must be called inside a transaction; db is that
// transaction.
func Admit[M any](ctx context.Context, db bun.IDB, g Gate[M]) (results.OperationResult[M, error], error) {
	capacity, found, err := g.LockParent(ctx, db)
	if err != nil {
		return results.OperationResult[M, error]{}, fmt.Errorf("failed to lock parent: %w", err)
	}
	if !found {
		return results.FailureResult[M, error](g.ParentMissing), nil
	}

	for _, check := range g.Preconditions {
		failure, err := check(ctx, db)
		if err != nil {
			return results.OperationResult[M, error]{}, err
		}
		if failure != nil {
			return results.FailureResult[M, error](failure), nil
		}
	}

	member, err := g.IsMember(ctx, db)
	if err != nil {
		return results.OperationResult[M, error]{}, fmt.Errorf("failed to check membership: %w", err)
	}
	if member {
		return results.FailureResult[M, error](g.AlreadyMember), nil
	}

	count, err := g.CountMembers(ctx, db)
	if err != nil {
		return results.OperationResult[M, error]{}, fmt.Errorf("failed to count members: %w", err)
	}
	if count >= capacity {
		return results.FailureResult[M, error](g.Full(count, capacity)), nil
	}

	row, err := g.Insert(ctx, db)
	if err != nil {
		// Only reachable when the parent lock was bypassed; the unique key still holds.
		if pgerr.IsUniqueViolation(err) {
			return results.FailureResult[M, error](g.AlreadyMember), nil
		}
		return results.OperationResult[M, error]{}, fmt.Errorf("failed to insert membership: %w", err)
	}

	return results.SuccessResult[M, error](row), nil
}
