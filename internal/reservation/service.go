package reservation

import (
	"context"
	"fmt"
	"log"
	"strings"

	"order-demo-backend/internal/models"
	"order-demo-backend/internal/store"
)

// Outcome classifies a single reservation attempt.
type Outcome string

const (
	OutcomeReserved      Outcome = "reserved"
	OutcomeOutOfStock    Outcome = "out_of_stock"
	OutcomeNotFound      Outcome = "not_found"
	OutcomeInvalid       Outcome = "invalid"
	OutcomeInternalError Outcome = "internal_error"
)

// Result is the structured outcome of AttemptReserve. Item carries the
// post-operation state of the row and is nil for NotFound, Invalid and
// InternalError.
type Result struct {
	Outcome Outcome
	Message string
	Item    *models.MenuItem
}

const internalErrorMessage = "An error occurred while processing your request."

// txState tracks whether the current transaction still needs cleanup, so a
// rollback is never issued twice and never after a commit.
type txState int

const (
	txOpen txState = iota
	txCommitted
	txRolledBack
)

// Service atomically claims single units of stock. It holds no cross-request
// state; correctness under concurrency comes from the store's transaction
// isolation plus the conditional decrement.
type Service struct {
	store store.Store
}

func NewService(st store.Store) *Service {
	return &Service{store: st}
}

// AttemptReserve tries to claim one unit of stock for itemID. All expected
// outcomes (Reserved, OutOfStock, NotFound, Invalid) come back as structured
// results; only genuine store failure is reported as InternalError, with the
// underlying cause logged and never exposed.
func (s *Service) AttemptReserve(ctx context.Context, itemID string) Result {
	if strings.TrimSpace(itemID) == "" {
		return Result{Outcome: OutcomeInvalid, Message: "Invalid item ID provided."}
	}

	tx, err := s.store.Begin(ctx)
	if err != nil {
		log.Printf("attemptReserve %s: begin failed: %v", itemID, err)
		return Result{Outcome: OutcomeInternalError, Message: internalErrorMessage}
	}

	state := txOpen
	defer func() {
		if state == txOpen {
			if rbErr := tx.Rollback(); rbErr != nil {
				// Nothing left to recover at this point; the original error
				// is what gets reported.
				log.Printf("attemptReserve %s: rollback failed: %v", itemID, rbErr)
			}
		}
	}()

	item, err := tx.GetItem(itemID)
	if err != nil {
		log.Printf("attemptReserve %s: reading item failed: %v", itemID, err)
		return Result{Outcome: OutcomeInternalError, Message: internalErrorMessage}
	}

	if item == nil {
		if err := tx.Rollback(); err != nil {
			log.Printf("attemptReserve %s: rollback failed: %v", itemID, err)
		}
		state = txRolledBack
		return Result{
			Outcome: OutcomeNotFound,
			Message: fmt.Sprintf("Item with ID %s not found.", itemID),
		}
	}

	if item.Stock <= 0 {
		if err := tx.Rollback(); err != nil {
			log.Printf("attemptReserve %s: rollback failed: %v", itemID, err)
		}
		state = txRolledBack
		return Result{
			Outcome: OutcomeOutOfStock,
			Message: fmt.Sprintf("%s is out of stock.", item.Name),
			Item:    item,
		}
	}

	affected, err := tx.DecrementStock(itemID)
	if err != nil {
		log.Printf("attemptReserve %s: decrement failed: %v", itemID, err)
		return Result{Outcome: OutcomeInternalError, Message: internalErrorMessage}
	}

	if affected == 0 {
		// Another transaction took the last unit between our read and the
		// conditional write.
		if err := tx.Rollback(); err != nil {
			log.Printf("attemptReserve %s: rollback failed: %v", itemID, err)
		}
		state = txRolledBack
		return Result{
			Outcome: OutcomeOutOfStock,
			Message: fmt.Sprintf("%s just went out of stock!", item.Name),
			Item:    item,
		}
	}

	if err := tx.Commit(); err != nil {
		log.Printf("attemptReserve %s: commit failed: %v", itemID, err)
		state = txRolledBack // the failed commit closed the scope either way
		return Result{Outcome: OutcomeInternalError, Message: internalErrorMessage}
	}
	state = txCommitted

	reserved := *item
	reserved.Stock = item.Stock - 1
	return Result{
		Outcome: OutcomeReserved,
		Message: fmt.Sprintf("%s added to cart!", item.Name),
		Item:    &reserved,
	}
}
