package commands

import (
	"errors"

	"geodispatch/internal/core/domain/model/assignment"
	"geodispatch/internal/core/domain/model/kernel"
	"geodispatch/internal/pkg/guard"
)

var (
	ErrSubmitAssignmentCommandIsNotConstructed = errors.New(
		"SubmitAssignmentCommand must be created via NewSubmitAssignmentCommand constructor",
	)
	ErrResultIsNotResolved       = errors.New("assignment result has no resolved coordinate")
	ErrBranchIsRequired          = errors.New("a fulfillment branch is required to submit")
	ErrDeliveryPriceIsUnresolved = errors.New("delivery requires a resolved price inside a zone")
	ErrSubtotalBelowMinimumOrder = errors.New("order subtotal is below the zone minimum")
)

// SubmitAssignmentCommand represents a request to attach a completed
// assignment outcome to a draft order. Carries the final session snapshot
// together with the target order and fulfillment type.
//
// Example:
//
//	cmd, err := NewSubmitAssignmentCommand(orderID, session.Result(), assignment.Delivery)
//	if err != nil {
//	    return fmt.Errorf("assignment is not submittable: %w", err)
//	}
//
//	handler := NewSubmitAssignmentCommandHandler(uowFactory, publisher, logger)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to submit assignment: %w", err)
//	}
type SubmitAssignmentCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	result      assignment.Result
	fulfillment assignment.FulfillmentType

	guard guard.ConstructorGuard
}

// NewSubmitAssignmentCommand creates a command to submit an assignment outcome.
// Validates the submission business rules up front:
//   - The session must have a resolved coordinate and a selected branch
//   - Delivery fulfillment requires a resolved price, meaning the point lies
//     inside a zone or a zone was pinned manually
//   - Delivery fulfillment is rejected while the subtotal is below the zone
//     minimum order amount
//
// Pickup fulfillment skips the price and minimum order rules.
func NewSubmitAssignmentCommand(
	orderID kernel.UUID,
	result assignment.Result,
	fulfillment assignment.FulfillmentType,
) (SubmitAssignmentCommand, error) {
	cmd := SubmitAssignmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setFulfillment(fulfillment),
		cmd.setResult(result, fulfillment),
	); err != nil {
		return SubmitAssignmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrSubmitAssignmentCommandIsNotConstructed if validation fails.
func (c SubmitAssignmentCommand) Validate() error {
	return c.guard.Validate(ErrSubmitAssignmentCommandIsNotConstructed)
}

// OrderID returns the draft order the outcome is attached to.
func (c SubmitAssignmentCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Result returns the final assignment snapshot being submitted.
func (c SubmitAssignmentCommand) Result() assignment.Result {
	return c.result
}

// Fulfillment returns the fulfillment type the order was placed with.
func (c SubmitAssignmentCommand) Fulfillment() assignment.FulfillmentType {
	return c.fulfillment
}

func (c *SubmitAssignmentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *SubmitAssignmentCommand) setFulfillment(fulfillment assignment.FulfillmentType) error {
	if err := fulfillment.Validate(); err != nil {
		return err
	}

	c.fulfillment = fulfillment
	return nil
}

func (c *SubmitAssignmentCommand) setResult(result assignment.Result, fulfillment assignment.FulfillmentType) error {
	if result.Coordinate == nil {
		return ErrResultIsNotResolved
	}

	if result.Branch == nil {
		return ErrBranchIsRequired
	}

	if fulfillment == assignment.Delivery {
		if result.DeliveryPrice == nil {
			return ErrDeliveryPriceIsUnresolved
		}

		if result.IsBelowMinimumOrder {
			return ErrSubtotalBelowMinimumOrder
		}
	}

	c.result = result
	return nil
}
