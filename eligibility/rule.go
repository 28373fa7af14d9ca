// Package eligibility composes predicates that decide whether an account may
// receive an offer.
package eligibility

import "context"

// Rule decides if t is eligible.
type Rule[T any] interface {
	// IsSatisfiedBy check if t is satisfied by the rule.
	IsSatisfiedBy(ctx context.Context, t T) bool
}

// The RuleFunc type is an adapter to allow the use of ordinary functions as Rule.
// If f is a function with the appropriate signature, RuleFunc(f) is a Rule that calls f.
type RuleFunc[T any] func(ctx context.Context, t T) bool

// IsSatisfiedBy calls f(ctx, t).
func (f RuleFunc[T]) IsSatisfiedBy(ctx context.Context, t T) bool {
	return f(ctx, t)
}

// New create a Rule from predicate.
func New[T any](predicate func(ctx context.Context, t T) bool) Rule[T] {
	return RuleFunc[T](predicate)
}

// Always is a Rule satisfied by everything.
func Always[T any]() Rule[T] {
	return RuleFunc[T](func(context.Context, T) bool { return true })
}

// And create a new rule that is the AND of two other rules.
func And[T any](left Rule[T], right Rule[T]) Rule[T] {
	return &and[T]{Left: left, Right: right}
}

// Or create a new rule that is the OR of two other rules.
func Or[T any](left Rule[T], right Rule[T]) Rule[T] {
	return &or[T]{Left: left, Right: right}
}

// Not create a new rule that is the inverse of rule.
func Not[T any](rule Rule[T]) Rule[T] {
	return &not[T]{Rule: rule}
}

// All create a new rule satisfied when every rule is. An empty All is satisfied.
func All[T any](rules ...Rule[T]) Rule[T] {
	return &conjunction[T]{Rules: rules}
}

// Any create a new rule satisfied when at least one rule is. An empty Any is not satisfied.
func Any[T any](rules ...Rule[T]) Rule[T] {
	return &disjunction[T]{Rules: rules}
}
