package eligibility

import "context"

type and[T any] struct {
	Left  Rule[T]
	Right Rule[T]
}

func (r *and[T]) IsSatisfiedBy(ctx context.Context, t T) bool {
	return r.Left.IsSatisfiedBy(ctx, t) && r.Right.IsSatisfiedBy(ctx, t)
}

type or[T any] struct {
	Left  Rule[T]
	Right Rule[T]
}

func (r *or[T]) IsSatisfiedBy(ctx context.Context, t T) bool {
	return r.Left.IsSatisfiedBy(ctx, t) || r.Right.IsSatisfiedBy(ctx, t)
}

type not[T any] struct {
	Rule Rule[T]
}

func (r *not[T]) IsSatisfiedBy(ctx context.Context, t T) bool {
	return !r.Rule.IsSatisfiedBy(ctx, t)
}

type conjunction[T any] struct {
	Rules []Rule[T]
}

func (r *conjunction[T]) IsSatisfiedBy(ctx context.Context, t T) bool {
	for _, rule := range r.Rules {
		if !rule.IsSatisfiedBy(ctx, t) {
			return false
		}
	}
	return true
}

type disjunction[T any] struct {
	Rules []Rule[T]
}

func (r *disjunction[T]) IsSatisfiedBy(ctx context.Context, t T) bool {
	for _, rule := range r.Rules {
		if rule.IsSatisfiedBy(ctx, t) {
			return true
		}
	}
	return false
}
