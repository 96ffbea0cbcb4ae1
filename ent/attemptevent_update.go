// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/idelarosa/subjunto/ent/attemptevent"
	"github.com/idelarosa/subjunto/ent/predicate"
)

// AttemptEventUpdate is the builder for updating AttemptEvent entities.
type AttemptEventUpdate struct {
	config
	hooks    []Hook
	mutation *AttemptEventMutation
}

// Where appends a list predicates to the AttemptEventUpdate builder.
func (_u *AttemptEventUpdate) Where(ps ...predicate.AttemptEvent) *AttemptEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetVerb sets the "verb" field.
func (_u *AttemptEventUpdate) SetVerb(v string) *AttemptEventUpdate {
	_u.mutation.SetVerb(v)
	return _u
}

// SetNillableVerb sets the "verb" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableVerb(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetVerb(*v)
	}
	return _u
}

// SetTense sets the "tense" field.
func (_u *AttemptEventUpdate) SetTense(v string) *AttemptEventUpdate {
	_u.mutation.SetTense(v)
	return _u
}

// SetNillableTense sets the "tense" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableTense(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetTense(*v)
	}
	return _u
}

// SetPerson sets the "person" field.
func (_u *AttemptEventUpdate) SetPerson(v string) *AttemptEventUpdate {
	_u.mutation.SetPerson(v)
	return _u
}

// SetNillablePerson sets the "person" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillablePerson(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetPerson(*v)
	}
	return _u
}

// SetTriggerCategory sets the "trigger_category" field.
func (_u *AttemptEventUpdate) SetTriggerCategory(v string) *AttemptEventUpdate {
	_u.mutation.SetTriggerCategory(v)
	return _u
}

// SetNillableTriggerCategory sets the "trigger_category" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableTriggerCategory(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetTriggerCategory(*v)
	}
	return _u
}

// SetTier sets the "tier" field.
func (_u *AttemptEventUpdate) SetTier(v int) *AttemptEventUpdate {
	_u.mutation.ResetTier()
	_u.mutation.SetTier(v)
	return _u
}

// SetNillableTier sets the "tier" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableTier(v *int) *AttemptEventUpdate {
	if v != nil {
		_u.SetTier(*v)
	}
	return _u
}

// AddTier adds value to the "tier" field.
func (_u *AttemptEventUpdate) AddTier(v int) *AttemptEventUpdate {
	_u.mutation.AddTier(v)
	return _u
}

// SetExpected sets the "expected" field.
func (_u *AttemptEventUpdate) SetExpected(v string) *AttemptEventUpdate {
	_u.mutation.SetExpected(v)
	return _u
}

// SetNillableExpected sets the "expected" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableExpected(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetExpected(*v)
	}
	return _u
}

// SetAnswer sets the "answer" field.
func (_u *AttemptEventUpdate) SetAnswer(v string) *AttemptEventUpdate {
	_u.mutation.SetAnswer(v)
	return _u
}

// SetNillableAnswer sets the "answer" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableAnswer(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetAnswer(*v)
	}
	return _u
}

// SetClassification sets the "classification" field.
func (_u *AttemptEventUpdate) SetClassification(v string) *AttemptEventUpdate {
	_u.mutation.SetClassification(v)
	return _u
}

// SetNillableClassification sets the "classification" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableClassification(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetClassification(*v)
	}
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *AttemptEventUpdate) SetCorrect(v bool) *AttemptEventUpdate {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableCorrect(v *bool) *AttemptEventUpdate {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetQuality sets the "quality" field.
func (_u *AttemptEventUpdate) SetQuality(v int) *AttemptEventUpdate {
	_u.mutation.ResetQuality()
	_u.mutation.SetQuality(v)
	return _u
}

// SetNillableQuality sets the "quality" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableQuality(v *int) *AttemptEventUpdate {
	if v != nil {
		_u.SetQuality(*v)
	}
	return _u
}

// AddQuality adds value to the "quality" field.
func (_u *AttemptEventUpdate) AddQuality(v int) *AttemptEventUpdate {
	_u.mutation.AddQuality(v)
	return _u
}

// SetDistance sets the "distance" field.
func (_u *AttemptEventUpdate) SetDistance(v int) *AttemptEventUpdate {
	_u.mutation.ResetDistance()
	_u.mutation.SetDistance(v)
	return _u
}

// SetNillableDistance sets the "distance" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableDistance(v *int) *AttemptEventUpdate {
	if v != nil {
		_u.SetDistance(*v)
	}
	return _u
}

// AddDistance adds value to the "distance" field.
func (_u *AttemptEventUpdate) AddDistance(v int) *AttemptEventUpdate {
	_u.mutation.AddDistance(v)
	return _u
}

// SetHintUsed sets the "hint_used" field.
func (_u *AttemptEventUpdate) SetHintUsed(v bool) *AttemptEventUpdate {
	_u.mutation.SetHintUsed(v)
	return _u
}

// SetNillableHintUsed sets the "hint_used" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableHintUsed(v *bool) *AttemptEventUpdate {
	if v != nil {
		_u.SetHintUsed(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *AttemptEventUpdate) SetSessionID(v string) *AttemptEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableSessionID(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// ClearSessionID clears the value of the "session_id" field.
func (_u *AttemptEventUpdate) ClearSessionID() *AttemptEventUpdate {
	_u.mutation.ClearSessionID()
	return _u
}

// Mutation returns the AttemptEventMutation object of the builder.
func (_u *AttemptEventUpdate) Mutation() *AttemptEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AttemptEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AttemptEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AttemptEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AttemptEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AttemptEventUpdate) check() error {
	if v, ok := _u.mutation.Verb(); ok {
		if err := attemptevent.VerbValidator(v); err != nil {
			return &ValidationError{Name: "verb", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.verb": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Tense(); ok {
		if err := attemptevent.TenseValidator(v); err != nil {
			return &ValidationError{Name: "tense", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.tense": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Person(); ok {
		if err := attemptevent.PersonValidator(v); err != nil {
			return &ValidationError{Name: "person", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.person": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TriggerCategory(); ok {
		if err := attemptevent.TriggerCategoryValidator(v); err != nil {
			return &ValidationError{Name: "trigger_category", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.trigger_category": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Expected(); ok {
		if err := attemptevent.ExpectedValidator(v); err != nil {
			return &ValidationError{Name: "expected", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.expected": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Classification(); ok {
		if err := attemptevent.ClassificationValidator(v); err != nil {
			return &ValidationError{Name: "classification", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.classification": %w`, err)}
		}
	}
	return nil
}

func (_u *AttemptEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(attemptevent.Table, attemptevent.Columns, sqlgraph.NewFieldSpec(attemptevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Verb(); ok {
		_spec.SetField(attemptevent.FieldVerb, field.TypeString, value)
	}
	if value, ok := _u.mutation.Tense(); ok {
		_spec.SetField(attemptevent.FieldTense, field.TypeString, value)
	}
	if value, ok := _u.mutation.Person(); ok {
		_spec.SetField(attemptevent.FieldPerson, field.TypeString, value)
	}
	if value, ok := _u.mutation.TriggerCategory(); ok {
		_spec.SetField(attemptevent.FieldTriggerCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.Tier(); ok {
		_spec.SetField(attemptevent.FieldTier, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTier(); ok {
		_spec.AddField(attemptevent.FieldTier, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Expected(); ok {
		_spec.SetField(attemptevent.FieldExpected, field.TypeString, value)
	}
	if value, ok := _u.mutation.Answer(); ok {
		_spec.SetField(attemptevent.FieldAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.Classification(); ok {
		_spec.SetField(attemptevent.FieldClassification, field.TypeString, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(attemptevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Quality(); ok {
		_spec.SetField(attemptevent.FieldQuality, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuality(); ok {
		_spec.AddField(attemptevent.FieldQuality, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Distance(); ok {
		_spec.SetField(attemptevent.FieldDistance, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDistance(); ok {
		_spec.AddField(attemptevent.FieldDistance, field.TypeInt, value)
	}
	if value, ok := _u.mutation.HintUsed(); ok {
		_spec.SetField(attemptevent.FieldHintUsed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(attemptevent.FieldSessionID, field.TypeString, value)
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(attemptevent.FieldSessionID, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attemptevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AttemptEventUpdateOne is the builder for updating a single AttemptEvent entity.
type AttemptEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AttemptEventMutation
}

// SetVerb sets the "verb" field.
func (_u *AttemptEventUpdateOne) SetVerb(v string) *AttemptEventUpdateOne {
	_u.mutation.SetVerb(v)
	return _u
}

// SetNillableVerb sets the "verb" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableVerb(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetVerb(*v)
	}
	return _u
}

// SetTense sets the "tense" field.
func (_u *AttemptEventUpdateOne) SetTense(v string) *AttemptEventUpdateOne {
	_u.mutation.SetTense(v)
	return _u
}

// SetNillableTense sets the "tense" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableTense(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetTense(*v)
	}
	return _u
}

// SetPerson sets the "person" field.
func (_u *AttemptEventUpdateOne) SetPerson(v string) *AttemptEventUpdateOne {
	_u.mutation.SetPerson(v)
	return _u
}

// SetNillablePerson sets the "person" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillablePerson(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetPerson(*v)
	}
	return _u
}

// SetTriggerCategory sets the "trigger_category" field.
func (_u *AttemptEventUpdateOne) SetTriggerCategory(v string) *AttemptEventUpdateOne {
	_u.mutation.SetTriggerCategory(v)
	return _u
}

// SetNillableTriggerCategory sets the "trigger_category" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableTriggerCategory(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetTriggerCategory(*v)
	}
	return _u
}

// SetTier sets the "tier" field.
func (_u *AttemptEventUpdateOne) SetTier(v int) *AttemptEventUpdateOne {
	_u.mutation.ResetTier()
	_u.mutation.SetTier(v)
	return _u
}

// SetNillableTier sets the "tier" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableTier(v *int) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetTier(*v)
	}
	return _u
}

// AddTier adds value to the "tier" field.
func (_u *AttemptEventUpdateOne) AddTier(v int) *AttemptEventUpdateOne {
	_u.mutation.AddTier(v)
	return _u
}

// SetExpected sets the "expected" field.
func (_u *AttemptEventUpdateOne) SetExpected(v string) *AttemptEventUpdateOne {
	_u.mutation.SetExpected(v)
	return _u
}

// SetNillableExpected sets the "expected" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableExpected(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetExpected(*v)
	}
	return _u
}

// SetAnswer sets the "answer" field.
func (_u *AttemptEventUpdateOne) SetAnswer(v string) *AttemptEventUpdateOne {
	_u.mutation.SetAnswer(v)
	return _u
}

// SetNillableAnswer sets the "answer" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableAnswer(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetAnswer(*v)
	}
	return _u
}

// SetClassification sets the "classification" field.
func (_u *AttemptEventUpdateOne) SetClassification(v string) *AttemptEventUpdateOne {
	_u.mutation.SetClassification(v)
	return _u
}

// SetNillableClassification sets the "classification" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableClassification(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetClassification(*v)
	}
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *AttemptEventUpdateOne) SetCorrect(v bool) *AttemptEventUpdateOne {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableCorrect(v *bool) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetQuality sets the "quality" field.
func (_u *AttemptEventUpdateOne) SetQuality(v int) *AttemptEventUpdateOne {
	_u.mutation.ResetQuality()
	_u.mutation.SetQuality(v)
	return _u
}

// SetNillableQuality sets the "quality" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableQuality(v *int) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetQuality(*v)
	}
	return _u
}

// AddQuality adds value to the "quality" field.
func (_u *AttemptEventUpdateOne) AddQuality(v int) *AttemptEventUpdateOne {
	_u.mutation.AddQuality(v)
	return _u
}

// SetDistance sets the "distance" field.
func (_u *AttemptEventUpdateOne) SetDistance(v int) *AttemptEventUpdateOne {
	_u.mutation.ResetDistance()
	_u.mutation.SetDistance(v)
	return _u
}

// SetNillableDistance sets the "distance" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableDistance(v *int) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetDistance(*v)
	}
	return _u
}

// AddDistance adds value to the "distance" field.
func (_u *AttemptEventUpdateOne) AddDistance(v int) *AttemptEventUpdateOne {
	_u.mutation.AddDistance(v)
	return _u
}

// SetHintUsed sets the "hint_used" field.
func (_u *AttemptEventUpdateOne) SetHintUsed(v bool) *AttemptEventUpdateOne {
	_u.mutation.SetHintUsed(v)
	return _u
}

// SetNillableHintUsed sets the "hint_used" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableHintUsed(v *bool) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetHintUsed(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *AttemptEventUpdateOne) SetSessionID(v string) *AttemptEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableSessionID(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// ClearSessionID clears the value of the "session_id" field.
func (_u *AttemptEventUpdateOne) ClearSessionID() *AttemptEventUpdateOne {
	_u.mutation.ClearSessionID()
	return _u
}

// Mutation returns the AttemptEventMutation object of the builder.
func (_u *AttemptEventUpdateOne) Mutation() *AttemptEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the AttemptEventUpdate builder.
func (_u *AttemptEventUpdateOne) Where(ps ...predicate.AttemptEvent) *AttemptEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AttemptEventUpdateOne) Select(field string, fields ...string) *AttemptEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AttemptEvent entity.
func (_u *AttemptEventUpdateOne) Save(ctx context.Context) (*AttemptEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AttemptEventUpdateOne) SaveX(ctx context.Context) *AttemptEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AttemptEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AttemptEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AttemptEventUpdateOne) check() error {
	if v, ok := _u.mutation.Verb(); ok {
		if err := attemptevent.VerbValidator(v); err != nil {
			return &ValidationError{Name: "verb", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.verb": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Tense(); ok {
		if err := attemptevent.TenseValidator(v); err != nil {
			return &ValidationError{Name: "tense", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.tense": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Person(); ok {
		if err := attemptevent.PersonValidator(v); err != nil {
			return &ValidationError{Name: "person", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.person": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TriggerCategory(); ok {
		if err := attemptevent.TriggerCategoryValidator(v); err != nil {
			return &ValidationError{Name: "trigger_category", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.trigger_category": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Expected(); ok {
		if err := attemptevent.ExpectedValidator(v); err != nil {
			return &ValidationError{Name: "expected", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.expected": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Classification(); ok {
		if err := attemptevent.ClassificationValidator(v); err != nil {
			return &ValidationError{Name: "classification", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.classification": %w`, err)}
		}
	}
	return nil
}

func (_u *AttemptEventUpdateOne) sqlSave(ctx context.Context) (_node *AttemptEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(attemptevent.Table, attemptevent.Columns, sqlgraph.NewFieldSpec(attemptevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AttemptEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, attemptevent.FieldID)
		for _, f := range fields {
			if !attemptevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != attemptevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Verb(); ok {
		_spec.SetField(attemptevent.FieldVerb, field.TypeString, value)
	}
	if value, ok := _u.mutation.Tense(); ok {
		_spec.SetField(attemptevent.FieldTense, field.TypeString, value)
	}
	if value, ok := _u.mutation.Person(); ok {
		_spec.SetField(attemptevent.FieldPerson, field.TypeString, value)
	}
	if value, ok := _u.mutation.TriggerCategory(); ok {
		_spec.SetField(attemptevent.FieldTriggerCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.Tier(); ok {
		_spec.SetField(attemptevent.FieldTier, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTier(); ok {
		_spec.AddField(attemptevent.FieldTier, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Expected(); ok {
		_spec.SetField(attemptevent.FieldExpected, field.TypeString, value)
	}
	if value, ok := _u.mutation.Answer(); ok {
		_spec.SetField(attemptevent.FieldAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.Classification(); ok {
		_spec.SetField(attemptevent.FieldClassification, field.TypeString, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(attemptevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Quality(); ok {
		_spec.SetField(attemptevent.FieldQuality, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuality(); ok {
		_spec.AddField(attemptevent.FieldQuality, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Distance(); ok {
		_spec.SetField(attemptevent.FieldDistance, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDistance(); ok {
		_spec.AddField(attemptevent.FieldDistance, field.TypeInt, value)
	}
	if value, ok := _u.mutation.HintUsed(); ok {
		_spec.SetField(attemptevent.FieldHintUsed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(attemptevent.FieldSessionID, field.TypeString, value)
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(attemptevent.FieldSessionID, field.TypeString)
	}
	_node = &AttemptEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attemptevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
